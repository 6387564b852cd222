package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUploadsDisabled = errors.New("product image uploads are not configured")

// ImageStore stores product images and returns their public URL.
type ImageStore interface {
	UploadProductImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type S3ImageStore struct {
	uploader uploader
	bucket   string
	now      func() time.Time
	newID    func() string
}

type S3Options struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3ImageStore returns a configured S3 image store for the given bucket.
func NewS3ImageStore(ctx context.Context, opts S3Options) (*S3ImageStore, error) {
	loaders := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3ImageStore{
		uploader: manager.NewUploader(client),
		bucket:   opts.Bucket,
		now:      time.Now,
		newID:    uuid.NewString,
	}, nil
}

func (s *S3ImageStore) UploadProductImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("products/%s-%s-%s", s.now().UTC().Format("20060102150405"), s.newID(), sanitizeFilename(filename))

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading file %s: %w", filename, err)
	}
	return result.Location, nil
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "." || name == "/" || name == "" {
		return "image"
	}
	return name
}

// DisabledImageStore rejects every upload.
type DisabledImageStore struct{}

func (DisabledImageStore) UploadProductImage(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrUploadsDisabled
}
