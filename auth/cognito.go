package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// cognitoAPI is the part of the Cognito client used for login.
type cognitoAPI interface {
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
}

// CognitoProvider logs vendors in against a Cognito user pool app client
// using the USER_PASSWORD_AUTH flow.
type CognitoProvider struct {
	client   cognitoAPI
	clientID string
}

type CognitoOptions struct {
	Region          string
	ClientID        string
	AccessKeyID     string
	SecretAccessKey string
}

func NewCognitoProvider(ctx context.Context, opts CognitoOptions) (*CognitoProvider, error) {
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
	return &CognitoProvider{
		client:   cognitoidentityprovider.NewFromConfig(cfg),
		clientID: opts.ClientID,
	}, nil
}

func (p *CognitoProvider) Authenticate(ctx context.Context, username, password string) (string, error) {
	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId: aws.String(p.clientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		var notFound *types.UserNotFoundException
		if errors.As(err, &notAuthorized) || errors.As(err, &notFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("cognito initiate auth: %v: %w", err, ErrAuthProvider)
	}
	if out.AuthenticationResult == nil || aws.ToString(out.AuthenticationResult.IdToken) == "" {
		return "", fmt.Errorf("cognito returned challenge %q instead of tokens: %w", out.ChallengeName, ErrAuthProvider)
	}
	return aws.ToString(out.AuthenticationResult.IdToken), nil
}
