package initializers

import (
	"context"
	"log"

	"github.com/Kariqs/carta-vendor-portal/auth"
	"github.com/Kariqs/carta-vendor-portal/backend"
	"github.com/Kariqs/carta-vendor-portal/dashboard"
	"github.com/Kariqs/carta-vendor-portal/utils"
)

// Portal groups everything the handlers need for the single vendor session.
type Portal struct {
	Auth      *auth.Manager
	Orders    *dashboard.OrderBoard
	Inventory *dashboard.Inventory
	Analytics *dashboard.AnalyticsReader
	Images    utils.ImageStore
}

var App *Portal

// NewPortal wires the dashboard components around one session and backend
// client.
func NewPortal(provider auth.IdentityProvider, api *backend.Client, session *auth.Session, images utils.ImageStore) *Portal {
	if images == nil {
		images = utils.DisabledImageStore{}
	}
	return &Portal{
		Auth:      auth.NewManager(provider, api, session),
		Orders:    dashboard.NewOrderBoard(api),
		Inventory: dashboard.NewInventory(api),
		Analytics: dashboard.NewAnalyticsReader(api),
		Images:    images,
	}
}

// Logout clears the session and every snapshot derived from it.
func (p *Portal) Logout() {
	p.Auth.Logout()
	p.Orders.Reset()
}

func identityProvider(ctx context.Context, cfg Config) auth.IdentityProvider {
	if cfg.CognitoClientID == "" {
		log.Println("COGNITO_CLIENT_ID not set, using local identity provider.")
		return auth.NewLocalProvider(cfg.LocalAuthUsername, cfg.LocalAuthPassHash, cfg.JWTSecret)
	}
	provider, err := auth.NewCognitoProvider(ctx, auth.CognitoOptions{
		Region:          cfg.CognitoRegion,
		ClientID:        cfg.CognitoClientID,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		log.Fatal("Failed to configure identity provider: ", err)
	}
	return provider
}

func imageStore(ctx context.Context, cfg Config) utils.ImageStore {
	if cfg.ProductImageBucket == "" {
		return utils.DisabledImageStore{}
	}
	store, err := utils.NewS3ImageStore(ctx, utils.S3Options{
		Region:          cfg.CognitoRegion,
		Bucket:          cfg.ProductImageBucket,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		log.Println("Product image uploads disabled:", err)
		return utils.DisabledImageStore{}
	}
	return store
}

func ConnectToBackend() {
	Cfg = LoadConfig()
	ctx := context.Background()

	session := auth.NewSession()
	api := backend.NewClient(Cfg.APIBaseURL, Cfg.HTTPTimeout, session)
	App = NewPortal(identityProvider(ctx, Cfg), api, session, imageStore(ctx, Cfg))
	log.Println("Vendor portal configured for backend", Cfg.APIBaseURL)
}
