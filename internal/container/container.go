package container

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/joshua-takyi/wastenot/internal/config"
	"github.com/joshua-takyi/wastenot/internal/connect"
	"github.com/joshua-takyi/wastenot/internal/geocode"
	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/joshua-takyi/wastenot/internal/services"
	"github.com/joshua-takyi/wastenot/internal/storage"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	MongoDBClient    *mongo.Client
	Tokens           *helpers.TokenValidator
	AuthService      *services.AuthService
	InventoryService *services.InventoryService
	ProfileService   *services.ProfileService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	tokens *helpers.TokenValidator,
	images services.ImageHost,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient)
	mongo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBDatabase)

	geocoder := geocode.NewClient(cfg.GeocoderURL, cfg.GeocoderUserAgent, &http.Client{Timeout: 10 * time.Second})

	authService := services.NewAuthService(supa)
	profileService := services.NewProfileService(mongo, images, geocoder)
	inventoryService := services.NewInventoryService(mongo, profileService)
	inventoryService.OnSave(func(ctx context.Context, item *models.InventoryItem) {
		logger.Info("Inventory item saved",
			"item_id", item.ID,
			"category", item.Category,
			"updated_by", item.LastUpdatedBy,
		)
	})

	return &Container{
		Config:           cfg,
		Logger:           logger,
		MongoDBClient:    mongoDBClient,
		Tokens:           tokens,
		AuthService:      authService,
		InventoryService: inventoryService,
		ProfileService:   profileService,
	}
}

// Close releases the connections the container was built with.
func (c *Container) Close(ctx context.Context) error {
	if c.Tokens != nil {
		c.Tokens.Close()
	}
	return connect.MongoDBDisconnect(ctx, c.MongoDBClient)
}

// NewImageHost connects the avatar host selected by IMAGE_HOST.
func NewImageHost(ctx context.Context, cfg *config.Config) (services.ImageHost, error) {
	if cfg.ImageHost == config.ImageHostS3 {
		client, err := connect.S3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewS3Host(client, cfg.AWSS3Bucket, cfg.AWSS3Region), nil
	}

	cld, err := connect.CloudinaryCredentials(cfg)
	if err != nil {
		return nil, err
	}
	return storage.NewCloudinaryHost(cld), nil
}
