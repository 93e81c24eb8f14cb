package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	api "growth-archive-backend/cmd/api"
	archiveUsecase "growth-archive-backend/internal/archive/usecase"
	"growth-archive-backend/internal/auth/token"
	authUsecase "growth-archive-backend/internal/auth/usecase"
	notificationUsecase "growth-archive-backend/internal/notification/usecase"
	"growth-archive-backend/internal/store"
	userUsecase "growth-archive-backend/internal/user/usecase"
	"growth-archive-backend/pkg/config"
	"growth-archive-backend/pkg/database"
	"growth-archive-backend/pkg/events"
	"growth-archive-backend/pkg/fcm"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize storage: Postgres when a DSN is configured, memory otherwise
	var manager store.Manager
	if cfg.DatabaseDSN != "" {
		db, err := database.NewPostgresConnection(cfg.DatabaseDSN)
		if err != nil {
			logger.Error(ctx, "failed to connect to database", "error", err)
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn(context.Background(), "failed to close database", "error", err)
			}
		}()

		if err := database.Migrate(ctx, db); err != nil {
			logger.Error(ctx, "failed to migrate database", "error", err)
			return err
		}
		manager = store.NewGormManager(db)
	} else {
		logger.Warn(ctx, "DATABASE_DSN not configured, using in-memory store")
		manager = store.NewMemoryManager()
	}

	// Domain events go to Kafka, or Pub/Sub when only a project is configured
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBroker != "" {
		producer := events.NewProducer(events.KafkaConfig{
			Broker:   cfg.KafkaBroker,
			Topic:    cfg.KafkaTopic,
			Username: cfg.KafkaUsername,
			Password: cfg.KafkaPassword,
			TLS:      cfg.KafkaTLS,
		})
		defer producer.Close()
		publisher = producer
		logger.Info(ctx, "kafka publisher enabled", "broker", cfg.KafkaBroker, "topic", cfg.KafkaTopic)
	} else if cfg.GoogleProjectID != "" {
		pubsubPublisher, err := events.NewPubSubPublisher(ctx, events.PubSubConfig{
			ProjectID:       cfg.GoogleProjectID,
			Topic:           cfg.GooglePubSubTopic,
			CredentialsFile: cfg.GoogleCredentials,
		})
		if err != nil {
			logger.Warn(ctx, "failed to initialize pubsub publisher, events disabled", "error", err)
		} else {
			defer pubsubPublisher.Close()
			publisher = pubsubPublisher
			logger.Info(ctx, "pubsub publisher enabled", "project", cfg.GoogleProjectID, "topic", cfg.GooglePubSubTopic)
		}
	}

	// Initialize FCM client (optional, notifications are stored without it)
	var pusher notificationUsecase.Pusher
	if cfg.FirebaseCredentials != "" {
		client, err := fcm.NewClient(ctx, cfg.FirebaseCredentials, logger)
		if err != nil {
			logger.Warn(ctx, "failed to initialize FCM client, push notifications disabled", "error", err)
		} else {
			pusher = client
		}
	} else {
		logger.Debug(ctx, "no Firebase credentials configured, FCM disabled")
	}

	var presigner *storage.S3Presigner
	if cfg.S3Enabled() {
		p, err := storage.NewS3Presigner(ctx, storage.S3Config{
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Warn(ctx, "failed to initialize S3 presigner, uploads disabled", "error", err)
		} else {
			presigner = p
		}
	}

	// Initialize use cases (dependency injection)
	codec := token.NewCodec(cfg.SecretKey, cfg.AccessTokenExpiry)
	notifications := notificationUsecase.NewNotificationUsecase(manager, pusher, logger)
	uc := api.Usecases{
		Auth:         authUsecase.NewAuthUsecase(manager, codec, publisher, logger),
		User:         userUsecase.NewUserUsecase(manager, logger),
		Archive:      archiveUsecase.NewArchiveUsecase(manager, notifications, archiveUsecase.NewRandomApprover(cfg.ApprovalRate), publisher, logger),
		Notification: notifications,
	}
	if presigner != nil {
		uc.Presigner = presigner
	}

	// Start server
	handler := api.NewHandler(uc, cfg, logger)
	if err := handler.Start(ctx, ":"+cfg.Port); err != nil {
		logger.Error(ctx, "server stopped with error", "error", err)
		return err
	}
	return nil
}
