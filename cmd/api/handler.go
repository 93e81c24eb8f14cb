package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	archiveDelivery "growth-archive-backend/internal/archive/delivery"
	archiveUsecase "growth-archive-backend/internal/archive/usecase"
	"growth-archive-backend/internal/auth/delivery"
	authUsecase "growth-archive-backend/internal/auth/usecase"
	notificationDelivery "growth-archive-backend/internal/notification/delivery"
	notificationUsecase "growth-archive-backend/internal/notification/usecase"
	userDelivery "growth-archive-backend/internal/user/delivery"
	userUsecase "growth-archive-backend/internal/user/usecase"
	"growth-archive-backend/pkg/config"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Usecases bundles the services the HTTP layer exposes.
type Usecases struct {
	Auth         authUsecase.AuthUsecase
	User         userUsecase.UserUsecase
	Archive      archiveUsecase.ArchiveUsecase
	Notification notificationUsecase.NotificationUsecase
	// Presigner is optional; without it the upload route is not mounted.
	Presigner archiveDelivery.ImagePresigner
}

type Handler struct {
	authUsecase         authUsecase.AuthUsecase
	authHandler         *delivery.AuthHandler
	userHandler         *userDelivery.UserHandler
	archiveHandler      *archiveDelivery.ArchiveHandler
	notificationHandler *notificationDelivery.NotificationHandler
	config              *config.Config
	logger              logging.Logger
}

func NewHandler(uc Usecases, cfg *config.Config, logger logging.Logger) *Handler {
	return &Handler{
		authUsecase:         uc.Auth,
		authHandler:         delivery.NewAuthHandler(uc.Auth, logger),
		userHandler:         userDelivery.NewUserHandler(uc.User, logger),
		archiveHandler:      archiveDelivery.NewArchiveHandler(uc.Archive, uc.Presigner, logger),
		notificationHandler: notificationDelivery.NewNotificationHandler(uc.Notification, logger),
		config:              cfg,
		logger:              logger,
	}
}

// Router builds the gin engine with middleware and every route mounted.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(h.logger))
	r.Use(metrics.Middleware())
	r.Use(corsMiddleware(h.config.CORSOrigins))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	SetupRoutes(r, h.authUsecase, h.authHandler, h.userHandler, h.archiveHandler, h.notificationHandler)

	return r
}

// Start serves on addr until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info(ctx, "server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.logger.Info(context.Background(), "server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
