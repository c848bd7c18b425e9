// @title Sakeenah API
// @version 1.0
// @description Wedding invitation API: invitation details, guest wishes and RSVP statistics.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"sakeenah/config"
	_ "sakeenah/docs"
	"sakeenah/internal/adapters/auth"
	"sakeenah/internal/adapters/email"
	"sakeenah/internal/adapters/storage"
	transporthttp "sakeenah/internal/delivery/http"
	"sakeenah/internal/delivery/http/controllers"
	"sakeenah/internal/delivery/http/middleware"
	"sakeenah/internal/domain"
	"sakeenah/internal/repository/postgres"
	"sakeenah/internal/repository/static"
	"sakeenah/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	notifier, err := newNotifier(cfg, logger)
	if err != nil {
		return err
	}

	backend, err := newWishBackend(ctx, cfg, notifier, logger)
	if err != nil {
		return err
	}
	defer backend.close()

	invitationSvc := services.NewInvitationService(backend.invitations)

	deps := transporthttp.RouterDeps{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Invitation:         controllers.NewInvitationController(logger, invitationSvc),
		Wish:               controllers.NewWishController(logger, backend.wishes),
		Site: controllers.NewSiteController(logger, invitationSvc, backend.wishes, controllers.SiteConfig{
			FallbackUID:  cfg.InvitationUID,
			IdentityTTL:  cfg.IdentityTTL,
			RecentWindow: cfg.RecentWindow,
			CookieSecure: cfg.CookieSecure,
		}),
		RateLimiter: middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		TrustProxy:  cfg.TrustProxy,
	}
	if cfg.AdminEnabled() {
		adminSvc := services.NewAdminService(
			auth.NewBcryptHasher(0),
			auth.NewJWTIssuer(cfg.JWTSecret),
			cfg.AdminPasswordSalt,
			cfg.AdminPasswordHash,
			[]string{auth.RoleAdmin},
			services.DefaultAdminTokenExpiry,
			logger,
		)
		deps.Admin = controllers.NewAdminController(logger, adminSvc)
		deps.Verifier = auth.NewJWTVerifier(cfg.JWTSecret, auth.RoleAdmin)
	} else {
		logger.Warn("admin login disabled; set JWT_SECRET and ADMIN_PASSWORD_HASH to enable wish deletion")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      transporthttp.NewRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "wishes_backend", cfg.WishesBackend)
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

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

type wishBackend struct {
	invitations domain.InvitationRepository
	wishes      domain.WishService
	close       func()
}

func newWishBackend(ctx context.Context, cfg *config.Config, notifier *services.WishNotifier, logger *slog.Logger) (*wishBackend, error) {
	switch cfg.WishesBackend {
	case config.WishesBackendPostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		invitations := postgres.NewInvitationRepository(db)
		return &wishBackend{
			invitations: invitations,
			wishes:      services.NewWishService(invitations, postgres.NewWishRepository(db), notifier, logger),
			close:       func() { db.Close() },
		}, nil

	case config.WishesBackendLocal:
		kv, closeKV, err := newKeyValueStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		inv, err := loadStaticInvitation(cfg)
		if err != nil {
			closeKV()
			return nil, err
		}
		invitations := static.NewInvitationRepository(inv)
		return &wishBackend{
			invitations: invitations,
			wishes:      services.NewLocalWishService(kv, invitations, notifier, cfg.RecentWindow, logger),
			close:       closeKV,
		}, nil
	}
	return nil, fmt.Errorf("unknown WISHES_BACKEND %q", cfg.WishesBackend)
}

func newKeyValueStore(ctx context.Context, cfg *config.Config) (domain.KeyValueStore, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageBackendFile:
		s, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case config.StorageBackendRedis:
		client, err := storage.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client, "sakeenah:"), func() { client.Close() }, nil
	case config.StorageBackendMemory:
		return storage.NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
}

func loadStaticInvitation(cfg *config.Config) (domain.Invitation, error) {
	if cfg.InvitationFile != "" {
		return static.LoadInvitation(cfg.InvitationFile, cfg.InvitationUID)
	}
	return static.DefaultInvitation(cfg.InvitationUID)
}

func newNotifier(cfg *config.Config, logger *slog.Logger) (*services.WishNotifier, error) {
	if cfg.NotifyEmail == "" {
		return nil, nil
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return nil, err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	return &services.WishNotifier{
		Email:   services.NewEmailService(mailer, renderer),
		Address: cfg.NotifyEmail,
	}, nil
}
