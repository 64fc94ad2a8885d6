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

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	appStore "github.com/MrJamesThe3rd/cosigner/internal/application/store"
	"github.com/MrJamesThe3rd/cosigner/internal/config"
	"github.com/MrJamesThe3rd/cosigner/internal/database"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/document/provider"
	docStore "github.com/MrJamesThe3rd/cosigner/internal/document/store"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	draftCache "github.com/MrJamesThe3rd/cosigner/internal/draft/cache"
	draftStore "github.com/MrJamesThe3rd/cosigner/internal/draft/store"
	cosignerHttp "github.com/MrJamesThe3rd/cosigner/internal/http"
	applicationHandler "github.com/MrJamesThe3rd/cosigner/internal/http/application"
	documentHandler "github.com/MrJamesThe3rd/cosigner/internal/http/document"
	draftHandler "github.com/MrJamesThe3rd/cosigner/internal/http/draft"
	reviewHandler "github.com/MrJamesThe3rd/cosigner/internal/http/review"
	"github.com/MrJamesThe3rd/cosigner/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/cosigner/internal/matching/store"
	"github.com/MrJamesThe3rd/cosigner/internal/payment"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	rdb, err := database.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	limits := document.Limits{
		IdentityMaxBytes: cfg.Upload.IdentityMaxBytes,
		IncomeMaxBytes:   cfg.Upload.IncomeMaxBytes,
	}

	appRepo := appStore.New(db)

	var (
		documentService = document.NewService(
			docStore.New(db),
			provider.New(cfg.Upload.BaseURL, cfg.Upload.Token, cfg.Upload.Timeout),
			application.NewDocumentGate(appRepo),
			limits,
		)
		draftService       = draft.NewService(draftStore.New(db), draftCache.New(rdb, cfg.Redis.DraftTTL))
		matchingService    = matching.NewService(matchingStore.New(db))
		applicationService = application.NewService(appRepo, draftService, documentService, matchingService)
	)

	var (
		draftH       = draftHandler.NewHandler(draftService)
		documentH    = documentHandler.NewHandler(documentService, max(limits.IdentityMaxBytes, limits.IncomeMaxBytes))
		applicationH = applicationHandler.NewHandler(applicationService)
		reviewH      = reviewHandler.NewHandler(applicationService, matchingService)
	)

	router := cosignerHttp.New(cosignerHttp.Options{
		JWTSecret:      cfg.Auth.Secret,
		AllowedOrigins: cfg.App.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
		Health: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return err
			}

			return rdb.Ping(ctx).Err()
		},
	}, draftH, documentH, applicationH, reviewH)

	if cfg.AMQP.URL != "" {
		consumer, err := payment.NewConsumer(cfg.AMQP.URL, payment.RetryPolicy{
			Delay:           cfg.AMQP.RetryDelay,
			MaxRedeliveries: cfg.AMQP.MaxRedeliveries,
		})
		if err != nil {
			return err
		}
		defer consumer.Close()

		bindings := payment.NewHandler(applicationService, cfg.AMQP.HandlerTimeout).Bindings()

		go func() {
			if err := consumer.Run(ctx, cfg.AMQP.Exchange, cfg.AMQP.Queue, bindings); err != nil {
				slog.Error("payment consumer stopped", "error", err)
				stop()
			}
		}()
	} else {
		slog.Warn("AMQP_URL not set, payment events are not consumed")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "port", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}
