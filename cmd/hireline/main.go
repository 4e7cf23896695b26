package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/hireline/hireline/internal/app"
	"github.com/hireline/hireline/internal/auth"
	"github.com/hireline/hireline/internal/company"
	"github.com/hireline/hireline/internal/job"
	"github.com/hireline/hireline/internal/platform/cache"
	"github.com/hireline/hireline/internal/platform/db"
	"github.com/hireline/hireline/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("init token issuer", slog.Any("error", err))
		os.Exit(1)
	}

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, tokens)
	guard := auth.Middleware{Service: authService, Logger: logger}
	authHandler := auth.NewHandler(logger, authService)

	companyRepo := company.NewRepository(pool)
	companyService := company.NewService(companyRepo)
	companyHandler := company.NewHandler(logger, companyService, guard)

	// Redis backs the listing cache and the notification queue. The API
	// stays up without it, just slower and quieter.
	var (
		listingCache *job.ListingCache
		notifier     job.Notifier
		queueHandler *jobs.Handler
	)
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, listing cache and notifications disabled", slog.Any("error", err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		listingCache = job.NewListingCache(redisClient, cfg.JobCacheTTL)

		queueClient := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := queueClient.Close(); err != nil {
				logger.Warn("queue client close", slog.Any("error", err))
			}
		}()
		notifier = queueClient

		inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		queueHandler = jobs.NewHandler(inspector, logger)
	}

	jobRepo := job.NewRepository(pool)
	jobService := job.NewService(jobRepo, companyRepo, listingCache, notifier, logger)
	jobHandler := job.NewHandler(logger, jobService, guard)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		Guard:          guard,
		AuthHandler:    authHandler,
		JobHandler:     jobHandler,
		CompanyHandler: companyHandler,
		QueueHandler:   queueHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
