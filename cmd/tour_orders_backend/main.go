package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/adapters/broker"
	"github.com/SscSPs/tour_orders_app/internal/core/ports/publishers"
	"github.com/SscSPs/tour_orders_app/internal/core/services"
	"github.com/SscSPs/tour_orders_app/internal/handlers"
	"github.com/SscSPs/tour_orders_app/internal/middleware"
	"github.com/SscSPs/tour_orders_app/internal/platform/config"
	"github.com/SscSPs/tour_orders_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/tour_orders_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	readTimeout  = 20 * time.Second
	writeTimeout = 20 * time.Second
)

// @title Tour Orders API
// @version 1.0
// @description Sales orders of a travel agency: customers, tours, payments and their financial summary.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	exitOnErr(logger, "Failed to load config", err)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	exitOnErr(logger, "Failed to initialize database pool", err)
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	exitOnErr(logger, "Failed to run database migrations", err)
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	publisher := newPublisher(logger, cfg)

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, publisher)

	if cfg.BootstrapSupervisorEmail != "" {
		err = container.User.EnsureSupervisor(ctx, cfg.BootstrapSupervisorEmail, cfg.BootstrapSupervisorPassword)
		exitOnErr(logger, "Failed to bootstrap supervisor account", err)
	}

	exitOnErr(logger, "Failed to register validators", handlers.RegisterValidators())

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	exitOnErr(logger, "Failed to set trusted proxies", r.SetTrustedProxies(nil))

	globalLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	exitOnErr(logger, "Invalid RATE_LIMIT", err)
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	exitOnErr(logger, "Invalid LOGIN_RATE_LIMIT", err)

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AddAllowHeaders("Authorization")

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.Metrics(),
		cors.New(corsCfg),
		middleware.RateLimit(globalLimiter),
	)

	handlers.RegisterRoutes(r, cfg, container, middleware.GinMiddlewarize(loginLimiter))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
	}

	if closer, ok := publisher.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close order event publisher", slog.String("error", err.Error()))
		}
	}
	logger.Info("Server stopped")
}

// newPublisher returns a Kafka publisher when brokers are configured and a
// logging no-op otherwise.
func newPublisher(logger *slog.Logger, cfg *config.Config) publishers.OrderEventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return broker.NewNoopPublisher(logger)
	}
	logger.Info("Publishing order events to Kafka",
		slog.Any("brokers", cfg.KafkaBrokers),
		slog.String("topic", cfg.KafkaOrderEventsTopic),
	)
	return broker.NewOrderPublisher(logger, cfg.KafkaBrokers, cfg.KafkaOrderEventsTopic)
}

func exitOnErr(logger *slog.Logger, msg string, err error) {
	if err != nil {
		logger.Error(msg, slog.String("error", err.Error()))
		os.Exit(1)
	}
}
