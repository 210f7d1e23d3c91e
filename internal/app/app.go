package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jorchsg/fashion-eccommerce/internal/auth"
	"github.com/jorchsg/fashion-eccommerce/internal/catalog"
	"github.com/jorchsg/fashion-eccommerce/internal/config"
	"github.com/jorchsg/fashion-eccommerce/internal/event"
	handler "github.com/jorchsg/fashion-eccommerce/internal/handler/http"
	redisrepo "github.com/jorchsg/fashion-eccommerce/internal/repository/redis"
	"github.com/jorchsg/fashion-eccommerce/internal/service"
	"github.com/jorchsg/fashion-eccommerce/pkg/database"
	"github.com/jorchsg/fashion-eccommerce/pkg/health"
	"github.com/jorchsg/fashion-eccommerce/pkg/httpclient"
	pkgkafka "github.com/jorchsg/fashion-eccommerce/pkg/kafka"
	"github.com/jorchsg/fashion-eccommerce/pkg/middleware"
	"github.com/jorchsg/fashion-eccommerce/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing is a no-op unless enabled in config.
	tracingCfg := tracing.DefaultConfig("storefront")
	tracingCfg.Environment = cfg.Environment
	tracingCfg.OTLPEndpoint = cfg.TracingEndpoint
	tracingCfg.SampleRate = cfg.TracingSampleRate
	tracingCfg.Enabled = cfg.TracingEnabled
	tracerShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	rdb, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	store := catalog.New()
	repo := redisrepo.NewCartRepository(rdb, cfg.CartTTL(), logger)
	eventProducer := event.NewProducer(producer, logger)

	catalogService := service.NewCatalogService(store, logger)
	cartService := service.NewCartService(repo, store, eventProducer, logger)
	wishlistService := service.NewWishlistService(eventProducer, logger)

	providerClient := auth.NewProviderClient(
		cfg.AuthProviderURL,
		httpclient.NewCircuitBreakerClient(
			httpclient.New(httpclient.DefaultConfig()),
			httpclient.DefaultCircuitBreakerConfig("auth-provider"),
			logger,
		),
		logger,
	)
	tokenValidator := auth.NewTokenValidator(cfg.AuthJWTSecret)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	router := handler.NewRouter(handler.RouterConfig{
		CatalogService:  catalogService,
		CartService:     cartService,
		WishlistService: wishlistService,
		AuthProvider:    providerClient,
		TokenValidator:  tokenValidator,
		Producer:        eventProducer,
		HealthHandler:   healthHandler,
		Logger:          logger,
		CORS:            corsCfg,
		PprofCIDRs:      cfg.PprofAllowedCIDRs,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		rdb:            rdb,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
