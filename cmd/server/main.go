package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/config"
	"github.com/fightpulse/fightpulse-api/internal/database"
	"github.com/fightpulse/fightpulse-api/internal/handlers"
	"github.com/fightpulse/fightpulse-api/internal/logger"
	"github.com/fightpulse/fightpulse-api/internal/middleware"
	"github.com/fightpulse/fightpulse-api/internal/queue"
	"github.com/fightpulse/fightpulse-api/internal/services/identity"
	"github.com/fightpulse/fightpulse-api/internal/services/ingestion"
	"github.com/fightpulse/fightpulse-api/internal/services/oidc"
	"github.com/fightpulse/fightpulse-api/internal/telemetry"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"
)

const serviceName = "fightpulse-api"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zapLogger)

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// OpenTelemetry is optional; the server runs fine without a collector
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), serviceName, cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				zapLogger.Info("otel_tracer_initialized", zap.String("endpoint", cfg.OTELEndpoint))
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zapLogger.Warn("failed_to_close_database_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_database")

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer migrateCancel()
	if err := db.Migrate(migrateCtx); err != nil {
		zapLogger.Fatal("failed_to_migrate_database", zap.Error(err))
	}
	zapLogger.Info("database_schema_ready")

	redisClient, err := middleware.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			zapLogger.Warn("failed_to_close_redis_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_redis")

	rateLimitMW, err := middleware.RateLimit(redisClient, cfg.RateLimit)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	// RabbitMQ is optional for the server; without it the scraper posts
	// directly and only the queue health check is skipped
	var jobQueue queue.JobQueue
	if cfg.RabbitMQURL != "" {
		jobQueue, err = queue.NewRabbitMQQueue(cfg.RabbitMQURL)
		if err != nil {
			zapLogger.Warn("failed_to_connect_to_rabbitmq", zap.Error(err))
			jobQueue = nil
		} else {
			zapLogger.Info("connected_to_rabbitmq")
			defer func() {
				if err := jobQueue.Close(); err != nil {
					zapLogger.Warn("failed_to_close_rabbitmq_connection", zap.Error(err))
				}
			}()
		}
	}

	// Repositories
	userRepo := database.NewUserRepository(db)
	fighterRepo := database.NewFighterRepository(db)
	eventRepo := database.NewEventRepository(db)
	fightRepo := database.NewFightRepository(db)
	followRepo := database.NewFollowRepository(db)

	// Services
	jwksManager := oidc.NewJWKSManager()
	verifier := oidc.NewVerifier(jwksManager, cfg.Auth0IssuerURL, cfg.Auth0Audience)
	oidcClient := oidc.NewClient(cfg.Auth0IssuerURL, cfg.Auth0ClientID, cfg.Auth0Audience, cfg.FrontendURL+"/callback")
	identitySvc := identity.NewService(userRepo, zapLogger)
	ingestionSvc := ingestion.NewService(eventRepo, fighterRepo, fightRepo, zapLogger)

	// Handlers
	ingestionHandler := handlers.NewIngestionHandler(ingestionSvc, zapLogger)
	followHandler := handlers.NewFollowHandler(followRepo, zapLogger)
	userHandler := handlers.NewUserHandler()
	authHandler := handlers.NewAuthHandler(oidcClient)
	healthChecker := handlers.NewHealthChecker(db, jobQueue)

	authMW := middleware.Auth(verifier, identitySvc, zapLogger)

	r := mux.NewRouter()

	if cfg.OTELEnabled {
		r.Use(otelmux.Middleware(serviceName))
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(middleware.DefaultRequestTimeout))
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logging(zapLogger))

	// Public routes
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")
	r.HandleFunc("/version", handlers.GetVersion).Methods("GET")

	apiRouter := r.PathPrefix("/api/v1").Subrouter()

	// Ingestion is unauthenticated but rate limited
	ingestionRouter := apiRouter.PathPrefix("/ingestion").Subrouter()
	ingestionRouter.Use(rateLimitMW)
	ingestionHandler.RegisterRoutes(ingestionRouter)

	// Login config is public
	authRouter := apiRouter.PathPrefix("/auth").Subrouter()
	authRouter.Use(rateLimitMW)
	authHandler.RegisterRoutes(authRouter)

	// Follows and user routes require a verified token
	followsRouter := apiRouter.PathPrefix("/follows").Subrouter()
	followsRouter.Use(authMW)
	followHandler.RegisterRoutes(followsRouter)

	userRouter := apiRouter.PathPrefix("/user").Subrouter()
	userRouter.Use(authMW)
	userHandler.RegisterRoutes(userRouter)

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   75 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}
