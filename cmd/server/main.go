package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingapp "github.com/jetcongo/backend/internal/application/booking"
	fleetapp "github.com/jetcongo/backend/internal/application/fleet"
	identityapp "github.com/jetcongo/backend/internal/application/identity"
	paymentapp "github.com/jetcongo/backend/internal/application/payment"
	reportapp "github.com/jetcongo/backend/internal/application/report"
	"github.com/jetcongo/backend/internal/infrastructure/auth"
	"github.com/jetcongo/backend/internal/infrastructure/config"
	"github.com/jetcongo/backend/internal/infrastructure/event"
	"github.com/jetcongo/backend/internal/infrastructure/logger"
	"github.com/jetcongo/backend/internal/infrastructure/notification"
	"github.com/jetcongo/backend/internal/infrastructure/persistence"
	"github.com/jetcongo/backend/internal/interfaces/http/handler"
	"github.com/jetcongo/backend/internal/interfaces/http/middleware"
	"github.com/jetcongo/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting flight booking backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	aircraftRepo := persistence.NewGormAircraftRepository(db.DB)
	flightRepo := persistence.NewGormFlightRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Booking transaction scope: Create/Amend/Pay run their capacity and
	// settlement checks inside one transaction
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Token infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := blacklist.Close(); err != nil {
			log.Error("Error closing Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected successfully")

	// Receipt publisher: AMQP when a broker is configured, no-op otherwise
	var receiptPublisher paymentapp.ReceiptNotifier
	if cfg.AMQP.Enabled {
		amqpPublisher, err := notification.NewAMQPReceiptPublisher(cfg.AMQP, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker", zap.Error(err))
		}
		defer func() {
			if err := amqpPublisher.Close(); err != nil {
				log.Error("Error closing broker connection", zap.Error(err))
			}
		}()
		receiptPublisher = amqpPublisher
		log.Info("Receipt publisher connected", zap.String("queue", cfg.AMQP.ReceiptQueue))
	} else {
		receiptPublisher = notification.NewNoOpReceiptPublisher(log)
		log.Info("Receipt publisher disabled")
	}

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, reservationRepo)
	aircraftService := fleetapp.NewAircraftService(aircraftRepo, flightRepo)
	flightService := fleetapp.NewFlightService(flightRepo, aircraftRepo, reservationRepo)
	reservationService := bookingapp.NewReservationService(txScope, reservationRepo, flightRepo, userRepo)
	paymentService := paymentapp.NewPaymentService(txScope, userRepo, log)
	paymentService.SetReceiptNotifier(receiptPublisher)
	reportService := reportapp.NewReportService(flightRepo, aircraftRepo, reservationRepo, paymentRepo, userRepo)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Aircraft grounding -> block the aircraft's active flights
	flightBlockingHandler := fleetapp.NewFlightBlockingHandler(flightRepo, log)
	eventBus.Subscribe(flightBlockingHandler)

	log.Info("Event handlers registered",
		zap.Strings("flight_blocking_events", flightBlockingHandler.EventTypes()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	aircraftService.SetEventPublisher(eventBus)
	reservationService.SetEventPublisher(eventBus)
	flightBlockingHandler.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler()
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	flightHandler := handler.NewFlightHandler(flightService)
	adminFlightHandler := handler.NewAdminFlightHandler(flightService)
	aircraftHandler := handler.NewAircraftHandler(aircraftService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reportHandler := handler.NewReportHandler(reportService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, then JWT authentication
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	jwtConfig := middleware.JWTMiddlewareConfig{
		TokenManager:   jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		SkipPathPrefixes: []string{
			"/api/v1/flights",
		},
		Logger: log,
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Register domain routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(systemHandler).
		Register(authHandler).
		Register(userHandler).
		Register(flightHandler).
		Register(adminFlightHandler).
		Register(aircraftHandler).
		Register(reservationHandler).
		Register(paymentHandler).
		Register(reportHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
