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

	appevent "github.com/logistics/engine/internal/application/event"
	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/application/simulation"
	"github.com/logistics/engine/internal/domain/shared"
	"github.com/logistics/engine/internal/infrastructure/cache"
	"github.com/logistics/engine/internal/infrastructure/config"
	busevent "github.com/logistics/engine/internal/infrastructure/event"
	"github.com/logistics/engine/internal/infrastructure/logger"
	"github.com/logistics/engine/internal/infrastructure/migration"
	"github.com/logistics/engine/internal/infrastructure/persistence"
	rpcinventory "github.com/logistics/engine/internal/infrastructure/rpc/inventory"
	"github.com/logistics/engine/internal/infrastructure/telemetry"
)

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting logistics engine",
		zap.String("env", cfg.Server.Environment),
		zap.String("addr", cfg.Server.Addr()),
	)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Tracing.
	tracer, err := telemetry.NewTracerProvider(rootCtx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// Database.
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Database.LogLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	persistence.DefaultPageSize = cfg.Paging.DefaultPageSize
	persistence.MaxPageSize = cfg.Paging.MaxPageSize

	if cfg.Database.AutoMigrate {
		if err := runMigrations(db, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// Message bus.
	busConn, err := busevent.NewConnection(cfg.RabbitMQ.URL, cfg.RabbitMQ.RetryAttempts, log)
	if err != nil {
		log.Fatal("Failed to connect to message bus", zap.Error(err))
	}
	defer func() {
		if err := busConn.Close(); err != nil {
			log.Error("Error closing bus connection", zap.Error(err))
		}
	}()

	publisher, err := busevent.NewPublisher(busConn, cfg.RabbitMQ.Exchange, log)
	if err != nil {
		log.Fatal("Failed to initialize publisher", zap.Error(err))
	}
	log.Info("Message bus connected", zap.String("exchange", cfg.RabbitMQ.Exchange))

	// Inventory RPC client.
	inventoryClient, err := rpcinventory.GetClient(&cfg.GRPC, log)
	if err != nil {
		log.Fatal("Failed to initialize inventory client", zap.Error(err))
	}
	defer func() {
		if err := inventoryClient.Close(); err != nil {
			log.Error("Error closing inventory client", zap.Error(err))
		}
	}()

	// Repositories and orchestrator.
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	catalogRepo := persistence.NewGormInventoryRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	orderService := apporder.NewService(orderRepo, scope, publisher, inventoryClient, log)

	// Consumer with idempotent dispatch.
	var consumer *busevent.Consumer
	var idempotency shared.IdempotencyStore
	if cfg.RabbitMQ.ConsumerEnabled {
		idempotency, err = newIdempotencyStore(cfg, log)
		if err != nil {
			log.Fatal("Failed to initialize idempotency store", zap.Error(err))
		}

		consumer = busevent.NewConsumer(
			busConn,
			cfg.RabbitMQ.Exchange,
			cfg.RabbitMQ.Queue,
			cfg.RabbitMQ.MaxRedeliveries,
			idempotency,
			log,
		)
		appevent.NewOrderEventAuditor(log).Register(consumer)

		if err := consumer.Start(rootCtx); err != nil {
			log.Fatal("Failed to start consumer", zap.Error(err))
		}
	}

	// Synthetic order producer.
	var producer *simulation.Producer
	if cfg.Producer.Enabled {
		producer = simulation.NewProducer(cfg.Producer, orderService, customerRepo, catalogRepo, log)
		if err := producer.Start(rootCtx); err != nil {
			log.Fatal("Failed to start order producer", zap.Error(err))
		}
	}

	// Health surface.
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: healthRouter(cfg, db, log),
	}
	go func() {
		log.Info("Health server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Health server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown: stop producing, close the HTTP surface, cancel the
	// root context so the consumer loop drains, then release clients.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if producer != nil {
		if err := producer.Stop(shutdownCtx); err != nil {
			log.Warn("Producer did not stop cleanly", zap.Error(err))
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Health server did not stop cleanly", zap.Error(err))
	}

	rootCancel()
	if consumer != nil {
		consumer.Stop()
	}
	if idempotency != nil {
		if closer, ok := idempotency.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				log.Warn("Error closing idempotency store", zap.Error(err))
			}
		}
	}

	if err := tracer.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error shutting down tracing", zap.Error(err))
	}

	log.Info("Shutdown complete")
}

// runMigrations applies pending SQL migrations at boot.
func runMigrations(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	migrator, err := migration.New(sqlDB, migrationsPath, log)
	if err != nil {
		return err
	}
	// Not closed afterwards: Close would also close the shared sql.DB pool.
	return migrator.Up()
}

// newIdempotencyStore picks the consumer dedupe backend: redis when
// enabled, otherwise the in-process store.
func newIdempotencyStore(cfg *config.Config, log *zap.Logger) (shared.IdempotencyStore, error) {
	if cfg.Redis.Enabled {
		store, err := cache.NewRedisIdempotencyStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("Using redis idempotency store", zap.String("addr", cfg.Redis.Addr()))
		return store, nil
	}
	log.Info("Using in-memory idempotency store")
	return cache.NewInMemoryIdempotencyStore(), nil
}

// healthRouter exposes the operational probes. Liveness is unconditional;
// readiness requires a responsive database.
func healthRouter(cfg *config.Config, db *persistence.Database, log *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.GinMiddleware(log), logger.Recovery(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return router
}
