package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/payment-service/internal/api"
	"github.com/hypernova-labs/payment-service/internal/config"
	"github.com/hypernova-labs/payment-service/internal/database"
	"github.com/hypernova-labs/payment-service/internal/services"
	"github.com/hypernova-labs/payment-service/internal/workflows"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting payment service...")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la payment db solo en modo postgres
	var db *database.DB
	if cfg.UsesPaymentDB() {
		db, err = database.Connect(cfg)
		if err != nil {
			logger.Fatalf("Error connecting to database: %v", err)
		}
		defer db.Close()
		db.LogStats(logger)
	} else {
		logger.Warn("PAYMENT_DB_MODE is mock, pgp customer repository will not touch storage")
	}

	// Conectar a Redis
	redis, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis: %v", err)
		redis = nil
	} else {
		defer redis.Close()
		redis.LogStats(logger)
	}

	var ledger database.PayoutLedger
	if redis != nil {
		ledger = database.NewRedisPayoutLedger(redis, cfg.InstantPayout.LedgerRetention)
	} else {
		logger.Warn("Redis not available, instant payout ledger will be kept in memory")
		ledger = database.NewMemoryPayoutLedger(cfg.InstantPayout.LedgerRetention)
	}

	// Inicializar cliente de Inngest
	var publisher services.PayoutEventPublisher
	inngestClient, err := workflows.NewInngestClient(cfg, logger)
	if err != nil {
		logger.Warnf("Inngest not available, payout events will not be published: %v", err)
		inngestClient = nil
	} else {
		if err := inngestClient.RegisterWorkflows(workflows.NewInstantPayoutWorkflow(logger)); err != nil {
			logger.Warnf("Error registering workflows: %v", err)
		}
		publisher = inngestClient
	}

	// Inicializar servicios
	processor := services.NewInstantPayoutProcessor(ledger, publisher, cfg.InstantPayout, logger)
	payerService := services.NewPayerService(database.NewPgpCustomerRepository(cfg, db, logger), logger)

	apiHandler := api.NewAPI(processor, payerService, logger)

	router := setupRouter(apiHandler, inngestClient, db, redis, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	// Shutdown graceful del servidor
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura el router principal
func setupRouter(apiHandler *api.API, inngestClient *workflows.InngestClient, db *database.DB, redis *database.Redis, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(apiHandler.ErrorHandler())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		checks := gin.H{"payment_db": "mock", "redis": "unavailable"}
		status := http.StatusOK

		if db != nil {
			checks["payment_db"] = "ok"
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				checks["payment_db"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}
		if redis != nil {
			checks["redis"] = "ok"
			if err := redis.HealthCheck(c.Request.Context()); err != nil {
				checks["redis"] = err.Error()
			}
		}

		c.JSON(status, gin.H{
			"status":    http.StatusText(status),
			"timestamp": time.Now().UTC(),
			"service":   "payment-service",
			"env":       cfg.Server.Env,
			"checks":    checks,
		})
	})

	if inngestClient != nil {
		router.Any("/api/inngest", gin.WrapH(inngestClient.Handler()))
	}

	apiHandler.RegisterRoutes(router)

	return router
}
