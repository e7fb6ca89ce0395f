package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/cargoplan/backend/internal/application/catalog"
	importapp "github.com/cargoplan/backend/internal/application/import"
	shippingapp "github.com/cargoplan/backend/internal/application/shipping"
	"github.com/cargoplan/backend/internal/infrastructure/config"
	"github.com/cargoplan/backend/internal/infrastructure/logger"
	"github.com/cargoplan/backend/internal/infrastructure/persistence/csvstore"
	"github.com/cargoplan/backend/internal/interfaces/http/handler"
	"github.com/cargoplan/backend/internal/interfaces/http/middleware"
	"github.com/cargoplan/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting cargoplan backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store", cfg.Store.Path),
	)

	// Catalog store and services
	store := csvstore.NewStore(cfg.Store.Path)
	skuService := catalogapp.NewSkuService(store)
	mergeService := importapp.NewBulkMergeService(skuService)
	shipmentService := shippingapp.NewShipmentService(store)
	exportService := shippingapp.NewExportService()

	// Handlers
	catalogHandler := handler.NewCatalogHandler(skuService)
	bulkImportHandler := handler.NewBulkImportHandler(mergeService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService, exportService)

	// Gin engine and middleware chain
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", healthHandler(store))

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/skus", catalogHandler.List)
	catalogRoutes.PUT("/skus", catalogHandler.Upsert)
	catalogRoutes.DELETE("/skus/:sku", catalogHandler.Delete)
	catalogRoutes.GET("/template", bulkImportHandler.Template)
	catalogRoutes.POST("/bulk-merge", bulkImportHandler.Merge)

	shipmentRoutes := router.NewDomainGroup("shipments", "/shipments")
	shipmentRoutes.POST("/compute", shipmentHandler.Compute)
	shipmentRoutes.POST("/purchase-order", shipmentHandler.PurchaseOrder)

	r.Register(catalogRoutes).
		Register(shipmentRoutes)
	r.Setup()

	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

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

// healthHandler reports whether the catalog store is readable
func healthHandler(store *csvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if _, err := store.Load(c.Request.Context()); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
				"store":  "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  "ok",
		})
	}
}
