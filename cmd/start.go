package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"retail-storage/core/broker"
	"retail-storage/core/config"
	"retail-storage/core/database"
	"retail-storage/core/loader"
	"retail-storage/core/logger"
	"retail-storage/core/middleware/auth"
	"retail-storage/core/middleware/rayid"
	"retail-storage/core/storage"

	"retail-storage/feature/order"
	"retail-storage/feature/product"
	"retail-storage/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "retail-storage/docs/swagger"
)

// @title Retail Storage Gateway API
// @version 1.0
// @description Unified storage facade for the retail order workflow.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storage gateway server",
	Long:  `Starts the HTTP server and initializes all storage backends and features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Initialize Object Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Connect to Message Broker
		queue, err := broker.NewClient(cfg.Broker, logg)
		if err != nil {
			logg.Fatal("Failed to connect to message broker", zap.Error(err))
		}
		defer queue.Close()

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 7. Register Features
		mgr := loader.NewManager()

		orderFeature := order.NewFeature(db, cfg.Database.OrdersTable, queue, cfg.Broker.Queue, logg)
		mgr.Register(orderFeature)
		mgr.Register(product.NewFeature(store, cfg.Storage.ImageBucket, logg))
		mgr.Register(report.NewFeature(orderFeature.Store(), store, cfg.Storage.ReportBucket, logg))

		// Middleware Registration
		// RayID must come first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
