package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pfep-analyzer/core/config"
	"pfep-analyzer/core/loader"
	"pfep-analyzer/core/logger"
	"pfep-analyzer/core/middleware/auth"
	"pfep-analyzer/core/middleware/rayid"
	"pfep-analyzer/core/session"
	"pfep-analyzer/core/storage"

	analysisfeature "pfep-analyzer/feature/analysis"
	"pfep-analyzer/feature/dataset"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the analyzer server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Initialize Session
		sess := session.New()
		if cfg.Server.DefaultTolerance != 0 {
			if err := sess.SetTolerance(cfg.Server.DefaultTolerance); err != nil {
				logg.Fatal("Invalid default tolerance", zap.Error(err))
			}
		}

		// 4. Initialize Storage (Optional)
		// Dataset ingestion from object storage is a convenience; CSV upload
		// works without it.
		var store storage.Client
		if cfg.Storage.Endpoint != "" {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Optional storage client failed, upload-only mode", zap.Error(err))
			} else {
				store = client
				logg.Info("Storage ingestion enabled", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(dataset.NewFeature(sess, store, cfg.Storage.Bucket, logg, auth.NewAdmin(cfg.Server.AdminKey)))
		mgr.Register(analysisfeature.NewFeature(sess, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
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
