package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gear-tracker/core/config"
	"gear-tracker/core/database"
	"gear-tracker/core/loader"
	"gear-tracker/core/logger"
	"gear-tracker/core/middleware/auth"
	"gear-tracker/core/middleware/rayid"
	"gear-tracker/core/storage"

	"gear-tracker/feature/capture"
	"gear-tracker/feature/history"
	"gear-tracker/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "gear-tracker/docs/swagger"
)

// @title Gear Tracker API
// @version 1.0
// @description API for uploading equipment captures and replaying them into a change history.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the gear tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The history feature stays disabled without a database
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		created, err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region)
		cancel()
		if err != nil {
			logg.Fatal("Failed to prepare capture bucket", zap.Error(err))
		}
		if created {
			logg.Info("Created capture bucket", zap.String("bucket", cfg.Storage.Bucket))
		}

		opts, err := cfg.Replay.Options(logg)
		if err != nil {
			logg.Fatal("Invalid replay configuration", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager()
		captures := capture.NewFeature(store, cfg.Storage.Bucket, logg)
		mgr.Register(captures)
		mgr.Register(history.NewFeature(db, captures.Store(), opts, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.Region, db, logg))

		// RayID first so every later log line carries it
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

		// Swagger is public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("enabled", mgr.Enabled()))

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
