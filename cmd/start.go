package cmd

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"listing-manager/core/config"
	"listing-manager/core/logger"
	"listing-manager/core/metrics"
	"listing-manager/core/middleware/rayid"
	"listing-manager/core/notify"

	"listing-manager/core/loader"
	"listing-manager/feature/ai"
	"listing-manager/feature/calendar"
	"listing-manager/feature/listing"
	"listing-manager/feature/platform"
	"listing-manager/feature/pricing"
	"listing-manager/feature/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the listing manager server",
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

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 4. Build shared services
		notifier := notify.New(cfg.Notify, logg)
		queue := webhook.NewRedisQueue(cfg.Queue)

		listingFeature := listing.NewFeature(cfg.Store, notifier, logg)
		platformFeature := platform.NewFeature(cfg.Platform, listingFeature.Service(), logg)

		// 5. Initialize Feature Loader
		// Platform must load before listing so its static /listings/compare
		// route is matched ahead of the listing feature's /listings/:id.
		mgr := loader.NewManager()
		mgr.Register(platformFeature)
		mgr.Register(listingFeature)
		mgr.Register(pricing.NewFeature(listingFeature.Service(), platformFeature.Publisher(), logg))
		mgr.Register(calendar.NewFeature(listingFeature.Service(), platformFeature.Publisher(), logg))
		mgr.Register(webhook.NewFeature(queue, logg))
		mgr.Register(ai.NewFeature(cfg.AI, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. CORS for the dashboard frontend. Origins() trims the
		// configured list so stray whitespace never reaches the matcher.
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.Server.Origins(), ","),
		}))

		// 3. Logging Middleware (Custom to use Zap + RayID)
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

		// Operational endpoints
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/metrics", metrics.Handler())

		// 6. Load Features under the API prefix
		api := app.Group("/api/v1")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		// Let in-flight listing notifications finish before exit.
		listingFeature.Service().Drain()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
