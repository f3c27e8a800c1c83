package cmd

import (
	"context"
	"log"

	"listing-manager/core/config"
	"listing-manager/core/logger"
	"listing-manager/feature/listing"
	"listing-manager/feature/platform"
	"listing-manager/feature/pricing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pricingCmd runs the pricing agent once over every listing and exits.
var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Run the pricing agent over all listings",
	Long: `Computes a suggested price for every listing from competitor quotes and
persists the suggestions, then exits. Useful from cron or for a one-off run.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		// No notifier: a pricing run should not emit creation events.
		svc := listing.NewService(listing.NewStore(cfg.Store.Path), nil, logg)
		publisher := platform.NewPublisher(cfg.Platform, logg)
		agent := pricing.NewAgent(svc, publisher, logg)

		updated, err := agent.RunAll(context.Background())
		if err != nil {
			logg.Fatal("Pricing run failed", zap.Error(err))
		}

		logg.Info("Pricing run completed", zap.Int("updated", len(updated)))
		for _, l := range updated {
			logg.Info("Listing repriced",
				zap.String("id", l.ID),
				zap.String("title", l.Title),
				zap.Float64("price", l.Price),
			)
		}
	},
}

func init() {
	RootCmd.AddCommand(pricingCmd)
}
