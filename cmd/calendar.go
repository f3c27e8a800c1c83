package cmd

import (
	"context"
	"log"

	"listing-manager/core/config"
	"listing-manager/core/logger"
	"listing-manager/feature/calendar"
	"listing-manager/feature/listing"
	"listing-manager/feature/platform"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// calendarCmd runs the calendar sync agent once over every listing and exits.
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Sync listing availability from the remote platform calendars",
	Long: `Reconciles every published listing's availability flag against the remote
calendar of the platform it is published on, then exits. Useful from cron.`,
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

		// No notifier: a sync run should not emit creation events.
		svc := listing.NewService(listing.NewStore(cfg.Store.Path), nil, logg)
		publisher := platform.NewPublisher(cfg.Platform, logg)
		agent := calendar.NewAgent(svc, publisher, logg)

		results, err := agent.SyncAll(context.Background())
		if err != nil {
			logg.Fatal("Calendar sync failed", zap.Error(err))
		}

		logg.Info("Calendar sync completed", zap.Int("listings", len(results)))
		for _, r := range results {
			if r.Skipped {
				logg.Info("Listing skipped, no remote ids", zap.String("id", r.ID))
				continue
			}
			logg.Info("Listing synced",
				zap.String("id", r.ID),
				zap.String("platform", r.Platform),
				zap.Bool("available", r.Listing.Available),
			)
		}
	},
}

func init() {
	RootCmd.AddCommand(calendarCmd)
}
