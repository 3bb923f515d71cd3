package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mongodb "github.com/clinicdesk/clinic-portal/internal/infrastructure/db/mongo"
	"github.com/clinicdesk/clinic-portal/internal/infrastructure/memory"
)

func seedStaffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-staff",
		Short: "Upsert the default staff registry into MongoDB",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(ctx) }()

			directory := mongodb.NewStaffDirectory(db)
			if err := directory.EnsureIndexes(ctx); err != nil {
				return err
			}
			n, err := directory.Seed(ctx, memory.DefaultStaff())
			if err != nil {
				return err
			}

			log.Info().Int("upserted", n).Str("database", cfg.Mongo.Database).Msg("staff registry seeded")
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d staff members\n", n)
			return nil
		},
	}
}
