// Command seed resets the dashboard tables to the placeholder data without
// going through the HTTP server.
package main

import (
	"fmt"
	"os"
	"strings"

	"dashboard-seed-backend/internal/auth"
	"dashboard-seed-backend/internal/config"
	"dashboard-seed-backend/internal/database"
	"dashboard-seed-backend/internal/logging"
	"dashboard-seed-backend/internal/placeholder"
	service "dashboard-seed-backend/internal/services/seeding"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dsn    string
		driver string
	)

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Seed the dashboard database with placeholder data",
		Long:          `Drops and recreates the users, customers, invoices and revenue tables and fills them with the dashboard placeholder data in one transaction.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if dsn != "" {
				cfg.DatabaseURL = dsn
			}
			if driver != "" {
				cfg.DBDriver = strings.ToLower(strings.TrimSpace(driver))
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.Env, cfg.LogLevel)
			provider := database.ProviderFor(cfg, logger)
			defer provider.Close()

			svc := service.NewSeedService(provider, placeholder.Default(), auth.DefaultHasher, logger)
			summary, err := svc.Seed(cmd.Context())
			if err != nil {
				color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error seeding database: %v\n", err)
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintln(out, "Database seeded successfully")
			fmt.Fprintf(out, "  users:     %d\n", summary.Users)
			fmt.Fprintf(out, "  customers: %d\n", summary.Customers)
			fmt.Fprintf(out, "  invoices:  %d\n", summary.Invoices)
			fmt.Fprintf(out, "  revenue:   %d\n", summary.Revenue)
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "database connection string (overrides POSTGRES_URL)")
	cmd.Flags().StringVar(&driver, "driver", "", "database driver: postgres or sqlite (overrides DB_DRIVER)")
	return cmd
}
