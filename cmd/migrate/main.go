// Command migrate manages the order database schema.
//
// Usage:
//
//	migrate up          # Apply all pending migrations
//	migrate down        # Rollback the last migration
//	migrate down --all  # Rollback every migration
//	migrate version     # Show current migration version
//	migrate force N     # Force version to N (fix dirty state)
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var databaseURL string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the EZ Help order database schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database URL (defaults to DATABASE_URL)")

	withRunner := func(fn func(*database.MigrationRunner) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			url := databaseURL
			if url == "" {
				url = os.Getenv("DATABASE_URL")
			}
			cfg := config.ParseDatabaseURL(url)
			log.Printf("Database type: %s", cfg.Driver)

			runner, err := database.NewMigrationRunner(cfg, nil)
			if err != nil {
				return err
			}
			defer runner.Close()
			return fn(runner)
		}
	}

	var all bool
	down := &cobra.Command{
		Use:   "down",
		Short: "Rollback the last migration",
		Args:  cobra.NoArgs,
		RunE: withRunner(func(r *database.MigrationRunner) error {
			if all {
				return r.Down()
			}
			return r.Steps(-1)
		}),
	}
	down.Flags().BoolVar(&all, "all", false, "rollback every migration (deletes all data)")

	force := &cobra.Command{
		Use:   "force N",
		Short: "Force the schema version to N without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version number: %s", args[0])
			}
			return withRunner(func(r *database.MigrationRunner) error {
				return r.Force(version)
			})(cmd, args)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  withRunner(func(r *database.MigrationRunner) error { return r.Up() }),
		},
		down,
		&cobra.Command{
			Use:   "version",
			Short: "Show the current migration version",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(r *database.MigrationRunner) error {
				status, err := r.Version()
				if err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}),
		},
		force,
	)
	return root
}
