// Command importer copies the launch CSV into a SQLite file the dashboard
// can load in its place (DASHBOARD_DATASET_PATH=launches.db).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"SpaceXLaunchDashboard/internal/dataset"
	"SpaceXLaunchDashboard/internal/logging"
	"SpaceXLaunchDashboard/internal/storage"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		csvPath string
		dbPath  string
	)

	cmd := &cobra.Command{
		Use:   "importer",
		Short: "Import the SpaceX launch CSV into SQLite",
		Long: `Validates the launch CSV with the same rules the dashboard applies at
startup, then replaces the contents of the SQLite launches table with it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			table, err := dataset.Load(ctx, csvPath)
			if err != nil {
				return err
			}

			store, err := storage.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ReplaceLaunches(ctx, table.Records()); err != nil {
				return err
			}
			n, err := store.CountLaunches(ctx)
			if err != nil {
				return err
			}

			slog.Info("importer: launches imported", "csv", csvPath, "db", dbPath, "records", n)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d launches into %s\n", n, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "spacex_launch_dash.csv", "launch CSV to import")
	cmd.Flags().StringVar(&dbPath, "db", "launches.db", "SQLite file to write")
	return cmd
}

func main() {
	slog.SetDefault(logging.New(os.Stderr, "info", "text"))
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
