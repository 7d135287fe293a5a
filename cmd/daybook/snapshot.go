package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybookhq/daybook/internal/api"
	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/dashboard"
	"github.com/daybookhq/daybook/internal/store"
)

var snapshotUser string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one dashboard snapshot as JSON",
	Long:  "Assemble a dashboard snapshot for a user against the configured database and print it to stdout, without running the server.",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotUser, "user", api.DefaultUser, "User to render the snapshot for")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout stays a clean JSON document.
	setupLogger(cfg, os.Stderr)

	db, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	compositor := dashboard.New(db, newQuoteProvider(cfg))

	snapshot, err := compositor.Snapshot(cmd.Context(), snapshotUser, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("assemble snapshot: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot)
}
