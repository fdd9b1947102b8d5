package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"loyaltybot/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the versioned migrations in ./migrations against the configured
// database. Requires the atlas binary on PATH.
func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS("migrations")),
	)
	if err != nil {
		return fmt.Errorf("prepare working dir: %w", err)
	}
	defer func() {
		if err := workdir.Close(); err != nil {
			slog.Warn("working dir cleanup failed", "error", err)
		}
	}()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
