// Command migrate imports the static launch content into Firestore. Each
// subcommand targets one content area; "all" runs everything. Imports skip
// collections that already hold documents, so reruns are safe.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sikhaidindia/backend/internal/backend"
	"github.com/sikhaidindia/backend/internal/config"
	"github.com/sikhaidindia/backend/internal/migration"
	"github.com/sikhaidindia/backend/internal/store"
)

var dryRun bool

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Import the static launch content into Firestore",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "run against an in-memory store instead of Firestore")

	root.AddCommand(
		migrateCmd("blogs", "Import the launch blog posts", func(ctx context.Context, r *migration.Runner) ([]migration.Result, error) {
			res, err := r.MigrateBlogs(ctx)
			return []migration.Result{res}, err
		}),
		migrateCmd("campaigns", "Import the launch campaign pages", func(ctx context.Context, r *migration.Runner) ([]migration.Result, error) {
			res, err := r.MigrateCampaigns(ctx)
			return []migration.Result{res}, err
		}),
		migrateCmd("press", "Import the launch press coverage", func(ctx context.Context, r *migration.Runner) ([]migration.Result, error) {
			res, err := r.MigratePress(ctx)
			return []migration.Result{res}, err
		}),
		migrateCmd("content", "Import the celebrity cards and testimonials", func(ctx context.Context, r *migration.Runner) ([]migration.Result, error) {
			return r.MigrateContent(ctx)
		}),
		migrateCmd("all", "Import every content area", func(ctx context.Context, r *migration.Runner) ([]migration.Result, error) {
			return r.MigrateAll(ctx)
		}),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd(use, short string, run func(context.Context, *migration.Runner) ([]migration.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			results, err := run(ctx, migration.NewRunner(s))
			for _, res := range results {
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			return nil
		},
	}
}

func openStore(ctx context.Context) (store.DocStore, func(), error) {
	if dryRun {
		slog.Info("Dry run: using in-memory store")
		return store.NewMemStore(), func() {}, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	guard := backend.NewGuard(cfg)
	h, err := guard.EnsureReady(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store.NewFirestoreStore(h.Firestore), func() { _ = h.Close() }, nil
}
