// Command seed_recipes writes sample recipes into the configured store backend
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/config"
	"github.com/tasteit/tasteit/backend/internal/database"
	"github.com/tasteit/tasteit/backend/internal/logger"
)

var (
	count  int
	seed   uint64
	dryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "seed_recipes",
	Short: "Write sample recipes into the recipe store",
	Long: `Generates reproducible sample recipes and writes them, with their creators,
into the backend selected by STORE_BACKEND. Use --dry-run to print them instead.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.Flags().IntVarP(&count, "count", "n", 25, "Number of recipes to generate")
	rootCmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the recipes as JSON without writing them")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if count < 1 {
		return fmt.Errorf("--count must be positive")
	}

	start := time.Now().Add(-time.Duration(count) * time.Hour)
	recipes := newGenerator(seed, start).recipes(count)

	if dryRun {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(recipes)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Environment == config.Production, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()
	backend, err := database.OpenBackend(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	defer backend.Close()

	created, err := backend.Seeder.Seed(ctx, recipes)
	if err != nil {
		return fmt.Errorf("seeded %d of %d recipes: %w", created, len(recipes), err)
	}

	log.Info("seeded recipes",
		zap.String("backend", cfg.StoreBackend),
		zap.Int("count", created),
		zap.Uint64("seed", seed),
	)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
