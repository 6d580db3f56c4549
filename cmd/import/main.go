// Command import bulk-loads legislator, committee, vote and bill dumps into
// the Postgres document store.
//
//	import -dir ./fixtures -database-url postgres://...
//
// Flags default to ROLLCALL_FIXTURES_DIR and ROLLCALL_DATABASE_URL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"rollcall/internal/legislators/store"
	"rollcall/internal/platform/config"
	"rollcall/internal/platform/logger"
)

type importConfig struct {
	Dir         string
	DatabaseURL string
}

func parseConfig(fs *flag.FlagSet, args []string, defaults config.Server) (importConfig, error) {
	var cfg importConfig
	fs.StringVar(&cfg.Dir, "dir", defaults.FixturesDir, "directory holding <collection>.json dumps")
	fs.StringVar(&cfg.DatabaseURL, "database-url", defaults.DatabaseURL, "postgres connection URL")
	if err := fs.Parse(args); err != nil {
		return importConfig{}, err
	}
	if cfg.Dir == "" {
		return importConfig{}, errors.New("-dir is required")
	}
	if cfg.DatabaseURL == "" {
		return importConfig{}, errors.New("-database-url is required")
	}
	return cfg, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "import: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults, err := config.FromEnv()
	if err != nil {
		return err
	}
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:], defaults)
	if err != nil {
		return err
	}
	log := logger.New(defaults.LogLevel, defaults.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	counts, err := store.NewImporter(pool).ImportDir(ctx, cfg.Dir)
	if err != nil {
		return err
	}
	for _, collection := range slices.Sorted(maps.Keys(counts)) {
		log.Info("collection imported", "collection", collection, "documents", counts[collection])
	}
	return nil
}
