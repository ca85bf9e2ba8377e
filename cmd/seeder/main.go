// Command seeder imports the flashcard catalog from a YAML file into the
// configured store. It is intended to be run offline, not as part of the
// main server. Re-running it with the same file updates cards in place.
//
// Flags:
//
//	--catalog        path to the catalog YAML file (overrides config)
//	--dry-run        parse and validate the catalog without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/alhidayah/hidayah-backend/internal/adapter/postgres"
	"github.com/alhidayah/hidayah-backend/internal/adapter/postgres/flashcard"
	"github.com/alhidayah/hidayah-backend/internal/adapter/sqlite"
	"github.com/alhidayah/hidayah-backend/internal/app"
	"github.com/alhidayah/hidayah-backend/internal/app/seeder"
	"github.com/alhidayah/hidayah-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.CardWriter = (*flashcard.Repo)(nil)
	_ seeder.CardWriter = (*sqlite.FlashCardRepo)(nil)
)

func main() {
	catalogFlag := flag.String("catalog", "", "path to the catalog YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the catalog without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	// Load seeder config.
	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *catalogFlag != "" {
		seederCfg.CatalogPath = *catalogFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var repo seeder.CardWriter
	switch appCfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, appCfg.Database.DSN)
		if err != nil {
			logger.Error("open sqlite", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		repo = sqlite.NewFlashCardRepo(db)
	default:
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		repo = flashcard.New(pool)
	}

	pipeline := seeder.NewPipeline(logger, repo, *seederCfg)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res := pipeline.Result()
	if pipeline.HasErrors() {
		logger.Warn("import completed with rejected entries",
			slog.Int("written", res.Written),
			slog.Int("rejected", res.Errors),
		)
		os.Exit(1)
	}

	logger.Info("import completed successfully",
		slog.Int("written", res.Written),
		slog.Int("skipped", res.Skipped),
		slog.Duration("duration", res.Duration),
	)
}
