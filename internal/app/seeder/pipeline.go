package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

// Result holds the outcome of a catalog import.
type Result struct {
	Parsed   int
	Written  int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline reads a catalog file and writes it to the store in batches.
type Pipeline struct {
	log    *slog.Logger
	repo   CardWriter
	cfg    Config
	now    func() time.Time
	result Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo CardWriter, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log,
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Result returns the import outcome after Run completes.
func (p *Pipeline) Result() Result {
	return p.result
}

// HasErrors reports whether any catalog entry was rejected.
func (p *Pipeline) HasErrors() bool {
	return p.result.Errors > 0
}

// Run imports the configured catalog file. Invalid entries are logged and
// counted; a store failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) error {
	start := p.now()
	defer func() { p.result.Duration = p.now().Sub(start) }()

	if p.cfg.CatalogPath == "" {
		return fmt.Errorf("catalog path not configured")
	}

	f, err := os.Open(p.cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	catalog, err := ParseCatalog(f)
	if err != nil {
		return err
	}

	cards, entryErrs := catalog.ToFlashCards(start)
	for _, e := range entryErrs {
		p.log.Warn("catalog entry rejected",
			slog.Int("entry", e.Index+1),
			slog.String("error", e.Err.Error()),
		)
	}
	p.result.Parsed = len(catalog.Cards)
	p.result.Errors = len(entryErrs)
	p.log.Info("catalog parsed",
		slog.String("path", p.cfg.CatalogPath),
		slog.Int("cards", len(cards)),
		slog.Int("rejected", len(entryErrs)),
	)

	if p.cfg.DryRun {
		p.result.Skipped = len(cards)
		return nil
	}

	written, err := batchProcess(cards, p.cfg.BatchSize, func(batch []domain.FlashCard) (int, error) {
		return p.repo.UpsertBatch(ctx, batch)
	})
	p.result.Written = written
	if err != nil {
		return fmt.Errorf("upsert cards: %w", err)
	}

	p.log.Info("catalog imported", slog.Int("written", written))
	return nil
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
