// Package reviewlog implements the append-only review log using PostgreSQL.
package reviewlog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/alhidayah/hidayah-backend/internal/adapter/postgres"
	"github.com/alhidayah/hidayah-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a review log entry.
func (r *Repo) Create(ctx context.Context, rl domain.ReviewLog) error {
	query, args, err := postgres.Builder().
		Insert("review_logs").
		Columns("id", "user_id", "card_id", "quality", "interval_days", "ease_factor", "repetitions", "reviewed_at").
		Values(rl.ID, rl.UserID, rl.CardID, int(rl.Quality), rl.IntervalDays, rl.EaseFactor, rl.Repetitions, rl.ReviewedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create review_log query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "review_log", rl.ID)
	}
	return nil
}

// ListByCard returns the user's review logs for a card, newest first, with
// limit/offset pagination, and the total number of logs.
// limit=0 means no limit.
func (r *Repo) ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	where := sq.Eq{"user_id": userID, "card_id": cardID}

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("review_logs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count review_logs query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count review_logs: %w", err)
	}

	b := postgres.Builder().
		Select("id", "user_id", "card_id", "quality", "interval_days", "ease_factor", "repetitions", "reviewed_at").
		From("review_logs").
		Where(where).
		OrderBy("reviewed_at DESC", "id DESC").
		Offset(uint64(offset))
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list review_logs query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list review_logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.ReviewLog{}
	for rows.Next() {
		var (
			rl      domain.ReviewLog
			quality int
		)
		if err := rows.Scan(&rl.ID, &rl.UserID, &rl.CardID, &quality,
			&rl.IntervalDays, &rl.EaseFactor, &rl.Repetitions, &rl.ReviewedAt); err != nil {
			return nil, 0, fmt.Errorf("scan review_log: %w", err)
		}
		rl.Quality = domain.Quality(quality)
		logs = append(logs, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate review_logs: %w", err)
	}

	return logs, total, nil
}
