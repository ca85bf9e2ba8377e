package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

// ReviewLogRepo is the append-only review log on SQLite.
type ReviewLogRepo struct {
	db *sql.DB
}

// NewReviewLogRepo creates a new ReviewLogRepo.
func NewReviewLogRepo(db *sql.DB) *ReviewLogRepo {
	return &ReviewLogRepo{db: db}
}

// Create appends a review log entry.
func (r *ReviewLogRepo) Create(ctx context.Context, rl domain.ReviewLog) error {
	query, args, err := builder().
		Insert("review_logs").
		Columns("id", "user_id", "card_id", "quality", "interval_days", "ease_factor", "repetitions", "reviewed_at").
		Values(rl.ID, rl.UserID, rl.CardID, int(rl.Quality), rl.IntervalDays, rl.EaseFactor, rl.Repetitions, toMicros(rl.ReviewedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create review_log query: %w", err)
	}

	if _, err := querierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "review_log", rl.ID)
	}
	return nil
}

// ListByCard returns the user's logs for a card, newest first, and the total
// count. limit=0 means no limit.
func (r *ReviewLogRepo) ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error) {
	q := querierFromCtx(ctx, r.db)
	where := sq.Eq{"user_id": userID, "card_id": cardID}

	countQuery, countArgs, err := builder().Select("count(*)").From("review_logs").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count review_logs query: %w", err)
	}

	var total int
	if err := q.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count review_logs: %w", err)
	}

	b := builder().
		Select("id", "user_id", "card_id", "quality", "interval_days", "ease_factor", "repetitions", "reviewed_at").
		From("review_logs").
		Where(where).
		OrderBy("reviewed_at DESC", "id DESC")
	// SQLite only accepts OFFSET after LIMIT; -1 means unbounded.
	switch {
	case limit > 0:
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	case offset > 0:
		b = b.Suffix(fmt.Sprintf("LIMIT -1 OFFSET %d", offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list review_logs query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list review_logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.ReviewLog{}
	for rows.Next() {
		var (
			rl         domain.ReviewLog
			quality    int
			reviewedAt int64
		)
		if err := rows.Scan(&rl.ID, &rl.UserID, &rl.CardID, &quality,
			&rl.IntervalDays, &rl.EaseFactor, &rl.Repetitions, &reviewedAt); err != nil {
			return nil, 0, fmt.Errorf("scan review_log: %w", err)
		}
		rl.Quality = domain.Quality(quality)
		rl.ReviewedAt = fromMicros(reviewedAt)
		logs = append(logs, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate review_logs: %w", err)
	}
	return logs, total, nil
}
