// Package reviewstate implements the per-user SM-2 state store using PostgreSQL.
// Writes are guarded by an optimistic version column: Upsert succeeds only if
// the row is still at the version the caller read.
package reviewstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/alhidayah/hidayah-backend/internal/adapter/postgres"
	"github.com/alhidayah/hidayah-backend/internal/domain"
)

var columns = []string{
	"rs.user_id", "rs.card_id", "rs.ease_factor", "rs.interval_days", "rs.repetitions",
	"rs.next_review_date", "rs.last_review_date", "rs.total_reviews", "rs.success_rate",
	"rs.is_mastered", "rs.version", "rs.created_at", "rs.updated_at",
}

const returning = `RETURNING user_id, card_id, ease_factor, interval_days, repetitions,
    next_review_date, last_review_date, total_reviews, success_rate,
    is_mastered, version, created_at, updated_at`

// Repo provides review state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the state for (userID, cardID) or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, cardID uuid.UUID) (domain.ReviewState, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("review_states rs").
		Where(sq.Eq{"rs.user_id": userID, "rs.card_id": cardID}).
		ToSql()
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("build get review state query: %w", err)
	}

	s, err := scanState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ReviewState{}, postgres.MapError(err, "review_state", key(userID, cardID))
	}
	return s, nil
}

// GetDue returns non-mastered states due at now whose card is still active,
// ordered by next_review_date then card_id, together with their cards.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.FlashCard, error) {
	b := postgres.Builder().
		Select("c.id", "c.front", "c.back", "c.category", "c.difficulty_level",
			"c.reference", "c.notes", "c.is_active", "c.created_at").
		From("review_states rs").
		Join("flashcards c ON c.id = rs.card_id").
		Where(sq.Eq{"rs.user_id": userID, "rs.is_mastered": false, "c.is_active": true}).
		Where(sq.LtOrEq{"rs.next_review_date": now}).
		OrderBy("rs.next_review_date ASC", "rs.card_id ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due states query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get due states: %w", err)
	}
	defer rows.Close()

	cards := []domain.FlashCard{}
	for rows.Next() {
		var c domain.FlashCard
		if err := rows.Scan(&c.ID, &c.Front, &c.Back, &c.Category, &c.DifficultyLevel,
			&c.Reference, &c.Notes, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan due card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due cards: %w", err)
	}

	return cards, nil
}

// ListCardIDs returns the IDs of every card the user has a state for,
// mastered or not.
func (r *Repo) ListCardIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("card_id").
		From("review_states").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list card ids query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviewed card ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("collect reviewed card ids: %w", err)
	}
	return ids, nil
}

// CountByStatus returns the user's state counts over active cards.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStatusCounts, error) {
	query, args, err := postgres.Builder().
		Select().
		Column(sq.Expr("count(*) FILTER (WHERE NOT rs.is_mastered AND rs.next_review_date <= ?)", now)).
		Column("count(*) FILTER (WHERE NOT rs.is_mastered)").
		Column("count(*) FILTER (WHERE rs.is_mastered)").
		Column("coalesce(sum(rs.total_reviews), 0)").
		From("review_states rs").
		Join("flashcards c ON c.id = rs.card_id").
		Where(sq.Eq{"rs.user_id": userID, "c.is_active": true}).
		ToSql()
	if err != nil {
		return domain.ReviewStatusCounts{}, fmt.Errorf("build count states query: %w", err)
	}

	var c domain.ReviewStatusCounts
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&c.Due, &c.Learning, &c.Mastered, &c.Reviews); err != nil {
		return domain.ReviewStatusCounts{}, fmt.Errorf("count review states: %w", err)
	}
	return c, nil
}

// Upsert writes s if the stored row is still at s.Version and returns the
// persisted state with its new version. A state with Version 0 is inserted
// at version 1. When another writer got there first the result is
// domain.ErrConflict.
func (r *Repo) Upsert(ctx context.Context, s domain.ReviewState) (domain.ReviewState, error) {
	var (
		query string
		args  []any
		err   error
	)

	if s.IsNew() {
		query, args, err = postgres.Builder().
			Insert("review_states").
			Columns("user_id", "card_id", "ease_factor", "interval_days", "repetitions",
				"next_review_date", "last_review_date", "total_reviews", "success_rate",
				"is_mastered", "version", "created_at", "updated_at").
			Values(s.UserID, s.CardID, s.EaseFactor, s.IntervalDays, s.Repetitions,
				s.NextReviewDate, s.LastReviewDate, s.TotalReviews, s.SuccessRate,
				s.IsMastered, 1, s.CreatedAt, s.UpdatedAt).
			Suffix("ON CONFLICT (user_id, card_id) DO NOTHING " + returning).
			ToSql()
	} else {
		query, args, err = postgres.Builder().
			Update("review_states").
			Set("ease_factor", s.EaseFactor).
			Set("interval_days", s.IntervalDays).
			Set("repetitions", s.Repetitions).
			Set("next_review_date", s.NextReviewDate).
			Set("last_review_date", s.LastReviewDate).
			Set("total_reviews", s.TotalReviews).
			Set("success_rate", s.SuccessRate).
			Set("is_mastered", s.IsMastered).
			Set("version", sq.Expr("version + 1")).
			Set("updated_at", s.UpdatedAt).
			Where(sq.Eq{"user_id": s.UserID, "card_id": s.CardID, "version": s.Version}).
			Suffix(returning).
			ToSql()
	}
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("build upsert review state query: %w", err)
	}

	saved, err := scanState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		// No row back: the version moved or a concurrent insert won.
		return domain.ReviewState{}, fmt.Errorf("review_state %s: version %d: %w", key(s.UserID, s.CardID), s.Version, domain.ErrConflict)
	}
	if err != nil {
		return domain.ReviewState{}, postgres.MapError(err, "review_state", key(s.UserID, s.CardID))
	}
	return saved, nil
}

func key(userID, cardID uuid.UUID) string {
	return "user=" + userID.String() + "/card=" + cardID.String()
}

func scanState(row pgx.Row) (domain.ReviewState, error) {
	var s domain.ReviewState
	err := row.Scan(
		&s.UserID, &s.CardID, &s.EaseFactor, &s.IntervalDays, &s.Repetitions,
		&s.NextReviewDate, &s.LastReviewDate, &s.TotalReviews, &s.SuccessRate,
		&s.IsMastered, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}
