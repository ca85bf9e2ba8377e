package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

const stateReturning = `RETURNING user_id, card_id, ease_factor, interval_days, repetitions,
    next_review_date, last_review_date, total_reviews, success_rate,
    is_mastered, version, created_at, updated_at`

// ReviewStateRepo is the per-user SM-2 state store on SQLite. Writes use the
// same optimistic version check as the PostgreSQL store.
type ReviewStateRepo struct {
	db *sql.DB
}

// NewReviewStateRepo creates a new ReviewStateRepo.
func NewReviewStateRepo(db *sql.DB) *ReviewStateRepo {
	return &ReviewStateRepo{db: db}
}

// Get returns the state for (userID, cardID) or domain.ErrNotFound.
func (r *ReviewStateRepo) Get(ctx context.Context, userID, cardID uuid.UUID) (domain.ReviewState, error) {
	query, args, err := builder().
		Select("user_id", "card_id", "ease_factor", "interval_days", "repetitions",
			"next_review_date", "last_review_date", "total_reviews", "success_rate",
			"is_mastered", "version", "created_at", "updated_at").
		From("review_states").
		Where(sq.Eq{"user_id": userID, "card_id": cardID}).
		ToSql()
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("build get review state query: %w", err)
	}

	s, err := scanState(querierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.ReviewState{}, mapError(err, "review_state", stateKey(userID, cardID))
	}
	return s, nil
}

// GetDue returns the cards of non-mastered states due at now whose card is
// still active, ordered by next_review_date then card_id.
func (r *ReviewStateRepo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.FlashCard, error) {
	b := builder().
		Select("c.id", "c.front", "c.back", "c.category", "c.difficulty_level",
			"c.reference", "c.notes", "c.is_active", "c.created_at").
		From("review_states rs").
		Join("flashcards c ON c.id = rs.card_id").
		Where(sq.Eq{"rs.user_id": userID, "rs.is_mastered": false, "c.is_active": true}).
		Where(sq.LtOrEq{"rs.next_review_date": toMicros(now)}).
		OrderBy("rs.next_review_date ASC", "rs.card_id ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due states query: %w", err)
	}

	rows, err := querierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get due states: %w", err)
	}
	defer rows.Close()

	cards := []domain.FlashCard{}
	for rows.Next() {
		c, err := scanFlashCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan due card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due cards: %w", err)
	}
	return cards, nil
}

// ListCardIDs returns the IDs of every card the user has a state for.
func (r *ReviewStateRepo) ListCardIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := builder().
		Select("card_id").
		From("review_states").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list card ids query: %w", err)
	}

	rows, err := querierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviewed card ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan card id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card ids: %w", err)
	}
	return ids, nil
}

// CountByStatus returns the user's state counts over active cards.
func (r *ReviewStateRepo) CountByStatus(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStatusCounts, error) {
	query, args, err := builder().
		Select().
		Column(sq.Expr("coalesce(sum(CASE WHEN NOT rs.is_mastered AND rs.next_review_date <= ? THEN 1 ELSE 0 END), 0)", toMicros(now))).
		Column("coalesce(sum(CASE WHEN NOT rs.is_mastered THEN 1 ELSE 0 END), 0)").
		Column("coalesce(sum(CASE WHEN rs.is_mastered THEN 1 ELSE 0 END), 0)").
		Column("coalesce(sum(rs.total_reviews), 0)").
		From("review_states rs").
		Join("flashcards c ON c.id = rs.card_id").
		Where(sq.Eq{"rs.user_id": userID, "c.is_active": true}).
		ToSql()
	if err != nil {
		return domain.ReviewStatusCounts{}, fmt.Errorf("build count states query: %w", err)
	}

	var c domain.ReviewStatusCounts
	if err := querierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).
		Scan(&c.Due, &c.Learning, &c.Mastered, &c.Reviews); err != nil {
		return domain.ReviewStatusCounts{}, fmt.Errorf("count review states: %w", err)
	}
	return c, nil
}

// Upsert writes s if the stored row is still at s.Version and returns the
// persisted state. Version 0 inserts at version 1; a lost race yields
// domain.ErrConflict.
func (r *ReviewStateRepo) Upsert(ctx context.Context, s domain.ReviewState) (domain.ReviewState, error) {
	var (
		query string
		args  []any
		err   error
	)

	if s.IsNew() {
		query, args, err = builder().
			Insert("review_states").
			Columns("user_id", "card_id", "ease_factor", "interval_days", "repetitions",
				"next_review_date", "last_review_date", "total_reviews", "success_rate",
				"is_mastered", "version", "created_at", "updated_at").
			Values(s.UserID, s.CardID, s.EaseFactor, s.IntervalDays, s.Repetitions,
				toMicros(s.NextReviewDate), toNullMicros(s.LastReviewDate), s.TotalReviews, s.SuccessRate,
				s.IsMastered, 1, toMicros(s.CreatedAt), toMicros(s.UpdatedAt)).
			Suffix("ON CONFLICT (user_id, card_id) DO NOTHING " + stateReturning).
			ToSql()
	} else {
		query, args, err = builder().
			Update("review_states").
			Set("ease_factor", s.EaseFactor).
			Set("interval_days", s.IntervalDays).
			Set("repetitions", s.Repetitions).
			Set("next_review_date", toMicros(s.NextReviewDate)).
			Set("last_review_date", toNullMicros(s.LastReviewDate)).
			Set("total_reviews", s.TotalReviews).
			Set("success_rate", s.SuccessRate).
			Set("is_mastered", s.IsMastered).
			Set("version", sq.Expr("version + 1")).
			Set("updated_at", toMicros(s.UpdatedAt)).
			Where(sq.Eq{"user_id": s.UserID, "card_id": s.CardID, "version": s.Version}).
			Suffix(stateReturning).
			ToSql()
	}
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("build upsert review state query: %w", err)
	}

	saved, err := scanState(querierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ReviewState{}, fmt.Errorf("review_state %s: version %d: %w", stateKey(s.UserID, s.CardID), s.Version, domain.ErrConflict)
	}
	if err != nil {
		return domain.ReviewState{}, mapError(err, "review_state", stateKey(s.UserID, s.CardID))
	}
	return saved, nil
}

func stateKey(userID, cardID uuid.UUID) string {
	return "user=" + userID.String() + "/card=" + cardID.String()
}

func scanState(row scanner) (domain.ReviewState, error) {
	var (
		s                  domain.ReviewState
		next, created, upd int64
		last               sql.NullInt64
	)
	if err := row.Scan(&s.UserID, &s.CardID, &s.EaseFactor, &s.IntervalDays, &s.Repetitions,
		&next, &last, &s.TotalReviews, &s.SuccessRate,
		&s.IsMastered, &s.Version, &created, &upd); err != nil {
		return domain.ReviewState{}, err
	}
	s.NextReviewDate = fromMicros(next)
	s.LastReviewDate = fromNullMicros(last)
	s.CreatedAt = fromMicros(created)
	s.UpdatedAt = fromMicros(upd)
	return s, nil
}
