package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

var flashCardColumns = []string{
	"id", "front", "back", "category", "difficulty_level",
	"reference", "notes", "is_active", "created_at",
}

// FlashCardRepo is the flashcard catalog on SQLite.
type FlashCardRepo struct {
	db *sql.DB
}

// NewFlashCardRepo creates a new FlashCardRepo.
func NewFlashCardRepo(db *sql.DB) *FlashCardRepo {
	return &FlashCardRepo{db: db}
}

// Create inserts a single catalog card.
func (r *FlashCardRepo) Create(ctx context.Context, c domain.FlashCard) error {
	query, args, err := builder().
		Insert("flashcards").
		Columns(flashCardColumns...).
		Values(c.ID, c.Front, c.Back, c.Category, c.DifficultyLevel,
			c.Reference, c.Notes, c.IsActive, toMicros(c.CreatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create flashcard query: %w", err)
	}

	if _, err := querierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "flashcard", c.ID)
	}
	return nil
}

// UpsertBatch inserts cards or refreshes existing ones by ID. created_at of an
// existing card is kept.
func (r *FlashCardRepo) UpsertBatch(ctx context.Context, cards []domain.FlashCard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	b := builder().
		Insert("flashcards").
		Columns(flashCardColumns...)
	for _, c := range cards {
		b = b.Values(c.ID, c.Front, c.Back, c.Category, c.DifficultyLevel,
			c.Reference, c.Notes, c.IsActive, toMicros(c.CreatedAt))
	}

	query, args, err := b.Suffix(`ON CONFLICT (id) DO UPDATE SET
		front = excluded.front,
		back = excluded.back,
		category = excluded.category,
		difficulty_level = excluded.difficulty_level,
		reference = excluded.reference,
		notes = excluded.notes,
		is_active = excluded.is_active`).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert flashcards query: %w", err)
	}

	res, err := querierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "flashcard", cards[0].ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("upsert flashcards rows affected: %w", err)
	}
	return int(n), nil
}

// GetActiveByID returns an active card or domain.ErrNotFound.
func (r *FlashCardRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (domain.FlashCard, error) {
	query, args, err := builder().
		Select(flashCardColumns...).
		From("flashcards").
		Where(sq.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return domain.FlashCard{}, fmt.Errorf("build get flashcard query: %w", err)
	}

	card, err := scanFlashCard(querierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.FlashCard{}, mapError(err, "flashcard", id)
	}
	return card, nil
}

// ListActive returns active cards ordered by created_at, then id.
// A zero filter.Limit means no limit.
func (r *FlashCardRepo) ListActive(ctx context.Context, filter domain.FlashCardFilter) ([]domain.FlashCard, error) {
	b := builder().
		Select(flashCardColumns...).
		From("flashcards").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at ASC", "id ASC")

	if filter.Category != nil {
		b = b.Where(sq.Eq{"category": *filter.Category})
	}
	if len(filter.ExcludeIDs) > 0 {
		b = b.Where(sq.NotEq{"id": filter.ExcludeIDs})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flashcards query: %w", err)
	}

	rows, err := querierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards := []domain.FlashCard{}
	for rows.Next() {
		card, err := scanFlashCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}
	return cards, nil
}

// CountActive returns the number of active cards.
func (r *FlashCardRepo) CountActive(ctx context.Context) (int, error) {
	query, args, err := builder().
		Select("count(*)").
		From("flashcards").
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count flashcards query: %w", err)
	}

	var count int
	if err := querierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count flashcards: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFlashCard(row scanner) (domain.FlashCard, error) {
	var (
		c         domain.FlashCard
		reference sql.NullString
		notes     sql.NullString
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.Front, &c.Back, &c.Category, &c.DifficultyLevel,
		&reference, &notes, &c.IsActive, &createdAt); err != nil {
		return domain.FlashCard{}, err
	}
	if reference.Valid {
		c.Reference = &reference.String
	}
	if notes.Valid {
		c.Notes = &notes.String
	}
	c.CreatedAt = fromMicros(createdAt)
	return c, nil
}
