// Package flashcard implements the flashcard catalog using PostgreSQL.
package flashcard

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/alhidayah/hidayah-backend/internal/adapter/postgres"
	"github.com/alhidayah/hidayah-backend/internal/domain"
)

var columns = []string{
	"id", "front", "back", "category", "difficulty_level",
	"reference", "notes", "is_active", "created_at",
}

// Repo provides the flashcard catalog backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetActiveByID returns an active card. Missing and retired cards both
// produce domain.ErrNotFound.
func (r *Repo) GetActiveByID(ctx context.Context, id uuid.UUID) (domain.FlashCard, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("flashcards").
		Where(sq.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return domain.FlashCard{}, fmt.Errorf("build get flashcard query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	card, err := scanCard(row)
	if err != nil {
		return domain.FlashCard{}, postgres.MapError(err, "flashcard", id)
	}
	return card, nil
}

// ListActive returns active cards ordered by created_at, then id.
// A zero filter.Limit means no limit.
func (r *Repo) ListActive(ctx context.Context, filter domain.FlashCardFilter) ([]domain.FlashCard, error) {
	b := postgres.Builder().
		Select(columns...).
		From("flashcards").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at ASC", "id ASC")

	if filter.Category != nil {
		b = b.Where(sq.Eq{"category": *filter.Category})
	}
	if len(filter.ExcludeIDs) > 0 {
		b = b.Where("NOT (id = ANY(?))", filter.ExcludeIDs)
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flashcards query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards := []domain.FlashCard{}
	for rows.Next() {
		card, err := scanCard(rows)
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

// CountActive returns the number of active cards in the catalog.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("flashcards").
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count flashcards query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count flashcards: %w", err)
	}
	return count, nil
}

// upsertSuffix refreshes card content on re-import but keeps created_at so
// the catalog order of existing cards does not move.
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	front = EXCLUDED.front,
	back = EXCLUDED.back,
	category = EXCLUDED.category,
	difficulty_level = EXCLUDED.difficulty_level,
	reference = EXCLUDED.reference,
	notes = EXCLUDED.notes,
	is_active = EXCLUDED.is_active`

// UpsertBatch inserts cards or refreshes existing ones by ID in a single
// statement and returns the number of rows written.
func (r *Repo) UpsertBatch(ctx context.Context, cards []domain.FlashCard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	b := postgres.Builder().
		Insert("flashcards").
		Columns(columns...)
	for _, c := range cards {
		b = b.Values(c.ID, c.Front, c.Back, c.Category, c.DifficultyLevel,
			c.Reference, c.Notes, c.IsActive, c.CreatedAt)
	}

	query, args, err := b.Suffix(upsertSuffix).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert flashcards query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "flashcard", cards[0].ID)
	}
	return int(tag.RowsAffected()), nil
}

func scanCard(row pgx.Row) (domain.FlashCard, error) {
	var c domain.FlashCard
	err := row.Scan(
		&c.ID, &c.Front, &c.Back, &c.Category, &c.DifficultyLevel,
		&c.Reference, &c.Notes, &c.IsActive, &c.CreatedAt,
	)
	return c, err
}
