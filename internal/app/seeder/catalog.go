package seeder

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

const maxCategoryLen = 64

// catalogNamespace derives stable card IDs for entries without an explicit id,
// so re-importing the same file updates cards instead of duplicating them.
var catalogNamespace = uuid.MustParse("6f1c3a52-4b8e-5d2a-9c71-0e4f8a6b2d13")

// CatalogFile is the on-disk catalog format.
type CatalogFile struct {
	Cards []CatalogCard `yaml:"cards"`
}

// CatalogCard is one card entry of a catalog file.
type CatalogCard struct {
	ID              string `yaml:"id"`
	Front           string `yaml:"front"`
	Back            string `yaml:"back"`
	Category        string `yaml:"category"`
	DifficultyLevel string `yaml:"difficulty_level"`
	Reference       string `yaml:"reference"`
	Notes           string `yaml:"notes"`
	Active          *bool  `yaml:"active"`
}

// ParseCatalog decodes a catalog file. Unknown keys are rejected.
func ParseCatalog(r io.Reader) (CatalogFile, error) {
	var f CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return CatalogFile{}, nil
		}
		return CatalogFile{}, fmt.Errorf("decode catalog: %w", err)
	}
	return f, nil
}

// EntryError describes a catalog entry that could not be imported.
type EntryError struct {
	Index int
	Err   error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("card #%d: %v", e.Index+1, e.Err)
}

func (e EntryError) Unwrap() error { return e.Err }

// ToFlashCards converts catalog entries into domain cards. Entries that fail
// validation are returned as EntryErrors and left out. created_at follows
// file order, one microsecond apart, so the catalog lists cards as written.
func (f CatalogFile) ToFlashCards(now time.Time) ([]domain.FlashCard, []EntryError) {
	base := now.UTC().Truncate(time.Microsecond)
	cards := make([]domain.FlashCard, 0, len(f.Cards))
	seen := make(map[uuid.UUID]int, len(f.Cards))
	var errs []EntryError

	for i, entry := range f.Cards {
		card, err := entry.toFlashCard(base.Add(time.Duration(i) * time.Microsecond))
		if err == nil {
			if first, dup := seen[card.ID]; dup {
				err = fmt.Errorf("duplicate of card #%d", first+1)
			}
		}
		if err != nil {
			errs = append(errs, EntryError{Index: i, Err: err})
			continue
		}
		seen[card.ID] = i
		cards = append(cards, card)
	}
	return cards, errs
}

func (c CatalogCard) toFlashCard(createdAt time.Time) (domain.FlashCard, error) {
	front := strings.TrimSpace(c.Front)
	back := strings.TrimSpace(c.Back)
	category := strings.TrimSpace(c.Category)

	switch {
	case front == "":
		return domain.FlashCard{}, errors.New("front is required")
	case back == "":
		return domain.FlashCard{}, errors.New("back is required")
	case category == "":
		return domain.FlashCard{}, errors.New("category is required")
	case len(category) > maxCategoryLen:
		return domain.FlashCard{}, fmt.Errorf("category longer than %d characters", maxCategoryLen)
	}

	id := uuid.NewSHA1(catalogNamespace, []byte(category+"\x00"+front))
	if c.ID != "" {
		parsed, err := uuid.Parse(c.ID)
		if err != nil {
			return domain.FlashCard{}, fmt.Errorf("invalid id %q: %w", c.ID, err)
		}
		id = parsed
	}

	level := strings.TrimSpace(c.DifficultyLevel)
	if level == "" {
		level = domain.DefaultDifficultyLevel
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return domain.FlashCard{
		ID:              id,
		Front:           front,
		Back:            back,
		Category:        category,
		DifficultyLevel: level,
		Reference:       optional(c.Reference),
		Notes:           optional(c.Notes),
		IsActive:        active,
		CreatedAt:       createdAt,
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
