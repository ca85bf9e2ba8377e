package study

import (
	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

// maxDueLimit is the hard upper bound accepted for a due-set request.
// The configured maximum may only lower it.
const maxDueLimit = 200

// GetDueCardsInput holds the parameters for selecting the due set.
type GetDueCardsInput struct {
	// Limit of 0 selects the configured default.
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *GetDueCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxDueLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewCardInput holds the parameters for reviewing a card.
type ReviewCardInput struct {
	CardID  uuid.UUID
	Quality domain.Quality
}

// Validate checks the card ID first. A bad quality alone is reported as
// domain.ErrInvalidQuality so callers can match it with errors.Is.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Quality.IsValid() {
		if len(errs) == 0 {
			return domain.ErrInvalidQuality
		}
		errs = append(errs, domain.ErrInvalidQuality.Errors...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListFlashCardsInput holds the parameters for listing the catalog.
type ListFlashCardsInput struct {
	Category *string
}

// Validate checks all fields and collects all errors.
func (i *ListFlashCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && *i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must not be empty"})
	}
	if i.Category != nil && len(*i.Category) > 64 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetCardHistoryInput holds the parameters for paging a card's review log.
type GetCardHistoryInput struct {
	CardID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *GetCardHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
