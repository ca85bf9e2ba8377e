package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/internal/service/study"
)

// studyService defines the minimal interface needed by FlashCardHandler.
type studyService interface {
	GetDueCards(ctx context.Context, input study.GetDueCardsInput) ([]domain.FlashCard, error)
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.ReviewState, error)
	ListFlashCards(ctx context.Context, input study.ListFlashCardsInput) ([]domain.FlashCard, error)
	GetFlashCard(ctx context.Context, cardID uuid.UUID) (*domain.FlashCard, error)
	GetCardProgress(ctx context.Context, cardID uuid.UUID) (*domain.ReviewState, error)
	GetCardHistory(ctx context.Context, input study.GetCardHistoryInput) ([]domain.ReviewLog, int, error)
	GetProgress(ctx context.Context) (domain.StudyProgress, error)
}

// FlashCardHandler serves the flashcard and study REST endpoints.
type FlashCardHandler struct {
	svc studyService
	log *slog.Logger
}

// NewFlashCardHandler creates a FlashCardHandler.
func NewFlashCardHandler(svc studyService, logger *slog.Logger) *FlashCardHandler {
	return &FlashCardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

// Register mounts the handler's routes on mux.
func (h *FlashCardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/flashcards", h.List)
	mux.HandleFunc("GET /api/flashcards/due", h.Due)
	mux.HandleFunc("GET /api/flashcards/{cardID}", h.Get)
	mux.HandleFunc("POST /api/flashcards/{cardID}/review", h.Review)
	mux.HandleFunc("GET /api/flashcards/{cardID}/progress", h.Progress)
	mux.HandleFunc("GET /api/flashcards/{cardID}/history", h.History)
	mux.HandleFunc("GET /api/study/progress", h.Dashboard)
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type flashCardResponse struct {
	ID              string    `json:"id"`
	Front           string    `json:"front"`
	Back            string    `json:"back"`
	Category        string    `json:"category"`
	DifficultyLevel string    `json:"difficultyLevel"`
	Reference       *string   `json:"reference,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type reviewStateResponse struct {
	CardID         string     `json:"cardId"`
	EaseFactor     float64    `json:"easeFactor"`
	IntervalDays   int        `json:"intervalDays"`
	Repetitions    int        `json:"repetitions"`
	NextReviewDate time.Time  `json:"nextReviewDate"`
	LastReviewDate *time.Time `json:"lastReviewDate,omitempty"`
	TotalReviews   int        `json:"totalReviews"`
	SuccessRate    float64    `json:"successRate"`
	IsMastered     bool       `json:"isMastered"`
}

type reviewLogResponse struct {
	ID           string    `json:"id"`
	Quality      int       `json:"quality"`
	IntervalDays int       `json:"intervalDays"`
	EaseFactor   float64   `json:"easeFactor"`
	Repetitions  int       `json:"repetitions"`
	ReviewedAt   time.Time `json:"reviewedAt"`
}

type historyResponse struct {
	Items []reviewLogResponse `json:"items"`
	Total int                 `json:"total"`
}

type progressResponse struct {
	DueCount      int `json:"dueCount"`
	NewCount      int `json:"newCount"`
	LearningCount int `json:"learningCount"`
	MasteredCount int `json:"masteredCount"`
	TotalReviews  int `json:"totalReviews"`
}

type reviewRequest struct {
	Quality *int `json:"quality"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// List handles GET /api/flashcards?category=.
func (h *FlashCardHandler) List(w http.ResponseWriter, r *http.Request) {
	var input study.ListFlashCardsInput
	if q := r.URL.Query(); q.Has("category") {
		c := q.Get("category")
		input.Category = &c
	}

	cards, err := h.svc.ListFlashCards(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashCardsResponse(cards))
}

// Due handles GET /api/flashcards/due?limit=N.
func (h *FlashCardHandler) Due(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	cards, err := h.svc.GetDueCards(r.Context(), study.GetDueCardsInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashCardsResponse(cards))
}

// Get handles GET /api/flashcards/{cardID}.
func (h *FlashCardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathCardID(w, r)
	if !ok {
		return
	}

	card, err := h.svc.GetFlashCard(r.Context(), cardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashCardResponse(*card))
}

// Review handles POST /api/flashcards/{cardID}/review with {"quality": n}.
func (h *FlashCardHandler) Review(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathCardID(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quality == nil {
		handleError(h.log, w, r, domain.NewValidationError("quality", "required"))
		return
	}

	state, err := h.svc.ReviewCard(r.Context(), study.ReviewCardInput{
		CardID:  cardID,
		Quality: domain.Quality(*req.Quality),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewStateResponse(*state))
}

// Progress handles GET /api/flashcards/{cardID}/progress.
func (h *FlashCardHandler) Progress(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathCardID(w, r)
	if !ok {
		return
	}

	state, err := h.svc.GetCardProgress(r.Context(), cardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewStateResponse(*state))
}

// History handles GET /api/flashcards/{cardID}/history?limit=&offset=.
func (h *FlashCardHandler) History(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathCardID(w, r)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	logs, total, err := h.svc.GetCardHistory(r.Context(), study.GetCardHistoryInput{
		CardID: cardID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := historyResponse{Items: make([]reviewLogResponse, 0, len(logs)), Total: total}
	for _, l := range logs {
		resp.Items = append(resp.Items, reviewLogResponse{
			ID:           l.ID.String(),
			Quality:      int(l.Quality),
			IntervalDays: l.IntervalDays,
			EaseFactor:   l.EaseFactor,
			Repetitions:  l.Repetitions,
			ReviewedAt:   l.ReviewedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Dashboard handles GET /api/study/progress.
func (h *FlashCardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{
		DueCount:      p.DueCount,
		NewCount:      p.NewCount,
		LearningCount: p.LearningCount,
		MasteredCount: p.MasteredCount,
		TotalReviews:  p.TotalReviews,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func pathCardID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("cardID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []fieldError{{Field: "card_id", Message: "must be a UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []fieldError{{Field: name, Message: "must be an integer"}},
		})
		return 0, false
	}
	return v, true
}

func toFlashCardResponse(c domain.FlashCard) flashCardResponse {
	return flashCardResponse{
		ID:              c.ID.String(),
		Front:           c.Front,
		Back:            c.Back,
		Category:        c.Category,
		DifficultyLevel: c.DifficultyLevel,
		Reference:       c.Reference,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
	}
}

func toFlashCardsResponse(cards []domain.FlashCard) []flashCardResponse {
	out := make([]flashCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toFlashCardResponse(c))
	}
	return out
}

func toReviewStateResponse(s domain.ReviewState) reviewStateResponse {
	return reviewStateResponse{
		CardID:         s.CardID.String(),
		EaseFactor:     s.EaseFactor,
		IntervalDays:   s.IntervalDays,
		Repetitions:    s.Repetitions,
		NextReviewDate: s.NextReviewDate,
		LastReviewDate: s.LastReviewDate,
		TotalReviews:   s.TotalReviews,
		SuccessRate:    s.SuccessRate,
		IsMastered:     s.IsMastered,
	}
}
