package study

import (
	"context"
	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ catalog = &catalogMock{}

type catalogMock struct {
	CountActiveFunc   func(ctx context.Context) (int, error)
	GetActiveByIDFunc func(ctx context.Context, cardID uuid.UUID) (domain.FlashCard, error)
	ListActiveFunc    func(ctx context.Context, filter domain.FlashCardFilter) ([]domain.FlashCard, error)

	calls struct {
		CountActive []struct {
			Ctx context.Context
		}
		GetActiveByID []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		ListActive []struct {
			Ctx    context.Context
			Filter domain.FlashCardFilter
		}
	}
	lockCountActive   sync.RWMutex
	lockGetActiveByID sync.RWMutex
	lockListActive    sync.RWMutex
}

func (mock *catalogMock) CountActive(ctx context.Context) (int, error) {
	if mock.CountActiveFunc == nil {
		panic("catalogMock.CountActiveFunc: method is nil but catalog.CountActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountActive.Lock()
	mock.calls.CountActive = append(mock.calls.CountActive, callInfo)
	mock.lockCountActive.Unlock()
	return mock.CountActiveFunc(ctx)
}

func (mock *catalogMock) CountActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountActive.RLock()
	calls := mock.calls.CountActive
	mock.lockCountActive.RUnlock()
	return calls
}

func (mock *catalogMock) GetActiveByID(ctx context.Context, cardID uuid.UUID) (domain.FlashCard, error) {
	if mock.GetActiveByIDFunc == nil {
		panic("catalogMock.GetActiveByIDFunc: method is nil but catalog.GetActiveByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetActiveByID.Lock()
	mock.calls.GetActiveByID = append(mock.calls.GetActiveByID, callInfo)
	mock.lockGetActiveByID.Unlock()
	return mock.GetActiveByIDFunc(ctx, cardID)
}

func (mock *catalogMock) GetActiveByIDCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetActiveByID.RLock()
	calls := mock.calls.GetActiveByID
	mock.lockGetActiveByID.RUnlock()
	return calls
}

func (mock *catalogMock) ListActive(ctx context.Context, filter domain.FlashCardFilter) ([]domain.FlashCard, error) {
	if mock.ListActiveFunc == nil {
		panic("catalogMock.ListActiveFunc: method is nil but catalog.ListActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FlashCardFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, filter)
}

func (mock *catalogMock) ListActiveCalls() []struct {
	Ctx    context.Context
	Filter domain.FlashCardFilter
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
