package study

import (
	"context"
	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc     func(ctx context.Context, rl domain.ReviewLog) error
	ListByCardFunc func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, limit int, offset int) ([]domain.ReviewLog, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rl  domain.ReviewLog
		}
		ListByCard []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate     sync.RWMutex
	lockListByCard sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, rl domain.ReviewLog) error {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rl  domain.ReviewLog
	}{Ctx: ctx, Rl: rl}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rl)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rl  domain.ReviewLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) ListByCard(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, limit int, offset int) ([]domain.ReviewLog, int, error) {
	if mock.ListByCardFunc == nil {
		panic("reviewLogRepoMock.ListByCardFunc: method is nil but reviewLogRepo.ListByCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, CardID: cardID, Limit: limit, Offset: offset}
	mock.lockListByCard.Lock()
	mock.calls.ListByCard = append(mock.calls.ListByCard, callInfo)
	mock.lockListByCard.Unlock()
	return mock.ListByCardFunc(ctx, userID, cardID, limit, offset)
}

func (mock *reviewLogRepoMock) ListByCardCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByCard.RLock()
	calls := mock.calls.ListByCard
	mock.lockListByCard.RUnlock()
	return calls
}
