package study

import (
	"context"
	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ stateRepo = &stateRepoMock{}

type stateRepoMock struct {
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStatusCounts, error)
	GetFunc           func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (domain.ReviewState, error)
	GetDueFunc        func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.FlashCard, error)
	ListCardIDsFunc   func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	UpsertFunc        func(ctx context.Context, state domain.ReviewState) (domain.ReviewState, error)

	calls struct {
		CountByStatus []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
		}
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		GetDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
			Limit  int
		}
		ListCardIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx   context.Context
			State domain.ReviewState
		}
	}
	lockCountByStatus sync.RWMutex
	lockGet           sync.RWMutex
	lockGetDue        sync.RWMutex
	lockListCardIDs   sync.RWMutex
	lockUpsert        sync.RWMutex
}

func (mock *stateRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStatusCounts, error) {
	if mock.CountByStatusFunc == nil {
		panic("stateRepoMock.CountByStatusFunc: method is nil but stateRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Now: now}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, userID, now)
}

func (mock *stateRepoMock) CountByStatusCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *stateRepoMock) Get(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (domain.ReviewState, error) {
	if mock.GetFunc == nil {
		panic("stateRepoMock.GetFunc: method is nil but stateRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, cardID)
}

func (mock *stateRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *stateRepoMock) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.FlashCard, error) {
	if mock.GetDueFunc == nil {
		panic("stateRepoMock.GetDueFunc: method is nil but stateRepo.GetDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, Now: now, Limit: limit}
	mock.lockGetDue.Lock()
	mock.calls.GetDue = append(mock.calls.GetDue, callInfo)
	mock.lockGetDue.Unlock()
	return mock.GetDueFunc(ctx, userID, now, limit)
}

func (mock *stateRepoMock) GetDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
	Limit  int
} {
	mock.lockGetDue.RLock()
	calls := mock.calls.GetDue
	mock.lockGetDue.RUnlock()
	return calls
}

func (mock *stateRepoMock) ListCardIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListCardIDsFunc == nil {
		panic("stateRepoMock.ListCardIDsFunc: method is nil but stateRepo.ListCardIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListCardIDs.Lock()
	mock.calls.ListCardIDs = append(mock.calls.ListCardIDs, callInfo)
	mock.lockListCardIDs.Unlock()
	return mock.ListCardIDsFunc(ctx, userID)
}

func (mock *stateRepoMock) ListCardIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListCardIDs.RLock()
	calls := mock.calls.ListCardIDs
	mock.lockListCardIDs.RUnlock()
	return calls
}

func (mock *stateRepoMock) Upsert(ctx context.Context, state domain.ReviewState) (domain.ReviewState, error) {
	if mock.UpsertFunc == nil {
		panic("stateRepoMock.UpsertFunc: method is nil but stateRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State domain.ReviewState
	}{Ctx: ctx, State: state}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, state)
}

func (mock *stateRepoMock) UpsertCalls() []struct {
	Ctx   context.Context
	State domain.ReviewState
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
