package seeder

import (
	"context"
	"github.com/alhidayah/hidayah-backend/internal/domain"
	"sync"
)

var _ CardWriter = &CardWriterMock{}

type CardWriterMock struct {
	UpsertBatchFunc func(ctx context.Context, cards []domain.FlashCard) (int, error)

	calls struct {
		UpsertBatch []struct {
			Ctx   context.Context
			Cards []domain.FlashCard
		}
	}
	lockUpsertBatch sync.RWMutex
}

func (mock *CardWriterMock) UpsertBatch(ctx context.Context, cards []domain.FlashCard) (int, error) {
	if mock.UpsertBatchFunc == nil {
		panic("CardWriterMock.UpsertBatchFunc: method is nil but CardWriter.UpsertBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Cards []domain.FlashCard
	}{Ctx: ctx, Cards: cards}
	mock.lockUpsertBatch.Lock()
	mock.calls.UpsertBatch = append(mock.calls.UpsertBatch, callInfo)
	mock.lockUpsertBatch.Unlock()
	return mock.UpsertBatchFunc(ctx, cards)
}

func (mock *CardWriterMock) UpsertBatchCalls() []struct {
	Ctx   context.Context
	Cards []domain.FlashCard
} {
	mock.lockUpsertBatch.RLock()
	calls := mock.calls.UpsertBatch
	mock.lockUpsertBatch.RUnlock()
	return calls
}
