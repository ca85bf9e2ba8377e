package rest

import (
	"context"
	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/internal/service/study"
	"github.com/google/uuid"
	"sync"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	GetCardHistoryFunc  func(ctx context.Context, input study.GetCardHistoryInput) ([]domain.ReviewLog, int, error)
	GetCardProgressFunc func(ctx context.Context, cardID uuid.UUID) (*domain.ReviewState, error)
	GetDueCardsFunc     func(ctx context.Context, input study.GetDueCardsInput) ([]domain.FlashCard, error)
	GetFlashCardFunc    func(ctx context.Context, cardID uuid.UUID) (*domain.FlashCard, error)
	GetProgressFunc     func(ctx context.Context) (domain.StudyProgress, error)
	ListFlashCardsFunc  func(ctx context.Context, input study.ListFlashCardsInput) ([]domain.FlashCard, error)
	ReviewCardFunc      func(ctx context.Context, input study.ReviewCardInput) (*domain.ReviewState, error)

	calls struct {
		GetCardHistory []struct {
			Ctx   context.Context
			Input study.GetCardHistoryInput
		}
		GetCardProgress []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		GetDueCards []struct {
			Ctx   context.Context
			Input study.GetDueCardsInput
		}
		GetFlashCard []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		GetProgress []struct {
			Ctx context.Context
		}
		ListFlashCards []struct {
			Ctx   context.Context
			Input study.ListFlashCardsInput
		}
		ReviewCard []struct {
			Ctx   context.Context
			Input study.ReviewCardInput
		}
	}
	lockGetCardHistory  sync.RWMutex
	lockGetCardProgress sync.RWMutex
	lockGetDueCards     sync.RWMutex
	lockGetFlashCard    sync.RWMutex
	lockGetProgress     sync.RWMutex
	lockListFlashCards  sync.RWMutex
	lockReviewCard      sync.RWMutex
}

func (mock *studyServiceMock) GetCardHistory(ctx context.Context, input study.GetCardHistoryInput) ([]domain.ReviewLog, int, error) {
	if mock.GetCardHistoryFunc == nil {
		panic("studyServiceMock.GetCardHistoryFunc: method is nil but studyService.GetCardHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetCardHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockGetCardHistory.Lock()
	mock.calls.GetCardHistory = append(mock.calls.GetCardHistory, callInfo)
	mock.lockGetCardHistory.Unlock()
	return mock.GetCardHistoryFunc(ctx, input)
}

func (mock *studyServiceMock) GetCardHistoryCalls() []struct {
	Ctx   context.Context
	Input study.GetCardHistoryInput
} {
	mock.lockGetCardHistory.RLock()
	calls := mock.calls.GetCardHistory
	mock.lockGetCardHistory.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCardProgress(ctx context.Context, cardID uuid.UUID) (*domain.ReviewState, error) {
	if mock.GetCardProgressFunc == nil {
		panic("studyServiceMock.GetCardProgressFunc: method is nil but studyService.GetCardProgress was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetCardProgress.Lock()
	mock.calls.GetCardProgress = append(mock.calls.GetCardProgress, callInfo)
	mock.lockGetCardProgress.Unlock()
	return mock.GetCardProgressFunc(ctx, cardID)
}

func (mock *studyServiceMock) GetCardProgressCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetCardProgress.RLock()
	calls := mock.calls.GetCardProgress
	mock.lockGetCardProgress.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetDueCards(ctx context.Context, input study.GetDueCardsInput) ([]domain.FlashCard, error) {
	if mock.GetDueCardsFunc == nil {
		panic("studyServiceMock.GetDueCardsFunc: method is nil but studyService.GetDueCards was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetDueCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockGetDueCards.Lock()
	mock.calls.GetDueCards = append(mock.calls.GetDueCards, callInfo)
	mock.lockGetDueCards.Unlock()
	return mock.GetDueCardsFunc(ctx, input)
}

func (mock *studyServiceMock) GetDueCardsCalls() []struct {
	Ctx   context.Context
	Input study.GetDueCardsInput
} {
	mock.lockGetDueCards.RLock()
	calls := mock.calls.GetDueCards
	mock.lockGetDueCards.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetFlashCard(ctx context.Context, cardID uuid.UUID) (*domain.FlashCard, error) {
	if mock.GetFlashCardFunc == nil {
		panic("studyServiceMock.GetFlashCardFunc: method is nil but studyService.GetFlashCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetFlashCard.Lock()
	mock.calls.GetFlashCard = append(mock.calls.GetFlashCard, callInfo)
	mock.lockGetFlashCard.Unlock()
	return mock.GetFlashCardFunc(ctx, cardID)
}

func (mock *studyServiceMock) GetFlashCardCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetFlashCard.RLock()
	calls := mock.calls.GetFlashCard
	mock.lockGetFlashCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetProgress(ctx context.Context) (domain.StudyProgress, error) {
	if mock.GetProgressFunc == nil {
		panic("studyServiceMock.GetProgressFunc: method is nil but studyService.GetProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx)
}

func (mock *studyServiceMock) GetProgressCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListFlashCards(ctx context.Context, input study.ListFlashCardsInput) ([]domain.FlashCard, error) {
	if mock.ListFlashCardsFunc == nil {
		panic("studyServiceMock.ListFlashCardsFunc: method is nil but studyService.ListFlashCards was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.ListFlashCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockListFlashCards.Lock()
	mock.calls.ListFlashCards = append(mock.calls.ListFlashCards, callInfo)
	mock.lockListFlashCards.Unlock()
	return mock.ListFlashCardsFunc(ctx, input)
}

func (mock *studyServiceMock) ListFlashCardsCalls() []struct {
	Ctx   context.Context
	Input study.ListFlashCardsInput
} {
	mock.lockListFlashCards.RLock()
	calls := mock.calls.ListFlashCards
	mock.lockListFlashCards.RUnlock()
	return calls
}

func (mock *studyServiceMock) ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.ReviewState, error) {
	if mock.ReviewCardFunc == nil {
		panic("studyServiceMock.ReviewCardFunc: method is nil but studyService.ReviewCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.ReviewCardInput
	}{Ctx: ctx, Input: input}
	mock.lockReviewCard.Lock()
	mock.calls.ReviewCard = append(mock.calls.ReviewCard, callInfo)
	mock.lockReviewCard.Unlock()
	return mock.ReviewCardFunc(ctx, input)
}

func (mock *studyServiceMock) ReviewCardCalls() []struct {
	Ctx   context.Context
	Input study.ReviewCardInput
} {
	mock.lockReviewCard.RLock()
	calls := mock.calls.ReviewCard
	mock.lockReviewCard.RUnlock()
	return calls
}
