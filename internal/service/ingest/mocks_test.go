package ingest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

var _ vocabRepo = &vocabRepoMock{}

type vocabRepoMock struct {
	GetByWordFunc func(ctx context.Context, ownerID uuid.UUID, word string) (*domain.Vocabulary, error)
	CreateFunc    func(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)
	DeleteFunc    func(ctx context.Context, ownerID, id uuid.UUID) error

	calls struct {
		GetByWord []struct {
			OwnerID uuid.UUID
			Word    string
		}
		Create []struct {
			V *domain.Vocabulary
		}
		Delete []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockGetByWord sync.RWMutex
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *vocabRepoMock) GetByWord(ctx context.Context, ownerID uuid.UUID, word string) (*domain.Vocabulary, error) {
	if mock.GetByWordFunc == nil {
		panic("vocabRepoMock.GetByWordFunc: method is nil but vocabRepo.GetByWord was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		Word    string
	}{OwnerID: ownerID, Word: word}
	mock.lockGetByWord.Lock()
	mock.calls.GetByWord = append(mock.calls.GetByWord, callInfo)
	mock.lockGetByWord.Unlock()
	return mock.GetByWordFunc(ctx, ownerID, word)
}

func (mock *vocabRepoMock) GetByWordCalls() []struct {
	OwnerID uuid.UUID
	Word    string
} {
	mock.lockGetByWord.RLock()
	calls := mock.calls.GetByWord
	mock.lockGetByWord.RUnlock()
	return calls
}

func (mock *vocabRepoMock) Create(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	if mock.CreateFunc == nil {
		panic("vocabRepoMock.CreateFunc: method is nil but vocabRepo.Create was just called")
	}
	callInfo := struct {
		V *domain.Vocabulary
	}{V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *vocabRepoMock) CreateCalls() []struct {
	V *domain.Vocabulary
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *vocabRepoMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vocabRepoMock.DeleteFunc: method is nil but vocabRepo.Delete was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *vocabRepoMock) DeleteCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ grammarRepo = &grammarRepoMock{}

type grammarRepoMock struct {
	ListByPointFunc func(ctx context.Context, ownerID uuid.UUID, point, label string) ([]*domain.GrammarPoint, error)
	CreateFunc      func(ctx context.Context, g *domain.GrammarPoint) (*domain.GrammarPoint, error)
	DeleteFunc      func(ctx context.Context, ownerID, id uuid.UUID) error

	calls struct {
		ListByPoint []struct {
			OwnerID uuid.UUID
			Point   string
			Label   string
		}
		Create []struct {
			G *domain.GrammarPoint
		}
		Delete []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockListByPoint sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *grammarRepoMock) ListByPoint(ctx context.Context, ownerID uuid.UUID, point, label string) ([]*domain.GrammarPoint, error) {
	if mock.ListByPointFunc == nil {
		panic("grammarRepoMock.ListByPointFunc: method is nil but grammarRepo.ListByPoint was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		Point   string
		Label   string
	}{OwnerID: ownerID, Point: point, Label: label}
	mock.lockListByPoint.Lock()
	mock.calls.ListByPoint = append(mock.calls.ListByPoint, callInfo)
	mock.lockListByPoint.Unlock()
	return mock.ListByPointFunc(ctx, ownerID, point, label)
}

func (mock *grammarRepoMock) ListByPointCalls() []struct {
	OwnerID uuid.UUID
	Point   string
	Label   string
} {
	mock.lockListByPoint.RLock()
	calls := mock.calls.ListByPoint
	mock.lockListByPoint.RUnlock()
	return calls
}

func (mock *grammarRepoMock) Create(ctx context.Context, g *domain.GrammarPoint) (*domain.GrammarPoint, error) {
	if mock.CreateFunc == nil {
		panic("grammarRepoMock.CreateFunc: method is nil but grammarRepo.Create was just called")
	}
	callInfo := struct {
		G *domain.GrammarPoint
	}{G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *grammarRepoMock) CreateCalls() []struct {
	G *domain.GrammarPoint
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *grammarRepoMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("grammarRepoMock.DeleteFunc: method is nil but grammarRepo.Delete was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *grammarRepoMock) DeleteCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ contextLinkRepo = &contextLinkRepoMock{}

type contextLinkRepoMock struct {
	CreateFunc func(ctx context.Context, link *domain.ContextLink) (*domain.ContextLink, error)

	calls struct {
		Create []struct {
			Link *domain.ContextLink
		}
	}
	lockCreate sync.RWMutex
}

func (mock *contextLinkRepoMock) Create(ctx context.Context, link *domain.ContextLink) (*domain.ContextLink, error) {
	if mock.CreateFunc == nil {
		panic("contextLinkRepoMock.CreateFunc: method is nil but contextLinkRepo.Create was just called")
	}
	callInfo := struct {
		Link *domain.ContextLink
	}{Link: link}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, link)
}

func (mock *contextLinkRepoMock) CreateCalls() []struct {
	Link *domain.ContextLink
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ reviewEventRepo = &reviewEventRepoMock{}

type reviewEventRepoMock struct {
	DeleteByItemFunc func(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID) error

	calls struct {
		DeleteByItem []struct {
			OwnerID  uuid.UUID
			ItemType domain.ItemType
			ItemID   uuid.UUID
		}
	}
	lockDeleteByItem sync.RWMutex
}

func (mock *reviewEventRepoMock) DeleteByItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID) error {
	if mock.DeleteByItemFunc == nil {
		panic("reviewEventRepoMock.DeleteByItemFunc: method is nil but reviewEventRepo.DeleteByItem was just called")
	}
	callInfo := struct {
		OwnerID  uuid.UUID
		ItemType domain.ItemType
		ItemID   uuid.UUID
	}{OwnerID: ownerID, ItemType: itemType, ItemID: itemID}
	mock.lockDeleteByItem.Lock()
	mock.calls.DeleteByItem = append(mock.calls.DeleteByItem, callInfo)
	mock.lockDeleteByItem.Unlock()
	return mock.DeleteByItemFunc(ctx, ownerID, itemType, itemID)
}

func (mock *reviewEventRepoMock) DeleteByItemCalls() []struct {
	OwnerID  uuid.UUID
	ItemType domain.ItemType
	ItemID   uuid.UUID
} {
	mock.lockDeleteByItem.RLock()
	calls := mock.calls.DeleteByItem
	mock.lockDeleteByItem.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, like a transaction that always
// commits.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
