package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

var _ vocabRepo = &vocabRepoMock{}

type vocabRepoMock struct {
	GetByIDFunc   func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Vocabulary, error)
	GetDueFunc    func(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.Vocabulary, error)
	UpdateSRSFunc func(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error

	calls struct {
		GetByID []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		GetDue []struct {
			OwnerID       uuid.UUID
			TerminalStage int
			Now           time.Time
			Limit         int
		}
		UpdateSRS []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
			Update  domain.SRSUpdate
		}
	}
	lockGetByID   sync.RWMutex
	lockGetDue    sync.RWMutex
	lockUpdateSRS sync.RWMutex
}

func (mock *vocabRepoMock) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Vocabulary, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabRepoMock.GetByIDFunc: method is nil but vocabRepo.GetByID was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *vocabRepoMock) GetByIDCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *vocabRepoMock) GetDue(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.Vocabulary, error) {
	if mock.GetDueFunc == nil {
		panic("vocabRepoMock.GetDueFunc: method is nil but vocabRepo.GetDue was just called")
	}
	callInfo := struct {
		OwnerID       uuid.UUID
		TerminalStage int
		Now           time.Time
		Limit         int
	}{OwnerID: ownerID, TerminalStage: terminalStage, Now: now, Limit: limit}
	mock.lockGetDue.Lock()
	mock.calls.GetDue = append(mock.calls.GetDue, callInfo)
	mock.lockGetDue.Unlock()
	return mock.GetDueFunc(ctx, ownerID, terminalStage, now, limit)
}

func (mock *vocabRepoMock) GetDueCalls() []struct {
	OwnerID       uuid.UUID
	TerminalStage int
	Now           time.Time
	Limit         int
} {
	mock.lockGetDue.RLock()
	calls := mock.calls.GetDue
	mock.lockGetDue.RUnlock()
	return calls
}

func (mock *vocabRepoMock) UpdateSRS(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error {
	if mock.UpdateSRSFunc == nil {
		panic("vocabRepoMock.UpdateSRSFunc: method is nil but vocabRepo.UpdateSRS was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
		Update  domain.SRSUpdate
	}{OwnerID: ownerID, ID: id, Update: update}
	mock.lockUpdateSRS.Lock()
	mock.calls.UpdateSRS = append(mock.calls.UpdateSRS, callInfo)
	mock.lockUpdateSRS.Unlock()
	return mock.UpdateSRSFunc(ctx, ownerID, id, update)
}

func (mock *vocabRepoMock) UpdateSRSCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  domain.SRSUpdate
} {
	mock.lockUpdateSRS.RLock()
	calls := mock.calls.UpdateSRS
	mock.lockUpdateSRS.RUnlock()
	return calls
}

var _ grammarRepo = &grammarRepoMock{}

type grammarRepoMock struct {
	GetByIDFunc   func(ctx context.Context, ownerID, id uuid.UUID) (*domain.GrammarPoint, error)
	GetDueFunc    func(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.GrammarPoint, error)
	UpdateSRSFunc func(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error

	calls struct {
		GetByID []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		GetDue []struct {
			OwnerID       uuid.UUID
			TerminalStage int
			Now           time.Time
			Limit         int
		}
		UpdateSRS []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
			Update  domain.SRSUpdate
		}
	}
	lockGetByID   sync.RWMutex
	lockGetDue    sync.RWMutex
	lockUpdateSRS sync.RWMutex
}

func (mock *grammarRepoMock) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.GrammarPoint, error) {
	if mock.GetByIDFunc == nil {
		panic("grammarRepoMock.GetByIDFunc: method is nil but grammarRepo.GetByID was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *grammarRepoMock) GetByIDCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *grammarRepoMock) GetDue(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.GrammarPoint, error) {
	if mock.GetDueFunc == nil {
		panic("grammarRepoMock.GetDueFunc: method is nil but grammarRepo.GetDue was just called")
	}
	callInfo := struct {
		OwnerID       uuid.UUID
		TerminalStage int
		Now           time.Time
		Limit         int
	}{OwnerID: ownerID, TerminalStage: terminalStage, Now: now, Limit: limit}
	mock.lockGetDue.Lock()
	mock.calls.GetDue = append(mock.calls.GetDue, callInfo)
	mock.lockGetDue.Unlock()
	return mock.GetDueFunc(ctx, ownerID, terminalStage, now, limit)
}

func (mock *grammarRepoMock) GetDueCalls() []struct {
	OwnerID       uuid.UUID
	TerminalStage int
	Now           time.Time
	Limit         int
} {
	mock.lockGetDue.RLock()
	calls := mock.calls.GetDue
	mock.lockGetDue.RUnlock()
	return calls
}

func (mock *grammarRepoMock) UpdateSRS(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error {
	if mock.UpdateSRSFunc == nil {
		panic("grammarRepoMock.UpdateSRSFunc: method is nil but grammarRepo.UpdateSRS was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
		Update  domain.SRSUpdate
	}{OwnerID: ownerID, ID: id, Update: update}
	mock.lockUpdateSRS.Lock()
	mock.calls.UpdateSRS = append(mock.calls.UpdateSRS, callInfo)
	mock.lockUpdateSRS.Unlock()
	return mock.UpdateSRSFunc(ctx, ownerID, id, update)
}

func (mock *grammarRepoMock) UpdateSRSCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  domain.SRSUpdate
} {
	mock.lockUpdateSRS.RLock()
	calls := mock.calls.UpdateSRS
	mock.lockUpdateSRS.RUnlock()
	return calls
}

var _ reviewEventRepo = &reviewEventRepoMock{}

type reviewEventRepoMock struct {
	CreateFunc     func(ctx context.Context, ev *domain.ReviewEvent) (*domain.ReviewEvent, error)
	ListByItemFunc func(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID, limit int) ([]*domain.ReviewEvent, error)

	calls struct {
		Create []struct {
			Ev *domain.ReviewEvent
		}
		ListByItem []struct {
			OwnerID  uuid.UUID
			ItemType domain.ItemType
			ItemID   uuid.UUID
			Limit    int
		}
	}
	lockCreate     sync.RWMutex
	lockListByItem sync.RWMutex
}

func (mock *reviewEventRepoMock) Create(ctx context.Context, ev *domain.ReviewEvent) (*domain.ReviewEvent, error) {
	if mock.CreateFunc == nil {
		panic("reviewEventRepoMock.CreateFunc: method is nil but reviewEventRepo.Create was just called")
	}
	callInfo := struct {
		Ev *domain.ReviewEvent
	}{Ev: ev}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *reviewEventRepoMock) CreateCalls() []struct {
	Ev *domain.ReviewEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewEventRepoMock) ListByItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID, limit int) ([]*domain.ReviewEvent, error) {
	if mock.ListByItemFunc == nil {
		panic("reviewEventRepoMock.ListByItemFunc: method is nil but reviewEventRepo.ListByItem was just called")
	}
	callInfo := struct {
		OwnerID  uuid.UUID
		ItemType domain.ItemType
		ItemID   uuid.UUID
		Limit    int
	}{OwnerID: ownerID, ItemType: itemType, ItemID: itemID, Limit: limit}
	mock.lockListByItem.Lock()
	mock.calls.ListByItem = append(mock.calls.ListByItem, callInfo)
	mock.lockListByItem.Unlock()
	return mock.ListByItemFunc(ctx, ownerID, itemType, itemID, limit)
}

func (mock *reviewEventRepoMock) ListByItemCalls() []struct {
	OwnerID  uuid.UUID
	ItemType domain.ItemType
	ItemID   uuid.UUID
	Limit    int
} {
	mock.lockListByItem.RLock()
	calls := mock.calls.ListByItem
	mock.lockListByItem.RUnlock()
	return calls
}

var _ contextLinkRepo = &contextLinkRepoMock{}

type contextLinkRepoMock struct {
	ListByKeyFunc func(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, key string) ([]*domain.ContextLink, error)

	calls struct {
		ListByKey []struct {
			OwnerID  uuid.UUID
			ItemType domain.ItemType
			Key      string
		}
	}
	lockListByKey sync.RWMutex
}

func (mock *contextLinkRepoMock) ListByKey(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, key string) ([]*domain.ContextLink, error) {
	if mock.ListByKeyFunc == nil {
		panic("contextLinkRepoMock.ListByKeyFunc: method is nil but contextLinkRepo.ListByKey was just called")
	}
	callInfo := struct {
		OwnerID  uuid.UUID
		ItemType domain.ItemType
		Key      string
	}{OwnerID: ownerID, ItemType: itemType, Key: key}
	mock.lockListByKey.Lock()
	mock.calls.ListByKey = append(mock.calls.ListByKey, callInfo)
	mock.lockListByKey.Unlock()
	return mock.ListByKeyFunc(ctx, ownerID, itemType, key)
}

func (mock *contextLinkRepoMock) ListByKeyCalls() []struct {
	OwnerID  uuid.UUID
	ItemType domain.ItemType
	Key      string
} {
	mock.lockListByKey.RLock()
	calls := mock.calls.ListByKey
	mock.lockListByKey.RUnlock()
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
