package service

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/repository"
)

type orderService struct {
	slots    repository.SlotRepo
	invoices InvoiceService
	observer Observer

	mu    sync.Mutex
	draft domain.Draft
}

// NewOrderService creates an OrderService backed by the given slot
// store and invoice collection. Call Load before first use.
func NewOrderService(slots repository.SlotRepo, invoices InvoiceService, observer Observer) OrderService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &orderService{slots: slots, invoices: invoices, observer: observer}
}

func (s *orderService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Reset()

	if value, ok, err := s.slots.Get(ctx, repository.SlotDraft); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDraft, Op: "read", Err: err.Error()})
	} else if ok {
		var lines []domain.OrderLine
		if err := json.Unmarshal([]byte(value), &lines); err != nil {
			s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDraft, Op: "read", Err: err.Error()})
		} else {
			s.draft.Lines = lines
		}
	}

	if value, ok, err := s.slots.Get(ctx, repository.SlotDiscount); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDiscount, Op: "read", Err: err.Error()})
	} else if ok {
		if discount, err := strconv.Atoi(value); err == nil {
			s.draft.SetDiscount(discount)
		}
	}

	if value, ok, err := s.slots.Get(ctx, repository.SlotEditing); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotEditing, Op: "read", Err: err.Error()})
	} else if ok {
		var target editingTarget
		if err := json.Unmarshal([]byte(value), &target); err != nil {
			s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotEditing, Op: "read", Err: err.Error()})
		} else if target.ID != "" {
			s.draft.ResumeEdit(target.ID, target.CreatedAt)
		}
	}
}

// editingTarget is the persisted identity of the invoice an
// in-progress edit will update on commit.
type editingTarget struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

func (s *orderService) Draft() domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.draft
	snapshot.Lines = make([]domain.OrderLine, len(s.draft.Lines))
	copy(snapshot.Lines, s.draft.Lines)
	return snapshot
}

func (s *orderService) State() domain.DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.State()
}

func (s *orderService) AddItem(ctx context.Context, item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.AddItem(item)
	s.persistDraft(ctx)
}

func (s *orderService) SetQuantity(ctx context.Context, name string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetQuantity(name, quantity)
	s.persistDraft(ctx)
}

func (s *orderService) SetDiscount(ctx context.Context, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetDiscount(amount)
	s.persistDiscount(ctx)
}

func (s *orderService) BeginEdit(ctx context.Context, id string) (domain.Invoice, error) {
	inv, err := s.invoices.GetByID(id)
	if err != nil {
		return domain.Invoice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.BeginEdit(inv)
	s.persistDraft(ctx)
	s.persistDiscount(ctx)
	s.persistEditing(ctx)
	return inv, nil
}

func (s *orderService) Commit(ctx context.Context) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.draft.Lines) == 0 {
		return domain.Invoice{}, ErrEmptyDraft
	}

	items := make([]domain.OrderLine, len(s.draft.Lines))
	copy(items, s.draft.Lines)

	inv := domain.Invoice{
		Items:    items,
		Subtotal: s.draft.Subtotal(),
		Discount: s.draft.Discount,
		Total:    s.draft.Total(),
	}

	if editID := s.draft.EditingID(); editID != "" {
		inv.ID = editID
		inv.CreatedAt = s.draft.EditingCreatedAt()
		if err := s.invoices.Update(ctx, inv); err != nil {
			// The edited invoice vanished from the collection; keep
			// the draft so the order is not lost.
			return domain.Invoice{}, err
		}
	} else {
		now := time.Now()
		inv.ID = domain.NewInvoiceID(now)
		inv.CreatedAt = domain.NewTimestamp(now)
		s.invoices.Add(ctx, inv)
	}

	s.reset(ctx)
	return inv, nil
}

func (s *orderService) Cancel(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(ctx)
}

func (s *orderService) reset(ctx context.Context) {
	s.draft.Reset()
	if err := s.slots.Clear(ctx, repository.SlotDraft); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDraft, Op: "write", Err: err.Error()})
	}
	if err := s.slots.Clear(ctx, repository.SlotDiscount); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDiscount, Op: "write", Err: err.Error()})
	}
	if err := s.slots.Clear(ctx, repository.SlotEditing); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotEditing, Op: "write", Err: err.Error()})
	}
}

func (s *orderService) persistDraft(ctx context.Context) {
	lines := s.draft.Lines
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDraft, Op: "write", Err: err.Error()})
		return
	}
	if err := s.slots.Set(ctx, repository.SlotDraft, string(data)); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDraft, Op: "write", Err: err.Error()})
	}
}

func (s *orderService) persistEditing(ctx context.Context) {
	data, err := json.Marshal(editingTarget{ID: s.draft.EditingID(), CreatedAt: s.draft.EditingCreatedAt()})
	if err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotEditing, Op: "write", Err: err.Error()})
		return
	}
	if err := s.slots.Set(ctx, repository.SlotEditing, string(data)); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotEditing, Op: "write", Err: err.Error()})
	}
}

func (s *orderService) persistDiscount(ctx context.Context) {
	if err := s.slots.Set(ctx, repository.SlotDiscount, strconv.Itoa(s.draft.Discount)); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotDiscount, Op: "write", Err: err.Error()})
	}
}
