package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/repository"
)

type invoiceService struct {
	slots    repository.SlotRepo
	observer Observer

	mu       sync.Mutex
	invoices []domain.Invoice
}

// NewInvoiceService creates an InvoiceService backed by the given slot
// store. Call Load before first use.
func NewInvoiceService(slots repository.SlotRepo, observer Observer) InvoiceService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &invoiceService{slots: slots, observer: observer}
}

func (s *invoiceService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices = nil

	value, ok, err := s.slots.Get(ctx, repository.SlotInvoices)
	if err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotInvoices, Op: "read", Err: err.Error()})
		return
	}
	if !ok {
		return
	}

	var stored []domain.Invoice
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotInvoices, Op: "read", Err: err.Error()})
		return
	}
	s.invoices = stored
}

func (s *invoiceService) List() []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *invoiceService) GetByID(id string) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}

	// Fall back to a short-ID suffix match, the form shown on
	// receipts and listings.
	var matches []domain.Invoice
	for _, inv := range s.invoices {
		if strings.HasSuffix(inv.ID, id) {
			matches = append(matches, inv)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return domain.Invoice{}, ErrNotFound
}

func (s *invoiceService) Add(ctx context.Context, inv domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append([]domain.Invoice{inv}, s.invoices...)
	s.persist(ctx)
}

func (s *invoiceService) Update(ctx context.Context, inv domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID == inv.ID {
			s.invoices[i] = inv
			s.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

func (s *invoiceService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = nil
	s.persist(ctx)
}

func (s *invoiceService) ReplaceAll(ctx context.Context, invoices []domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = invoices
	s.persist(ctx)
}

// persist overwrites the invoices slot with the full collection.
// Write failures are observed, never propagated: the in-memory
// collection stays authoritative for the session.
func (s *invoiceService) persist(ctx context.Context) {
	invoices := s.invoices
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	data, err := json.Marshal(invoices)
	if err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotInvoices, Op: "write", Err: err.Error()})
		return
	}
	if err := s.slots.Set(ctx, repository.SlotInvoices, string(data)); err != nil {
		s.observer.OnPersistFailure(PersistEvent{Slot: repository.SlotInvoices, Op: "write", Err: err.Error()})
	}
}
