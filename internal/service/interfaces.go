package service

import (
	"context"
	"errors"

	"github.com/ardi-the-water/denj/internal/domain"
)

var (
	// ErrEmptyDraft indicates a commit was attempted with zero items
	// in the draft; the draft is left unchanged.
	ErrEmptyDraft = errors.New("draft order is empty")

	// ErrNotFound indicates no invoice matches the given ID.
	ErrNotFound = errors.New("invoice not found")
)

// SettingsService owns the persisted app settings. Loading merges the
// stored payload over built-in defaults so missing fields never null
// out a default.
type SettingsService interface {
	// Load reads persisted settings. Read failures fall back to
	// defaults and are absorbed.
	Load(ctx context.Context)
	Get() domain.AppSettings
	// Update shallow-merges partial into the current settings,
	// persists the full result, and returns it.
	Update(ctx context.Context, partial domain.AppSettings) domain.AppSettings
	// ClearMenuURL empties the menu source URL and persists the
	// result. Merge treats the empty string as "unchanged", so
	// clearing needs its own path.
	ClearMenuURL(ctx context.Context) domain.AppSettings
}

// InvoiceService owns the committed invoice collection, the sole
// durable store of financial records. Every mutation persists the
// whole collection. Confirmation of destructive bulk operations is a
// boundary concern; these methods assume it has been satisfied.
type InvoiceService interface {
	Load(ctx context.Context)
	List() []domain.Invoice
	// GetByID resolves an invoice by full ID or unambiguous short-ID
	// suffix.
	GetByID(id string) (domain.Invoice, error)
	// Add prepends, keeping the collection most-recent-first.
	Add(ctx context.Context, inv domain.Invoice)
	Update(ctx context.Context, inv domain.Invoice) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context)
	ReplaceAll(ctx context.Context, invoices []domain.Invoice)
}

// OrderService owns the one in-progress draft order. The draft is
// persisted after every mutation so an unfinished order survives a
// restart; it joins the invoice collection only on commit.
type OrderService interface {
	Load(ctx context.Context)
	// Draft returns a snapshot of the current draft.
	Draft() domain.Draft
	State() domain.DraftState
	AddItem(ctx context.Context, item domain.MenuItem)
	SetQuantity(ctx context.Context, name string, quantity int)
	SetDiscount(ctx context.Context, amount int)
	// BeginEdit seeds the draft from the stored invoice with the
	// given ID and enters editing state.
	BeginEdit(ctx context.Context, id string) (domain.Invoice, error)
	// Commit turns the draft into a new invoice, or updates the
	// invoice being edited in place, then clears the draft.
	Commit(ctx context.Context) (domain.Invoice, error)
	Cancel(ctx context.Context)
}
