package repository

import "context"

// Slot keys for the persisted entity classes. Names are part of the
// stored contract and must not change across releases.
const (
	SlotInvoices = "cafe-invoices"
	SlotSettings = "cafe-settings"
	SlotDraft    = "cafe-current-order"
	SlotDiscount = "cafe-current-discount"
	SlotEditing  = "cafe-editing-invoice"
)

// SlotRepo is a key-value string store with one logical slot per
// entity class. Every write overwrites the whole slot.
type SlotRepo interface {
	// Get returns the slot value and whether the slot exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the slot with the given value.
	Set(ctx context.Context, key, value string) error
	// Clear removes the slot. Clearing a missing slot is not an error.
	Clear(ctx context.Context, key string) error
}
