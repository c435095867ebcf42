package domain

import (
	"strconv"
	"sync"
	"time"
)

// Invoice is a committed order. CreatedAt is fixed at creation and is
// never changed by an edit; only the items, discount, and derived
// amounts are recomputed on re-commit.
type Invoice struct {
	ID        string      `json:"id"`
	Items     []OrderLine `json:"items"`
	Subtotal  int         `json:"subtotal"`
	Discount  int         `json:"discount"`
	Total     int         `json:"total"`
	CreatedAt string      `json:"createdAt"`
}

// ShortID returns the last six characters of the invoice ID, the form
// shown on receipts and exports.
func (inv Invoice) ShortID() string {
	if len(inv.ID) <= 6 {
		return inv.ID
	}
	return inv.ID[len(inv.ID)-6:]
}

// TotalQuantity returns the number of individual items on the invoice.
// A nil item list counts as empty.
func (inv Invoice) TotalQuantity() int {
	n := 0
	for _, it := range inv.Items {
		n += it.Quantity
	}
	return n
}

// CreatedAtTime parses the creation timestamp. The zero time is
// returned for records whose timestamp cannot be parsed.
func (inv Invoice) CreatedAtTime() time.Time {
	t, err := time.Parse(time.RFC3339, inv.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewInvoiceID returns a time-derived opaque identifier: the current
// Unix time in milliseconds as a decimal string, bumped monotonically
// so two commits in the same millisecond never collide.
func NewInvoiceID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

// NewTimestamp returns the ISO-8601 form used for CreatedAt.
func NewTimestamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
