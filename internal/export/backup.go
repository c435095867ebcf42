package export

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ardi-the-water/denj/internal/domain"
)

// ErrInvalidBackup indicates a restore payload that is not a valid
// backup: not a JSON array, or an element missing a required field.
var ErrInvalidBackup = errors.New("invalid backup format")

// MarshalBackup serializes the full invoice collection losslessly as
// pretty-printed JSON.
func MarshalBackup(invoices []domain.Invoice) ([]byte, error) {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	data, err := json.MarshalIndent(invoices, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing backup: %w", err)
	}
	return data, nil
}

// UnmarshalBackup parses and validates a backup payload. The payload
// must be an array and every element must carry id, items, and total
// fields; anything else fails with ErrInvalidBackup so the caller can
// leave its current collection untouched.
func UnmarshalBackup(data []byte) ([]domain.Invoice, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	for i, elem := range raw {
		for _, field := range []string{"id", "items", "total"} {
			if _, ok := elem[field]; !ok {
				return nil, fmt.Errorf("%w: element %d is missing %q", ErrInvalidBackup, i, field)
			}
		}
	}

	var invoices []domain.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return invoices, nil
}
