// Package export produces the external artifacts of the invoice
// collection: the spreadsheet-oriented tabular exports, the lossless
// JSON backup, and the plain-text receipt payload.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/format"
)

// utf8BOM lets spreadsheet applications detect the encoding of the
// exported file; without it Persian header names decode as mojibake.
const utf8BOM = "\ufeff"

// csvHeader is the localized tabular header. Dates are Jalali.
var csvHeader = []string{
	"ID", "سال (شمسی)", "ماه (شمسی)", "روز (شمسی)", "ساعت",
	"آیتم ها", "تعداد کل", "مبلغ خام", "تخفیف", "مبلغ نهایی",
}

// WriteCSV writes the invoice collection as BOM-prefixed, comma-joined
// rows. Records without an ID are skipped outright; a nil item list is
// treated as empty. Row order follows the collection order.
func WriteCSV(w io.Writer, invoices []domain.Invoice) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	if _, err := io.WriteString(w, strings.Join(csvHeader, ",")+"\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, inv := range invoices {
		if inv.ID == "" {
			continue
		}
		row := strings.Join(csvRow(inv), ",")
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return fmt.Errorf("writing row for invoice %s: %w", inv.ID, err)
		}
	}
	return nil
}

func csvRow(inv domain.Invoice) []string {
	created := inv.CreatedAtTime()
	year, month, day := format.JalaliParts(created)

	return []string{
		inv.ShortID(),
		year,
		month,
		day,
		format.Clock(created),
		// quoted to protect the embedded commas and semicolons
		`"` + itemsSummary(inv.Items) + `"`,
		strconv.Itoa(inv.TotalQuantity()),
		strconv.Itoa(inv.Subtotal),
		strconv.Itoa(inv.Discount),
		strconv.Itoa(inv.Total),
	}
}

// itemsSummary joins item names with quantities, e.g. "چای (2); لاته (1)".
func itemsSummary(items []domain.OrderLine) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", it.Name, it.Quantity))
	}
	return strings.Join(parts, "; ")
}
