package formatter

import (
	"fmt"
	"strings"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/format"
)

// FormatInvoiceList renders the invoice collection as a table,
// most recent first.
func FormatInvoiceList(invoices []domain.Invoice) string {
	if len(invoices) == 0 {
		return StyleDim.Render("هیچ فاکتوری ثبت نشده است.") + "\n"
	}

	headers := []string{"شماره", "تاریخ", "اقلام", "تخفیف", "مبلغ نهایی"}
	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			StyleBlue.Render("#" + inv.ShortID()),
			format.DateTime(inv.CreatedAtTime()),
			format.PersianDigits(fmt.Sprintf("%d", inv.TotalQuantity())),
			format.Currency(inv.Discount),
			StyleBold.Render(format.Currency(inv.Total) + " تومان"),
		})
	}
	return RenderTable(headers, rows)
}

// FormatInvoiceDetail renders one invoice with its line items.
func FormatInvoiceDetail(inv domain.Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n",
		StyleHeader.Render("فاکتور #"+inv.ShortID()),
		StyleDim.Render(format.DateTime(inv.CreatedAtTime())))

	for _, it := range inv.Items {
		fmt.Fprintf(&b, "  %s %s × %s = %s\n",
			StyleFg.Render(it.Name),
			StyleDim.Render("("+it.Category+")"),
			format.PersianDigits(fmt.Sprintf("%d", it.Quantity)),
			format.Currency(it.LineTotal()))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  جمع کل:     %s تومان\n", format.Currency(inv.Subtotal))
	fmt.Fprintf(&b, "  تخفیف:      %s تومان\n", StyleRed.Render(format.Currency(inv.Discount)))
	fmt.Fprintf(&b, "  مبلغ نهایی: %s تومان\n", StyleBold.Render(format.Currency(inv.Total)))
	return b.String()
}
