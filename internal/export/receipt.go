package export

import (
	"fmt"
	"strings"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/format"
)

const receiptDivider = "--------------------"

// Receipt builds the plain-text customer receipt for an invoice. This
// text is the contract for any share or print integration.
func Receipt(cafeName string, inv domain.Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", cafeName)
	fmt.Fprintf(&b, "شماره فاکتور: %s\n", inv.ShortID())
	fmt.Fprintf(&b, "تاریخ: %s\n", format.DateTime(inv.CreatedAtTime()))
	b.WriteString("\n" + receiptDivider + "\n\n")

	for _, it := range inv.Items {
		fmt.Fprintf(&b, "%s (%d عدد) - %s تومان\n", it.Name, it.Quantity, format.Currency(it.LineTotal()))
	}

	b.WriteString("\n" + receiptDivider + "\n\n")
	fmt.Fprintf(&b, "جمع کل: %s تومان\n", format.Currency(inv.Subtotal))
	fmt.Fprintf(&b, "تخفیف: %s تومان\n", format.Currency(inv.Discount))
	fmt.Fprintf(&b, "مبلغ نهایی: %s تومان\n", format.Currency(inv.Total))
	b.WriteString("\nاز خرید شما سپاسگزاریم!\n")

	return b.String()
}
