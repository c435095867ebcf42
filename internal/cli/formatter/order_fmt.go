package formatter

import (
	"fmt"
	"strings"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/format"
)

// FormatDraft renders the current draft order with its running totals.
func FormatDraft(draft domain.Draft) string {
	var b strings.Builder

	switch draft.State() {
	case domain.DraftEditing:
		b.WriteString(StyleYellow.Render("ویرایش فاکتور #"+shortID(draft.EditingID())) + "\n\n")
	default:
		b.WriteString(StyleHeader.Render("سفارش فعلی") + "\n\n")
	}

	if len(draft.Lines) == 0 {
		b.WriteString(StyleDim.Render("آیتمی انتخاب نشده است.") + "\n")
	}
	for _, l := range draft.Lines {
		fmt.Fprintf(&b, "  %s × %s = %s تومان\n",
			StyleFg.Render(l.Name),
			format.PersianDigits(fmt.Sprintf("%d", l.Quantity)),
			format.Currency(l.LineTotal()))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  جمع کل:     %s تومان\n", format.Currency(draft.Subtotal()))
	if draft.Discount > 0 {
		fmt.Fprintf(&b, "  تخفیف:      %s تومان\n", StyleRed.Render(format.Currency(draft.Discount)))
	}
	fmt.Fprintf(&b, "  مبلغ نهایی: %s تومان\n", StyleBold.Render(format.Currency(draft.Total())))
	return b.String()
}

func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
