package formatter

import (
	"fmt"
	"strings"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/format"
	"github.com/ardi-the-water/denj/internal/menu"
)

// FormatMenu renders menu items grouped by category.
func FormatMenu(items []domain.MenuItem) string {
	if len(items) == 0 {
		return StyleDim.Render("منو خالی است.") + "\n"
	}

	order, groups := menu.GroupByCategory(items)

	var b strings.Builder
	for i, category := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleHeader.Render(category) + "\n")
		for _, it := range groups[category] {
			fmt.Fprintf(&b, "  %s  %s تومان\n",
				StyleFg.Render(it.Name),
				StyleDim.Render(format.Currency(it.Price)))
		}
	}
	return b.String()
}
