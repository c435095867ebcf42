package testutil

import "github.com/ardi-the-water/denj/internal/domain"

// MenuFixture returns a small menu for tests.
func MenuFixture() []domain.MenuItem {
	return []domain.MenuItem{
		{Category: "قهوه", Name: "اسپرسو", Price: 60000},
		{Category: "قهوه", Name: "لاته", Price: 85000},
		{Category: "دمنوش", Name: "چای", Price: 20000},
	}
}

// InvoiceFixture returns a committed invoice for tests.
func InvoiceFixture() domain.Invoice {
	return domain.Invoice{
		ID: "1724000000123",
		Items: []domain.OrderLine{
			{Category: "دمنوش", Name: "چای", Price: 20000, Quantity: 2},
		},
		Subtotal:  40000,
		Discount:  5000,
		Total:     35000,
		CreatedAt: "2026-08-01T10:30:00Z",
	}
}
