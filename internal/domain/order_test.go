package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tea   = MenuItem{Category: "دمنوش", Name: "چای", Price: 20000}
	latte = MenuItem{Category: "قهوه", Name: "لاته", Price: 85000}
)

func TestDraft_AddItem_NewLine(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)

	require.Len(t, d.Lines, 1)
	assert.Equal(t, "چای", d.Lines[0].Name)
	assert.Equal(t, 1, d.Lines[0].Quantity)
	assert.Equal(t, DraftBuilding, d.State())
}

func TestDraft_AddItem_IncrementsExisting(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)
	d.AddItem(latte)
	d.AddItem(tea)

	require.Len(t, d.Lines, 2)
	assert.Equal(t, 2, d.Lines[0].Quantity)
	assert.Equal(t, 1, d.Lines[1].Quantity)
}

func TestDraft_SetQuantity(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)
	d.SetQuantity("چای", 5)

	assert.Equal(t, 5, d.Lines[0].Quantity)
	assert.Equal(t, 100000, d.Subtotal())
}

func TestDraft_SetQuantity_ZeroRemovesLine(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)
	d.AddItem(latte)
	d.SetQuantity("چای", 0)

	require.Len(t, d.Lines, 1)
	assert.Equal(t, "لاته", d.Lines[0].Name)

	d.SetQuantity("لاته", -3)
	assert.Empty(t, d.Lines)
	assert.Equal(t, DraftEmpty, d.State())
}

func TestDraft_SetQuantity_UnknownNameIgnored(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)
	d.SetQuantity("اسپرسو", 4)

	require.Len(t, d.Lines, 1)
	assert.Equal(t, 1, d.Lines[0].Quantity)
}

func TestDraft_NoLineEverHasNonPositiveQuantity(t *testing.T) {
	d := &Draft{}
	ops := []func(){
		func() { d.AddItem(tea) },
		func() { d.AddItem(latte) },
		func() { d.SetQuantity("چای", 3) },
		func() { d.SetQuantity("لاته", 0) },
		func() { d.AddItem(latte) },
		func() { d.SetQuantity("چای", -1) },
		func() { d.AddItem(tea) },
	}
	for _, op := range ops {
		op()
		sum := 0
		for _, l := range d.Lines {
			assert.Positive(t, l.Quantity)
			sum += l.Price * l.Quantity
		}
		assert.Equal(t, sum, d.Subtotal())
	}
}

func TestDraft_Discount_ClampedAtZero(t *testing.T) {
	d := &Draft{}
	d.SetDiscount(-500)
	assert.Equal(t, 0, d.Discount)

	d.SetDiscount(5000)
	assert.Equal(t, 5000, d.Discount)
}

func TestDraft_Total_FlooredAtZero(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)
	d.SetQuantity("چای", 2)
	d.SetDiscount(5000)

	assert.Equal(t, 40000, d.Subtotal())
	assert.Equal(t, 35000, d.Total())

	d.SetDiscount(999999)
	assert.Equal(t, 0, d.Total())
}

func TestDraft_BeginEdit_SeedsWholesale(t *testing.T) {
	d := &Draft{}
	d.AddItem(latte)
	d.SetDiscount(1000)

	inv := Invoice{
		ID:        "1724000000123",
		Items:     []OrderLine{{Name: "چای", Price: 20000, Quantity: 2}},
		Subtotal:  40000,
		Discount:  5000,
		Total:     35000,
		CreatedAt: "2026-08-01T10:30:00Z",
	}
	d.BeginEdit(inv)

	assert.Equal(t, DraftEditing, d.State())
	assert.Equal(t, inv.ID, d.EditingID())
	assert.Equal(t, inv.CreatedAt, d.EditingCreatedAt())
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 5000, d.Discount)

	// Mutating the draft must not touch the source invoice.
	d.SetQuantity("چای", 7)
	assert.Equal(t, 2, inv.Items[0].Quantity)
}

func TestDraft_Editing_PersistsWithEmptyLines(t *testing.T) {
	d := &Draft{}
	d.BeginEdit(Invoice{ID: "42", Items: []OrderLine{{Name: "چای", Price: 20000, Quantity: 1}}})
	d.SetQuantity("چای", 0)

	assert.Empty(t, d.Lines)
	assert.Equal(t, DraftEditing, d.State())
}

func TestDraft_Reset(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)
	d.SetDiscount(100)
	d.BeginEdit(Invoice{ID: "42"})
	d.Reset()

	assert.Empty(t, d.Lines)
	assert.Equal(t, 0, d.Discount)
	assert.Equal(t, DraftEmpty, d.State())
	assert.Empty(t, d.EditingID())
}

func TestDraft_TotalQuantity(t *testing.T) {
	d := &Draft{}
	d.AddItem(tea)
	d.AddItem(tea)
	d.AddItem(latte)
	assert.Equal(t, 3, d.TotalQuantity())
}
