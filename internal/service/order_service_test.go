package service

import (
	"context"
	"testing"
	"time"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/repository"
	"github.com/ardi-the-water/denj/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderSetup(t *testing.T) (repository.SlotRepo, InvoiceService, OrderService) {
	t.Helper()
	slots := testutil.NewTestSlots(t)
	invoices := NewInvoiceService(slots, nil)
	orders := NewOrderService(slots, invoices, nil)
	ctx := context.Background()
	invoices.Load(ctx)
	orders.Load(ctx)
	return slots, invoices, orders
}

var (
	teaItem   = domain.MenuItem{Category: "دمنوش", Name: "چای", Price: 20000}
	latteItem = domain.MenuItem{Category: "قهوه", Name: "لاته", Price: 85000}
)

func TestOrder_CommitCreatesInvoice(t *testing.T) {
	_, invoices, orders := newOrderSetup(t)
	ctx := context.Background()

	orders.AddItem(ctx, teaItem)
	orders.AddItem(ctx, teaItem)
	orders.SetDiscount(ctx, 5000)

	inv, err := orders.Commit(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, 40000, inv.Subtotal)
	assert.Equal(t, 5000, inv.Discount)
	assert.Equal(t, 35000, inv.Total)

	created, err := time.Parse(time.RFC3339, inv.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)

	list := invoices.List()
	require.Len(t, list, 1)
	assert.Equal(t, inv.ID, list[0].ID, "new invoice is first in iteration order")

	assert.Equal(t, domain.DraftEmpty, orders.State())
	assert.Empty(t, orders.Draft().Lines)
	assert.Zero(t, orders.Draft().Discount)
}

func TestOrder_CommitEmptyDraftIsNoOp(t *testing.T) {
	_, invoices, orders := newOrderSetup(t)
	ctx := context.Background()

	_, err := orders.Commit(ctx)
	assert.ErrorIs(t, err, ErrEmptyDraft)
	assert.Empty(t, invoices.List())

	// An editing draft whose lines were all removed is still empty.
	invoices.Add(ctx, testutil.InvoiceFixture())
	_, err = orders.BeginEdit(ctx, testutil.InvoiceFixture().ID)
	require.NoError(t, err)
	orders.SetQuantity(ctx, "چای", 0)

	_, err = orders.Commit(ctx)
	assert.ErrorIs(t, err, ErrEmptyDraft)
	assert.Equal(t, domain.DraftEditing, orders.State(), "failed commit leaves the draft unchanged")
}

func TestOrder_EditPreservesIDAndCreatedAt(t *testing.T) {
	_, invoices, orders := newOrderSetup(t)
	ctx := context.Background()

	original := testutil.InvoiceFixture()
	invoices.Add(ctx, original)

	seeded, err := orders.BeginEdit(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original, seeded)
	assert.Equal(t, domain.DraftEditing, orders.State())
	assert.Equal(t, 5000, orders.Draft().Discount)

	orders.AddItem(ctx, latteItem)
	orders.SetDiscount(ctx, 10000)

	updated, err := orders.Commit(ctx)
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 125000, updated.Subtotal)
	assert.Equal(t, 10000, updated.Discount)
	assert.Equal(t, 115000, updated.Total)

	list := invoices.List()
	require.Len(t, list, 1, "edit updates in place, no new invoice")
	assert.Equal(t, updated, list[0])
	assert.Equal(t, domain.DraftEmpty, orders.State())
}

func TestOrder_BeginEditUnknownInvoice(t *testing.T) {
	_, _, orders := newOrderSetup(t)

	_, err := orders.BeginEdit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, domain.DraftEmpty, orders.State(), "draft untouched")
}

func TestOrder_CommitEditOfDeletedInvoiceKeepsDraft(t *testing.T) {
	_, invoices, orders := newOrderSetup(t)
	ctx := context.Background()

	inv := testutil.InvoiceFixture()
	invoices.Add(ctx, inv)
	_, err := orders.BeginEdit(ctx, inv.ID)
	require.NoError(t, err)

	require.NoError(t, invoices.Delete(ctx, inv.ID))

	_, err = orders.Commit(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotEmpty(t, orders.Draft().Lines, "order is not lost")
}

func TestOrder_DraftSurvivesReload(t *testing.T) {
	slots, invoices, orders := newOrderSetup(t)
	ctx := context.Background()

	orders.AddItem(ctx, teaItem)
	orders.SetQuantity(ctx, "چای", 3)
	orders.SetDiscount(ctx, 2000)

	restarted := NewOrderService(slots, invoices, nil)
	restarted.Load(ctx)

	draft := restarted.Draft()
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, 3, draft.Lines[0].Quantity)
	assert.Equal(t, 2000, draft.Discount)
	assert.Equal(t, domain.DraftBuilding, restarted.State())
}

func TestOrder_EditSurvivesReload(t *testing.T) {
	slots, invoices, orders := newOrderSetup(t)
	ctx := context.Background()

	original := testutil.InvoiceFixture()
	invoices.Add(ctx, original)
	_, err := orders.BeginEdit(ctx, original.ID)
	require.NoError(t, err)
	orders.AddItem(ctx, latteItem)

	// A fresh process picks the edit up where it was left.
	restarted := NewOrderService(slots, invoices, nil)
	restarted.Load(ctx)
	require.Equal(t, domain.DraftEditing, restarted.State())

	updated, err := restarted.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)

	list := invoices.List()
	require.Len(t, list, 1, "commit after restart updates in place, no duplicate")
	assert.Equal(t, 125000, list[0].Subtotal)
	assert.Equal(t, domain.DraftEmpty, restarted.State())
}

func TestOrder_CancelClearsDraftAndSlots(t *testing.T) {
	slots, invoices, orders := newOrderSetup(t)
	ctx := context.Background()

	invoices.Add(ctx, testutil.InvoiceFixture())
	_, err := orders.BeginEdit(ctx, testutil.InvoiceFixture().ID)
	require.NoError(t, err)
	orders.AddItem(ctx, teaItem)
	orders.SetDiscount(ctx, 1000)
	orders.Cancel(ctx)

	assert.Equal(t, domain.DraftEmpty, orders.State())

	_, ok, err := slots.Get(ctx, repository.SlotDraft)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = slots.Get(ctx, repository.SlotDiscount)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = slots.Get(ctx, repository.SlotEditing)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrder_PersistFailuresAreAbsorbed(t *testing.T) {
	slots := testutil.NewFailingSlots()
	slots.FailWrites = true

	invoices := NewInvoiceService(slots, nil)
	orders := NewOrderService(slots, invoices, nil)
	ctx := context.Background()
	invoices.Load(ctx)
	orders.Load(ctx)

	orders.AddItem(ctx, teaItem)
	assert.Len(t, orders.Draft().Lines, 1, "mutation succeeds despite failed write")

	inv, err := orders.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20000, inv.Total)
	assert.Len(t, invoices.List(), 1)
}
