package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/menu"
	"github.com/ardi-the-water/denj/internal/service"
	"github.com/ardi-the-water/denj/internal/teatest"
	"github.com/ardi-the-water/denj/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSheet = "Name,Category,Price\n" +
	"Latte,Coffee,85000\n" +
	"Espresso,Coffee,60000\n" +
	"Tea,Hot Drinks,20000\n"

func newScreenApp(t *testing.T) *App {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testSheet))
	}))
	t.Cleanup(server.Close)

	slots := testutil.NewTestSlots(t)
	settings := service.NewSettingsService(slots, service.NoopObserver{})
	invoices := service.NewInvoiceService(slots, service.NoopObserver{})
	orders := service.NewOrderService(slots, invoices, service.NoopObserver{})
	settings.Update(context.Background(), domain.AppSettings{MenuURL: server.URL})

	return &App{
		Settings: settings,
		Invoices: invoices,
		Orders:   orders,
		Menu:     menu.NewLoader(menu.NewFetcher(menu.DefaultConfig()), menu.NoopObserver{}),
	}
}

func TestOrderScreen_LoadsMenuOnStart(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	view := h.View()
	assert.Contains(t, view, "Latte")
	assert.Contains(t, view, "Espresso")
	assert.Contains(t, view, "Tea")
}

func TestOrderScreen_EnterAddsSelectedItem(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	h.PressDown()
	h.PressEnter()
	h.PressEnter()

	draft := app.Orders.Draft()
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "Espresso", draft.Lines[0].Name)
	assert.Equal(t, 2, draft.Lines[0].Quantity)
}

func TestOrderScreen_MinusDecrementsToRemoval(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	h.PressEnter()
	h.Press('-')

	assert.Empty(t, app.Orders.Draft().Lines)
	assert.Equal(t, domain.DraftEmpty, app.Orders.State())
}

func TestOrderScreen_SearchFiltersMenu(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	h.Press('/')
	h.Type("tea")
	h.PressEnter()

	view := h.View()
	assert.Contains(t, view, "Tea")
	assert.NotContains(t, view, "Latte")

	// The first filtered item is now under the cursor.
	h.PressEnter()
	draft := app.Orders.Draft()
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "Tea", draft.Lines[0].Name)
}

func TestOrderScreen_DiscountApplied(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	h.PressEnter()
	h.Press('d')
	h.Type("5000")
	h.PressEnter()

	assert.Equal(t, 5000, app.Orders.Draft().Discount)
}

func TestOrderScreen_CommitCreatesInvoice(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	h.PressEnter()
	h.Press('c')

	invoices := app.Invoices.List()
	require.Len(t, invoices, 1)
	assert.Equal(t, 85000, invoices[0].Total)
	assert.Equal(t, domain.DraftEmpty, app.Orders.State())
	assert.Contains(t, h.View(), "ثبت شد")
}

func TestOrderScreen_CommitEmptyDraftShowsError(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	h.Press('c')

	assert.Empty(t, app.Invoices.List())
	assert.Contains(t, h.View(), service.ErrEmptyDraft.Error())
}

func TestOrderScreen_QuitKey(t *testing.T) {
	app := newScreenApp(t)
	h := teatest.New(t, newOrderScreen(app))

	h.Press('q')
	assert.True(t, h.Quit)
}
