package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ardi-the-water/denj/internal/cli/formatter"
	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/ardi-the-water/denj/internal/format"
	"github.com/ardi-the-water/denj/internal/menu"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screenMode int

const (
	modeBrowse screenMode = iota
	modeSearch
	modeDiscount
)

type menuLoadedMsg struct{ err error }

// orderScreen is the interactive register: menu on the left, the
// current order on the right.
type orderScreen struct {
	app *App

	spinner  spinner.Model
	search   textinput.Model
	discount textinput.Model

	mode    screenMode
	cursor  int
	loading bool
	flash   string
	err     error
}

func newOrderScreen(app *App) orderScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorBlue)

	search := textinput.New()
	search.Placeholder = "جستجوی آیتم..."
	search.CharLimit = 40

	discount := textinput.New()
	discount.Placeholder = "مبلغ تخفیف به تومان"
	discount.CharLimit = 12

	return orderScreen{
		app:      app,
		spinner:  sp,
		search:   search,
		discount: discount,
		loading:  true,
	}
}

// runOrderScreen starts the interactive order screen.
func runOrderScreen(app *App) error {
	_, err := tea.NewProgram(newOrderScreen(app), tea.WithAltScreen()).Run()
	return err
}

func (m orderScreen) fetchMenu() tea.Cmd {
	url := m.app.Settings.Get().MenuURL
	return func() tea.Msg {
		return menuLoadedMsg{err: m.app.Menu.Reload(context.Background(), url)}
	}
}

func (m orderScreen) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchMenu())
}

func (m orderScreen) visibleItems() []domain.MenuItem {
	return menu.Filter(m.app.Menu.Items(), m.search.Value())
}

func (m orderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case menuLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDiscount:
			return m.updateDiscount(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m orderScreen) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.visibleItems()
	m.flash = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case "enter", "+":
		if m.cursor < len(items) {
			m.app.Orders.AddItem(context.Background(), items[m.cursor])
		}

	case "-":
		if m.cursor < len(items) {
			name := items[m.cursor].Name
			for _, l := range m.app.Orders.Draft().Lines {
				if l.Name == name {
					m.app.Orders.SetQuantity(context.Background(), name, l.Quantity-1)
					break
				}
			}
		}

	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink

	case "d":
		m.mode = modeDiscount
		m.discount.SetValue("")
		m.discount.Focus()
		return m, textinput.Blink

	case "c":
		inv, err := m.app.Orders.Commit(context.Background())
		if err != nil {
			m.flash = formatter.StyleRed.Render(err.Error())
			break
		}
		m.flash = formatter.StyleGreen.Render(
			fmt.Sprintf("فاکتور #%s ثبت شد (%s تومان)", inv.ShortID(), format.Currency(inv.Total)))

	case "x":
		m.app.Orders.Cancel(context.Background())
		m.flash = "سفارش لغو شد."

	case "r":
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.fetchMenu())
	}

	return m, nil
}

func (m orderScreen) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeBrowse
		m.search.Blur()
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m orderScreen) updateDiscount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if amount, err := strconv.Atoi(m.discount.Value()); err == nil {
			m.app.Orders.SetDiscount(context.Background(), amount)
		}
		m.mode = modeBrowse
		m.discount.Blur()
		return m, nil
	case "esc":
		m.mode = modeBrowse
		m.discount.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.discount, cmd = m.discount.Update(msg)
	return m, cmd
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(1, 2).
			Width(44)

	selectedStyle = lipgloss.NewStyle().
			Foreground(formatter.ColorHeader).
			Bold(true)
)

func (m orderScreen) View() string {
	var left strings.Builder

	left.WriteString(formatter.StyleHeader.Render("منو") + "\n\n")
	switch {
	case m.loading:
		left.WriteString(m.spinner.View() + " در حال بارگذاری منو...\n")
	case m.err != nil:
		left.WriteString(formatter.StyleRed.Render("خطا در دریافت منو. لینک را در تنظیمات بررسی کنید.") + "\n")
	default:
		items := m.visibleItems()
		if len(items) == 0 {
			left.WriteString(formatter.StyleDim.Render("آیتمی یافت نشد.") + "\n")
		}
		for i, it := range items {
			line := fmt.Sprintf("%s  %s", it.Name, formatter.StyleDim.Render(format.Currency(it.Price)))
			if i == m.cursor && m.mode == modeBrowse {
				left.WriteString(selectedStyle.Render("› "+it.Name) + "  " +
					formatter.StyleDim.Render(format.Currency(it.Price)) + "\n")
				continue
			}
			left.WriteString("  " + line + "\n")
		}
	}

	if m.mode == modeSearch {
		left.WriteString("\n" + m.search.View())
	}

	right := formatter.FormatDraft(m.app.Orders.Draft())
	if m.mode == modeDiscount {
		right += "\n" + m.discount.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(left.String()),
		panelStyle.Render(right),
	)

	help := formatter.StyleDim.Render(
		"enter افزودن  - کاهش  / جستجو  d تخفیف  c ثبت  x لغو  r بارگذاری  q خروج")

	footer := help
	if m.flash != "" {
		footer = m.flash + "\n" + help
	}

	return body + "\n" + footer + "\n"
}
