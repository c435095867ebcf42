// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, a Harness calls Update directly
// and drains the returned Cmds inline, so a model can be exercised
// deterministically without goroutines or a terminal. Cursor blink
// Cmds block on timer channels; they are executed with a short
// timeout and dropped when they do not return promptly.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds command draining so a model that keeps
// emitting Cmds cannot hang a test.
const maxDrainDepth = 100

// cmdTimeout separates real Cmds (message factories, service calls,
// microseconds) from cursor blink Cmds (~530ms timer waits).
const cmdTimeout = 10 * time.Millisecond

// Harness holds a model under test and feeds it messages.
type Harness struct {
	T     *testing.T
	Model tea.Model

	// Quit is set once tea.QuitMsg is seen. The bubbletea runtime
	// normally intercepts that message, so the harness detects it
	// itself instead of relying on the model.
	Quit bool
}

// New wraps model in a Harness and runs its Init command.
func New(t *testing.T, model tea.Model) *Harness {
	t.Helper()
	h := &Harness{T: t, Model: model}
	h.drain(model.Init(), 0)
	return h
}

// Send dispatches a message through Update and drains the result.
func (h *Harness) Send(msg tea.Msg) {
	h.T.Helper()
	if h.Quit {
		return
	}
	updated, cmd := h.Model.Update(msg)
	h.Model = updated
	h.drain(cmd, 0)
}

// Press sends a single character key.
func (h *Harness) Press(r rune) {
	h.T.Helper()
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends a string one key event at a time.
func (h *Harness) Type(s string) {
	h.T.Helper()
	for _, r := range s {
		h.Press(r)
	}
}

func (h *Harness) PressEnter() { h.T.Helper(); h.Send(tea.KeyMsg{Type: tea.KeyEnter}) }
func (h *Harness) PressEsc()   { h.T.Helper(); h.Send(tea.KeyMsg{Type: tea.KeyEsc}) }
func (h *Harness) PressUp()    { h.T.Helper(); h.Send(tea.KeyMsg{Type: tea.KeyUp}) }
func (h *Harness) PressDown()  { h.T.Helper(); h.Send(tea.KeyMsg{Type: tea.KeyDown}) }

// View renders the model.
func (h *Harness) View() string {
	return h.Model.View()
}

func (h *Harness) drain(cmd tea.Cmd, depth int) {
	h.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		h.T.Logf("teatest: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := execWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				h.drain(sub, depth+1)
			}
		}
		return
	}

	if _, quit := msg.(tea.QuitMsg); quit {
		h.Quit = true
		updated, _ := h.Model.Update(msg)
		h.Model = updated
		return
	}

	updated, next := h.Model.Update(msg)
	h.Model = updated
	h.drain(next, depth+1)
}

func execWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink message types from
// bubbles/cursor, which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
