package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juanibiapina/layouts/internal/logging"
)

// toastMsg asks the presenter to show a transient notification
type toastMsg struct {
	text    string
	isError bool
}

// toastExpiredMsg hides the toast with the given id
type toastExpiredMsg struct {
	id int
}

// notify returns a one-shot command that raises a toast
func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: text}
	}
}

// notifyError raises an error toast
func notifyError(text string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: text, isError: true}
	}
}

// Toaster presents one toast at a time. A newer toast replaces the current
// one and expiries for replaced toasts are ignored.
type Toaster struct {
	duration time.Duration
	current  toastMsg
	id       int
	visible  bool
}

func NewToaster(duration time.Duration) Toaster {
	return Toaster{duration: duration}
}

// Show displays msg and returns the command that will expire it
func (t *Toaster) Show(msg toastMsg) tea.Cmd {
	t.id++
	t.current = msg
	t.visible = true

	if msg.isError {
		logging.Logger.Warn("Toast", "text", msg.text)
	} else {
		logging.Logger.Info("Toast", "text", msg.text)
	}

	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Expire hides the toast if msg refers to the one on screen
func (t *Toaster) Expire(msg toastExpiredMsg) {
	if msg.id == t.id {
		t.visible = false
	}
}

// Text returns the visible toast text, or "" when nothing is shown
func (t Toaster) Text() string {
	if !t.visible {
		return ""
	}
	return t.current.text
}

// View renders the toast, or "" when nothing is shown
func (t Toaster) View() string {
	if !t.visible {
		return ""
	}
	if t.current.isError {
		return errorStyle.Render(t.current.text)
	}
	return successStyle.Render(t.current.text)
}
