package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastDuration is how long a notification stays on screen
const toastDuration = 3 * time.Second

// toast is a short notification shown above the help bar
type toast struct {
	title       string
	description string
	isErr       bool
}

// toastMsg delivers a notification to the model
type toastMsg toast

// toastExpiredMsg clears the toast with the given id
type toastExpiredMsg struct{ id int }

// ToastNotifier queues session notifications for the TUI
type ToastNotifier struct {
	ch chan toast
}

// NewToastNotifier creates a notifier with room for a few pending toasts
func NewToastNotifier() *ToastNotifier {
	return &ToastNotifier{ch: make(chan toast, 16)}
}

// Notify queues a toast; it never blocks and drops the toast when the
// queue is full
func (n *ToastNotifier) Notify(title, description string) {
	select {
	case n.ch <- toast{title: title, description: description}:
	default:
	}
}

// wait returns a command that delivers the next queued toast
func (n *ToastNotifier) wait() tea.Cmd {
	return func() tea.Msg {
		return toastMsg(<-n.ch)
	}
}

func expireToast(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
