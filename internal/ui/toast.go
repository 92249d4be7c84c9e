package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NotifyLevel selects toast styling.
type NotifyLevel int

const (
	NotifySuccess NotifyLevel = iota
	NotifyError
)

func (l NotifyLevel) String() string {
	switch l {
	case NotifySuccess:
		return "success"
	case NotifyError:
		return "error"
	default:
		return "unknown"
	}
}

// maxVisibleToasts caps how many notifications render at once (newest win).
const maxVisibleToasts = 3

type toast struct {
	id    int
	level NotifyLevel
	text  string
}

// Toasts is the notification stack. Each toast removes itself after ttl; nobody waits on it.
type Toasts struct {
	items  []toast
	nextID int
	ttl    time.Duration
}

// NewToasts creates a stack whose toasts live for ttl.
func NewToasts(ttl time.Duration) *Toasts {
	return &Toasts{ttl: ttl}
}

// Push shows msg and returns the command that expires it.
func (t *Toasts) Push(msg NotifyMsg) tea.Cmd {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, toast{id: id, level: msg.Level, text: msg.Text})
	if t.ttl <= 0 {
		return nil
	}
	return tea.Tick(t.ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// Expire removes the toast with id. Unknown ids are ignored.
func (t *Toasts) Expire(id int) {
	for i, it := range t.items {
		if it.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of live toasts.
func (t *Toasts) Len() int {
	return len(t.items)
}

// Texts returns the live toast texts, oldest first.
func (t *Toasts) Texts() []string {
	out := make([]string, len(t.items))
	for i, it := range t.items {
		out[i] = it.text
	}
	return out
}

// View renders the newest toasts.
func (t *Toasts) View() string {
	if len(t.items) == 0 {
		return ""
	}
	items := t.items
	if len(items) > maxVisibleToasts {
		items = items[len(items)-maxVisibleToasts:]
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		switch it.level {
		case NotifyError:
			lines = append(lines, Styles.ToastError.Render(it.text))
		default:
			lines = append(lines, Styles.ToastSuccess.Render(it.text))
		}
	}
	return strings.Join(lines, "\n")
}
