// Package notify prints short, leveled status messages for the console.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/sker65/headsup/internal/theme"
)

// Level is the severity of a notification.
type Level int

const (
	Success Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Notification is one message shown to the operator.
type Notification struct {
	Level   Level
	Message string
}

// Notifier writes notifications to w and remembers them for inspection.
type Notifier struct {
	w      io.Writer
	styles theme.Styles

	mu      sync.Mutex
	history []Notification
}

// New returns a Notifier writing to w.
func New(w io.Writer, styles theme.Styles) *Notifier {
	return &Notifier{w: w, styles: styles}
}

// Show prints message at level.
func (n *Notifier) Show(message string, level Level) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = append(n.history, Notification{Level: level, Message: message})
	if n.w == nil {
		return
	}
	_, _ = fmt.Fprintln(n.w, n.prefix(level)+" "+message)
}

func (n *Notifier) prefix(level Level) string {
	switch level {
	case Success:
		return n.styles.Success.Render("✓")
	case Info:
		return n.styles.Info.Render("i")
	case Warning:
		return n.styles.Warning.Render("!")
	default:
		return n.styles.Error.Render("✗")
	}
}

func (n *Notifier) Success(msg string) { n.Show(msg, Success) }
func (n *Notifier) Info(msg string)    { n.Show(msg, Info) }
func (n *Notifier) Warning(msg string) { n.Show(msg, Warning) }
func (n *Notifier) Error(msg string)   { n.Show(msg, Error) }

// History returns a copy of every notification shown so far.
func (n *Notifier) History() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.history...)
}

// Last returns the most recent notification.
func (n *Notifier) Last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) == 0 {
		return Notification{}, false
	}
	return n.history[len(n.history)-1], true
}
