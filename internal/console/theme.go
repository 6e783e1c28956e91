package console

import (
	"fmt"

	"github.com/sker65/headsup/internal/localstate"
)

// ThemeStore persists the color mode.
type ThemeStore interface {
	ColorMode() localstate.ColorMode
	SetColorMode(localstate.ColorMode) error
}

// ColorMode shows the stored color mode, or changes it when arg is "dark",
// "light" or "toggle".
func (a *App) ColorMode(store ThemeStore, arg string) error {
	current := store.ColorMode()
	if arg == "" {
		a.printf("%s\n", current)
		return nil
	}

	next := current.Toggle()
	if arg != "toggle" {
		m, err := localstate.ParseColorMode(arg)
		if err != nil {
			return a.fail(err, "Invalid theme")
		}
		next = m
	}
	if err := store.SetColorMode(next); err != nil {
		return a.fail(fmt.Errorf("save theme: %w", err), "Failed to save theme")
	}
	a.Notifier.Success(fmt.Sprintf("Theme set to %s", next))
	return nil
}
