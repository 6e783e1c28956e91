package console

import (
	"github.com/charmbracelet/lipgloss"
)

const secretCaution = "This secret is shown only once. Copy it now."

// revealSecret prints a once-only secret inside a frame and optionally
// copies it. The secret is never logged and is not retained after return.
func (a *App) revealSecret(title, label, secret string, copyIt bool) {
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.Theme.Title.Render(title),
		a.Theme.Warning.Render(secretCaution),
		"",
		a.Theme.Muted.Render(label+":"),
		a.Theme.Secret.Render(secret),
	)
	a.printf("%s\n", a.Theme.Frame.Render(body))

	if !copyIt {
		return
	}
	if err := a.copyToClipboard(secret); err != nil {
		a.Notifier.Warning("Failed to copy to clipboard")
		return
	}
	a.Notifier.Success("Copied to clipboard")
}
