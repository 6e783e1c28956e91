// Package theme holds the console palettes and the lipgloss styles derived
// from them.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sker65/headsup/internal/localstate"
)

// Dracula palette.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaComment    = "#6272A4"
)

// Alucard, the light Dracula variant.
const (
	alucardForeground = "#1F1F1F"
	alucardCyan       = "#036A96"
	alucardGreen      = "#14710A"
	alucardOrange     = "#A34D14"
	alucardPink       = "#A3144D"
	alucardPurple     = "#644AC9"
	alucardRed        = "#CB3A2A"
	alucardComment    = "#6C664B"
)

// Palette names the colors the console uses.
type Palette struct {
	Foreground string
	Accent     string
	Header     string
	Muted      string
	Success    string
	Info       string
	Warning    string
	Error      string
	Border     string
}

var (
	Dark = Palette{
		Foreground: draculaForeground,
		Accent:     draculaPink,
		Header:     draculaPurple,
		Muted:      draculaComment,
		Success:    draculaGreen,
		Info:       draculaCyan,
		Warning:    draculaOrange,
		Error:      draculaRed,
		Border:     draculaPurple,
	}
	Light = Palette{
		Foreground: alucardForeground,
		Accent:     alucardPink,
		Header:     alucardPurple,
		Muted:      alucardComment,
		Success:    alucardGreen,
		Info:       alucardCyan,
		Warning:    alucardOrange,
		Error:      alucardRed,
		Border:     alucardPurple,
	}
)

// For returns the palette for mode. Unknown modes get Dark.
func For(mode localstate.ColorMode) Palette {
	if mode == localstate.ColorModeLight {
		return Light
	}
	return Dark
}

// Styles are bound to one renderer so color output follows the terminal
// capabilities of the writer they were created for.
type Styles struct {
	Mode localstate.ColorMode

	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Secret  lipgloss.Style
	Frame   lipgloss.Style
	Border  lipgloss.Style
}

// New builds Styles for mode. A nil renderer uses lipgloss' default one.
func New(r *lipgloss.Renderer, mode localstate.ColorMode) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := For(mode)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Mode:    mode,
		Title:   fg(p.Accent).Bold(true),
		Header:  fg(p.Header).Bold(true).Padding(0, 1),
		Cell:    fg(p.Foreground).Padding(0, 1),
		Muted:   fg(p.Muted),
		Success: fg(p.Success),
		Info:    fg(p.Info),
		Warning: fg(p.Warning),
		Error:   fg(p.Error).Bold(true),
		Secret:  fg(p.Success).Bold(true),
		Frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
		Border: fg(p.Border),
	}
}
