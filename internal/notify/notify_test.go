package notify

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sker65/headsup/internal/localstate"
	"github.com/sker65/headsup/internal/theme"
)

func TestNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, theme.New(lipgloss.NewRenderer(&buf), localstate.ColorModeDark))

	_, ok := n.Last()
	assert.False(t, ok)

	n.Success("User created")
	n.Warning("Deleted 2 nodes, 1 failed")
	n.Error("Request failed: 500")

	assert.Equal(t, "✓ User created\n! Deleted 2 nodes, 1 failed\n✗ Request failed: 500\n", buf.String())

	h := n.History()
	require.Len(t, h, 3)
	assert.Equal(t, Warning, h[1].Level)
	last, ok := n.Last()
	require.True(t, ok)
	assert.Equal(t, Notification{Level: Error, Message: "Request failed: 500"}, last)
}

func TestNotifier_NilWriter(t *testing.T) {
	n := New(nil, theme.Styles{})
	n.Info("quiet")
	assert.Len(t, n.History(), 1)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}
