package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/sker65/headsup/client"
)

// Placeholder is rendered for absent values.
const Placeholder = "-"

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func boolCell(b *bool) string {
	if b == nil {
		return Placeholder
	}
	if *b {
		return "true"
	}
	return "false"
}

func onlineCell(b *bool) string {
	if b == nil {
		return Placeholder
	}
	if *b {
		return "Online"
	}
	return "Offline"
}

func listCell(items []string, limit int) string {
	if len(items) == 0 {
		return Placeholder
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}

func userName(u *client.User) string {
	if u == nil {
		return Placeholder
	}
	return orDash(u.Name)
}

// RelativeTime renders ts relative to now ("just now", "5 min ago",
// "2 days ago"). An empty ts is Placeholder; an unparseable one is returned
// verbatim.
func RelativeTime(ts string, now time.Time) string {
	if strings.TrimSpace(ts) == "" {
		return Placeholder
	}
	t, ok := client.ParseTime(ts)
	if !ok {
		return ts
	}
	diff := now.Sub(t)
	if diff < 0 {
		return "in the future"
	}

	sec := int64(diff / time.Second)
	if sec < 10 {
		return "just now"
	}
	if sec < 60 {
		return fmt.Sprintf("%ds ago", sec)
	}
	mins := sec / 60
	if mins < 60 {
		return fmt.Sprintf("%d min ago", mins)
	}
	hr := mins / 60
	if hr < 24 {
		return plural(hr, "hour") + " ago"
	}
	return plural(hr/24, "day") + " ago"
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
