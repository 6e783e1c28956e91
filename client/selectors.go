package client

import (
	"time"
)

// DefaultStaleAfter is how long a node must have been offline before
// StaleOfflineNodes selects it.
const DefaultStaleAfter = 24 * time.Hour

// StaleOfflineNodes returns nodes that are explicitly offline and were last
// seen more than olderThan before now. Nodes without an id, without an
// online flag, or with an unparseable last-seen time are never selected.
func StaleOfflineNodes(nodes []Node, now time.Time, olderThan time.Duration) []Node {
	cutoff := now.Add(-olderThan)
	var out []Node
	for _, n := range nodes {
		if n.ID == "" || n.Online == nil || *n.Online {
			continue
		}
		seen, ok := ParseTime(n.LastSeen)
		if !ok {
			continue
		}
		if seen.Before(cutoff) {
			out = append(out, n)
		}
	}
	return out
}

// SpentPreAuthKeys returns single-use keys that have already been used.
// Keys whose flags are absent are left alone.
func SpentPreAuthKeys(keys []PreAuthKey) []PreAuthKey {
	var out []PreAuthKey
	for _, k := range keys {
		if k.ID == "" || k.Used == nil || k.Reusable == nil {
			continue
		}
		if *k.Used && !*k.Reusable {
			out = append(out, k)
		}
	}
	return out
}

// NodeIDs returns the non-empty ids of nodes.
func NodeIDs(nodes []Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.ID != "" {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// PreAuthKeyIDs returns the non-empty ids of keys.
func PreAuthKeyIDs(keys []PreAuthKey) []string {
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		if k.ID != "" {
			ids = append(ids, k.ID)
		}
	}
	return ids
}

// ParseTime parses a server timestamp. ok is false for empty or malformed
// input.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatTime renders t the way the server expects request timestamps:
// UTC with millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
