package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sker65/headsup/client"
)

const maxIPs = 4

func (a *App) renderTable(empty string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		a.printf("%s\n", a.Theme.Muted.Render(empty))
		return
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(a.Theme.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return a.Theme.Header
			}
			return a.Theme.Cell
		})
	a.printf("%s\n", t.Render())
}

func (a *App) renderUsers(users []client.User) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			orDash(u.ID),
			orDash(u.Name),
			orDash(u.DisplayName),
			orDash(u.Email),
			orDash(u.CreatedAt),
		})
	}
	a.renderTable("No users", []string{"ID", "Name", "Display Name", "Email", "Created"}, rows)
}

func (a *App) renderNodes(nodes []client.Node) {
	now := a.now()
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			orDash(n.ID),
			orDash(n.Name),
			userName(n.User),
			listCell(n.IPAddresses, maxIPs),
			listCell(n.Tags, 0),
			onlineCell(n.Online),
			RelativeTime(n.LastSeen, now),
		})
	}
	a.renderTable("No nodes", []string{"ID", "Name", "User", "IPs", "Tags", "Online", "Last seen"}, rows)
}

func (a *App) renderPreAuthKeys(keys []client.PreAuthKey) {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{
			orDash(k.ID),
			userName(k.User),
			boolCell(k.Reusable),
			boolCell(k.Ephemeral),
			boolCell(k.Used),
			orDash(k.Expiration),
			listCell(k.ACLTags, 0),
		})
	}
	a.renderTable("No preauth keys", []string{"ID", "User", "Reusable", "Ephemeral", "Used", "Expiration", "ACL Tags"}, rows)
}

func (a *App) renderAPIKeys(keys []client.APIKey) {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{
			orDash(k.ID),
			orDash(k.Prefix),
			orDash(k.CreatedAt),
			orDash(k.LastSeen),
			orDash(k.Expiration),
		})
	}
	a.renderTable("No API keys", []string{"ID", "Prefix", "Created", "Last seen", "Expiration"}, rows)
}
