package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/savetree/pkg/filetree"
)

// View renders the model
func (m Model) View() string {
	var b strings.Builder

	header := m.session.Info.GameName
	if m.session.Info.Restoring {
		header += " " + modeStyle.Render("(restore)")
	} else {
		header += " " + modeStyle.Render("(backup)")
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString("nothing to show\n")
	}

	end := min(len(m.rows), m.offset+m.pageSize())
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRow(row filetree.Row, selected bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", row.Level))

	switch {
	case row.Leaf:
		b.WriteString("  ")
	case row.Expanded:
		b.WriteString("▼ ")
	default:
		b.WriteString("▶ ")
	}

	if row.Checkbox {
		if row.Ignored {
			b.WriteString("[ ] ")
		} else {
			b.WriteString("[✓] ")
		}
	}

	label := row.Label
	switch {
	case selected:
		label = selectedStyle.Render(label)
	case row.Ignored:
		label = ignoredStyle.Render(label)
	case row.Kind == filetree.KindRegistry:
		label = registryStyle.Render(label)
	}
	b.WriteString(label)

	for _, badge := range row.Badges {
		b.WriteString(" ")
		b.WriteString(badgeStyle(badge.Kind).Render(badgeText(badge)))
	}
	return b.String()
}

func badgeText(b filetree.Badge) string {
	switch b.Kind {
	case filetree.BadgeRedirectedFrom:
		return "← " + b.Detail
	case filetree.BadgeRedirectingTo:
		return "→ " + b.Detail
	default:
		return b.Kind.String()
	}
}

func (m Model) renderStatus() string {
	stats := m.session.Stats
	counts := fmt.Sprintf("%d files, %d registry keys", stats.Files, stats.RegistryKeys)
	line := statusCountStyle.Render(counts)
	if stats.Skipped > 0 {
		line += fmt.Sprintf(", %d skipped", stats.Skipped)
	}
	if len(m.rows) > 0 {
		line += fmt.Sprintf("  row %d/%d", m.cursor+1, len(m.rows))
	}
	if m.status != "" {
		line += "  " + m.status
	}
	return statusStyle.Render(line)
}
