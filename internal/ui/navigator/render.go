package navigator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/unkn0wn-root/rfkit/internal/theme"
)

const badgeWidth = 9

// Decor adds per-row state the tree itself does not know about.
type Decor struct {
	Mark   string // rendered before the title, e.g. a checkbox
	Badge  string
	Dim    bool
	Suffix string // rendered after the title
}

// Decorator computes the Decor of a node at render time.
type Decorator[T any] func(*Node[T]) Decor

// ListView renders the navigator list with an optional height constraint.
func ListView[T any](m *Model[T], th theme.Theme, width int, height int, focus bool, deco Decorator[T]) string {
	if m == nil {
		return ""
	}
	if width < 1 {
		width = 1
	}
	m.SetViewportHeight(height)
	rows := m.VisibleRows()
	var out []string
	for i, row := range rows {
		selected := (m.offset + i) == m.sel
		var d Decor
		if deco != nil && row.Node != nil {
			d = deco(row.Node)
		}
		out = append(out, renderRow(row, d, selected, th, width, focus, m.compact))
	}
	return strings.Join(out, "\n")
}

func renderRow[T any](row Flat[T], d Decor, selected bool, th theme.Theme, width int, focus bool, compact bool) string {
	n := row.Node
	if n == nil {
		return ""
	}
	pad := strings.Repeat("  ", row.Level)
	icon := " "
	if n.Kind == KindFolder {
		if n.Expanded {
			icon = "▾"
		} else {
			icon = "▸"
		}
	}
	parts := []string{pad, icon}
	if d.Mark != "" {
		parts = append(parts, " ", d.Mark)
	}
	if d.Badge != "" {
		parts = append(parts, " ", renderKindBadge(d.Badge, th))
	}

	titleStyle := th.NavigatorTitle
	descStyle := th.NavigatorSubtitle
	if n.Kind == KindFolder {
		titleStyle = th.NavigatorFolder
	}
	if selected {
		titleStyle = th.NavigatorTitleSelected
		descStyle = th.NavigatorSubtitleSelected
	}
	if !focus || d.Dim {
		titleStyle = titleStyle.Faint(true)
		descStyle = descStyle.Faint(true)
	}
	parts = append(parts, " ", titleStyle.Render(n.Title))
	if n.Target != "" && !compact {
		parts = append(parts, " ", descStyle.Render(trimPath(n.Target, width/2)))
	}
	if d.Suffix != "" {
		parts = append(parts, " ", d.Suffix)
	}
	if len(n.Badges) > 0 && !compact {
		parts = append(parts, " ", renderBadges(n.Badges, th))
	}

	line := strings.Join(parts, "")
	truncated := ansi.Truncate(line, width, "")
	indicator := ""
	if len(truncated) < len(line) {
		indicator = th.NavigatorDetailDim.Render(" +")
		avail := width - lipgloss.Width(indicator)
		if avail < 0 {
			avail = 0
		}
		truncated = ansi.Truncate(truncated, avail, "")
		truncated += indicator
	}
	return lipgloss.NewStyle().Width(width).Render(truncated)
}

// renderKindBadge pads the label to a fixed cell width so titles line up.
func renderKindBadge(label string, th theme.Theme) string {
	label = strings.TrimSpace(label)
	padded := runewidth.FillRight(runewidth.Truncate(label, badgeWidth, ""), badgeWidth)
	style := th.NavigatorBadge.Foreground(th.KindColor(label)).Bold(true)
	return style.Render(padded)
}

func renderBadges(badges []string, th theme.Theme) string {
	if len(badges) == 0 {
		return ""
	}
	badgeStyle := th.NavigatorBadge.Padding(0, 0)
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		label := strings.TrimSpace(b)
		if label == "" {
			continue
		}
		parts = append(parts, badgeStyle.Render(label))
	}
	sep := th.NavigatorDetailDim.Render(", ")
	return strings.Join(parts, sep)
}

func trimPath(val string, limit int) string {
	if limit <= 0 || len(val) <= limit {
		return val
	}
	if limit < 4 {
		return val[:limit]
	}
	return val[:limit-3] + "..."
}
