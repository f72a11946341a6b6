package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/theme"
	"github.com/unkn0wn-root/rfkit/internal/ui/navigator"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderWithinAppFrame("Initialising...")
	}
	if m.showErrorModal {
		return m.renderWithinAppFrame(m.renderErrorModal())
	}

	var body string
	switch m.screen {
	case screenName:
		body = m.renderModal(m.renderNamePrompt())
	case screenOverwrite:
		body = m.renderModal(m.renderOverwritePrompt())
	case screenScanning:
		body = m.renderModal(m.theme.PaneTitle.Render("Scanning workspace..."))
	case screenStyle:
		body = m.renderModal(m.renderStyleChooser())
	case screenPicker:
		body = m.renderPicker()
	case screenWriting:
		body = m.renderModal(m.theme.PaneTitle.Render("Writing " + filepath.Base(m.targetLabel()) + "..."))
	}
	if m.showHelp && m.screen == screenPicker {
		body = m.renderHelpOverlay()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCommandBar(),
		body,
		m.renderStatusBar(),
		m.help.View(m.keys),
	)
	return m.renderWithinAppFrame(content)
}

func (m Model) renderWithinAppFrame(content string) string {
	innerWidth := maxInt(m.innerWidth(), lipgloss.Width(content))
	innerHeight := maxInt(m.height-framePadding, lipgloss.Height(content))
	if innerWidth > 0 {
		content = lipgloss.Place(innerWidth, innerHeight, lipgloss.Top, lipgloss.Left, content,
			lipgloss.WithWhitespaceChars(" "))
	}
	return m.theme.AppFrame.Render(content)
}

func (m Model) renderModal(content string) string {
	width := minInt(maxInt(m.innerWidth()-10, 32), 72)
	box := m.theme.ModalBorder.Width(width).Padding(0, 1).Render(content)
	return lipgloss.Place(m.innerWidth(), m.bodyHeight(), lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}

func (m Model) renderHeader() string {
	workspace := filepath.Base(m.cfg.Workspace)
	if workspace == "" || workspace == "." {
		workspace = "."
	}
	target := filepath.Base(m.targetLabel())
	if target == "" || target == "." {
		target = "-"
	}
	segments := []string{
		m.theme.HeaderBrand.Render(" RFKIT "),
		m.renderHeaderSegment("Workspace", workspace),
		m.renderHeaderSegment("Target", target),
	}
	if m.sess != nil && m.sess.State().Picking() {
		segments = append(segments,
			m.renderHeaderSegment("Paths", m.sess.Style().String()),
			m.renderHeaderSegment("Selected", fmt.Sprintf("%d", len(m.sess.CheckedKeys()))),
		)
	}
	row := strings.Join(segments, " ")
	return m.theme.Header.Width(maxInt(m.innerWidth(), lipgloss.Width(row))).Render(row)
}

func (m Model) renderHeaderSegment(label, value string) string {
	return m.theme.HeaderTitle.Render(strings.ToUpper(label)) + " " + m.theme.HeaderValue.Render(value)
}

func (m Model) renderCommandBar() string {
	type hint struct {
		key   string
		label string
	}
	var segments []hint
	switch {
	case m.screen == screenPicker && m.filtering:
		return m.theme.CommandBar.Render(m.filterInput.View())
	case m.screen == screenPicker && m.sess.Locked():
		segments = []hint{
			{key: "b", label: "Back"},
			{key: "o", label: "Open"},
			{key: "Space", label: "Toggle"},
			{key: "Enter", label: "Confirm"},
		}
	case m.screen == screenPicker:
		segments = []hint{
			{key: "Space", label: "Toggle"},
			{key: "v", label: "Inspect"},
			{key: "/", label: "Filter"},
			{key: "Tab", label: "Paths"},
			{key: "Enter", label: "Confirm"},
			{key: "Esc", label: "Cancel"},
		}
	case m.screen == screenStyle:
		segments = []hint{
			{key: "Enter", label: "Choose"},
			{key: "Esc", label: "No imports"},
		}
	default:
		segments = []hint{
			{key: "Enter", label: "Continue"},
			{key: "Esc", label: "Cancel"},
		}
	}

	rendered := make([]string, 0, len(segments))
	for idx, seg := range segments {
		rendered = append(rendered, renderCommandButton(seg.key, seg.label, m.theme.CommandSegment(idx)))
	}
	divider := m.theme.CommandDivider.Render(" ")
	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered, divider)...)
	return m.theme.CommandBar.Render(row)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

func renderCommandButton(key, label string, palette theme.CommandSegmentStyle) string {
	var keyColor lipgloss.TerminalColor = lipgloss.Color("#FFFFFF")
	if palette.Key != nil {
		keyColor = palette.Key
	}
	var textColor lipgloss.TerminalColor = lipgloss.Color("#E5E1FF")
	if palette.Text != nil {
		textColor = palette.Text
	}

	button := lipgloss.NewStyle().Foreground(textColor).Padding(0, 1)
	keyStyle := lipgloss.NewStyle().Foreground(keyColor).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(textColor)
	if palette.Background != nil {
		button = button.Background(palette.Background)
		keyStyle = keyStyle.Background(palette.Background)
		labelStyle = labelStyle.Background(palette.Background)
	}
	content := lipgloss.JoinHorizontal(lipgloss.Center, keyStyle.Render(key), labelStyle.Render(" "+label))
	return button.Render(content)
}

func (m Model) renderNamePrompt() string {
	tpl := m.cfg.Template
	if t, ok := m.scaffold.Templates().Find(tpl); ok {
		tpl = fmt.Sprintf("%s (%s)", t.Name, t.Ext)
	}
	lines := []string{
		m.theme.PaneTitle.Render("New " + tpl),
		m.theme.NavigatorDetailDim.Render("in " + m.cfg.Dir),
		"",
		"Name: " + m.nameInput.View(),
	}
	if m.nameError != "" {
		lines = append(lines, "", m.theme.Error.Render(m.nameError))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderOverwritePrompt() string {
	return strings.Join([]string{
		m.theme.Warning.Render(filepath.Base(m.op.Path) + " already exists."),
		m.theme.NavigatorDetailDim.Render(m.op.Path),
		"",
		fmt.Sprintf("Overwrite? %s / %s", m.theme.CommandBarHint.Render("y"), m.theme.CommandBarHint.Render("n")),
	}, "\n")
}

func (m Model) renderStyleChooser() string {
	n := len(m.sess.Tree().Leaves())
	hint := m.theme.NavigatorDetailDim.Render(fmt.Sprintf("%d import candidates found", n))
	return lipgloss.JoinVertical(lipgloss.Left, m.styleList.View(), hint)
}

func (m Model) renderPicker() string {
	left, right := m.paneWidths()
	height := m.bodyHeight()

	title := "Imports for " + filepath.Base(m.targetLabel())
	if q := m.sess.Filter(); q != "" {
		title += m.theme.NavigatorDetailDim.Render("  /" + q)
	}
	treeView := navigator.ListView(m.tree, m.theme, maxInt(left-paneBorder, 1), m.listHeight(), !m.sess.Locked(), m.decorate)
	if len(m.tree.Rows()) == 0 {
		treeView = m.theme.NavigatorDetailDim.Render("No files match the filter.")
	}
	treePane := m.theme.PreviewBorder.
		Width(maxInt(left-paneBorder, 1)).
		Height(height - paneBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.theme.PaneTitle.Render(title), treeView))
	if right == 0 {
		return treePane
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, treePane, m.renderSidePane(right, height))
}

// renderSidePane shows the inspected file while locked and the pending
// settings block otherwise.
func (m Model) renderSidePane(width, height int) string {
	inner := maxInt(width-paneBorder, 1)
	var title, body string
	if m.sess.Locked() {
		title = m.theme.LockBadge.Render("LOCKED") + " " + m.theme.PaneTitle.Render(m.previewInfo)
		body = m.preview.View()
	} else {
		title = m.theme.PaneTitle.Render("Settings")
		body = m.renderPendingBlock(inner)
	}
	return m.theme.ModalBorder.
		Width(inner).
		Height(height - paneBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m Model) renderPendingBlock(width int) string {
	block := strings.TrimRight(m.sess.Preview(), "\n")
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		cells := strings.SplitN(line, imports.Delimiter, 2)
		if len(cells) == 2 {
			kw := lipgloss.NewStyle().Foreground(m.theme.KindColor(cells[0])).Render(cells[0])
			line = kw + imports.Delimiter + cells[1]
		}
		lines[i] = line
	}
	if n := len(m.sess.Settings().Declarations); n > 0 {
		lines = append(lines, "", m.theme.NavigatorDetailDim.Render(fmt.Sprintf("%d existing declarations", n)))
	}
	return wrapToWidth(strings.Join(lines, "\n"), width)
}

func (m Model) renderStatusBar() string {
	text := m.statusMessage.text
	if text == "" {
		text = "Ready"
		if m.sess != nil {
			text = "Session " + m.sess.State().String()
		}
	}
	style := m.theme.StatusBar
	switch m.statusMessage.level {
	case statusWarn:
		style = style.Foreground(m.theme.Warning.GetForeground())
	case statusError:
		style = style.Foreground(m.theme.Error.GetForeground())
	case statusSuccess:
		style = style.Foreground(m.theme.Success.GetForeground())
	}
	if m.register != "" {
		text += "    " + m.theme.StatusBarKey.Render("REG") + " " + m.theme.StatusBarValue.Render(fmt.Sprintf("%d lines", strings.Count(m.register, "\n")))
	}
	return style.Width(maxInt(m.innerWidth(), 1)).Render(text)
}

func (m Model) renderErrorModal() string {
	width := minInt(maxInt(m.innerWidth()-10, 32), 72)
	contentWidth := maxInt(width-4, 24)
	message := strings.TrimSpace(m.errorModalMessage)
	if message == "" {
		message = "An unexpected error occurred."
	}
	messageView := m.theme.Error.Render(wrapToWidth(message, contentWidth))
	title := m.theme.HeaderTitle.Width(contentWidth).Align(lipgloss.Center).Render("Error")
	instructions := fmt.Sprintf("%s / %s Dismiss", m.theme.CommandBarHint.Render("Esc"), m.theme.CommandBarHint.Render("Enter"))
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", messageView, "", instructions)
	box := m.theme.ModalBorder.Width(width).Render(content)
	return lipgloss.Place(m.innerWidth(), maxInt(m.height-framePadding, lipgloss.Height(box)), lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderHelpOverlay() string {
	h := m.help
	h.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.HeaderTitle.Render("Keys"),
		"",
		h.View(m.keys),
		"",
		m.theme.NavigatorDetailDim.Render("While viewing a file, pgup/pgdown scroll the preview."),
	)
	return m.renderModal(content)
}
