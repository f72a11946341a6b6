package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard yanks text and reports the outcome as a status message.
// The last yank is kept in a register when no clipboard is available.
func (m *Model) copyToClipboard(text string, success string) tea.Cmd {
	trimmed := normalizeNewlines(text)
	m.register = trimmed
	if strings.TrimSpace(success) == "" {
		success = "Copied"
	}
	write := m.clipboardWrite
	if write == nil {
		write = clipboard.WriteAll
	}
	return func() tea.Msg {
		if trimmed == "" {
			return statusMsg{text: "Nothing to copy", level: statusWarn}
		}
		if err := write(trimmed); err != nil {
			return statusMsg{text: "Clipboard unavailable; kept in register", level: statusWarn}
		}
		return statusMsg{text: success, level: statusSuccess}
	}
}
