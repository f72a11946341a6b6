package ui

import "strings"

func (m *Model) setStatusMessage(msg statusMsg) {
	m.statusMessage = msg
	if msg.level == statusError && strings.TrimSpace(msg.text) != "" {
		m.openErrorModal(msg.text)
	}
}

func (m *Model) setStatus(level statusLevel, text string) {
	m.setStatusMessage(statusMsg{text: text, level: level})
}
