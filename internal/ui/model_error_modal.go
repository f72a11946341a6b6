package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openErrorModal(message string) {
	m.showErrorModal = true
	m.errorModalMessage = strings.TrimSpace(message)
	m.showHelp = false
}

func (m *Model) closeErrorModal() {
	m.showErrorModal = false
	m.errorModalMessage = ""
}

// fail shows err and ends the run once the modal is dismissed.
func (m *Model) fail(err error) {
	m.outcome.Err = err
	m.quitAfterModal = true
	m.setStatus(statusError, err.Error())
}

func (m *Model) quitWithError() tea.Cmd {
	if m.sess != nil && !m.sess.State().Terminal() {
		if err := m.sess.Cancel(); err != nil {
			m.log.Warn("cancel after error", "err", err)
		}
	}
	action := "failed"
	if m.outcome.Err == nil {
		action = "cancelled"
	}
	return m.finish(action)
}
