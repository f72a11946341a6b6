package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	switch {
	case m.cfg.Mode == ModeEdit:
		return func() tea.Msg { return startEditMsg{} }
	case m.cfg.Name != "":
		return func() tea.Msg { return submitNameMsg{} }
	default:
		return textinput.Blink
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.ready = true
		m.applyLayout()
	case statusMsg:
		m.setStatusMessage(typed)
	case submitNameMsg:
		cmds = append(cmds, m.submitName())
	case startEditMsg:
		cmds = append(cmds, m.startSession(m.cfg.Target, m.cfg.Existing))
	case scanDoneMsg:
		cmds = append(cmds, m.handleScanDone(typed))
	case previewLoadedMsg:
		m.handlePreviewLoaded(typed)
	case editorClosedMsg:
		cmds = append(cmds, m.handleEditorClosed(typed))
	case writeDoneMsg:
		cmds = append(cmds, m.handleWriteDone(typed))
	}

	if m.showErrorModal {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "enter", "q":
				m.closeErrorModal()
				if m.quitAfterModal {
					cmds = append(cmds, m.quitWithError())
				}
			case "ctrl+c":
				m.closeErrorModal()
				cmds = append(cmds, m.quitWithError())
			}
		}
		return m, tea.Batch(cmds...)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		cmds = append(cmds, m.handleKey(keyMsg))
	} else if m.screen == screenName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.quitting {
		return nil
	}
	switch m.screen {
	case screenName:
		return m.handleNameKey(msg)
	case screenOverwrite:
		return m.handleOverwriteKey(msg)
	case screenStyle:
		return m.handleStyleKey(msg)
	case screenPicker:
		if m.sess.Locked() && m.handlePreviewScroll(msg) {
			return nil
		}
		return m.handlePickerKey(msg)
	case screenScanning, screenWriting:
		if msg.String() == "ctrl+c" {
			return m.cancel()
		}
	}
	return nil
}

// handlePreviewScroll lets pgup/pgdown scroll the inspected file while
// locked.
func (m *Model) handlePreviewScroll(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "pgup", "ctrl+u":
		m.preview.ViewUp()
	case "pgdown", "ctrl+d":
		m.preview.ViewDown()
	default:
		return false
	}
	return true
}
