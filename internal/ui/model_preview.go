package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
	"github.com/unkn0wn-root/rfkit/internal/session"
)

const maxPreviewBytes = 256 << 10

// inspectSelected locks the picker and loads the selected file into the
// preview pane.
func (m *Model) inspectSelected() tea.Cmd {
	l := m.selectedLeaf()
	if l == nil {
		return nil
	}
	if err := m.sess.Inspect(l.File.Path); err != nil {
		if errors.Is(err, session.ErrUnknownKey) {
			m.setStatus(statusWarn, err.Error())
			return nil
		}
		m.fail(err)
		return nil
	}
	m.previewPath = l.File.Path
	m.previewInfo = ""
	m.preview.SetContent("loading...")
	m.preview.GotoTop()
	return loadPreview(l.File.Path)
}

func loadPreview(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return previewLoadedMsg{path: path, err: errdef.Wrap(errdef.CodeFilesystem, err, "stat %s", path)}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return previewLoadedMsg{path: path, err: errdef.Wrap(errdef.CodeFilesystem, err, "read %s", path)}
		}
		if len(data) > maxPreviewBytes {
			data = data[:maxPreviewBytes]
		}
		return previewLoadedMsg{path: path, content: string(data), size: info.Size()}
	}
}

func (m *Model) handlePreviewLoaded(msg previewLoadedMsg) {
	if msg.path != m.previewPath {
		return
	}
	if msg.err != nil {
		m.preview.SetContent(m.theme.Error.Render(errdef.Message(msg.err)))
		m.setStatus(statusWarn, errdef.Message(msg.err))
		return
	}
	content := normalizeNewlines(msg.content)
	if out, ok := highlight(content, lexerFor(msg.path), formatterFor(m.cfg.Profile)); ok {
		content = out
	}
	m.preview.SetContent(strings.TrimRight(content, "\n"))
	m.preview.GotoTop()
	m.previewInfo = fmt.Sprintf("%s  %s", filepath.Base(msg.path), humanize.Bytes(uint64(msg.size)))
}

func (m *Model) openSelected() tea.Cmd {
	l := m.selectedLeaf()
	if l == nil {
		return nil
	}
	if !m.opener.Available() {
		m.setStatus(statusWarn, "No editor configured (set $EDITOR)")
		return nil
	}
	if err := m.sess.Focus(l.File.Path); err != nil {
		m.fail(err)
		return nil
	}
	if !m.sess.Locked() {
		m.previewPath = ""
		m.previewInfo = ""
	}
	return m.opener.Exec(l.File.Path)
}

// handleEditorClosed reloads the preview when the edited file is the one
// being inspected.
func (m *Model) handleEditorClosed(msg editorClosedMsg) tea.Cmd {
	if msg.err != nil {
		m.setStatus(statusWarn, fmt.Sprintf("Editor exited: %v", msg.err))
		return nil
	}
	m.setStatus(statusInfo, "Back from "+filepath.Base(msg.path))
	if m.previewPath == msg.path {
		return loadPreview(msg.path)
	}
	return nil
}
