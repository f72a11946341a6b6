package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/scaffold"
	"github.com/unkn0wn-root/rfkit/internal/session"
)

func (m *Model) scaffoldOpt(name string) scaffold.Opt {
	return scaffold.Opt{
		Dir:      m.cfg.Dir,
		Name:     name,
		Template: m.cfg.Template,
		Force:    m.cfg.Force,
		DryRun:   m.cfg.DryRun,
	}
}

func (m *Model) handleNameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m.cancel()
	case "enter":
		return m.submitName()
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.nameError = ""
	return cmd
}

// submitName plans the file. Bad names are reported inline and the prompt
// stays open.
func (m *Model) submitName() tea.Cmd {
	name := strings.TrimSpace(m.nameInput.Value())
	op, err := m.scaffold.Plan(m.scaffoldOpt(name))
	if err != nil {
		if errdef.Recoverable(err) {
			m.screen = screenName
			m.nameError = errdef.Message(err)
			m.nameInput.Focus()
			return nil
		}
		m.fail(err)
		return nil
	}
	m.op = op
	m.outcome.Path = op.Path
	m.nameInput.Blur()
	if op.Action == scaffold.ActionOverwrite && !m.cfg.Force {
		m.screen = screenOverwrite
		return nil
	}
	return m.afterPlan()
}

func (m *Model) handleOverwriteKey(msg tea.KeyMsg) tea.Cmd {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.cfg.Force = true
		return m.afterPlan()
	case "n", "esc", "enter", "q", "ctrl+c":
		m.log.Info("overwrite declined", "path", m.op.Path)
		return m.finish("declined")
	}
	return nil
}

func (m *Model) afterPlan() tea.Cmd {
	if m.cfg.NoImports || !m.op.Template.Imports() {
		return m.write(nil)
	}
	return m.startSession(m.op.Abs, "")
}

func (m *Model) startSession(target, existing string) tea.Cmd {
	sess, err := session.New(session.Config{
		ID:            m.cfg.SessionID,
		Target:        target,
		WorkspaceRoot: m.cfg.Workspace,
		Existing:      existing,
		Style:         m.cfg.Style,
		Logger:        m.log,
		Registry:      m.cfg.Registry,
	})
	if err != nil {
		m.fail(err)
		return nil
	}
	if err := sess.Begin(); err != nil {
		m.fail(err)
		return nil
	}
	m.sess = sess
	m.screen = screenScanning
	return m.scanCmd()
}

func (m *Model) scanCmd() tea.Cmd {
	scan := m.scan
	root := m.sess.WorkspaceRoot()
	dir := m.sess.TargetDir()
	target := m.sess.Target()
	return func() tea.Msg {
		files, err := scan(root, dir)
		return scanDoneMsg{files: withoutPath(files, target), err: err}
	}
}

func withoutPath(files []imports.DiscoveredFile, path string) []imports.DiscoveredFile {
	out := files[:0:0]
	for _, f := range files {
		if f.Path != path {
			out = append(out, f)
		}
	}
	return out
}

func (m *Model) handleScanDone(msg scanDoneMsg) tea.Cmd {
	if m.sess == nil {
		return nil
	}
	if msg.err != nil {
		m.setStatus(statusWarn, "Scan failed: "+errdef.Message(msg.err))
	}
	if err := m.sess.Load(msg.files, msg.err); err != nil {
		m.fail(err)
		return nil
	}
	if m.sess.State().Terminal() {
		return m.commit(<-m.sess.Done())
	}
	m.screen = screenStyle
	return nil
}
