package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/scaffold"
	"github.com/unkn0wn-root/rfkit/internal/session"
)

// commit turns a finished session into a write. Cancelled sessions never
// touch the target.
func (m *Model) commit(res session.Result) tea.Cmd {
	if res.Aborted() {
		return m.finish("cancelled")
	}
	lines := res.Lines()
	m.outcome.Imports = len(lines)
	m.log.Info("imports chosen",
		"outcome", res.Outcome.String(),
		"style", res.Style.String(),
		"lines", len(lines),
	)
	if m.cfg.Mode == ModeEdit {
		return m.rewrite(lines)
	}
	return m.write(lines)
}

func (m *Model) write(lines []string) tea.Cmd {
	m.screen = screenWriting
	cmd := m.scaffold
	op := m.op.WithImports(lines)
	opt := m.scaffoldOpt(m.nameInput.Value())
	opt.Out = io.Discard
	return func() tea.Msg {
		return writeDoneMsg{op: op, err: cmd.Apply(op, opt)}
	}
}

func (m *Model) rewrite(lines []string) tea.Cmd {
	m.screen = screenWriting
	cmd := m.scaffold
	before := m.cfg.Existing
	after := imports.Rewrite(before, lines)
	target := m.cfg.Target
	dry := m.cfg.DryRun
	op := scaffold.Op{Action: scaffold.ActionUpdate, Path: target, Abs: target, Data: after}
	return func() tea.Msg {
		diff := imports.Diff(target, before, after)
		if after == before {
			return writeDoneMsg{op: op}
		}
		if dry {
			return writeDoneMsg{op: op, diff: diff}
		}
		err := cmd.Update(target, after, scaffold.Opt{Force: true, Out: io.Discard})
		return writeDoneMsg{op: op, diff: diff, err: err}
	}
}

func (m *Model) handleWriteDone(msg writeDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.fail(msg.err)
		return nil
	}
	m.outcome.Diff = msg.diff
	m.outcome.Content = msg.op.Data
	action := "unchanged"
	switch msg.op.Action {
	case scaffold.ActionCreate:
		action = "created"
	case scaffold.ActionOverwrite:
		action = "overwritten"
	case scaffold.ActionUpdate:
		if msg.op.Data != m.cfg.Existing {
			action = "updated"
		}
	}
	m.log.Info("write finished", "action", action, "path", msg.op.Path, "dry_run", m.cfg.DryRun)
	return m.finish(action)
}
