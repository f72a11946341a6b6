package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/session"
	"github.com/unkn0wn-root/rfkit/internal/ui/navigator"
)

type pickNode = navigator.Node[imports.Node]

func folderID(f *imports.Folder) string { return "dir:" + f.Path }

func leafID(l *imports.Leaf) string { return l.Key().String() }

// buildTree mirrors the candidate folders as navigator nodes. Top-level
// folders start expanded.
func buildTree(root *imports.Folder, style imports.PathStyle) []*pickNode {
	var walk func(f *imports.Folder, depth int) []*pickNode
	walk = func(f *imports.Folder, depth int) []*pickNode {
		var out []*pickNode
		for _, sub := range f.Folders {
			out = append(out, &pickNode{
				ID:       folderID(sub),
				Kind:     navigator.KindFolder,
				Title:    sub.Title(),
				Children: walk(sub, depth+1),
				Expanded: depth == 0,
				Payload:  sub,
			})
		}
		for _, l := range f.Files {
			out = append(out, leafNode(l, style))
		}
		return out
	}
	return walk(root, 0)
}

func leafNode(l *imports.Leaf, style imports.PathStyle) *pickNode {
	return &pickNode{
		ID:      leafID(l),
		Kind:    navigator.KindItem,
		Title:   l.Title(),
		Target:  l.File.PathFor(style),
		Payload: l,
	}
}

// retarget refreshes the displayed paths after a style change.
func retarget(nodes []*pickNode, style imports.PathStyle) {
	for _, n := range nodes {
		if l, ok := n.Payload.(*imports.Leaf); ok {
			n.Target = l.File.PathFor(style)
		}
		retarget(n.Children, style)
	}
}

func (m *Model) openPicker() {
	m.nodes = buildTree(m.sess.Tree(), m.sess.Style())
	m.tree = navigator.New(m.nodes)
	m.screen = screenPicker
	m.applyLayout()
	m.applyFilter()
}

func (m *Model) selectedLeaf() *imports.Leaf {
	if m.tree == nil {
		return nil
	}
	n := m.tree.Selected()
	if n == nil {
		return nil
	}
	l, _ := n.Payload.(*imports.Leaf)
	return l
}

func (m *Model) applyFilter() {
	q := strings.TrimSpace(m.filterInput.Value())
	m.sess.SetFilter(q)
	if q == "" {
		m.tree.SetFilter(nil)
		return
	}
	sess := m.sess
	m.tree.SetFilter(func(n *pickNode) bool {
		switch p := n.Payload.(type) {
		case *imports.Leaf:
			return sess.Visible(p)
		case *imports.Folder:
			return sess.FolderVisible(p)
		}
		return false
	})
}

func (m *Model) decorate(n *pickNode) navigator.Decor {
	l, ok := n.Payload.(*imports.Leaf)
	if !ok {
		return navigator.Decor{}
	}
	d := navigator.Decor{Badge: l.Kind.Keyword()}
	if m.sess.Checked(l.Key()) {
		d.Mark = m.theme.CheckOn.Render("[x]")
	} else {
		d.Mark = m.theme.CheckOff.Render("[ ]")
	}
	if m.sess.Locked() && m.sess.Inspected() == l.File.Path {
		d.Suffix = m.theme.LockBadge.Render("viewing")
	}
	return d
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filterInput.SetValue("")
		m.endFilter()
		return nil
	case "enter":
		m.endFilter()
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *Model) endFilter() {
	m.filtering = false
	m.filterInput.Blur()
	m.applyFilter()
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	if m.sess.Locked() && msg.String() == "esc" {
		m.returnToTarget()
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.cancel()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Up):
		m.tree.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.tree.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.tree.Move(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.tree.Move(m.listHeight())
	case key.Matches(msg, m.keys.Expand):
		m.tree.Expand()
	case key.Matches(msg, m.keys.Collapse):
		m.tree.Collapse()
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleSelected()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return nil
	case key.Matches(msg, m.keys.Style):
		return m.switchStyle()
	case key.Matches(msg, m.keys.Inspect):
		return m.inspectSelected()
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Return):
		m.returnToTarget()
	case key.Matches(msg, m.keys.Yank):
		return m.copyToClipboard(m.sess.Preview(), "Copied settings block")
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	}
	return nil
}

func (m *Model) toggleSelected() tea.Cmd {
	n := m.tree.Selected()
	if n == nil {
		return nil
	}
	if n.Kind == navigator.KindFolder {
		m.tree.ToggleExpanded()
		return nil
	}
	l := m.selectedLeaf()
	on, err := m.sess.Toggle(l.Key())
	if err != nil {
		if errors.Is(err, session.ErrNotVisible) || errors.Is(err, session.ErrUnknownKey) {
			m.setStatus(statusWarn, err.Error())
			return nil
		}
		m.fail(err)
		return nil
	}
	verb := "Removed"
	if on {
		verb = "Added"
	}
	m.setStatus(statusInfo, fmt.Sprintf("%s %s %s", verb, l.Kind.Keyword(), l.File.PathFor(m.sess.Style())))
	return nil
}

func (m *Model) switchStyle() tea.Cmd {
	next := imports.StyleWorkspace
	if m.sess.Style() == imports.StyleWorkspace {
		next = imports.StyleRelative
	}
	if err := m.sess.SetStyle(next); err != nil {
		m.fail(err)
		return nil
	}
	m.cfg.Style = next
	m.styleList.Select(int(next))
	m.refreshTargets()
	m.setStatus(statusInfo, "Paths: "+next.Label())
	return nil
}

func (m *Model) refreshTargets() {
	if m.tree == nil {
		return
	}
	retarget(m.nodes, m.sess.Style())
	m.tree.Refresh()
}

func (m *Model) returnToTarget() {
	if !m.sess.Locked() {
		return
	}
	if err := m.sess.Return(); err != nil {
		m.fail(err)
		return
	}
	m.previewPath = ""
	m.previewInfo = ""
	m.preview.SetContent("")
	m.setStatus(statusInfo, "Back to "+m.targetLabel())
}

func (m *Model) confirm() tea.Cmd {
	res, err := m.sess.Confirm()
	if err != nil {
		m.fail(err)
		return nil
	}
	return m.commit(res)
}

func (m *Model) cancel() tea.Cmd {
	if m.sess != nil && !m.sess.State().Terminal() {
		if err := m.sess.Cancel(); err != nil {
			m.log.Warn("cancel failed", "err", err)
		}
	}
	m.log.Info("cancelled", "target", m.outcome.Path)
	return m.finish("cancelled")
}

func (m *Model) targetLabel() string {
	if m.op.Path != "" {
		return m.op.Path
	}
	return m.cfg.Target
}
