package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/theme"
)

type styleItem struct {
	style imports.PathStyle
}

func (i styleItem) Title() string { return i.style.Label() }

func (i styleItem) Description() string {
	if i.style == imports.StyleWorkspace {
		return "e.g. Resource    resources/common.resource"
	}
	return "e.g. Resource    ../resources/common.resource"
}

func (i styleItem) FilterValue() string { return i.style.String() }

func newStyleList(th theme.Theme, current imports.PathStyle) list.Model {
	items := []list.Item{
		styleItem{style: imports.StyleRelative},
		styleItem{style: imports.StyleWorkspace},
	}
	delegate := list.NewDefaultDelegate()
	delegate.Styles.NormalTitle = th.ListItemTitle
	delegate.Styles.NormalDesc = th.ListItemDescription
	delegate.Styles.SelectedTitle = th.ListItemSelected
	delegate.Styles.SelectedDesc = th.ListItemSelected.Bold(false)

	l := list.New(items, delegate, 48, 8)
	l.Title = "Import paths"
	l.Styles.Title = th.PaneTitle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Select(int(current))
	return l
}

func (m *Model) selectedStyle() imports.PathStyle {
	if it, ok := m.styleList.SelectedItem().(styleItem); ok {
		return it.style
	}
	return m.cfg.Style
}

func (m *Model) handleStyleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return m.cancel()
	case "esc", "q":
		return m.skipImports()
	case "enter":
		style := m.selectedStyle()
		if err := m.sess.ChoosePathStyle(style); err != nil {
			m.fail(err)
			return nil
		}
		m.cfg.Style = style
		m.openPicker()
		return nil
	}
	var cmd tea.Cmd
	m.styleList, cmd = m.styleList.Update(msg)
	return cmd
}

// skipImports dismisses the prompt; the file is still written without
// new imports.
func (m *Model) skipImports() tea.Cmd {
	if err := m.sess.SkipImports(); err != nil {
		m.fail(err)
		return nil
	}
	return m.commit(<-m.sess.Done())
}
