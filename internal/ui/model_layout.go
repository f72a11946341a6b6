package ui

const (
	framePadding = 2
	chromeRows   = 4 // header, command bar, status bar, help
	paneBorder   = 2
)

func (m Model) innerWidth() int {
	return maxInt(m.width-framePadding, 0)
}

func (m Model) bodyHeight() int {
	return maxInt(m.height-framePadding-chromeRows, 3)
}

// paneWidths splits the body between the tree and the side pane.
func (m Model) paneWidths() (int, int) {
	total := m.innerWidth()
	if total < 60 {
		return total, 0
	}
	left := total * 11 / 20
	return left, total - left
}

func (m Model) listHeight() int {
	h := m.bodyHeight() - paneBorder - 1
	if m.filtering || m.filterInput.Value() != "" {
		h--
	}
	return maxInt(h, 1)
}

func (m *Model) applyLayout() {
	_, right := m.paneWidths()
	m.preview.Width = maxInt(right-paneBorder, 0)
	m.preview.Height = maxInt(m.bodyHeight()-paneBorder-1, 1)
	m.styleList.SetSize(minInt(maxInt(m.innerWidth()-8, 24), 56), 8)
	m.help.Width = m.innerWidth()
	if m.tree != nil {
		m.tree.SetCompact(right == 0)
	}
}
