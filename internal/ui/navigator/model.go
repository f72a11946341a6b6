package navigator

// Kind tells folders from selectable items.
type Kind int

const (
	KindFolder Kind = iota
	KindItem
)

// Node is one row source in the tree. Payload carries the caller's value.
type Node[T any] struct {
	ID       string
	Kind     Kind
	Title    string
	Target   string
	Badges   []string
	Children []*Node[T]
	Expanded bool
	Payload  T
}

// Flat is a node placed at its depth in the visible list.
type Flat[T any] struct {
	Node  *Node[T]
	Level int
}

// Model is a scrollable, collapsible tree list.
type Model[T any] struct {
	nodes   []*Node[T]
	rows    []Flat[T]
	sel     int
	offset  int
	height  int
	compact bool
	filter  func(*Node[T]) bool
}

func New[T any](nodes []*Node[T]) *Model[T] {
	m := &Model[T]{nodes: nodes}
	m.Refresh()
	return m
}

// SetNodes replaces the tree, keeping the selection on the same ID when it
// still exists.
func (m *Model[T]) SetNodes(nodes []*Node[T]) {
	id := ""
	if n := m.Selected(); n != nil {
		id = n.ID
	}
	m.nodes = nodes
	m.Refresh()
	if id != "" {
		m.SelectByID(id)
	}
}

func (m *Model[T]) SetCompact(v bool) { m.compact = v }

// SetFilter hides nodes the predicate rejects. A rejected folder stays
// visible when any descendant passes. Folders are shown expanded while
// filtering.
func (m *Model[T]) SetFilter(fn func(*Node[T]) bool) {
	m.filter = fn
	m.Refresh()
}

func (m *Model[T]) Filtering() bool { return m.filter != nil }

// Refresh rebuilds the visible rows from the tree.
func (m *Model[T]) Refresh() {
	m.rows = m.rows[:0]
	for _, n := range m.nodes {
		m.flatten(n, 0)
	}
	m.clamp()
}

func (m *Model[T]) flatten(n *Node[T], level int) {
	if n == nil || !m.visible(n) {
		return
	}
	m.rows = append(m.rows, Flat[T]{Node: n, Level: level})
	if n.Kind != KindFolder {
		return
	}
	if !n.Expanded && m.filter == nil {
		return
	}
	for _, c := range n.Children {
		m.flatten(c, level+1)
	}
}

func (m *Model[T]) visible(n *Node[T]) bool {
	if m.filter == nil {
		return true
	}
	if m.filter(n) {
		return true
	}
	if n.Kind != KindFolder {
		return false
	}
	for _, c := range n.Children {
		if m.visible(c) {
			return true
		}
	}
	return false
}

func (m *Model[T]) clamp() {
	if m.sel >= len(m.rows) {
		m.sel = len(m.rows) - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
	m.ensureVisible()
}

func (m *Model[T]) ensureVisible() {
	if m.height <= 0 {
		m.offset = 0
		return
	}
	if m.sel < m.offset {
		m.offset = m.sel
	}
	if m.sel >= m.offset+m.height {
		m.offset = m.sel - m.height + 1
	}
	if limit := len(m.rows) - m.height; m.offset > limit {
		m.offset = limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model[T]) Rows() []Flat[T] { return m.rows }

// VisibleRows returns the rows inside the viewport.
func (m *Model[T]) VisibleRows() []Flat[T] {
	if m.height <= 0 || len(m.rows) <= m.height {
		return m.rows
	}
	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return m.rows[m.offset:end]
}

func (m *Model[T]) SetViewportHeight(h int) {
	m.height = h
	m.ensureVisible()
}

func (m *Model[T]) Index() int { return m.sel }

// Move shifts the selection by delta rows, stopping at either end.
func (m *Model[T]) Move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.sel += delta
	m.clamp()
}

func (m *Model[T]) Top() {
	m.sel = 0
	m.clamp()
}

func (m *Model[T]) Bottom() {
	m.sel = len(m.rows) - 1
	m.clamp()
}

func (m *Model[T]) Selected() *Node[T] {
	if m.sel < 0 || m.sel >= len(m.rows) {
		return nil
	}
	return m.rows[m.sel].Node
}

// SelectByID moves the selection to the visible row with id.
func (m *Model[T]) SelectByID(id string) bool {
	for i, r := range m.rows {
		if r.Node.ID == id {
			m.sel = i
			m.ensureVisible()
			return true
		}
	}
	return false
}

// Find returns the first node with id anywhere in the tree.
func (m *Model[T]) Find(id string) *Node[T] {
	var walk func([]*Node[T]) *Node[T]
	walk = func(ns []*Node[T]) *Node[T] {
		for _, n := range ns {
			if n.ID == id {
				return n
			}
			if hit := walk(n.Children); hit != nil {
				return hit
			}
		}
		return nil
	}
	return walk(m.nodes)
}

// ToggleExpanded flips the selected folder.
func (m *Model[T]) ToggleExpanded() {
	n := m.Selected()
	if n == nil || n.Kind != KindFolder {
		return
	}
	n.Expanded = !n.Expanded
	m.Refresh()
}

// Collapse closes the selected folder, or jumps to the parent folder of
// the selected item.
func (m *Model[T]) Collapse() {
	n := m.Selected()
	if n == nil {
		return
	}
	if n.Kind == KindFolder && n.Expanded {
		n.Expanded = false
		m.Refresh()
		return
	}
	level := m.rows[m.sel].Level
	for i := m.sel - 1; i >= 0; i-- {
		if m.rows[i].Level < level {
			m.sel = i
			m.ensureVisible()
			return
		}
	}
}

// Expand opens the selected folder.
func (m *Model[T]) Expand() {
	n := m.Selected()
	if n == nil || n.Kind != KindFolder || n.Expanded {
		return
	}
	n.Expanded = true
	m.Refresh()
}

// ExpandAll opens every folder in the tree.
func (m *Model[T]) ExpandAll() {
	var walk func([]*Node[T])
	walk = func(ns []*Node[T]) {
		for _, n := range ns {
			if n.Kind == KindFolder {
				n.Expanded = true
				walk(n.Children)
			}
		}
	}
	walk(m.nodes)
	m.Refresh()
}
