package navigator

import (
	"strings"
	"testing"
)

func sampleTree() []*Node[string] {
	return []*Node[string]{
		{
			ID:    "dir:Library",
			Kind:  KindFolder,
			Title: "Library",
			Children: []*Node[string]{
				{ID: "lib:locators", Kind: KindItem, Title: "locators.py"},
				{ID: "var:locators", Kind: KindItem, Title: "locators.py"},
			},
		},
		{
			ID:    "dir:Resources",
			Kind:  KindFolder,
			Title: "Resources",
			Children: []*Node[string]{
				{ID: "res:common", Kind: KindItem, Title: "common.resource"},
				{ID: "res:login", Kind: KindItem, Title: "login.resource"},
			},
		},
		{ID: "lib:helpers", Kind: KindItem, Title: "helpers.py"},
	}
}

func ids(rows []Flat[string]) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Node.ID
	}
	return out
}

func TestCollapsedByDefault(t *testing.T) {
	m := New(sampleTree())
	if got := ids(m.Rows()); strings.Join(got, ",") != "dir:Library,dir:Resources,lib:helpers" {
		t.Fatalf("unexpected rows %v", got)
	}
}

func TestToggleExpanded(t *testing.T) {
	m := New(sampleTree())
	m.ToggleExpanded()
	if len(m.Rows()) != 5 {
		t.Fatalf("expected library children visible, got %v", ids(m.Rows()))
	}
	if m.Rows()[1].Level != 1 {
		t.Fatalf("expected child at level 1")
	}
	m.ToggleExpanded()
	if len(m.Rows()) != 3 {
		t.Fatalf("expected folder collapsed again")
	}
}

func TestMoveClamps(t *testing.T) {
	m := New(sampleTree())
	m.Move(-5)
	if m.Index() != 0 {
		t.Fatalf("expected index 0, got %d", m.Index())
	}
	m.Move(10)
	if m.Selected().ID != "lib:helpers" {
		t.Fatalf("expected last row selected, got %s", m.Selected().ID)
	}
	m.Top()
	if m.Selected().ID != "dir:Library" {
		t.Fatalf("expected first row after Top")
	}
}

func TestCollapseJumpsToParent(t *testing.T) {
	m := New(sampleTree())
	m.ExpandAll()
	if !m.SelectByID("res:login") {
		t.Fatalf("expected to select res:login")
	}
	m.Collapse()
	if m.Selected().ID != "dir:Resources" {
		t.Fatalf("expected parent folder selected, got %s", m.Selected().ID)
	}
	m.Collapse()
	if len(m.Rows()) != 5 {
		t.Fatalf("expected Resources collapsed, got %v", ids(m.Rows()))
	}
}

func TestFilterShowsMatchingBranches(t *testing.T) {
	m := New(sampleTree())
	m.SetFilter(func(n *Node[string]) bool {
		return strings.Contains(n.Title, "login")
	})
	if got := ids(m.Rows()); strings.Join(got, ",") != "dir:Resources,res:login" {
		t.Fatalf("unexpected filtered rows %v", got)
	}
	if !m.Filtering() {
		t.Fatalf("expected filtering state")
	}
	m.SetFilter(nil)
	if len(m.Rows()) != 3 {
		t.Fatalf("expected collapsed tree after clearing filter, got %v", ids(m.Rows()))
	}
}

func TestFilterAcceptedFolderStaysVisible(t *testing.T) {
	m := New(sampleTree())
	m.SetFilter(func(n *Node[string]) bool {
		return n.ID == "dir:Library"
	})
	if got := ids(m.Rows()); strings.Join(got, ",") != "dir:Library" {
		t.Fatalf("unexpected filtered rows %v", got)
	}
}

func TestViewportFollowsSelection(t *testing.T) {
	m := New(sampleTree())
	m.ExpandAll()
	m.SetViewportHeight(2)
	m.Bottom()
	rows := m.VisibleRows()
	if len(rows) != 2 || rows[1].Node.ID != "lib:helpers" {
		t.Fatalf("expected viewport at bottom, got %v", ids(rows))
	}
	m.Top()
	if m.VisibleRows()[0].Node.ID != "dir:Library" {
		t.Fatalf("expected viewport at top")
	}
}

func TestSetNodesKeepsSelection(t *testing.T) {
	m := New(sampleTree())
	m.ExpandAll()
	m.SelectByID("res:common")
	tree := sampleTree()
	for _, n := range tree {
		n.Expanded = true
	}
	m.SetNodes(tree)
	if m.Selected().ID != "res:common" {
		t.Fatalf("expected selection kept, got %s", m.Selected().ID)
	}
	if m.Find("var:locators") == nil {
		t.Fatalf("expected Find to search collapsed nodes")
	}
}
