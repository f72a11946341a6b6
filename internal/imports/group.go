package imports

import (
	"path"
	"sort"
	"strings"
)

// Node is either a *Folder or a *Leaf.
type Node interface {
	isNode()
	Title() string
}

// Folder groups leaves by directory. It carries no selection state.
type Folder struct {
	Name    string
	Path    string // slash path relative to the workspace root, "" for the root
	Folders []*Folder
	Files   []*Leaf
}

// Leaf is one (file, kind) pair in the tree.
type Leaf struct {
	File DiscoveredFile
	Kind Kind
}

func (*Folder) isNode() {}
func (*Leaf) isNode()   {}

func (f *Folder) Title() string {
	if f.Name == "" {
		return "."
	}
	return f.Name
}

func (l *Leaf) Title() string { return l.File.Name() }

func (l *Leaf) Key() Key {
	return Key{Path: l.File.Path, Kind: l.Kind}
}

func (l *Leaf) Selection() Selection {
	return Selection{File: l.File, Kind: l.Kind}
}

// Leaves returns every leaf under f, depth first in display order.
func (f *Folder) Leaves() []*Leaf {
	var out []*Leaf
	f.walk(func(l *Leaf) { out = append(out, l) })
	return out
}

func (f *Folder) walk(fn func(*Leaf)) {
	if f == nil {
		return
	}
	for _, c := range f.Folders {
		c.walk(fn)
	}
	for _, l := range f.Files {
		fn(l)
	}
}

func (f *Folder) Find(k Key) *Leaf {
	var hit *Leaf
	f.walk(func(l *Leaf) {
		if hit == nil && l.Key() == k {
			hit = l
		}
	})
	return hit
}

func (f *Folder) Empty() bool {
	return f == nil || (len(f.Folders) == 0 && len(f.Files) == 0)
}

// Group builds the folder tree for files. Segments are taken relative to
// workspaceRoot; relative paths to targetDir are recomputed for every file.
func Group(files []DiscoveredFile, targetDir, workspaceRoot string) *Folder {
	root := &Folder{}
	index := map[string]*Folder{"": root}
	seen := make(map[string]struct{}, len(files))

	for _, f := range files {
		f = Describe(f.Path, f.Class, targetDir, workspaceRoot)
		if _, dup := seen[f.Path]; dup {
			continue
		}
		seen[f.Path] = struct{}{}

		parent := ensureFolder(index, folderPath(f.RelWorkspace))
		for _, k := range f.Class.Kinds() {
			parent.Files = append(parent.Files, &Leaf{File: f, Kind: k})
		}
	}

	sortFolder(root)
	return root
}

func folderPath(rel string) string {
	dir := path.Dir(rel)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

func ensureFolder(index map[string]*Folder, dir string) *Folder {
	if f, ok := index[dir]; ok {
		return f
	}
	// Files outside the workspace hang off a single folder named after
	// their ../ directory instead of a chain of ".." folders.
	if strings.HasPrefix(dir, "..") {
		f := &Folder{Name: dir, Path: dir}
		root := index[""]
		root.Folders = append(root.Folders, f)
		index[dir] = f
		return f
	}

	parentDir := folderPath(dir)
	parent := ensureFolder(index, parentDir)
	f := &Folder{Name: path.Base(dir), Path: dir}
	parent.Folders = append(parent.Folders, f)
	index[dir] = f
	return f
}

func sortFolder(f *Folder) {
	sort.Slice(f.Folders, func(i, j int) bool {
		return f.Folders[i].Name < f.Folders[j].Name
	})
	sort.SliceStable(f.Files, func(i, j int) bool {
		a, b := f.Files[i], f.Files[j]
		if an, bn := a.File.Name(), b.File.Name(); an != bn {
			return an < bn
		}
		return a.Kind < b.Kind
	})
	for _, c := range f.Folders {
		sortFolder(c)
	}
}
