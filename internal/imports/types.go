package imports

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the keyword an import is declared with.
type Kind int

const (
	KindLibrary Kind = iota
	KindResource
	KindVariables
)

// Kinds lists every import kind in render order.
var Kinds = []Kind{KindLibrary, KindResource, KindVariables}

func (k Kind) Keyword() string {
	switch k {
	case KindLibrary:
		return "Library"
	case KindResource:
		return "Resource"
	case KindVariables:
		return "Variables"
	default:
		return ""
	}
}

func (k Kind) String() string {
	if kw := k.Keyword(); kw != "" {
		return kw
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind matches an import keyword case-insensitively. A trailing colon
// is tolerated since older suites write "Library:".
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ":")
	for _, k := range Kinds {
		if strings.EqualFold(s, k.Keyword()) {
			return k, true
		}
	}
	return 0, false
}

// Class tells which import kinds a discovered file can be used with.
type Class int

const (
	ClassLibrary Class = iota
	ClassResource
)

func (c Class) String() string {
	switch c {
	case ClassLibrary:
		return "library"
	case ClassResource:
		return "resource"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

func (c Class) Kinds() []Kind {
	switch c {
	case ClassLibrary:
		return []Kind{KindLibrary, KindVariables}
	case ClassResource:
		return []Kind{KindResource}
	default:
		return nil
	}
}

// ClassOf classifies a path by extension.
func ClassOf(path string) (Class, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return ClassLibrary, true
	case ".resource":
		return ClassResource, true
	default:
		return 0, false
	}
}

// PathStyle selects which relative path an import line is written with.
type PathStyle int

const (
	StyleRelative PathStyle = iota
	StyleWorkspace
)

func (s PathStyle) String() string {
	if s == StyleWorkspace {
		return "workspace"
	}
	return "relative"
}

func (s PathStyle) Label() string {
	if s == StyleWorkspace {
		return "Relative to workspace root"
	}
	return "Relative to target file"
}

func ParsePathStyle(s string) (PathStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relative", "target", "file":
		return StyleRelative, nil
	case "workspace", "root":
		return StyleWorkspace, nil
	default:
		return 0, fmt.Errorf("imports: unknown path style %q (want relative or workspace)", s)
	}
}

// DiscoveredFile is a workspace file that can be imported.
type DiscoveredFile struct {
	Path         string
	Class        Class
	RelTarget    string
	RelWorkspace string
}

func (f DiscoveredFile) Name() string {
	return filepath.Base(f.Path)
}

func (f DiscoveredFile) PathFor(style PathStyle) string {
	if style == StyleWorkspace {
		return f.RelWorkspace
	}
	return f.RelTarget
}

// Describe builds a DiscoveredFile with both relative paths computed.
func Describe(path string, class Class, targetDir, workspaceRoot string) DiscoveredFile {
	path = filepath.Clean(path)
	return DiscoveredFile{
		Path:         path,
		Class:        class,
		RelTarget:    relSlash(targetDir, path),
		RelWorkspace: relSlash(workspaceRoot, path),
	}
}

func relSlash(base, path string) string {
	if base == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Key identifies a (file, kind) pair.
type Key struct {
	Path string
	Kind Kind
}

func (k Key) String() string {
	return k.Kind.Keyword() + ":" + k.Path
}

// Selection is a file chosen for import under a kind. Raw holds the
// original line when the selection came from an existing settings block.
type Selection struct {
	File DiscoveredFile
	Kind Kind
	Raw  string
}

func (s Selection) Key() Key {
	return Key{Path: s.File.Path, Kind: s.Kind}
}

func (s Selection) Line(style PathStyle) string {
	if s.Raw != "" {
		return s.Raw
	}
	return s.Kind.Keyword() + Delimiter + s.File.PathFor(style)
}
