package scaffold

import (
	"io/fs"

	"github.com/unkn0wn-root/rfkit/internal/imports"
)

// Template is a single-file starter. Section is the body header written
// below the settings block; an empty Section means the file starts empty
// and takes no imports.
type Template struct {
	Name        string
	Description string
	Ext         string
	Section     string
}

// Imports reports whether the template gets a settings block.
func (t Template) Imports() bool {
	return t.Section != ""
}

// Content renders the file body for the given import lines.
func (t Template) Content(lines []string) string {
	if !t.Imports() {
		return ""
	}
	return imports.RenderDocument(lines, t.Section+"\n")
}

type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
	ActionUpdate    Action = "update"
)

// Op is a planned write of one file.
type Op struct {
	Action   Action
	Path     string // as shown to the user
	Abs      string
	Mode     fs.FileMode
	Data     string
	Template Template
}

// WithImports re-renders the op body for lines.
func (o Op) WithImports(lines []string) Op {
	o.Data = o.Template.Content(lines)
	return o
}
