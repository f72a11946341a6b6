package scaffold

import (
	"sort"
	"strings"
)

var templates = []Template{
	{
		Name:        "test",
		Description: "test suite with a Test Cases section",
		Ext:         ".robot",
		Section:     "*** Test Cases ***",
	},
	{
		Name:        "resource",
		Description: "resource file with a Keywords section",
		Ext:         ".resource",
		Section:     "*** Keywords ***",
	},
	{
		Name:        "variables",
		Description: "variables file with a Variables section",
		Ext:         ".resource",
		Section:     "*** Variables ***",
	},
	{
		Name:        "locator",
		Description: "empty Python locator module",
		Ext:         ".py",
	},
}

// TemplateStore looks templates up by name.
type TemplateStore interface {
	Find(name string) (Template, bool)
	List() []Template
	Names() []string
	Width() int
}

// BuiltinTemplates serves the compiled-in templates. Ext overrides the
// extension per template name.
type BuiltinTemplates struct {
	Ext map[string]string
}

func (b BuiltinTemplates) Find(name string) (Template, bool) {
	name = normalizeTemplateName(name)
	for _, t := range templates {
		if t.Name == name {
			return b.apply(t), true
		}
	}
	return Template{}, false
}

func (b BuiltinTemplates) List() []Template {
	out := make([]Template, len(templates))
	for i, t := range templates {
		out[i] = b.apply(t)
	}
	return out
}

func (b BuiltinTemplates) Names() []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Name)
	}
	sort.Strings(out)
	return out
}

func (b BuiltinTemplates) Width() int {
	w := 0
	for _, t := range templates {
		if len(t.Name) > w {
			w = len(t.Name)
		}
	}
	return w
}

func (b BuiltinTemplates) apply(t Template) Template {
	ext := strings.TrimSpace(b.Ext[t.Name])
	if ext == "" {
		return t
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	t.Ext = ext
	return t
}
