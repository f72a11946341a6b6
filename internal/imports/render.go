package imports

import "strings"

const (
	SettingsHeader = "*** Settings ***"
	// Delimiter separates the keyword and path columns. Robot Framework
	// needs at least two spaces; four is the conventional width.
	Delimiter = "    "
)

// Render emits the settings block for selections: the header followed by
// one line per selection grouped Library, Resource, Variables.
func Render(selections []Selection, style PathStyle) string {
	return Block(Compose(nil, selections, style))
}

// Block wraps import lines in a settings section. The result always ends
// with a newline.
func Block(lines []string) string {
	var b strings.Builder
	b.WriteString(SettingsHeader)
	b.WriteByte('\n')
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Compose orders import lines by kind. Within a kind, kept declarations
// come first in file order, then added selections in insertion order.
func Compose(kept []Declaration, added []Selection, style PathStyle) []string {
	var out []string
	for _, k := range Kinds {
		for _, d := range kept {
			if d.Kind == k {
				out = append(out, d.Raw)
			}
		}
		for _, s := range added {
			if s.Kind == k {
				out = append(out, s.Line(style))
			}
		}
	}
	return out
}

// RenderDocument composes a full file from a settings block and a body
// section, separated by two blank lines.
func RenderDocument(lines []string, body string) string {
	return Block(lines) + "\n\n" + body
}
