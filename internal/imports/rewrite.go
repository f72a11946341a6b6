package imports

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// Rewrite replaces the import lines of the settings section with lines,
// placed directly below the header. Other settings (documentation, setups,
// comments) keep their order after the imports. Without a settings section
// a new one is prepended, unless there is nothing to import. Inserted lines
// follow the line endings of content.
func Rewrite(content string, lines []string) string {
	crlf := strings.Contains(content, "\r\n")
	st := ParseSettings(content)
	if !st.Found {
		if len(lines) == 0 {
			return content
		}
		if crlf {
			return strings.ReplaceAll(RenderDocument(lines, ""), "\n", "\r\n") + content
		}
		return RenderDocument(lines, content)
	}

	src := splitLines(content)
	drop := make(map[int]struct{})
	for _, d := range st.Declarations {
		for i := d.Line; i < d.End; i++ {
			drop[i] = struct{}{}
		}
	}

	out := make([]string, 0, len(src)+len(lines))
	out = append(out, src[:st.Header+1]...)
	for _, l := range lines {
		for _, part := range strings.Split(l, "\n") {
			part = strings.TrimSuffix(part, "\r")
			if crlf {
				part += "\r"
			}
			out = append(out, part)
		}
	}
	for i := st.Header + 1; i < st.End; i++ {
		if _, ok := drop[i]; ok {
			continue
		}
		out = append(out, src[i])
	}
	out = append(out, src[st.End:]...)
	return strings.Join(out, "\n")
}

// Diff renders a unified diff of an import rewrite. It is empty when
// nothing changed.
func Diff(label, before, after string) string {
	if before == after {
		return ""
	}
	return udiff.Unified(label, label, before, after)
}
