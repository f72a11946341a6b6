package imports

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/unkn0wn-root/rfkit/internal/util"
)

var (
	settingsHeaderRe = regexp.MustCompile(`(?i)^\*+\s*settings?\s*(\*.*)?$`)
	continuationCell = "..."
)

// Declaration is an import line found in an existing settings section.
type Declaration struct {
	Kind Kind
	Path string
	Raw  string // original text, including continuation lines
	Line int    // zero based index of the first line
	End  int    // exclusive end line index
}

// Settings describes the settings section of a document.
type Settings struct {
	Found        bool
	Header       int // line index of the section header
	End          int // exclusive end of the section
	Declarations []Declaration
}

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

func isSectionHeader(line string) bool {
	return strings.HasPrefix(line, "*")
}

func isSettingsHeader(line string) bool {
	return settingsHeaderRe.MatchString(strings.TrimSpace(line))
}

// ParseSettings locates the first settings section and the import
// declarations in it. Keywords match case-insensitively; cells may be
// separated by two or more spaces, tabs or pipes.
func ParseSettings(content string) Settings {
	lines := splitLines(content)
	st := Settings{Header: -1, End: -1}
	for i, l := range lines {
		if isSettingsHeader(l) {
			st.Found = true
			st.Header = i
			break
		}
	}
	if !st.Found {
		return st
	}

	st.End = len(lines)
	var cur *Declaration
	for i := st.Header + 1; i < len(lines); i++ {
		l := lines[i]
		if isSectionHeader(l) {
			st.End = i
			break
		}
		cells := util.SplitCells(l)
		if cur != nil && isContinuation(cells) {
			cur.Raw += "\n" + l
			cur.End = i + 1
			continue
		}
		if cur != nil {
			st.Declarations = append(st.Declarations, *cur)
			cur = nil
		}
		if len(cells) == 0 || cells[0] == "" || strings.HasPrefix(cells[0], "#") {
			continue
		}
		kind, ok := ParseKind(cells[0])
		if !ok {
			continue
		}
		d := Declaration{Kind: kind, Raw: l, Line: i, End: i + 1}
		if len(cells) > 1 {
			d.Path = cells[1]
		}
		cur = &d
	}
	if cur != nil {
		st.Declarations = append(st.Declarations, *cur)
	}
	return st
}

func isContinuation(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			continue
		}
		return c == continuationCell
	}
	return false
}

// Resolve returns the absolute paths a declared import may point to, most
// specific first. Library names without a path or file extension (for
// example "Collections") resolve to nothing.
func Resolve(d Declaration, targetDir, workspaceRoot string) []string {
	p := strings.TrimSpace(d.Path)
	if p == "" {
		return nil
	}
	p = expandBuiltins(p, targetDir, workspaceRoot)
	if strings.Contains(p, "${") {
		return nil
	}
	if !looksLikeFile(p) {
		return nil
	}

	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return []string{filepath.Clean(p)}
	}
	var out []string
	seen := map[string]struct{}{}
	for _, base := range []string{targetDir, workspaceRoot} {
		if base == "" {
			continue
		}
		c := filepath.Join(base, p)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func expandBuiltins(p, targetDir, workspaceRoot string) string {
	r := strings.NewReplacer(
		"${CURDIR}", filepath.ToSlash(targetDir),
		"${EXECDIR}", filepath.ToSlash(workspaceRoot),
		"${/}", "/",
	)
	return r.Replace(p)
}

func looksLikeFile(p string) bool {
	if strings.ContainsAny(p, `/\`) {
		return true
	}
	_, ok := ClassOf(p)
	return ok
}
