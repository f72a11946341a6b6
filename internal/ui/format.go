package ui

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/quick"
	"github.com/muesli/termenv"
)

func lexerFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return "python"
	case ".robot", ".resource":
		return "robotframework"
	default:
		return ""
	}
}

// formatterFor maps the terminal colour profile to a chroma formatter.
// An empty result means no highlighting.
func formatterFor(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return ""
	}
}

func highlight(content, lexer, formatter string) (string, bool) {
	if lexer == "" || formatter == "" {
		return "", false
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, lexer, formatter, "monokai"); err != nil {
		return "", false
	}
	return buf.String(), true
}

func normalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	withoutCRLF := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(withoutCRLF, "\r", "\n")
}
