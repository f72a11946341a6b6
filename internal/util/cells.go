package util

import (
	"regexp"
	"strings"
	"unicode"
)

var cellSep = regexp.MustCompile(`(?: {2,}|\t)[ \t]*`)

// SplitCells splits a test-data line into cells using the space separated
// format (two or more spaces or a tab) or the pipe separated format
// ("| a | b |"). A line indented by a separator yields an empty first cell.
// Trailing empty cells are dropped.
func SplitCells(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	if strings.HasPrefix(line, "| ") || line == "|" {
		return splitPipes(line)
	}
	cells := cellSep.Split(TrimRightSpace(line), -1)
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func splitPipes(line string) []string {
	body := strings.TrimSpace(strings.TrimPrefix(line, "|"))
	body = strings.TrimSuffix(body, " |")
	if body == "|" {
		body = ""
	}
	parts := strings.Split(body, " | ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func TrimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
