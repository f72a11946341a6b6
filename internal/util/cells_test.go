package util

import (
	"reflect"
	"testing"
)

func TestSplitCells(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"spaces", "Library    ../lib/a.py", []string{"Library", "../lib/a.py"}},
		{"two spaces", "Resource  common.resource", []string{"Resource", "common.resource"}},
		{"tab", "Variables\tvars.py\targ", []string{"Variables", "vars.py", "arg"}},
		{"single space stays in cell", "Suite Setup    Open Browser", []string{"Suite Setup", "Open Browser"}},
		{"indented", "    ...    timeout=5", []string{"", "...", "timeout=5"}},
		{"trailing", "Library    a.py    ", []string{"Library", "a.py"}},
		{"crlf", "Library    a.py\r", []string{"Library", "a.py"}},
		{"pipes", "| Library | a.py | arg |", []string{"Library", "a.py", "arg"}},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitCells(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitCells(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTrimRightSpace(t *testing.T) {
	if got := TrimRightSpace("abc \t\n"); got != "abc" {
		t.Fatalf("TrimRightSpace = %q", got)
	}
	if got := TrimRightSpace("  abc"); got != "  abc" {
		t.Fatalf("TrimRightSpace touched leading space: %q", got)
	}
}
