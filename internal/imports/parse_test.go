package imports

import (
	"path/filepath"
	"testing"
)

func TestParseSettingsTolerant(t *testing.T) {
	content := "" +
		"*** settings ***\n" +
		"Documentation    Login suite\n" +
		"library:    SeleniumLibrary    timeout=5\n" +
		"...    implicit_wait=1\n" +
		"# Resource    commented.resource\n" +
		"RESOURCE\t../common.resource\n" +
		"| Variables | vars.py |\n" +
		"\n" +
		"*** Test Cases ***\n" +
		"Library    not/an/import.py\n"

	st := ParseSettings(content)
	if !st.Found || st.Header != 0 {
		t.Fatalf("expected settings header at line 0, got %+v", st)
	}
	if st.End != 8 {
		t.Fatalf("expected section end at line 8, got %d", st.End)
	}
	if len(st.Declarations) != 3 {
		t.Fatalf("expected 3 declarations, got %d: %+v", len(st.Declarations), st.Declarations)
	}

	lib := st.Declarations[0]
	if lib.Kind != KindLibrary || lib.Path != "SeleniumLibrary" {
		t.Fatalf("unexpected library declaration %+v", lib)
	}
	if lib.Raw != "library:    SeleniumLibrary    timeout=5\n...    implicit_wait=1" {
		t.Fatalf("expected continuation kept in raw text, got %q", lib.Raw)
	}
	if lib.Line != 2 || lib.End != 4 {
		t.Fatalf("unexpected library span %d-%d", lib.Line, lib.End)
	}

	resource := st.Declarations[1]
	if resource.Kind != KindResource || resource.Path != "../common.resource" {
		t.Fatalf("unexpected resource declaration %+v", resource)
	}
	vars := st.Declarations[2]
	if vars.Kind != KindVariables || vars.Path != "vars.py" {
		t.Fatalf("unexpected variables declaration %+v", vars)
	}
}

func TestParseSettingsMissing(t *testing.T) {
	st := ParseSettings("*** Test Cases ***\nCase\n    Log    hi\n")
	if st.Found {
		t.Fatalf("expected no settings section")
	}
	if len(st.Declarations) != 0 {
		t.Fatalf("expected no declarations")
	}
}

func TestParseSettingsSingularHeader(t *testing.T) {
	st := ParseSettings("*Setting*\nResource    a.resource\n")
	if !st.Found || len(st.Declarations) != 1 {
		t.Fatalf("expected singular header to be accepted, got %+v", st)
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Library", KindLibrary, true},
		{"resource", KindResource, true},
		{"VARIABLES:", KindVariables, true},
		{"Documentation", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseKind(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("ParseKind(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParsePathStyle(t *testing.T) {
	if s, err := ParsePathStyle("Workspace"); err != nil || s != StyleWorkspace {
		t.Fatalf("expected workspace style, got %v %v", s, err)
	}
	if s, err := ParsePathStyle(""); err != nil || s != StyleRelative {
		t.Fatalf("expected default relative style, got %v %v", s, err)
	}
	if _, err := ParsePathStyle("absolute"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}

func TestResolve(t *testing.T) {
	target := ws("Tests")
	root := ws()
	cases := []struct {
		name string
		path string
		want []string
	}{
		{"relative", "../common.resource", []string{ws("common.resource"), filepath.Join(filepath.Dir(ws()), "common.resource")}},
		{"curdir", "${CURDIR}/keywords.resource", []string{ws("Tests", "keywords.resource")}},
		{"execdir", "${EXECDIR}${/}Library${/}locators.py", []string{ws("Library", "locators.py")}},
		{"bare library", "Collections", nil},
		{"unknown variable", "${ROOT}/x.resource", nil},
		{"bare file", "vars.py", []string{ws("Tests", "vars.py"), ws("vars.py")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(Declaration{Kind: KindResource, Path: tc.path}, target, root)
			if len(got) != len(tc.want) {
				t.Fatalf("Resolve(%q) = %v, want %v", tc.path, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Resolve(%q) = %v, want %v", tc.path, got, tc.want)
				}
			}
		})
	}
}
