package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RFKIT_CONFIG_DIR", t.TempDir())
	color.NoColor = true
	interactive = func() bool { return false }
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mkWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range map[string]string{
		"rfkit.toml":                  "path_style = \"workspace\"\n",
		"Library/locators.py":         "LOGIN = 'id:login'\n",
		"Resources/common.resource":   "*** Keywords ***\n",
		".venv/lib/site.py":           "",
		"node_modules/pkg/ignored.py": "",
	} {
		full := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "rfkit dev\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestTemplatesTable(t *testing.T) {
	ws := mkWorkspace(t)
	out, err := runCLI(t, "templates", "--workspace", ws)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	for _, want := range []string{"test", ".robot", "locator", ".py", "Keywords"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestTemplatesPlain(t *testing.T) {
	ws := mkWorkspace(t)
	out, err := runCLI(t, "templates", "--plain", "--workspace", ws)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Fatalf("expected 4 templates, got %d:\n%s", lines, out)
	}
}

func TestScanListsCandidates(t *testing.T) {
	ws := mkWorkspace(t)
	out, err := runCLI(t, "scan", "--workspace", ws)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "Library/locators.py") || !strings.Contains(out, "Resources/common.resource") {
		t.Fatalf("missing candidates:\n%s", out)
	}
	if strings.Contains(out, "site.py") || strings.Contains(out, "ignored.py") {
		t.Fatalf("excluded directories were scanned:\n%s", out)
	}
	if !strings.Contains(strings.ToLower(out), "2 files") {
		t.Fatalf("expected footer count:\n%s", out)
	}
}

func TestConfigReadsWorkspaceFile(t *testing.T) {
	ws := mkWorkspace(t)
	out, err := runCLI(t, "config", "--workspace", ws, "--format", "yaml")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "path_style: workspace") {
		t.Fatalf("expected workspace path style:\n%s", out)
	}
}

func TestConfigFlagOverridesFile(t *testing.T) {
	ws := mkWorkspace(t)
	out, err := runCLI(t, "config", "--workspace", ws, "--format", "yaml", "--path-style", "relative")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "path_style: relative") {
		t.Fatalf("expected flag to win:\n%s", out)
	}
}

func TestNewWithoutTerminalWritesFile(t *testing.T) {
	ws := mkWorkspace(t)
	dir := filepath.Join(ws, "Tests")
	_, err := runCLI(t, "new", "test", dir, "--name", "smoke", "--workspace", ws)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "smoke.robot"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "*** Settings ***\n\n\n*** Test Cases ***\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestNewWithoutTerminalNeedsName(t *testing.T) {
	ws := mkWorkspace(t)
	_, err := runCLI(t, "new", "test", ws, "--workspace", ws)
	if err == nil || !strings.Contains(err.Error(), "--name") {
		t.Fatalf("expected missing name error, got %v", err)
	}
}

func TestNewRefusesOverwriteWithoutForce(t *testing.T) {
	ws := mkWorkspace(t)
	path := filepath.Join(ws, "Resources", "common.resource")
	_, err := runCLI(t, "new", "resource", filepath.Dir(path), "--name", "common", "--workspace", ws)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected exists error, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "*** Keywords ***\n" {
		t.Fatalf("file was modified: %q", data)
	}

	if _, err := runCLI(t, "new", "resource", filepath.Dir(path), "--name", "common", "--force", "--workspace", ws); err != nil {
		t.Fatalf("forced new: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "*** Settings ***\n\n\n*** Keywords ***\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestNewUnknownTemplate(t *testing.T) {
	ws := mkWorkspace(t)
	_, err := runCLI(t, "new", "suite", ws, "--name", "x", "--workspace", ws)
	if err == nil || !strings.Contains(err.Error(), "available") {
		t.Fatalf("expected unknown template error, got %v", err)
	}
}

func TestNewDryRunPrintsContent(t *testing.T) {
	ws := mkWorkspace(t)
	out, err := runCLI(t, "new", "variables", ws, "--name", "env", "--dry-run", "--workspace", ws)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !strings.Contains(out, "dry-run: create") || !strings.Contains(out, "*** Variables ***") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(ws, "env.resource")); !os.IsNotExist(err) {
		t.Fatalf("dry run wrote a file: %v", err)
	}
}

func TestNewWithoutDirUsesWorkspaceRoot(t *testing.T) {
	ws := mkWorkspace(t)
	if _, err := runCLI(t, "new", "locator", "--name", "login_page", "--workspace", ws); err != nil {
		t.Fatalf("new: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(ws, "login_page.py"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("locator file should be empty, got %q", data)
	}
}

func TestNewWithFileUsesItsDirectory(t *testing.T) {
	ws := mkWorkspace(t)
	suite := filepath.Join(ws, "Tests", "login.robot")
	if err := os.MkdirAll(filepath.Dir(suite), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(suite, []byte("*** Test Cases ***\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := runCLI(t, "new", "resource", suite, "--name", "common", "--workspace", ws); err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws, "Tests", "common.resource")); err != nil {
		t.Fatalf("expected file next to %s: %v", suite, err)
	}
}
