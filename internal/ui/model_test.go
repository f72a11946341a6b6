package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/session"
	"github.com/unkn0wn-root/rfkit/internal/ui/navigator"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// settle runs cmd and feeds every message the model produces back into
// Update until nothing is left.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatalf("model did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
		case statusMsg, scanDoneMsg, writeDoneMsg, previewLoadedMsg, submitNameMsg, startEditMsg:
			updated, c := m.Update(msg)
			m = updated.(Model)
			queue = append(queue, c)
		}
	}
	return m
}

func start(t *testing.T, cfg Config) Model {
	t.Helper()
	m := New(cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	return settle(t, m, m.Init())
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, cmd := m.Update(keyMsg(k))
		m = settle(t, updated.(Model), cmd)
	}
	return m
}

func workspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Library", "locators.py"), "LOGIN = 'id:login'\n")
	if err := os.MkdirAll(filepath.Join(root, "Tests"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return root
}

func createConfig(root, name string) Config {
	return Config{
		Mode:      ModeCreate,
		Workspace: root,
		Dir:       filepath.Join(root, "Tests"),
		Template:  "test",
		Name:      name,
		Registry:  session.NewRegistry(),
	}
}

func TestCreateWithoutCandidatesWritesEmptySettings(t *testing.T) {
	root := t.TempDir()
	cfg := createConfig(root, "smoke")
	cfg.Scan = func(string, string) ([]imports.DiscoveredFile, error) { return nil, nil }

	m := start(t, cfg)

	out := m.Outcome()
	if out.Action != "created" {
		t.Fatalf("expected created, got %q (err %v)", out.Action, out.Err)
	}
	got := readFile(t, filepath.Join(root, "Tests", "smoke.robot"))
	want := "*** Settings ***\n\n\n*** Test Cases ***\n"
	if got != want {
		t.Fatalf("unexpected content:\n%q", got)
	}
}

func TestCreateScanErrorStillWrites(t *testing.T) {
	root := t.TempDir()
	cfg := createConfig(root, "smoke")
	cfg.Scan = func(string, string) ([]imports.DiscoveredFile, error) {
		return nil, errdef.New(errdef.CodeScan, "permission denied")
	}

	m := start(t, cfg)
	if m.Outcome().Action != "created" {
		t.Fatalf("expected created, got %+v", m.Outcome())
	}
	if m.statusMessage.level != statusWarn {
		t.Fatalf("expected scan warning, got %+v", m.statusMessage)
	}
}

func TestPickerTogglesAndConfirms(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	if m.screen != screenStyle {
		t.Fatalf("expected path style prompt, got screen %d", m.screen)
	}

	m = press(t, m, "enter")
	if m.screen != screenPicker {
		t.Fatalf("expected picker, got screen %d", m.screen)
	}
	key := imports.Key{Path: filepath.Join(root, "Library", "locators.py"), Kind: imports.KindLibrary}
	if !m.tree.SelectByID(key.String()) {
		t.Fatalf("leaf %s not visible", key)
	}
	m = press(t, m, " ")
	if !m.sess.Checked(key) {
		t.Fatalf("expected %s to be checked", key)
	}
	m = press(t, m, "enter")

	if m.Outcome().Action != "created" {
		t.Fatalf("expected created, got %+v", m.Outcome())
	}
	got := readFile(t, filepath.Join(root, "Tests", "login.robot"))
	if !strings.Contains(got, "Library    ../Library/locators.py\n") {
		t.Fatalf("missing library import:\n%s", got)
	}
	if !strings.HasSuffix(got, "*** Test Cases ***\n") {
		t.Fatalf("missing test cases section:\n%s", got)
	}
}

func TestStyleSwitchRewritesPaths(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter", "tab")
	if m.sess.Style() != imports.StyleWorkspace {
		t.Fatalf("expected workspace style, got %s", m.sess.Style())
	}
	key := imports.Key{Path: filepath.Join(root, "Library", "locators.py"), Kind: imports.KindLibrary}
	n := m.tree.Find(key.String())
	if n == nil || n.Target != "Library/locators.py" {
		t.Fatalf("expected workspace path on node, got %+v", n)
	}
	m.tree.SelectByID(key.String())
	m = press(t, m, " ", "enter")
	got := readFile(t, filepath.Join(root, "Tests", "login.robot"))
	if !strings.Contains(got, "Library    Library/locators.py\n") {
		t.Fatalf("expected workspace relative path:\n%s", got)
	}
}

func TestCancelLeavesNoFile(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter", "esc")

	if m.Outcome().Action != "cancelled" {
		t.Fatalf("expected cancelled, got %+v", m.Outcome())
	}
	if _, err := os.Stat(filepath.Join(root, "Tests", "login.robot")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file should not exist, stat err %v", err)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestSkipImportsStillWrites(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "esc")

	if m.Outcome().Action != "created" {
		t.Fatalf("expected created, got %+v", m.Outcome())
	}
	got := readFile(t, filepath.Join(root, "Tests", "login.robot"))
	if got != "*** Settings ***\n\n\n*** Test Cases ***\n" {
		t.Fatalf("unexpected content:\n%q", got)
	}
}

func TestInvalidNameStaysOnPrompt(t *testing.T) {
	root := t.TempDir()
	m := start(t, createConfig(root, "my file"))
	if m.screen != screenName {
		t.Fatalf("expected name prompt, got screen %d", m.screen)
	}
	if m.nameError == "" {
		t.Fatalf("expected inline validation error")
	}
	if m.showErrorModal {
		t.Fatalf("validation errors should not open the modal")
	}
}

func TestOverwriteDeclinedKeepsFile(t *testing.T) {
	root := workspace(t)
	path := filepath.Join(root, "Tests", "login.robot")
	writeFile(t, path, "original\n")

	m := start(t, createConfig(root, "login"))
	if m.screen != screenOverwrite {
		t.Fatalf("expected overwrite prompt, got screen %d", m.screen)
	}
	m = press(t, m, "n")
	if m.Outcome().Action != "declined" {
		t.Fatalf("expected declined, got %+v", m.Outcome())
	}
	if got := readFile(t, path); got != "original\n" {
		t.Fatalf("file changed: %q", got)
	}
}

func TestOverwriteAcceptedReplacesFile(t *testing.T) {
	root := workspace(t)
	path := filepath.Join(root, "Tests", "login.robot")
	writeFile(t, path, "original\n")

	m := start(t, createConfig(root, "login"))
	m = press(t, m, "y", "esc")
	if m.Outcome().Action != "overwritten" {
		t.Fatalf("expected overwritten, got %+v", m.Outcome())
	}
	if got := readFile(t, path); got != "*** Settings ***\n\n\n*** Test Cases ***\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestInspectLocksAndReturnUnlocks(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter")

	key := imports.Key{Path: filepath.Join(root, "Library", "locators.py"), Kind: imports.KindLibrary}
	m.tree.SelectByID(key.String())
	m = press(t, m, "v")
	if !m.sess.Locked() {
		t.Fatalf("expected locked session")
	}
	if !strings.Contains(m.previewInfo, "locators.py") {
		t.Fatalf("expected preview header, got %q", m.previewInfo)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "LOCKED") {
		t.Fatalf("expected lock badge in view:\n%s", view)
	}

	m = press(t, m, "b")
	if m.sess.Locked() {
		t.Fatalf("expected unlocked session after return")
	}
	if m.sess.State() != session.Browsing {
		t.Fatalf("expected browsing, got %s", m.sess.State())
	}
}

func TestEscWhileLockedReturnsInsteadOfCancelling(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter")
	key := imports.Key{Path: filepath.Join(root, "Library", "locators.py"), Kind: imports.KindLibrary}
	m.tree.SelectByID(key.String())
	m = press(t, m, "v", "esc")
	if m.quitting {
		t.Fatalf("esc while locked should not cancel")
	}
	if m.sess.Locked() {
		t.Fatalf("expected unlocked session")
	}
}

func TestFilterKeepsCheckedState(t *testing.T) {
	root := workspace(t)
	writeFile(t, filepath.Join(root, "Resources", "common.resource"), "*** Keywords ***\n")
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter")

	res := imports.Key{Path: filepath.Join(root, "Resources", "common.resource"), Kind: imports.KindResource}
	m.tree.SelectByID(res.String())
	m = press(t, m, " ")

	m = press(t, m, "/")
	for _, r := range "loc" {
		updated, _ := m.Update(keyMsg(string(r)))
		m = updated.(Model)
	}
	m = press(t, m, "enter")
	if m.sess.Filter() != "loc" {
		t.Fatalf("expected filter loc, got %q", m.sess.Filter())
	}
	if m.tree.Find(res.String()) == nil || m.tree.SelectByID(res.String()) {
		t.Fatalf("filtered leaf should be hidden from rows")
	}
	if !m.sess.Checked(res) {
		t.Fatalf("filtering must not uncheck hidden leaves")
	}
	var folders []string
	for _, row := range m.tree.Rows() {
		if row.Node.Kind == navigator.KindFolder {
			folders = append(folders, row.Node.Title)
		}
	}
	if strings.Join(folders, ",") != "Library" {
		t.Fatalf("expected only the Library folder while filtering, got %v", folders)
	}

	m = press(t, m, "/", "esc")
	if m.sess.Filter() != "" {
		t.Fatalf("expected cleared filter, got %q", m.sess.Filter())
	}
}

func TestYankCopiesPendingBlock(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter")
	var copied string
	m.clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	m = press(t, m, "y")
	if !strings.HasPrefix(copied, "*** Settings ***") {
		t.Fatalf("unexpected clipboard content %q", copied)
	}
	if m.statusMessage.level != statusSuccess {
		t.Fatalf("expected success status, got %+v", m.statusMessage)
	}
}

func TestYankFallsBackToRegister(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter")
	m.clipboardWrite = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, "y")
	if m.statusMessage.level != statusWarn {
		t.Fatalf("expected warning, got %+v", m.statusMessage)
	}
	if !strings.HasPrefix(m.register, "*** Settings ***") {
		t.Fatalf("expected register to hold block, got %q", m.register)
	}
}

func TestBusyTargetShowsErrorAndQuits(t *testing.T) {
	root := workspace(t)
	cfg := createConfig(root, "login")
	target := filepath.Join(root, "Tests", "login.robot")
	if err := cfg.Registry.Open(target, "other"); err != nil {
		t.Fatalf("open: %v", err)
	}

	m := start(t, cfg)
	if !m.showErrorModal {
		t.Fatalf("expected error modal")
	}
	if !errdef.Is(m.Outcome().Err, errdef.CodeBusy) {
		t.Fatalf("expected busy error, got %v", m.Outcome().Err)
	}
	m = press(t, m, "enter")
	if m.Outcome().Action != "failed" {
		t.Fatalf("expected failed, got %+v", m.Outcome())
	}
}

func TestEditModePreservesUnresolvedImports(t *testing.T) {
	root := workspace(t)
	target := filepath.Join(root, "Tests", "login.robot")
	existing := "*** Settings ***\nResource    ../common.resource\n\n*** Test Cases ***\nLogin\n    Log    hi\n"
	writeFile(t, target, existing)

	m := start(t, Config{
		Mode:      ModeEdit,
		Workspace: root,
		Target:    target,
		Existing:  existing,
		Registry:  session.NewRegistry(),
	})
	m = press(t, m, "enter")
	key := imports.Key{Path: filepath.Join(root, "Library", "locators.py"), Kind: imports.KindLibrary}
	m.tree.SelectByID(key.String())
	m = press(t, m, " ", "enter")

	if m.Outcome().Action != "updated" {
		t.Fatalf("expected updated, got %+v", m.Outcome())
	}
	got := readFile(t, target)
	for _, want := range []string{
		"Library    ../Library/locators.py\n",
		"Resource    ../common.resource\n",
		"*** Test Cases ***\nLogin\n    Log    hi\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
	if m.Outcome().Diff == "" {
		t.Fatalf("expected a diff")
	}
}

func TestEditModeConfirmWithoutChanges(t *testing.T) {
	root := workspace(t)
	target := filepath.Join(root, "Tests", "login.robot")
	existing := "*** Settings ***\nResource    ../common.resource\n\n*** Test Cases ***\n"
	writeFile(t, target, existing)

	m := start(t, Config{
		Mode:      ModeEdit,
		Workspace: root,
		Target:    target,
		Existing:  existing,
	})
	m = press(t, m, "enter", "enter")
	if m.Outcome().Action != "unchanged" {
		t.Fatalf("expected unchanged, got %+v", m.Outcome())
	}
	if got := readFile(t, target); got != existing {
		t.Fatalf("file changed:\n%s", got)
	}
}

func TestEditModeDryRunDoesNotWrite(t *testing.T) {
	root := workspace(t)
	target := filepath.Join(root, "Tests", "login.robot")
	existing := "*** Test Cases ***\n"
	writeFile(t, target, existing)

	m := start(t, Config{
		Mode:      ModeEdit,
		Workspace: root,
		Target:    target,
		Existing:  existing,
		DryRun:    true,
	})
	m = press(t, m, "enter")
	key := imports.Key{Path: filepath.Join(root, "Library", "locators.py"), Kind: imports.KindLibrary}
	m.tree.SelectByID(key.String())
	m = press(t, m, " ", "enter")
	if got := readFile(t, target); got != existing {
		t.Fatalf("dry run wrote the file:\n%s", got)
	}
	if !strings.Contains(m.Outcome().Diff, "+Library    ../Library/locators.py") {
		t.Fatalf("expected diff to add import:\n%s", m.Outcome().Diff)
	}
}

func TestPickerViewShowsPendingBlock(t *testing.T) {
	root := workspace(t)
	m := start(t, createConfig(root, "login"))
	m = press(t, m, "enter")
	key := imports.Key{Path: filepath.Join(root, "Library", "locators.py"), Kind: imports.KindLibrary}
	m.tree.SelectByID(key.String())
	m = press(t, m, " ")

	view := ansi.Strip(m.View())
	for _, want := range []string{"Imports for login.robot", "[x]", "Library    ../Library/locators.py"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
