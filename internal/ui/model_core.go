package ui

import (
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/rfkit/internal/filesvc"
	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/logging"
	"github.com/unkn0wn-root/rfkit/internal/scaffold"
	"github.com/unkn0wn-root/rfkit/internal/session"
	"github.com/unkn0wn-root/rfkit/internal/theme"
	"github.com/unkn0wn-root/rfkit/internal/ui/navigator"
)

var _ tea.Model = (*Model)(nil)

// Mode selects between scaffolding a new file and editing the imports of an
// existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

type screen int

const (
	screenName screen = iota
	screenOverwrite
	screenScanning
	screenStyle
	screenPicker
	screenWriting
	screenDone
)

// ScanFunc lists import candidates under root for a file in targetDir.
type ScanFunc func(root, targetDir string) ([]imports.DiscoveredFile, error)

type Config struct {
	Mode      Mode
	Workspace string
	Dir       string // ModeCreate: destination directory
	Template  string // ModeCreate: template name
	Name      string // ModeCreate: pre-filled file name
	Target    string // ModeEdit: file whose imports are edited
	Existing  string // ModeEdit: current content of Target
	Style     imports.PathStyle
	NoImports bool
	Force     bool
	DryRun    bool
	Exclude   []string
	SessionID string

	Theme    *theme.Theme
	Profile  termenv.Profile
	Logger   *slog.Logger
	Registry *session.Registry
	Scaffold *scaffold.Command
	Scan     ScanFunc
	Opener   *Opener
}

// Outcome summarises what the run did once the program exits.
type Outcome struct {
	Action  string // created, overwritten, updated, unchanged, cancelled, declined, failed
	Path    string
	Imports int
	Diff    string
	Content string // data written, or that would be written on a dry run
	DryRun  bool
	Err     error
}

type Model struct {
	cfg      Config
	theme    theme.Theme
	log      *slog.Logger
	keys     keyMap
	help     help.Model
	scaffold *scaffold.Command
	scan     ScanFunc
	opener   *Opener

	screen   screen
	op       scaffold.Op
	sess     *session.Session
	outcome  Outcome
	quitting bool

	nameInput   textinput.Model
	nameError   string
	filterInput textinput.Model
	filtering   bool
	styleList   list.Model
	tree        *navigator.Model[imports.Node]
	nodes       []*pickNode
	preview     viewport.Model
	previewPath string
	previewInfo string

	statusMessage     statusMsg
	showErrorModal    bool
	errorModalMessage string
	quitAfterModal    bool
	showHelp          bool
	register          string
	clipboardWrite    func(string) error

	width  int
	height int
	ready  bool
}

func New(cfg Config) Model {
	th := theme.DefaultTheme()
	if cfg.Theme != nil {
		th = *cfg.Theme
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cmd := cfg.Scaffold
	if cmd == nil {
		cmd = scaffold.New()
	}
	scan := cfg.Scan
	if scan == nil {
		exclude := cfg.Exclude
		scan = func(root, targetDir string) ([]imports.DiscoveredFile, error) {
			return filesvc.ListCandidates(root, targetDir, filesvc.Options{Exclude: exclude})
		}
	}
	if cfg.Workspace == "" {
		cfg.Workspace = cfg.Dir
		if cfg.Mode == ModeEdit {
			cfg.Workspace = filepath.Dir(cfg.Target)
		}
	}
	if cfg.Dir == "" {
		cfg.Dir = cfg.Workspace
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "login_tests"
	nameInput.CharLimit = 0
	nameInput.Prompt = ""
	nameInput.SetValue(cfg.Name)
	nameInput.Focus()

	filterInput := textinput.New()
	filterInput.Placeholder = "filename"
	filterInput.CharLimit = 0
	filterInput.Prompt = "/"
	filterInput.Blur()

	h := help.New()
	h.ShortSeparator = "  "

	m := Model{
		cfg:         cfg,
		theme:       th,
		log:         logger,
		keys:        defaultKeyMap(),
		help:        h,
		scaffold:    cmd,
		scan:        scan,
		opener:      cfg.Opener,
		nameInput:   nameInput,
		filterInput: filterInput,
		styleList:   newStyleList(th, cfg.Style),
		preview:     viewport.New(0, 0),
		outcome:     Outcome{DryRun: cfg.DryRun},
	}
	if cfg.Mode == ModeEdit {
		m.screen = screenScanning
		m.outcome.Path = cfg.Target
	}
	return m
}

// Outcome reports the result after the program has exited.
func (m Model) Outcome() Outcome {
	return m.outcome
}

type startEditMsg struct{}

type submitNameMsg struct{}

func (m *Model) finish(action string) tea.Cmd {
	m.outcome.Action = action
	m.screen = screenDone
	m.quitting = true
	return tea.Quit
}
