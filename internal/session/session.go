package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/rfkit/internal/imports"
)

var (
	ErrState      = errors.New("session: operation not allowed in current state")
	ErrNotVisible = errors.New("session: leaf is hidden by the filter")
	ErrUnknownKey = errors.New("session: no such candidate")
)

// Config describes the file an import session works on.
type Config struct {
	ID            string
	Target        string // file that receives the imports
	WorkspaceRoot string
	Existing      string // current content of Target, empty for new files
	Style         imports.PathStyle
	Logger        *slog.Logger
	Registry      *Registry
}

// Result is delivered once on Done when the session ends.
type Result struct {
	Outcome Outcome
	Style   imports.PathStyle
	// Kept are declarations from the existing file that survive, in file
	// order. Unresolved declarations are always kept.
	Kept []imports.Declaration
	// Added are newly checked selections in the order they were checked.
	Added []imports.Selection
}

// Lines returns the import lines to write, grouped by kind.
func (r Result) Lines() []string {
	return imports.Compose(r.Kept, r.Added, r.Style)
}

// Aborted reports whether the target must be left untouched.
func (r Result) Aborted() bool {
	return r.Outcome == OutcomeCancelled
}

// Session owns the picker state for one target file. It is driven from a
// single goroutine; only Done may be read elsewhere.
type Session struct {
	id        string
	target    string
	targetDir string
	root      string
	log       *slog.Logger
	reg       *Registry

	state     State
	style     imports.PathStyle
	tree      *imports.Folder
	leaves    map[imports.Key]*imports.Leaf
	checked   []imports.Key
	filter    string
	inspected string

	settings imports.Settings
	matched  map[imports.Key][]int // leaf key -> declaration indexes

	once sync.Once
	done chan Result
}

// New opens a session for cfg.Target, claiming it in the registry.
func New(cfg Config) (*Session, error) {
	target := filepath.Clean(cfg.Target)
	if cfg.Target == "" {
		return nil, fmt.Errorf("session: target is required")
	}
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}
	if cfg.Registry != nil {
		if err := cfg.Registry.Open(target, id); err != nil {
			return nil, err
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	root := cfg.WorkspaceRoot
	if root == "" {
		root = filepath.Dir(target)
	}

	s := &Session{
		id:        id,
		target:    target,
		targetDir: filepath.Dir(target),
		root:      filepath.Clean(root),
		log:       logger.With("session", id, "target", target),
		reg:       cfg.Registry,
		style:     cfg.Style,
		tree:      &imports.Folder{},
		leaves:    map[imports.Key]*imports.Leaf{},
		matched:   map[imports.Key][]int{},
		settings:  imports.ParseSettings(cfg.Existing),
		done:      make(chan Result, 1),
	}
	s.log.Debug("session opened")
	return s, nil
}

func (s *Session) ID() string                 { return s.id }
func (s *Session) Target() string             { return s.target }
func (s *Session) TargetDir() string          { return s.targetDir }
func (s *Session) WorkspaceRoot() string      { return s.root }
func (s *Session) State() State               { return s.state }
func (s *Session) Style() imports.PathStyle   { return s.style }
func (s *Session) Tree() *imports.Folder      { return s.tree }
func (s *Session) Filter() string             { return s.filter }
func (s *Session) Inspected() string          { return s.inspected }
func (s *Session) Locked() bool               { return s.state == Locked }
func (s *Session) Done() <-chan Result        { return s.done }
func (s *Session) Settings() imports.Settings { return s.settings }

// Begin moves the session into Scanning. The caller runs the scan and
// hands the outcome to Load.
func (s *Session) Begin() error {
	if s.state != Idle {
		return s.stateErr("begin")
	}
	s.setState(Scanning)
	return nil
}

// Load installs the scanned candidates. A scan error is logged and treated
// as an empty workspace. With no candidates the session ends right away.
func (s *Session) Load(files []imports.DiscoveredFile, scanErr error) error {
	if s.state != Scanning {
		return s.stateErr("load")
	}
	if scanErr != nil {
		s.log.Warn("candidate scan failed", "err", scanErr)
		files = nil
	}

	s.tree = imports.Group(files, s.targetDir, s.root)
	s.leaves = make(map[imports.Key]*imports.Leaf)
	for _, l := range s.tree.Leaves() {
		s.leaves[l.Key()] = l
	}
	s.log.Info("candidates loaded", "files", len(files), "leaves", len(s.leaves))

	if len(s.leaves) == 0 {
		s.finish(Confirmed, Result{
			Outcome: OutcomeNoCandidates,
			Style:   s.style,
			Kept:    s.settings.Declarations,
		})
		return nil
	}

	s.prepopulate()
	s.setState(AwaitingPathStyle)
	return nil
}

// Run is Begin followed by Load for callers without an event loop.
func (s *Session) Run(scan func() ([]imports.DiscoveredFile, error)) error {
	if err := s.Begin(); err != nil {
		return err
	}
	files, err := scan()
	return s.Load(files, err)
}

func (s *Session) prepopulate() {
	for i, d := range s.settings.Declarations {
		for _, p := range imports.Resolve(d, s.targetDir, s.root) {
			key := imports.Key{Path: p, Kind: d.Kind}
			if _, ok := s.leaves[key]; !ok {
				continue
			}
			if _, dup := s.matched[key]; !dup {
				s.checked = append(s.checked, key)
			}
			s.matched[key] = append(s.matched[key], i)
			break
		}
	}
	if n := len(s.matched); n > 0 {
		s.log.Debug("pre-selected existing imports", "count", n)
	}
}

// ChoosePathStyle answers the path style prompt and opens the picker.
func (s *Session) ChoosePathStyle(style imports.PathStyle) error {
	if s.state != AwaitingPathStyle {
		return s.stateErr("choose path style")
	}
	s.style = style
	s.setState(Browsing)
	return nil
}

// SetStyle changes the path style while picking.
func (s *Session) SetStyle(style imports.PathStyle) error {
	if !s.state.Picking() {
		return s.stateErr("set style")
	}
	s.style = style
	return nil
}

// SkipImports dismisses the path style prompt. The session ends without
// selections but the caller still writes the file.
func (s *Session) SkipImports() error {
	if s.state != AwaitingPathStyle {
		return s.stateErr("skip imports")
	}
	s.finish(Confirmed, Result{
		Outcome: OutcomeSkipped,
		Style:   s.style,
		Kept:    s.settings.Declarations,
	})
	return nil
}

// Toggle flips the checked state of a visible leaf and reports the new
// state.
func (s *Session) Toggle(key imports.Key) (bool, error) {
	if !s.state.Picking() {
		return false, s.stateErr("toggle")
	}
	leaf, ok := s.leaves[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if !s.Visible(leaf) {
		return false, fmt.Errorf("%w: %s", ErrNotVisible, key)
	}
	if i := s.indexOf(key); i >= 0 {
		s.checked = append(s.checked[:i], s.checked[i+1:]...)
		return false, nil
	}
	s.checked = append(s.checked, key)
	return true, nil
}

func (s *Session) indexOf(key imports.Key) int {
	for i, k := range s.checked {
		if k == key {
			return i
		}
	}
	return -1
}

func (s *Session) Checked(key imports.Key) bool {
	return s.indexOf(key) >= 0
}

// CheckedKeys returns the checked pairs in the order they were checked.
func (s *Session) CheckedKeys() []imports.Key {
	return append([]imports.Key(nil), s.checked...)
}

// SetFilter narrows the visible leaves to filenames containing q, ignoring
// case. The checked set is not touched.
func (s *Session) SetFilter(q string) {
	s.filter = strings.TrimSpace(q)
}

func (s *Session) Visible(l *imports.Leaf) bool {
	if l == nil {
		return false
	}
	if s.filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.File.Name()), strings.ToLower(s.filter))
}

// FolderVisible reports whether any leaf below f passes the filter.
func (s *Session) FolderVisible(f *imports.Folder) bool {
	for _, l := range f.Leaves() {
		if s.Visible(l) {
			return true
		}
	}
	return false
}

// Inspect opens a candidate for reading and locks the picker to the
// target.
func (s *Session) Inspect(path string) error {
	if !s.state.Picking() {
		return s.stateErr("inspect")
	}
	path = filepath.Clean(path)
	if !s.isCandidate(path) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, path)
	}
	s.inspected = path
	if s.state != Locked {
		s.setState(Locked)
	}
	return nil
}

// Focus moves attention to path. Focusing the target, or any file other
// than the one being inspected, releases the lock.
func (s *Session) Focus(path string) error {
	if !s.state.Picking() {
		return s.stateErr("focus")
	}
	if s.state != Locked {
		return nil
	}
	path = filepath.Clean(path)
	if path == s.inspected && path != s.target {
		return nil
	}
	s.unlock()
	return nil
}

// Return goes back to the target and releases the lock.
func (s *Session) Return() error {
	if !s.state.Picking() {
		return s.stateErr("return")
	}
	if s.state == Locked {
		s.unlock()
	}
	return nil
}

func (s *Session) unlock() {
	s.inspected = ""
	s.setState(Browsing)
}

func (s *Session) isCandidate(path string) bool {
	for k := range s.leaves {
		if k.Path == path {
			return true
		}
	}
	return false
}

// Pending returns the result Confirm would deliver now.
func (s *Session) Pending() Result {
	res := Result{Outcome: OutcomeConfirmed, Style: s.style}
	matchedDecl := make(map[int]imports.Key, len(s.matched))
	for k, idx := range s.matched {
		for _, i := range idx {
			matchedDecl[i] = k
		}
	}
	for i, d := range s.settings.Declarations {
		key, ok := matchedDecl[i]
		if ok && !s.Checked(key) {
			continue
		}
		res.Kept = append(res.Kept, d)
	}
	for _, k := range s.checked {
		if _, pre := s.matched[k]; pre {
			continue
		}
		res.Added = append(res.Added, s.leaves[k].Selection())
	}
	return res
}

// Preview renders the settings block the session would produce.
func (s *Session) Preview() string {
	return imports.Block(s.Pending().Lines())
}

// Confirm ends the session with the checked selections.
func (s *Session) Confirm() (Result, error) {
	if !s.state.Picking() {
		return Result{}, s.stateErr("confirm")
	}
	res := s.Pending()
	s.finish(Confirmed, res)
	return res, nil
}

// Cancel ends the session without changes to the target.
func (s *Session) Cancel() error {
	if s.state.Terminal() {
		return s.stateErr("cancel")
	}
	s.finish(Cancelled, Result{Outcome: OutcomeCancelled, Style: s.style})
	return nil
}

func (s *Session) finish(state State, res Result) {
	s.once.Do(func() {
		s.setState(state)
		s.inspected = ""
		if s.reg != nil {
			s.reg.Release(s.target, s.id)
		}
		s.log.Info("session finished",
			"outcome", res.Outcome.String(),
			"kept", len(res.Kept),
			"added", len(res.Added),
		)
		s.done <- res
		close(s.done)
	})
}

func (s *Session) setState(next State) {
	s.log.Debug("state", "from", s.state.String(), "to", next.String())
	s.state = next
}

func (s *Session) stateErr(op string) error {
	return fmt.Errorf("%w: %s while %s", ErrState, op, s.state)
}
