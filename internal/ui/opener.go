package ui

import (
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
)

// Opener launches the user's editor on a file. An empty editor command
// turns every call into a no-op.
type Opener struct {
	Editor string
}

func NewOpener(editor string) *Opener {
	return &Opener{Editor: strings.TrimSpace(editor)}
}

func (o *Opener) Available() bool {
	return o != nil && o.Editor != ""
}

// Command builds the editor invocation for path. The editor string may
// carry arguments, e.g. "code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, bool) {
	if !o.Available() {
		return nil, false
	}
	fields := strings.Fields(o.Editor)
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...), true
}

// Open runs the editor in the foreground, sharing the terminal.
func (o *Opener) Open(path string) error {
	cmd, ok := o.Command(path)
	if !ok {
		return nil
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errdef.Wrap(errdef.CodeUI, err, "open %s in %s", path, o.Editor)
	}
	return nil
}

// Exec suspends the program while the editor runs.
func (o *Opener) Exec(path string) tea.Cmd {
	cmd, ok := o.Command(path)
	if !ok {
		return func() tea.Msg {
			return statusMsg{text: "No editor configured (set $EDITOR)", level: statusWarn}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorClosedMsg{path: path, err: err}
	})
}
