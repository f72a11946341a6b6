package main

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
	"github.com/unkn0wn-root/rfkit/internal/scaffold"
	"github.com/unkn0wn-root/rfkit/internal/session"
	"github.com/unkn0wn-root/rfkit/internal/ui"
)

type newOpts struct {
	name      string
	force     bool
	dryRun    bool
	noImports bool
	noOpen    bool
}

func newNewCmd(g *globals) *cobra.Command {
	o := &newOpts{}
	cmd := &cobra.Command{
		Use:   "new <template> [dir]",
		Short: "Create a file from a template and pick its imports",
		Long: heredoc.Doc(`
			Create a Robot Framework file from a template. After the name is
			accepted the workspace is scanned for .py and .resource files and a
			picker lets you choose the Library, Resource and Variables imports
			written into the Settings section.

			Templates: test, resource, variables, locator.

			Without a terminal, --name is required and the file is written
			without imports.
		`),
		Example: heredoc.Doc(`
			rfkit new test Tests
			rfkit new resource Resources --name common
			rfkit new locator Library --name login_page --dry-run
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 2 {
				dir = args[1]
			}
			return runNew(cmd, g, o, args[0], dir)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.name, "name", "n", "", "file name without extension")
	f.BoolVarP(&o.force, "force", "f", false, "overwrite an existing file without asking")
	f.BoolVar(&o.dryRun, "dry-run", false, "show what would be written")
	f.BoolVar(&o.noImports, "no-imports", false, "skip the import picker")
	f.BoolVar(&o.noOpen, "no-open", false, "do not open the file in the editor afterwards")
	f.String("path-style", "relative", "import paths relative to the new file (relative) or the workspace root (workspace)")
	f.String("editor", "", "editor command used to open files")
	f.StringSlice("exclude", nil, "extra directory names skipped while scanning")
	return cmd
}

// runNew creates a file in dir, or in the workspace root when dir is empty.
func runNew(cmd *cobra.Command, g *globals, o *newOpts, template, dir string) error {
	start := scaffold.DefaultDir
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "resolve %s", dir)
		}
		if ok, err := isDir(absDir); err == nil && !ok {
			absDir = filepath.Dir(absDir)
		}
		dir = absDir
		start = nearestExisting(absDir)
	}
	e, err := g.setup(cmd, start)
	if err != nil {
		return err
	}
	defer e.Close()
	absDir := dir
	if absDir == "" {
		absDir = e.root
	}

	sc := e.scaffold()
	opt := scaffold.Opt{
		Dir:      absDir,
		Name:     o.name,
		Template: template,
		Force:    o.force,
		DryRun:   o.dryRun,
		Out:      cmd.OutOrStdout(),
	}
	if _, ok := sc.Templates().Find(template); !ok {
		_, err := sc.Plan(opt)
		return err
	}

	if !interactive() {
		if o.name == "" {
			return errdef.New(errdef.CodeValidation, "--name is required without a terminal")
		}
		op, err := sc.Create(opt, nil)
		if err != nil {
			return err
		}
		e.log.Info("created without picker", "path", op.Path, "dry_run", o.dryRun)
		if o.dryRun {
			fmt.Fprint(cmd.OutOrStdout(), op.Data)
		}
		return nil
	}

	id := uuid.NewString()
	e.log.Info("new", "session", id, "template", template, "dir", absDir)
	model := ui.New(ui.Config{
		Mode:      ui.ModeCreate,
		Workspace: e.root,
		Dir:       absDir,
		Template:  template,
		Name:      o.name,
		Style:     e.settings.Style(),
		NoImports: o.noImports,
		Force:     o.force,
		DryRun:    o.dryRun,
		Exclude:   e.settings.Exclude,
		SessionID: id,
		Theme:     &e.theme,
		Profile:   e.profile,
		Logger:    e.log,
		Registry:  session.NewRegistry(),
		Scaffold:  sc,
		Opener:    ui.NewOpener(e.settings.EditorCommand()),
	})
	out, err := runProgram(model)
	if err != nil {
		return err
	}
	if err := report(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	if e.settings.OpenAfterCreate && !o.noOpen && !out.DryRun && created(out) {
		if err := ui.NewOpener(e.settings.EditorCommand()).Open(out.Path); err != nil {
			e.log.Warn("open after create", "err", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.YellowString("warning:"), err)
		}
	}
	return nil
}

func runProgram(model ui.Model) (ui.Outcome, error) {
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return ui.Outcome{}, errdef.Wrap(errdef.CodeUI, err, "run picker")
	}
	m, ok := final.(ui.Model)
	if !ok {
		return ui.Outcome{}, errdef.New(errdef.CodeUI, "unexpected model %T", final)
	}
	return m.Outcome(), nil
}

func created(out ui.Outcome) bool {
	return out.Err == nil && (out.Action == "created" || out.Action == "overwritten")
}

// nearestExisting walks up from dir to a directory that exists, so a new
// file can be planned in a directory that is created on write.
func nearestExisting(dir string) string {
	for d := dir; ; {
		if ok, _ := isDir(d); ok {
			return d
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir
		}
		d = parent
	}
}
