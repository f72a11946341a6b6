package main

import (
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
	"github.com/unkn0wn-root/rfkit/internal/session"
	"github.com/unkn0wn-root/rfkit/internal/ui"
)

func newImportsCmd(g *globals) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "imports <file>",
		Short: "Edit the imports of an existing file",
		Long: heredoc.Doc(`
			Open the import picker for an existing .robot or .resource file.
			Imports already declared in its Settings section start checked;
			declarations that do not resolve to a workspace file are kept as
			they are.
		`),
		Example: heredoc.Doc(`
			rfkit imports Tests/login.robot
			rfkit imports Tests/login.robot --dry-run
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImports(cmd, g, args[0], dryRun)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&dryRun, "dry-run", false, "print the diff instead of writing")
	f.String("path-style", "relative", "import paths relative to the file (relative) or the workspace root (workspace)")
	f.String("editor", "", "editor command used to open files")
	f.StringSlice("exclude", nil, "extra directory names skipped while scanning")
	return cmd
}

func runImports(cmd *cobra.Command, g *globals, file string, dryRun bool) error {
	target, err := filepath.Abs(file)
	if err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "resolve %s", file)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "read %s", file)
	}
	if !interactive() {
		return errdef.New(errdef.CodeUI, "imports needs an interactive terminal")
	}
	e, err := g.setup(cmd, target)
	if err != nil {
		return err
	}
	defer e.Close()

	id := uuid.NewString()
	e.log.Info("imports", "session", id, "target", target)
	out, err := runProgram(ui.New(ui.Config{
		Mode:      ui.ModeEdit,
		Workspace: e.root,
		Target:    target,
		Existing:  string(data),
		Style:     e.settings.Style(),
		DryRun:    dryRun,
		Exclude:   e.settings.Exclude,
		SessionID: id,
		Theme:     &e.theme,
		Profile:   e.profile,
		Logger:    e.log,
		Registry:  session.NewRegistry(),
		Scaffold:  e.scaffold(),
		Opener:    ui.NewOpener(e.settings.EditorCommand()),
	}))
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), out)
}
