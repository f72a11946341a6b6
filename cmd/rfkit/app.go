package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/unkn0wn-root/rfkit/internal/config"
	"github.com/unkn0wn-root/rfkit/internal/logging"
	"github.com/unkn0wn-root/rfkit/internal/scaffold"
	"github.com/unkn0wn-root/rfkit/internal/theme"
)

// globals hold the persistent flags shared by every sub-command.
type globals struct {
	workspace  string
	configFile string
	noColor    bool
}

// flagKeys maps setting keys to flag names. Only flags the user set are
// bound so file and env values are not shadowed by flag defaults.
var flagKeys = map[string]string{
	"path_style": "path-style",
	"log_level":  "log-level",
	"theme":      "theme",
	"editor":     "editor",
	"exclude":    "exclude",
}

// env is what a command needs after flags and settings are resolved.
type env struct {
	root     string
	settings config.Settings
	log      *slog.Logger
	profile  termenv.Profile
	theme    theme.Theme
	closer   io.Closer
}

func (e *env) Close() {
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

// setup resolves the workspace from start, loads settings and opens the
// log file.
func (g *globals) setup(cmd *cobra.Command, start string) (*env, error) {
	var (
		root string
		err  error
	)
	if g.workspace != "" {
		root, err = config.CheckWorkspace(g.workspace)
	} else {
		root, err = config.FindWorkspace(start)
	}
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(config.Options{
		Workspace: root,
		File:      g.configFile,
		Flags:     changedFlags(cmd.Flags()),
	})
	if err != nil {
		return nil, err
	}

	e := &env{root: root, settings: settings}
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Printf("log level: %v", err)
	}
	logger, closer, err := logging.Open(config.LogPath(), level)
	if err != nil {
		log.Printf("log file unavailable: %v", err)
		logger = logging.Discard()
	}
	e.log = logger.With("cmd", cmd.Name())
	e.closer = closer

	e.profile = termenv.EnvColorProfile()
	if g.noColor || settings.Theme == config.ThemeMono {
		e.profile = termenv.Ascii
	}
	if g.noColor {
		color.NoColor = true
	}
	lipgloss.SetColorProfile(e.profile)
	e.theme = theme.ByName(settings.Theme)

	e.log.Debug("settings loaded", "workspace", root, "sources", settings.Sources)
	return e, nil
}

func changedFlags(fs *pflag.FlagSet) map[string]*pflag.Flag {
	out := make(map[string]*pflag.Flag)
	for key, name := range flagKeys {
		if f := fs.Lookup(name); f != nil && f.Changed {
			out[key] = f
		}
	}
	return out
}

func (e *env) scaffold() *scaffold.Command {
	return scaffold.New().WithTemplates(scaffold.BuiltinTemplates{Ext: e.settings.Extensions.Map()})
}

var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
