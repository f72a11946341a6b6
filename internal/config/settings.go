package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/logging"
)

const (
	envPrefix    = "RFKIT"
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

var configExts = []string{"toml", "yaml", "yml"}

// Settings are the user preferences in effect for one invocation.
type Settings struct {
	PathStyle       string     `mapstructure:"path_style" toml:"path_style" yaml:"path_style"`
	Extensions      Extensions `mapstructure:"extensions" toml:"extensions" yaml:"extensions"`
	Exclude         []string   `mapstructure:"exclude" toml:"exclude" yaml:"exclude"`
	OpenAfterCreate bool       `mapstructure:"open_after_create" toml:"open_after_create" yaml:"open_after_create"`
	Editor          string     `mapstructure:"editor" toml:"editor" yaml:"editor"`
	LogLevel        string     `mapstructure:"log_level" toml:"log_level" yaml:"log_level"`
	Theme           string     `mapstructure:"theme" toml:"theme" yaml:"theme"`

	// Sources lists the config files that were merged, lowest precedence
	// first.
	Sources []string `mapstructure:"-" toml:"-" yaml:"-"`
}

// Extensions override the file extension per template.
type Extensions struct {
	Test      string `mapstructure:"test" toml:"test" yaml:"test"`
	Resource  string `mapstructure:"resource" toml:"resource" yaml:"resource"`
	Variables string `mapstructure:"variables" toml:"variables" yaml:"variables"`
	Locator   string `mapstructure:"locator" toml:"locator" yaml:"locator"`
}

func (e Extensions) Map() map[string]string {
	return map[string]string{
		"test":      e.Test,
		"resource":  e.Resource,
		"variables": e.Variables,
		"locator":   e.Locator,
	}
}

func (s Settings) Style() imports.PathStyle {
	st, err := imports.ParsePathStyle(s.PathStyle)
	if err != nil {
		return imports.StyleRelative
	}
	return st
}

// Options control where Load looks for settings.
type Options struct {
	// GlobalDir holds the user config file; Dir() when empty.
	GlobalDir string
	Workspace string
	// File replaces the global and workspace lookup when set.
	File string
	// Flags maps setting keys to command line flags bound over everything
	// else.
	Flags map[string]*pflag.Flag
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("path_style", "relative")
	v.SetDefault("extensions.test", ".robot")
	v.SetDefault("extensions.resource", ".resource")
	v.SetDefault("extensions.variables", ".resource")
	v.SetDefault("extensions.locator", ".py")
	v.SetDefault("exclude", []string{})
	v.SetDefault("open_after_create", true)
	v.SetDefault("editor", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("theme", ThemeDefault)
}

// Load layers defaults, the user config file, the workspace config file,
// RFKIT_* environment variables and bound flags.
func Load(opts Options) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var sources []string
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errdef.Wrap(errdef.CodeConfig, err, "read %s", opts.File)
		}
		sources = append(sources, opts.File)
	} else {
		global := opts.GlobalDir
		if global == "" {
			global = Dir()
		}
		for _, dir := range []string{global, opts.Workspace} {
			if dir == "" {
				continue
			}
			path, err := merge(v, dir)
			if err != nil {
				return Settings{}, err
			}
			if path != "" {
				sources = append(sources, path)
			}
		}
	}

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return Settings{}, errdef.Wrap(errdef.CodeConfig, err, "bind flag %s", key)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errdef.Wrap(errdef.CodeConfig, err, "decode settings")
	}
	s.Sources = sources
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// merge reads the first rfkit.<ext> file in dir into v.
func merge(v *viper.Viper, dir string) (string, error) {
	for _, ext := range configExts {
		path := filepath.Join(dir, appName+"."+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return "", errdef.Wrap(errdef.CodeConfig, err, "read %s", path)
		}
		return path, nil
	}
	return "", nil
}

func (s Settings) Validate() error {
	if _, err := imports.ParsePathStyle(s.PathStyle); err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "path_style")
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "log_level")
	}
	switch strings.ToLower(s.Theme) {
	case ThemeDefault, ThemeMono:
	default:
		return errdef.New(errdef.CodeConfig, "theme: unknown theme %q (want %s or %s)", s.Theme, ThemeDefault, ThemeMono)
	}
	for name, ext := range s.Extensions.Map() {
		if strings.ContainsAny(ext, `/\`) {
			return errdef.New(errdef.CodeConfig, "extensions.%s: invalid extension %q", name, ext)
		}
	}
	return nil
}

// EditorCommand picks the editor used to open created files.
func (s Settings) EditorCommand() string {
	if e := strings.TrimSpace(s.Editor); e != "" {
		return e
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := strings.TrimSpace(os.Getenv(env)); e != "" {
			return e
		}
	}
	return ""
}

func (s Settings) String() string {
	return fmt.Sprintf("path_style=%s theme=%s log_level=%s", s.PathStyle, s.Theme, s.LogLevel)
}
