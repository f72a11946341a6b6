package main

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/rfkit/internal/config"
)

func newConfigCmd(g *globals) *cobra.Command {
	var (
		format  string
		sources bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: heredoc.Docf(`
			Print the settings in effect after merging defaults, the user file
			in %s, the workspace rfkit.toml or rfkit.yaml, RFKIT_* environment
			variables and flags.
		`, config.Dir()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.setup(cmd, ".")
			if err != nil {
				return err
			}
			defer e.Close()
			if sources {
				faint := color.New(color.Faint).SprintFunc()
				if len(e.settings.Sources) == 0 {
					fmt.Fprintln(cmd.ErrOrStderr(), faint("# no config files, defaults only"))
				}
				for _, s := range e.settings.Sources {
					fmt.Fprintln(cmd.ErrOrStderr(), faint("# "+s))
				}
			}
			return config.Dump(cmd.OutOrStdout(), e.settings, strings.ToLower(format))
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	cmd.Flags().BoolVar(&sources, "sources", false, "list the merged config files on stderr")
	cmd.Flags().String("path-style", "relative", "override path_style")
	cmd.Flags().String("editor", "", "override editor")
	return cmd
}
