package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "rfkit",
		Short: "Scaffold Robot Framework files and pick their imports",
		Long: heredoc.Doc(`
			rfkit creates Robot Framework suites, resource, variables and locator
			files, and offers an interactive picker for their Library, Resource
			and Variables imports.

			Commands:
			  new        create a file from a template and choose its imports
			  imports    edit the imports of an existing file
			  scan       list import candidates in the workspace
			  templates  list the available templates
			  config     print the effective configuration
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.workspace, "workspace", "w", "", "workspace root (default: nearest directory with .git or rfkit.toml)")
	pf.StringVar(&g.configFile, "config", "", "read settings from this file only")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("theme", "default", "colour theme: default or mono")
	pf.BoolVar(&g.noColor, "no-color", false, "disable colours")

	root.AddCommand(
		newNewCmd(g),
		newImportsCmd(g),
		newScanCmd(g),
		newTemplatesCmd(g),
		newConfigCmd(g),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rfkit %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", date)
		},
	}
}
