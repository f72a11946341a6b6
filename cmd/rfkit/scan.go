package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/rfkit/internal/config"
	"github.com/unkn0wn-root/rfkit/internal/filesvc"
	"github.com/unkn0wn-root/rfkit/internal/imports"
)

func newScanCmd(g *globals) *cobra.Command {
	var shallow bool
	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List import candidates in the workspace",
		Long: heredoc.Doc(`
			Walk the workspace and list the files the picker offers: .py files
			as Library and Variables candidates, .resource files as Resource
			candidates. Dependency and tool directories are skipped.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "."
			if len(args) == 1 {
				start = args[0]
			}
			return runScan(cmd, g, start, shallow)
		},
	}
	cmd.Flags().BoolVar(&shallow, "shallow", false, "list only the top directory")
	cmd.Flags().StringSlice("exclude", nil, "extra directory names to skip")
	return cmd
}

func runScan(cmd *cobra.Command, g *globals, start string, shallow bool) error {
	e, err := g.setup(cmd, start)
	if err != nil {
		return err
	}
	defer e.Close()

	root := e.root
	if g.workspace == "" && start != "." {
		if abs, err := filepath.Abs(start); err == nil {
			root = abs
		}
	}
	var skipped int
	entries, err := filesvc.ListFiles(root, filesvc.Options{
		Exclude: e.settings.Exclude,
		Shallow: shallow,
		OnError: func(path string, err error) {
			skipped++
			e.log.Warn("scan skipped directory", "path", path, "err", err)
		},
	})
	if err != nil {
		return err
	}
	e.log.Info("scan", "root", root, "files", len(entries), "skipped", skipped)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendHeader(table.Row{"Path", "Imports as", "Size"})
	var total int64
	for _, en := range entries {
		tbl.AppendRow(table.Row{en.Name, kindList(en.Class), humanize.Bytes(uint64(en.Size))})
		total += en.Size
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d files", len(entries)), "", humanize.Bytes(uint64(total))})
	tbl.Render()
	if skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d unreadable directories skipped (see %s)\n", skipped, config.LogPath())
	}
	return nil
}

func kindList(c imports.Class) string {
	kinds := c.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.Keyword()
	}
	return strings.Join(out, ", ")
}
