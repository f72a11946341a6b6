package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/rfkit/internal/scaffold"
)

func newTemplatesCmd(g *globals) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.setup(cmd, ".")
			if err != nil {
				return err
			}
			defer e.Close()
			sc := e.scaffold()
			if plain {
				return sc.ListTemplates(cmd.OutOrStdout())
			}
			renderTemplates(cmd, sc.Templates())
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print one template per line without a table")
	return cmd
}

func renderTemplates(cmd *cobra.Command, ts scaffold.TemplateStore) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendHeader(table.Row{"Template", "Extension", "Imports", "Description"})
	for _, t := range ts.List() {
		imp := "no"
		if t.Imports() {
			imp = "yes"
		}
		tbl.AppendRow(table.Row{t.Name, t.Ext, imp, t.Description})
	}
	tbl.Render()
}
