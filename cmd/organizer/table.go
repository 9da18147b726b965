package main

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/YellowKidokc/File-Organization/internal/classify"
	"github.com/YellowKidokc/File-Organization/internal/plan"
)

// renderPlanTable renders the plan as a rounded table. Paths are shown
// relative to the root to keep rows readable; the size column is humanized.
func renderPlanTable(p *plan.Plan) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Source", "Destination", "Category", "Size"})

	for _, action := range p.Actions {
		tw.AppendRow(table.Row{
			relativeTo(p.Root, action.Source),
			relativeTo(p.Root, action.Destination),
			action.Category,
			humanize.IBytes(uint64(action.Size)),
		})
	}
	tw.AppendFooter(table.Row{"", "", "Total", humanize.IBytes(uint64(p.TotalBytes()))})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

// renderCategoriesTable lists every category with the extensions it claims.
func renderCategoriesTable(categories []classify.Category) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Extensions"})

	for _, category := range categories {
		tw.AppendRow(table.Row{category.Label, strings.Join(category.Extensions, " ")})
	}
	tw.AppendRow(table.Row{classify.FallbackLabel, "everything else"})

	return tw.Render()
}

// relativeTo shortens path for display when it sits under root; otherwise the
// absolute path is returned unchanged.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
