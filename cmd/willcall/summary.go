package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"willcall/internal"
)

func renderSummary(sources []internal.SourceSummary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Source", "File", "Lines", "Rows", "Rejected"})

	total := 0
	for _, s := range sources {
		if s.Skipped {
			tw.AppendRow(table.Row{s.Label, "-", "-", "-", "not provided"})
			continue
		}
		total += s.Accepted
		tw.AppendRow(table.Row{s.Label, s.Path, strconv.Itoa(s.Lines), strconv.Itoa(s.Accepted), strconv.Itoa(s.Rejected)})
	}
	tw.AppendFooter(table.Row{"Total", "", "", strconv.Itoa(total), ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
