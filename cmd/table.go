package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/draw"
	"github.com/alexiusacademia/rcbdxf/internal/layout"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rowCounts(rows [3]int) string {
	return fmt.Sprintf("%d / %d / %d", rows[0], rows[1], rows[2])
}

// specTable summarizes the section inputs after defaults are applied.
func specTable(s beam.Spec) string {
	rows := [][]string{
		{"Name", s.Name},
		{"Size (W x H)", num(s.Width) + " x " + num(s.Height)},
		{"Cover", num(s.Cover)},
		{"Main bar diameter", num(s.Main.Diameter)},
		{"Row gap", num(s.Main.Gap)},
		{"Top rows", rowCounts(s.Main.Top)},
		{"Bottom rows", rowCounts(s.Main.Bottom)},
		{"Stirrup", fmt.Sprintf("%d-D%s@%s", s.Stirrup.Count, num(s.Stirrup.Diameter), num(s.Stirrup.Pitch))},
		{"Web rows", fmt.Sprintf("%d (D%s)", s.Web.Rows, num(s.Web.Diameter))},
		{"Fill order", s.Drafting.FillOrder.String()},
		{"Outline", s.Drafting.Outline.String()},
	}
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

// layerTable counts emitted entities per layer.
func layerTable(cmds []draw.Command, roles draw.Roles) string {
	stats := draw.Stats(cmds)
	rows := make([][]string, 0, len(stats)+1)
	var total draw.Stat
	for _, st := range stats {
		rows = append(rows, []string{
			st.Layer,
			roles.Of(st.Layer).String(),
			strconv.Itoa(st.Lines),
			strconv.Itoa(st.Circles),
			strconv.Itoa(st.Polylines),
			strconv.Itoa(st.Texts),
			strconv.Itoa(st.Total()),
		})
		total.Lines += st.Lines
		total.Circles += st.Circles
		total.Polylines += st.Polylines
		total.Texts += st.Texts
	}
	rows = append(rows, []string{
		"total", "",
		strconv.Itoa(total.Lines),
		strconv.Itoa(total.Circles),
		strconv.Itoa(total.Polylines),
		strconv.Itoa(total.Texts),
		strconv.Itoa(total.Total()),
	})
	return renderTable(
		[]string{"Layer", "Role", "Lines", "Circles", "Polylines", "Texts", "Total"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
	)
}

// rebarTable lists bar centres in emission order.
func rebarTable(bars []layout.Bar, side []draw.Point) string {
	rows := make([][]string, 0, len(bars)+len(side))
	for i, b := range bars {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Group,
			strconv.Itoa(b.Row + 1),
			num(b.Center.X),
			num(b.Center.Y),
		})
	}
	for i, p := range side {
		rows = append(rows, []string{
			strconv.Itoa(len(bars) + i + 1),
			"side",
			"",
			num(p.X),
			num(p.Y),
		})
	}
	return renderTable(
		[]string{"#", "Group", "Row", "X", "Y"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight},
	)
}
