package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/leaguestat/schema"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every new excelize file starts with.
const defaultSheet = "Sheet1"

// barRun is a vertical range of cells sharing one data bar rule.
type barRun struct {
	column    int
	firstRow  int
	lastRow   int
	max       float64
	color     string
	groupName string
}

// BuildWorkbook renders one sheet per view, in order. The caller closes the file.
func BuildWorkbook(views []schema.View) (*excelize.File, error) {
	f := excelize.NewFile()
	styles, err := newSheetStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, view := range views {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, view.Name)
		} else {
			_, err = f.NewSheet(view.Name)
		}
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", view.Name, err)
		}
		if err := writeSheet(f, view, styles); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to write sheet %s: %w", view.Name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// writeWorkbook renders views and streams the workbook to w.
func writeWorkbook(w io.Writer, views []schema.View) error {
	f, err := BuildWorkbook(views)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return f.Write(w)
}

func newSheetStyles(f *excelize.File) (map[CellStyle]int, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	defs := map[CellStyle]*excelize.Style{
		StyleData: {Alignment: center, Border: border},
		StyleHeader: {
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
			Alignment: center,
			Border:    border,
		},
		StyleTitle: {
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{titleFill}, Pattern: 1},
			Alignment: center,
			Border:    border,
		},
		StyleStats: {
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{statsFill}, Pattern: 1},
			Alignment: center,
			Border:    border,
		},
	}
	styles := make(map[CellStyle]int, len(defs))
	for kind, def := range defs {
		id, err := f.NewStyle(def)
		if err != nil {
			return nil, fmt.Errorf("failed to create cell style: %w", err)
		}
		styles[kind] = id
	}
	return styles, nil
}

func writeSheet(f *excelize.File, view schema.View, styles map[CellStyle]int) error {
	sheet := view.Name
	lastCol := len(view.Columns)

	if err := writeSheetRow(f, sheet, 1, lastCol, textValues(view.Columns), styles[StyleHeader]); err != nil {
		return err
	}

	var runs []barRun
	open := make(map[int]int) // column -> index into runs
	for i, row := range view.Rows {
		excelRow := i + 2
		d := DirectivesFor(row)
		if d.Style == StyleNone {
			continue
		}
		if err := writeSheetRow(f, sheet, excelRow, lastCol, sheetValues(view, row), styles[d.Style]); err != nil {
			return err
		}
		for _, bar := range d.Bars {
			if idx, ok := open[bar.Column]; ok {
				run := &runs[idx]
				if run.lastRow == excelRow-1 && run.max == bar.Max && run.groupName == row.Group {
					run.lastRow = excelRow
					continue
				}
			}
			open[bar.Column] = len(runs)
			runs = append(runs, barRun{
				column: bar.Column, firstRow: excelRow, lastRow: excelRow,
				max: bar.Max, color: bar.Color, groupName: row.Group,
			})
		}
	}

	for _, run := range runs {
		if err := addDataBar(f, sheet, run); err != nil {
			return err
		}
	}

	for i, width := range ColumnWidths(view) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSheetRow(f *excelize.File, sheet string, row, lastCol int, values []any, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, first, &values); err != nil {
		return err
	}
	if lastCol == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(lastCol, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func addDataBar(f *excelize.File, sheet string, run barRun) error {
	top, err := excelize.CoordinatesToCellName(run.column+1, run.firstRow)
	if err != nil {
		return err
	}
	rangeRef := top
	if run.lastRow > run.firstRow {
		bottom, err := excelize.CoordinatesToCellName(run.column+1, run.lastRow)
		if err != nil {
			return err
		}
		rangeRef = top + ":" + bottom
	}
	return f.SetConditionalFormat(sheet, rangeRef, []excelize.ConditionalFormatOptions{{
		Type:     "data_bar",
		Criteria: "=",
		MinType:  "num",
		MaxType:  "num",
		MinValue: "0",
		MaxValue: formatValue(run.max),
		BarColor: "#" + run.color,
	}})
}

// sheetValues returns the typed cell values of a row. Numbers stay numeric so
// data bars and sums work, text goes through EscapeFormula.
func sheetValues(view schema.View, row schema.Row) []any {
	switch {
	case row.Kind == schema.DataRow && row.Record != nil:
		rec := row.Record
		values := make([]any, schema.ColumnCount)
		values[schema.ColTeam] = EscapeFormula(rec.Team)
		values[schema.ColPlayer] = EscapeFormula(rec.Player)
		values[schema.ColLevel] = rec.Level
		values[schema.ColRole] = EscapeFormula(rec.Role)
		values[schema.ColLeader] = EscapeFormula(rec.Leader)
		for _, m := range schema.AllMetrics {
			values[schema.MetricColumn(m)] = rec.Metrics[m]
		}
		return values
	case view.Kind == schema.ComparisonView && row.Stats != nil:
		values := make([]any, 0, 2+schema.MetricCount)
		values = append(values, EscapeFormula(row.Stats.Label), row.Stats.Count)
		for _, m := range schema.AllMetrics {
			values = append(values, row.Stats.Sums[m])
		}
		return values
	default:
		return textValues(row.Cells)
	}
}

func textValues(cells []string) []any {
	values := make([]any, len(cells))
	for i, c := range cells {
		if c == "" {
			values[i] = nil
			continue
		}
		values[i] = EscapeFormula(c)
	}
	return values
}
