package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/internal/parquet"
	"github.com/huangsam/leaguestat/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// barCells is the widest text bar drawn next to a metric value.
const barCells = 5

// WriteViewResults outputs one view, dispatching based on the output format configured.
func WriteViewResults(view schema.View, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, view)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeViewCSV(w, view)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeBinaryWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWorkbook(w, []schema.View{view})
		}, "Wrote workbook"); err != nil {
			return fmt.Errorf("error writing xlsx output: %w", err)
		}
	case schema.ParquetOut:
		records := viewRecords(view)
		if len(records) == 0 {
			return fmt.Errorf("error writing parquet output: view %s has no player rows", view.Name)
		}
		if err := writeBinaryWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WritePlayerRows(w, parquet.PlayerRowsFromRecords(records))
		}, "Wrote parquet"); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeViewTable(view, cfg, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
	return nil
}

// writeViewTable renders a view as a table followed by a one-line summary.
func writeViewTable(view schema.View, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header(view.Columns)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	data := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		data = append(data, tableCells(view, row, cfg.UseColors, nameWidth))
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%s: %d players in %d rows\n", view.Name, view.DataRows(), len(view.Rows))
	return err
}

// tableCells renders one row for the terminal.
func tableCells(view schema.View, row schema.Row, useColors bool, nameWidth int) []string {
	switch row.Kind {
	case schema.SeparatorRow:
		return make([]string, len(view.Columns))
	case schema.HeaderRow:
		return paintCells(row.Cells, contract.HeadColor, useColors)
	case schema.TitleRow:
		return paintCells(row.Cells, contract.TitleColor, useColors)
	case schema.StatsRow:
		return paintCells(row.Cells, contract.StatsColor, useColors)
	}
	if row.Record == nil {
		return make([]string, len(view.Columns))
	}

	cells := recordCells(row.Record)
	for _, col := range []int{schema.ColTeam, schema.ColPlayer, schema.ColLeader} {
		cells[col] = contract.TruncateText(cells[col], nameWidth)
	}
	for _, m := range schema.AllMetrics {
		if !row.Bars.Has(m) {
			continue
		}
		col := schema.MetricColumn(m)
		cells[col] = cells[col] + " " + textBar(row.Bars[m], barPalette[m].term, useColors)
	}
	return cells
}

// textBar draws at least one block for any positive bar.
func textBar(bar schema.Bar, attr color.Attribute, useColors bool) string {
	n := int(math.Round(bar.Ratio() * barCells))
	n = max(1, min(n, barCells))
	blocks := strings.Repeat("█", n)
	if !useColors {
		return blocks
	}
	return color.New(attr).Sprint(blocks)
}

func paintCells(cells []string, c *color.Color, useColors bool) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		if useColors && cell != "" {
			out[i] = c.Sprint(cell)
		} else {
			out[i] = cell
		}
	}
	return out
}

// writeViewCSV writes the column header followed by every row of view.
func writeViewCSV(w io.Writer, view schema.View) error {
	return writeCSVWithHeader(w, csvCells(view.Columns), func(csvWriter *csv.Writer) error {
		return writeViewCSVRows(csvWriter, view)
	})
}

func writeViewCSVRows(w *csv.Writer, view schema.View) error {
	for _, row := range view.Rows {
		var rec []string
		switch {
		case row.Kind == schema.SeparatorRow:
			rec = make([]string, len(view.Columns))
		case row.Kind == schema.DataRow && row.Record != nil:
			rec = recordCells(row.Record)
			for _, col := range []int{schema.ColTeam, schema.ColPlayer, schema.ColRole, schema.ColLeader} {
				rec[col] = EscapeFormula(rec[col])
			}
		default:
			rec = csvCells(row.Cells)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func csvCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c != "" {
			out[i] = EscapeFormula(c)
		}
	}
	return out
}
