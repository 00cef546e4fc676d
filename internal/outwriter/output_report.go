package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/internal/parquet"
	"github.com/huangsam/leaguestat/schema"
)

// jsonMatchReport is the top-level document of --output json for a report.
type jsonMatchReport struct {
	Source      string             `json:"source"`
	HomeTeam    string             `json:"home_team"`
	AwayTeam    string             `json:"away_team"`
	DroppedRows int                `json:"dropped_rows"`
	Report      schema.MatchReport `json:"report"`
}

// WriteReportResults outputs the full match report, dispatching based on the output format configured.
func WriteReportResults(report *schema.MatchReport, match *schema.MatchData, cfg *contract.Config, duration time.Duration) error {
	views := report.Views()
	switch cfg.Output {
	case schema.XLSXOut:
		if err := writeBinaryWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWorkbook(w, views)
		}, "Wrote workbook"); err != nil {
			return fmt.Errorf("error writing xlsx output: %w", err)
		}
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, jsonMatchReport{
				Source:      match.Source,
				HomeTeam:    match.Home.Team,
				AwayTeam:    match.Away.Team,
				DroppedRows: match.Dropped,
				Report:      *report,
			})
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, views)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		records := make([]schema.Record, 0, len(match.Home.Records)+len(match.Away.Records))
		records = append(records, match.Home.Records...)
		records = append(records, match.Away.Records...)
		if err := writeBinaryWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WritePlayerRows(w, parquet.PlayerRowsFromRecords(records))
		}, "Wrote parquet"); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(views, match, cfg, duration, w)
		}, "Wrote tables")
	}
	return nil
}

// writeReportTables renders every view as its own table.
func writeReportTables(views []schema.View, match *schema.MatchData, cfg *contract.Config, duration time.Duration, w io.Writer) error {
	for i, view := range views {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := view.Name
		if cfg.UseColors {
			title = contract.TitleColor.Sprint(title)
		}
		if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
			return err
		}
		if err := writeViewTable(view, cfg, w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n%s: %d players, %s: %d players, %d rows skipped\n",
		match.Home.Team, len(match.Home.Records), match.Away.Team, len(match.Away.Records), match.Dropped); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v. History backend: %s\n", duration, historyLabel(cfg))
	return err
}

// writeReportCSV writes every view as a block led by the view name and
// separated from the next block by an empty record.
func writeReportCSV(w io.Writer, views []schema.View) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	for i, view := range views {
		if i > 0 {
			if err := csvWriter.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := csvWriter.Write([]string{EscapeFormula(view.Name)}); err != nil {
			return err
		}
		if err := csvWriter.Write(csvCells(view.Columns)); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		if err := writeViewCSVRows(csvWriter, view); err != nil {
			return err
		}
	}
	return nil
}

func historyLabel(cfg *contract.Config) string {
	if cfg.HistoryBackend == "" {
		return string(schema.NoneBackend)
	}
	return string(cfg.HistoryBackend)
}
