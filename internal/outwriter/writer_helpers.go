package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/schema"
)

// errBinaryStdout is returned when a binary format would be written to the terminal.
var errBinaryStdout = errors.New("--output-file is required for xlsx and parquet output")

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeBinaryWithFile is writeWithFile for formats that must not go to stdout.
func writeBinaryWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	if outputFile == "" {
		return errBinaryStdout
	}
	return writeWithFile(outputFile, writer, successMsg)
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// formatValue renders a metric value without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// recordCells renders a record as plain strings in column order.
func recordCells(rec *schema.Record) []string {
	cells := make([]string, schema.ColumnCount)
	cells[schema.ColTeam] = rec.Team
	cells[schema.ColPlayer] = rec.Player
	cells[schema.ColLevel] = strconv.Itoa(rec.Level)
	cells[schema.ColRole] = rec.Role
	cells[schema.ColLeader] = rec.Leader
	for _, m := range schema.AllMetrics {
		cells[schema.MetricColumn(m)] = formatValue(rec.Metrics[m])
	}
	return cells
}

// viewRecords returns the records behind the data rows of views, in row order.
func viewRecords(views ...schema.View) []schema.Record {
	var records []schema.Record
	for _, v := range views {
		for _, row := range v.Rows {
			if row.Kind == schema.DataRow && row.Record != nil {
				records = append(records, *row.Record)
			}
		}
	}
	return records
}
