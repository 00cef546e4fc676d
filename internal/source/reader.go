// Package source reads guild-league CSV exports and splits them into two rosters.
package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MinCells is the smallest number of cells a row needs to carry a player.
const MinCells = 5

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sentinel errors returned by Read.
var (
	ErrEmptyExport = errors.New("export is empty")
	ErrNoSeparator = errors.New("no blank separator line between the two rosters; use --split-line")
)

// Options controls how an export is split.
type Options struct {
	// SplitLine is the 0-based line index of the separator. Zero or negative detects it.
	SplitLine int
}

// RawMatch holds the uncoerced cells of both roster sections.
type RawMatch struct {
	Source  string     // Path of the export, empty for in-memory readers
	Home    [][]string // Rows between the header and the separator
	Away    [][]string // Rows after the separator
	Dropped int        // Rows with fewer than MinCells cells
}

// ReadFile reads and splits the export at path.
func ReadFile(path string, opts Options) (*RawMatch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	raw, err := Read(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}
	raw.Source = path
	return raw, nil
}

// Read splits a UTF-8 export into its two roster sections.
// Line 0 is the header of the first roster. The separator is the first line
// after it whose cells are all blank, unless opts names it explicitly.
func Read(r io.Reader, opts Options) (*RawMatch, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyExport
	}

	split := opts.SplitLine
	if split <= 0 {
		if split = findSeparator(lines); split < 0 {
			return nil, ErrNoSeparator
		}
	}
	if split >= len(lines) {
		return nil, fmt.Errorf("split line %d is beyond the last line %d", split, len(lines)-1)
	}

	header := lines[0]
	second := lines[split+1:]
	if len(second) > 0 && sameCells(second[0], header) {
		second = second[1:]
	}

	home, droppedHome := keepRows(lines[1:split])
	away, droppedAway := keepRows(second)
	return &RawMatch{
		Home:    home,
		Away:    away,
		Dropped: droppedHome + droppedAway,
	}, nil
}

// readLines parses every CSV record, restoring the blank lines the csv reader skips
// as nil records. A record whose quoted cells span several physical lines
// occupies a single index.
func readLines(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var lines [][]string
	nextLine, consumed := 1, 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		for ; nextLine < line; nextLine++ {
			lines = append(lines, nil)
		}
		lines = append(lines, rec)
		end := int(cr.InputOffset())
		nextLine += bytes.Count(data[consumed:end], []byte{'\n'})
		consumed = end
	}
	return lines, nil
}

// findSeparator returns the index of the first blank line after the header, or -1.
func findSeparator(lines [][]string) int {
	for i := 1; i < len(lines); i++ {
		if isBlank(lines[i]) {
			return i
		}
	}
	return -1
}

// keepRows drops blank rows and counts rows too short to hold a player.
func keepRows(rows [][]string) (kept [][]string, dropped int) {
	kept = make([][]string, 0, len(rows))
	for _, row := range rows {
		switch {
		case isBlank(row):
			continue
		case len(row) < MinCells:
			dropped++
		default:
			kept = append(kept, row)
		}
	}
	return kept, dropped
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// sameCells reports whether two rows hold the same trimmed cells, ignoring trailing blanks.
func sameCells(a, b []string) bool {
	a, b = trimRow(a), trimRow(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func trimRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
