package importer

import (
	"bufio"
	"io"
	"strings"
)

// Row is one parsed line of a client import file. Invalid rows are kept so
// the caller can report every problem at once.
type Row struct {
	Line       int
	Name       string
	MusicStyle string
	Valid      bool
	Reasons    []string
}

// header literals seen in files exported from the legacy spreadsheet
var nameHeaderLiterals = map[string]bool{
	"name":    true,
	"nome":    true,
	"client":  true,
	"cliente": true,
}

var categoryHeaderLiterals = map[string]bool{
	"category":  true,
	"categoria": true,
	"style":     true,
	"estilo":    true,
}

// Preview parses a comma separated client file without committing anything.
// The first line is always treated as a header and skipped; later lines that
// repeat header literals are flagged instead of imported.
func Preview(r io.Reader) ([]Row, error) {
	scanner := bufio.NewScanner(r)
	rows := make([]Row, 0)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		rows = append(rows, parseRow(line, text))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseRow(line int, text string) Row {
	parts := strings.SplitN(text, ",", 2)
	row := Row{Line: line, Name: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		row.MusicStyle = strings.TrimSpace(parts[1])
	}

	if nameHeaderLiterals[strings.ToLower(row.Name)] || categoryHeaderLiterals[strings.ToLower(row.MusicStyle)] {
		row.Reasons = append(row.Reasons, "header row")
	}
	if row.Name == "" {
		row.Reasons = append(row.Reasons, "missing name")
	}
	if row.MusicStyle == "" {
		row.Reasons = append(row.Reasons, "missing category")
	}
	row.Valid = len(row.Reasons) == 0
	return row
}
