// Package export builds tabular spreadsheet exports. The caller chooses
// the columns; every record becomes exactly one row with those columns
// in order and nothing else.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column pairs a header with a field selector. The selector returns any
// scalar excelize can write (string, number, time).
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// Sheet is a built, ready-to-serialize table.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// BuildSheet maps records through the column selectors. Column order in
// the output follows the order given here.
func BuildSheet[T any](name string, records []T, cols []Column[T]) Sheet {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = c.Value(rec)
		}
		rows = append(rows, row)
	}

	return Sheet{Name: name, Headers: headers, Rows: rows}
}

// WriteXLSX serializes the sheet with a bold header row.
func (s Sheet) WriteXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Sheet1"
	if s.Name != "" {
		if err := f.SetSheetName(sheetName, s.Name); err != nil {
			return nil, err
		}
	}
	name := s.Name
	if name == "" {
		name = sheetName
	}

	headerRow := make([]any, len(s.Headers))
	for i, h := range s.Headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	endCol, err := excelize.ColumnNumberToName(max(len(s.Headers), 1))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(name, "A1", endCol+"1", boldStyle); err != nil {
		return nil, err
	}

	for i, row := range s.Rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename names a download after its domain and day, e.g.
// "Orders_2026-01-15.xlsx".
func Filename(domainName string, day time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", domainName, day.Format("2006-01-02"))
}
