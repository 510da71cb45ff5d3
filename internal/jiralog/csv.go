// Package jiralog drives the timesheet run: it reads rows from a CSV file,
// submits each one as a Jira worklog and reports a summary.
package jiralog

import (
	"encoding/csv"
	"os"
	"strings"

	"jiralog/internal/jiralog/errors"
)

// Column headers expected in the timesheet CSV.
const (
	colDate        = "Date"
	colTicket      = "Jira Ticket Number"
	colDescription = "Work Description"
	colHours       = "Hours"
)

// Row is one timesheet line as read from the CSV. Fields are raw strings,
// validation happens at submission time.
type Row struct {
	Date        string
	Ticket      string
	Description string
	Hours       string
}

// ReadTimesheet loads rows from a CSV file. The first record is the header
// row and columns are matched by name, so their order does not matter.
// Short rows and absent columns read as empty strings.
func ReadTimesheet(path string) ([]Row, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the --csv flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrCSVNotFound, "%s", path)
		}
		return nil, errors.Wrapf(errors.ErrCSVRead, "%s: %v", path, err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCSVRead, "%s: %v", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Map to store the column indices for each header
	colIndices := make(map[string]int)
	for i, header := range records[0] {
		colIndices[strings.TrimSpace(header)] = i
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, Row{
			Date:        field(record, colIndices, colDate),
			Ticket:      field(record, colIndices, colTicket),
			Description: field(record, colIndices, colDescription),
			Hours:       field(record, colIndices, colHours),
		})
	}
	return rows, nil
}

// field extracts a named column from a record, tolerating rows shorter than
// the header line.
func field(record []string, colIndices map[string]int, name string) string {
	idx, ok := colIndices[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
