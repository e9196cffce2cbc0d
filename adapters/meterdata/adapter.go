// Package meterdata reads utility-exported interval usage CSV files.
// These exports carry free-form account metadata lines ahead of the
// tabular header row, so the adapter first locates the header, then
// parses the table and hands the core a clean record sequence.
package meterdata

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"powercost/core/usage"
	"powercost/internal/errors"
	"powercost/internal/logging"
)

// headerPrefix marks the tabular header row within the export
const headerPrefix = "SERVICE,DATE,"

// timeLayout is the export's month/day/year 24-hour timestamp format
const timeLayout = "1/2/2006 15:04"

// File is one parsed usage export
type File struct {
	// Records holds one reading per source row, in file order
	Records []usage.Record

	// Unit is the declared unit, taken from the first record
	Unit string

	// Metadata holds the account key/value pairs from the leading lines
	// (typically Name, Address, Account Number)
	Metadata map[string]string
}

// ReadFile parses the usage export at path
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Parsing("opening usage file", err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithContext("path", path)
		}
		return nil, err
	}
	return doc, nil
}

// Read parses a usage export from r
func Read(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)

	metadata := make(map[string]string)
	var headerLine string
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, headerPrefix) {
			headerLine = trimmed
			break
		}
		if key, value, found := strings.Cut(trimmed, ","); found && key != "" {
			metadata[key] = strings.TrimRight(strings.TrimSpace(value), ",")
		}
		if err == io.EOF {
			return nil, errors.New(errors.TypeMissingHeader,
				"could not find the header row in the CSV file")
		}
		if err != nil {
			return nil, errors.Parsing("reading usage file", err)
		}
	}

	records, unit, err := readTable(headerLine, br)
	if err != nil {
		return nil, err
	}

	logging.Debug("parsed usage export",
		zap.Int("records", len(records)),
		zap.String("unit", unit),
		zap.Int("metadata_keys", len(metadata)))

	return &File{
		Records:  records,
		Unit:     unit,
		Metadata: metadata,
	}, nil
}

// readTable parses the tabular portion, starting from the header line
func readTable(headerLine string, rest io.Reader) ([]usage.Record, string, error) {
	cr := csv.NewReader(io.MultiReader(strings.NewReader(headerLine+"\n"), rest))
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, "", errors.Parsing("reading header row", err)
	}

	cols, err := requiredColumns(header)
	if err != nil {
		return nil, "", err
	}

	var records []usage.Record
	unit := ""
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", errors.Wrapf(errors.TypeParsing, err, "reading row %d", row)
		}
		if len(fields) <= cols.max() {
			return nil, "", errors.Newf(errors.TypeParsing,
				"row %d has %d fields, expected at least %d", row, len(fields), cols.max()+1)
		}

		ts, err := parseTimestamp(fields[cols.date], fields[cols.startTime])
		if err != nil {
			return nil, "", errors.Wrapf(errors.TypeParsing, err, "row %d: invalid timestamp", row)
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(fields[cols.usage]), 64)
		if err != nil {
			return nil, "", errors.Wrapf(errors.TypeParsing, err, "row %d: invalid usage value", row)
		}

		recordUnit := strings.TrimSpace(fields[cols.units])
		if unit == "" {
			unit = recordUnit
		}

		records = append(records, usage.Record{
			Timestamp: ts,
			Amount:    amount,
			Unit:      recordUnit,
		})
	}

	return records, unit, nil
}

// parseTimestamp combines the DATE and START TIME fields into one
// naive local timestamp
func parseTimestamp(date, start string) (time.Time, error) {
	return time.Parse(timeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(start))
}

// columns holds the indices of the required header columns
type columns struct {
	date      int
	startTime int
	usage     int
	units     int
}

func (c columns) max() int {
	m := c.date
	for _, i := range []int{c.startTime, c.usage, c.units} {
		if i > m {
			m = i
		}
	}
	return m
}

func requiredColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	cols := columns{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{"DATE", &cols.date},
		{"START TIME", &cols.startTime},
		{"USAGE", &cols.usage},
		{"UNITS", &cols.units},
	} {
		i, ok := index[want.name]
		if !ok {
			return columns{}, errors.Newf(errors.TypeParsing,
				"header row is missing the %s column", want.name)
		}
		*want.dst = i
	}
	return cols, nil
}
