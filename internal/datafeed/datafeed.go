// internal/datafeed/datafeed.go

// Package datafeed reads row-oriented scenario data from delimited files.
// The first record is the header defining field names; every later record
// becomes one Row. Each Row drives exactly one parameterized scenario
// invocation.
package datafeed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Row maps a header field name to the value in one data record.
type Row map[string]string

// FormatError reports an absent or malformed data file: unterminated
// quote, inconsistent column count, or a missing header. It aborts the
// whole parameterized run before any row executes.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("data file %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ReadRows parses the delimited file at path into an ordered sequence of
// rows keyed by the header fields. Errors are propagated as *FormatError,
// never swallowed.
func ReadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	// The first record fixes the expected column count; encoding/csv then
	// rejects every inconsistent record for us.

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("missing header row")
		}
		return nil, &FormatError{Path: path, Err: err}
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
		row := make(Row, len(header))
		for i, field := range header {
			row[field] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
