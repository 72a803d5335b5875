// Package tabular reads numeric CSV tables: one header row, '#' comment
// lines, and at least a fixed number of numeric columns per record.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed reports a record that cannot be parsed.
var ErrMalformed = errors.New("malformed table")

// Read parses r and returns the first cols columns, column-major.
// Extra columns are ignored. A table with no data rows is malformed.
func Read(r io.Reader, cols int) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	out := make([][]float64, cols)
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		if len(rec) < cols {
			return nil, fmt.Errorf("%w: line %d: got %d columns, want at least %d", ErrMalformed, line, len(rec), cols)
		}
		for c := 0; c < cols; c++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %v", ErrMalformed, line, c+1, err)
			}
			out[c] = append(out[c], v)
		}
	}

	if len(out) == 0 || len(out[0]) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrMalformed)
	}
	return out, nil
}
