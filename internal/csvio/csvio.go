// Package csvio reads and writes the product and sale CSV files used by the
// bulk import/export endpoints and the startup sales dataset.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ProductHeader = []string{"id", "name", "description", "price", "category_id", "brand"}
	SaleHeader    = []string{"id", "product_id", "quantity", "total_price", "date"}
)

// ParseError reports a malformed upload. Line is 1-based and counts the header.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// table is a header-indexed view over a CSV document.
type table struct {
	cols map[string]int
	rows [][]string
}

func readTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	// Short rows are allowed; trailing optional columns may be left off.
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{Line: pe.StartLine, Err: pe.Err}
		}
		return nil, &ParseError{Line: 1, Err: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Line: 1, Err: errors.New("no columns to parse from file")}
	}

	t := &table{cols: map[string]int{}, rows: records[1:]}
	for i, name := range records[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		t.cols[name] = i
	}
	for _, col := range required {
		if _, ok := t.cols[col]; !ok {
			return nil, &ParseError{Line: 1, Column: col, Err: errors.New("missing column")}
		}
	}
	return t, nil
}

// cell returns the raw value of col in row i, "" when the column is absent.
func (t *table) cell(i int, col string) string {
	idx, ok := t.cols[col]
	if !ok || idx >= len(t.rows[i]) {
		return ""
	}
	return t.rows[i][idx]
}

func (t *table) intCell(i int, col string) (int64, error) {
	v := strings.TrimSpace(t.cell(i, col))
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &ParseError{Line: i + 2, Column: col, Err: fmt.Errorf("invalid integer %q", v)}
	}
	return n, nil
}

func (t *table) floatCell(i int, col string) (float64, error) {
	v := strings.TrimSpace(t.cell(i, col))
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &ParseError{Line: i + 2, Column: col, Err: fmt.Errorf("invalid number %q", v)}
	}
	return f, nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }
