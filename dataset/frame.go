package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/matrix"
)

// InterceptName is the coefficient name of the intercept column.
const InterceptName = "intercept"

// Frame is a column-oriented numeric table.
type Frame struct {
	names []string
	index map[string]int
	cols  [][]float64
}

// Load reads a CSV file.
func Load(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a header plus numeric records. Surrounding whitespace in
// cells is ignored.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for a missing header, duplicate or empty
//     column names, ragged records, non-numeric or non-finite cells, no records.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, bayeserr.Invalidf("dataset: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: dataset: %w", bayeserr.ErrInvalidParameter, err)
	}
	fr := &Frame{
		names: make([]string, len(header)),
		index: make(map[string]int, len(header)),
		cols:  make([][]float64, len(header)),
	}
	for j, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, bayeserr.Invalidf("dataset: empty column name at %d", j)
		}
		if _, dup := fr.index[name]; dup {
			return nil, bayeserr.Invalidf("dataset: duplicate column %q", name)
		}
		fr.names[j] = name
		fr.index[name] = j
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: dataset: %w", bayeserr.ErrInvalidParameter, err)
		}
		for j, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, bayeserr.Invalidf("dataset: line %d column %q: not a finite number: %q", line, fr.names[j], cell)
			}
			fr.cols[j] = append(fr.cols[j], v)
		}
	}
	if fr.Len() == 0 {
		return nil, bayeserr.Invalidf("dataset: no records")
	}

	return fr, nil
}

// Names returns the column names in file order.
func (f *Frame) Names() []string { return append([]string(nil), f.names...) }

// Len returns the number of records.
func (f *Frame) Len() int { return len(f.cols[0]) }

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	j, ok := f.index[name]
	if !ok {
		return nil, bayeserr.Invalidf("dataset: unknown column %q", name)
	}

	return append([]float64(nil), f.cols[j]...), nil
}

// Design builds the n×k regression matrix from the predictor columns, with a
// leading column of ones when intercept is set.
func (f *Frame) Design(predictors []string, intercept bool) (*matrix.Dense, error) {
	cols := make([][]float64, 0, len(predictors)+1)
	for _, name := range predictors {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	k := len(cols)
	if intercept {
		k++
	}
	if k == 0 {
		return nil, bayeserr.Invalidf("dataset: design has no columns")
	}

	n := f.Len()
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, 0, k)
		if intercept {
			row = append(row, 1)
		}
		for _, c := range cols {
			row = append(row, c[i])
		}
		rows[i] = row
	}

	return matrix.NewDenseRows(rows)
}

// DesignNames returns the coefficient names matching Design.
func DesignNames(predictors []string, intercept bool) []string {
	out := make([]string, 0, len(predictors)+1)
	if intercept {
		out = append(out, InterceptName)
	}

	return append(out, predictors...)
}
