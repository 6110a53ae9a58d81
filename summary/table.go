package summary

import (
	"math"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// Statistics is the fixed set of per-parameter summaries.
type Statistics struct {
	Mean   float64
	Median float64
	Mode   float64 // NaN when undefined or not estimated
	StdDev float64
	CI     Interval // equal-tailed
	HPD    Interval
	MCSE   float64 // NaN for closed-form rows
	RHat   float64 // NaN for closed-form rows

	// HPDFallback is set when the HPD solver failed and HPD holds the equal-tailed interval.
	HPDFallback bool
}

// NaNStatistics returns Statistics with every scalar set to NaN.
func NaNStatistics() Statistics {
	nan := math.NaN()

	return Statistics{Mean: nan, Median: nan, Mode: nan, StdDev: nan, MCSE: nan, RHat: nan}
}

// Row pairs a parameter name with its statistics.
type Row struct {
	Param string
	Stats Statistics
}

// Table is an ordered parameter → Statistics mapping with attached warnings.
// Rows keep insertion order. A Table is not safe for concurrent mutation.
type Table struct {
	rows     []Row
	index    map[string]int
	warnings []bayeserr.Warning
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add appends a row; duplicate or empty names are rejected.
func (t *Table) Add(param string, s Statistics) error {
	if param == "" {
		return bayeserr.Invalidf("summary: empty parameter name")
	}
	if _, dup := t.index[param]; dup {
		return bayeserr.Invalidf("summary: duplicate parameter %q", param)
	}
	t.index[param] = len(t.rows)
	t.rows = append(t.rows, Row{Param: param, Stats: s})

	return nil
}

// Get looks a parameter up by name.
func (t *Table) Get(param string) (Statistics, bool) {
	i, ok := t.index[param]
	if !ok {
		return Statistics{}, false
	}

	return t.rows[i].Stats, true
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of the rows in insertion order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)

	return out
}

// Params returns the parameter names in insertion order.
func (t *Table) Params() []string {
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Param
	}

	return out
}

// Warn attaches a non-fatal warning.
func (t *Table) Warn(w bayeserr.Warning) { t.warnings = append(t.warnings, w) }

// Warnings returns a copy of the attached warnings.
func (t *Table) Warnings() []bayeserr.Warning {
	out := make([]bayeserr.Warning, len(t.warnings))
	copy(out, t.warnings)

	return out
}

// HasWarning reports whether a warning of kind k is attached.
func (t *Table) HasWarning(k bayeserr.WarningKind) bool {
	for _, w := range t.warnings {
		if w.Kind == k {
			return true
		}
	}

	return false
}
