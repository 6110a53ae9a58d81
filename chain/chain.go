package chain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// Chain is a row-major arena of draws.
type Chain struct {
	names  []string
	index  map[string]int
	data   []float64 // len == cap*len(names)
	cap    int
	rows   int
	burnIn int
	frozen bool
}

// New reserves a chain for iterations rows of the named parameters.
//
// Errors:
//   - ErrInvalidParameter for no names, empty or duplicate names, iterations < 1.
func New(names []string, iterations int) (*Chain, error) {
	if len(names) == 0 {
		return nil, chainErrorf("New", bayeserr.Invalidf("no parameter names"))
	}
	if iterations < 1 {
		return nil, chainErrorf("New", bayeserr.Invalidf("iterations must be ≥ 1, got %d", iterations))
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, chainErrorf("New", bayeserr.Invalidf("empty parameter name at %d", i))
		}
		if _, dup := index[name]; dup {
			return nil, chainErrorf("New", bayeserr.Invalidf("duplicate parameter %q", name))
		}
		index[name] = i
	}

	return &Chain{
		names: append([]string(nil), names...),
		index: index,
		data:  make([]float64, iterations*len(names)),
		cap:   iterations,
	}, nil
}

// FromColumns builds a frozen chain from one slice of draws per parameter.
// All columns must have the same non-zero length.
func FromColumns(names []string, cols [][]float64) (*Chain, error) {
	if len(cols) != len(names) {
		return nil, chainErrorf("FromColumns", bayeserr.Invalidf("%d names for %d columns", len(names), len(cols)))
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, chainErrorf("FromColumns", bayeserr.Invalidf("empty columns"))
	}
	n := len(cols[0])
	for j, col := range cols {
		if len(col) != n {
			return nil, chainErrorf("FromColumns", bayeserr.Invalidf("column %q has %d draws, want %d", names[j], len(col), n))
		}
	}
	c, err := New(names, n)
	if err != nil {
		return nil, err
	}
	p := len(names)
	for j, col := range cols {
		for i, v := range col {
			c.data[i*p+j] = v
		}
	}
	c.rows = n
	c.frozen = true

	return c, nil
}

// Append stores one draw per parameter, in Names() order.
//
// Errors:
//   - ErrFrozen, ErrFull, ErrInvalidParameter (wrong row width or NaN).
func (c *Chain) Append(row ...float64) error {
	switch {
	case c.frozen:
		return chainErrorf("Append", ErrFrozen)
	case c.rows == c.cap:
		return chainErrorf("Append", ErrFull)
	case len(row) != len(c.names):
		return chainErrorf("Append", bayeserr.Invalidf("row has %d values, want %d", len(row), len(c.names)))
	}
	for j, v := range row {
		if math.IsNaN(v) {
			return chainErrorf("Append", bayeserr.Invalidf("NaN draw for %q", c.names[j]))
		}
	}
	copy(c.data[c.rows*len(c.names):], row)
	c.rows++

	return nil
}

// Freeze makes the chain read-only. Idempotent.
func (c *Chain) Freeze() { c.frozen = true }

// Frozen reports whether Freeze was called.
func (c *Chain) Frozen() bool { return c.frozen }

// Len returns the number of filled rows.
func (c *Chain) Len() int { return c.rows }

// Cap returns the number of reserved rows.
func (c *Chain) Cap() int { return c.cap }

// NumParams returns the row width.
func (c *Chain) NumParams() int { return len(c.names) }

// Names returns a copy of the parameter names.
func (c *Chain) Names() []string { return append([]string(nil), c.names...) }

// Index returns the column of a parameter.
func (c *Chain) Index(name string) (int, bool) {
	j, ok := c.index[name]

	return j, ok
}

// SetBurnIn marks the first n rows as warm-up. Allowed on a frozen chain,
// since it changes only how rows are read.
//
// Errors:
//   - ErrInvalidParameter unless 0 ≤ n < Len().
func (c *Chain) SetBurnIn(n int) error {
	if n < 0 || n >= c.rows {
		return chainErrorf("SetBurnIn", bayeserr.Invalidf("burn-in %d outside [0, %d)", n, c.rows))
	}
	c.burnIn = n

	return nil
}

// BurnIn returns the logical burn-in length.
func (c *Chain) BurnIn() int { return c.burnIn }

// Row returns a copy of row i, or nil when i is not a filled row.
func (c *Chain) Row(i int) []float64 {
	if i < 0 || i >= c.rows {
		return nil
	}
	p := len(c.names)
	out := make([]float64, p)
	copy(out, c.data[i*p:(i+1)*p])

	return out
}

// Column returns a copy of column j, skipping burn-in rows when postBurnIn is set.
// Returns nil for an out-of-range j.
func (c *Chain) Column(j int, postBurnIn bool) []float64 {
	if j < 0 || j >= len(c.names) {
		return nil
	}
	start := 0
	if postBurnIn {
		start = c.burnIn
	}
	p := len(c.names)
	out := make([]float64, c.rows-start)
	for i := start; i < c.rows; i++ {
		out[i-start] = c.data[i*p+j]
	}

	return out
}

// ColumnByName is Column addressed by parameter name.
func (c *Chain) ColumnByName(name string, postBurnIn bool) ([]float64, error) {
	j, ok := c.index[name]
	if !ok {
		return nil, chainErrorf("ColumnByName", fmt.Errorf("%q: %w", name, ErrUnknownParam))
	}

	return c.Column(j, postBurnIn), nil
}

// PostBurnIn returns every column with burn-in rows dropped, in Names() order.
func (c *Chain) PostBurnIn() [][]float64 {
	out := make([][]float64, len(c.names))
	for j := range out {
		out[j] = c.Column(j, true)
	}

	return out
}
