package chain

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes a header of parameter names followed by one record per
// filled row. Burn-in rows are included unless postBurnIn is set.
func (c *Chain) WriteCSV(w io.Writer, postBurnIn bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(c.names); err != nil {
		return chainErrorf("WriteCSV", err)
	}
	start := 0
	if postBurnIn {
		start = c.burnIn
	}
	p := len(c.names)
	rec := make([]string, p)
	for i := start; i < c.rows; i++ {
		for j := 0; j < p; j++ {
			rec[j] = strconv.FormatFloat(c.data[i*p+j], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return chainErrorf("WriteCSV", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return chainErrorf("WriteCSV", err)
	}

	return nil
}
