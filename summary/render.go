package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

var textHeader = []string{
	"param", "mean", "median", "mode", "sd",
	"ci_lower", "ci_upper", "hpd_lower", "hpd_upper", "mcse", "rhat",
}

func formatNum(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}

	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteText renders the table as aligned columns followed by one line per warning.
// Undefined statistics print as "-"; a fallen-back HPD is flagged with "*".
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(textHeader, "\t")); err != nil {
		return err
	}
	for _, r := range t.rows {
		s := r.Stats
		hpdHi := formatNum(s.HPD.Upper)
		if s.HPDFallback {
			hpdHi += "*"
		}
		cells := []string{
			r.Param,
			formatNum(s.Mean), formatNum(s.Median), formatNum(s.Mode), formatNum(s.StdDev),
			formatNum(s.CI.Lower), formatNum(s.CI.Upper),
			formatNum(s.HPD.Lower), hpdHi,
			formatNum(s.MCSE), formatNum(s.RHat),
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, wn := range t.warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", wn); err != nil {
			return err
		}
	}

	return nil
}

// jsonNum is a float that encodes NaN and ±Inf as null.
type jsonNum float64

func (v jsonNum) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

type jsonInterval struct {
	Lower  jsonNum `json:"lower"`
	Upper  jsonNum `json:"upper"`
	Mass   jsonNum `json:"mass"`
	Method Method  `json:"method"`
}

type jsonRow struct {
	Param       string       `json:"param"`
	Mean        jsonNum      `json:"mean"`
	Median      jsonNum      `json:"median"`
	Mode        jsonNum      `json:"mode"`
	StdDev      jsonNum      `json:"sd"`
	CI          jsonInterval `json:"ci"`
	HPD         jsonInterval `json:"hpd"`
	MCSE        jsonNum      `json:"mcse"`
	RHat        jsonNum      `json:"rhat"`
	HPDFallback bool         `json:"hpd_fallback,omitempty"`
}

type jsonWarning struct {
	Kind    string  `json:"kind"`
	Param   string  `json:"param,omitempty"`
	Value   jsonNum `json:"value"`
	Message string  `json:"message"`
}

type jsonTable struct {
	Rows     []jsonRow     `json:"rows"`
	Warnings []jsonWarning `json:"warnings,omitempty"`
}

func toJSONInterval(iv Interval) jsonInterval {
	return jsonInterval{Lower: jsonNum(iv.Lower), Upper: jsonNum(iv.Upper), Mass: jsonNum(iv.Mass), Method: iv.Method}
}

// MarshalJSON encodes rows in order; undefined statistics become null.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := jsonTable{Rows: make([]jsonRow, 0, len(t.rows))}
	for _, r := range t.rows {
		s := r.Stats
		out.Rows = append(out.Rows, jsonRow{
			Param: r.Param, Mean: jsonNum(s.Mean), Median: jsonNum(s.Median), Mode: jsonNum(s.Mode),
			StdDev: jsonNum(s.StdDev), CI: toJSONInterval(s.CI), HPD: toJSONInterval(s.HPD),
			MCSE: jsonNum(s.MCSE), RHat: jsonNum(s.RHat), HPDFallback: s.HPDFallback,
		})
	}
	for _, w := range t.warnings {
		out.Warnings = append(out.Warnings, jsonWarning{Kind: w.Kind.String(), Param: w.Param, Value: jsonNum(w.Value), Message: w.Message})
	}

	return json.Marshal(out)
}

// WriteJSON writes the indented JSON encoding of the table.
func (t *Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(t)
}
