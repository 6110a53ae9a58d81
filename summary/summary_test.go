package summary_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	t.Parallel()
	iv, err := summary.NewInterval(1, 3, 0.9, summary.HPD)
	require.NoError(t, err)
	assert.Equal(t, 2.0, iv.Width())
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(3))
	assert.False(t, iv.Contains(3.5))
	assert.Equal(t, "hpd 90% [1, 3]", iv.String())

	_, err = summary.NewInterval(3, 1, 0.9, summary.HPD)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = summary.NewInterval(1, 3, 1, summary.EqualTailed)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = summary.NewInterval(math.NaN(), 3, 0.5, summary.EqualTailed)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
}

func sampleTable(t *testing.T) *summary.Table {
	t.Helper()
	tb := summary.NewTable()
	mu := summary.NaNStatistics()
	mu.Mean, mu.Median, mu.StdDev = 1.25, 1.2, 0.3
	mu.CI = summary.Interval{Lower: 0.7, Upper: 1.8, Mass: 0.95, Method: summary.EqualTailed}
	mu.HPD = summary.Interval{Lower: 0.68, Upper: 1.78, Mass: 0.95, Method: summary.HPD}
	mu.MCSE, mu.RHat = 0.004, 1.001
	require.NoError(t, tb.Add("mu", mu))

	s2 := summary.NaNStatistics()
	s2.Mean, s2.Median, s2.Mode, s2.StdDev = 4, 3.8, 3.5, 0.9
	s2.CI = summary.Interval{Lower: 2.6, Upper: 6.1, Mass: 0.95, Method: summary.EqualTailed}
	s2.HPD = s2.CI
	s2.HPDFallback = true
	require.NoError(t, tb.Add("sigma2", s2))
	tb.Warn(bayeserr.Warning{Kind: bayeserr.HPDFallback, Param: "sigma2", Message: "solver did not converge"})

	return tb
}

func TestTable_AddGet(t *testing.T) {
	t.Parallel()
	tb := sampleTable(t)
	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{"mu", "sigma2"}, tb.Params())

	s, ok := tb.Get("mu")
	require.True(t, ok)
	assert.Equal(t, 1.25, s.Mean)
	assert.True(t, math.IsNaN(s.Mode))

	_, ok = tb.Get("nope")
	assert.False(t, ok)

	assert.ErrorIs(t, tb.Add("mu", summary.Statistics{}), bayeserr.ErrInvalidParameter)
	assert.ErrorIs(t, tb.Add("", summary.Statistics{}), bayeserr.ErrInvalidParameter)

	rows := tb.Rows()
	rows[0].Param = "changed"
	assert.Equal(t, "mu", tb.Params()[0], "Rows must return a copy")

	assert.True(t, tb.HasWarning(bayeserr.HPDFallback))
	assert.False(t, tb.HasWarning(bayeserr.HighRHat))
	assert.Len(t, tb.Warnings(), 1)
}

func TestTable_WriteText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, sampleTable(t).WriteText(&buf))
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "param"))
	assert.Contains(t, lines[0], "rhat")
	assert.Contains(t, lines[1], "1.2500")
	assert.Contains(t, lines[1], " - ") // undefined mode
	assert.Contains(t, lines[2], "6.1000*")
	assert.Equal(t, "warning: hpd_fallback[sigma2]: solver did not converge", lines[3])
}

func TestTable_WriteJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, sampleTable(t).WriteJSON(&buf))

	var decoded struct {
		Rows []struct {
			Param       string   `json:"param"`
			Mean        *float64 `json:"mean"`
			Mode        *float64 `json:"mode"`
			HPDFallback bool     `json:"hpd_fallback"`
			HPD         struct {
				Method string  `json:"method"`
				Upper  float64 `json:"upper"`
			} `json:"hpd"`
		} `json:"rows"`
		Warnings []struct {
			Kind  string   `json:"kind"`
			Value *float64 `json:"value"`
		} `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, "mu", decoded.Rows[0].Param)
	require.NotNil(t, decoded.Rows[0].Mean)
	assert.Equal(t, 1.25, *decoded.Rows[0].Mean)
	assert.Nil(t, decoded.Rows[0].Mode, "NaN encodes as null")
	assert.Equal(t, "hpd", decoded.Rows[0].HPD.Method)
	assert.Equal(t, "equal-tailed", decoded.Rows[1].HPD.Method)
	assert.True(t, decoded.Rows[1].HPDFallback)
	require.Len(t, decoded.Warnings, 1)
	assert.Equal(t, "hpd_fallback", decoded.Warnings[0].Kind)
	require.NotNil(t, decoded.Warnings[0].Value)
	assert.Equal(t, 0.0, *decoded.Warnings[0].Value)
}
