package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()

	return out.String(), err
}

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

type jsonOut struct {
	Rows []struct {
		Param string   `json:"param"`
		Mean  *float64 `json:"mean"`
		Mode  *float64 `json:"mode"`
		MCSE  *float64 `json:"mcse"`
	} `json:"rows"`
}

func TestConjugate_Poisson(t *testing.T) {
	dir := t.TempDir()
	data := writeTemp(t, dir, "counts.csv", "count\n2\n3\n1\n4\n")
	cfg := writeTemp(t, dir, "run.toml", "model = \"poisson\"\n[data]\nresponse = \"count\"\n")

	out, err := execute(t, "conjugate", "--config", cfg, "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "lambda")
	assert.Contains(t, out, "2.2000", "posterior mean (10+1)/(4+1)")
}

func TestConjugate_RegressionJSON(t *testing.T) {
	dir := t.TempDir()
	data := writeTemp(t, dir, "obs.csv", "y,x\n1.1,0\n2.9,1\n5.2,2\n6.8,3\n9.1,4\n")
	cfg := writeTemp(t, dir, "run.yaml", "model: regression\ndata:\n  path: "+data+"\n  response: y\n  predictors: [x]\n")

	out, err := execute(t, "--format", "json", "conjugate", "-c", cfg)
	require.NoError(t, err)
	var got jsonOut
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Rows, 3)
	assert.Equal(t, "intercept", got.Rows[0].Param)
	assert.Equal(t, "x", got.Rows[1].Param)
	assert.Equal(t, "sigma2", got.Rows[2].Param)
	assert.Nil(t, got.Rows[0].MCSE, "closed-form rows have no MCSE")
	require.NotNil(t, got.Rows[1].Mean)
	assert.InDelta(t, 2, *got.Rows[1].Mean, 0.2)
}

func TestGibbs_Gaussian(t *testing.T) {
	dir := t.TempDir()
	var sb strings.Builder
	sb.WriteString("y\n")
	for _, v := range []string{"0.8", "1.4", "0.2", "2.1", "1.0", "0.6", "1.7", "1.2", "0.9", "1.1"} {
		sb.WriteString(v + "\n")
	}
	data := writeTemp(t, dir, "y.csv", sb.String())
	cfg := writeTemp(t, dir, "run.toml", `model = "gaussian"
[data]
path = "`+data+`"
response = "y"
[sampling]
iterations = 2000
burn_in = 400
chains = 2
`)
	draws := filepath.Join(dir, "draws.csv")

	out, err := execute(t, "gibbs", "--format", "json", "--config", cfg, "--chain-out", draws)
	require.NoError(t, err)
	var got jsonOut
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "mu", got.Rows[0].Param)
	assert.Nil(t, got.Rows[0].Mode)
	require.NotNil(t, got.Rows[0].MCSE)
	assert.InDelta(t, 1.1, *got.Rows[0].Mean, 0.3)

	raw, err := os.ReadFile(draws)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, "mu,sigma2", lines[0])
	assert.Len(t, lines, 1+2*1600)
}

func TestGibbs_RejectsConjugateOnlyModel(t *testing.T) {
	dir := t.TempDir()
	data := writeTemp(t, dir, "y.csv", "y\n1\n0\n1\n")
	cfg := writeTemp(t, dir, "run.toml", "model = \"bernoulli\"\n[data]\npath = \""+data+"\"\nresponse = \"y\"\n")

	_, err := execute(t, "gibbs", "--config", cfg)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)

	_, err = execute(t, "conjugate")
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
}

func TestHPD(t *testing.T) {
	out, err := execute(t, "hpd", "--family", "gamma", "--params", "16,6", "--prob", "0.95")
	require.NoError(t, err)
	assert.Contains(t, out, "gamma[16 6]")
	assert.Contains(t, out, "equal-tailed 95% [")
	assert.Contains(t, out, "hpd 95% [")

	_, err = execute(t, "hpd", "--family", "weibull", "--params", "1,2")
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = execute(t, "hpd", "--family", "student-t", "--params", "1,2")
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = execute(t, "--format", "xml", "hpd", "--family", "beta", "--params", "2,2")
	assert.Error(t, err)
}

func TestCurve_Family(t *testing.T) {
	out, err := execute(t, "curve", "--family", "beta", "--params", "2,3", "--points", "11")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "x,density", lines[0])
}

func TestCurve_Draws(t *testing.T) {
	dir := t.TempDir()
	draws := writeTemp(t, dir, "draws.csv", "mu,sigma2\n0.9,1.1\n1.2,0.8\n1.0,1.3\n1.4,0.9\n0.7,1.0\n")

	out, err := execute(t, "curve", "--draws", draws, "--param", "mu", "--points", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	first, err := strconv.ParseFloat(strings.Split(lines[1], ",")[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.56, first, 1e-12, "grid starts 20% below the smallest draw")

	_, err = execute(t, "curve", "--draws", draws)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = execute(t, "curve", "--draws", draws, "--param", "tau")
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = execute(t, "curve", "--draws", draws, "--family", "beta", "--params", "2,2")
	assert.Error(t, err)
	_, err = execute(t, "curve")
	assert.Error(t, err)
}
