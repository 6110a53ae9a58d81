package chain_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/chain"
)

func filled(t *testing.T, rows int) *chain.Chain {
	t.Helper()
	c, err := chain.New([]string{"mu", "sigma2"}, rows)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		require.NoError(t, c.Append(float64(i), float64(10*i)))
	}

	return c
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		names []string
		iters int
	}{
		"no names":   {nil, 10},
		"empty name": {[]string{"mu", ""}, 10},
		"duplicate":  {[]string{"mu", "mu"}, 10},
		"zero iters": {[]string{"mu"}, 0},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := chain.New(tc.names, tc.iters)
			assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
		})
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()
	c, err := chain.New([]string{"mu", "sigma2"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 2, c.Cap())
	assert.Equal(t, 2, c.NumParams())

	assert.ErrorIs(t, c.Append(1), bayeserr.ErrInvalidParameter)
	assert.ErrorIs(t, c.Append(1, math.NaN()), bayeserr.ErrInvalidParameter)
	require.NoError(t, c.Append(1, 2))
	require.NoError(t, c.Append(3, 4))
	assert.ErrorIs(t, c.Append(5, 6), chain.ErrFull)
	assert.Equal(t, []float64{3, 4}, c.Row(1))
	assert.Nil(t, c.Row(2))
}

func TestFreeze(t *testing.T) {
	t.Parallel()
	c := filled(t, 3)
	c.Freeze()
	c.Freeze()
	assert.True(t, c.Frozen())
	err := c.Append(1, 2)
	assert.ErrorIs(t, err, chain.ErrFrozen)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	require.NoError(t, c.SetBurnIn(1))
}

func TestBurnIn(t *testing.T) {
	t.Parallel()
	c := filled(t, 5)
	assert.ErrorIs(t, c.SetBurnIn(5), bayeserr.ErrInvalidParameter)
	assert.ErrorIs(t, c.SetBurnIn(-1), bayeserr.ErrInvalidParameter)
	require.NoError(t, c.SetBurnIn(2))
	assert.Equal(t, 2, c.BurnIn())

	assert.Equal(t, []float64{0, 1, 2, 3, 4}, c.Column(0, false))
	assert.Equal(t, []float64{2, 3, 4}, c.Column(0, true))
	assert.Equal(t, [][]float64{{2, 3, 4}, {20, 30, 40}}, c.PostBurnIn())
	assert.Nil(t, c.Column(2, false))

	got, err := c.ColumnByName("sigma2", true)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30, 40}, got)
	_, err = c.ColumnByName("tau", true)
	assert.ErrorIs(t, err, chain.ErrUnknownParam)
}

func TestNames_Copy(t *testing.T) {
	t.Parallel()
	c := filled(t, 1)
	names := c.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"mu", "sigma2"}, c.Names())
	j, ok := c.Index("sigma2")
	assert.True(t, ok)
	assert.Equal(t, 1, j)
	_, ok = c.Index("tau")
	assert.False(t, ok)
}

func TestFromColumns(t *testing.T) {
	t.Parallel()
	c, err := chain.FromColumns([]string{"a", "b"}, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.True(t, c.Frozen())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []float64{2, 5}, c.Row(1))

	_, err = chain.FromColumns([]string{"a", "b"}, [][]float64{{1, 2}, {4}})
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = chain.FromColumns([]string{"a"}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, err = chain.FromColumns(nil, nil)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	c := filled(t, 3)
	require.NoError(t, c.SetBurnIn(1))

	var all, post bytes.Buffer
	require.NoError(t, c.WriteCSV(&all, false))
	require.NoError(t, c.WriteCSV(&post, true))
	assert.Equal(t, "mu,sigma2\n0,0\n1,10\n2,20\n", all.String())
	assert.Equal(t, "mu,sigma2\n1,10\n2,20\n", post.String())
}
