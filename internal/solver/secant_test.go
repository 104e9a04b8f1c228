package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSecant_LinearInOneStep(t *testing.T) {
	f := FuncOf(func(x float64) float64 { return x - 5 })
	x, err := RunSecant(Interval{Min: 0, Max: 10}, f, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, x)
}

func TestRunSecant_FixedPointStopsEarly(t *testing.T) {
	f := FuncOf(func(x float64) float64 { return x - 5 })
	var iters []Iter
	x, err := RunSecant(Interval{Min: 0, Max: 10}, f, 100, func(it Iter) error {
		iters = append(iters, it)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, x)
	// шаг 1 попадает в корень, шаг 2 оставляет точку на месте, дальше prev == cur
	assert.Len(t, iters, 2)
	assert.Equal(t, 0.0, iters[1].Len)
}

func TestRunSecant_Sqrt2(t *testing.T) {
	x, err := RunSecant(Interval{Min: 1, Max: 2}, FuncOf(square2), 7, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-12)
}

func TestRunSecant_EqualValuesIsDegenerate(t *testing.T) {
	f := FuncOf(func(x float64) float64 { return x * x })
	_, err := RunSecant(Interval{Min: -1, Max: 1}, f, 10, nil)
	assert.ErrorIs(t, err, ErrDegenerateIteration)
}

func TestRunSecant_BothRoots(t *testing.T) {
	f := FuncOf(func(float64) float64 { return 0 })
	x, err := RunSecant(Interval{Min: -1, Max: 1}, f, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}

func TestRunSecant_SamePointsReturnImmediately(t *testing.T) {
	cf := &countingFunc{f: FuncOf(square2)}
	x, err := RunSecant(Interval{Min: 3, Max: 3}, cf, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 1, cf.evals)
}

func TestRunSecant_RespectsMaxIter(t *testing.T) {
	var n int
	_, err := RunSecant(Interval{Min: 1, Max: 2}, FuncOf(cubic), 3, func(Iter) error {
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
