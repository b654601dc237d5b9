package rews

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 格子点の座標がそのまま風速場に渡ること
func Test_Sample(t *testing.T) {
	a, err := NewArea(3, 4)
	require.NoError(t, err)

	g, err := a.GridPoints([]float64{1, 2}, []float64{0, 3})
	require.NoError(t, err)

	u := Sample(g, FieldFunc(func(x, y, z float64) float64 { return x + 10*y + 100*z }))
	require.Len(t, u, 2)
	for k := range u {
		rows, cols := u[k].Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				want := g.X[k].At(i, j) + 10*g.Y[k].At(i, j) + 100*g.Z[k].At(i, j)
				assert.Equal(t, want, u[k].At(i, j))
			}
		}
	}
}

// 横方向に線形な風速場の直径平均は中心の値
func Test_Evaluate_Line(t *testing.T) {
	l, err := NewLine(DefaultLineDisc)
	require.NoError(t, err)

	rews, err := Evaluate(l, FieldFunc(func(x, y, z float64) float64 { return 6 + y }), []float64{0, 0}, []float64{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, rews[0], 1e-12)
	assert.InDelta(t, 8.0, rews[1], 1e-12)
}

func Test_EvaluateBatch(t *testing.T) {
	a, err := NewArea(DefaultRDisc, DefaultThetaDisc)
	require.NoError(t, err)

	field := FieldFunc(func(x, y, z float64) float64 { return 10 - x })
	layouts := make([]Layout, 16)
	for i := range layouts {
		layouts[i] = Layout{
			X: []float64{float64(i), float64(i) + 0.5},
			Y: []float64{0, math.Sqrt(float64(i))},
		}
	}

	results, err := EvaluateBatch(context.Background(), a, field, layouts)
	require.NoError(t, err)
	require.Len(t, results, len(layouts))
	for i, rews := range results {
		assert.InDelta(t, 10-float64(i), rews[0], 1e-12)
		assert.InDelta(t, 9.5-float64(i), rews[1], 1e-12)
	}
}

func Test_EvaluateBatch_Error(t *testing.T) {
	p := NewPoint()
	layouts := []Layout{
		{X: []float64{0}, Y: []float64{0}},
		{X: []float64{0, 1}, Y: []float64{0}},
	}

	results, err := EvaluateBatch(context.Background(), p, FieldFunc(func(x, y, z float64) float64 { return 1 }), layouts)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "layout 1")
}

func Test_EvaluateBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := EvaluateBatch(ctx, NewPoint(), FieldFunc(func(x, y, z float64) float64 { return 1 }),
		[]Layout{{X: []float64{0}, Y: []float64{0}}})
	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}
