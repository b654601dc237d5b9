package rews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// disc=5, 風車1台 (100, 0)
func Test_Line_Scenario(t *testing.T) {
	l, err := NewLine(5)
	require.NoError(t, err)

	assert.Equal(t, []float64{-0.5, -0.25, 0, 0.25, 0.5}, l.Offsets())

	g, err := l.GridPoints([]float64{100}, []float64{0})
	require.NoError(t, err)
	assert.True(t, g.Flat())
	assert.Equal(t, []float64{100, 100, 100, 100, 100}, g.X[0].RawRowView(0))
	assert.Equal(t, []float64{-0.5, -0.25, 0, 0.25, 0.5}, g.Y[0].RawRowView(0))

	rews, err := l.Integrate([]*mat.Dense{mat.NewDense(1, 5, []float64{8, 9, 10, 9, 8})})
	require.NoError(t, err)
	assert.InDelta(t, 9.0, rews[0], 1e-12)
}

func Test_Line_Default(t *testing.T) {
	l, err := NewLine(DefaultLineDisc)
	require.NoError(t, err)

	rows, cols := l.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 100, cols)
	assert.Equal(t, "line", l.Name())
}

// 横方向の位置が風車位置だけ平行移動すること
func Test_Line_GridPoints_Offset(t *testing.T) {
	l, err := NewLine(11)
	require.NoError(t, err)

	g, err := l.GridPoints([]float64{0, 3}, []float64{0, -2})
	require.NoError(t, err)

	ys := l.Offsets()
	for j := range ys {
		assert.Equal(t, 3.0, g.X[1].At(0, j))
		assert.InDelta(t, ys[j]-2, g.Y[1].At(0, j), 1e-15)
	}
}

// 中央に対して対称な分布は、中央値に近い値となる
func Test_Line_Symmetry(t *testing.T) {
	l, err := NewLine(101)
	require.NoError(t, err)

	ys := l.Offsets()
	u := mat.NewDense(1, len(ys), nil)
	for j, y := range ys {
		u.Set(0, j, 10-y*y)
	}

	rews, err := l.Integrate([]*mat.Dense{u})
	require.NoError(t, err)

	// 10 - ∫y² dy = 10 - 1/12
	assert.InDelta(t, 10-1.0/12, rews[0], 1e-4)
	assert.InDelta(t, u.At(0, 50), rews[0], 0.1)
}

func Test_Line_Degenerate(t *testing.T) {
	for _, disc := range []int{-1, 0, 1} {
		l, err := NewLine(disc)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, ErrDegenerateDiscretization)
	}
}

func Test_Line_ShapeMismatch(t *testing.T) {
	l, err := NewLine(5)
	require.NoError(t, err)

	_, err = l.Integrate([]*mat.Dense{mat.NewDense(1, 4, nil)})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = l.Integrate([]*mat.Dense{nil})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
