package rews

import "gonum.org/v1/gonum/mat"

// Point はロータ中心1点のみで風速を評価する (離散化なし)。
type Point struct{}

func NewPoint() *Point {
	return &Point{}
}

func (p *Point) Name() string { return MethodPoint }

func (p *Point) Shape() (rows, cols int) { return 1, 1 }

// 各風車の位置そのものを1点の格子とする。Z は 0 一定。
func (p *Point) GridPoints(xt, yt []float64) (*Grid, error) {
	if err := checkTurbines(xt, yt); err != nil {
		return nil, err
	}

	X := newBlocks(len(xt), 1, 1)
	Y := newBlocks(len(xt), 1, 1)
	for i := range xt {
		X[i].Set(0, 0, xt[i])
		Y[i].Set(0, 0, yt[i])
	}

	return &Grid{X: X, Y: Y}, nil
}

// 格子点が1点のため、サンプル値がそのままロータ等価風速になる
func (p *Point) Integrate(u []*mat.Dense) ([]float64, error) {
	if err := checkShape(u, 1, 1); err != nil {
		return nil, err
	}

	rews := make([]float64, len(u))
	for i, b := range u {
		rews[i] = b.At(0, 0)
	}
	return rews, nil
}
