package rews

import (
	"github.com/hhkbp2/go-logging"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

// 直径方向のサンプリング点数の既定値
const DefaultLineDisc = 100

// Line はロータ直径に沿った横方向の線上で風速を評価し、台形則で平均する。
//
// 横方向の位置 ys はロータ直径で正規化され [-0.5, 0.5] を等間隔に分割する。
// 区間幅が1のため、台形積分の値がそのまま直径方向の平均風速になる。
type Line struct {
	disc int
	ys   []float64 //正規化横方向位置 [-0.5, 0.5]
}

// 直径方向を disc 点で離散化した Line を作成する。disc は2以上。
func NewLine(disc int) (*Line, error) {
	if disc < 2 {
		return nil, errors.Wrapf(ErrDegenerateDiscretization, "line: disc=%d", disc)
	}

	ys := make([]float64, disc)
	floats.Span(ys, -0.5, 0.5)

	logger := logging.GetLogger("rews")
	logger.Debugf("line sampler: disc=%d", disc)

	return &Line{disc: disc, ys: ys}, nil
}

func (l *Line) Name() string { return MethodLine }

func (l *Line) Shape() (rows, cols int) { return 1, l.disc }

func (l *Line) Disc() int { return l.disc }

// 正規化横方向位置のコピー
func (l *Line) Offsets() []float64 {
	return append([]float64(nil), l.ys...)
}

// 風車 i の格子は x = xt[i] 一定、y = ys + yt[i]。Z は 0 一定。
func (l *Line) GridPoints(xt, yt []float64) (*Grid, error) {
	if err := checkTurbines(xt, yt); err != nil {
		return nil, err
	}

	X := newBlocks(len(xt), 1, l.disc)
	Y := newBlocks(len(xt), 1, l.disc)
	for i := range xt {
		x := X[i].RawRowView(0)
		for j := range x {
			x[j] = xt[i]
		}

		y := Y[i].RawRowView(0)
		copy(y, l.ys)
		floats.AddConst(yt[i], y)
	}

	return &Grid{X: X, Y: Y}, nil
}

// ys を積分変数とした台形積分
func (l *Line) Integrate(u []*mat.Dense) ([]float64, error) {
	if err := checkShape(u, 1, l.disc); err != nil {
		return nil, err
	}

	rews := make([]float64, len(u))
	for i, b := range u {
		rews[i] = integrate.Trapezoidal(l.ys, b.RawRowView(0))
	}
	return rews, nil
}
