package rews

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

//--------------------------------------
// ロータ等価風速(REWS)のサンプリング方式
//--------------------------------------

var (
	// 離散化数が2未満で台形積分が定義できない
	ErrDegenerateDiscretization = errors.New("rews: discretization must be at least 2")

	// Integrate に渡された風速配列の形状が格子と一致しない
	ErrShapeMismatch = errors.New("rews: sampled field shape does not match grid")

	// 風車の流れ方向座標と横方向座標の個数が一致しない
	ErrLengthMismatch = errors.New("rews: turbine coordinate lengths differ")

	// 未知のサンプリング方式
	ErrUnknownMethod = errors.New("rews: unknown sampling method")
)

// Sampler は風車位置からサンプリング格子点を生成し、
// 格子点で得られた風速を風車ごとに1つの値へ積分する。
//
// GridPoints で得た格子で風速場を評価し、同じ形状の配列を Integrate に渡すこと。
// 実装は構築後に変更されないため、複数の goroutine から同時に利用できる。
type Sampler interface {
	// 風車位置 xt (流れ方向), yt (横方向) から格子点を生成する
	GridPoints(xt, yt []float64) (*Grid, error)

	// 風車ごとの格子点の風速 u を積分してロータ等価風速を返す
	Integrate(u []*mat.Dense) ([]float64, error)

	// 風車1台あたりの格子の形状 (行, 列)
	Shape() (rows, cols int)

	// 方式名 (point, line, area)
	Name() string
}

var (
	_ Sampler = (*Point)(nil)
	_ Sampler = (*Line)(nil)
	_ Sampler = (*Area)(nil)
)

func checkTurbines(xt, yt []float64) error {
	if len(xt) != len(yt) {
		return errors.Wrapf(ErrLengthMismatch, "len(xt)=%d, len(yt)=%d", len(xt), len(yt))
	}
	return nil
}

// u が風車ごとに rows×cols のブロックになっているか確認する
func checkShape(u []*mat.Dense, rows, cols int) error {
	for i, b := range u {
		if b == nil {
			return errors.Wrapf(ErrShapeMismatch, "turbine %d: nil block", i)
		}
		r, c := b.Dims()
		if r != rows || c != cols {
			return errors.Wrapf(ErrShapeMismatch, "turbine %d: got %dx%d, want %dx%d", i, r, c, rows, cols)
		}
	}
	return nil
}
