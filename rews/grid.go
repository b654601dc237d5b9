package rews

import "gonum.org/v1/gonum/mat"

// Grid は風車ごとのサンプリング格子点の座標。
//
// X, Y, Z の各要素は風車1台分のブロックで、形状は Sampler.Shape() に等しい。
// Z が nil の場合は鉛直方向の広がりがなく、全ての格子点で z = 0 とみなす。
type Grid struct {
	X []*mat.Dense //流れ方向座標
	Y []*mat.Dense //横方向座標
	Z []*mat.Dense //鉛直方向座標 (nil: 全点 0)
}

// 風車の台数
func (g *Grid) Len() int {
	return len(g.X)
}

// 鉛直方向の座標を持たない (z = 0 で一定) 場合に true
func (g *Grid) Flat() bool {
	return g.Z == nil
}

// 風車 t の格子点 (i, j) の鉛直座標
func (g *Grid) ZAt(t, i, j int) float64 {
	if g.Flat() {
		return 0
	}
	return g.Z[t].At(i, j)
}

// 格子点の総数
func (g *Grid) Size() int {
	n := 0
	for _, b := range g.X {
		r, c := b.Dims()
		n += r * c
	}
	return n
}

// 風車ごとに rows×cols のゼロ行列を n 個確保する
func newBlocks(n, rows, cols int) []*mat.Dense {
	blocks := make([]*mat.Dense, n)
	for i := range blocks {
		blocks[i] = mat.NewDense(rows, cols, nil)
	}
	return blocks
}
