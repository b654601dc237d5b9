package rews

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Field は任意座標の流れ方向風速を返す風速場 (後流モデル等)。
type Field interface {
	Speed(x, y, z float64) float64
}

// 関数を Field として扱うためのアダプタ
type FieldFunc func(x, y, z float64) float64

func (f FieldFunc) Speed(x, y, z float64) float64 {
	return f(x, y, z)
}

// 格子点ごとに風速場を評価し、格子と同じ形状の風速配列を返す
func Sample(g *Grid, f Field) []*mat.Dense {
	u := make([]*mat.Dense, g.Len())
	for t := range g.X {
		rows, cols := g.X[t].Dims()
		u[t] = mat.NewDense(rows, cols, nil)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				u[t].Set(i, j, f.Speed(g.X[t].At(i, j), g.Y[t].At(i, j), g.ZAt(t, i, j)))
			}
		}
	}
	return u
}

// 格子点の生成、風速場の評価、積分をまとめて行い、風車ごとのロータ等価風速を返す
func Evaluate(s Sampler, f Field, xt, yt []float64) ([]float64, error) {
	g, err := s.GridPoints(xt, yt)
	if err != nil {
		return nil, err
	}
	return s.Integrate(Sample(g, f))
}

// 風車配置 (レイアウト) 1件分
type Layout struct {
	X []float64 //流れ方向座標
	Y []float64 //横方向座標
}

// 複数のレイアウトを同じ Sampler で並列に評価する。
// いずれかが失敗した場合は残りを中断し、最初のエラーを返す。
func EvaluateBatch(ctx context.Context, s Sampler, f Field, layouts []Layout) ([][]float64, error) {
	results := make([][]float64, len(layouts))

	eg, ctx := errgroup.WithContext(ctx)
	for i := range layouts {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rews, err := Evaluate(s, f, layouts[i].X, layouts[i].Y)
			if err != nil {
				return errors.Wrapf(err, "layout %d", i)
			}
			results[i] = rews
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
