package windfield

import (
	"math"

	"github.com/pkg/errors"
	"github.com/udawtr/rews-go/rews"
)

//--------------------------------------
// 風速風向計算
//--------------------------------------

// ベクトル風速 u (東西成分), v (南北成分) から風速 spd と風向 dir (度, 風上方位) を計算する
func FromVector(u float64, v float64) (spd float64, dir float64) {
	// 三平方の定理により、東西、南北のベクトル成分から風速を計算
	spd = math.Sqrt(u*u + v*v)

	// 東西、南北のベクトル成分から風向を計算 (北=0, 東=90)
	// 風上方位のため、流れの向きを反転させる
	dir = radToDegree(math.Atan2(-u, -v))
	if dir < 0 {
		dir += 360
	}

	return spd, dir
}

// 東西 xs, 南北 ys の座標を風向 dir (度) に対する流れ方向・横方向座標に変換する
//
// 流れ方向は風下向きを正、横方向は流れ方向から反時計回りに90度の向きを正とする。
func ToStreamwise(xs, ys []float64, dir float64) (xt, yt []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, errors.Wrapf(rews.ErrLengthMismatch, "windfield: len(xs)=%d, len(ys)=%d", len(xs), len(ys))
	}

	rad := degreeToRad(dir)
	sin, cos := math.Sin(rad), math.Cos(rad)

	xt = make([]float64, len(xs))
	yt = make([]float64, len(xs))
	for i := range xs {
		xt[i] = -xs[i]*sin - ys[i]*cos
		yt[i] = xs[i]*cos - ys[i]*sin
	}
	return xt, yt, nil
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
