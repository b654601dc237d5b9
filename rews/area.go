package rews

import (
	"math"

	"github.com/hhkbp2/go-logging"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

// 半径方向・周方向の分割数の既定値
const (
	DefaultRDisc     = 10
	DefaultThetaDisc = 10
)

// Area はロータ面を極座標格子 (半径 × 角度) で覆って風速を評価し、
// 面積平均を二重の台形積分で求める。
//
// 半径 rs は [0, 0.5] (0.5 がロータ端)、角度 thetas は [0, 2π] を両端を含めて分割する。
// 格子の形状は (thetaDisc, rDisc) で、列方向に半径、行方向に角度が変化する。
type Area struct {
	rDisc, thetaDisc int

	rs     []float64 //半径 [0, 0.5]
	thetas []float64 //角度 [0, 2π]

	rMesh *mat.Dense //半径のメッシュ (thetaDisc × rDisc)

	// 風車中心からの横方向・鉛直方向オフセット
	// r·sinθ, r·cosθ
	yOffset *mat.Dense
	zOffset *mat.Dense
}

// 半径方向 rDisc 点、周方向 thetaDisc 点の Area を作成する。どちらも2以上。
func NewArea(rDisc, thetaDisc int) (*Area, error) {
	if rDisc < 2 || thetaDisc < 2 {
		return nil, errors.Wrapf(ErrDegenerateDiscretization, "area: r_disc=%d, theta_disc=%d", rDisc, thetaDisc)
	}

	rs := make([]float64, rDisc)
	floats.Span(rs, 0, 0.5)
	thetas := make([]float64, thetaDisc)
	floats.Span(thetas, 0, 2*math.Pi)

	rMesh, thetaMesh := meshgrid(rs, thetas)

	yOffset := mat.NewDense(thetaDisc, rDisc, nil)
	yOffset.Apply(func(i, j int, r float64) float64 {
		return r * math.Sin(thetaMesh.At(i, j))
	}, rMesh)

	zOffset := mat.NewDense(thetaDisc, rDisc, nil)
	zOffset.Apply(func(i, j int, r float64) float64 {
		return r * math.Cos(thetaMesh.At(i, j))
	}, rMesh)

	logger := logging.GetLogger("rews")
	logger.Debugf("area sampler: r_disc=%d, theta_disc=%d", rDisc, thetaDisc)

	return &Area{
		rDisc:     rDisc,
		thetaDisc: thetaDisc,
		rs:        rs,
		thetas:    thetas,
		rMesh:     rMesh,
		yOffset:   yOffset,
		zOffset:   zOffset,
	}, nil
}

// xs を列方向、ys を行方向に並べたメッシュ (len(ys) × len(xs)) を返す
func meshgrid(xs, ys []float64) (xm, ym *mat.Dense) {
	xm = mat.NewDense(len(ys), len(xs), nil)
	ym = mat.NewDense(len(ys), len(xs), nil)
	for i := range ys {
		copy(xm.RawRowView(i), xs)
		row := ym.RawRowView(i)
		for j := range row {
			row[j] = ys[i]
		}
	}
	return xm, ym
}

func (a *Area) Name() string { return MethodArea }

func (a *Area) Shape() (rows, cols int) { return a.thetaDisc, a.rDisc }

func (a *Area) RDisc() int { return a.rDisc }

func (a *Area) ThetaDisc() int { return a.thetaDisc }

// 半径のコピー
func (a *Area) Radii() []float64 {
	return append([]float64(nil), a.rs...)
}

// 角度のコピー
func (a *Area) Angles() []float64 {
	return append([]float64(nil), a.thetas...)
}

// 風車 i の格子は x = xt[i] 一定、y = yt[i] + r·sinθ、z = r·cosθ。
func (a *Area) GridPoints(xt, yt []float64) (*Grid, error) {
	if err := checkTurbines(xt, yt); err != nil {
		return nil, err
	}

	X := newBlocks(len(xt), a.thetaDisc, a.rDisc)
	Y := newBlocks(len(xt), a.thetaDisc, a.rDisc)
	Z := newBlocks(len(xt), a.thetaDisc, a.rDisc)
	for i := range xt {
		for k := 0; k < a.thetaDisc; k++ {
			x := X[i].RawRowView(k)
			for j := range x {
				x[j] = xt[i]
			}

			y := Y[i].RawRowView(k)
			copy(y, a.yOffset.RawRowView(k))
			floats.AddConst(yt[i], y)
		}
		Z[i].Copy(a.zOffset)
	}

	return &Grid{X: X, Y: Y, Z: Z}, nil
}

// 極座標での面積分 ∫∫ U r dr dθ を半径方向→角度方向の順に台形則で求め、
// 4/π を掛けて面積平均とする。一様な風速場はその値に一致する。
func (a *Area) Integrate(u []*mat.Dense) ([]float64, error) {
	if err := checkShape(u, a.thetaDisc, a.rDisc); err != nil {
		return nil, err
	}

	rews := make([]float64, len(u))
	ru := make([]float64, a.rDisc)
	inner := make([]float64, a.thetaDisc)
	for i, b := range u {
		for k := 0; k < a.thetaDisc; k++ {
			floats.MulTo(ru, a.rMesh.RawRowView(k), b.RawRowView(k))
			inner[k] = integrate.Trapezoidal(a.rs, ru)
		}
		rews[i] = 4 / math.Pi * integrate.Trapezoidal(a.thetas, inner)
	}
	return rews, nil
}
