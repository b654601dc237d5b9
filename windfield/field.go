package windfield

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/udawtr/rews-go/rews"
)

// 風速場の種類
const (
	TypeUniform      = "uniform"
	TypeShear        = "shear"
	TypeGaussianWake = "gaussian_wake"
)

var ErrUnknownType = errors.New("windfield: unknown field type")

// 一様な風速場
type Uniform struct {
	U float64
}

func (f Uniform) Speed(x, y, z float64) float64 {
	return f.U
}

// ハブ高さ (z = 0) を基準とした線形の鉛直シア
//
//	U(z) = UInf * (1 + Alpha * z)
//
// z はロータ直径で正規化した高さ。
type Shear struct {
	UInf  float64
	Alpha float64
}

func (f Shear) Speed(x, y, z float64) float64 {
	return f.UInf * (1 + f.Alpha*z)
}

// 上流風車の後流をガウス分布の速度欠損で表す風速場
//
// 風車 k より下流 (x > X[k]) で
//
//	σ = Sigma + Expansion·(x - X[k])
//	ΔU = Deficit·(Sigma/σ)²·exp(-((y-Y[k])² + z²) / 2σ²)
//
// を線形に重ね合わせる。流入風は Shear に従う。
type GaussianWake struct {
	Inflow    Shear
	Deficit   float64   //ロータ直後の最大速度欠損率
	Sigma     float64   //ロータ直後の後流幅 (直径で正規化)
	Expansion float64   //後流幅の拡大率
	X, Y      []float64 //後流を生成する風車位置
}

func (f GaussianWake) Speed(x, y, z float64) float64 {
	u := f.Inflow.Speed(x, y, z)

	var deficit float64
	for k := range f.X {
		dx := x - f.X[k]
		if dx <= 0 {
			continue
		}
		sigma := f.Sigma + f.Expansion*dx
		dy := y - f.Y[k]
		deficit += f.Deficit * (f.Sigma / sigma) * (f.Sigma / sigma) *
			math.Exp(-(dy*dy+z*z)/(2*sigma*sigma))
	}

	return math.Max(0, u*(1-deficit))
}

// 風速場の設定
type Config struct {
	Type      string  `yaml:"type"`
	UInf      float64 `yaml:"u_inf"`
	Shear     float64 `yaml:"shear,omitempty"`
	Deficit   float64 `yaml:"deficit,omitempty"`
	Sigma     float64 `yaml:"sigma,omitempty"`
	Expansion float64 `yaml:"expansion,omitempty"`
}

// 既定値: 流入風速1.0、後流幅0.25、拡大率0.05
func (c Config) withDefaults() Config {
	if c.UInf == 0 {
		c.UInf = 1.0
	}
	if c.Sigma == 0 {
		c.Sigma = 0.25
	}
	if c.Expansion == 0 {
		c.Expansion = 0.05
	}
	return c
}

// 設定から風速場を作成する。xt, yt は後流を生成する風車の位置 (流れ方向座標系)。
func New(c Config, xt, yt []float64) (rews.Field, error) {
	c = c.withDefaults()
	switch strings.ToLower(c.Type) {
	case "", TypeUniform:
		return Uniform{U: c.UInf}, nil
	case TypeShear:
		return Shear{UInf: c.UInf, Alpha: c.Shear}, nil
	case TypeGaussianWake:
		if len(xt) != len(yt) {
			return nil, errors.Wrapf(rews.ErrLengthMismatch, "windfield: len(xt)=%d, len(yt)=%d", len(xt), len(yt))
		}
		return GaussianWake{
			Inflow:    Shear{UInf: c.UInf, Alpha: c.Shear},
			Deficit:   c.Deficit,
			Sigma:     c.Sigma,
			Expansion: c.Expansion,
			X:         append([]float64(nil), xt...),
			Y:         append([]float64(nil), yt...),
		}, nil
	}
	return nil, errors.Wrapf(ErrUnknownType, "%q", c.Type)
}
