package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/udawtr/rews-go/rews"
	"github.com/udawtr/rews-go/windfield"
	"gopkg.in/yaml.v3"
)

// 計算ケースの設定ファイル
type Case struct {
	Sampler rews.Config      `yaml:"sampler"`
	Field   windfield.Config `yaml:"field"`

	// 風向 (度)。指定した場合 turbines は東西・南北座標とみなし、流れ方向座標系へ変換する
	WindDirection *float64 `yaml:"wind_direction,omitempty"`

	// 流入風のベクトル風速。wind_direction がなければ風向を、field.u_inf がなければ風速を与える
	Wind *WindVector `yaml:"wind,omitempty"`

	Turbines []Turbine `yaml:"turbines"`
}

// ベクトル風速
type WindVector struct {
	U float64 `yaml:"u"` //東西風 (単位:m/s)
	V float64 `yaml:"v"` //南北風 (単位:m/s)
}

// 無風では風向が定まらない
var ErrCalmWind = errors.New("wind vector has zero speed")

type Turbine struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func LoadCase(path string) (*Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open case file %s", path)
	}
	defer f.Close()
	return ParseCase(f)
}

func ParseCase(r io.Reader) (*Case, error) {
	var c Case
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode case file")
	}
	return &c, nil
}

// 流入風の風向 (度)。wind_direction を優先し、なければ wind のベクトルから求める
func (c *Case) direction() (dir float64, ok bool, err error) {
	if c.WindDirection != nil {
		return *c.WindDirection, true, nil
	}
	if c.Wind == nil {
		return 0, false, nil
	}
	spd, dir := windfield.FromVector(c.Wind.U, c.Wind.V)
	if spd == 0 {
		return 0, false, errors.Wrapf(ErrCalmWind, "wind: {u: %g, v: %g}", c.Wind.U, c.Wind.V)
	}
	return dir, true, nil
}

// 流れ方向・横方向の風車座標
func (c *Case) Layout() (xt, yt []float64, err error) {
	xs := make([]float64, len(c.Turbines))
	ys := make([]float64, len(c.Turbines))
	for i, t := range c.Turbines {
		xs[i] = t.X
		ys[i] = t.Y
	}

	dir, ok, err := c.direction()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return xs, ys, nil
	}
	return windfield.ToStreamwise(xs, ys, dir)
}

// 風速場の設定。u_inf が未指定で wind があればベクトル風速の大きさを使う
func (c *Case) FieldConfig() windfield.Config {
	fc := c.Field
	if fc.UInf == 0 && c.Wind != nil {
		fc.UInf, _ = windfield.FromVector(c.Wind.U, c.Wind.V)
	}
	return fc
}

// ケースを計算して風車ごとの結果を返す
func (c *Case) Run() (*rews.Result, error) {
	sampler, err := c.Sampler.NewSampler()
	if err != nil {
		return nil, err
	}

	xt, yt, err := c.Layout()
	if err != nil {
		return nil, err
	}
	field, err := windfield.New(c.FieldConfig(), xt, yt)
	if err != nil {
		return nil, err
	}

	values, err := rews.Evaluate(sampler, field, xt, yt)
	if err != nil {
		return nil, err
	}

	return rews.NewResult(sampler.Name(), xt, yt, values)
}
