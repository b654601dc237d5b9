package rews

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// サンプリング方式名
const (
	MethodPoint = "point"
	MethodLine  = "line"
	MethodArea  = "area"
)

// サンプリング方式と離散化数の設定。0 の項目は既定値を使う。
type Config struct {
	Method    string `yaml:"method"`
	Disc      int    `yaml:"disc,omitempty"`       //Line の分割数
	RDisc     int    `yaml:"r_disc,omitempty"`     //Area の半径方向分割数
	ThetaDisc int    `yaml:"theta_disc,omitempty"` //Area の周方向分割数
}

// YAML から Config を読み込む
func ParseConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, errors.Wrap(err, "rews: decode sampler config")
	}
	return c, nil
}

// 設定に従って Sampler を作成する
func (c Config) NewSampler() (Sampler, error) {
	switch strings.ToLower(c.Method) {
	case MethodPoint:
		return NewPoint(), nil
	case MethodLine:
		disc := c.Disc
		if disc == 0 {
			disc = DefaultLineDisc
		}
		return NewLine(disc)
	case "", MethodArea:
		rDisc, thetaDisc := c.RDisc, c.ThetaDisc
		if rDisc == 0 {
			rDisc = DefaultRDisc
		}
		if thetaDisc == 0 {
			thetaDisc = DefaultThetaDisc
		}
		return NewArea(rDisc, thetaDisc)
	}
	return nil, errors.Wrapf(ErrUnknownMethod, "%q", c.Method)
}
