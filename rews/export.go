package rews

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// 風車ごとの計算結果
type Result struct {
	Method string      `yaml:"method"`
	Rows   []ResultRow `yaml:"turbines"`
}

type ResultRow struct {
	X    float64 `yaml:"x"`    //流れ方向座標
	Y    float64 `yaml:"y"`    //横方向座標
	REWS float64 `yaml:"rews"` //ロータ等価風速
}

// 風車位置と積分結果から Result を作成する
func NewResult(method string, xt, yt, rews []float64) (*Result, error) {
	if len(xt) != len(yt) || len(xt) != len(rews) {
		return nil, errors.Wrapf(ErrLengthMismatch, "x=%d, y=%d, rews=%d", len(xt), len(yt), len(rews))
	}

	res := &Result{Method: method, Rows: make([]ResultRow, len(xt))}
	for i := range xt {
		res.Rows[i] = ResultRow{X: xt[i], Y: yt[i], REWS: rews[i]}
	}
	return res, nil
}

// CSV形式
func (res *Result) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("turbine,x,y,rews\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i, row := range res.Rows {
		buf.WriteString(strconv.Itoa(i))
		writeFloat(row.X)
		writeFloat(row.Y)
		writeFloat(row.REWS)
		buf.WriteString("\n")
	}
}

// YAML形式
func (res *Result) ToYAML(buf *bytes.Buffer) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return errors.Wrap(err, "rews: encode result")
	}
	return enc.Close()
}
