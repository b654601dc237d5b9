// rews: ロータ等価風速の計算
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("rews", "Computes the rotor-equivalent wind speed of each turbine")

	config := parser.String("c", "config", &argparse.Options{
		Required: true,
		Help:     "計算ケースの設定ファイル (YAML)"})

	method := parser.Selector("", "method", []string{"point", "line", "area"}, &argparse.Options{
		Help: "サンプリング方式 (設定ファイルの値を上書き)"})

	disc := parser.Int("", "disc", &argparse.Options{
		Default: 0,
		Help:    "line: 直径方向の分割数"})

	rDisc := parser.Int("", "r_disc", &argparse.Options{
		Default: 0,
		Help:    "area: 半径方向の分割数"})

	thetaDisc := parser.Int("", "theta_disc", &argparse.Options{
		Default: 0,
		Help:    "area: 周方向の分割数"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	format := parser.Selector("f", "file", []string{"CSV", "YAML"}, &argparse.Options{
		Default: "CSV",
		Help:    "出力形式 CSV or YAML"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "INFO",
		Help:    "ログレベル"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// ログレベル設定
	logger := logging.GetLogger("rews")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}
	defer logging.Shutdown()

	c, err := LoadCase(*config)
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}

	// コマンドライン引数による上書き
	if *method != "" {
		c.Sampler.Method = *method
	}
	if *disc > 0 {
		c.Sampler.Disc = *disc
	}
	if *rDisc > 0 {
		c.Sampler.RDisc = *rDisc
	}
	if *thetaDisc > 0 {
		c.Sampler.ThetaDisc = *thetaDisc
	}

	logger.Infof("REWS計算: %s, 風車%d台", *config, len(c.Turbines))
	res, err := c.Run()
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *format == "CSV" {
		res.ToCSV(buf)
	} else if *format == "YAML" {
		if err := res.ToYAML(buf); err != nil {
			logger.Errorf("%+v", err)
			os.Exit(1)
		}
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), 0644)
		if err != nil {
			panic(err)
		}
	}

	logger.Infof("計算が終了しました")
}
