package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/you-not-fish/sjavac/internal/config"
)

// newLogger builds the diagnostic logger writing to w.
// The json format uses the production encoder, console the development one.
func newLogger(cfg *config.Config, w io.Writer) *zap.Logger {
	var enc zapcore.Encoder
	switch cfg.Log.Format {
	case config.LogJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	// Files are verified concurrently; serialize writes.
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), cfg.ZapLevel())
	return zap.New(core).Named("sjavac")
}
