// Package logging builds the zap loggers the frontends share.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the level and destination. Path defaults to stderr; the
// terminal frontend points it at a file because the screen owns stderr.
type Options struct {
	Verbose bool
	Path    string
	JSON    bool
}

func New(opts Options) (*zap.Logger, error) {
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}
	output := "stderr"
	if opts.Path != "" {
		output = opts.Path
	}
	encoding := "console"
	encoder := zap.NewDevelopmentEncoderConfig()
	if opts.JSON {
		encoding = "json"
		encoder = zap.NewProductionEncoderConfig()
	}
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
		DisableCaller:    true,
	}
	return config.Build()
}
