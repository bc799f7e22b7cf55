// SPDX-License-Identifier: MIT

package main

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger on stderr. Each -v lowers the zap level
// by one, which zapr maps onto logr's V(n).
func newLogger(verbosity int) (logr.Logger, func(), error) {
	if verbosity <= 0 {
		return logr.Discard(), func() {}, nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		return logr.Logger{}, nil, err
	}

	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}
