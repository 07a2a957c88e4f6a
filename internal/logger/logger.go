// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger holds the debug logger of the qrhex command.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the logger.  It discards everything until Init enables it.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Enabled bool      // if false, all output is discarded
	File    string    // log file, appended to; "" for W
	W       io.Writer // destination if File is ""; nil for standard error
}

// Init configures L.  It returns a function closing the log file.
func Init(opts Options) (func() error, error) {
	nop := func() error { return nil }
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nop, nil
	}
	hopts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if opts.File == "" {
		w := opts.W
		if w == nil {
			w = os.Stderr
		}
		L = slog.New(slog.NewTextHandler(w, hopts))
		return nop, nil
	}
	f, err := os.OpenFile(opts.File,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nop, err
	}
	L = slog.New(slog.NewJSONHandler(f, hopts))
	return f.Close, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Warn logs a warning with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
