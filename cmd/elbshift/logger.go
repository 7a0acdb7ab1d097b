// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger creates the process logger. When stderr is a terminal it
// uses slog.TextHandler for human-readable output; when stderr is
// piped or redirected (CI, cron) it uses slog.JSONHandler for
// machine-parseable records. Verbose lowers the level to debug, which
// adds per-request API timing and per-round poll status.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

// newRunID creates a random 8-byte hex token attached to every log
// line of one invocation, so interleaved runs feeding the same log
// collector stay separable.
func newRunID() (string, error) {
	var buffer [8]byte
	if _, err := rand.Read(buffer[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buffer[:]), nil
}
