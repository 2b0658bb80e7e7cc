// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package logging holds the shared logger for pso and its sub-packages.
// It lives in an internal package so that both the root package and the
// leaf packages can reach it without import cycles.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNopLogger creates a logger that silently discards all output.
func NewNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that Set can
// be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := NewNopLogger()
	loggerPtr.Store(l)
}

// Set stores the active logger. Passing nil restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
