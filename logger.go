// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pso

import (
	"log/slog"

	"github.com/gogpu/pso/internal/logging"
)

// SetLogger configures the logger for pso and all its sub-packages.
// By default, pso produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by pso:
//   - [slog.LevelDebug]: reflection summaries and link decisions
//
// The Bind path never logs; it runs once per draw call.
//
// Example:
//
//	pso.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by pso. Sub-packages share the
// same logger configuration through the internal logging package.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
