// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shade

import (
	"log/slog"

	"github.com/gogpu/pso/internal/logging"
)

// logger returns the module-wide logger configured via pso.SetLogger.
func logger() *slog.Logger { return logging.Logger() }
