// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu hands a bound pso.RawDataSet over to the wgpu hardware
// abstraction layer.
//
// The raw data set itself is backend-neutral; this package performs the last
// translation step for wgpu-based backends: assembling the render pass
// attachment descriptor from the set's pixel targets, and writing the
// per-draw dynamic state (scissor, blend constant, stencil reference) into a
// recording render pass.
package wgpu
