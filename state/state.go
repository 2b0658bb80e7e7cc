// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package state declares the fixed-function depth and stencil test state
// supplied to pipeline components at pipeline-creation time.
//
// The types here are plain data. Components translate them into the
// hal.DepthStencilState fragment of a render pipeline descriptor during Link.
package state

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Depth describes the depth test for a pipeline.
type Depth struct {
	// Fun is the comparison applied between the incoming fragment depth
	// and the stored depth value.
	Fun gputypes.CompareFunction

	// Write enables writing the passing fragment's depth to the buffer.
	Write bool
}

// DepthDisabled returns a depth state that passes every fragment and never
// writes the depth buffer.
func DepthDisabled() Depth {
	return Depth{Fun: gputypes.CompareFunctionAlways, Write: false}
}

// StencilSide describes the stencil test for one face orientation.
type StencilSide struct {
	// Fun is the comparison applied between the reference value and the
	// stored stencil value.
	Fun gputypes.CompareFunction

	// FailOp is applied when the stencil test fails.
	FailOp hal.StencilOperation

	// DepthFailOp is applied when the stencil test passes but the depth
	// test fails.
	DepthFailOp hal.StencilOperation

	// PassOp is applied when both the stencil and depth tests pass.
	PassOp hal.StencilOperation
}

// FaceState converts the side into the hal per-face stencil state.
func (s StencilSide) FaceState() hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     s.Fun,
		FailOp:      s.FailOp,
		DepthFailOp: s.DepthFailOp,
		PassOp:      s.PassOp,
	}
}

// Stencil describes the stencil test for both face orientations.
//
// ReadMask and WriteMask are shared between the front and back faces,
// matching the WebGPU depth-stencil state layout.
type Stencil struct {
	Front StencilSide
	Back  StencilSide

	ReadMask  uint32
	WriteMask uint32
}

// StencilAlwaysKeep returns a stencil state that passes every fragment and
// leaves the stencil buffer untouched.
func StencilAlwaysKeep() Stencil {
	side := StencilSide{
		Fun:         gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
	return Stencil{
		Front:     side,
		Back:      side,
		ReadMask:  0xFF,
		WriteMask: 0xFF,
	}
}
