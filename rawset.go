// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pso

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pso/handle"
)

// MaxColorTargets is the number of addressable color attachment slots,
// matching the WebGPU limit of eight color attachments per render pass.
const MaxColorTargets = 8

// ColorEntry is one resolved color attachment binding.
type ColorEntry struct {
	View       handle.Ref
	Dimensions gputypes.Extent3D
}

// DepthStencilEntry is the resolved depth/stencil attachment binding.
// Depth and Stencil record which aspects of the view the pipeline uses.
type DepthStencilEntry struct {
	View       handle.Ref
	Depth      bool
	Stencil    bool
	Dimensions gputypes.Extent3D
}

// PixelTargetSet aggregates the attachment bindings of one draw call.
type PixelTargetSet struct {
	// Colors maps slot index to binding; unused slots are nil.
	Colors [MaxColorTargets]*ColorEntry

	// DepthStencil is the single depth/stencil binding, nil when absent.
	DepthStencil *DepthStencilEntry
}

// AddColor records the binding for one color slot, overwriting any previous
// binding at that slot. Slots beyond MaxColorTargets are ignored; linking
// already rejects them with ErrSlotOutOfRange.
func (s *PixelTargetSet) AddColor(slot uint8, view handle.Ref, dim gputypes.Extent3D) {
	if int(slot) >= MaxColorTargets {
		return
	}
	s.Colors[slot] = &ColorEntry{View: view, Dimensions: dim}
}

// AddDepthStencil records the depth/stencil binding, overwriting any
// previous one.
func (s *PixelTargetSet) AddDepthStencil(view handle.Ref, depth, stencil bool, dim gputypes.Extent3D) {
	s.DepthStencil = &DepthStencilEntry{
		View:       view,
		Depth:      depth,
		Stencil:    stencil,
		Dimensions: dim,
	}
}

// Rect is a pixel-space rectangle, as consumed by a render pass scissor.
type Rect struct {
	X, Y uint32
	W, H uint32
}

// RefValues holds the per-draw reference values consumed by the blend and
// stencil units.
type RefValues struct {
	// Blend is the constant color used by constant blend factors.
	Blend gputypes.Color

	// Stencil holds the front and back face reference values, in that
	// order.
	Stencil [2]uint32
}

// RawDataSet is the backend-neutral aggregate of resolved resource bindings
// and reference values for one draw call.
//
// The aggregator owns the set and passes it by pointer through each
// component's BindTo in a fixed order. Components only overwrite fields, so
// repeating a Bind sequence with the same data leaves the set unchanged.
// A RawDataSet must not be mutated from more than one goroutine at a time;
// distinct sets are fully independent.
type RawDataSet struct {
	PixelTargets PixelTargetSet
	Scissor      Rect
	RefValues    RefValues
}

// Reset returns the set to its zero state so it can be reused for the next
// draw call without reallocating.
func (s *RawDataSet) Reset() {
	*s = RawDataSet{}
}
