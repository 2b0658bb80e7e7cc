// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pso

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pso/shade"
)

// Linking errors.
var (
	// ErrFormatMismatch is returned when a declared compile-time format and
	// the format reported by the capability lookup disagree. Components in
	// this package resolve formats from their own tags, so they never
	// produce it themselves; it is part of the Link contract for custom
	// components whose format comes from elsewhere.
	ErrFormatMismatch = errors.New("pso: declared and resolved formats disagree")

	// ErrSlotOutOfRange is returned when shader reflection assigns an
	// output to a slot beyond MaxColorTargets.
	ErrSlotOutOfRange = errors.New("pso: color slot out of range")
)

// Component is the behavior shared by every pipeline slot component.
//
// A component starts inactive (or unconditionally active, for variants with
// no match state) and is activated at most once during the Link phase.
// Activity never changes afterwards: Bind reads it, nothing rewrites it.
type Component interface {
	// IsActive reports whether the component took part in linking and will
	// transcribe data during Bind.
	IsActive() bool
}

// OutputLinker is implemented by components that are matched against
// reflected fragment output variables: the color target variants.
//
// The aggregator calls LinkOutput once per reflected output. A nil
// descriptor with nil error means "no match here"; the aggregator decides
// whether an ultimately unmatched component is an error.
type OutputLinker interface {
	Component

	// LinkOutput offers one reflected output variable to the component.
	// On a match it records the slot and returns the color target
	// descriptor for the pipeline; otherwise it returns nil. A component
	// matches at most once; offers after a match return nil.
	LinkOutput(out shade.OutputVar) (*gputypes.ColorTargetState, error)
}

// DepthStencilLinker is implemented by the always-active depth and stencil
// target variants. Linking needs no reflection data: depth and stencil
// attachments are not named shader outputs.
type DepthStencilLinker interface {
	Component

	// LinkDepthStencil returns the depth-stencil descriptor fragment built
	// from the state supplied at construction.
	LinkDepthStencil() hal.DepthStencilState
}
