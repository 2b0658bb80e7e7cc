// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pso"
)

// PassConfig controls how attachments from a raw data set are loaded and
// stored by the render pass.
type PassConfig struct {
	// Label is the debug name for the pass.
	Label string

	// LoadOp and StoreOp apply to every color attachment.
	LoadOp  gputypes.LoadOp
	StoreOp gputypes.StoreOp

	// ClearColor is the clear value used when LoadOp is LoadOpClear.
	ClearColor gputypes.Color

	// DepthClearValue is the depth clear value, used when the depth aspect
	// is in use and loaded with LoadOpClear.
	DepthClearValue float32

	// StencilClearValue is the stencil clear value, used when the stencil
	// aspect is in use and loaded with LoadOpClear.
	StencilClearValue uint32
}

// DefaultPassConfig returns the common clear-then-store configuration:
// attachments cleared on load (depth to 1.0, stencil to 0) and stored.
func DefaultPassConfig(label string) PassConfig {
	return PassConfig{
		Label:           label,
		LoadOp:          gputypes.LoadOpClear,
		StoreOp:         gputypes.StoreOpStore,
		DepthClearValue: 1.0,
	}
}

// PassDescriptor assembles a hal render pass descriptor from the attachments
// bound in set.
//
// Color attachments are emitted in slot order. The aggregator is expected to
// have linked a dense slot range; empty slots below a used one are skipped,
// which only matches the pipeline layout when the range is dense.
//
// Aspects of the depth-stencil attachment that the pipeline does not use are
// loaded and stored unchanged.
func PassDescriptor(cfg PassConfig, set *pso.RawDataSet) *hal.RenderPassDescriptor {
	desc := &hal.RenderPassDescriptor{Label: cfg.Label}

	for slot := 0; slot < pso.MaxColorTargets; slot++ {
		entry := set.PixelTargets.Colors[slot]
		if entry == nil {
			continue
		}
		desc.ColorAttachments = append(desc.ColorAttachments, hal.RenderPassColorAttachment{
			View:       entry.View.Raw(),
			LoadOp:     cfg.LoadOp,
			StoreOp:    cfg.StoreOp,
			ClearValue: cfg.ClearColor,
		})
	}

	if ds := set.PixelTargets.DepthStencil; ds != nil {
		att := &hal.RenderPassDepthStencilAttachment{
			View:           ds.View.Raw(),
			DepthLoadOp:    gputypes.LoadOpLoad,
			DepthStoreOp:   gputypes.StoreOpStore,
			StencilLoadOp:  gputypes.LoadOpLoad,
			StencilStoreOp: gputypes.StoreOpStore,
		}
		if ds.Depth {
			att.DepthLoadOp = cfg.LoadOp
			att.DepthStoreOp = cfg.StoreOp
			att.DepthClearValue = cfg.DepthClearValue
		}
		if ds.Stencil {
			att.StencilLoadOp = cfg.LoadOp
			att.StencilStoreOp = cfg.StoreOp
			att.StencilClearValue = cfg.StencilClearValue
		}
		desc.DepthStencilAttachment = att
	}

	return desc
}

// PassEncoder is the slice of a render pass encoder that receives per-draw
// dynamic state. hal render pass encoders satisfy it.
type PassEncoder interface {
	SetScissorRect(x, y, width, height uint32)
	SetBlendConstant(color *gputypes.Color)
	SetStencilReference(reference uint32)
}

// Apply writes the per-draw dynamic state of set into a recording render
// pass: the scissor rectangle (skipped when empty, leaving the pass
// default), the blend constant color, and the stencil reference.
//
// WebGPU exposes a single stencil reference for both faces; the front
// reference value from the set is used.
func Apply(rp PassEncoder, set *pso.RawDataSet) {
	if sc := set.Scissor; sc.W != 0 && sc.H != 0 {
		rp.SetScissorRect(sc.X, sc.Y, sc.W, sc.H)
	}
	blend := set.RefValues.Blend
	rp.SetBlendConstant(&blend)
	rp.SetStencilReference(set.RefValues.Stencil[0])
}
