// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pso

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pso/format"
	"github.com/gogpu/pso/handle"
	"github.com/gogpu/pso/shade"
	"github.com/gogpu/pso/state"
)

// RenderTarget is a color target component writing all channels with no
// blending. It typically points at a color-formatted texture view.
//
// A RenderTarget is inactive until LinkOutput matches it against a reflected
// shader output; binding an inactive target is a no-op.
type RenderTarget[F format.ColorFormat] struct {
	name   string
	slot   uint8
	active bool
}

// NewRenderTarget declares a color target bound to the shader output with
// the given name.
func NewRenderTarget[F format.ColorFormat](name string) *RenderTarget[F] {
	return &RenderTarget[F]{name: name}
}

// IsActive reports whether linking assigned the target a color slot.
func (t *RenderTarget[F]) IsActive() bool { return t.active }

// Slot returns the assigned color slot. The second result is false before a
// successful LinkOutput.
func (t *RenderTarget[F]) Slot() (uint8, bool) { return t.slot, t.active }

// LinkOutput matches the declared name against one reflected output. An
// empty reflected name is an anonymous output and matches unconditionally.
// The match is recorded at most once; later offers return nil.
func (t *RenderTarget[F]) LinkOutput(out shade.OutputVar) (*gputypes.ColorTargetState, error) {
	if t.active {
		return nil, nil
	}
	if out.Name != "" && out.Name != t.name {
		return nil, nil
	}
	if int(out.Slot) >= MaxColorTargets {
		return nil, fmt.Errorf("%w: output %q at slot %d", ErrSlotOutOfRange, out.Name, out.Slot)
	}
	t.slot = out.Slot
	t.active = true
	var f F
	return &gputypes.ColorTargetState{
		Format:    f.ColorFormat(),
		WriteMask: gputypes.ColorWriteMaskAll,
	}, nil
}

// BindTo writes the view into the raw set's color slot assigned during
// linking. Inactive targets leave the set untouched.
func (t *RenderTarget[F]) BindTo(set *RawDataSet, data handle.RenderTargetView[F], man *handle.Manager) {
	if !t.active {
		return
	}
	set.PixelTargets.AddColor(t.slot, man.Ref(data.Raw()), data.Dimensions())
}

// BlendTarget is a color target component with an active blending mode.
// Matching and binding behave exactly like RenderTarget; only the
// pipeline-creation descriptor differs, carrying the caller's write mask and
// blend equations instead of the write-all default.
//
// BlendTarget is kept distinct from RenderTarget so the two declarations can
// evolve independently, even though their Bind paths coincide today.
type BlendTarget[F format.BlendFormat] struct {
	name   string
	mask   gputypes.ColorWriteMask
	blend  gputypes.BlendState
	slot   uint8
	active bool
}

// NewBlendTarget declares a blended color target bound to the shader output
// with the given name.
func NewBlendTarget[F format.BlendFormat](name string, mask gputypes.ColorWriteMask, blend gputypes.BlendState) *BlendTarget[F] {
	return &BlendTarget[F]{name: name, mask: mask, blend: blend}
}

// IsActive reports whether linking assigned the target a color slot.
func (t *BlendTarget[F]) IsActive() bool { return t.active }

// Slot returns the assigned color slot. The second result is false before a
// successful LinkOutput.
func (t *BlendTarget[F]) Slot() (uint8, bool) { return t.slot, t.active }

// LinkOutput matches the declared name against one reflected output,
// returning a descriptor carrying the declared write mask and blend state.
func (t *BlendTarget[F]) LinkOutput(out shade.OutputVar) (*gputypes.ColorTargetState, error) {
	if t.active {
		return nil, nil
	}
	if out.Name != "" && out.Name != t.name {
		return nil, nil
	}
	if int(out.Slot) >= MaxColorTargets {
		return nil, fmt.Errorf("%w: output %q at slot %d", ErrSlotOutOfRange, out.Name, out.Slot)
	}
	t.slot = out.Slot
	t.active = true
	var f F
	blend := t.blend
	return &gputypes.ColorTargetState{
		Format:    f.ColorFormat(),
		Blend:     &blend,
		WriteMask: t.mask,
	}, nil
}

// BindTo writes the view into the raw set's color slot assigned during
// linking. Inactive targets leave the set untouched.
func (t *BlendTarget[F]) BindTo(set *RawDataSet, data handle.RenderTargetView[F], man *handle.Manager) {
	if !t.active {
		return
	}
	set.PixelTargets.AddColor(t.slot, man.Ref(data.Raw()), data.Dimensions())
}

// DepthTarget is a depth attachment component. Depth targets are not named
// shader outputs, so linking ignores reflection entirely and the component
// is always active.
type DepthTarget[F format.DepthFormat] struct {
	depth state.Depth
}

// NewDepthTarget declares a depth target with the given depth test state.
func NewDepthTarget[F format.DepthFormat](d state.Depth) *DepthTarget[F] {
	return &DepthTarget[F]{depth: d}
}

// IsActive always reports true.
func (t *DepthTarget[F]) IsActive() bool { return true }

// LinkDepthStencil returns the depth-stencil descriptor with the stencil
// unit inert.
func (t *DepthTarget[F]) LinkDepthStencil() hal.DepthStencilState {
	var f F
	inert := state.StencilAlwaysKeep()
	return hal.DepthStencilState{
		Format:            f.DepthStencilFormat(),
		DepthWriteEnabled: t.depth.Write,
		DepthCompare:      t.depth.Fun,
		StencilFront:      inert.Front.FaceState(),
		StencilBack:       inert.Back.FaceState(),
		StencilReadMask:   inert.ReadMask,
		StencilWriteMask:  inert.WriteMask,
	}
}

// BindTo writes the view into the raw set's depth-stencil slot, marking
// only the depth aspect in use.
func (t *DepthTarget[F]) BindTo(set *RawDataSet, data handle.DepthStencilView[F], man *handle.Manager) {
	set.PixelTargets.AddDepthStencil(man.Ref(data.Raw()), true, false, data.Dimensions())
}

// StencilRefs carries the per-draw stencil reference values for the front
// and back faces.
type StencilRefs struct {
	Front uint32
	Back  uint32
}

// StencilTarget is a stencil attachment component. Always active; linking
// ignores reflection.
type StencilTarget[F format.StencilFormat] struct {
	stencil state.Stencil
}

// NewStencilTarget declares a stencil target with the given stencil test
// state.
func NewStencilTarget[F format.StencilFormat](s state.Stencil) *StencilTarget[F] {
	return &StencilTarget[F]{stencil: s}
}

// IsActive always reports true.
func (t *StencilTarget[F]) IsActive() bool { return true }

// LinkDepthStencil returns the depth-stencil descriptor with the depth unit
// inert.
func (t *StencilTarget[F]) LinkDepthStencil() hal.DepthStencilState {
	var f F
	depth := state.DepthDisabled()
	return hal.DepthStencilState{
		Format:            f.DepthStencilFormat(),
		DepthWriteEnabled: depth.Write,
		DepthCompare:      depth.Fun,
		StencilFront:      t.stencil.Front.FaceState(),
		StencilBack:       t.stencil.Back.FaceState(),
		StencilReadMask:   t.stencil.ReadMask,
		StencilWriteMask:  t.stencil.WriteMask,
	}
}

// BindTo writes the view into the raw set's depth-stencil slot, marking only
// the stencil aspect in use, and records the stencil reference values.
func (t *StencilTarget[F]) BindTo(set *RawDataSet, data handle.DepthStencilView[F], refs StencilRefs, man *handle.Manager) {
	set.PixelTargets.AddDepthStencil(man.Ref(data.Raw()), false, true, data.Dimensions())
	set.RefValues.Stencil = [2]uint32{refs.Front, refs.Back}
}

// DepthStencilTarget is a combined depth + stencil attachment component.
// Always active; linking ignores reflection.
type DepthStencilTarget[F format.DepthStencilFormat] struct {
	depth   state.Depth
	stencil state.Stencil
}

// NewDepthStencilTarget declares a combined target with the given depth and
// stencil test states.
func NewDepthStencilTarget[F format.DepthStencilFormat](d state.Depth, s state.Stencil) *DepthStencilTarget[F] {
	return &DepthStencilTarget[F]{depth: d, stencil: s}
}

// IsActive always reports true.
func (t *DepthStencilTarget[F]) IsActive() bool { return true }

// LinkDepthStencil returns the descriptor combining both test states.
func (t *DepthStencilTarget[F]) LinkDepthStencil() hal.DepthStencilState {
	var f F
	return hal.DepthStencilState{
		Format:            f.DepthStencilFormat(),
		DepthWriteEnabled: t.depth.Write,
		DepthCompare:      t.depth.Fun,
		StencilFront:      t.stencil.Front.FaceState(),
		StencilBack:       t.stencil.Back.FaceState(),
		StencilReadMask:   t.stencil.ReadMask,
		StencilWriteMask:  t.stencil.WriteMask,
	}
}

// BindTo writes the view into the raw set's depth-stencil slot with both
// aspects in use, and records the stencil reference values.
func (t *DepthStencilTarget[F]) BindTo(set *RawDataSet, data handle.DepthStencilView[F], refs StencilRefs, man *handle.Manager) {
	set.PixelTargets.AddDepthStencil(man.Ref(data.Raw()), true, true, data.Dimensions())
	set.RefValues.Stencil = [2]uint32{refs.Front, refs.Back}
}

// Scissor is the scissor test component. It is inactive by default; the
// aggregator activates it via LinkScissor when the pipeline requests scissor
// testing. Calling BindTo on an inactive Scissor is a no-op and leaves every
// other field of the raw set untouched.
type Scissor struct {
	active bool
}

// NewScissor declares an inactive scissor component.
func NewScissor() *Scissor {
	return &Scissor{}
}

// IsActive reports whether LinkScissor has been called.
func (s *Scissor) IsActive() bool { return s.active }

// LinkScissor activates the scissor slot. It has no reflection dependency
// and produces no descriptor. The return value is always true and exists so
// the aggregator can treat it like the other link operations.
func (s *Scissor) LinkScissor() bool {
	s.active = true
	return true
}

// BindTo overwrites the raw set's scissor rectangle verbatim. No clamping or
// validation happens at this layer.
func (s *Scissor) BindTo(set *RawDataSet, rect Rect) {
	if !s.active {
		return
	}
	set.Scissor = rect
}

// BlendRef is the blend reference color component. It is always active and
// takes no part in linking.
type BlendRef struct{}

// NewBlendRef declares a blend reference component.
func NewBlendRef() *BlendRef {
	return &BlendRef{}
}

// IsActive always reports true.
func (BlendRef) IsActive() bool { return true }

// BindTo overwrites the raw set's blend reference color.
func (BlendRef) BindTo(set *RawDataSet, color gputypes.Color) {
	set.RefValues.Blend = color
}

// Interface conformance checks.
var (
	_ OutputLinker       = (*RenderTarget[format.Rgba8])(nil)
	_ OutputLinker       = (*BlendTarget[format.Rgba8])(nil)
	_ DepthStencilLinker = (*DepthTarget[format.Depth32F])(nil)
	_ DepthStencilLinker = (*StencilTarget[format.Stencil8])(nil)
	_ DepthStencilLinker = (*DepthStencilTarget[format.Depth24Stencil8])(nil)
	_ Component          = (*Scissor)(nil)
	_ Component          = BlendRef{}
)
