// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pso

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pso/format"
	"github.com/gogpu/pso/handle"
	"github.com/gogpu/pso/shade"
	"github.com/gogpu/pso/state"
)

// fakeView is a test double for hal.TextureView.
type fakeView struct {
	id int
}

func (v *fakeView) Destroy()              {}
func (v *fakeView) NativeHandle() uintptr { return uintptr(v.id) }

func rtView(v hal.TextureView, w, h uint32) handle.RenderTargetView[format.Rgba8] {
	return handle.NewRenderTargetView[format.Rgba8](v, w, h)
}

func TestRenderTargetLinkByName(t *testing.T) {
	target := NewRenderTarget[format.Rgba8]("out_color")
	if target.IsActive() {
		t.Fatal("IsActive() = true before linking")
	}

	desc, err := target.LinkOutput(shade.OutputVar{Name: "out_color", Slot: 3})
	if err != nil {
		t.Fatalf("LinkOutput() error = %v", err)
	}
	if desc == nil {
		t.Fatal("LinkOutput() = nil, want descriptor")
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("desc.Format = %v, want %v", desc.Format, gputypes.TextureFormatRGBA8Unorm)
	}
	if desc.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("desc.WriteMask = %v, want %v", desc.WriteMask, gputypes.ColorWriteMaskAll)
	}
	if desc.Blend != nil {
		t.Errorf("desc.Blend = %v, want nil", desc.Blend)
	}
	if !target.IsActive() {
		t.Error("IsActive() = false after match")
	}
	if slot, ok := target.Slot(); !ok || slot != 3 {
		t.Errorf("Slot() = %d, %v, want 3, true", slot, ok)
	}
}

func TestRenderTargetLinkWildcard(t *testing.T) {
	// An anonymous reflected output matches any declared name.
	for _, name := range []string{"out_color", "whatever", ""} {
		target := NewRenderTarget[format.Rgba8](name)
		desc, err := target.LinkOutput(shade.OutputVar{Name: "", Slot: 0})
		if err != nil {
			t.Fatalf("declared %q: LinkOutput() error = %v", name, err)
		}
		if desc == nil {
			t.Fatalf("declared %q: LinkOutput() = nil, want wildcard match", name)
		}
		if !target.IsActive() {
			t.Errorf("declared %q: IsActive() = false after wildcard match", name)
		}
	}
}

func TestRenderTargetLinkNoMatch(t *testing.T) {
	target := NewRenderTarget[format.Rgba8]("out_color")
	desc, err := target.LinkOutput(shade.OutputVar{Name: "other", Slot: 0})
	if err != nil {
		t.Fatalf("LinkOutput() error = %v", err)
	}
	if desc != nil {
		t.Fatalf("LinkOutput() = %+v, want nil for name mismatch", desc)
	}
	if target.IsActive() {
		t.Error("IsActive() = true without a match")
	}

	// Bind on an unmatched target must leave the color mapping unchanged.
	var set RawDataSet
	man := handle.NewManager()
	target.BindTo(&set, rtView(&fakeView{id: 1}, 64, 64), man)
	for slot, entry := range set.PixelTargets.Colors {
		if entry != nil {
			t.Errorf("Colors[%d] = %+v, want nil after inactive bind", slot, entry)
		}
	}
	if man.Len() != 0 {
		t.Errorf("manager Len() = %d, want 0 after inactive bind", man.Len())
	}
}

func TestRenderTargetLinkOnce(t *testing.T) {
	target := NewRenderTarget[format.Rgba8]("out_color")
	if desc, _ := target.LinkOutput(shade.OutputVar{Name: "out_color", Slot: 1}); desc == nil {
		t.Fatal("first LinkOutput() = nil, want descriptor")
	}
	// Match state is set exactly once; later offers are rejected.
	if desc, _ := target.LinkOutput(shade.OutputVar{Name: "out_color", Slot: 5}); desc != nil {
		t.Fatalf("second LinkOutput() = %+v, want nil", desc)
	}
	if slot, _ := target.Slot(); slot != 1 {
		t.Errorf("Slot() = %d, want 1 (first match wins)", slot)
	}
}

func TestRenderTargetLinkSlotOutOfRange(t *testing.T) {
	target := NewRenderTarget[format.Rgba8]("out_color")
	_, err := target.LinkOutput(shade.OutputVar{Name: "out_color", Slot: MaxColorTargets})
	if !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("LinkOutput() error = %v, want ErrSlotOutOfRange", err)
	}
	if target.IsActive() {
		t.Error("IsActive() = true after failed link")
	}
}

func TestRenderTargetEndToEnd(t *testing.T) {
	// Reflection list [{"out_color", 0}], declared name "out_color":
	// link yields slot 0, bind yields {0: (ref, 256x256)}.
	target := NewRenderTarget[format.Rgba8]("out_color")
	outs := []shade.OutputVar{{Name: "out_color", Slot: 0}}

	var desc *gputypes.ColorTargetState
	for _, out := range outs {
		d, err := target.LinkOutput(out)
		if err != nil {
			t.Fatalf("LinkOutput() error = %v", err)
		}
		if d != nil {
			desc = d
		}
	}
	if desc == nil {
		t.Fatal("no descriptor produced")
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm || desc.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("desc = {%v %v}, want {RGBA8Unorm All}", desc.Format, desc.WriteMask)
	}

	var set RawDataSet
	man := handle.NewManager()
	view := &fakeView{id: 7}
	target.BindTo(&set, rtView(view, 256, 256), man)

	entry := set.PixelTargets.Colors[0]
	if entry == nil {
		t.Fatal("Colors[0] = nil after bind")
	}
	if entry.View.Raw() != hal.TextureView(view) {
		t.Error("Colors[0].View does not reference the bound view")
	}
	if entry.Dimensions.Width != 256 || entry.Dimensions.Height != 256 {
		t.Errorf("Colors[0].Dimensions = %dx%d, want 256x256",
			entry.Dimensions.Width, entry.Dimensions.Height)
	}
	if man.Len() != 1 {
		t.Errorf("manager Len() = %d, want 1", man.Len())
	}
}

func TestRenderTargetBindIdempotent(t *testing.T) {
	target := NewRenderTarget[format.Rgba8]("out_color")
	if desc, _ := target.LinkOutput(shade.OutputVar{Name: "out_color", Slot: 2}); desc == nil {
		t.Fatal("LinkOutput() = nil, want descriptor")
	}

	var set RawDataSet
	man := handle.NewManager()
	view := rtView(&fakeView{id: 1}, 128, 128)

	target.BindTo(&set, view, man)
	first := *set.PixelTargets.Colors[2]
	target.BindTo(&set, view, man)
	second := *set.PixelTargets.Colors[2]

	if first != second {
		t.Errorf("repeated bind changed entry: %+v vs %+v", first, second)
	}
	if man.Len() != 1 {
		t.Errorf("manager Len() = %d, want 1 (dedup)", man.Len())
	}
	for slot, entry := range set.PixelTargets.Colors {
		if slot != 2 && entry != nil {
			t.Errorf("Colors[%d] = %+v, want nil", slot, entry)
		}
	}
}

func TestBlendTargetLink(t *testing.T) {
	blend := gputypes.BlendStatePremultiplied()
	target := NewBlendTarget[format.Bgra8]("out_color", gputypes.ColorWriteMaskAll, blend)

	desc, err := target.LinkOutput(shade.OutputVar{Name: "out_color", Slot: 0})
	if err != nil {
		t.Fatalf("LinkOutput() error = %v", err)
	}
	if desc == nil {
		t.Fatal("LinkOutput() = nil, want descriptor")
	}
	if desc.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("desc.Format = %v, want %v", desc.Format, gputypes.TextureFormatBGRA8Unorm)
	}
	if desc.Blend == nil {
		t.Fatal("desc.Blend = nil, want the declared blend state")
	}
	if *desc.Blend != blend {
		t.Errorf("desc.Blend = %+v, want %+v", *desc.Blend, blend)
	}
}

func TestBlendTargetBindMatchesRenderTarget(t *testing.T) {
	target := NewBlendTarget[format.Rgba8]("c", gputypes.ColorWriteMaskAll, gputypes.BlendStatePremultiplied())
	if desc, _ := target.LinkOutput(shade.OutputVar{Name: "c", Slot: 1}); desc == nil {
		t.Fatal("LinkOutput() = nil, want descriptor")
	}

	var set RawDataSet
	man := handle.NewManager()
	view := &fakeView{id: 3}
	target.BindTo(&set, rtView(view, 32, 16), man)

	entry := set.PixelTargets.Colors[1]
	if entry == nil {
		t.Fatal("Colors[1] = nil after bind")
	}
	if entry.Dimensions.Width != 32 || entry.Dimensions.Height != 16 {
		t.Errorf("Dimensions = %dx%d, want 32x16", entry.Dimensions.Width, entry.Dimensions.Height)
	}
}

func TestDepthTargetAlwaysActive(t *testing.T) {
	target := NewDepthTarget[format.Depth32F](state.Depth{
		Fun:   gputypes.CompareFunctionLess,
		Write: true,
	})
	if !target.IsActive() {
		t.Fatal("IsActive() = false, depth targets are unconditionally active")
	}

	desc := target.LinkDepthStencil()
	if desc.Format != gputypes.TextureFormatDepth32Float {
		t.Errorf("Format = %v, want %v", desc.Format, gputypes.TextureFormatDepth32Float)
	}
	if !desc.DepthWriteEnabled {
		t.Error("DepthWriteEnabled = false, want true")
	}
	if desc.DepthCompare != gputypes.CompareFunctionLess {
		t.Errorf("DepthCompare = %v, want Less", desc.DepthCompare)
	}
	// Stencil unit must be inert.
	if desc.StencilFront.Compare != gputypes.CompareFunctionAlways ||
		desc.StencilFront.PassOp != hal.StencilOperationKeep {
		t.Errorf("StencilFront = %+v, want inert", desc.StencilFront)
	}
}

func TestDepthTargetBind(t *testing.T) {
	target := NewDepthTarget[format.Depth32F](state.Depth{Fun: gputypes.CompareFunctionLess, Write: true})

	var set RawDataSet
	man := handle.NewManager()
	view := &fakeView{id: 9}
	target.BindTo(&set, handle.NewDepthStencilView[format.Depth32F](view, 800, 600), man)

	ds := set.PixelTargets.DepthStencil
	if ds == nil {
		t.Fatal("DepthStencil = nil after bind")
	}
	if !ds.Depth || ds.Stencil {
		t.Errorf("aspects = (depth=%v, stencil=%v), want (true, false)", ds.Depth, ds.Stencil)
	}
	if ds.Dimensions.Width != 800 || ds.Dimensions.Height != 600 {
		t.Errorf("Dimensions = %dx%d, want 800x600", ds.Dimensions.Width, ds.Dimensions.Height)
	}
}

func TestStencilTargetEndToEnd(t *testing.T) {
	// Stencil link with {compare=Always, op=Keep} yields a depth-inert
	// descriptor; bind with refs (1, 2) records the reference pair.
	target := NewStencilTarget[format.Stencil8](state.StencilAlwaysKeep())
	if !target.IsActive() {
		t.Fatal("IsActive() = false, stencil targets are unconditionally active")
	}

	desc := target.LinkDepthStencil()
	if desc.Format != gputypes.TextureFormatStencil8 {
		t.Errorf("Format = %v, want %v", desc.Format, gputypes.TextureFormatStencil8)
	}
	if desc.DepthWriteEnabled {
		t.Error("DepthWriteEnabled = true, want inert depth")
	}
	if desc.DepthCompare != gputypes.CompareFunctionAlways {
		t.Errorf("DepthCompare = %v, want Always", desc.DepthCompare)
	}
	if desc.StencilFront.Compare != gputypes.CompareFunctionAlways ||
		desc.StencilFront.FailOp != hal.StencilOperationKeep {
		t.Errorf("StencilFront = %+v, want {Always Keep Keep Keep}", desc.StencilFront)
	}

	var set RawDataSet
	man := handle.NewManager()
	view := &fakeView{id: 4}
	target.BindTo(&set, handle.NewDepthStencilView[format.Stencil8](view, 256, 256),
		StencilRefs{Front: 1, Back: 2}, man)

	ds := set.PixelTargets.DepthStencil
	if ds == nil {
		t.Fatal("DepthStencil = nil after bind")
	}
	if ds.Depth || !ds.Stencil {
		t.Errorf("aspects = (depth=%v, stencil=%v), want (false, true)", ds.Depth, ds.Stencil)
	}
	if got := set.RefValues.Stencil; got != [2]uint32{1, 2} {
		t.Errorf("RefValues.Stencil = %v, want [1 2]", got)
	}
	if man.Len() != 1 {
		t.Errorf("manager Len() = %d, want 1", man.Len())
	}
}

func TestDepthStencilTargetCombined(t *testing.T) {
	target := NewDepthStencilTarget[format.Depth24Stencil8](
		state.Depth{Fun: gputypes.CompareFunctionLess, Write: true},
		state.StencilAlwaysKeep(),
	)
	if !target.IsActive() {
		t.Fatal("IsActive() = false, combined targets are unconditionally active")
	}

	desc := target.LinkDepthStencil()
	if desc.Format != gputypes.TextureFormatDepth24PlusStencil8 {
		t.Errorf("Format = %v, want Depth24PlusStencil8", desc.Format)
	}
	if !desc.DepthWriteEnabled || desc.DepthCompare != gputypes.CompareFunctionLess {
		t.Errorf("depth state = (%v, %v), want (true, Less)", desc.DepthWriteEnabled, desc.DepthCompare)
	}

	var set RawDataSet
	man := handle.NewManager()
	target.BindTo(&set, handle.NewDepthStencilView[format.Depth24Stencil8](&fakeView{id: 5}, 64, 64),
		StencilRefs{Front: 7, Back: 7}, man)

	ds := set.PixelTargets.DepthStencil
	if ds == nil {
		t.Fatal("DepthStencil = nil after bind")
	}
	if !ds.Depth || !ds.Stencil {
		t.Errorf("aspects = (depth=%v, stencil=%v), want (true, true)", ds.Depth, ds.Stencil)
	}
	if got := set.RefValues.Stencil; got != [2]uint32{7, 7} {
		t.Errorf("RefValues.Stencil = %v, want [7 7]", got)
	}
}

func TestScissorLifecycle(t *testing.T) {
	sc := NewScissor()
	if sc.IsActive() {
		t.Fatal("IsActive() = true after construction, want inactive")
	}

	// Bind before link must not corrupt the set.
	set := RawDataSet{
		Scissor:   Rect{X: 1, Y: 2, W: 3, H: 4},
		RefValues: RefValues{Stencil: [2]uint32{9, 9}},
	}
	before := set
	sc.BindTo(&set, Rect{X: 10, Y: 10, W: 100, H: 100})
	if set != before {
		t.Errorf("inactive bind mutated set: %+v vs %+v", set, before)
	}

	if !sc.LinkScissor() {
		t.Fatal("LinkScissor() = false, want true")
	}
	if !sc.IsActive() {
		t.Fatal("IsActive() = false after LinkScissor")
	}

	sc.BindTo(&set, Rect{X: 10, Y: 20, W: 100, H: 50})
	want := Rect{X: 10, Y: 20, W: 100, H: 50}
	if set.Scissor != want {
		t.Errorf("Scissor = %+v, want %+v", set.Scissor, want)
	}
	// Other fields untouched.
	if set.RefValues.Stencil != [2]uint32{9, 9} {
		t.Errorf("RefValues.Stencil = %v, want [9 9]", set.RefValues.Stencil)
	}
}

func TestBlendRefOverwrites(t *testing.T) {
	br := NewBlendRef()
	if !br.IsActive() {
		t.Fatal("IsActive() = false, blend ref is unconditionally active")
	}

	var set RawDataSet
	br.BindTo(&set, gputypes.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5})
	br.BindTo(&set, gputypes.Color{R: 1, G: 0, B: 0, A: 1})

	want := gputypes.Color{R: 1, G: 0, B: 0, A: 1}
	if set.RefValues.Blend != want {
		t.Errorf("RefValues.Blend = %+v, want %+v", set.RefValues.Blend, want)
	}
}

func TestRawDataSetReset(t *testing.T) {
	target := NewRenderTarget[format.Rgba8]("c")
	if desc, _ := target.LinkOutput(shade.OutputVar{Name: "", Slot: 0}); desc == nil {
		t.Fatal("LinkOutput() = nil, want wildcard match")
	}

	var set RawDataSet
	man := handle.NewManager()
	target.BindTo(&set, rtView(&fakeView{id: 1}, 8, 8), man)
	NewBlendRef().BindTo(&set, gputypes.Color{R: 1, A: 1})

	set.Reset()
	if set != (RawDataSet{}) {
		t.Errorf("Reset() left state behind: %+v", set)
	}
}
