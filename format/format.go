// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package format defines compile-time texture format tags.
//
// A tag is a zero-size struct naming one pixel, depth, or stencil format.
// Tags carry no runtime state: they exist so that pipeline components can be
// parametrized by a format at the type level and resolve the runtime
// gputypes.TextureFormat through a method on the zero value. The capability
// interfaces (ColorFormat, BlendFormat, DepthFormat, StencilFormat) constrain
// which tags may appear where, mirroring what the GPU itself enforces.
//
// The capability interfaces are sealed by unexported marker methods, so the
// set of valid tags is closed within this package.
package format

import "github.com/gogpu/gputypes"

// ColorFormat is satisfied by tags naming a renderable color format.
type ColorFormat interface {
	// ColorFormat returns the runtime texture format for this tag.
	ColorFormat() gputypes.TextureFormat
}

// BlendFormat is satisfied by color format tags that support blending.
type BlendFormat interface {
	ColorFormat
	blendable()
}

// DepthStencilTexel is satisfied by tags naming a depth and/or stencil format.
type DepthStencilTexel interface {
	// DepthStencilFormat returns the runtime texture format for this tag.
	DepthStencilFormat() gputypes.TextureFormat
}

// DepthFormat is satisfied by tags whose format has a depth aspect.
type DepthFormat interface {
	DepthStencilTexel
	depthRenderable()
}

// StencilFormat is satisfied by tags whose format has a stencil aspect.
type StencilFormat interface {
	DepthStencilTexel
	stencilRenderable()
}

// DepthStencilFormat is satisfied by tags with both depth and stencil aspects.
type DepthStencilFormat interface {
	DepthFormat
	StencilFormat
}

// Rgba8 tags the 8-bit-per-channel RGBA unorm format.
type Rgba8 struct{}

func (Rgba8) ColorFormat() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }
func (Rgba8) blendable()                          {}

// Srgba8 tags the 8-bit-per-channel RGBA unorm format with sRGB encoding.
type Srgba8 struct{}

func (Srgba8) ColorFormat() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8UnormSrgb }
func (Srgba8) blendable()                          {}

// Bgra8 tags the 8-bit-per-channel BGRA unorm format, the common surface
// format on desktop platforms.
type Bgra8 struct{}

func (Bgra8) ColorFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (Bgra8) blendable()                          {}

// R8 tags the single-channel 8-bit unorm format, typically used for
// coverage or alpha masks.
type R8 struct{}

func (R8) ColorFormat() gputypes.TextureFormat { return gputypes.TextureFormatR8Unorm }
func (R8) blendable()                          {}

// Rgba32F tags the 32-bit float RGBA format. Float targets are renderable
// but not blendable on all hardware, so Rgba32F is a ColorFormat only.
type Rgba32F struct{}

func (Rgba32F) ColorFormat() gputypes.TextureFormat { return gputypes.TextureFormatRGBA32Float }

// Depth32F tags a 32-bit float depth-only format.
type Depth32F struct{}

func (Depth32F) DepthStencilFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatDepth32Float
}
func (Depth32F) depthRenderable() {}

// Stencil8 tags an 8-bit stencil-only format.
type Stencil8 struct{}

func (Stencil8) DepthStencilFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatStencil8
}
func (Stencil8) stencilRenderable() {}

// Depth24Stencil8 tags the packed 24-bit depth + 8-bit stencil format.
type Depth24Stencil8 struct{}

func (Depth24Stencil8) DepthStencilFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatDepth24PlusStencil8
}
func (Depth24Stencil8) depthRenderable()   {}
func (Depth24Stencil8) stencilRenderable() {}

// Interface conformance checks.
var (
	_ BlendFormat        = Rgba8{}
	_ BlendFormat        = Srgba8{}
	_ BlendFormat        = Bgra8{}
	_ BlendFormat        = R8{}
	_ ColorFormat        = Rgba32F{}
	_ DepthFormat        = Depth32F{}
	_ StencilFormat      = Stencil8{}
	_ DepthStencilFormat = Depth24Stencil8{}
)
