// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package handle provides typed GPU resource views and the manager that
// hands out opaque, lifetime-safe references to them.
//
// A typed view pairs a raw hal.TextureView with its dimensions and a
// compile-time format tag. The tag constrains which pipeline components the
// view may be bound to; it carries no runtime state. The Manager deduplicates
// registrations and keeps every registered view reachable until Clear, so a
// Ref stored in a raw data set stays valid for as long as that set is in
// flight.
package handle

import (
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pso/format"
)

// Ref is an opaque reference to a view registered with a Manager.
//
// The zero Ref refers to nothing; IsValid reports false for it.
type Ref struct {
	view hal.TextureView
}

// Raw returns the underlying texture view. Backends use this when
// translating a raw data set into pass attachments.
func (r Ref) Raw() hal.TextureView { return r.view }

// IsValid reports whether the reference points at a registered view.
func (r Ref) IsValid() bool { return r.view != nil }

// Manager tracks resource views referenced by in-flight raw data sets.
//
// Registering the same view twice returns the same Ref. The manager retains
// every registered view, which keeps the underlying GPU resource alive for
// the Go garbage collector until Clear is called (typically once the frame
// that referenced them has completed).
//
// Manager is safe for concurrent registration from multiple goroutines.
type Manager struct {
	mu   sync.Mutex
	refs map[hal.TextureView]Ref
}

// NewManager creates an empty handle manager.
func NewManager() *Manager {
	return &Manager{refs: make(map[hal.TextureView]Ref)}
}

// Ref registers a view and returns its opaque reference. A nil view yields
// the zero Ref.
func (m *Manager) Ref(view hal.TextureView) Ref {
	if view == nil {
		return Ref{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.refs[view]; ok {
		return r
	}
	r := Ref{view: view}
	m.refs[view] = r
	return r
}

// Len returns the number of distinct registered views.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.refs)
}

// Clear drops all registrations. Refs handed out before Clear must not be
// dereferenced afterwards.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.refs)
}

// RenderTargetView is a typed handle to a color attachment view.
//
// The format tag F fixes at compile time which RenderTarget and BlendTarget
// components the view can be bound to.
type RenderTargetView[F format.ColorFormat] struct {
	view hal.TextureView
	size gputypes.Extent3D
}

// NewRenderTargetView wraps a raw texture view of the given pixel size.
func NewRenderTargetView[F format.ColorFormat](view hal.TextureView, width, height uint32) RenderTargetView[F] {
	return RenderTargetView[F]{
		view: view,
		size: gputypes.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	}
}

// Raw returns the underlying texture view.
func (v RenderTargetView[F]) Raw() hal.TextureView { return v.view }

// Dimensions returns the view's pixel dimensions.
func (v RenderTargetView[F]) Dimensions() gputypes.Extent3D { return v.size }

// Format returns the runtime texture format implied by the view's tag.
func (v RenderTargetView[F]) Format() gputypes.TextureFormat {
	var f F
	return f.ColorFormat()
}

// DepthStencilView is a typed handle to a depth and/or stencil attachment
// view.
type DepthStencilView[F format.DepthStencilTexel] struct {
	view hal.TextureView
	size gputypes.Extent3D
}

// NewDepthStencilView wraps a raw texture view of the given pixel size.
func NewDepthStencilView[F format.DepthStencilTexel](view hal.TextureView, width, height uint32) DepthStencilView[F] {
	return DepthStencilView[F]{
		view: view,
		size: gputypes.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	}
}

// Raw returns the underlying texture view.
func (v DepthStencilView[F]) Raw() hal.TextureView { return v.view }

// Dimensions returns the view's pixel dimensions.
func (v DepthStencilView[F]) Dimensions() gputypes.Extent3D { return v.size }

// Format returns the runtime texture format implied by the view's tag.
func (v DepthStencilView[F]) Format() gputypes.TextureFormat {
	var f F
	return f.DepthStencilFormat()
}
