// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pso implements typed pipeline-resource binding for the GoGPU
// ecosystem.
//
// # Overview
//
// A render pipeline declares a set of output resources: color targets,
// depth/stencil targets, a scissor rectangle, a blend reference color. pso
// models each as a slot component that participates in a two-phase protocol:
//
//   - Link, at pipeline-creation time: each component reconciles its
//     declaration against the shader's reflected output variables and
//     produces the fixed-function descriptor fragment for the pipeline
//     (a gputypes.ColorTargetState or a hal.DepthStencilState).
//   - Bind, at draw time: each component transcribes a strongly typed
//     resource handle into a backend-neutral RawDataSet and registers the
//     handle with a handle.Manager for lifetime tracking.
//
// Components are parametrized by compile-time format tags from the format
// package, so binding a view of the wrong format family is a compile error,
// not a runtime check.
//
// # Quick Start
//
//	outs, _ := shade.Reflect(wgslSource, "fs_main")
//
//	target := pso.NewRenderTarget[format.Rgba8]("out_color")
//	for _, out := range outs {
//	    if desc, _ := target.LinkOutput(out); desc != nil {
//	        // desc goes into the pipeline's fragment targets
//	    }
//	}
//
//	var set pso.RawDataSet
//	man := handle.NewManager()
//	target.BindTo(&set, view, man) // per draw call
//
// # Architecture
//
// The library is organized into:
//   - Root: components, the Link/Bind protocol, RawDataSet
//   - format: compile-time format tags and capability interfaces
//   - state: fixed-function depth/stencil init state
//   - handle: typed views and the lifetime-tracking manager
//   - shade: fragment output reflection via gogpu/naga
//   - backend/wgpu: RawDataSet translation to wgpu hal render passes
//
// Link and Bind are synchronous and never block. All Bind calls mutating one
// RawDataSet must be issued from a single goroutine; distinct sets are
// independent. The handle.Manager is the only collaborator shared between
// sets and is safe for concurrent use.
package pso
