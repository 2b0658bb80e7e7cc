// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shade exposes the reflected shader interface consumed by the
// pipeline Link protocol.
//
// The only reflection data the binding layer needs is the list of fragment
// output variables: which color attachments the shader writes, by name and
// slot. The list is produced here by walking a naga IR module, so any WGSL
// source compilable by github.com/gogpu/naga can drive pipeline linking.
package shade

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Reflection errors.
var (
	// ErrNoFragmentEntry is returned when the module has no fragment entry
	// point matching the requested name.
	ErrNoFragmentEntry = errors.New("shade: no matching fragment entry point")

	// ErrSlotOutOfRange is returned when a shader declares an output
	// location beyond what color slots can address.
	ErrSlotOutOfRange = errors.New("shade: output location out of range")
)

// OutputVar is one reflected fragment output variable.
//
// An empty Name marks an anonymous output: a fragment entry point returning
// a bare @location(n) value rather than a named struct member. Anonymous
// outputs match any declared target name during linking.
type OutputVar struct {
	Name string
	Slot uint8
}

// Reflect parses and lowers WGSL source, then returns the fragment output
// variables of the given entry point. An empty entry name selects the sole
// fragment entry point.
func Reflect(source, entry string) ([]OutputVar, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("shade: parse: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("shade: lower: %w", err)
	}
	return FragmentOutputs(module, entry)
}

// FragmentOutputs walks a lowered module and returns the color output
// variables of the fragment entry point named entry. An empty entry name
// selects the sole fragment entry point.
//
// A bare @location return yields a single anonymous OutputVar. A struct
// return yields one OutputVar per @location member, in declaration order.
// Builtin outputs such as @builtin(frag_depth) are not color outputs and
// are skipped.
func FragmentOutputs(m *ir.Module, entry string) ([]OutputVar, error) {
	ep, err := fragmentEntry(m, entry)
	if err != nil {
		return nil, err
	}

	fn := ep.Function
	if fn.Result == nil {
		return nil, nil
	}

	// Single anonymous output or a builtin.
	if fn.Result.Binding != nil {
		loc, ok := (*fn.Result.Binding).(ir.LocationBinding)
		if !ok {
			return nil, nil
		}
		slot, err := colorSlot(loc.Location)
		if err != nil {
			return nil, err
		}
		outs := []OutputVar{{Name: "", Slot: slot}}
		logger().Debug("reflected fragment outputs",
			"entry", ep.Name, "outputs", 1, "anonymous", true)
		return outs, nil
	}

	// Struct return: one output per located member.
	st, ok := m.Types[fn.Result.Type].Inner.(ir.StructType)
	if !ok {
		return nil, nil
	}
	var outs []OutputVar
	for _, member := range st.Members {
		if member.Binding == nil {
			continue
		}
		loc, ok := (*member.Binding).(ir.LocationBinding)
		if !ok {
			continue
		}
		slot, err := colorSlot(loc.Location)
		if err != nil {
			return nil, err
		}
		outs = append(outs, OutputVar{Name: member.Name, Slot: slot})
	}
	logger().Debug("reflected fragment outputs",
		"entry", ep.Name, "outputs", len(outs), "anonymous", false)
	return outs, nil
}

// fragmentEntry locates the fragment entry point by name.
func fragmentEntry(m *ir.Module, entry string) (*ir.EntryPoint, error) {
	for i := range m.EntryPoints {
		ep := &m.EntryPoints[i]
		if ep.Stage != ir.StageFragment {
			continue
		}
		if entry == "" || ep.Name == entry {
			return ep, nil
		}
	}
	if entry == "" {
		return nil, ErrNoFragmentEntry
	}
	return nil, fmt.Errorf("%w: %q", ErrNoFragmentEntry, entry)
}

// colorSlot narrows a shader location to a color slot index.
func colorSlot(location uint32) (uint8, error) {
	if location > 0xFF {
		return 0, fmt.Errorf("%w: location %d", ErrSlotOutOfRange, location)
	}
	return uint8(location), nil
}
