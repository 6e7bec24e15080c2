// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gltriangle/glctx"
)

// Program is a linked GPU program, owning one GPU program object.
// It keeps no reference to the units it was linked from.
type Program struct {
	dev    *glctx.Device
	init   bool
	handle uint32
}

// Link links the given units, in order, into a new program.
//
// Every unit must be compiled and not yet released.
//
// On success every unit is detached from the program again before
// returning; the units stay owned by the caller, who must release them.
// On failure the returned error is a [*LinkError] with the driver's
// info log. The units are left attached and the failed program object
// is deleted.
func Link(dev *glctx.Device, units ...*Unit) (*Program, error) {
	if len(units) == 0 {
		return nil, &LinkError{Message: "no shader units to link"}
	}
	for i, un := range units {
		if un == nil || !un.init {
			return nil, &LinkError{Message: fmt.Sprintf("shader unit %d is nil or released", i)}
		}
	}
	handle := dev.CreateProgram()
	for _, un := range units {
		dev.AttachShader(handle, un.handle)
	}
	dev.LinkProgram(handle)

	if dev.GetProgramiv(handle, glctx.LinkStatus) == glctx.False {
		logLength := dev.GetProgramiv(handle, glctx.InfoLogLength)
		msg := dev.GetProgramInfoLog(handle, logLength)
		dev.DeleteProgram(handle)
		return nil, &LinkError{Message: msg}
	}

	for _, un := range units {
		dev.DetachShader(handle, un.handle)
	}
	slog.Debug("shader: linked program", "handle", handle, "units", len(units))
	return &Program{dev: dev, init: true, handle: handle}, nil
}

// Handle returns the GPU handle of the program, 0 once released.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Linked returns whether the program is linked and not yet released.
func (pr *Program) Linked() bool {
	return pr != nil && pr.init
}

// Activate makes this the active program for subsequent draw calls.
// Activating the program that is already active has no effect.
func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	pr.dev.UseProgram(pr.handle)
}

// IsActive returns whether this is the active program.
func (pr *Program) IsActive() bool {
	return pr.init && pr.dev.ActiveProgram() == pr.handle
}

// Release deletes the GPU program. It is safe to call more than once
// and on a nil Program; only the first call has an effect.
func (pr *Program) Release() {
	if pr == nil || !pr.init {
		return
	}
	pr.dev.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}
