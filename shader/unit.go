// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gltriangle/glctx"
)

// Unit is one compiled shader stage, owning one GPU shader object.
// The handle is valid from a successful [Compile] until [Unit.Release].
type Unit struct {
	dev    *glctx.Device
	init   bool
	handle uint32
	stage  Stage
}

// Compile compiles the given source text as a shader of the given stage.
// It does not bind or otherwise change any context state.
//
// If compilation fails, the returned error is a [*CompileError] with the
// driver's info log. Unlike the bare GL sequence, which leaves the failed
// shader object alive for its creator to free, Compile deletes it before
// returning, since the caller never receives its handle.
func Compile(dev *glctx.Device, src string, stage Stage) (*Unit, error) {
	if !stage.IsValid() {
		return nil, fmt.Errorf("shader: invalid stage %v", stage)
	}
	handle := dev.CreateShader(stage.GLType())
	dev.ShaderSource(handle, src)
	dev.CompileShader(handle)

	if dev.GetShaderiv(handle, glctx.CompileStatus) == glctx.False {
		logLength := dev.GetShaderiv(handle, glctx.InfoLogLength)
		msg := dev.GetShaderInfoLog(handle, logLength)
		dev.DeleteShader(handle)
		return nil, &CompileError{Stage: stage, Message: msg}
	}
	slog.Debug("shader: compiled", "stage", stage, "handle", handle)
	return &Unit{dev: dev, init: true, handle: handle, stage: stage}, nil
}

// Handle returns the GPU handle of the shader, 0 once released.
func (un *Unit) Handle() uint32 {
	return un.handle
}

// Stage returns the stage the unit was compiled for.
func (un *Unit) Stage() Stage {
	return un.stage
}

// Release deletes the shader object. It is safe to call more than once
// and on a nil Unit; only the first call has an effect.
func (un *Unit) Release() {
	if un == nil || !un.init {
		return
	}
	un.dev.DeleteShader(un.handle)
	un.handle = 0
	un.init = false
}
