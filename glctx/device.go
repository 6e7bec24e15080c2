// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glctx

import "fmt"

// Device is the single owner of a [Context]. OpenGL keeps the current
// program, vertex array and array buffer bindings as implicit global
// state on the context; Device mirrors those bindings in explicit
// fields so that redundant state changes are skipped and the state
// can be inspected.
//
// A Device must only be used from the thread that owns the context.
type Device struct {
	Context

	program     uint32
	vertexArray uint32
	arrayBuffer uint32
}

// NewDevice returns a new Device for the given context,
// which must already be current on the calling thread.
func NewDevice(ctx Context) *Device {
	return &Device{Context: ctx}
}

// UseProgram makes the given program the active program, skipping
// the driver call if it already is.
func (dv *Device) UseProgram(program uint32) {
	if dv.program == program {
		return
	}
	dv.Context.UseProgram(program)
	dv.program = program
}

// ActiveProgram returns the handle of the active program, 0 if none.
func (dv *Device) ActiveProgram() uint32 {
	return dv.program
}

// DeleteProgram deletes the given program, clearing the active
// program if it was this one.
func (dv *Device) DeleteProgram(program uint32) {
	dv.Context.DeleteProgram(program)
	if dv.program == program {
		dv.program = 0
	}
}

// BindVertexArray binds the given vertex array, skipping the
// driver call if it is already bound.
func (dv *Device) BindVertexArray(array uint32) {
	if dv.vertexArray == array {
		return
	}
	dv.Context.BindVertexArray(array)
	dv.vertexArray = array
}

// BoundVertexArray returns the bound vertex array, 0 if none.
func (dv *Device) BoundVertexArray() uint32 {
	return dv.vertexArray
}

// DeleteVertexArray deletes the given vertex array,
// clearing the binding if it was bound.
func (dv *Device) DeleteVertexArray(array uint32) {
	dv.Context.DeleteVertexArray(array)
	if dv.vertexArray == array {
		dv.vertexArray = 0
	}
}

// BindBuffer binds the given buffer to target. Only [ArrayBuffer]
// bindings are tracked.
func (dv *Device) BindBuffer(target, buffer uint32) {
	if target == ArrayBuffer {
		if dv.arrayBuffer == buffer {
			return
		}
		dv.arrayBuffer = buffer
	}
	dv.Context.BindBuffer(target, buffer)
}

// BoundArrayBuffer returns the buffer bound to [ArrayBuffer], 0 if none.
func (dv *Device) BoundArrayBuffer() uint32 {
	return dv.arrayBuffer
}

// DeleteBuffer deletes the given buffer, clearing the
// array buffer binding if it was bound.
func (dv *Device) DeleteBuffer(buffer uint32) {
	dv.Context.DeleteBuffer(buffer)
	if dv.arrayBuffer == buffer {
		dv.arrayBuffer = 0
	}
}

// CheckError returns an [*Error] if the driver has recorded an error
// since the last call, labeled with the given operation name.
func (dv *Device) CheckError(op string) error {
	if code := dv.GetError(); code != NoError {
		return &Error{Op: op, Code: code}
	}
	return nil
}

// Error is an OpenGL error code reported by GetError.
type Error struct {
	Op   string
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("glctx: %s: %s", e.Op, ErrorName(e.Code))
}

var errorNames = map[uint32]string{
	NoError:          "GL_NO_ERROR",
	InvalidEnum:      "GL_INVALID_ENUM",
	InvalidValue:     "GL_INVALID_VALUE",
	InvalidOperation: "GL_INVALID_OPERATION",
	OutOfMemory:      "GL_OUT_OF_MEMORY",
}

// ErrorName returns the GL name of the given error code.
func ErrorName(code uint32) string {
	if nm, ok := errorNames[code]; ok {
		return nm
	}
	return fmt.Sprintf("GL error 0x%04X", code)
}
