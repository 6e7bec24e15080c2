// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glctx defines the set of OpenGL entry points used by
// gltriangle, and the [Device] that tracks the state that OpenGL
// keeps implicitly in the current context (active program, bound
// vertex array and array buffer).
//
// All calls must be made on the thread that owns the context.
package glctx

// Context is the subset of the OpenGL 4.1 core API that gltriangle uses.
// The real implementation is in [cogentcore.org/gltriangle/glctx/gogl],
// and a simulated driver for tests is in
// [cogentcore.org/gltriangle/glctx/glmock].
type Context interface {
	// shaders
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32

	// GetShaderInfoLog returns at most bufSize-1 bytes of the info log.
	GetShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	// programs
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32, bufSize int32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// buffers
	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)

	// vertex arrays
	GenVertexArray() uint32
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)

	// VertexAttribPointer describes attribute index within the currently
	// bound array buffer. stride and offset are in bytes.
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	DeleteVertexArray(array uint32)

	// drawing
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
	GetError() uint32
}

// OpenGL enum values used with [Context].
const (
	False = 0
	True  = 1

	NoError          = 0
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502
	OutOfMemory      = 0x0505

	Triangles = 0x0004
	Float     = 0x1406

	ColorBufferBit = 0x00004000

	ArrayBuffer = 0x8892
	StaticDraw  = 0x88E4

	FragmentShader  = 0x8B30
	VertexShader    = 0x8B31
	CompileStatus   = 0x8B81
	LinkStatus      = 0x8B82
	InfoLogLength   = 0x8B84
	ShaderType      = 0x8B4F
	AttachedShaders = 0x8B85
)

// FloatBytes is the size of a float32 vertex component in bytes.
const FloatBytes = 4
