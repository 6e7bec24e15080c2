// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gogl implements [glctx.Context] on top of the
// go-gl OpenGL 4.1 core bindings.
package gogl

import (
	"bytes"
	"fmt"
	"unsafe"

	"cogentcore.org/gltriangle/glctx"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Context is the go-gl implementation of [glctx.Context].
// It has no state of its own: all state lives in the
// OpenGL context current on the calling thread.
type Context struct{}

var _ glctx.Context = Context{}

// Init loads the OpenGL entry points using the given function to
// resolve each one by name. The OpenGL context must be current on
// the calling thread.
func Init(procAddr func(name string) unsafe.Pointer) (Context, error) {
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return Context{}, fmt.Errorf("gogl: loading OpenGL entry points: %w", err)
	}
	return Context{}, nil
}

// Version returns the version string of the current context.
func (Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// cstring returns s with a null terminator appended if needed.
func cstring(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0 {
		return s
	}
	return s + "\x00"
}

// infoLog reads an info log of up to bufSize bytes using get,
// trimming the null terminator.
func infoLog(bufSize int32, get func(length *int32, buf *uint8)) string {
	if bufSize <= 0 {
		bufSize = 1
	}
	buf := make([]uint8, bufSize)
	var n int32
	get(&n, &buf[0])
	return string(bytes.TrimRight(buf[:n], "\x00"))
}

func (Context) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (Context) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(cstring(src))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Context) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Context) GetShaderInfoLog(shader uint32, bufSize int32) string {
	return infoLog(bufSize, func(length *int32, buf *uint8) {
		gl.GetShaderInfoLog(shader, bufSize, length, buf)
	})
}

func (Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Context) CreateProgram() uint32 { return gl.CreateProgram() }

func (Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Context) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (Context) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Context) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (Context) GetProgramInfoLog(program uint32, bufSize int32) string {
	return infoLog(bufSize, func(length *int32, buf *uint8) {
		gl.GetProgramInfoLog(program, bufSize, length, buf)
	})
}

func (Context) UseProgram(program uint32) { gl.UseProgram(program) }

func (Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Context) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Context) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Context) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*glctx.FloatBytes, gl.Ptr(data), usage)
}

func (Context) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Context) GenVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (Context) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (Context) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Context) Clear(mask uint32) { gl.Clear(mask) }

func (Context) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (Context) GetError() uint32 { return gl.GetError() }
