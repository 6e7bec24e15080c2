// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmock

import (
	"testing"

	"cogentcore.org/gltriangle/glctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertSrc = "#version 410 core\nlayout (location = 0) in vec3 position;\nvoid main() {\n\tgl_Position = vec4(position, 1.0);\n}\n"
	fragSrc = "#version 410 core\nout vec4 color;\nvoid main() {\n\tcolor = vec4(1.0);\n}\n"
)

func TestCompile(t *testing.T) {
	ok, lg := Compile(glctx.VertexShader, vertSrc)
	assert.True(t, ok)
	assert.Empty(t, lg)

	ok, lg = Compile(glctx.FragmentShader, "void main(){ gl_FragColor = vec4(1.0) }")
	assert.False(t, ok)
	assert.Equal(t, "0:1(39): error: syntax error, unexpected '}', expecting ',' or ';'\n", lg)

	ok, lg = Compile(glctx.VertexShader, "  \n")
	assert.False(t, ok)
	assert.Contains(t, lg, "unexpected end of file")

	ok, lg = Compile(glctx.VertexShader, "void main() {\n\tfloat x = 1.0;\n")
	assert.False(t, ok)
	assert.Contains(t, lg, "unexpected end of file")

	ok, lg = Compile(glctx.VertexShader, "void main() { }\n}")
	assert.False(t, ok)
	assert.Equal(t, "0:2(1): error: syntax error, unexpected '}'\n", lg)

	ok, _ = Compile(glctx.VertexShader, "// comment }\nvoid main() { float x = 1.0; } // }\n")
	assert.True(t, ok)
}

func TestLink(t *testing.T) {
	vs := &Shader{Kind: glctx.VertexShader, Source: vertSrc, Compiled: true}
	fs := &Shader{Kind: glctx.FragmentShader, Source: fragSrc, Compiled: true}
	ok, lg := Link([]*Shader{vs, fs})
	assert.True(t, ok)
	assert.Empty(t, lg)

	ok, lg = Link([]*Shader{vs, vs})
	assert.False(t, ok)
	assert.Equal(t, "error: function `main' is multiply defined in 2 vertex shaders\nerror: program lacks a fragment shader\n", lg)

	ok, lg = Link(nil)
	assert.False(t, ok)
	assert.Contains(t, lg, "no shaders attached")

	bad := &Shader{Kind: glctx.FragmentShader, Source: "void frag() {}", Compiled: true}
	ok, lg = Link([]*Shader{vs, bad})
	assert.False(t, ok)
	assert.Contains(t, lg, "fragment shader lacks `main'")
}

func TestDriverShaderLifecycle(t *testing.T) {
	dr := New()
	id := dr.CreateShader(glctx.VertexShader)
	require.NotZero(t, id)
	dr.ShaderSource(id, vertSrc)
	dr.CompileShader(id)
	assert.Equal(t, int32(glctx.True), dr.GetShaderiv(id, glctx.CompileStatus))
	assert.Equal(t, int32(0), dr.GetShaderiv(id, glctx.InfoLogLength))
	assert.Equal(t, int32(glctx.VertexShader), dr.GetShaderiv(id, glctx.ShaderType))

	dr.DeleteShader(id)
	assert.Equal(t, uint32(glctx.NoError), dr.GetError())
	dr.DeleteShader(id)
	assert.Equal(t, uint32(glctx.InvalidValue), dr.GetError())
	assert.Equal(t, uint32(glctx.NoError), dr.GetError())

	dr.CreateShader(0x1234)
	assert.Equal(t, uint32(glctx.InvalidEnum), dr.GetError())
}

func TestDriverInfoLog(t *testing.T) {
	dr := New()
	dr.Compile = func(kind uint32, src string) (bool, string) {
		return false, "bad shader"
	}
	id := dr.CreateShader(glctx.FragmentShader)
	dr.CompileShader(id)
	n := dr.GetShaderiv(id, glctx.InfoLogLength)
	assert.Equal(t, int32(len("bad shader")+1), n)
	assert.Equal(t, "bad shader", dr.GetShaderInfoLog(id, n))
	assert.Equal(t, "bad", dr.GetShaderInfoLog(id, 4))
	assert.Equal(t, "", dr.GetShaderInfoLog(id, 0))
}

func TestDriverProgram(t *testing.T) {
	dr := New()
	vs := dr.CreateShader(glctx.VertexShader)
	dr.ShaderSource(vs, vertSrc)
	dr.CompileShader(vs)
	fs := dr.CreateShader(glctx.FragmentShader)
	dr.ShaderSource(fs, fragSrc)
	dr.CompileShader(fs)

	pr := dr.CreateProgram()
	dr.UseProgram(pr)
	assert.Equal(t, uint32(glctx.InvalidOperation), dr.GetError(), "unlinked program cannot be used")

	dr.AttachShader(pr, vs)
	dr.AttachShader(pr, fs)
	dr.AttachShader(pr, fs)
	assert.Equal(t, uint32(glctx.InvalidOperation), dr.GetError(), "double attach")
	dr.LinkProgram(pr)
	assert.Equal(t, int32(glctx.True), dr.GetProgramiv(pr, glctx.LinkStatus))
	assert.Equal(t, int32(2), dr.GetProgramiv(pr, glctx.AttachedShaders))

	dr.DetachShader(pr, vs)
	dr.DetachShader(pr, fs)
	assert.Equal(t, int32(0), dr.GetProgramiv(pr, glctx.AttachedShaders))
	assert.Equal(t, []uint32{vs, fs}, dr.Program(pr).Detached)

	dr.UseProgram(pr)
	assert.Equal(t, pr, dr.CurrentProgram())
	assert.Equal(t, uint32(glctx.NoError), dr.GetError())
}

func TestDriverGeometryAndDraw(t *testing.T) {
	dr := New()
	dr.DrawArrays(glctx.Triangles, 0, 3)
	assert.Equal(t, uint32(glctx.InvalidOperation), dr.GetError(), "no program or vertex array")
	assert.Empty(t, dr.Draws)

	buf := dr.GenBuffer()
	dr.BindBuffer(glctx.ArrayBuffer, buf)
	dr.BufferData(glctx.ArrayBuffer, []float32{1, 2, 3}, glctx.StaticDraw)
	assert.Equal(t, []float32{1, 2, 3}, dr.Buffer(buf).Data)

	va := dr.GenVertexArray()
	dr.BindVertexArray(va)
	dr.EnableVertexAttribArray(0)
	dr.VertexAttribPointer(0, 3, glctx.Float, false, 12, 0)
	at := dr.VertexArray(va).Attribs[0]
	require.NotNil(t, at)
	assert.True(t, at.Enabled)
	assert.Equal(t, buf, at.Buffer)
	assert.Equal(t, uint32(glctx.NoError), dr.GetError())

	dr.DeleteBuffer(buf)
	dr.DeleteVertexArray(va)
	dr.DeleteVertexArray(va)
	assert.Equal(t, uint32(glctx.InvalidValue), dr.GetError())
	sh, pr, arrays, bufs := dr.Live()
	assert.Zero(t, sh+pr+arrays+bufs)
	assert.Equal(t, 2, dr.CallCount("DeleteVertexArray"))
}
