// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glmock provides a simulated OpenGL driver implementing
// [glctx.Context], for testing code that uses the GPU without a
// display. It records every call, simulates shader compilation and
// program linking with deterministic diagnostics, and reports
// misuse (double deletes, drawing without a program or vertex array)
// through GetError the way a real driver would.
package glmock

import (
	"fmt"
	"slices"

	"cogentcore.org/gltriangle/glctx"
)

// CompileFunc simulates compiling src as a shader of the given kind,
// returning whether it succeeded and the info log.
type CompileFunc func(kind uint32, src string) (ok bool, log string)

// LinkFunc simulates linking a program from the given attached
// shaders, returning whether it succeeded and the info log.
type LinkFunc func(shaders []*Shader) (ok bool, log string)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Shader is a simulated shader object.
type Shader struct {
	ID       uint32
	Kind     uint32
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

// Program is a simulated program object.
type Program struct {
	ID       uint32
	Attached []uint32
	Detached []uint32
	Linked   bool
	Log      string
	Deleted  bool
}

// Attrib is the state of one vertex attribute of a [VertexArray].
type Attrib struct {
	Enabled    bool
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
}

// VertexArray is a simulated vertex array object.
type VertexArray struct {
	ID      uint32
	Attribs map[uint32]*Attrib
	Deleted bool
}

// Buffer is a simulated buffer object.
type Buffer struct {
	ID      uint32
	Data    []float32
	Usage   uint32
	Deleted bool
}

// Draw is one recorded draw call, with the state it was issued against.
type Draw struct {
	Mode        uint32
	First       int32
	Count       int32
	Program     uint32
	VertexArray uint32
}

// Driver is the simulated driver. The zero value is not usable;
// use [New].
type Driver struct {
	// Compile simulates compilation; defaults to [Compile].
	Compile CompileFunc

	// Link simulates linking; defaults to [Link].
	Link LinkFunc

	// Calls is the log of every call made, in order.
	Calls []Call

	// Draws is the log of every draw call made, in order.
	Draws []Draw

	// Clears counts Clear calls.
	Clears int

	// ViewportRect is the last viewport set: x, y, width, height.
	ViewportRect [4]int32

	// ClearRGBA is the last clear color set.
	ClearRGBA [4]float32

	shaders  map[uint32]*Shader
	programs map[uint32]*Program
	arrays   map[uint32]*VertexArray
	buffers  map[uint32]*Buffer

	next        uint32
	program     uint32
	vertexArray uint32
	arrayBuffer uint32
	err         uint32
}

var _ glctx.Context = (*Driver)(nil)

// New returns a new simulated driver using the default
// compile and link simulations.
func New() *Driver {
	return &Driver{
		Compile:  Compile,
		Link:     Link,
		shaders:  make(map[uint32]*Shader),
		programs: make(map[uint32]*Program),
		arrays:   make(map[uint32]*VertexArray),
		buffers:  make(map[uint32]*Buffer),
	}
}

func (dr *Driver) record(name string, args ...any) {
	dr.Calls = append(dr.Calls, Call{Name: name, Args: args})
}

// setError records code as the current error if none is pending,
// matching the sticky first-error behavior of GetError.
func (dr *Driver) setError(code uint32) {
	if dr.err == glctx.NoError {
		dr.err = code
	}
}

func (dr *Driver) newID() uint32 {
	dr.next++
	return dr.next
}

// CallCount returns the number of recorded calls with the given name.
func (dr *Driver) CallCount(name string) int {
	n := 0
	for _, c := range dr.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CallNames returns the names of all recorded calls, in order.
func (dr *Driver) CallNames() []string {
	nms := make([]string, len(dr.Calls))
	for i, c := range dr.Calls {
		nms[i] = c.Name
	}
	return nms
}

// Shader returns the shader object with the given id, or nil.
func (dr *Driver) Shader(id uint32) *Shader { return dr.shaders[id] }

// Program returns the program object with the given id, or nil.
func (dr *Driver) Program(id uint32) *Program { return dr.programs[id] }

// VertexArray returns the vertex array object with the given id, or nil.
func (dr *Driver) VertexArray(id uint32) *VertexArray { return dr.arrays[id] }

// Buffer returns the buffer object with the given id, or nil.
func (dr *Driver) Buffer(id uint32) *Buffer { return dr.buffers[id] }

// CurrentProgram returns the program in use, 0 if none.
func (dr *Driver) CurrentProgram() uint32 { return dr.program }

// CurrentVertexArray returns the bound vertex array, 0 if none.
func (dr *Driver) CurrentVertexArray() uint32 { return dr.vertexArray }

// Live returns the number of objects of each kind that have been
// created and not deleted: shaders, programs, vertex arrays, buffers.
func (dr *Driver) Live() (shaders, programs, arrays, buffers int) {
	for _, s := range dr.shaders {
		if !s.Deleted {
			shaders++
		}
	}
	for _, p := range dr.programs {
		if !p.Deleted {
			programs++
		}
	}
	for _, a := range dr.arrays {
		if !a.Deleted {
			arrays++
		}
	}
	for _, b := range dr.buffers {
		if !b.Deleted {
			buffers++
		}
	}
	return
}

func (dr *Driver) liveShader(id uint32) *Shader {
	s, ok := dr.shaders[id]
	if !ok || s.Deleted {
		dr.setError(glctx.InvalidValue)
		return nil
	}
	return s
}

func (dr *Driver) liveProgram(id uint32) *Program {
	p, ok := dr.programs[id]
	if !ok || p.Deleted {
		dr.setError(glctx.InvalidValue)
		return nil
	}
	return p
}

////////  Shaders

func (dr *Driver) CreateShader(kind uint32) uint32 {
	dr.record("CreateShader", kind)
	if kind != glctx.VertexShader && kind != glctx.FragmentShader {
		dr.setError(glctx.InvalidEnum)
		return 0
	}
	id := dr.newID()
	dr.shaders[id] = &Shader{ID: id, Kind: kind}
	return id
}

func (dr *Driver) ShaderSource(shader uint32, src string) {
	dr.record("ShaderSource", shader)
	if s := dr.liveShader(shader); s != nil {
		s.Source = src
	}
}

func (dr *Driver) CompileShader(shader uint32) {
	dr.record("CompileShader", shader)
	s := dr.liveShader(shader)
	if s == nil {
		return
	}
	s.Compiled, s.Log = dr.Compile(s.Kind, s.Source)
}

func (dr *Driver) GetShaderiv(shader uint32, pname uint32) int32 {
	dr.record("GetShaderiv", shader, pname)
	s := dr.liveShader(shader)
	if s == nil {
		return 0
	}
	switch pname {
	case glctx.CompileStatus:
		return boolInt(s.Compiled)
	case glctx.InfoLogLength:
		return logLength(s.Log)
	case glctx.ShaderType:
		return int32(s.Kind)
	}
	dr.setError(glctx.InvalidEnum)
	return 0
}

func (dr *Driver) GetShaderInfoLog(shader uint32, bufSize int32) string {
	dr.record("GetShaderInfoLog", shader, bufSize)
	s := dr.liveShader(shader)
	if s == nil {
		return ""
	}
	return truncateLog(s.Log, bufSize)
}

func (dr *Driver) DeleteShader(shader uint32) {
	dr.record("DeleteShader", shader)
	if shader == 0 {
		return
	}
	if s := dr.liveShader(shader); s != nil {
		s.Deleted = true
	}
}

////////  Programs

func (dr *Driver) CreateProgram() uint32 {
	dr.record("CreateProgram")
	id := dr.newID()
	dr.programs[id] = &Program{ID: id}
	return id
}

func (dr *Driver) AttachShader(program, shader uint32) {
	dr.record("AttachShader", program, shader)
	p := dr.liveProgram(program)
	s := dr.liveShader(shader)
	if p == nil || s == nil {
		return
	}
	if slices.Contains(p.Attached, shader) {
		dr.setError(glctx.InvalidOperation)
		return
	}
	p.Attached = append(p.Attached, shader)
}

func (dr *Driver) DetachShader(program, shader uint32) {
	dr.record("DetachShader", program, shader)
	p := dr.liveProgram(program)
	if p == nil {
		return
	}
	i := slices.Index(p.Attached, shader)
	if i < 0 {
		dr.setError(glctx.InvalidOperation)
		return
	}
	p.Attached = slices.Delete(p.Attached, i, i+1)
	p.Detached = append(p.Detached, shader)
}

func (dr *Driver) LinkProgram(program uint32) {
	dr.record("LinkProgram", program)
	p := dr.liveProgram(program)
	if p == nil {
		return
	}
	shs := make([]*Shader, 0, len(p.Attached))
	for _, id := range p.Attached {
		shs = append(shs, dr.shaders[id])
	}
	p.Linked, p.Log = dr.Link(shs)
}

func (dr *Driver) GetProgramiv(program uint32, pname uint32) int32 {
	dr.record("GetProgramiv", program, pname)
	p := dr.liveProgram(program)
	if p == nil {
		return 0
	}
	switch pname {
	case glctx.LinkStatus:
		return boolInt(p.Linked)
	case glctx.InfoLogLength:
		return logLength(p.Log)
	case glctx.AttachedShaders:
		return int32(len(p.Attached))
	}
	dr.setError(glctx.InvalidEnum)
	return 0
}

func (dr *Driver) GetProgramInfoLog(program uint32, bufSize int32) string {
	dr.record("GetProgramInfoLog", program, bufSize)
	p := dr.liveProgram(program)
	if p == nil {
		return ""
	}
	return truncateLog(p.Log, bufSize)
}

func (dr *Driver) UseProgram(program uint32) {
	dr.record("UseProgram", program)
	if program != 0 {
		p := dr.liveProgram(program)
		if p == nil {
			return
		}
		if !p.Linked {
			dr.setError(glctx.InvalidOperation)
			return
		}
	}
	dr.program = program
}

func (dr *Driver) DeleteProgram(program uint32) {
	dr.record("DeleteProgram", program)
	if program == 0 {
		return
	}
	if p := dr.liveProgram(program); p != nil {
		p.Deleted = true
	}
}

////////  Buffers

func (dr *Driver) GenBuffer() uint32 {
	dr.record("GenBuffer")
	id := dr.newID()
	dr.buffers[id] = &Buffer{ID: id}
	return id
}

func (dr *Driver) BindBuffer(target, buffer uint32) {
	dr.record("BindBuffer", target, buffer)
	if target != glctx.ArrayBuffer {
		dr.setError(glctx.InvalidEnum)
		return
	}
	if buffer != 0 {
		b, ok := dr.buffers[buffer]
		if !ok || b.Deleted {
			dr.setError(glctx.InvalidValue)
			return
		}
	}
	dr.arrayBuffer = buffer
}

func (dr *Driver) BufferData(target uint32, data []float32, usage uint32) {
	dr.record("BufferData", target, len(data), usage)
	if target != glctx.ArrayBuffer {
		dr.setError(glctx.InvalidEnum)
		return
	}
	b, ok := dr.buffers[dr.arrayBuffer]
	if !ok {
		dr.setError(glctx.InvalidOperation)
		return
	}
	b.Data = slices.Clone(data)
	b.Usage = usage
}

func (dr *Driver) DeleteBuffer(buffer uint32) {
	dr.record("DeleteBuffer", buffer)
	b, ok := dr.buffers[buffer]
	if !ok || b.Deleted {
		dr.setError(glctx.InvalidValue)
		return
	}
	b.Deleted = true
	if dr.arrayBuffer == buffer {
		dr.arrayBuffer = 0
	}
}

////////  Vertex arrays

func (dr *Driver) GenVertexArray() uint32 {
	dr.record("GenVertexArray")
	id := dr.newID()
	dr.arrays[id] = &VertexArray{ID: id, Attribs: make(map[uint32]*Attrib)}
	return id
}

func (dr *Driver) BindVertexArray(array uint32) {
	dr.record("BindVertexArray", array)
	if array != 0 {
		a, ok := dr.arrays[array]
		if !ok || a.Deleted {
			dr.setError(glctx.InvalidOperation)
			return
		}
	}
	dr.vertexArray = array
}

func (dr *Driver) attrib(index uint32) *Attrib {
	a, ok := dr.arrays[dr.vertexArray]
	if !ok {
		dr.setError(glctx.InvalidOperation)
		return nil
	}
	at, ok := a.Attribs[index]
	if !ok {
		at = &Attrib{}
		a.Attribs[index] = at
	}
	return at
}

func (dr *Driver) EnableVertexAttribArray(index uint32) {
	dr.record("EnableVertexAttribArray", index)
	if at := dr.attrib(index); at != nil {
		at.Enabled = true
	}
}

func (dr *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	dr.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	if dr.arrayBuffer == 0 {
		dr.setError(glctx.InvalidOperation)
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		dr.setError(glctx.InvalidValue)
		return
	}
	at := dr.attrib(index)
	if at == nil {
		return
	}
	at.Buffer = dr.arrayBuffer
	at.Size = size
	at.Type = xtype
	at.Normalized = normalized
	at.Stride = stride
	at.Offset = offset
}

func (dr *Driver) DeleteVertexArray(array uint32) {
	dr.record("DeleteVertexArray", array)
	a, ok := dr.arrays[array]
	if !ok || a.Deleted {
		dr.setError(glctx.InvalidValue)
		return
	}
	a.Deleted = true
	if dr.vertexArray == array {
		dr.vertexArray = 0
	}
}

////////  Drawing

func (dr *Driver) Viewport(x, y, width, height int32) {
	dr.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		dr.setError(glctx.InvalidValue)
		return
	}
	dr.ViewportRect = [4]int32{x, y, width, height}
}

func (dr *Driver) ClearColor(r, g, b, a float32) {
	dr.record("ClearColor", r, g, b, a)
	dr.ClearRGBA = [4]float32{r, g, b, a}
}

func (dr *Driver) Clear(mask uint32) {
	dr.record("Clear", mask)
	dr.Clears++
}

func (dr *Driver) DrawArrays(mode uint32, first, count int32) {
	dr.record("DrawArrays", mode, first, count)
	if first < 0 || count < 0 {
		dr.setError(glctx.InvalidValue)
		return
	}
	if dr.program == 0 || dr.vertexArray == 0 {
		dr.setError(glctx.InvalidOperation)
		return
	}
	p := dr.programs[dr.program]
	a := dr.arrays[dr.vertexArray]
	if p.Deleted || a.Deleted {
		dr.setError(glctx.InvalidOperation)
		return
	}
	dr.Draws = append(dr.Draws, Draw{Mode: mode, First: first, Count: count, Program: dr.program, VertexArray: dr.vertexArray})
}

func (dr *Driver) GetError() uint32 {
	dr.record("GetError")
	err := dr.err
	dr.err = glctx.NoError
	return err
}

func boolInt(b bool) int32 {
	if b {
		return glctx.True
	}
	return glctx.False
}

// logLength returns the info log length as reported by the driver,
// which includes the null terminator, or 0 for an empty log.
func logLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log) + 1)
}

// truncateLog returns at most bufSize-1 bytes of the log, leaving
// room for the null terminator.
func truncateLog(log string, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	if int(bufSize-1) < len(log) {
		return log[:bufSize-1]
	}
	return log
}
