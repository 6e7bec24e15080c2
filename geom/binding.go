// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gltriangle/glctx"
)

// Binding is a vertex buffer holding fixed vertex data together with
// the vertex array that describes its layout. The data is uploaded
// once when the Binding is made and never reallocated.
type Binding struct {
	dev    *glctx.Device
	init   bool
	buffer uint32
	array  uint32
	count  int32
}

// NewBinding uploads the given interleaved vertex data and configures
// a vertex array for it with the given layout.
func NewBinding(dev *glctx.Device, data []float32, layout Layout) (*Binding, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("geom: no vertex data")
	}
	if len(data)%int(layout.Stride) != 0 {
		return nil, fmt.Errorf("geom: %d floats is not a whole number of %d-float vertices", len(data), layout.Stride)
	}
	bd := &Binding{dev: dev, count: int32(len(data) / int(layout.Stride))}

	bd.buffer = dev.GenBuffer()
	dev.BindBuffer(glctx.ArrayBuffer, bd.buffer)
	dev.BufferData(glctx.ArrayBuffer, data, glctx.StaticDraw)
	dev.BindBuffer(glctx.ArrayBuffer, 0)

	bd.array = dev.GenVertexArray()
	dev.BindVertexArray(bd.array)
	dev.BindBuffer(glctx.ArrayBuffer, bd.buffer)
	stride := layout.Stride * glctx.FloatBytes
	for _, at := range layout.Attribs {
		dev.EnableVertexAttribArray(at.Slot)
		dev.VertexAttribPointer(at.Slot, at.Size, glctx.Float, false, stride, int(at.Offset*glctx.FloatBytes))
	}
	dev.BindBuffer(glctx.ArrayBuffer, 0)
	dev.BindVertexArray(0)

	bd.init = true
	slog.Debug("geom: uploaded vertices", "count", bd.count, "buffer", bd.buffer, "array", bd.array)
	return bd, nil
}

// NewVertices is [NewBinding] for position + color vertices.
func NewVertices(dev *glctx.Device, verts []Vertex) (*Binding, error) {
	return NewBinding(dev, Floats(verts), PosColor)
}

// Bind binds the vertex array for drawing.
func (bd *Binding) Bind() {
	if !bd.init {
		return
	}
	bd.dev.BindVertexArray(bd.array)
}

// Count returns the number of vertices.
func (bd *Binding) Count() int32 {
	return bd.count
}

// Buffer returns the GPU handle of the vertex buffer, 0 once released.
func (bd *Binding) Buffer() uint32 {
	return bd.buffer
}

// Array returns the GPU handle of the vertex array, 0 once released.
func (bd *Binding) Array() uint32 {
	return bd.array
}

// Release deletes the vertex array and then the buffer. It is safe
// to call more than once and on a nil Binding.
func (bd *Binding) Release() {
	if bd == nil || !bd.init {
		return
	}
	bd.dev.DeleteVertexArray(bd.array)
	bd.dev.DeleteBuffer(bd.buffer)
	bd.array = 0
	bd.buffer = 0
	bd.init = false
}
