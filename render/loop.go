// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the event-driven redraw loop that draws one
// triangle into a window surface.
package render

import (
	"image"
	"log/slog"

	"cogentcore.org/gltriangle/events"
	"cogentcore.org/gltriangle/geom"
	"cogentcore.org/gltriangle/glctx"
	"cogentcore.org/gltriangle/shader"
)

// Surface is the window side of the rendering context: the thing that
// is resized, presented and finally destroyed along with its context.
type Surface interface {
	// Resize informs the surface of its new drawable size.
	Resize(size image.Point)

	// SwapBuffers presents the frame just drawn.
	SwapBuffers()

	// Release destroys the surface and its context.
	Release()
}

// Options are the fixed drawing parameters of a [Loop].
type Options struct {
	// Size is the initial drawable size, in pixels.
	Size image.Point

	// ClearColor is the RGBA color the frame is cleared to.
	ClearColor [4]float32
}

// Loop is the render loop. It owns the program, the geometry and the
// surface, and releases them in that order.
type Loop struct {
	dev      *glctx.Device
	surface  Surface
	program  *shader.Program
	geometry *geom.Binding

	size     image.Point
	state    State
	frames   int
	resizes  int
	released bool
}

// NewLoop returns a new loop in the [Running] state. It sets the
// viewport to the initial size and the clear color, once; neither
// changes afterwards.
func NewLoop(dev *glctx.Device, sf Surface, pr *shader.Program, gb *geom.Binding, opts Options) *Loop {
	lp := &Loop{
		dev:      dev,
		surface:  sf,
		program:  pr,
		geometry: gb,
		size:     opts.Size,
	}
	dev.Viewport(0, 0, int32(opts.Size.X), int32(opts.Size.Y))
	c := opts.ClearColor
	dev.ClearColor(c[0], c[1], c[2], c[3])
	return lp
}

// State returns the current state.
func (lp *Loop) State() State { return lp.state }

// Size returns the last drawable size reported to the loop.
func (lp *Loop) Size() image.Point { return lp.size }

// Frames returns the number of frames drawn.
func (lp *Loop) Frames() int { return lp.frames }

// Resizes returns the number of resize events handled.
func (lp *Loop) Resizes() int { return lp.resizes }

// Handle applies one event and returns the resulting state.
// A [events.Teardown] never changes the state. Any other event
// received once the loop is [Exiting] is ignored.
func (lp *Loop) Handle(ev events.Event) State {
	if ev.Type() == events.Teardown {
		slog.Debug("render: teardown", "state", lp.state)
		return lp.state
	}
	if lp.state == Exiting {
		return lp.state
	}
	switch ev.Type() {
	case events.Resize:
		if re, ok := ev.(*events.WindowResize); ok {
			lp.resize(re.Size)
		}
	case events.Close:
		lp.state = Exiting
	case events.KeyDown:
		if ke, ok := ev.(*events.Key); ok && ke.Code == events.CodeEscape {
			lp.state = Exiting
		}
	case events.Redraw:
		lp.draw()
	}
	return lp.state
}

func (lp *Loop) resize(size image.Point) {
	lp.surface.Resize(size)
	lp.size = size
	lp.resizes++
}

func (lp *Loop) draw() {
	lp.dev.Clear(glctx.ColorBufferBit)
	lp.program.Activate()
	lp.geometry.Bind()
	lp.dev.DrawArrays(glctx.Triangles, 0, lp.geometry.Count())
	lp.surface.SwapBuffers()
	lp.frames++
}

// Run takes events from src and handles them until the loop is
// [Exiting] or src is closed, then handles a final [events.Teardown].
// Waiting on src is the only point where Run blocks.
func (lp *Loop) Run(src events.Source) {
	for lp.state == Running {
		ev, ok := src.NextEvent()
		if !ok {
			lp.state = Exiting
			break
		}
		slog.Debug("render: event", "event", ev)
		lp.Handle(ev)
	}
	lp.Handle(events.NewTeardown())
	slog.Debug("render: loop done", "frames", lp.frames, "resizes", lp.resizes)
}

// Release releases the program, then the geometry, then the surface.
// Only the first call has any effect.
func (lp *Loop) Release() {
	if lp.released {
		return
	}
	lp.released = true
	lp.program.Release()
	lp.geometry.Release()
	lp.surface.Release()
}
