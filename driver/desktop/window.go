// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"log/slog"
	"unsafe"

	"cogentcore.org/gltriangle/base/errors"
	"cogentcore.org/gltriangle/config"
	"cogentcore.org/gltriangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window with a current GL context. It is the
// [events.Source] and the surface of the render loop.
type Window struct {
	glw   *glfw.Window
	queue events.Queue
	size  image.Point
}

// NewWindow opens a fixed-size window with a GL context of the given
// version and makes the context current on the calling thread. One redraw event is
// queued for the initial paint.
func NewWindow(wcfg config.Window, gcfg config.GL) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, gcfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, gcfg.Minor)
	if gcfg.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glw, err := glfw.CreateWindow(wcfg.Width, wcfg.Height, wcfg.Title, nil, nil)
	if err != nil {
		return nil, &ContextCreationError{Op: "create window", Err: err}
	}
	if glw == nil {
		return nil, &ContextCreationError{Op: "create window", Err: errors.New("no window returned")}
	}
	glw.MakeContextCurrent()

	w := &Window{glw: glw}
	w.size = image.Pt(glw.GetFramebufferSize())

	glw.SetFramebufferSizeCallback(w.fbResized)
	glw.SetCloseCallback(w.closeReq)
	glw.SetRefreshCallback(w.refresh)
	glw.SetFocusCallback(w.focus)
	glw.SetIconifyCallback(w.iconify)
	glw.SetKeyCallback(w.keyEvent)

	w.queue.Send(events.NewRedraw())
	slog.Debug("desktop: window created", "title", wcfg.Title, "size", w.size)
	return w, nil
}

// Size returns the drawable size of the window in pixels, which can
// differ from the size in screen coordinates on high-DPI screens.
func (w *Window) Size() image.Point {
	return w.size
}

// ProcAddress returns the address of the named GL entry point in the
// current context.
func (w *Window) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// NextEvent returns the next event, waiting for the window system to
// deliver one if none are queued. It reports false once the window has
// been released and no events remain.
func (w *Window) NextEvent() (events.Event, bool) {
	for {
		if ev := w.queue.NextEvent(); ev != nil {
			return ev, true
		}
		if w.glw == nil {
			return nil, false
		}
		glfw.WaitEvents()
	}
}

// Resize records the new drawable size.
func (w *Window) Resize(size image.Point) {
	w.size = size
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	if w.glw != nil {
		w.glw.SwapBuffers()
	}
}

// Release destroys the window and its context.
func (w *Window) Release() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}
