// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"cogentcore.org/gltriangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	w.queue.Send(events.NewResize(image.Pt(width, height)))
}

func (w *Window) closeReq(gw *glfw.Window) {
	w.queue.Send(events.NewClose())
}

func (w *Window) refresh(gw *glfw.Window) {
	w.queue.Send(events.NewRedraw())
}

func (w *Window) focus(gw *glfw.Window, focused bool) {
	if focused {
		w.queue.Send(events.NewOther("focus"))
	} else {
		w.queue.Send(events.NewOther("blur"))
	}
}

func (w *Window) iconify(gw *glfw.Window, iconified bool) {
	if iconified {
		w.queue.Send(events.NewOther("minimize"))
	} else {
		w.queue.Send(events.NewOther("restore"))
	}
}

// physical key
func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	w.queue.Send(events.NewKey(glfwKeyCode(ky)))
}

func glfwKeyCode(kcode glfw.Key) events.Codes {
	switch kcode {
	case glfw.KeyEscape:
		return events.CodeEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return events.CodeReturnEnter
	case glfw.KeySpace:
		return events.CodeSpacebar
	case glfw.KeyTab:
		return events.CodeTab
	case glfw.KeyBackspace:
		return events.CodeBackspace
	case glfw.KeyQ:
		return events.CodeQ
	case glfw.KeyW:
		return events.CodeW
	default:
		return events.CodeUnknown
	}
}
