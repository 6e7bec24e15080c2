// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"testing"

	"cogentcore.org/gltriangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, events.CodeEscape, glfwKeyCode(glfw.KeyEscape))
	assert.Equal(t, events.CodeReturnEnter, glfwKeyCode(glfw.KeyKPEnter))
	assert.Equal(t, events.CodeQ, glfwKeyCode(glfw.KeyQ))
	assert.Equal(t, events.CodeUnknown, glfwKeyCode(glfw.KeyF5))
}

// The callbacks only touch the queue, so they can be driven
// without a display on a window that was never opened.
func TestCallbacks(t *testing.T) {
	w := &Window{}
	w.refresh(nil)
	w.fbResized(nil, 1024, 768)
	w.keyEvent(nil, glfw.KeyEscape, 0, glfw.Release, 0)
	w.keyEvent(nil, glfw.KeyEscape, 0, glfw.Press, 0)
	w.focus(nil, true)
	w.closeReq(nil)

	var got []events.Event
	for {
		ev, ok := w.NextEvent()
		if !ok {
			break
		}
		got = append(got, ev)
	}
	require.Len(t, got, 5)
	assert.Equal(t, events.Redraw, got[0].Type())
	assert.Equal(t, image.Pt(1024, 768), got[1].(*events.WindowResize).Size)
	assert.Equal(t, events.CodeEscape, got[2].(*events.Key).Code)
	assert.Equal(t, events.UnknownType, got[3].Type())
	assert.Equal(t, events.Close, got[4].Type())
}

func TestReleasedWindow(t *testing.T) {
	w := &Window{}
	w.Release()
	w.SwapBuffers()
	w.Resize(image.Pt(3, 4))
	assert.Equal(t, image.Pt(3, 4), w.Size())
	_, ok := w.NextEvent()
	assert.False(t, ok)
}
