// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop provides the glfw window, GL context and event source
// the triangle is drawn with on desktop platforms.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// some operating systems require us to be on the main thread
	runtime.LockOSThread()
}

// ContextCreationError reports that no window or GL context with the
// requested properties could be created.
type ContextCreationError struct {
	Op  string
	Err error
}

func (e *ContextCreationError) Error() string {
	return fmt.Sprintf("desktop: %s: %v", e.Op, e.Err)
}

func (e *ContextCreationError) Unwrap() error { return e.Err }

// Init initializes glfw. It must be called from the main goroutine
// before [NewWindow], and matched by a call to [Terminate].
func Init() error {
	if err := glfw.Init(); err != nil {
		return &ContextCreationError{Op: "init", Err: err}
	}
	return nil
}

// Terminate destroys any remaining windows and releases glfw.
func Terminate() {
	glfw.Terminate()
}
