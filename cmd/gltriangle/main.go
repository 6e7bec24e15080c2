// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gltriangle opens a window and draws a single colored triangle
// with OpenGL 4.1 core, redrawing when the window system asks for it,
// until the window is closed or Escape is pressed.
package main

import (
	"os"

	"cogentcore.org/gltriangle/base/errors"
	"cogentcore.org/gltriangle/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
