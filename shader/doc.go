// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shader compiles shader stages and links them into GPU programs.

A [Unit] owns one compiled shader object and a [Program] owns one
linked program object. Both are released exactly once by their Release
methods, which are safe to call again and are meant to be deferred by
the owner:

	pr, err := shader.Build(dev, vert, frag)
	if err != nil {
		return err
	}
	defer pr.Release()
	pr.Activate()

Sources can be GLSL, given to the driver as is, or WGSL, which is
translated to GLSL 4.10 with naga first.
*/
package shader
