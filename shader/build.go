// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import "cogentcore.org/gltriangle/glctx"

// Build compiles each of the given sources and links them into a
// program. The compiled units only live for the duration of the call:
// every unit that was compiled is released before Build returns,
// whether it succeeds or fails.
func Build(dev *glctx.Device, srcs ...Source) (*Program, error) {
	units := make([]*Unit, 0, len(srcs))
	defer func() {
		for _, un := range units {
			un.Release()
		}
	}()
	for _, sr := range srcs {
		code, err := sr.GLSL()
		if err != nil {
			return nil, err
		}
		un, err := Compile(dev, code, sr.Stage)
		if err != nil {
			return nil, err
		}
		units = append(units, un)
	}
	return Link(dev, units...)
}
