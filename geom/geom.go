// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom manages the fixed vertex data drawn by gltriangle:
// an interleaved vertex buffer and the vertex array describing how
// its bytes map to shader attributes.
package geom

import (
	"golang.org/x/image/math/f32"
)

// Vertex is one vertex with a position and a color.
type Vertex struct {
	Pos   f32.Vec3
	Color f32.Vec3
}

// Triangle is the default geometry: a triangle with a red,
// a green and a blue corner.
var Triangle = []Vertex{
	{Pos: f32.Vec3{0.6, -0.5, 0}, Color: f32.Vec3{1, 0, 0}},  // bottom right
	{Pos: f32.Vec3{-0.6, -0.5, 0}, Color: f32.Vec3{0, 1, 0}}, // bottom left
	{Pos: f32.Vec3{0, 0.5, 0}, Color: f32.Vec3{0, 0, 1}},     // top
}

// Floats returns the vertices interleaved as position then color,
// matching the [PosColor] layout.
func Floats(verts []Vertex) []float32 {
	fs := make([]float32, 0, len(verts)*6)
	for _, v := range verts {
		fs = append(fs, v.Pos[0], v.Pos[1], v.Pos[2], v.Color[0], v.Color[1], v.Color[2])
	}
	return fs
}
