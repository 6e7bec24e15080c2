// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders holds the built-in shader sources for drawing
// a triangle with per-vertex colors: position at attribute
// location 0 and color at location 1.
package shaders

import (
	_ "embed"

	"cogentcore.org/gltriangle/shader"
)

//go:embed triangle.vert
var TriangleVert string

//go:embed triangle.frag
var TriangleFrag string

//go:embed triangle.wgsl
var TriangleWGSL string

// Entry points of [TriangleWGSL].
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Triangle returns the built-in vertex and fragment sources
// in the given language.
func Triangle(lang shader.Langs) []shader.Source {
	if lang == shader.WGSL {
		return shader.WGSLSources(TriangleWGSL, VertexEntry, FragmentEntry)
	}
	return []shader.Source{
		{Stage: shader.VertexStage, Lang: shader.GLSL, Text: TriangleVert},
		{Stage: shader.FragmentStage, Lang: shader.GLSL, Text: TriangleFrag},
	}
}
