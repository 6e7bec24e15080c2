// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/gltriangle/glctx"
)

// Stage is one stage of the shader pipeline, compiled independently
// before linking.
type Stage int32

const (
	// VertexStage processes each vertex.
	VertexStage Stage = iota

	// FragmentStage computes the color of each fragment.
	FragmentStage
)

var stageNames = [...]string{
	VertexStage:   "vertex",
	FragmentStage: "fragment",
}

var glStages = [...]uint32{
	VertexStage:   glctx.VertexShader,
	FragmentStage: glctx.FragmentShader,
}

func (st Stage) String() string {
	if !st.IsValid() {
		return "Stage(" + strconv.Itoa(int(st)) + ")"
	}
	return stageNames[st]
}

// GLType returns the OpenGL shader type for the stage, 0 if unknown.
func (st Stage) GLType() uint32 {
	if !st.IsValid() {
		return 0
	}
	return glStages[st]
}

// IsValid returns whether st is a known stage.
func (st Stage) IsValid() bool {
	return st >= 0 && int(st) < len(glStages)
}

// ParseStage returns the stage with the given name (vertex or fragment,
// also accepting the vert and frag file extensions).
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(s) {
	case "vertex", "vert":
		return VertexStage, nil
	case "fragment", "frag":
		return FragmentStage, nil
	}
	return 0, fmt.Errorf("shader: unknown stage %q", s)
}
