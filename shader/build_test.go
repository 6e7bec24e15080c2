// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReleasesUnits(t *testing.T) {
	dr, dev := newDevice()
	pr, err := Build(dev,
		Source{Stage: VertexStage, Text: passVert},
		Source{Stage: FragmentStage, Text: passFrag})
	require.NoError(t, err)
	shaders, programs, _, _ := dr.Live()
	assert.Zero(t, shaders)
	assert.Equal(t, 1, programs)
	assert.Equal(t, 2, dr.CallCount("DeleteShader"))

	pr.Release()
	_, programs, _, _ = dr.Live()
	assert.Zero(t, programs)
}

func TestBuildCompileFailure(t *testing.T) {
	dr, dev := newDevice()
	_, err := Build(dev,
		Source{Stage: VertexStage, Text: passVert},
		Source{Stage: FragmentStage, Text: "void main(){ color = vec4(1.0) }"})
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, FragmentStage, ce.Stage)
	shaders, programs, _, _ := dr.Live()
	assert.Zero(t, shaders)
	assert.Zero(t, programs)
	assert.Zero(t, dr.CallCount("CreateProgram"))
}

func TestBuildLinkFailure(t *testing.T) {
	dr, dev := newDevice()
	_, err := Build(dev,
		Source{Stage: VertexStage, Text: passVert},
		Source{Stage: VertexStage, Text: passVert})
	var le *LinkError
	require.ErrorAs(t, err, &le)
	shaders, programs, _, _ := dr.Live()
	assert.Zero(t, shaders)
	assert.Zero(t, programs)
}

func TestBuildWGSLError(t *testing.T) {
	dr, dev := newDevice()
	_, err := Build(dev, WGSLSources("fn broken( {", "vs_main", "fs_main")...)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, VertexStage, ce.Stage)
	assert.NotEmpty(t, ce.Message)
	assert.Empty(t, dr.Calls)
}

func TestOpenSource(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "pass.frag")
	require.NoError(t, os.WriteFile(fn, []byte(passFrag), 0o644))
	sr, err := OpenSource(fn)
	require.NoError(t, err)
	assert.Equal(t, FragmentStage, sr.Stage)
	assert.Equal(t, GLSL, sr.Lang)
	assert.Equal(t, passFrag, sr.Text)

	_, err = OpenSource(filepath.Join(dir, "pass.glsl"))
	assert.Error(t, err)
	_, err = OpenSource(filepath.Join(dir, "missing.vert"))
	assert.Error(t, err)

	wf := filepath.Join(dir, "tri.wgsl")
	require.NoError(t, os.WriteFile(wf, []byte("// module"), 0o644))
	srcs, err := OpenWGSL(wf, "vs", "fs")
	require.NoError(t, err)
	require.Len(t, srcs, 2)
	assert.Equal(t, WGSL, srcs[1].Lang)
	assert.Equal(t, "fs", srcs[1].Entry)
}

func TestParse(t *testing.T) {
	st, err := ParseStage("Vert")
	require.NoError(t, err)
	assert.Equal(t, VertexStage, st)
	_, err = ParseStage("geometry")
	assert.Error(t, err)
	assert.Equal(t, "fragment", FragmentStage.String())
	assert.Equal(t, "Stage(9)", Stage(9).String())

	ln, err := ParseLang("WGSL")
	require.NoError(t, err)
	assert.Equal(t, WGSL, ln)
	ln, err = ParseLang("")
	require.NoError(t, err)
	assert.Equal(t, GLSL, ln)
	_, err = ParseLang("hlsl")
	assert.Error(t, err)
	assert.Equal(t, "wgsl", WGSL.String())
	assert.Equal(t, "Langs(4)", Langs(4).String())
}
