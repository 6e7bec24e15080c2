// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// Langs are the shading languages that sources can be written in.
type Langs int32

const (
	// GLSL is OpenGL shading language source, passed to the driver as is.
	GLSL Langs = iota

	// WGSL is WebGPU shading language source, translated to GLSL 4.10
	// before being passed to the driver.
	WGSL
)

var langNames = [...]string{
	GLSL: "glsl",
	WGSL: "wgsl",
}

func (ln Langs) String() string {
	if ln < 0 || int(ln) >= len(langNames) {
		return "Langs(" + strconv.Itoa(int(ln)) + ")"
	}
	return langNames[ln]
}

// ParseLang returns the language with the given name.
func ParseLang(s string) (Langs, error) {
	switch strings.ToLower(s) {
	case "glsl", "":
		return GLSL, nil
	case "wgsl":
		return WGSL, nil
	}
	return 0, fmt.Errorf("shader: unknown shading language %q", s)
}

// GLSLVersion is the GLSL version that WGSL sources are translated to,
// matching the OpenGL 4.1 core context.
var GLSLVersion = glsl.Version410

// Source is the source text of one shader stage.
type Source struct {
	Stage Stage
	Lang  Langs

	// Text is the source code.
	Text string

	// Entry is the entry point function for WGSL sources,
	// which can hold several stages in one module.
	Entry string
}

// OpenSource reads a source file. The stage is taken from the extension
// (.vert or .frag) and the language is GLSL. Use [OpenWGSL] for
// WGSL modules.
func OpenSource(filename string) (Source, error) {
	st, err := ParseStage(strings.TrimPrefix(filepath.Ext(filename), "."))
	if err != nil {
		return Source{}, fmt.Errorf("shader: %s: %w", filename, err)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return Source{}, err
	}
	return Source{Stage: st, Lang: GLSL, Text: string(b)}, nil
}

// OpenWGSL reads a WGSL module file and returns one source for
// each of the given stage entry points.
func OpenWGSL(filename, vertexEntry, fragmentEntry string) ([]Source, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return WGSLSources(string(b), vertexEntry, fragmentEntry), nil
}

// WGSLSources returns a vertex and a fragment source for the
// given entry points of one WGSL module.
func WGSLSources(module, vertexEntry, fragmentEntry string) []Source {
	return []Source{
		{Stage: VertexStage, Lang: WGSL, Text: module, Entry: vertexEntry},
		{Stage: FragmentStage, Lang: WGSL, Text: module, Entry: fragmentEntry},
	}
}

// GLSL returns the GLSL source text to give to the driver. A WGSL
// source that cannot be translated returns a [*CompileError].
func (sr Source) GLSL() (string, error) {
	switch sr.Lang {
	case GLSL:
		return sr.Text, nil
	case WGSL:
		code, err := translateWGSL(sr.Text, sr.Entry)
		if err != nil {
			return "", &CompileError{Stage: sr.Stage, Message: err.Error()}
		}
		return code, nil
	}
	return "", fmt.Errorf("shader: unknown shading language %v", sr.Lang)
}

// translateWGSL parses, validates and translates the given entry
// point of a WGSL module to GLSL.
func translateWGSL(src, entry string) (string, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return "", err
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return "", fmt.Errorf("lowering error: %w", err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return "", fmt.Errorf("validation error: %w", err)
	}
	if len(verrs) > 0 {
		return "", fmt.Errorf("validation failed: %w", &verrs[0])
	}
	code, _, err := glsl.Compile(module, glsl.Options{LangVersion: GLSLVersion, EntryPoint: entry})
	if err != nil {
		return "", err
	}
	return code, nil
}
