// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glmock

import (
	"fmt"
	"regexp"
	"strings"

	"cogentcore.org/gltriangle/glctx"
)

var mainRe = regexp.MustCompile(`\bvoid\s+main\s*\(`)

// Compile is the default [CompileFunc]. It does not understand GLSL,
// but catches the structural errors that matter for tests: empty
// source, unbalanced braces and statements missing their
// terminating semicolon. Diagnostics use the Mesa format
// "0:line(col): error: ...".
func Compile(kind uint32, src string) (bool, string) {
	if strings.TrimSpace(src) == "" {
		return false, "0:1(1): error: syntax error, unexpected end of file\n"
	}
	line, col := 1, 0
	depth := 0
	pending := false
	pendLine, pendCol := 1, 1
	for _, ln := range strings.SplitAfter(src, "\n") {
		code := ln
		if i := strings.Index(code, "//"); i >= 0 {
			code = code[:i]
		}
		if strings.HasPrefix(strings.TrimSpace(code), "#") {
			code = ""
		}
		col = 0
		for _, r := range code {
			col++
			switch r {
			case '{':
				depth++
				pending = false
			case '}':
				if pending {
					return false, fmt.Sprintf("0:%d(%d): error: syntax error, unexpected '}', expecting ',' or ';'\n", line, col)
				}
				depth--
				if depth < 0 {
					return false, fmt.Sprintf("0:%d(%d): error: syntax error, unexpected '}'\n", line, col)
				}
			case ';':
				pending = false
			case ' ', '\t', '\r', '\n':
			default:
				if !pending {
					pendLine, pendCol = line, col
				}
				pending = true
			}
		}
		line++
	}
	if depth > 0 || pending {
		return false, fmt.Sprintf("0:%d(%d): error: syntax error, unexpected end of file\n", pendLine, pendCol)
	}
	return true, ""
}

// StageName returns the lowercase name of the given shader kind.
func StageName(kind uint32) string {
	switch kind {
	case glctx.VertexShader:
		return "vertex"
	case glctx.FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// Link is the default [LinkFunc]. It requires every attached shader
// to be compiled and define main, and exactly one vertex and one
// fragment shader to be attached.
func Link(shaders []*Shader) (bool, string) {
	if len(shaders) == 0 {
		return false, "error: no shaders attached to the program\n"
	}
	var sb strings.Builder
	counts := map[uint32]int{}
	for _, s := range shaders {
		if !s.Compiled {
			fmt.Fprintf(&sb, "error: linking with uncompiled/unspecialized shader\n")
			continue
		}
		if !mainRe.MatchString(s.Source) {
			fmt.Fprintf(&sb, "error: %s shader lacks `main'\n", StageName(s.Kind))
		}
		counts[s.Kind]++
	}
	for _, kind := range []uint32{glctx.VertexShader, glctx.FragmentShader} {
		switch n := counts[kind]; {
		case n == 0:
			fmt.Fprintf(&sb, "error: program lacks a %s shader\n", StageName(kind))
		case n > 1:
			fmt.Fprintf(&sb, "error: function `main' is multiply defined in %d %s shaders\n", n, StageName(kind))
		}
	}
	if sb.Len() > 0 {
		return false, sb.String()
	}
	return true, ""
}
