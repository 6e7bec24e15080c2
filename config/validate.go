// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/gltriangle/base/errors"
)

// Error is an invalid config value.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Validate checks that the config describes a window and context the
// triangle can be drawn into. All problems are reported, joined.
func (cfg *Config) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, &Error{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if cfg.Window.Width <= 0 {
		bad("window.width", "must be positive, not %d", cfg.Window.Width)
	}
	if cfg.Window.Height <= 0 {
		bad("window.height", "must be positive, not %d", cfg.Window.Height)
	}
	if cfg.GL.Major < 4 || (cfg.GL.Major == 4 && cfg.GL.Minor < 1) {
		bad("gl", "version %d.%d is below 4.1", cfg.GL.Major, cfg.GL.Minor)
	}
	if !cfg.GL.Core {
		bad("gl.core", "only core profile contexts are supported")
	}
	for i, c := range cfg.Render.ClearColor {
		if c < 0 || c > 1 {
			bad("render.clear-color", "component %d is %g, outside [0, 1]", i, c)
		}
	}

	sh := cfg.Shaders
	switch strings.ToLower(sh.Lang) {
	case "", "glsl":
		if sh.Module != "" {
			bad("shaders.module", "only used with lang wgsl")
		}
		if (sh.Vertex == "") != (sh.Fragment == "") {
			bad("shaders", "vertex and fragment must be given together")
		}
		checkExt := func(field, path, ext string) {
			if path != "" && filepath.Ext(path) != ext {
				bad(field, "%q does not have extension %s", path, ext)
			}
		}
		checkExt("shaders.vertex", sh.Vertex, ".vert")
		checkExt("shaders.fragment", sh.Fragment, ".frag")
	case "wgsl":
		if sh.Vertex != "" || sh.Fragment != "" {
			bad("shaders", "vertex and fragment are only used with lang glsl")
		}
	default:
		bad("shaders.lang", "unknown language %q", sh.Lang)
	}
	if cfg.Log.Level != "" {
		var l slog.Level
		if l.UnmarshalText([]byte(strings.ToUpper(cfg.Log.Level))) != nil {
			bad("log.level", "unknown level %q", cfg.Log.Level)
		}
	}
	return errors.Join(errs...)
}
