// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the triangle window:
// the window surface, the requested GL context, the drawing parameters
// and the shader sources.
package config

import (
	"cogentcore.org/gltriangle/base/errors"
	"cogentcore.org/gltriangle/base/reflectx"
)

// Config is the main config struct.
type Config struct {

	// the window surface
	Window Window `toml:"window" yaml:"window"`

	// the requested GL context
	GL GL `toml:"gl" yaml:"gl"`

	// drawing parameters
	Render Render `toml:"render" yaml:"render"`

	// shader sources; empty paths use the built-in triangle shaders
	Shaders Shaders `toml:"shaders" yaml:"shaders"`

	// logging
	Log Log `toml:"log" yaml:"log"`
}

type Window struct {

	// the window title
	Title string `toml:"title" yaml:"title" default:"triangle"`

	// the initial width of the window, in screen coordinates
	Width int `toml:"width" yaml:"width" default:"512"`

	// the initial height of the window, in screen coordinates
	Height int `toml:"height" yaml:"height" default:"512"`
}

type GL struct {

	// the major version of the requested context
	Major int `toml:"major" yaml:"major" default:"4"`

	// the minor version of the requested context
	Minor int `toml:"minor" yaml:"minor" default:"1"`

	// whether to request a core profile context
	Core bool `toml:"core" yaml:"core" default:"true"`
}

type Render struct {

	// the RGBA color each frame is cleared to
	ClearColor [4]float32 `toml:"clear-color" yaml:"clear-color" default:"0.4 0.4 0.5 1"`
}

type Shaders struct {

	// the shading language of the sources: glsl or wgsl
	Lang string `toml:"lang" yaml:"lang" default:"glsl"`

	// the GLSL vertex shader file (.vert)
	Vertex string `toml:"vertex" yaml:"vertex"`

	// the GLSL fragment shader file (.frag)
	Fragment string `toml:"fragment" yaml:"fragment"`

	// the WGSL module file, used when lang is wgsl
	Module string `toml:"module" yaml:"module"`
}

type Log struct {

	// the log level: debug, info, warn or error; empty uses the default
	Level string `toml:"level" yaml:"level"`
}

// Defaults returns a new config with all of the default values set.
func Defaults() *Config {
	cfg := &Config{}
	errors.Must(reflectx.SetFromDefaultTags(cfg))
	return cfg
}
