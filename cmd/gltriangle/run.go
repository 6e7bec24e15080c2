// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/gltriangle/config"
	"cogentcore.org/gltriangle/driver/desktop"
	"cogentcore.org/gltriangle/geom"
	"cogentcore.org/gltriangle/glctx"
	"cogentcore.org/gltriangle/glctx/gogl"
	"cogentcore.org/gltriangle/render"
	"cogentcore.org/gltriangle/shader"
	"cogentcore.org/gltriangle/shader/shaders"
)

// run opens the window, builds the program and geometry, and runs the
// render loop until it exits. Everything it creates is released before
// it returns, in dependency order.
func run(cfg *config.Config) error {
	srcs, err := shaderSources(cfg.Shaders)
	if err != nil {
		return err
	}

	if err := desktop.Init(); err != nil {
		return err
	}
	defer desktop.Terminate()

	win, err := desktop.NewWindow(cfg.Window, cfg.GL)
	if err != nil {
		return err
	}
	ctx, err := gogl.Init(win.ProcAddress)
	if err != nil {
		win.Release()
		return &desktop.ContextCreationError{Op: "load OpenGL", Err: err}
	}
	slog.Info("OpenGL context", "version", ctx.Version())
	dev := glctx.NewDevice(ctx)

	pr, err := shader.Build(dev, srcs...)
	if err != nil {
		win.Release()
		return err
	}
	gb, err := geom.NewVertices(dev, geom.Triangle)
	if err != nil {
		pr.Release()
		win.Release()
		return err
	}

	lp := render.NewLoop(dev, win, pr, gb, render.Options{
		Size:       win.Size(),
		ClearColor: cfg.Render.ClearColor,
	})
	defer lp.Release()
	lp.Run(win)
	slog.Info("window closed", "frames", lp.Frames())
	return nil
}

// shaderSources returns the shader sources named by the config,
// or the built-in triangle shaders if it names no files.
func shaderSources(sc config.Shaders) ([]shader.Source, error) {
	lang, err := shader.ParseLang(sc.Lang)
	if err != nil {
		return nil, err
	}
	switch {
	case lang == shader.WGSL && sc.Module != "":
		return shader.OpenWGSL(sc.Module, shaders.VertexEntry, shaders.FragmentEntry)
	case lang == shader.GLSL && sc.Vertex != "":
		vert, err := shader.OpenSource(sc.Vertex)
		if err != nil {
			return nil, err
		}
		frag, err := shader.OpenSource(sc.Fragment)
		if err != nil {
			return nil, err
		}
		return []shader.Source{vert, frag}, nil
	}
	return shaders.Triangle(lang), nil
}
