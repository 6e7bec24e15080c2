// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/gltriangle/base/logx"
	"cogentcore.org/gltriangle/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the command-line flags shared by all commands.
type options struct {
	configFile                  string
	veryVerbose, verbose, quiet bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gltriangle",
		Short:         "Draw a colored triangle with OpenGL",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "config file (.toml, .yaml or .yml)")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	addConfigFlags(pf)

	root.AddCommand(newConfigCmd(opts))
	return root
}

// addConfigFlags adds the flags that override config values.
// Their defaults are the config defaults, for the help text only:
// a flag only overrides when given explicitly.
func addConfigFlags(fs *pflag.FlagSet) {
	def := config.Defaults()
	fs.String("title", def.Window.Title, "window title")
	fs.Int("width", def.Window.Width, "window width")
	fs.Int("height", def.Window.Height, "window height")
	fs.Float32Slice("clear-color", def.Render.ClearColor[:], "RGBA clear color")
	fs.String("lang", def.Shaders.Lang, "shading language of the shader files: glsl or wgsl")
	fs.String("vertex", "", "GLSL vertex shader file (.vert)")
	fs.String("fragment", "", "GLSL fragment shader file (.frag)")
	fs.String("module", "", "WGSL shader module file")
	fs.String("log-level", "", "log level: debug, info, warn or error")
}

// loadConfig reads the config file, if any, on top of the defaults,
// applies the flags that were given, sets up logging and validates.
func loadConfig(opts *options, fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Defaults()
	if opts.configFile != "" {
		var err error
		cfg, err = config.Open(opts.configFile)
		if err != nil {
			return nil, err
		}
	}
	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}

	if opts.veryVerbose || opts.verbose || opts.quiet {
		logx.UserLevel = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
	} else {
		logx.UserLevel = logx.LevelFromString(cfg.Log.Level, logx.UserLevel)
	}
	logx.SetDefaultLogger()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags sets the config values of the flags that were given.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetInt(name)
		}
	}
	str("title", &cfg.Window.Title)
	num("width", &cfg.Window.Width)
	num("height", &cfg.Window.Height)
	if err == nil && fs.Changed("clear-color") {
		var cc []float32
		cc, err = fs.GetFloat32Slice("clear-color")
		if err == nil && len(cc) != len(cfg.Render.ClearColor) {
			err = fmt.Errorf("--clear-color: want %d components, got %d", len(cfg.Render.ClearColor), len(cc))
		}
		if err == nil {
			copy(cfg.Render.ClearColor[:], cc)
		}
	}
	str("lang", &cfg.Shaders.Lang)
	str("vertex", &cfg.Shaders.Vertex)
	str("fragment", &cfg.Shaders.Fragment)
	str("module", &cfg.Shaders.Module)
	str("log-level", &cfg.Log.Level)
	if err != nil {
		return err
	}
	return cfg.ExpandPaths()
}

func newConfigCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}
			ft, err := config.FormatOf("config." + format)
			if err != nil {
				return err
			}
			return config.Write(cfg, os.Stdout, ft)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	return cmd
}
