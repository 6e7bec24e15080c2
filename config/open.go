// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/gltriangle/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

var formatNames = [...]string{
	TOML: "toml",
	YAML: "yaml",
}

func (ft Formats) String() string {
	if ft < 0 || int(ft) >= len(formatNames) {
		return "Formats(" + strconv.Itoa(int(ft)) + ")"
	}
	return formatNames[ft]
}

// FormatOf returns the format of the given file name, from its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: %q: unknown file format (want .toml, .yaml or .yml)", filename)
}

// Open reads the given config file on top of the default values.
// Fields the file does not mention keep their defaults. A leading ~
// in filename or in the shader paths is expanded to the home directory.
func Open(filename string) (*Config, error) {
	ft, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	filename, err = homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := Defaults()
	if err := Read(cfg, bytes.NewReader(b), ft); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandPaths expands a leading ~ in the shader file paths.
func (cfg *Config) ExpandPaths() error {
	for _, p := range []*string{&cfg.Shaders.Vertex, &cfg.Shaders.Fragment, &cfg.Shaders.Module} {
		ex, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = ex
	}
	return nil
}

// Read decodes config data in the given format into cfg.
func Read(cfg *Config, r io.Reader, ft Formats) error {
	switch ft {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	default:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	}
}

// Write encodes cfg in the given format.
func Write(cfg *Config, w io.Writer, ft Formats) error {
	switch ft {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(cfg)
	}
}
