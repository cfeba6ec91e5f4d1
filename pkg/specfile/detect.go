// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition file.
type Format int

const (
	Unknown Format = iota
	TOML
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return "unknown"
}

// DetectFormat picks the encoding of a definition file from its name and,
// failing that, from its contents.
func DetectFormat(path string, data []byte) Format {
	if f, ok := detectByName(path); ok {
		return f
	}
	if detectTOML(data) {
		return TOML
	}
	if detectYAML(data) {
		return YAML
	}
	return Unknown
}

func detectByName(path string) (Format, bool) {
	if path == "" {
		return Unknown, false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, true
	case ".yml", ".yaml":
		return YAML, true
	}
	return Unknown, false
}

// argumentsForm is the smallest document shape both detectors look for.
type argumentsForm struct {
	Program   string `toml:"program" yaml:"program"`
	Arguments []any  `toml:"arguments" yaml:"arguments"`
}

// detectTOML checks for a top-level program or arguments key in a TOML
// document.
func detectTOML(data []byte) bool {
	var form argumentsForm
	if _, err := toml.Decode(string(data), &form); err != nil {
		return false
	}
	return form.Program != "" || len(form.Arguments) > 0
}

// detectYAML is detectTOML for YAML documents.
func detectYAML(data []byte) bool {
	var form argumentsForm
	if err := yaml.Unmarshal(data, &form); err != nil {
		return false
	}
	return form.Program != "" || len(form.Arguments) > 0
}
