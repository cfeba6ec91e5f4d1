// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package specfile loads argument definitions for a clip.Registry from
// TOML or YAML documents.
//
// A TOML definition looks like:
//
//	program = "cc"
//	requires = ">= 1.0"
//
//	[[arguments]]
//	name = "--file"
//	aliases = ["-f"]
//	help = "input files"
//	[[arguments.params]]
//	name = "file"
//	arity = "*"
//	type = "file"
//
//	[[arguments]]
//	name = "mode"
//	mode = "positional"
//	type = "set:read,write,append"
package specfile

import (
	"bytes"
	_ "crypto/sha256" // for digest.FromBytes
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/opencontainers/go-digest"
	"github.com/yeetrun/clip/pkg/clip"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the definition format understood by this package. A
// document's requires constraint is checked against it.
const FormatVersion = "1.1.0"

// Definition is a decoded definition document.
type Definition struct {
	Program   string     `toml:"program" yaml:"program"`
	Requires  string     `toml:"requires,omitempty" yaml:"requires,omitempty"`
	Arguments []ArgEntry `toml:"arguments" yaml:"arguments"`

	// Digest identifies the decoded document contents. Load sets it.
	Digest digest.Digest `toml:"-" yaml:"-"`
}

type ArgEntry struct {
	Name    string       `toml:"name" yaml:"name"`
	Aliases []string     `toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Mode    string       `toml:"mode,omitempty" yaml:"mode,omitempty"`
	Type    string       `toml:"type,omitempty" yaml:"type,omitempty"`
	Help    string       `toml:"help,omitempty" yaml:"help,omitempty"`
	Params  []ParamEntry `toml:"params,omitempty" yaml:"params,omitempty"`
}

type ParamEntry struct {
	Name string `toml:"name" yaml:"name"`
	// Arity is a positive integer or "*" (also "unbounded"). Missing means 1.
	Arity any    `toml:"arity,omitempty" yaml:"arity,omitempty"`
	Type  string `toml:"type,omitempty" yaml:"type,omitempty"`
}

// Load reads and decodes the definition file at path. Files compressed
// with zstd or gzip are decompressed first.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name, data, err := decompress(path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	format := DetectFormat(name, data)
	if format == Unknown {
		return nil, fmt.Errorf("%s: unable to detect definition format", path)
	}
	def, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	def.Digest = digest.FromBytes(data)
	return def, nil
}

// Decode decodes a definition document and checks its requires constraint.
// Unknown keys are rejected.
func Decode(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	if err := checkRequires(def.Requires); err != nil {
		return nil, err
	}
	return &def, nil
}

func checkRequires(requires string) error {
	if requires == "" {
		return nil
	}
	c, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("invalid requires %q: %w", requires, err)
	}
	if !c.Check(semver.MustParse(FormatVersion)) {
		return fmt.Errorf("definition requires format %s, have %s", requires, FormatVersion)
	}
	return nil
}

// Registry builds a registry from the definition. Invalid entries are
// reported as errors wrapping *clip.RegistrationError rather than panics,
// since the definition is data.
func (d *Definition) Registry(opts ...clip.Option) (*clip.Registry, error) {
	reg := clip.NewRegistry(d.Program, opts...)
	for i, entry := range d.Arguments {
		arg, err := entry.argument()
		if err != nil {
			return nil, fmt.Errorf("arguments[%d] %q: %w", i, entry.Name, err)
		}
		if err := reg.Register(arg); err != nil {
			return nil, fmt.Errorf("arguments[%d]: %w", i, err)
		}
	}
	return reg, nil
}

func (e ArgEntry) argument() (clip.Argument, error) {
	arg := clip.CreateArg(e.Name).Help(e.Help)
	for _, alias := range e.Aliases {
		arg = arg.Alias(alias)
	}
	for _, p := range e.Params {
		arity, err := ParseArity(p.Arity)
		if err != nil {
			return clip.Argument{}, fmt.Errorf("param %q: %w", p.Name, err)
		}
		typ, err := ParseType(p.Type)
		if err != nil {
			return clip.Argument{}, fmt.Errorf("param %q: %w", p.Name, err)
		}
		arg = arg.AddParam(p.Name, arity, typ)
	}

	switch strings.ToLower(e.Mode) {
	case "", "flag":
		if e.Type != "" {
			return clip.Argument{}, errors.New("flags declare types on their params")
		}
		return arg, nil
	case "positional", "variadic":
	default:
		return clip.Argument{}, fmt.Errorf("unknown mode %q", e.Mode)
	}
	typ, err := ParseType(e.Type)
	if err != nil {
		return clip.Argument{}, err
	}
	if strings.EqualFold(e.Mode, "positional") {
		return arg.Positional(typ), nil
	}
	return arg.Variadic(typ), nil
}

// ParseArity converts a decoded arity value. nil means 1; "*" and
// "unbounded" mean clip.Unbounded. Range checks happen at registration.
func ParseArity(v any) (clip.Arity, error) {
	switch v := v.(type) {
	case nil:
		return clip.Exactly(1), nil
	case int:
		return clip.Exactly(v), nil
	case int64:
		return clip.Exactly(int(v)), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "*", "unbounded":
			return clip.Unbounded, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid arity %q", v)
		}
		return clip.Exactly(n), nil
	}
	return 0, fmt.Errorf("invalid arity %v (%T)", v, v)
}

var rangeRE = regexp.MustCompile(`^(-?\d+)-(-?\d+)$`)

// ParseType parses the type syntax used in definitions: any, integer,
// number, string, file, set:a,b,c and range:lo-hi. Empty means any.
func ParseType(s string) (clip.Type, error) {
	s = strings.TrimSpace(s)
	kind, arg, hasArg := strings.Cut(s, ":")
	switch strings.ToLower(kind) {
	case "", "any":
		if !hasArg {
			return clip.Any, nil
		}
	case "int", "integer":
		if !hasArg {
			return clip.Integer, nil
		}
	case "number", "float":
		if !hasArg {
			return clip.Number, nil
		}
	case "string":
		if !hasArg {
			return clip.String, nil
		}
	case "file":
		if !hasArg {
			return clip.File, nil
		}
	case "set":
		if !hasArg || arg == "" {
			return clip.Type{}, fmt.Errorf("set type %q has no values", s)
		}
		vals := strings.Split(arg, ",")
		for i := range vals {
			vals[i] = strings.TrimSpace(vals[i])
		}
		return clip.SetOf(vals...), nil
	case "range":
		m := rangeRE.FindStringSubmatch(strings.ReplaceAll(arg, " ", ""))
		if m == nil {
			return clip.Type{}, fmt.Errorf("invalid range %q (expected \"range:min-max\")", s)
		}
		lo, err := strconv.Atoi(m[1])
		if err != nil {
			return clip.Type{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		hi, err := strconv.Atoi(m[2])
		if err != nil {
			return clip.Type{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		if lo > hi {
			return clip.Type{}, fmt.Errorf("invalid range %q: min (%d) > max (%d)", s, lo, hi)
		}
		return clip.RangeOf(lo, hi), nil
	}
	return clip.Type{}, fmt.Errorf("unknown type %q", s)
}

// FormatType renders t in the syntax ParseType accepts.
func FormatType(t clip.Type) string {
	switch t.Kind() {
	case clip.KindSet:
		return "set:" + strings.Join(t.Values(), ",")
	case clip.KindRange:
		lo, hi := t.Bounds()
		return fmt.Sprintf("range:%d-%d", lo, hi)
	}
	return strings.ToLower(t.Kind().String())
}
