// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"fmt"
	"slices"
)

// Arity is the number of tokens a Parameter consumes: a fixed positive
// count or Unbounded.
type Arity int

// Unbounded captures tokens until the next known argument or the end of
// input. It is only allowed on the last parameter of an argument.
const Unbounded Arity = -1

// Exactly returns a fixed arity of n tokens. n must be at least 1; smaller
// values are rejected when the argument is registered.
func Exactly(n int) Arity {
	return Arity(n)
}

func (a Arity) IsUnbounded() bool { return a == Unbounded }

func (a Arity) String() string {
	if a == Unbounded {
		return "*"
	}
	return fmt.Sprintf("%d", int(a))
}

// Parameter is one named, typed slot in a flag's parameter list.
type Parameter struct {
	Name  string
	Arity Arity
	Type  Type
}

// Mode is the kind of consumption an Argument performs.
type Mode int

const (
	// Flag arguments are triggered by their name or an alias and consume
	// their parameter list.
	Flag Mode = iota
	// Positional arguments take exactly one free token, in declaration
	// order.
	Positional
	// Variadic arguments take runs of free tokens once every positional is
	// filled. At most one may exist per Registry.
	Variadic
)

func (m Mode) String() string {
	switch m {
	case Flag:
		return "flag"
	case Positional:
		return "positional"
	case Variadic:
		return "variadic"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Argument is a declared argument. It doubles as its own builder: every
// method returns a modified copy and leaves the receiver unchanged, so a
// partially built Argument can be reused as a template.
//
//	clip.CreateArg("--file").
//		Alias("-f").
//		AddParam("file", clip.Exactly(1), clip.File).
//		Help("input file").
//		Add(reg)
type Argument struct {
	name      string
	aliases   []string
	params    []Parameter
	mode      Mode
	valueType Type
	help      string
}

// CreateArg starts a Flag-mode argument called name. A leading dash in name
// is a documentation convention only; use Positional or Variadic to change
// the mode.
func CreateArg(name string) Argument {
	return Argument{name: name, mode: Flag}
}

// Alias adds an alternate token for the argument.
func (a Argument) Alias(token string) Argument {
	a.aliases = append(slices.Clip(a.aliases), token)
	return a
}

// AddParam appends a parameter. Placement rules for Unbounded parameters are
// checked at registration.
func (a Argument) AddParam(name string, arity Arity, typ Type) Argument {
	a.params = append(slices.Clip(a.params), Parameter{Name: name, Arity: arity, Type: typ})
	return a
}

// Positional makes the argument consume exactly one free token of type typ.
func (a Argument) Positional(typ Type) Argument {
	a.mode = Positional
	a.valueType = typ
	return a
}

// Variadic makes the argument consume runs of free tokens of type typ.
func (a Argument) Variadic(typ Type) Argument {
	a.mode = Variadic
	a.valueType = typ
	return a
}

func (a Argument) Help(text string) Argument {
	a.help = text
	return a
}

// Add registers the argument with r, panicking on an invalid definition.
// See Registry.Add.
func (a Argument) Add(r *Registry) {
	r.Add(a)
}

func (a Argument) Name() string        { return a.name }
func (a Argument) Aliases() []string   { return slices.Clone(a.aliases) }
func (a Argument) Params() []Parameter { return slices.Clone(a.params) }
func (a Argument) Mode() Mode          { return a.mode }
func (a Argument) HelpText() string    { return a.help }

// ValueType is the declared type of a Positional or Variadic argument.
// Flags declare types per parameter instead.
func (a Argument) ValueType() Type { return a.valueType }
