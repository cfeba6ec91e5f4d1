// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the tag of a Type.
type Kind int

const (
	KindAny Kind = iota
	KindInteger
	KindNumber
	KindString
	KindFile
	KindSet
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "Any"
	case KindInteger:
		return "Integer"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindFile:
		return "File"
	case KindSet:
		return "Set"
	case KindRange:
		return "Range"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type describes the values a captured token must satisfy. The zero value
// is Any. A Type is immutable once constructed.
type Type struct {
	kind  Kind
	set   []string
	lower int
	upper int
}

var (
	Any     = Type{kind: KindAny}
	Integer = Type{kind: KindInteger}
	Number  = Type{kind: KindNumber}
	String  = Type{kind: KindString}
	File    = Type{kind: KindFile}
)

// SetOf returns a Type accepting only the given literals.
func SetOf(vals ...string) Type {
	return Type{kind: KindSet, set: slices.Clone(vals)}
}

// RangeOf returns a Type accepting integers in [lower, upper].
func RangeOf(lower, upper int) Type {
	return Type{kind: KindRange, lower: lower, upper: upper}
}

func (t Type) Kind() Kind { return t.kind }

// Values returns a copy of the allowed literals of a Set type.
func (t Type) Values() []string { return slices.Clone(t.set) }

// Bounds returns the inclusive bounds of a Range type.
func (t Type) Bounds() (lower, upper int) { return t.lower, t.upper }

// Equal reports whether t and o describe the same constraint.
func (t Type) Equal(o Type) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindSet:
		return slices.Equal(t.set, o.set)
	case KindRange:
		return t.lower == o.lower && t.upper == o.upper
	}
	return true
}

// String renders t for error messages: "[a, b, c]" for sets, "[lo-hi]" for
// ranges and the kind name otherwise.
func (t Type) String() string {
	switch t.kind {
	case KindSet:
		return "[" + strings.Join(t.set, ", ") + "]"
	case KindRange:
		return fmt.Sprintf("[%d-%d]", t.lower, t.upper)
	}
	return t.kind.String()
}
