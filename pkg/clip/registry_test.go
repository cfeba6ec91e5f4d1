// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"errors"
	"reflect"
	"testing"
)

func newFileOutputRegistry() *Registry {
	reg := NewRegistry("foo")
	CreateArg("--file").
		Alias("-f").
		AddParam("file", Exactly(1), String).
		Help("input file").
		Add(reg)
	CreateArg("--output").
		Alias("-o").
		Alias("--out").
		AddParam("output", Exactly(1), String).
		Help("output file").
		Add(reg)
	return reg
}

func TestRegistryAdd(t *testing.T) {
	reg := newFileOutputRegistry()

	if reg.ProgramName() != "foo" {
		t.Fatalf("ProgramName() = %q, want %q", reg.ProgramName(), "foo")
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
	if name, ok := reg.Canonical("-f"); !ok || name != "--file" {
		t.Fatalf("Canonical(-f) = %q, %v, want %q, true", name, ok, "--file")
	}
	if name, ok := reg.Canonical("--output"); !ok || name != "--output" {
		t.Fatalf("Canonical(--output) = %q, %v, want %q, true", name, ok, "--output")
	}
	if _, ok := reg.Canonical("file"); ok {
		t.Fatal("Canonical(file) ok = true, want false")
	}

	arg, ok := reg.Lookup("--out")
	if !ok {
		t.Fatal("Lookup(--out) ok = false, want true")
	}
	if arg.Name() != "--output" || arg.HelpText() != "output file" {
		t.Fatalf("Lookup(--out) = %q (%q), want %q (%q)", arg.Name(), arg.HelpText(), "--output", "output file")
	}

	var names []string
	for _, a := range reg.Arguments() {
		names = append(names, a.Name())
	}
	if want := []string{"--file", "--output"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("Arguments() names = %#v, want %#v", names, want)
	}
}

func TestRegistryPositionalOrder(t *testing.T) {
	reg := NewRegistry("cp")
	CreateArg("input").Positional(File).Add(reg)
	CreateArg("mode").Positional(SetOf("read", "write", "append")).Add(reg)
	CreateArg("output").Positional(File).Add(reg)
	CreateArg("extra").Variadic(Any).Add(reg)

	if got, want := reg.Positionals(), []string{"input", "mode", "output"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Positionals() = %#v, want %#v", got, want)
	}
	if name, ok := reg.VariadicArg(); !ok || name != "extra" {
		t.Fatalf("VariadicArg() = %q, %v, want %q, true", name, ok, "extra")
	}
}

func TestRegisterRejects(t *testing.T) {
	tests := []struct {
		name   string
		arg    Argument
		reason RegistrationReason
	}{
		{
			name:   "positional with alias",
			arg:    CreateArg("input").Alias("-i").Positional(File),
			reason: ReasonWrongMode,
		},
		{
			name:   "variadic with parameter",
			arg:    CreateArg("rest").AddParam("x", Exactly(1), Any).Variadic(Any),
			reason: ReasonWrongMode,
		},
		{
			name:   "empty name",
			arg:    CreateArg(""),
			reason: ReasonEmptyName,
		},
		{
			name:   "duplicate name",
			arg:    CreateArg("--file"),
			reason: ReasonDuplicateName,
		},
		{
			name:   "name shadows alias",
			arg:    CreateArg("-o"),
			reason: ReasonDuplicateName,
		},
		{
			name:   "alias shadows name",
			arg:    CreateArg("--verbose").Alias("--file"),
			reason: ReasonDuplicateAlias,
		},
		{
			name:   "alias shadows alias",
			arg:    CreateArg("--verbose").Alias("-f"),
			reason: ReasonDuplicateAlias,
		},
		{
			name:   "alias is own name",
			arg:    CreateArg("--verbose").Alias("--verbose"),
			reason: ReasonDuplicateAlias,
		},
		{
			name:   "alias repeated",
			arg:    CreateArg("--verbose").Alias("-v").Alias("-v"),
			reason: ReasonDuplicateAlias,
		},
		{
			name:   "unbounded not last",
			arg:    CreateArg("--cp").AddParam("srcs", Unbounded, File).AddParam("dst", Exactly(1), File),
			reason: ReasonMisplacedUnbounded,
		},
		{
			name:   "two unbounded",
			arg:    CreateArg("--cp").AddParam("a", Unbounded, File).AddParam("b", Unbounded, File),
			reason: ReasonMisplacedUnbounded,
		},
		{
			name:   "zero arity",
			arg:    CreateArg("--cp").AddParam("a", Exactly(0), File),
			reason: ReasonInvalidArity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newFileOutputRegistry()
			err := reg.Register(tt.arg)
			var regErr *RegistrationError
			if !errors.As(err, &regErr) {
				t.Fatalf("Register() error = %v, want *RegistrationError", err)
			}
			if regErr.Reason != tt.reason {
				t.Fatalf("Reason = %v, want %v (err: %v)", regErr.Reason, tt.reason, err)
			}
			if regErr.Program != "foo" {
				t.Fatalf("Program = %q, want %q", regErr.Program, "foo")
			}
			if reg.Len() != 2 {
				t.Fatalf("Len() = %d after failed Register, want 2", reg.Len())
			}
		})
	}
}

func TestRegisterRejectsSecondVariadic(t *testing.T) {
	reg := NewRegistry("foo")
	CreateArg("inputs").Variadic(File).Add(reg)
	err := reg.Register(CreateArg("more").Variadic(File))

	var regErr *RegistrationError
	if !errors.As(err, &regErr) || regErr.Reason != ReasonMultipleVariadic {
		t.Fatalf("Register() error = %v, want %v", err, ReasonMultipleVariadic)
	}
	if name, _ := reg.VariadicArg(); name != "inputs" {
		t.Fatalf("VariadicArg() = %q, want %q", name, "inputs")
	}
	if _, ok := reg.Lookup("more"); ok {
		t.Fatal("rejected argument was inserted")
	}
}

func TestRegisterFailureKeepsAliases(t *testing.T) {
	reg := newFileOutputRegistry()
	if err := reg.Register(CreateArg("--v").Alias("-x").Alias("-f")); err == nil {
		t.Fatal("Register() succeeded, want duplicate alias error")
	}
	if _, ok := reg.Canonical("-x"); ok {
		t.Fatal("alias -x of a rejected argument was inserted")
	}
	if name, _ := reg.Canonical("-f"); name != "--file" {
		t.Fatalf("Canonical(-f) = %q after failed Register, want %q", name, "--file")
	}
}

func TestAddPanicsOnInvalidDefinition(t *testing.T) {
	reg := newFileOutputRegistry()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Add did not panic on duplicate name")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered %T, want error", r)
		}
		var regErr *RegistrationError
		if !errors.As(err, &regErr) || regErr.Reason != ReasonDuplicateName {
			t.Fatalf("recovered %v, want %v", err, ReasonDuplicateName)
		}
	}()
	CreateArg("--file").Add(reg)
}

func TestRegistrationErrorMessage(t *testing.T) {
	reg := newFileOutputRegistry()
	err := reg.Register(CreateArg("--verbose").Alias("-f"))
	want := `register foo: argument "--verbose": duplicate alias (-f is already an alias of --file)`
	if err == nil || err.Error() != want {
		t.Fatalf("Error() = %v, want %q", err, want)
	}
}
