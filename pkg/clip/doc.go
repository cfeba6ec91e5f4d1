// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip resolves command-line tokens against a declared set of
// arguments.
//
// A host program declares its arguments once with the fluent builder and
// registers them in a Registry:
//
//	reg := clip.NewRegistry("cc")
//	clip.CreateArg("--file").
//	    Alias("-f").
//	    AddParam("file", clip.Unbounded, clip.File).
//	    Help("input files").
//	    Add(reg)
//	clip.CreateArg("--output").
//	    Alias("-o").
//	    AddParam("output", clip.Exactly(1), clip.File).
//	    Add(reg)
//
//	inputs, err := reg.ParseEnv()
//
// Resolving "-f a.c b.c -o a.out" yields
//
//	[{--file [a.c b.c]} {--output [a.out]}]
//
// # Argument modes
//
// Flag arguments are triggered by their name or an alias and consume their
// parameters. Positional arguments take one free token each, in the order
// they were registered. A single Variadic argument takes whatever free
// tokens remain once the positionals are filled.
//
// # Errors
//
// Invalid definitions are programming errors: Registry.Add panics with a
// *RegistrationError, and Registry.Register returns it for callers that
// build registries from data. Resolution errors (*UnknownArgumentError,
// *ExpectedParameterError, *MissingPositionalError, *TypeError) are
// returned to the caller and all match ErrResolve.
//
// # Types
//
// Each parameter and each positional or variadic argument declares a Type.
// Captured tokens are checked with TypeChecker by default; WithValidator
// replaces or disables the check.
package clip
