// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"errors"
	"fmt"
)

// ErrResolve matches every error returned by the resolution functions
// through errors.Is.
var ErrResolve = errors.New("clip: resolve failed")

// RegistrationReason identifies which definition rule an Argument broke.
type RegistrationReason int

const (
	ReasonWrongMode RegistrationReason = iota + 1
	ReasonEmptyName
	ReasonDuplicateName
	ReasonDuplicateAlias
	ReasonMultipleVariadic
	ReasonMisplacedUnbounded
	ReasonInvalidArity
)

func (r RegistrationReason) String() string {
	switch r {
	case ReasonWrongMode:
		return "wrong mode for aliases/parameters"
	case ReasonEmptyName:
		return "empty name"
	case ReasonDuplicateName:
		return "duplicate name"
	case ReasonDuplicateAlias:
		return "duplicate alias"
	case ReasonMultipleVariadic:
		return "multiple variadic arguments"
	case ReasonMisplacedUnbounded:
		return "unbounded parameter must be last"
	case ReasonInvalidArity:
		return "invalid arity"
	}
	return fmt.Sprintf("RegistrationReason(%d)", int(r))
}

// RegistrationError is returned by Registry.Register (and raised as a panic
// by Registry.Add) when an Argument definition is invalid.
type RegistrationError struct {
	Program  string
	Argument string
	Reason   RegistrationReason
	Detail   string // offending alias, parameter or conflicting argument
}

func (e *RegistrationError) Error() string {
	msg := fmt.Sprintf("register %s: argument %q: %s", e.Program, e.Argument, e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// UnknownArgumentError is returned when a token matches no argument name or
// alias and cannot be taken as a positional or variadic value.
//
// A dash-prefixed token that is the name of a positional or variadic
// argument is also unknown, since those arguments have no trigger token;
// Untriggered is set and Mode records the argument's mode.
type UnknownArgumentError struct {
	Token       string
	Untriggered bool
	Mode        Mode
}

func (e *UnknownArgumentError) Error() string {
	if e.Untriggered {
		return fmt.Sprintf("unknown argument: %q (%s argument %q has no trigger token)", e.Token, e.Mode, e.Token)
	}
	return fmt.Sprintf("unknown argument: %q", e.Token)
}

func (e *UnknownArgumentError) Is(target error) bool { return target == ErrResolve }

// ExpectedParameterError is returned when the input ends before a fixed
// arity parameter is satisfied.
type ExpectedParameterError struct {
	Argument  string
	Parameter string
	Want      int // tokens the parameter needs
	Got       int // tokens that were left
}

func (e *ExpectedParameterError) Error() string {
	return fmt.Sprintf("argument %s: expected %d value(s) for parameter %q, got %d", e.Argument, e.Want, e.Parameter, e.Got)
}

func (e *ExpectedParameterError) Is(target error) bool { return target == ErrResolve }

// MissingPositionalError is returned when the input ends before every
// declared positional argument received a token.
type MissingPositionalError struct {
	Argument string
}

func (e *MissingPositionalError) Error() string {
	return fmt.Sprintf("missing positional argument %q", e.Argument)
}

func (e *MissingPositionalError) Is(target error) bool { return target == ErrResolve }

// TypeError is returned when a captured token does not satisfy its declared
// Type. Err carries the validator's reason.
type TypeError struct {
	Argument  string
	Parameter string // empty for positional and variadic arguments
	Value     string
	Type      Type
	Err       error
}

func (e *TypeError) Error() string {
	target := e.Argument
	if e.Parameter != "" {
		target = fmt.Sprintf("%s parameter %q", e.Argument, e.Parameter)
	}
	return fmt.Sprintf("invalid value %q for %s: expected %s", e.Value, target, e.Type)
}

func (e *TypeError) Unwrap() error { return e.Err }

func (e *TypeError) Is(target error) bool { return target == ErrResolve }
