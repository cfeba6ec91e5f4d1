// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"fmt"
	"slices"
	"strings"

	"tailscale.com/types/logger"
	"tailscale.com/util/mak"
	"tailscale.com/util/must"
	"tailscale.com/util/set"
)

// Registry holds the declared arguments of a program.
//
// A Registry is built once with Add or Register and is read-only afterwards.
// Registration is not safe for concurrent use; resolution is, as long as no
// registration runs at the same time.
type Registry struct {
	program    string
	args       map[string]Argument // canonical name -> argument
	aliases    map[string]string   // alias -> canonical name
	positional []string            // positional names in declaration order
	variadic   string              // name of the variadic-mode argument, if any

	validator Validator
	logf      logger.Logf
}

// Option configures a Registry.
type Option func(*Registry)

// WithValidator sets the validator run on every captured token. A nil
// validator disables type checks.
func WithValidator(v Validator) Option {
	return func(r *Registry) {
		r.validator = v
	}
}

// WithLogf sets a logger for resolution tracing.
func WithLogf(logf logger.Logf) Option {
	return func(r *Registry) {
		r.logf = logf
	}
}

// NewRegistry returns an empty registry for program. Captured tokens are
// checked with TypeChecker unless WithValidator says otherwise.
func NewRegistry(program string, opts ...Option) *Registry {
	r := &Registry{
		program:   program,
		validator: TypeChecker{},
		logf:      logger.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logf == nil {
		r.logf = logger.Discard
	}
	return r
}

// Add registers a and panics with a *RegistrationError if the definition is
// invalid. Definitions are static program wiring, so a bad one is a bug in
// the host program rather than a runtime condition.
func (r *Registry) Add(a Argument) {
	must.Do(r.Register(a))
}

// Register validates a and inserts it. On error the registry is left
// unchanged and the returned error is a *RegistrationError.
func (r *Registry) Register(a Argument) error {
	if err := r.validate(a); err != nil {
		return err
	}
	mak.Set(&r.args, a.name, a)
	for _, alias := range a.aliases {
		mak.Set(&r.aliases, alias, a.name)
	}
	switch a.mode {
	case Positional:
		r.positional = append(r.positional, a.name)
	case Variadic:
		r.variadic = a.name
	}
	return nil
}

func (r *Registry) validate(a Argument) error {
	fail := func(reason RegistrationReason, format string, args ...any) error {
		return &RegistrationError{
			Program:  r.program,
			Argument: a.name,
			Reason:   reason,
			Detail:   fmt.Sprintf(format, args...),
		}
	}

	if a.mode != Flag && (len(a.aliases) > 0 || len(a.params) > 0) {
		return fail(ReasonWrongMode, "%s argument with %d alias(es) and %d parameter(s)", a.mode, len(a.aliases), len(a.params))
	}

	if a.name == "" {
		return fail(ReasonEmptyName, "")
	}
	if _, ok := r.args[a.name]; ok {
		return fail(ReasonDuplicateName, "already registered")
	}
	if owner, ok := r.aliases[a.name]; ok {
		return fail(ReasonDuplicateName, "alias of %s", owner)
	}

	seen := make(set.Set[string])
	for _, alias := range a.aliases {
		switch {
		case alias == a.name:
			return fail(ReasonDuplicateAlias, "%s is the argument's own name", alias)
		case seen.Contains(alias):
			return fail(ReasonDuplicateAlias, "%s given twice", alias)
		}
		if owner, ok := r.aliases[alias]; ok {
			return fail(ReasonDuplicateAlias, "%s is already an alias of %s", alias, owner)
		}
		if _, ok := r.args[alias]; ok {
			return fail(ReasonDuplicateAlias, "%s is already an argument name", alias)
		}
		seen.Add(alias)
	}

	if a.mode == Variadic && r.variadic != "" {
		return fail(ReasonMultipleVariadic, "%s is already variadic", r.variadic)
	}

	for i, p := range a.params {
		if p.Arity.IsUnbounded() {
			if i != len(a.params)-1 {
				return fail(ReasonMisplacedUnbounded, "parameter %q", p.Name)
			}
			continue
		}
		if p.Arity < 1 {
			return fail(ReasonInvalidArity, "parameter %q has arity %d", p.Name, int(p.Arity))
		}
	}
	return nil
}

func (r *Registry) tracef(format string, args ...any) {
	if r.logf == nil {
		return
	}
	r.logf("clip: %s: "+format, append([]any{r.program}, args...)...)
}

// Lookup returns the argument named by token, directly or through an alias.
func (r *Registry) Lookup(token string) (Argument, bool) {
	name, ok := r.Canonical(token)
	if !ok {
		return Argument{}, false
	}
	return r.args[name], true
}

// Canonical returns the registered name token refers to.
func (r *Registry) Canonical(token string) (string, bool) {
	if name, ok := r.aliases[token]; ok {
		return name, true
	}
	if _, ok := r.args[token]; ok {
		return token, true
	}
	return "", false
}

func (r *Registry) ProgramName() string { return r.program }

// Positionals returns the positional argument names in declaration order.
func (r *Registry) Positionals() []string { return slices.Clone(r.positional) }

// VariadicArg returns the name of the variadic-mode argument, if one is
// registered.
func (r *Registry) VariadicArg() (string, bool) { return r.variadic, r.variadic != "" }

// Len returns the number of registered arguments.
func (r *Registry) Len() int { return len(r.args) }

// Arguments returns every registered argument sorted by name.
func (r *Registry) Arguments() []Argument {
	out := make([]Argument, 0, len(r.args))
	for _, a := range r.args {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Argument) int {
		return strings.Compare(a.name, b.name)
	})
	return out
}
