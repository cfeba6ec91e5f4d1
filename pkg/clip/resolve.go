// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"os"
	"strings"
)

// Input is one matched argument occurrence.
//
// Values aliases the token slice passed to Resolve rather than copying it;
// its capacity is clipped so appending to it never overwrites later tokens.
type Input struct {
	Name   string
	Values []string
}

// Parse splits line on single spaces and resolves the tokens. There is no
// quoting support, and consecutive spaces produce empty tokens. An empty
// line resolves no tokens.
func (r *Registry) Parse(line string) ([]Input, error) {
	if line == "" {
		return r.Resolve(nil)
	}
	return r.Resolve(strings.Split(line, " "))
}

// ParseEnv resolves the arguments the process was invoked with.
func (r *Registry) ParseEnv() ([]Input, error) {
	return r.ParseArgs(os.Args)
}

// ParseArgs resolves argv with its first element (the program path)
// dropped.
func (r *Registry) ParseArgs(argv []string) ([]Input, error) {
	if len(argv) == 0 {
		return r.Resolve(nil)
	}
	return r.Resolve(argv[1:])
}

// Resolve matches tokens against the registry in a single left-to-right pass.
//
// A token naming a flag (directly or through an alias) consumes that flag's
// parameters in declaration order. Fixed-arity parameters take exactly their
// count of following tokens, uninterpreted. An Unbounded parameter takes
// tokens until the next one names a registered argument or alias, or the
// input ends; a value that is itself an argument name can therefore never
// be captured by it.
//
// Any other token is free. Free tokens that look like flags are rejected
// with *UnknownArgumentError. The rest fill positional arguments one token
// each in declaration order, and once all are filled, feed the variadic
// argument in runs delimited the same way as Unbounded parameters.
//
// Resolution stops at the first error and returns no Inputs. On success
// every positional argument has received exactly one token.
func (r *Registry) Resolve(tokens []string) ([]Input, error) {
	s := resolver{r: r, tokens: tokens}
	return s.run()
}

// resolver is the per-call state of Resolve.
type resolver struct {
	r      *Registry
	tokens []string
	pos    int // index of the next unread token
	filled int // positionals assigned so far
	out    []Input
}

func (s *resolver) run() ([]Input, error) {
	for s.pos < len(s.tokens) {
		tok := s.tokens[s.pos]
		var (
			in  Input
			err error
		)
		if a, ok := s.r.Lookup(tok); ok && a.mode == Flag {
			s.pos++
			in, err = s.flag(a)
		} else {
			in, err = s.free(tok)
		}
		if err != nil {
			s.r.tracef("%v", err)
			return nil, err
		}
		s.r.tracef("%s <- %q", in.Name, in.Values)
		s.out = append(s.out, in)
	}
	if s.filled < len(s.r.positional) {
		return nil, &MissingPositionalError{Argument: s.r.positional[s.filled]}
	}
	return s.out, nil
}

func (s *resolver) flag(a Argument) (Input, error) {
	start := s.pos
	for _, p := range a.params {
		from := s.pos
		if p.Arity.IsUnbounded() {
			s.skipUnknown()
		} else {
			n := int(p.Arity)
			if left := len(s.tokens) - s.pos; left < n {
				return Input{}, &ExpectedParameterError{Argument: a.name, Parameter: p.Name, Want: n, Got: left}
			}
			s.pos += n
		}
		if err := s.check(a.name, p.Name, p.Type, s.tokens[from:s.pos]); err != nil {
			return Input{}, err
		}
	}
	return Input{Name: a.name, Values: s.window(start)}, nil
}

func (s *resolver) free(tok string) (Input, error) {
	if looksLikeFlag(tok) {
		err := &UnknownArgumentError{Token: tok}
		if a, ok := s.r.Lookup(tok); ok {
			err.Untriggered, err.Mode = true, a.mode
		}
		return Input{}, err
	}
	start := s.pos
	var name string
	switch {
	case s.filled < len(s.r.positional):
		name = s.r.positional[s.filled]
		s.filled++
		s.pos++
	case s.r.variadic != "":
		name = s.r.variadic
		s.pos++
		s.skipUnknown()
	default:
		return Input{}, &UnknownArgumentError{Token: tok}
	}
	if err := s.check(name, "", s.r.args[name].valueType, s.tokens[start:s.pos]); err != nil {
		return Input{}, err
	}
	return Input{Name: name, Values: s.window(start)}, nil
}

// skipUnknown advances past tokens that do not name a registered argument.
func (s *resolver) skipUnknown() {
	for s.pos < len(s.tokens) {
		if _, ok := s.r.Canonical(s.tokens[s.pos]); ok {
			return
		}
		s.pos++
	}
}

// window returns the tokens consumed since start, or nil if there are none.
func (s *resolver) window(start int) []string {
	if start == s.pos {
		return nil
	}
	return s.tokens[start:s.pos:s.pos]
}

func (s *resolver) check(arg, param string, t Type, values []string) error {
	if s.r.validator == nil {
		return nil
	}
	for _, v := range values {
		if err := s.r.validator.Validate(t, v); err != nil {
			return &TypeError{Argument: arg, Parameter: param, Value: v, Type: t, Err: err}
		}
	}
	return nil
}

// looksLikeFlag reports whether tok is dash-prefixed and is neither a lone
// "-" (conventionally stdin) nor a negative decimal number such as -3 or
// -2.5. Forms like -inf and -1e3 count as flags.
func looksLikeFlag(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	return !isDecimal(tok[1:])
}

// isDecimal reports whether s is digits with at most one dot.
func isDecimal(s string) bool {
	hasDigit, hasDot := false, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '.' && !hasDot:
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}
