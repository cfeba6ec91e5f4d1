// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yeetrun/clip/pkg/clip"
)

// Env writes inputs as NAME=value lines that a POSIX shell can eval.
// Names come from EnvKey. Values are collected per argument across all of
// its occurrences, in encounter order:
//
//	no values   NAME=true
//	one value   NAME=value
//	more        NAME_COUNT=n, NAME_1=first ... NAME_n=last
//
// Values are single-quoted whenever they contain anything besides
// letters, digits and _-./:@%+, so nothing in them is expanded by the
// shell. Two arguments that map to the same variable are an error and
// nothing is written.
func Env(w io.Writer, prefix string, inputs []clip.Input) error {
	var order []string
	values := make(map[string][]string)
	for _, in := range inputs {
		if _, ok := values[in.Name]; !ok {
			order = append(order, in.Name)
			values[in.Name] = nil
		}
		values[in.Name] = append(values[in.Name], in.Values...)
	}

	var buf bytes.Buffer
	owners := make(map[string]string)
	emit := func(name, key, val string) error {
		if owner, ok := owners[key]; ok && owner != name {
			return fmt.Errorf("env variable %s used by both %q and %q", key, owner, name)
		}
		owners[key] = name
		fmt.Fprintf(&buf, "%s=%s\n", key, val)
		return nil
	}
	for _, name := range order {
		key := EnvKey(prefix, name)
		vals := values[name]
		var err error
		switch len(vals) {
		case 0:
			err = emit(name, key, "true")
		case 1:
			err = emit(name, key, QuoteShell(vals[0]))
		default:
			err = emit(name, key+"_COUNT", strconv.Itoa(len(vals)))
			for i, v := range vals {
				if err != nil {
					break
				}
				err = emit(name, key+"_"+strconv.Itoa(i+1), QuoteShell(v))
			}
		}
		if err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EnvKey converts an argument name to an environment variable name.
func EnvKey(prefix, name string) string {
	name = strings.TrimLeft(name, "-")
	var b strings.Builder
	b.WriteString(prefix)
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// QuoteShell returns s unchanged when it is made of shell-safe characters
// and as a POSIX single-quoted word otherwise.
func QuoteShell(s string) string {
	if s == "" {
		return "''"
	}
	for _, r := range s {
		if !isShellSafe(r) {
			return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
		}
	}
	return s
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("_-./:@%+", r)
}
