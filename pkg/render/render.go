// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes resolution results and registry contents for
// clipctl.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/clip/pkg/clip"
	"github.com/yeetrun/clip/pkg/specfile"
	"github.com/yeetrun/clip/pkg/tui"
)

// Formats lists the values accepted by Inputs.
var Formats = []string{"table", "json", "env"}

// Inputs writes inputs in the named format.
func Inputs(w io.Writer, format string, inputs []clip.Input, c tui.Colorizer) error {
	switch format {
	case "", "table":
		return Table(w, inputs, c)
	case "json":
		return JSON(w, inputs)
	case "env":
		return Env(w, "", inputs)
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
}

// Table writes one row per input in encounter order.
func Table(w io.Writer, inputs []clip.Input, c tui.Colorizer) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, c.Paint(tui.StyleHeader, "ARGUMENT")+"\t"+c.Paint(tui.StyleHeader, "VALUES"))
	for _, in := range inputs {
		fmt.Fprintf(tw, "%s\t%s\n", c.Paint(tui.StyleName, in.Name), strings.Join(in.Values, " "))
	}
	return tw.Flush()
}

type jsonInput struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// JSON writes inputs as an indented JSON array. Inputs without values get
// an empty array rather than null.
func JSON(w io.Writer, inputs []clip.Input) error {
	out := make([]jsonInput, len(inputs))
	for i, in := range inputs {
		vals := in.Values
		if vals == nil {
			vals = []string{}
		}
		out[i] = jsonInput{Name: in.Name, Values: vals}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// Arguments writes the registered arguments of r, sorted by name.
func Arguments(w io.Writer, r *clip.Registry, c tui.Colorizer) error {
	tw := newTabWriter(w)
	header := []string{"NAME", "ALIASES", "MODE", "VALUES", "HELP"}
	for i := range header {
		header[i] = c.Paint(tui.StyleHeader, header[i])
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, a := range r.Arguments() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.Paint(tui.StyleName, a.Name()),
			orDash(strings.Join(a.Aliases(), ",")),
			a.Mode(),
			orDash(describeValues(a)),
			a.HelpText(),
		)
	}
	return tw.Flush()
}

func describeValues(a clip.Argument) string {
	if a.Mode() != clip.Flag {
		return specfile.FormatType(a.ValueType())
	}
	parts := make([]string, 0, len(a.Params()))
	for _, p := range a.Params() {
		parts = append(parts, fmt.Sprintf("%s[%s]:%s", p.Name, p.Arity, specfile.FormatType(p.Type)))
	}
	return strings.Join(parts, " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
