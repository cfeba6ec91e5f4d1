// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clipctl resolves command-line tokens against argument definitions
// written in TOML or YAML.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/shayne/yargs"
	"github.com/yeetrun/clip/pkg/cli"
	"github.com/yeetrun/clip/pkg/clip"
	"github.com/yeetrun/clip/pkg/render"
	"github.com/yeetrun/clip/pkg/specfile"
	"github.com/yeetrun/clip/pkg/tui"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

type globalFlagsParsed struct {
	NoColor bool `flag:"no-color" help:"Disable coloured output (also NO_COLOR)"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// app carries the process environment so handlers can be driven from tests.
type app struct {
	stdout, stderr io.Writer
	getenv         func(string) string
	color          tui.Colorizer
	errColor       tui.Colorizer

	// passthrough holds the tokens after "--". They are kept away from
	// yargs, which would otherwise treat a -h token as a help request.
	// Every handler must account for them.
	passthrough []string
}

func main() {
	log.SetFlags(0)

	args, passthrough, hasPassthrough := cutPassthrough(os.Args[1:])
	globalFlags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	a := &app{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		getenv:      os.Getenv,
		color:       tui.NewColorizer(!globalFlags.NoColor && isTerminalFn(int(os.Stdout.Fd()))),
		errColor:    tui.NewColorizer(!globalFlags.NoColor && isTerminalFn(int(os.Stderr.Fd()))),
		passthrough: passthrough,
	}
	if hasPassthrough && len(remaining) == 0 {
		remaining = []string{cli.CommandResolve}
	}
	helpConfig := cli.HelpConfig()
	if err := yargs.RunSubcommandsWithGroups(context.Background(), remaining, helpConfig, globalFlagsParsed{}, a.handlers(), nil); err != nil {
		a.printCLIError(err)
		os.Exit(1)
	}
}

func (a *app) handlers() map[string]yargs.SubcommandHandler {
	return map[string]yargs.SubcommandHandler{
		cli.CommandResolve: a.handleResolve,
		cli.CommandCheck:   a.handleCheck,
		cli.CommandTypes:   a.handleTypes,
	}
}

func (a *app) printCLIError(err error) {
	render.Error(a.stderr, err, a.errColor)
}

// cutPassthrough splits args at the first "--".
func cutPassthrough(args []string) (before, after []string, found bool) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, nil, false
	}
	return args[:i], args[i+1:], true
}

// stripCommand drops the subcommand name (or one of its aliases) that yargs
// leaves at the front of a handler's args.
func stripCommand(args []string, name string) []string {
	if len(args) == 0 {
		return args
	}
	info := cli.CommandInfos()[name]
	if args[0] == name || slices.Contains(info.Aliases, args[0]) {
		return args[1:]
	}
	return args
}

func (a *app) loadRegistry(def string, opts ...clip.Option) (*clip.Registry, *specfile.Definition, error) {
	path, err := cli.DefinitionPath(def, a.getenv)
	if err != nil {
		return nil, nil, err
	}
	d, err := specfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	reg, err := d.Registry(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, d, nil
}

func (a *app) handleResolve(_ context.Context, args []string) error {
	flags, tokens, err := cli.ParseResolve(stripCommand(args, cli.CommandResolve))
	if err != nil {
		return err
	}
	tokens = append(tokens, a.passthrough...)

	var opts []clip.Option
	if flags.Trace {
		opts = append(opts, clip.WithLogf(log.New(a.stderr, "", 0).Printf))
	}
	reg, _, err := a.loadRegistry(flags.Def, opts...)
	if err != nil {
		return err
	}
	inputs, err := reg.Resolve(tokens)
	if err != nil {
		return err
	}
	if flags.Format == "env" {
		return render.Env(a.stdout, flags.EnvPrefix, inputs)
	}
	return render.Inputs(a.stdout, flags.Format, inputs, a.color)
}

func (a *app) handleCheck(_ context.Context, args []string) error {
	flags, rest, err := cli.ParseCheck(stripCommand(args, cli.CommandCheck))
	if err != nil {
		return err
	}
	if err := cli.RequireNoArgs(cli.CommandCheck, append(rest, a.passthrough...)); err != nil {
		return err
	}
	reg, d, err := a.loadRegistry(flags.Def)
	if err != nil {
		return err
	}
	if err := render.Arguments(a.stdout, reg, a.color); err != nil {
		return err
	}
	fmt.Fprintf(a.stderr, "%s: %d arguments ok (%s)\n", reg.ProgramName(), reg.Len(), d.Digest)
	return nil
}

var typeRows = [][2]string{
	{"any", "any token"},
	{"integer", "base-10 integer, e.g. -3"},
	{"number", "integer or decimal, e.g. 2.5"},
	{"string", "any token"},
	{"file", "non-empty path"},
	{"set:a,b,c", "one of the listed literals"},
	{"range:lo-hi", "integer between lo and hi inclusive"},
}

func (a *app) handleTypes(_ context.Context, args []string) error {
	if err := cli.RequireNoArgs(cli.CommandTypes, append(stripCommand(args, cli.CommandTypes), a.passthrough...)); err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, a.color.Paint(tui.StyleHeader, "TYPE")+"\t"+a.color.Paint(tui.StyleHeader, "ACCEPTS"))
	for _, row := range typeRows {
		fmt.Fprintf(w, "%s\t%s\n", a.color.Paint(tui.StyleName, row[0]), row[1])
	}
	return w.Flush()
}
