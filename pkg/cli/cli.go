// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds clipctl's command metadata and flag parsing.
package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/shayne/yargs"
)

// DefinitionEnv names the environment variable consulted when --def is not
// given.
const DefinitionEnv = "CLIP_DEFINITION"

const (
	CommandResolve = "resolve"
	CommandCheck   = "check"
	CommandTypes   = "types"
)

type FlagSpec struct {
	ConsumesValue bool
}

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

type ResolveFlags struct {
	Def       string
	Format    string
	EnvPrefix string
	Trace     bool
}

type CheckFlags struct {
	Def string
}

type resolveFlagsParsed struct {
	Def       string `flag:"def" short:"d" help:"Definition file (CLIP_DEFINITION)"`
	Format    string `flag:"format" default:"table" help:"Output format: table, json or env"`
	EnvPrefix string `flag:"env-prefix" help:"Prefix for variable names with --format=env"`
	Trace     bool   `flag:"trace" help:"Log each resolution step to stderr"`
}

type checkFlagsParsed struct {
	Def string `flag:"def" short:"d" help:"Definition file (CLIP_DEFINITION)"`
}

var commandInfos = map[string]CommandInfo{
	CommandResolve: {
		Name:        CommandResolve,
		Description: "Resolve tokens against a definition file",
		Usage:       "--def FILE [--format=table|json|env] [--] TOKENS...",
		Examples: []string{
			"clipctl resolve --def cc.toml -- -f a.c b.c -o a.out",
			"clipctl resolve --def cp.yaml --format=json -- in.txt out.txt",
			`eval "$(clipctl resolve --def cc.toml --format=env --env-prefix=CC_ -- "$@")"`,
		},
		Aliases: []string{"r"},
	},
	CommandCheck: {
		Name:        CommandCheck,
		Description: "Validate a definition file and list its arguments",
		Usage:       "--def FILE",
		Examples:    []string{"clipctl check --def cc.toml"},
	},
	CommandTypes: {
		Name:        CommandTypes,
		Description: "List the value types a definition may use",
	},
}

var flagSpecs = map[string]map[string]FlagSpec{
	CommandResolve: flagSpecsFor[resolveFlagsParsed](),
	CommandCheck:   flagSpecsFor[checkFlagsParsed](),
	CommandTypes:   {},
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

func FlagSpecs() map[string]map[string]FlagSpec {
	return flagSpecs
}

// HelpConfig returns the yargs help metadata for clipctl.
func HelpConfig() yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = toSubCommandInfo(name, info)
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "clipctl",
			Description: "Resolve command-line tokens against declarative argument definitions.",
			Examples: []string{
				"clipctl check --def cc.toml",
				"clipctl resolve --def cc.toml -- -f a.c -o a.out",
			},
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// ParseResolve parses clipctl's own flags and returns the remaining
// tokens. Parsing stops at "--" or at the first flag clipctl does not
// know, so tokens meant for the definition pass through untouched.
func ParseResolve(args []string) (ResolveFlags, []string, error) {
	parseArgs, extraArgs := splitArgsForParsing(args, flagSpecs[CommandResolve])
	parsed, words, err := parseFlags[resolveFlagsParsed](parseArgs)
	if err != nil {
		return ResolveFlags{}, nil, err
	}
	flags := ResolveFlags{
		Def:       parsed.Def,
		Format:    parsed.Format,
		EnvPrefix: parsed.EnvPrefix,
		Trace:     parsed.Trace,
	}
	return flags, append(words, extraArgs...), nil
}

func ParseCheck(args []string) (CheckFlags, []string, error) {
	parseArgs, extraArgs := splitArgsAtDoubleDash(args)
	parsed, words, err := parseFlags[checkFlagsParsed](parseArgs)
	if err != nil {
		return CheckFlags{}, nil, err
	}
	return CheckFlags{Def: parsed.Def}, append(words, extraArgs...), nil
}

// DefinitionPath returns flagValue, or the value of CLIP_DEFINITION looked up
// through getenv when flagValue is empty.
func DefinitionPath(flagValue string, getenv func(string) string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if p := getenv(DefinitionEnv); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no definition file: pass --def or set %s", DefinitionEnv)
}

// parseFlags parses the flags of T and returns them with the positional
// words, including any after "--", in order.
func parseFlags[T any](args []string) (T, []string, error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return result.Flags, slices.Concat(result.Args, result.RemainingArgs), nil
}

// splitArgsAtDoubleDash splits args around the first "--", which is dropped.
func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}

// splitArgsForParsing returns the prefix of args made of flags in specs (and
// their values) plus any bare words, and the rest starting at "--" (dropped)
// or the first unknown flag.
func splitArgsForParsing(args []string, specs map[string]FlagSpec) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}
		name, _, hasValue := strings.Cut(arg, "=")
		if !strings.HasPrefix(name, "--") && len(name) > 2 {
			// Short flag with an attached value, like -dfile.toml.
			name, hasValue = name[:2], true
		}
		spec, ok := specs[name]
		if !ok {
			return args[:i], args[i:]
		}
		if spec.ConsumesValue && !hasValue {
			i++
		}
	}
	return args, nil
}

// flagSpecsFor lists the long and short spellings of every flag in the
// yargs flag struct T.
func flagSpecsFor[T any]() map[string]FlagSpec {
	specs := make(map[string]FlagSpec)
	for _, field := range reflect.VisibleFields(reflect.TypeFor[T]()) {
		name, ok := field.Tag.Lookup("flag")
		if !ok || !field.IsExported() {
			continue
		}
		ft := field.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		spec := FlagSpec{ConsumesValue: ft.Kind() != reflect.Bool}
		specs["--"+name] = spec
		if short := field.Tag.Get("short"); short != "" {
			specs["-"+short] = spec
		}
	}
	return specs
}

// RequireNoArgs reports an error when a command that takes no positional
// arguments received some.
func RequireNoArgs(subcmd string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("'%s' takes no arguments, got %q", subcmd, args)
	}
	return nil
}
