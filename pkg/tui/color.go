// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui holds terminal styling shared by clipctl's renderers.
package tui

import (
	"os"

	"github.com/fatih/color"
)

// Style names a role in rendered output rather than a concrete colour.
type Style int

const (
	StylePlain Style = iota
	StyleHeader
	StyleName
	StyleToken
	StyleError
	StyleDim
)

var styleAttrs = map[Style][]color.Attribute{
	StyleHeader: {color.Bold},
	StyleName:   {color.FgCyan},
	StyleToken:  {color.FgYellow, color.Bold},
	StyleError:  {color.FgRed, color.Bold},
	StyleDim:    {color.FgHiBlack},
}

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns an enabled Colorizer when enabled is set and the
// environment allows colour (NO_COLOR unset, TERM set and not dumb).
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Paint renders text in style s. Disabled colorizers and StylePlain return
// text unchanged.
func (c Colorizer) Paint(s Style, text string) string {
	attrs, ok := styleAttrs[s]
	if !c.Enabled || !ok {
		return text
	}
	col := color.New(attrs...)
	// The decision was already made from the caller's terminal check, so
	// override fatih/color's own stdout detection.
	col.EnableColor()
	return col.Sprint(text)
}
