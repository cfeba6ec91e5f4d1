// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yeetrun/clip/pkg/clip"
	"github.com/yeetrun/clip/pkg/tui"
)

// Error writes err to w prefixed with "error: ". For clip errors the
// offending token is highlighted.
func Error(w io.Writer, err error, c tui.Colorizer) {
	if err == nil {
		return
	}
	msg := err.Error()
	if tok, ok := offendingToken(err); ok {
		quoted := strconv.Quote(tok)
		msg = strings.Replace(msg, quoted, c.Paint(tui.StyleToken, quoted), 1)
	}
	fmt.Fprintf(w, "%s %s\n", c.Paint(tui.StyleError, "error:"), msg)
}

func offendingToken(err error) (string, bool) {
	var (
		unknownErr  *clip.UnknownArgumentError
		expectedErr *clip.ExpectedParameterError
		missingErr  *clip.MissingPositionalError
		typeErr     *clip.TypeError
		registerErr *clip.RegistrationError
	)
	switch {
	case errors.As(err, &unknownErr):
		return unknownErr.Token, true
	case errors.As(err, &expectedErr):
		return expectedErr.Parameter, true
	case errors.As(err, &missingErr):
		return missingErr.Argument, true
	case errors.As(err, &typeErr):
		return typeErr.Value, true
	case errors.As(err, &registerErr):
		return registerErr.Argument, true
	}
	return "", false
}
