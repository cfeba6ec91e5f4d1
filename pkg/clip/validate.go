// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Validator checks a captured token against its declared Type.
type Validator interface {
	Validate(t Type, value string) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(t Type, value string) error

func (f ValidatorFunc) Validate(t Type, value string) error { return f(t, value) }

// TypeChecker is the default Validator. It checks token syntax only; File
// values are not looked up on disk since they often name outputs that do
// not exist yet.
type TypeChecker struct{}

func (TypeChecker) Validate(t Type, value string) error {
	switch t.Kind() {
	case KindAny, KindString:
		return nil
	case KindInteger:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Errorf("invalid integer %q: %w", value, numErr(err))
		}
	case KindNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid number %q: %w", value, numErr(err))
		}
	case KindFile:
		if value == "" {
			return errors.New("empty file name")
		}
		if strings.ContainsRune(value, 0) {
			return fmt.Errorf("file name %q contains a NUL byte", value)
		}
	case KindSet:
		if !slices.Contains(t.set, value) {
			return fmt.Errorf("%q is not one of %s", value, t)
		}
	case KindRange:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", value, numErr(err))
		}
		if n < t.lower || n > t.upper {
			return fmt.Errorf("%d is outside %s", n, t)
		}
	default:
		return fmt.Errorf("unsupported type %s", t)
	}
	return nil
}

// numErr drops the strconv function name and input from err, which the
// caller already reports.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
