/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotLiteral is returned when JSON serialization is requested for a var
// that does not wrap a concrete constant.
var ErrNotLiteral = errors.New("var is not a literal")

// UnsupportedOperandError reports an operator applied to an operand outside
// its accepted set. It carries the operator symbol and the runtime types of
// all operands, in order.
type UnsupportedOperandError struct {
	Op       string
	Operands []string
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("unsupported operand type(s) for %s: %s", e.Op, strings.Join(e.Operands, ", "))
}

// FormatSpecError reports an unrecognized number format specifier.
type FormatSpecError struct {
	Spec string
}

func (e *FormatSpecError) Error() string {
	return fmt.Sprintf("unknown format code %q for a number var: only ',', '_', and '.Nf' are supported", e.Spec)
}

// UnserializableError reports a literal with no valid JSON representation,
// such as an infinite or NaN number.
type UnserializableError struct {
	Expr string
}

func (e *UnserializableError) Error() string {
	return fmt.Sprintf("no valid JSON representation for %s", e.Expr)
}
