/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

import "fmt"

// A boolean var is a numeric var specialized to the boolean type: ordered
// comparisons against it go through the numeric path after widening it to
// its 0/1 form, which the comparison builders do via numericVar.

// Not builds the logical NOT of a boolean operand.
func Not(value any) (Var, error) {
	o := classify(value)
	if o.kind != kindBoolean {
		return Var{}, unsupportedOperands("!", o)
	}
	v := o.toVar()
	return operation(fmt.Sprintf("!(%s)", v), TypeBoolean, v.data), nil
}

// ToNumber converts a boolean operand to its integer form (1 or 0).
func ToNumber(value any) (Var, error) {
	o := classify(value)
	if o.kind != kindBoolean {
		return Var{}, unsupportedOperands("int", o)
	}
	return booleanToNumber(o.toVar()), nil
}

func booleanToNumber(v Var) Var {
	return operation(fmt.Sprintf("Number(%s)", v), TypeInteger, v.data)
}

// Bool converts a value to a boolean var. Boolean operands are returned
// unchanged; anything else goes through the truthiness helper.
func Bool(value any) (Var, error) {
	o := classify(value)
	if o.kind == kindBoolean {
		return o.toVar(), nil
	}
	return Boolify(value)
}

// Boolify builds the truthiness of a value via the isTrue runtime helper.
// The helper, not the native NOT operator, decides what is falsy, so 0,
// empty strings, null, and undefined behave like the source semantics
// instead of the target runtime's coercion quirks.
func Boolify(value any) (Var, error) {
	v, err := Create(value)
	if err != nil {
		return Var{}, err
	}
	js := fmt.Sprintf("isTrue(%s)", v)
	return operation(js, TypeBoolean, v.data, helperImport("isTrue")), nil
}

// IsNotNull builds a null-and-undefined check via its runtime helper.
func IsNotNull(value any) (Var, error) {
	v, err := Create(value)
	if err != nil {
		return Var{}, err
	}
	js := fmt.Sprintf("isNotNullOrUndefined(%s)", v)
	return operation(js, TypeBoolean, v.data, helperImport("isNotNullOrUndefined")), nil
}
