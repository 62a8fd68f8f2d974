/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

// Type is the semantic type of an expression, tracked independently of the
// target runtime's own type system.
type Type int

const (
	TypeBoolean  Type = iota // Boolean value
	TypeInteger              // Integer value
	TypeFloating             // Floating-point value
	TypeDecimal              // Arbitrary-precision decimal value
	TypeString               // String value
	TypeSequence             // Array value
	TypeAny                  // Any value (unknown or mixed)
)

// String returns a human-readable name for the type
func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeFloating:
		return "floating"
	case TypeDecimal:
		return "decimal"
	case TypeString:
		return "string"
	case TypeSequence:
		return "sequence"
	default:
		return "any"
	}
}

// IsNumeric reports whether the type participates in numeric unification.
// Booleans are numeric: they widen to integer when mixed with other numbers.
func (t Type) IsNumeric() bool {
	switch t {
	case TypeBoolean, TypeInteger, TypeFloating, TypeDecimal:
		return true
	}
	return false
}

// Unify returns the narrowest type that both inputs safely widen to.
//
// The numeric types form a widening chain boolean < integer < floating <
// decimal, so the result is simply the wider of the two. The chain ordering
// makes Unify commutative and associative. Unify is only defined over the
// numeric/boolean types; callers must not pass string or sequence types.
func Unify(a, b Type) Type {
	if a < b {
		return b
	}
	return a
}
