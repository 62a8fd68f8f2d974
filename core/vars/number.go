/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Add builds the addition of two numeric operands.
var Add = binaryNumberOp("+", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s + %s)", lhs, rhs)
})

// Sub builds the subtraction of two numeric operands.
var Sub = binaryNumberOp("-", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s - %s)", lhs, rhs)
})

var numberMul = binaryNumberOp("*", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s * %s)", lhs, rhs)
})

// Mul builds the multiplication of two numeric operands. Multiplying by a
// sequence is not a numeric operation: it denotes repeating the sequence,
// so it branches to sequence repetition instead of failing.
func Mul(lhs, rhs any) (Var, error) {
	l, r := classify(lhs), classify(rhs)
	if l.kind == kindSequence {
		return repeatSequence(l, r)
	}
	if r.kind == kindSequence {
		return repeatSequence(r, l)
	}
	return numberMul(lhs, rhs)
}

// Div builds the true division of two numeric operands.
var Div = binaryNumberOp("/", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s / %s)", lhs, rhs)
})

// FloorDiv builds the floor division of two numeric operands. The target
// runtime has no integer division operator, so the quotient is wrapped in a
// floor call.
var FloorDiv = binaryNumberOp("//", func(lhs, rhs Var) string {
	return fmt.Sprintf("Math.floor(%s / %s)", lhs, rhs)
})

// Mod builds the modulo of two numeric operands.
var Mod = binaryNumberOp("%", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s %% %s)", lhs, rhs)
})

// Pow builds the exponentiation of two numeric operands.
var Pow = binaryNumberOp("**", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s ** %s)", lhs, rhs)
})

// Neg builds the negation of a numeric operand, preserving its type.
var Neg = unaryNumberOp("-", func(v Var) string {
	return fmt.Sprintf("-(%s)", v)
}, nil)

// Abs builds the absolute value of a numeric operand, preserving its type.
var Abs = unaryNumberOp("abs", func(v Var) string {
	return fmt.Sprintf("Math.abs(%s)", v)
}, nil)

// Pos is the unary plus: the identity on numeric vars, so they can be used
// as ordinary numeric values in compound expressions. On boolean operands it
// is the numeric conversion, matching how booleans widen everywhere else.
func Pos(value any) (Var, error) {
	o := classify(value)
	if !o.numeric() {
		return Var{}, unsupportedOperands("+", o)
	}
	return o.numericVar(), nil
}

// Ceil rounds a numeric operand up to an integer.
var Ceil = unaryNumberOp("ceil", func(v Var) string {
	return fmt.Sprintf("Math.ceil(%s)", v)
}, func(Type) Type { return TypeInteger })

// Floor rounds a numeric operand down to an integer.
var Floor = unaryNumberOp("floor", func(v Var) string {
	return fmt.Sprintf("Math.floor(%s)", v)
}, func(Type) Type { return TypeInteger })

// Trunc drops the fractional part of a numeric operand.
var Trunc = unaryNumberOp("trunc", func(v Var) string {
	return fmt.Sprintf("Math.trunc(%s)", v)
}, func(Type) Type { return TypeInteger })

// Round rounds a numeric operand. With literal zero digits the result is an
// integer rounded to nearest; with any other digits it is a float produced
// by fixing the decimal places and re-numericizing. The two cases emit
// different target types on purpose: changing this would change the numeric
// type of the emitted program.
func Round(value, digits any) (Var, error) {
	v, d := classify(value), classify(digits)
	if !v.numeric() || !d.numeric() {
		return Var{}, unsupportedOperands("round", v, d)
	}
	vv := v.numericVar()
	if isLiteralZero(d) {
		return operation(fmt.Sprintf("Math.round(%s)", vv), TypeInteger, vv.data), nil
	}
	dv := d.numericVar()
	return operation(fmt.Sprintf("(+%s.toFixed(%s))", vv, dv), TypeFloating, vv.data, dv.data), nil
}

// isLiteralZero reports whether the digits operand is a constant zero:
// either a bare integer zero or a literal var wrapping a numeric zero.
func isLiteralZero(o operand) bool {
	if o.isVar {
		value, ok := o.v.LiteralValue()
		if !ok {
			return false
		}
		switch n := value.(type) {
		case int64:
			return n == 0
		case uint64:
			return n == 0
		case float64:
			return n == 0
		case decimal.Decimal:
			return n.IsZero()
		}
		return false
	}
	switch n := o.raw.(type) {
	case int:
		return n == 0
	case int8:
		return n == 0
	case int16:
		return n == 0
	case int32:
		return n == 0
	case int64:
		return n == 0
	case uint:
		return n == 0
	case uint8:
		return n == 0
	case uint16:
		return n == 0
	case uint32:
		return n == 0
	case uint64:
		return n == 0
	}
	return false
}

// Invert is the logical NOT of a numeric operand's truthiness. Boolean vars
// negate directly; other numbers go through the isTrue helper first, so 0
// is falsy under the source semantics rather than the target runtime's
// native coercion rules.
func Invert(value any) (Var, error) {
	o := classify(value)
	if o.kind == kindBoolean {
		return Not(o.toVar())
	}
	if !o.numeric() {
		return Var{}, unsupportedOperands("~", o)
	}
	truthy, err := Boolify(o.toVar())
	if err != nil {
		return Var{}, err
	}
	return Not(truthy)
}

// Lt builds a less-than comparison of two numeric operands.
var Lt = comparisonOp("<", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s < %s)", lhs, rhs)
})

// Le builds a less-than-or-equal comparison of two numeric operands.
var Le = comparisonOp("<=", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s <= %s)", lhs, rhs)
})

// Gt builds a greater-than comparison of two numeric operands.
var Gt = comparisonOp(">", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s > %s)", lhs, rhs)
})

// Ge builds a greater-than-or-equal comparison of two numeric operands.
var Ge = comparisonOp(">=", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s >= %s)", lhs, rhs)
})

// Eq builds a strict equality comparison. Non-numeric operands are allowed
// and compare directly without numeric coercion.
var Eq = equalityOp("==", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s === %s)", lhs, rhs)
})

// Ne builds a strict inequality comparison. Non-numeric operands are allowed
// and compare directly without numeric coercion.
var Ne = equalityOp("!=", func(lhs, rhs Var) string {
	return fmt.Sprintf("(%s !== %s)", lhs, rhs)
})

// Ternary builds a conditional expression. For numeric branches the result
// type is their unification; otherwise it is the common type of the
// branches, or any when they differ.
func Ternary(condition, ifTrue, ifFalse any) (Var, error) {
	cond, err := Create(condition)
	if err != nil {
		return Var{}, err
	}
	t, err := Create(ifTrue)
	if err != nil {
		return Var{}, err
	}
	f, err := Create(ifFalse)
	if err != nil {
		return Var{}, err
	}
	typ := TypeAny
	switch {
	case t.typ.IsNumeric() && f.typ.IsNumeric():
		typ = Unify(t.typ, f.typ)
	case t.typ == f.typ:
		typ = t.typ
	}
	js := fmt.Sprintf("(%s ? %s : %s)", cond, t, f)
	return operation(js, typ, cond.data, t.data, f.data), nil
}

// Format renders a numeric operand through a constrained format
// mini-language. A leading ',' or '_' selects a thousands separator; a
// remaining spec of the exact shape .Nf requests N fixed decimal places.
// Both render through decimal-string helpers from the runtime support
// module. Any other non-empty spec is rejected.
func Format(value any, spec string) (Var, error) {
	o := classify(value)
	if !o.numeric() {
		return Var{}, unsupportedOperands("format", o)
	}
	v := o.toVar()

	separator := ""
	if strings.HasPrefix(spec, ",") {
		separator = ","
		spec = spec[1:]
	} else if strings.HasPrefix(spec, "_") {
		separator = "_"
		spec = spec[1:]
	}

	if len(spec) >= 3 && spec[0] == '.' && spec[len(spec)-1] == 'f' && isDigits(spec[1:len(spec)-1]) {
		decimals, _ := strconv.Atoi(spec[1 : len(spec)-1])
		js := fmt.Sprintf("getDecimalString(%s, %s, %s)", v, integerLiteral(int64(decimals)), stringLiteral(separator))
		return operation(js, TypeString, v.data, helperImport("getDecimalString")), nil
	}

	if spec == "" && separator != "" {
		js := fmt.Sprintf("getDecimalStringSeparator(%s, %s)", v, stringLiteral(separator))
		return operation(js, TypeString, v.data, helperImport("getDecimalStringSeparator")), nil
	}

	if spec != "" {
		return Var{}, &FormatSpecError{Spec: spec}
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
