/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
)

// kind tags the runtime category of an operand. Every operator resolves the
// kind of each operand exactly once, then branches on the tag; operators
// never inspect raw host values beyond this classification.
type kind int

const (
	kindBoolean kind = iota
	kindInteger
	kindFloating
	kindDecimal
	kindString
	kindSequence
	kindOther
)

// operand is a classified operator input: either an existing Var or a bare
// host constant awaiting literal coercion.
type operand struct {
	kind  kind
	v     Var
	raw   any
	isVar bool
}

func classify(value any) operand {
	switch v := value.(type) {
	case Var:
		return operand{kind: kindOfType(v.typ), v: v, raw: value, isVar: true}
	case bool:
		return operand{kind: kindBoolean, raw: value}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return operand{kind: kindInteger, raw: value}
	case float32, float64:
		return operand{kind: kindFloating, raw: value}
	case decimal.Decimal:
		return operand{kind: kindDecimal, raw: value}
	case string:
		return operand{kind: kindString, raw: value}
	}
	rv := reflect.ValueOf(value)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		return operand{kind: kindSequence, raw: value}
	}
	return operand{kind: kindOther, raw: value}
}

func kindOfType(t Type) kind {
	switch t {
	case TypeBoolean:
		return kindBoolean
	case TypeInteger:
		return kindInteger
	case TypeFloating:
		return kindFloating
	case TypeDecimal:
		return kindDecimal
	case TypeString:
		return kindString
	case TypeSequence:
		return kindSequence
	default:
		return kindOther
	}
}

// numeric reports whether the operand is in the accepted numeric set.
func (o operand) numeric() bool {
	switch o.kind {
	case kindBoolean, kindInteger, kindFloating, kindDecimal:
		return true
	}
	return false
}

// typeName names the operand's runtime type for error messages.
func (o operand) typeName() string {
	if o.isVar {
		return "Var[" + o.v.typ.String() + "]"
	}
	return fmt.Sprintf("%T", o.raw)
}

// toVar coerces the operand to a Var without changing its semantic type.
// Only called on operands whose raw value is in the accepted constant set.
func (o operand) toVar() Var {
	if o.isVar {
		return o.v
	}
	return MustCreate(o.raw)
}

// numericVar coerces the operand to its numeric form: boolean vars become a
// Number() conversion, bare booleans become 1 or 0, and everything else is
// wrapped as a literal unchanged. Only valid on numeric operands.
func (o operand) numericVar() Var {
	if o.kind == kindBoolean {
		if o.isVar {
			return booleanToNumber(o.v)
		}
		if o.raw.(bool) {
			return integerLiteral(1)
		}
		return integerLiteral(0)
	}
	return o.toVar()
}

func unsupportedOperands(op string, operands ...operand) error {
	names := make([]string, len(operands))
	for i, o := range operands {
		names[i] = o.typeName()
	}
	return &UnsupportedOperandError{Op: op, Operands: names}
}

// binaryTemplate composes the rendered text of a binary operation from its
// coerced operands. Templates always parenthesize compound output so that
// composition is safe at any nesting depth without a precedence table.
type binaryTemplate func(lhs, rhs Var) string

// BinaryFunc is a reusable binary operator over vars and host constants.
type BinaryFunc func(lhs, rhs any) (Var, error)

// UnaryFunc is a reusable unary operator over vars and host constants.
type UnaryFunc func(value any) (Var, error)

// binaryNumberOp builds a numeric operator from a textual template. The
// operator validates both operands against the numeric operand set, coerces
// bare constants into literals, types the result by unification, and merges
// the operands' metadata into the new var.
func binaryNumberOp(symbol string, template binaryTemplate) BinaryFunc {
	return func(lhs, rhs any) (Var, error) {
		l, r := classify(lhs), classify(rhs)
		if !l.numeric() || !r.numeric() {
			return Var{}, unsupportedOperands(symbol, l, r)
		}
		lv, rv := l.numericVar(), r.numericVar()
		return operation(template(lv, rv), Unify(lv.typ, rv.typ), lv.data, rv.data), nil
	}
}

// comparisonOp builds an ordered comparison from a textual template. The
// operand rules match binaryNumberOp, but the result is always boolean.
func comparisonOp(symbol string, template binaryTemplate) BinaryFunc {
	return func(lhs, rhs any) (Var, error) {
		l, r := classify(lhs), classify(rhs)
		if !l.numeric() || !r.numeric() {
			return Var{}, unsupportedOperands(symbol, l, r)
		}
		lv, rv := l.numericVar(), r.numericVar()
		return operation(template(lv, rv), TypeBoolean, lv.data, rv.data), nil
	}
}

// equalityOp builds an equality comparison. Numeric operand pairs go through
// numeric coercion like any comparison; everything else compares directly,
// so vars can be tested against arbitrary constants.
func equalityOp(symbol string, template binaryTemplate) BinaryFunc {
	return func(lhs, rhs any) (Var, error) {
		l, r := classify(lhs), classify(rhs)
		var lv, rv Var
		if l.numeric() && r.numeric() {
			lv, rv = l.numericVar(), r.numericVar()
		} else {
			var err error
			if lv, err = Create(l.raw); err != nil {
				return Var{}, unsupportedOperands(symbol, l, r)
			}
			if rv, err = Create(r.raw); err != nil {
				return Var{}, unsupportedOperands(symbol, l, r)
			}
		}
		return operation(template(lv, rv), TypeBoolean, lv.data, rv.data), nil
	}
}

// unaryNumberOp builds a unary numeric operator. retype maps the operand's
// type to the result type; nil preserves the operand type.
func unaryNumberOp(symbol string, template func(Var) string, retype func(Type) Type) UnaryFunc {
	return func(value any) (Var, error) {
		o := classify(value)
		if !o.numeric() {
			return Var{}, unsupportedOperands(symbol, o)
		}
		v := o.numericVar()
		typ := v.typ
		if retype != nil {
			typ = retype(v.typ)
		}
		return operation(template(v), typ, v.data), nil
	}
}

// binaryOps is the dispatch table from operator symbol to builder instance.
// Populated at init so host bindings can route operator syntax through one
// validate/coerce/compose/retype pipeline.
var binaryOps = map[string]BinaryFunc{}

func init() {
	binaryOps["+"] = Add
	binaryOps["-"] = Sub
	binaryOps["*"] = Mul
	binaryOps["/"] = Div
	binaryOps["//"] = FloorDiv
	binaryOps["%"] = Mod
	binaryOps["**"] = Pow
	binaryOps["<"] = Lt
	binaryOps["<="] = Le
	binaryOps[">"] = Gt
	binaryOps[">="] = Ge
	binaryOps["=="] = Eq
	binaryOps["!="] = Ne
}

// BinaryOp returns the operator registered for the given symbol.
func BinaryOp(symbol string) (BinaryFunc, bool) {
	op, ok := binaryOps[symbol]
	return op, ok
}
