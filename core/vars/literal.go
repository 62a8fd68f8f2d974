/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Create wraps a host constant in a literal var whose rendered text is the
// canonical target-runtime encoding of the value. Infinite and NaN floats
// are rendered as the Infinity/-Infinity/NaN keywords; they only become an
// error if JSON serialization is requested later. Passing an existing Var
// returns it unchanged.
func Create(value any) (Var, error) {
	switch v := value.(type) {
	case Var:
		return v, nil
	case bool:
		return booleanLiteral(v), nil
	case int:
		return integerLiteral(int64(v)), nil
	case int8:
		return integerLiteral(int64(v)), nil
	case int16:
		return integerLiteral(int64(v)), nil
	case int32:
		return integerLiteral(int64(v)), nil
	case int64:
		return integerLiteral(v), nil
	case uint:
		return unsignedLiteral(uint64(v)), nil
	case uint8:
		return unsignedLiteral(uint64(v)), nil
	case uint16:
		return unsignedLiteral(uint64(v)), nil
	case uint32:
		return unsignedLiteral(uint64(v)), nil
	case uint64:
		return unsignedLiteral(v), nil
	case float32:
		return floatLiteral(float64(v)), nil
	case float64:
		return floatLiteral(v), nil
	case decimal.Decimal:
		return Var{js: v.String(), typ: TypeDecimal, lit: &literalValue{value: v}}, nil
	case string:
		return stringLiteral(v), nil
	}

	rv := reflect.ValueOf(value)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		return sequenceLiteral(rv, value)
	}
	return Var{}, fmt.Errorf("cannot create a literal var from %T value", value)
}

// MustCreate is Create for values known to be in the accepted constant set.
// It panics on unsupported values.
func MustCreate(value any) Var {
	v, err := Create(value)
	if err != nil {
		panic(err)
	}
	return v
}

func booleanLiteral(value bool) Var {
	js := "false"
	if value {
		js = "true"
	}
	return Var{js: js, typ: TypeBoolean, lit: &literalValue{value: value}}
}

func integerLiteral(value int64) Var {
	return Var{
		js:  strconv.FormatInt(value, 10),
		typ: TypeInteger,
		lit: &literalValue{value: value},
	}
}

func unsignedLiteral(value uint64) Var {
	return Var{
		js:  strconv.FormatUint(value, 10),
		typ: TypeInteger,
		lit: &literalValue{value: value},
	}
}

func floatLiteral(value float64) Var {
	var js string
	switch {
	case math.IsInf(value, 1):
		js = "Infinity"
	case math.IsInf(value, -1):
		js = "-Infinity"
	case math.IsNaN(value):
		js = "NaN"
	default:
		js = strconv.FormatFloat(value, 'g', -1, 64)
	}
	return Var{js: js, typ: TypeFloating, lit: &literalValue{value: value}}
}

func stringLiteral(value string) Var {
	encoded, _ := json.Marshal(value)
	return Var{js: string(encoded), typ: TypeString, lit: &literalValue{value: value}}
}

func sequenceLiteral(rv reflect.Value, original any) (Var, error) {
	elements := make([]string, rv.Len())
	var datas []*VarData
	for i := 0; i < rv.Len(); i++ {
		element, err := Create(rv.Index(i).Interface())
		if err != nil {
			return Var{}, fmt.Errorf("sequence element %d: %w", i, err)
		}
		elements[i] = element.js
		if element.data != nil {
			datas = append(datas, element.data)
		}
	}
	return Var{
		js:   "[" + strings.Join(elements, ", ") + "]",
		typ:  TypeSequence,
		data: MergeVarData(datas...),
		lit:  &literalValue{value: original},
	}, nil
}

func encodeLiteralJSON(v Var) (string, error) {
	switch value := v.lit.value.(type) {
	case bool:
		if value {
			return "true", nil
		}
		return "false", nil
	case float64:
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return "", &UnserializableError{Expr: v.js}
		}
		encoded, err := json.Marshal(value)
		return string(encoded), err
	case decimal.Decimal:
		// JSON has no arbitrary-precision decimal type.
		encoded, err := json.Marshal(value.InexactFloat64())
		return string(encoded), err
	default:
		encoded, err := json.Marshal(value)
		return string(encoded), err
	}
}
