/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateRendering(t *testing.T) {
	tests := []struct {
		name  string
		value any
		js    string
		typ   Type
	}{
		{"true", true, "true", TypeBoolean},
		{"false", false, "false", TypeBoolean},
		{"int", 42, "42", TypeInteger},
		{"negative int", -7, "-7", TypeInteger},
		{"int64", int64(1 << 40), "1099511627776", TypeInteger},
		{"uint", uint(8), "8", TypeInteger},
		{"float", 2.5, "2.5", TypeFloating},
		{"small float", 0.1, "0.1", TypeFloating},
		{"infinity", math.Inf(1), "Infinity", TypeFloating},
		{"negative infinity", math.Inf(-1), "-Infinity", TypeFloating},
		{"nan", math.NaN(), "NaN", TypeFloating},
		{"decimal", decimal.RequireFromString("1.5"), "1.5", TypeDecimal},
		{"string", "hi", `"hi"`, TypeString},
		{"escaped string", `a"b`, `"a\"b"`, TypeString},
		{"int slice", []int{1, 2, 3}, "[1, 2, 3]", TypeSequence},
		{"mixed slice", []any{1, "a", true}, `[1, "a", true]`, TypeSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Create(tt.value)
			if err != nil {
				t.Fatalf("Create(%v) error: %v", tt.value, err)
			}
			if v.JS() != tt.js {
				t.Errorf("JS() = %q, want %q", v.JS(), tt.js)
			}
			if v.Type() != tt.typ {
				t.Errorf("Type() = %s, want %s", v.Type(), tt.typ)
			}
			if !v.IsLiteral() {
				t.Error("expected a literal var")
			}
		})
	}
}

func TestCreateUnsupported(t *testing.T) {
	if _, err := Create(struct{}{}); err == nil {
		t.Error("expected error for struct value")
	}
	if _, err := Create(map[string]int{"a": 1}); err == nil {
		t.Error("expected error for map value")
	}
}

func TestCreatePassesThroughVars(t *testing.T) {
	v := MustCreate(1)
	again, err := Create(v)
	if err != nil {
		t.Fatalf("Create(Var) error: %v", err)
	}
	if !again.Equal(v) {
		t.Errorf("Create(Var) = %s, want %s", again.JS(), v.JS())
	}
}

func TestToJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"int", 42},
		{"float", 19.99},
		{"zero", 0},
		{"bool", true},
		{"string", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustCreate(tt.value)
			encoded, err := v.ToJSON()
			if err != nil {
				t.Fatalf("ToJSON error: %v", err)
			}
			var decoded any
			if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
				t.Fatalf("invalid JSON %q: %v", encoded, err)
			}
			original, _ := json.Marshal(tt.value)
			if encoded != string(original) {
				t.Errorf("ToJSON = %q, want %q", encoded, string(original))
			}
		})
	}
}

func TestToJSONNonFinite(t *testing.T) {
	for _, value := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		v := MustCreate(value)
		_, err := v.ToJSON()
		var unserializable *UnserializableError
		if !errors.As(err, &unserializable) {
			t.Errorf("ToJSON(%s) error = %v, want UnserializableError", v.JS(), err)
		}
	}
}

func TestToJSONDecimalDowncast(t *testing.T) {
	v := MustCreate(decimal.RequireFromString("0.25"))
	encoded, err := v.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	if encoded != "0.25" {
		t.Errorf("ToJSON = %q, want %q", encoded, "0.25")
	}
}

func TestToJSONBooleanKeyword(t *testing.T) {
	v := MustCreate(true)
	encoded, err := v.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	if encoded != "true" || encoded != v.JS() {
		t.Errorf("boolean JSON %q should equal its expression text %q", encoded, v.JS())
	}
}

func TestToJSONNonLiteral(t *testing.T) {
	sum, err := Add(1, 2)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if _, err := sum.ToJSON(); !errors.Is(err, ErrNotLiteral) {
		t.Errorf("ToJSON on operation = %v, want ErrNotLiteral", err)
	}
}
