/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors

Package vars builds typed, deferred JavaScript expressions from Go values.
It supports:
  - Literal vars for booleans, integers, floats, decimals, strings, and slices
  - Arithmetic operators: Add, Sub, Mul, Div, FloorDiv, Mod, Pow, Neg, Abs
  - Comparison operators: Lt, Le, Gt, Ge, Eq, Ne
  - Rounding: Round, Ceil, Floor, Trunc
  - Boolean logic: Not, Boolify, Invert, ToNumber, Ternary, IsNotNull
  - Number formatting with thousands separators and fixed decimals: Format

A Var never evaluates anything. It is an immutable value holding the rendered
expression text, the semantic type the expression evaluates to in the target
runtime, and the set of imports the text depends on. Operations compose the
operands' text into new text, so a Var tree can be shared freely and rendered
into an emitted program at any time.
*/
package vars

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Var is an immutable, typed, renderable expression. The zero value is an
// empty expression of boolean type; use Create or the operator functions to
// obtain useful vars.
type Var struct {
	js   string
	typ  Type
	data *VarData
	lit  *literalValue
}

// literalValue holds the concrete constant wrapped by a literal var.
// The value is normalized at construction: bool, int64, uint64, float64,
// decimal.Decimal, string, or the original slice for sequences.
type literalValue struct {
	value any
}

// JS returns the rendered target-runtime expression text.
func (v Var) JS() string {
	return v.js
}

// Type returns the semantic type the expression evaluates to.
func (v Var) Type() Type {
	return v.typ
}

// Data returns the metadata merged into this var, or nil if none.
func (v Var) Data() *VarData {
	return v.data
}

// String renders the var as its expression text, so vars compose naturally
// in fmt verbs and templates.
func (v Var) String() string {
	return v.js
}

// IsLiteral reports whether the var wraps a concrete constant.
func (v Var) IsLiteral() bool {
	return v.lit != nil
}

// LiteralValue returns the wrapped constant if the var is a literal.
func (v Var) LiteralValue() (any, bool) {
	if v.lit == nil {
		return nil, false
	}
	return v.lit.value, true
}

// Key is a comparable identity key for a var, derived from the rendered text
// and semantic type. Two vars with equal keys are interchangeable: repeated
// construction of the same literal or the same operation yields vars that
// compare equal and can share map slots.
type Key struct {
	JS   string
	Type Type
}

// Key returns the identity key of the var.
func (v Var) Key() Key {
	return Key{JS: v.js, Type: v.typ}
}

// Equal reports whether two vars render to the same text with the same
// semantic type. Metadata does not participate in identity.
func (v Var) Equal(other Var) bool {
	return v.js == other.js && v.typ == other.typ
}

// Hash returns a hash consistent with Equal.
func (v Var) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(v.typ)})
	h.Write([]byte(v.js))
	return h.Sum64()
}

// ImportVar is a named symbol required from a module in the emitted program.
type ImportVar struct {
	Tag       string // imported symbol name
	IsDefault bool   // import as the module's default export
	Alias     string // optional local alias
}

// VarData carries the auxiliary compilation requirements of a var: the
// imports its rendered text depends on and the generation hooks to install
// alongside it. A nil *VarData means no requirements. VarData is immutable
// after construction; merging produces a new value.
type VarData struct {
	imports map[string]map[ImportVar]struct{}
	hooks   []string
}

// NewVarData creates metadata from an import map and optional hooks.
func NewVarData(imports map[string][]ImportVar, hooks ...string) *VarData {
	d := &VarData{imports: make(map[string]map[ImportVar]struct{})}
	for module, vars := range imports {
		set := make(map[ImportVar]struct{}, len(vars))
		for _, iv := range vars {
			set[iv] = struct{}{}
		}
		d.imports[module] = set
	}
	seen := make(map[string]struct{}, len(hooks))
	for _, hook := range hooks {
		if _, ok := seen[hook]; ok {
			continue
		}
		seen[hook] = struct{}{}
		d.hooks = append(d.hooks, hook)
	}
	return d
}

// MergeVarData unions any number of metadata values. Duplicate import and
// hook declarations collapse, so merging the same subexpression repeatedly
// does not grow the result. Returns nil if nothing was contributed.
func MergeVarData(datas ...*VarData) *VarData {
	var merged *VarData
	hookSeen := make(map[string]struct{})
	for _, d := range datas {
		if d == nil {
			continue
		}
		if merged == nil {
			merged = &VarData{imports: make(map[string]map[ImportVar]struct{})}
		}
		for module, set := range d.imports {
			dst, ok := merged.imports[module]
			if !ok {
				dst = make(map[ImportVar]struct{}, len(set))
				merged.imports[module] = dst
			}
			for iv := range set {
				dst[iv] = struct{}{}
			}
		}
		for _, hook := range d.hooks {
			if _, ok := hookSeen[hook]; ok {
				continue
			}
			hookSeen[hook] = struct{}{}
			merged.hooks = append(merged.hooks, hook)
		}
	}
	return merged
}

// Modules returns the module paths with import requirements, sorted.
func (d *VarData) Modules() []string {
	if d == nil {
		return nil
	}
	modules := make([]string, 0, len(d.imports))
	for module := range d.imports {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	return modules
}

// ImportsFor returns the symbols required from a module, sorted by tag.
func (d *VarData) ImportsFor(module string) []ImportVar {
	if d == nil {
		return nil
	}
	set, ok := d.imports[module]
	if !ok {
		return nil
	}
	imports := make([]ImportVar, 0, len(set))
	for iv := range set {
		imports = append(imports, iv)
	}
	sort.Slice(imports, func(i, j int) bool { return imports[i].Tag < imports[j].Tag })
	return imports
}

// Hooks returns the generation hooks in first-seen order.
func (d *VarData) Hooks() []string {
	if d == nil {
		return nil
	}
	hooks := make([]string, len(d.hooks))
	copy(hooks, d.hooks)
	return hooks
}

// HelperModule is the module that hosts the runtime support helpers
// (truthiness, null checks, decimal formatting) in the emitted program.
// The $ prefix is an alias for the generated application root.
const HelperModule = "$/utils/state"

func helperImport(tag string) *VarData {
	return NewVarData(map[string][]ImportVar{
		HelperModule: {{Tag: tag}},
	})
}

// operation constructs a new var from rendered text, a result type, and the
// metadata of the operands plus any metadata the operation itself adds.
func operation(js string, typ Type, datas ...*VarData) Var {
	return Var{js: js, typ: typ, data: MergeVarData(datas...)}
}

// ToJSON returns the JSON encoding of a literal var.
//
// Infinite and NaN numbers are permitted in expression form but have no
// valid JSON representation, so they fail with UnserializableError. Decimal
// literals are downcast to floating point first: JSON has no
// arbitrary-precision decimal type. Operation vars are not constants and
// fail with ErrNotLiteral.
func (v Var) ToJSON() (string, error) {
	if v.lit == nil {
		return "", fmt.Errorf("%w: %s", ErrNotLiteral, v.js)
	}
	return encodeLiteralJSON(v)
}
