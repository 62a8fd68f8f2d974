/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

// Package emit assembles an expression var and its compilation metadata into
// emitted JavaScript module text: import statements first, then generation
// hooks, then the expression as the default export.
package emit

import (
	"strings"

	"github.com/google/ekfrasi/core/vars"
)

// Options control module assembly.
type Options struct {
	// AppRoot replaces the leading "$" alias in import module paths.
	// Empty leaves the alias untouched for the target bundler.
	AppRoot string
}

// ResolveModule resolves the "$" application-root alias in a module path.
func ResolveModule(module string, opts Options) string {
	if opts.AppRoot != "" && strings.HasPrefix(module, "$/") {
		return strings.TrimSuffix(opts.AppRoot, "/") + "/" + module[2:]
	}
	return module
}

// ImportLines renders the import statements a var's metadata requires, one
// per module, in deterministic (sorted) order.
func ImportLines(data *vars.VarData, opts Options) []string {
	modules := data.Modules()
	lines := make([]string, 0, len(modules))
	for _, module := range modules {
		lines = append(lines, importLine(module, data.ImportsFor(module), opts))
	}
	return lines
}

func importLine(module string, imports []vars.ImportVar, opts Options) string {
	var defaultName string
	var named []string
	for _, iv := range imports {
		name := iv.Tag
		if iv.Alias != "" {
			name = iv.Tag + " as " + iv.Alias
		}
		if iv.IsDefault {
			defaultName = name
			continue
		}
		named = append(named, name)
	}

	var b strings.Builder
	b.WriteString("import ")
	if defaultName != "" {
		b.WriteString(defaultName)
		if len(named) > 0 {
			b.WriteString(", ")
		}
	}
	if len(named) > 0 {
		b.WriteString("{ ")
		b.WriteString(strings.Join(named, ", "))
		b.WriteString(" }")
	}
	b.WriteString(" from \"")
	b.WriteString(ResolveModule(module, opts))
	b.WriteString("\";")
	return b.String()
}

// Module renders a complete module around the expression: imports, hooks,
// and the expression as the default export.
func Module(v vars.Var, opts Options) string {
	var b strings.Builder

	lines := ImportLines(v.Data(), opts)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(lines) > 0 {
		b.WriteString("\n")
	}

	for _, hook := range v.Data().Hooks() {
		b.WriteString(hook)
		b.WriteString("\n")
	}

	b.WriteString("export default ")
	b.WriteString(v.JS())
	b.WriteString(";\n")
	return b.String()
}
