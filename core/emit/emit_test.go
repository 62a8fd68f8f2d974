/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package emit

import (
	"strings"
	"testing"

	"github.com/google/ekfrasi/core/vars"
)

func TestResolveModule(t *testing.T) {
	tests := []struct {
		name     string
		module   string
		appRoot  string
		expected string
	}{
		{"no root", "$/utils/state", "", "$/utils/state"},
		{"with root", "$/utils/state", "./app", "./app/utils/state"},
		{"trailing slash", "$/utils/state", "./app/", "./app/utils/state"},
		{"plain module untouched", "react", "./app", "react"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveModule(tt.module, Options{AppRoot: tt.appRoot})
			if got != tt.expected {
				t.Errorf("ResolveModule(%q) = %q, want %q", tt.module, got, tt.expected)
			}
		})
	}
}

func TestImportLines(t *testing.T) {
	data := vars.NewVarData(map[string][]vars.ImportVar{
		"$/utils/state": {{Tag: "isTrue"}, {Tag: "getDecimalString"}},
		"react":         {{Tag: "React", IsDefault: true}, {Tag: "useState"}},
	})

	lines := ImportLines(data, Options{})
	if len(lines) != 2 {
		t.Fatalf("ImportLines = %v, want 2 lines", lines)
	}
	if lines[0] != `import { getDecimalString, isTrue } from "$/utils/state";` {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != `import React, { useState } from "react";` {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestImportLinesAlias(t *testing.T) {
	data := vars.NewVarData(map[string][]vars.ImportVar{
		"$/utils/state": {{Tag: "isTrue", Alias: "truthy"}},
	})
	lines := ImportLines(data, Options{})
	if len(lines) != 1 || lines[0] != `import { isTrue as truthy } from "$/utils/state";` {
		t.Errorf("ImportLines = %v", lines)
	}
}

func TestModule(t *testing.T) {
	v, err := vars.Invert(vars.MustCreate(0))
	if err != nil {
		t.Fatalf("Invert error: %v", err)
	}

	text := Module(v, Options{})
	expected := "import { isTrue } from \"$/utils/state\";\n" +
		"\n" +
		"export default !(isTrue(0));\n"
	if text != expected {
		t.Errorf("Module = %q, want %q", text, expected)
	}
}

func TestModuleNoImports(t *testing.T) {
	sum, err := vars.Add(1, 2)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	text := Module(sum, Options{})
	if text != "export default (1 + 2);\n" {
		t.Errorf("Module = %q", text)
	}
	if strings.Contains(text, "import") {
		t.Error("a var without metadata should not emit imports")
	}
}
