/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package route

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		route string
		valid bool
	}{
		{"/posts", true},
		{"/posts/[slug]", true},
		{"/posts/[slug]/comments", true},
		{"/posts/[...slug]", true},
		{"/posts/[[...slug]]", true},
		{"/posts/[...slug]/comments", false},
		{"/posts/[[...slug]]/comments", false},
		{"/posts/[[bad...x]]", false},
		{"/posts/[bad...]", false},
		{"/", true},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			err := Validate(tt.route)
			if tt.valid && err != nil {
				t.Errorf("Validate(%q) = %v, want nil", tt.route, err)
			}
			if !tt.valid {
				var validation *ValidationError
				if !errors.As(err, &validation) {
					t.Errorf("Validate(%q) = %v, want ValidationError", tt.route, err)
				}
			}
		})
	}
}

func TestArgs(t *testing.T) {
	tests := []struct {
		route    string
		expected map[string]ArgType
	}{
		{"/posts", map[string]ArgType{}},
		{"/posts/[slug]", map[string]ArgType{"slug": ArgSingle}},
		{"/posts/[slug]/[[...rest]]", map[string]ArgType{"slug": ArgSingle, "rest": ArgList}},
		{"/posts/[...slug]", map[string]ArgType{"slug": ArgList}},
		{"/docs/[section]/[page]", map[string]ArgType{"section": ArgSingle, "page": ArgSingle}},
		// A catch-all stops the scan: nothing after it can match.
		{"/a/[...rest]/[x]", map[string]ArgType{"rest": ArgList}},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			args, err := Args(tt.route)
			if err != nil {
				t.Fatalf("Args(%q) error: %v", tt.route, err)
			}
			if len(args) != len(tt.expected) {
				t.Fatalf("Args(%q) = %v, want %v", tt.route, args, tt.expected)
			}
			for name, argType := range tt.expected {
				if args[name] != argType {
					t.Errorf("Args(%q)[%s] = %s, want %s", tt.route, name, args[name], argType)
				}
			}
		})
	}
}

func TestArgsDuplicate(t *testing.T) {
	_, err := Args("/a/[x]/[x]")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Args with duplicate name = %v, want ValidationError", err)
	}
}

func TestCatchall(t *testing.T) {
	tests := []struct {
		route    string
		expected string
	}{
		{"/posts/[...slug]", "[...slug]"},
		{"/posts/[[...slug]]", "[[...slug]]"},
		{"/posts/[slug]", ""},
		{"/posts", ""},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			if got := Catchall(tt.route); got != tt.expected {
				t.Errorf("Catchall(%q) = %q, want %q", tt.route, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		route    string
		expected string
	}{
		{"/posts", "/posts"},
		{"/posts/[slug]", "/posts/" + SingleSegment},
		{"/posts/[slug]/comments", "/posts/" + SingleSegment + "/comments"},
		{"/posts/[[slug]]", "/posts/" + DoubleSegment},
		{"/posts/[[...slug]]", "/posts/" + DoubleCatchallSegment},
		{"/posts/[...slug]", "/posts/" + SingleCatchallSegment},
		{"/docs/[a]/[b]", "/docs/" + SingleSegment + "/" + SingleSegment},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			if got := Normalize(tt.route); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.route, got, tt.expected)
			}
		})
	}
}

func TestNormalizeCollision(t *testing.T) {
	if Normalize("/posts/[slug]") != Normalize("/posts/[id]") {
		t.Error("routes differing only in arg name should normalize identically")
	}
	if Normalize("/posts/[slug]") == Normalize("/posts/[...slug]") {
		t.Error("single and catch-all segments should normalize differently")
	}
}
