/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors

Package route parses and validates page route templates. Routes use bracket
segments for dynamic arguments: [name] matches a single segment, [...name]
matches the remainder of the path, and [[...name]] is the optional form of
the catch-all.
*/
package route

import (
	"fmt"
	"regexp"
	"strings"
)

// ArgType is the kind of value a dynamic route argument captures.
type ArgType int

const (
	ArgSingle ArgType = iota // one path segment
	ArgList                  // the remainder of the path
)

// String returns a human-readable name for the arg type
func (t ArgType) String() string {
	if t == ArgList {
		return "list"
	}
	return "single"
}

// Placeholder tokens substituted for bracket segments when normalizing a
// route, used to detect template collisions between registered routes.
const (
	SingleSegment         = "__SINGLE_SEGMENT__"
	DoubleSegment         = "__DOUBLE_SEGMENT__"
	SingleCatchallSegment = "__SINGLE_CATCHALL_SEGMENT__"
	DoubleCatchallSegment = "__DOUBLE_CATCHALL_SEGMENT__"
)

var (
	// argPattern matches a simple named argument segment like [slug].
	// The name must not start with a dot, which keeps catch-all segments
	// out of this pattern.
	argPattern = regexp.MustCompile(`^\[([^\[\].][^\[\]]*)\]$`)

	// strictCatchall matches [...name].
	strictCatchall = regexp.MustCompile(`^\[\.\.\.([^\[\]]+)\]$`)

	// optCatchall matches [[...name]].
	optCatchall = regexp.MustCompile(`^\[\[\.\.\.([^\[\]]+)\]\]$`)

	// catchallPattern finds the catch-all bracket substring inside a route.
	catchallPattern = regexp.MustCompile(`\[?\[\.\.\..+?\]?\]`)

	doubleCatchallBrackets = regexp.MustCompile(`\[\[\.\.\..+?\]\]`)
	singleCatchallBrackets = regexp.MustCompile(`\[\.\.\..+?\]`)
	doubleBrackets         = regexp.MustCompile(`\[\[.+?\]\]`)
	singleBrackets         = regexp.MustCompile(`\[.+?\]`)
)

// ValidationError reports an invalid route template: a malformed or
// misplaced catch-all, or a duplicate argument name. Routes fail at
// registration time, before any request handling exists.
type ValidationError struct {
	Route string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid route %q: %s", e.Route, e.Msg)
}

// Validate checks the catch-all discipline of a route: every catch-all-like
// segment must be exactly the strict or optional catch-all form, and a
// catch-all must be the final segment of the route.
func Validate(routeStr string) error {
	for _, part := range strings.Split(routeStr, "/") {
		if strings.Contains(part, "...") && !optCatchall.MatchString(part) && !strictCatchall.MatchString(part) {
			return &ValidationError{
				Route: routeStr,
				Msg:   fmt.Sprintf("catch-all pattern %q is not valid: only [[...name]] and [...name] are allowed", part),
			}
		}
	}
	if pattern := Catchall(routeStr); pattern != "" && !strings.HasSuffix(routeStr, pattern) {
		return &ValidationError{
			Route: routeStr,
			Msg:   fmt.Sprintf("catch-all pattern %q must be at the end of the route", pattern),
		}
	}
	return nil
}

// Args extracts the dynamic arguments of a route, mapping each argument name
// to the kind of value it captures. A catch-all segment stops the scan:
// nothing after it can match. Duplicate argument names are an error.
func Args(routeStr string) (map[string]ArgType, error) {
	args := make(map[string]ArgType)
	add := func(name string, t ArgType) error {
		if _, ok := args[name]; ok {
			return &ValidationError{
				Route: routeStr,
				Msg:   fmt.Sprintf("arg name [%s] is used more than once", name),
			}
		}
		args[name] = t
		return nil
	}

	for _, part := range strings.Split(routeStr, "/") {
		if m := optCatchall.FindStringSubmatch(part); m != nil {
			if err := add(m[1], ArgList); err != nil {
				return nil, err
			}
			break
		}
		if m := strictCatchall.FindStringSubmatch(part); m != nil {
			if err := add(m[1], ArgList); err != nil {
				return nil, err
			}
			break
		}
		if m := argPattern.FindStringSubmatch(part); m != nil {
			if err := add(m[1], ArgSingle); err != nil {
				return nil, err
			}
		}
	}
	return args, nil
}

// Catchall returns the raw catch-all bracket substring of a route, or the
// empty string if the route has none.
func Catchall(routeStr string) string {
	return catchallPattern.FindString(routeStr)
}

// Normalize replaces every bracket segment with a fixed placeholder token.
// Two routes that normalize to the same string would collide in the
// generated page tree. Double catch-alls are replaced first so the narrower
// patterns cannot eat their brackets.
func Normalize(routeStr string) string {
	out := doubleCatchallBrackets.ReplaceAllString(routeStr, DoubleCatchallSegment)
	out = singleCatchallBrackets.ReplaceAllString(out, SingleCatchallSegment)
	out = doubleBrackets.ReplaceAllString(out, DoubleSegment)
	return singleBrackets.ReplaceAllString(out, SingleSegment)
}
