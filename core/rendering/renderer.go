/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

// ImportRow is one module of an expression's import requirements.
type ImportRow struct {
	Module  string
	Symbols string
}

// ExpressionViewModel is the data for the expression inspector page.
type ExpressionViewModel struct {
	Title      string
	Name       string
	JS         string
	Type       string
	JSON       string // literal JSON form, or a note for non-literals
	Imports    []ImportRow
	Hooks      []string
	ModuleText string // assembled module emitted for this expression
}

// RouteInfo is one registered route template on the landing page.
type RouteInfo struct {
	Route      string
	Normalized string
	Args       string
}

// ExpressionInfo is one sample expression linked from the landing page.
type ExpressionInfo struct {
	Name string
	JS   string
	Type string
	URL  string
}

// LandingViewModel is the data for the inspector landing page.
type LandingViewModel struct {
	Title       string
	Subtitle    string
	Expressions []ExpressionInfo
	Routes      []RouteInfo
}

// InspectorRenderer handles rendering of expression view models to HTML
type InspectorRenderer struct {
	expressionTemplate *template.Template
	landingTemplate    *template.Template
}

// NewInspectorRenderer creates a new inspector renderer
func NewInspectorRenderer() (*InspectorRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	expressionTemplate, err := template.New("expression.html").ParseFS(trustedFS, "templates/expression.html")
	if err != nil {
		return nil, err
	}

	landingTemplate, err := template.New("landing.html").ParseFS(trustedFS, "templates/landing.html")
	if err != nil {
		return nil, err
	}

	return &InspectorRenderer{
		expressionTemplate: expressionTemplate,
		landingTemplate:    landingTemplate,
	}, nil
}

// Render renders an ExpressionViewModel to the provided writer
func (r *InspectorRenderer) Render(w io.Writer, vm ExpressionViewModel) error {
	return r.expressionTemplate.Execute(w, vm)
}

// RenderLanding renders a LandingViewModel to the provided writer
func (r *InspectorRenderer) RenderLanding(w io.Writer, vm LandingViewModel) error {
	return r.landingTemplate.Execute(w, vm)
}
