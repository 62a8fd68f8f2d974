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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/google/ekfrasi/core/config"
	"github.com/google/ekfrasi/core/emit"
	"github.com/google/ekfrasi/core/rendering"
	"github.com/google/ekfrasi/core/route"
	"github.com/google/ekfrasi/core/vars"
	"github.com/google/ekfrasi/demo"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	workDir, err := os.Getwd()
	if err != nil {
		slog.Error("cannot determine working directory", "error", err)
		os.Exit(1)
	}

	cfg, configPath, err := config.FindAndLoad(workDir)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if configPath != "" {
		slog.Info("loaded configuration", "path", configPath)
	}

	renderer, err := rendering.NewInspectorRenderer()
	if err != nil {
		slog.Error("failed to create renderer", "error", err)
		os.Exit(1)
	}

	opts := emit.Options{AppRoot: cfg.Runtime.AppRoot}

	samples := demo.Samples()
	samplesByName := make(map[string]demo.Sample, len(samples))
	for _, sample := range samples {
		samplesByName[sample.Name] = sample
	}

	routeInfos, err := buildRouteInfos(demo.RouteTemplates())
	if err != nil {
		slog.Error("invalid demo route", "error", err)
		os.Exit(1)
	}

	http.HandleFunc("/expr", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		sample, ok := samplesByName[name]
		if !ok {
			http.Error(w, fmt.Sprintf("Expression '%s' not found", name), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Render(w, expressionViewModel(sample, opts)); err != nil {
			// The renderer may already have written to the response,
			// so just log the failure.
			slog.Error("template rendering error", "error", err)
		}
	})

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		vm := rendering.LandingViewModel{
			Title:    "Ekfrasi Expression Inspector",
			Subtitle: "Typed, deferred JavaScript expressions built from Go values",
			Routes:   routeInfos,
		}
		for _, sample := range samples {
			vm.Expressions = append(vm.Expressions, rendering.ExpressionInfo{
				Name: sample.Name,
				JS:   sample.Var.JS(),
				Type: sample.Var.Type().String(),
				URL:  "/expr?name=" + sample.Name,
			})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.RenderLanding(w, vm); err != nil {
			slog.Error("landing page rendering error", "error", err)
		}
	})

	slog.Info("inspector listening", "address", cfg.Inspect.Listen)
	if err := http.ListenAndServe(cfg.Inspect.Listen, nil); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func expressionViewModel(sample demo.Sample, opts emit.Options) rendering.ExpressionViewModel {
	vm := rendering.ExpressionViewModel{
		Title:      sample.Name + " - Ekfrasi",
		Name:       sample.Name,
		JS:         sample.Var.JS(),
		Type:       sample.Var.Type().String(),
		Hooks:      sample.Var.Data().Hooks(),
		ModuleText: emit.Module(sample.Var, opts),
	}

	jsonText, err := sample.Var.ToJSON()
	switch {
	case err == nil:
		vm.JSON = jsonText
	case errors.Is(err, vars.ErrNotLiteral):
		vm.JSON = "(not a constant)"
	default:
		vm.JSON = err.Error()
	}

	data := sample.Var.Data()
	for _, module := range data.Modules() {
		var symbols []string
		for _, iv := range data.ImportsFor(module) {
			symbols = append(symbols, iv.Tag)
		}
		vm.Imports = append(vm.Imports, rendering.ImportRow{
			Module:  emit.ResolveModule(module, opts),
			Symbols: strings.Join(symbols, ", "),
		})
	}
	return vm
}

func buildRouteInfos(templates []string) ([]rendering.RouteInfo, error) {
	infos := make([]rendering.RouteInfo, 0, len(templates))
	for _, template := range templates {
		if err := route.Validate(template); err != nil {
			return nil, err
		}
		args, err := route.Args(template)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(args))
		for name := range args {
			names = append(names, name)
		}
		sort.Strings(names)
		pairs := make([]string, len(names))
		for i, name := range names {
			pairs[i] = fmt.Sprintf("%s (%s)", name, args[name])
		}

		infos = append(infos, rendering.RouteInfo{
			Route:      template,
			Normalized: route.Normalize(template),
			Args:       strings.Join(pairs, ", "),
		})
	}
	return infos, nil
}
