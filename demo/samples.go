/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

// Package demo builds sample expression trees for the inspector server.
package demo

import (
	"math"

	"github.com/google/ekfrasi/core/vars"
	"github.com/shopspring/decimal"
)

// Sample is a named expression shown by the inspector.
type Sample struct {
	Name string
	Var  vars.Var
}

func must(v vars.Var, err error) vars.Var {
	if err != nil {
		panic(err)
	}
	return v
}

// Samples returns the demo expressions, built purely with the vars algebra.
func Samples() []Sample {
	price := vars.MustCreate(19.99)
	qty := vars.MustCreate(3)
	stock := vars.MustCreate(0)

	subtotal := must(vars.Mul(price, qty))
	total := must(vars.Round(subtotal, 2))
	bulk := must(vars.Ge(qty, 10))
	discounted := must(vars.Ternary(bulk, must(vars.Mul(total, 0.9)), total))

	return []Sample{
		{Name: "subtotal", Var: subtotal},
		{Name: "total", Var: total},
		{Name: "discounted", Var: discounted},
		{Name: "total-display", Var: must(vars.Format(total, ",.2f"))},
		{Name: "qty-display", Var: must(vars.Format(qty, "_"))},
		{Name: "out-of-stock", Var: must(vars.Invert(stock))},
		{Name: "has-price", Var: must(vars.IsNotNull(price))},
		{Name: "units", Var: must(vars.Mul([]string{"unit"}, qty))},
		{Name: "tax-rate", Var: vars.MustCreate(decimal.RequireFromString("0.0825"))},
		{Name: "unbounded", Var: vars.MustCreate(math.Inf(1))},
	}
}

// RouteTemplates returns the page routes registered by the demo app.
func RouteTemplates() []string {
	return []string{
		"/products/[id]",
		"/products/[id]/reviews",
		"/docs/[section]/[page]",
		"/files/[[...path]]",
	}
}
