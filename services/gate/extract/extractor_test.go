// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package extract

import (
	"strings"
	"testing"
)

func TestFunctionsDeclaration(t *testing.T) {
	text := "export async function calculatePrice(cost, quantity) {\n" +
		"  return cost * quantity;\n" +
		"}\n"

	fns := New().Functions(text)
	if len(fns) != 1 {
		t.Fatalf("expected 1 function, got %d", len(fns))
	}

	f := fns[0]
	if f.Name != "calculatePrice" {
		t.Errorf("name = %q, want calculatePrice", f.Name)
	}
	if !f.IsAsync || !f.IsExported || f.IsArrow {
		t.Errorf("flags = async=%v exported=%v arrow=%v", f.IsAsync, f.IsExported, f.IsArrow)
	}
	if len(f.Parameters) != 2 || f.Parameters[0] != "cost" || f.Parameters[1] != "quantity" {
		t.Errorf("parameters = %v", f.Parameters)
	}
	if f.StartLine != 1 || f.EndLine != 3 {
		t.Errorf("lines = %d-%d, want 1-3", f.StartLine, f.EndLine)
	}
	if !f.ContainsSensitiveLogic {
		t.Error("price-named function should be flagged sensitive")
	}
	if f.Scope != ScopeGlobal {
		t.Errorf("scope = %q, want global", f.Scope)
	}
	if !strings.Contains(f.Body, "return cost * quantity") {
		t.Errorf("body = %q", f.Body)
	}
}

func TestFunctionsArrow(t *testing.T) {
	text := "const fetchUser = async (id) => {\n" +
		"  return client.get(id);\n" +
		"};\n" +
		"const double = value => value * 2;\n"

	fns := New().Functions(text)
	if len(fns) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(fns))
	}

	fetch := fns[0]
	if fetch.Name != "fetchUser" || !fetch.IsArrow || !fetch.IsAsync {
		t.Errorf("fetchUser = %+v", fetch)
	}
	if len(fetch.Parameters) != 1 || fetch.Parameters[0] != "id" {
		t.Errorf("fetchUser parameters = %v", fetch.Parameters)
	}

	dbl := fns[1]
	if dbl.Name != "double" || !dbl.IsArrow || dbl.IsAsync {
		t.Errorf("double = %+v", dbl)
	}
	if len(dbl.Parameters) != 1 || dbl.Parameters[0] != "value" {
		t.Errorf("double parameters = %v", dbl.Parameters)
	}
}

func TestFunctionsParamCleanup(t *testing.T) {
	text := "function configure(name = \"default\", { retries, timeout }, ...rest) {\n}\n"

	fns := New().Functions(text)
	if len(fns) != 1 {
		t.Fatalf("expected 1 function, got %d", len(fns))
	}
	want := []string{"name", "destructured", "rest"}
	got := fns[0].Parameters
	if len(got) != len(want) {
		t.Fatalf("parameters = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parameter[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVariables(t *testing.T) {
	text := "const apiKey = \"abcdefghijklmnop\";\n" +
		"let counter = 0;\n" +
		"const { host, port } = config;\n"

	vars := New().Variables(text)
	if len(vars) != 4 {
		t.Fatalf("expected 4 variables, got %d: %+v", len(vars), vars)
	}

	if vars[0].Name != "apiKey" || !vars[0].IsConst || !vars[0].IsPotentialSecret {
		t.Errorf("apiKey = %+v", vars[0])
	}
	if vars[1].Name != "counter" || vars[1].Kind != "let" || vars[1].IsPotentialSecret {
		t.Errorf("counter = %+v", vars[1])
	}
	// Destructured names share the declaration line, sorted by name.
	if vars[2].Name != "host" || vars[3].Name != "port" {
		t.Errorf("destructured = %q, %q", vars[2].Name, vars[3].Name)
	}
}

func TestVariablesSkipFunctionValued(t *testing.T) {
	text := "const handler = () => process();\n" +
		"const legacy = function() { return 1; };\n"

	vars := New().Variables(text)
	if len(vars) != 0 {
		t.Errorf("function-valued declarations should be skipped, got %+v", vars)
	}
}

func TestImports(t *testing.T) {
	text := "import React from 'react';\n" +
		"import { useState, useEffect } from 'react';\n" +
		"const axios = require('axios');\n" +
		"import('./lazy');\n"

	imports := New().Imports(text)
	if len(imports) != 4 {
		t.Fatalf("expected 4 imports, got %d: %+v", len(imports), imports)
	}

	if imports[0].Module != "react" || imports[0].Names[0] != "React" || imports[0].IsDynamic {
		t.Errorf("import[0] = %+v", imports[0])
	}
	if len(imports[1].Names) != 2 || imports[1].Names[0] != "useState" {
		t.Errorf("import[1] = %+v", imports[1])
	}
	if imports[2].Module != "axios" || !imports[2].IsDynamic {
		t.Errorf("require should be dynamic: %+v", imports[2])
	}
	if imports[3].Module != "./lazy" || !imports[3].IsDynamic {
		t.Errorf("import() should be dynamic: %+v", imports[3])
	}
}

func TestExports(t *testing.T) {
	text := "export function parseConfig() {}\n" +
		"export const maxRetries = 3;\n" +
		"export default class Engine {}\n" +
		"export { alpha, beta as gamma };\n" +
		"module.exports.helper = fn;\n"

	exports := New().Exports(text)

	want := map[string]string{
		"parseConfig": "function",
		"maxRetries":  "variable",
		"Engine":      "default",
		"alpha":       "list",
		"gamma":       "list",
		"helper":      "variable",
	}
	if len(exports) != len(want) {
		t.Fatalf("expected %d exports, got %d: %+v", len(want), len(exports), exports)
	}
	for _, ex := range exports {
		kind, ok := want[ex.Name]
		if !ok {
			t.Errorf("unexpected export %q", ex.Name)
			continue
		}
		if ex.Kind != kind {
			t.Errorf("export %q kind = %q, want %q", ex.Name, ex.Kind, kind)
		}
	}
}

func TestClasses(t *testing.T) {
	text := "export class OrderService extends BaseService {\n" +
		"  constructor() {\n" +
		"    this.orders = [];\n" +
		"  }\n" +
		"\n" +
		"  addOrder(order) {\n" +
		"    this.orders.push(order);\n" +
		"  }\n" +
		"}\n"

	classes := New().Classes(text)
	if len(classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(classes))
	}

	c := classes[0]
	if c.Name != "OrderService" || c.Extends != "BaseService" || !c.IsExported {
		t.Errorf("class = %+v", c)
	}
	if len(c.Methods) != 2 || c.Methods[0] != "addOrder" || c.Methods[1] != "constructor" {
		t.Errorf("methods = %v", c.Methods)
	}
	if len(c.Properties) != 1 || c.Properties[0] != "orders" {
		t.Errorf("properties = %v", c.Properties)
	}
}

func TestScopeClassification(t *testing.T) {
	text := "function outer() {\n" +
		"  const inner = \"nested value here\";\n" +
		"}\n" +
		"const top = 1;\n"

	vars := New().Variables(text)
	byName := map[string]Variable{}
	for _, v := range vars {
		byName[v.Name] = v
	}

	if v, ok := byName["inner"]; !ok || v.Scope != ScopeFunction {
		t.Errorf("inner scope = %+v", v)
	}
	if v, ok := byName["top"]; !ok || v.Scope != ScopeGlobal {
		t.Errorf("top scope = %+v", v)
	}
}

// Ordering and dedup invariants: lists are sorted ascending by start line
// and contain no duplicate composite keys.
func TestOrderingInvariant(t *testing.T) {
	text := "function zeta() {}\n" +
		"function alpha() {}\n" +
		"const beta = (x) => x;\n" +
		"function alpha() {}\n" // duplicate declaration

	fns := New().Functions(text)
	seen := map[string]bool{}
	lastLine := 0
	for _, f := range fns {
		if f.StartLine < lastLine {
			t.Errorf("functions not sorted by line: %+v", fns)
		}
		lastLine = f.StartLine
		key := f.Name + "|" + boolTag(f.IsArrow)
		key += "|" + string(rune(f.StartLine))
		if seen[key] {
			t.Errorf("duplicate key %q", key)
		}
		seen[key] = true
	}
}

func TestMalformedInputNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"function {{{",
		"const = = =",
		"class",
		"import from from from",
		strings.Repeat("{", 1000),
	}
	e := New()
	for _, in := range inputs {
		// Must not panic; result content is unspecified.
		_ = e.All(in)
	}
}
