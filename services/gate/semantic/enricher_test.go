// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/extract"
	"github.com/seawall-ai/seawall/services/gate/patterns"
)

// =============================================================================
// Role Classification Tests
// =============================================================================

func TestClassifyRole(t *testing.T) {
	testCases := []struct {
		name     string
		expected Role
	}{
		{"calculateTotal", RoleBusiness},
		{"processPayment", RoleBusiness},
		{"renderHeader", RoleUI},
		{"toggleSidebar", RoleUI},
		{"fetchUser", RoleInfrastructure},
		{"setupDatabase", RoleInfrastructure},
		{"formatDate", RoleUtility},
		{"parseQuery", RoleUtility},
		{"doThing", RoleUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifyRole(tc.name))
		})
	}
}

func TestClassifyRole_BusinessWinsTies(t *testing.T) {
	// "renderPrice" carries both a ui and a business token; the business
	// table is consulted first.
	assert.Equal(t, RoleBusiness, classifyRole("renderPrice"))
}

// =============================================================================
// Complexity Tests
// =============================================================================

func TestCyclomaticComplexity(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{"empty", "", 1},
		{"straight line", "return a + b;", 1},
		{"single branch", "if (a) { return 1; }", 2},
		{"branch with guard", "if (a && b) { return x ? y : z; }", 4},
		{"loop and catch", "for (;;) { try { f(); } catch (e) {} }", 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cyclomaticComplexity(tc.body))
		})
	}
}

func TestCognitiveComplexity_NestingWeight(t *testing.T) {
	flat := "if (a) {}\nif (b) {}"
	assert.Equal(t, 2, cognitiveComplexity(flat))

	nested := "if (a) {\n" +
		"  if (b) {\n" +
		"    while (c) {}\n" +
		"  }\n" +
		"}"
	// 1*1 + 1*2 + 1*3: depth raises the per-token cost.
	assert.Equal(t, 6, cognitiveComplexity(nested))
}

func TestAggregateComplexity_DebtPenalties(t *testing.T) {
	ctx := &Context{
		Secrets: []patterns.SecretMatch{{Type: "openai_api_key"}},
	}
	c := aggregateComplexity(ctx)

	// Below the baseline the debt is only the per-secret penalty.
	assert.Equal(t, 2, c.Cognitive) // one pattern hit counts twice
	assert.Equal(t, debtSecretPenalty, c.TechnicalDebt)
}

func TestAggregateComplexity_WideParamsPenalty(t *testing.T) {
	wide := Function{Function: extract.Function{
		Name:       "configure",
		Parameters: []string{"a", "b", "c", "d", "e", "f"},
	}}
	ctx := &Context{Functions: []Function{wide}}
	c := aggregateComplexity(ctx)

	assert.Equal(t, debtWideParamsPenalty, c.TechnicalDebt)
}

// =============================================================================
// Function Enrichment Tests
// =============================================================================

func TestEnrichFunction_SideEffects(t *testing.T) {
	f := enrichFunction(extract.Function{
		Name: "syncProfile",
		Body: "const res = await fetch(url);\n" +
			"this.profile = res;\n" +
			"localStorage.setItem('profile', res);\n" +
			"console.log('synced');\n",
	})

	assert.True(t, f.MakesExternalCalls)
	assert.True(t, f.MutatesState)
	assert.True(t, f.TouchesStorage)
	assert.True(t, f.Logs)
	assert.Equal(t, RoleInfrastructure, f.Role)
}

func TestEnrichFunction_PureHelper(t *testing.T) {
	f := enrichFunction(extract.Function{
		Name: "formatLabel",
		Body: "return value.trim().toUpperCase();",
	})

	assert.False(t, f.MakesExternalCalls)
	assert.False(t, f.MutatesState)
	assert.False(t, f.Logs)
	assert.False(t, f.TouchesStorage)
	assert.Equal(t, 1, f.Cyclomatic)
}

// =============================================================================
// Variable Enrichment Tests
// =============================================================================

func TestEnrichVariable_ReadWrite(t *testing.T) {
	lines := []string{
		"let count = 0;",
		"count = count + 1;",
		"console.log(count);",
	}
	v := enrichVariable(extract.Variable{Name: "count", Line: 1, Kind: "let"}, lines)

	assert.Equal(t, 2, v.Reads)
	assert.Equal(t, 1, v.Writes)
	assert.Equal(t, AccessReadWrite, v.Access)
}

func TestEnrichVariable_Unused(t *testing.T) {
	lines := []string{"const orphan = compute();"}
	v := enrichVariable(extract.Variable{
		Name: "orphan", Line: 1, Kind: "const", IsConst: true,
	}, lines)

	assert.Equal(t, AccessUnused, v.Access)
	assert.Equal(t, gate.SeverityMedium, v.Risk)
}

func TestVariableRisk(t *testing.T) {
	secret := extract.Variable{Name: "apiKey", IsPotentialSecret: true}
	assert.Equal(t, gate.SeverityHigh, variableRisk(secret, AccessReadOnly))

	mutableGlobal := extract.Variable{Name: "state", Scope: extract.ScopeGlobal, Kind: "let"}
	assert.Equal(t, gate.SeverityMedium, variableRisk(mutableGlobal, AccessReadWrite))

	local := extract.Variable{Name: "i", Scope: extract.ScopeFunction, Kind: "let"}
	assert.Equal(t, gate.SeverityLow, variableRisk(local, AccessReadWrite))
}

// =============================================================================
// Dependency Enrichment Tests
// =============================================================================

func TestModulePurpose(t *testing.T) {
	testCases := []struct {
		module   string
		expected string
	}{
		{"react", "ui"},
		{"axios", "http"},
		{"mongodb", "data"},
		{"bcrypt", "security"},
		{"jest", "testing"},
		{"lodash", "utility"},
		{"./utils/helpers", "internal"},
		{"left-pad", "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.module, func(t *testing.T) {
			assert.Equal(t, tc.expected, modulePurpose(tc.module))
		})
	}
}

func TestEnrichDependencies_CouplingBuckets(t *testing.T) {
	mk := func(n int) []extract.Import {
		out := make([]extract.Import, n)
		for i := range out {
			out[i] = extract.Import{Module: "m", Line: i + 1}
		}
		return out
	}

	_, loose := enrichDependencies(mk(4))
	assert.Equal(t, CouplingLoose, loose)

	_, medium := enrichDependencies(mk(10))
	assert.Equal(t, CouplingMedium, medium)

	_, tight := enrichDependencies(mk(11))
	assert.Equal(t, CouplingTight, tight)
}

// =============================================================================
// Class Enrichment Tests
// =============================================================================

func TestEnrichClass_PatternHints(t *testing.T) {
	c := enrichClass(extract.Class{
		Name:    "ConnectionPool",
		Methods: []string{"getInstance", "createConnection", "buildConfig"},
	})

	// getInstance hits singleton alone; create+build clear the factory
	// minimum; "build" also counts toward builder but "with"/"set" do not
	// appear, leaving builder below its minimum.
	assert.Equal(t, []string{"factory", "singleton"}, c.PatternHints)
}

func TestEnrichClass_NoHints(t *testing.T) {
	c := enrichClass(extract.Class{
		Name:    "Invoice",
		Methods: []string{"total", "addLine"},
	})
	assert.Empty(t, c.PatternHints)
}

// =============================================================================
// Enricher Integration Tests
// =============================================================================

func TestEnricher_Analyze(t *testing.T) {
	text := "import React from 'react';\n" +
		"import { useState } from 'react';\n" +
		"\n" +
		"export function calculatePrice(cost, margin) {\n" +
			"  return cost * (1 + margin);\n" +
		"}\n" +
		"\n" +
		"function Widget() {\n" +
		"  const [v, setV] = useState(0);\n" +
		"  return <Widget />;\n" +
		"}\n"

	ctx := New(patterns.Default()).Analyze(text, "pricing.jsx", []string{"react"})
	require.NotNil(t, ctx)

	assert.Equal(t, "pricing.jsx", ctx.FileName)
	assert.Len(t, ctx.Functions, 2)
	assert.Equal(t, RoleBusiness, ctx.Functions[0].Role)
	assert.Equal(t, CouplingLoose, ctx.Coupling)

	require.NotNil(t, ctx.PrimaryFramework)
	assert.Equal(t, "react", ctx.PrimaryFramework.Name)

	require.NotEmpty(t, ctx.Business)
	assert.Equal(t, "pricing", ctx.Business[0].Domain)
	assert.NotEmpty(t, ctx.RiskFactors)
}

func TestEnricher_AnalyzeEmptyText(t *testing.T) {
	ctx := New(patterns.Default()).Analyze("", "", nil)
	require.NotNil(t, ctx)

	assert.Empty(t, ctx.Functions)
	assert.Empty(t, ctx.Secrets)
	assert.Equal(t, CouplingLoose, ctx.Coupling)
}

func TestEnricher_ScanSecretsSharesCatalog(t *testing.T) {
	e := New(patterns.Default())
	text := "const apiKey = \"sk-proj-ABCDEF1234567890abcdef1234567890\";\n"

	direct := e.ScanSecrets(text, "app.js")
	full := e.Analyze(text, "app.js", nil)

	assert.Equal(t, direct, full.Secrets)
}
