// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import (
	"math"
	"strings"
	"testing"
)

func TestFrameworkScanReact(t *testing.T) {
	text := "import React from 'react';\n" +
		"import { useState } from 'react';\n" +
		"\n" +
		"function App() {\n" +
		"  const [count, setCount] = useState(0);\n" +
		"  return <App />;\n" +
		"}\n"

	matches := NewFrameworkMatcher(Default().Frameworks).Scan(text, "App.jsx", []string{"react"})
	if len(matches) == 0 {
		t.Fatal("expected a react match")
	}

	react := matches[0]
	if react.Name != "react" || react.Category != "frontend" {
		t.Fatalf("primary = %+v, want react/frontend", react)
	}
	// imports 1/2, idioms 2/3, file patterns 1/2, dependencies 1/2, times
	// the 0.95 base confidence.
	want := (0.4*0.5 + 0.3*2/3 + 0.2*0.5 + 0.1*0.5) * 0.95
	if math.Abs(react.Confidence-want) > 0.001 {
		t.Errorf("confidence = %v, want %v", react.Confidence, want)
	}

	hasImport := false
	for _, ind := range react.Indicators {
		if ind == "import:react" {
			hasImport = true
		}
		if !strings.ContainsRune(ind, ':') {
			t.Errorf("indicator %q missing kind prefix", ind)
		}
	}
	if !hasImport {
		t.Errorf("indicators = %v, want import:react", react.Indicators)
	}
}

func TestFrameworkScanExpressBackend(t *testing.T) {
	text := "const express = require('express');\n" +
		"const app = express();\n" +
		"app.get('/health', (req, res) => res.json({ ok: true }));\n"

	matches := NewFrameworkMatcher(Default().Frameworks).Scan(text, "server.js", nil)

	found := false
	for _, m := range matches {
		if m.Name == "express" {
			found = true
			if m.Category != "backend" {
				t.Errorf("category = %q, want backend", m.Category)
			}
		}
	}
	if !found {
		t.Fatalf("no express match in %+v", matches)
	}
}

func TestFrameworkScanNoFileNameNoDeps(t *testing.T) {
	text := "import { useState, useEffect } from 'react';\n" +
		"const [v, setV] = useState(null);\n" +
		"useEffect(() => {}, [v]);\n"

	matches := NewFrameworkMatcher(Default().Frameworks).Scan(text, "", nil)

	// Import and idiom signals alone clear the threshold.
	if len(matches) == 0 || matches[0].Name != "react" {
		t.Fatalf("matches = %+v, want react first", matches)
	}
}

func TestFrameworkScanBelowThreshold(t *testing.T) {
	// One weak signal only: a dependency mention without imports or idioms.
	matches := NewFrameworkMatcher(Default().Frameworks).Scan(
		"const total = items.length;\n", "util.js", []string{"vue"})
	for _, m := range matches {
		if m.Name == "vue" {
			t.Errorf("dependency alone should not clear the threshold: %+v", m)
		}
	}
}

func TestFrameworkScanPrimaryIsHighestConfidence(t *testing.T) {
	text := "import React from 'react';\n" +
		"import { useState, useEffect } from 'react';\n" +
		"describe('App', () => {\n" +
		"  it('renders', () => { expect(useState).toBeDefined(); });\n" +
		"});\n"

	matches := NewFrameworkMatcher(Default().Frameworks).Scan(text, "App.test.jsx", []string{"react", "jest"})
	if len(matches) < 2 {
		t.Fatalf("expected react and jest, got %+v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Confidence > matches[i-1].Confidence {
			t.Errorf("matches not sorted by descending confidence: %+v", matches)
		}
	}
}
