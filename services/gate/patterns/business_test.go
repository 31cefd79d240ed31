// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import (
	"math"
	"testing"

	"github.com/seawall-ai/seawall/services/gate"
)

func TestBusinessScanPricing(t *testing.T) {
	text := "function calculatePrice(cost, margin) {\n" +
		"  return cost * (1 + margin);\n" +
		"}\n"

	matches := NewBusinessMatcher(Default().Business).Scan(text)

	var pricing *BusinessMatch
	for i := range matches {
		if matches[i].Domain == "pricing" {
			pricing = &matches[i]
			break
		}
	}
	if pricing == nil {
		t.Fatalf("no pricing match in %+v", matches)
	}
	if pricing.RiskLevel != gate.RiskMedium {
		t.Errorf("risk level = %q, want medium", pricing.RiskLevel)
	}
	// 0.4*(3/4 keywords) + 0.4*(1/3 functions) + 0.2*(1/2 phrases), times
	// the 0.9 base confidence.
	want := (0.4*0.75 + 0.4/3 + 0.2*0.5) * 0.9
	if math.Abs(pricing.Confidence-want) > 0.001 {
		t.Errorf("confidence = %v, want %v", pricing.Confidence, want)
	}
	if len(pricing.MatchedKeywords) != 3 {
		t.Errorf("matched keywords = %v", pricing.MatchedKeywords)
	}
}

func TestBusinessScanAuthentication(t *testing.T) {
	text := "async function login(user, password) {\n" +
		"  const session = await authenticate(user, password);\n" +
		"  if (!session) throw new Error('denied');\n" +
		"  return session.token;\n" +
		"}\n"

	matches := NewBusinessMatcher(Default().Business).Scan(text)

	found := false
	for _, m := range matches {
		if m.Domain == "authentication" {
			found = true
			if m.Severity != gate.SeverityHigh {
				t.Errorf("severity = %q, want high", m.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("no authentication match in %+v", matches)
	}
}

func TestBusinessScanNoSignal(t *testing.T) {
	text := "const greeting = 'hello';\nconsole.log(greeting);\n"

	matches := NewBusinessMatcher(Default().Business).Scan(text)
	if len(matches) != 0 {
		t.Errorf("plain code should not match any domain: %+v", matches)
	}
}

func TestBusinessScanSortedByConfidence(t *testing.T) {
	text := "function processPayment(amount) {\n" +
		"  const invoice = ledger.charge(amount * rate);\n" +
		"  return encrypt(invoice, derivekey(salt));\n" +
		"}\n"

	matches := NewBusinessMatcher(Default().Business).Scan(text)
	for i := 1; i < len(matches); i++ {
		if matches[i].Confidence > matches[i-1].Confidence {
			t.Errorf("matches not sorted by descending confidence: %+v", matches)
		}
	}
}

// An empty signal set contributes zero rather than skewing the weighted
// sum, so a rule with only keywords cannot exceed 0.4 of its base.
func TestBusinessEmptySignalFraction(t *testing.T) {
	if got := fraction(0, 0); got != 0 {
		t.Errorf("fraction(0, 0) = %v, want 0", got)
	}
	if got := fraction(2, 4); got != 0.5 {
		t.Errorf("fraction(2, 4) = %v, want 0.5", got)
	}
}

func TestBusinessRiskLevelBuckets(t *testing.T) {
	tests := []struct {
		score float64
		want  gate.RiskLevel
	}{
		{0.71, gate.RiskHigh},
		{0.7, gate.RiskMedium},
		{0.41, gate.RiskMedium},
		{0.4, gate.RiskLow},
		{0.0, gate.RiskLow},
	}
	for _, tt := range tests {
		if got := businessRiskLevel(tt.score); got != tt.want {
			t.Errorf("businessRiskLevel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
