// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import (
	"sort"
	"strings"

	"github.com/seawall-ai/seawall/services/gate"
)

// BusinessMatcher scans text against the business-logic catalog.
//
// Thread Safety:
//
//	BusinessMatcher is immutable after construction and safe for
//	concurrent use.
type BusinessMatcher struct {
	rules []*BusinessRule
}

// NewBusinessMatcher creates a matcher over the given rules.
func NewBusinessMatcher(rules []*BusinessRule) *BusinessMatcher {
	return &BusinessMatcher{rules: rules}
}

// Scan finds business-logic domains represented in the text.
//
// Description:
//
//	For every domain rule, computes three overlap fractions against the
//	lowercased text: keyword hits / keywords, function-name hits /
//	function names, and phrase-signature hits / phrases. The combined
//	score is 0.4*keywords + 0.4*functions + 0.2*phrases, multiplied by
//	the domain's base confidence. Scores above 0.3 are accepted and
//	bucketed: >0.7 high, >0.4 medium, else low.
//
// Inputs:
//
//	text - The raw source text.
//
// Outputs:
//
//	[]BusinessMatch - Accepted matches sorted by descending confidence,
//	                  domain name as tiebreak.
func (m *BusinessMatcher) Scan(text string) []BusinessMatch {
	lower := strings.ToLower(text)

	var out []BusinessMatch
	for _, rule := range m.rules {
		matchedKw := tokenHits(lower, rule.Keywords)
		matchedFn := functionHits(lower, rule.FunctionNames)
		phraseHits := 0
		for _, re := range rule.compiledPhrases {
			if re.MatchString(text) {
				phraseHits++
			}
		}

		score := 0.4*fraction(len(matchedKw), len(rule.Keywords)) +
			0.4*fraction(len(matchedFn), len(rule.FunctionNames)) +
			0.2*fraction(phraseHits, len(rule.Phrases))
		score *= rule.BaseConfidence
		if score <= acceptThreshold {
			continue
		}

		out = append(out, BusinessMatch{
			RuleID:           rule.ID,
			Domain:           rule.Domain,
			Confidence:       clamp01(score),
			RiskLevel:        businessRiskLevel(score),
			Severity:         rule.Severity,
			MatchedKeywords:  matchedKw,
			MatchedFunctions: matchedFn,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}

// businessRiskLevel buckets a combined score.
func businessRiskLevel(score float64) gate.RiskLevel {
	switch {
	case score > 0.7:
		return gate.RiskHigh
	case score > 0.4:
		return gate.RiskMedium
	default:
		return gate.RiskLow
	}
}

// fraction returns hits/total, or 0 for an empty signal set so an unused
// signal never inflates the score.
func fraction(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// tokenHits returns the tokens present in the lowercased text.
func tokenHits(lower string, tokens []string) []string {
	var hits []string
	for _, tok := range tokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			hits = append(hits, tok)
		}
	}
	return hits
}

// functionHits returns the function-name tokens that appear as call or
// declaration shapes in the text.
func functionHits(lower string, names []string) []string {
	var hits []string
	for _, name := range names {
		if strings.Contains(lower, strings.ToLower(name)) {
			hits = append(hits, name)
		}
	}
	return hits
}

// defaultBusinessCatalog returns the built-in business-logic domains.
func defaultBusinessCatalog() []*BusinessRule {
	return []*BusinessRule{
		{
			ID:     "SW-BIZ-001",
			Domain: "pricing",
			Keywords: []string{
				"price", "cost", "margin", "discount",
			},
			FunctionNames: []string{
				"calculateprice", "getprice", "applydiscount",
			},
			Phrases: []string{
				`(?i)cost\s*\*\s*\(?\s*1\s*[+-]`,
				`(?i)price\s*[*+]\s*`,
			},
			Severity:       gate.SeverityHigh,
			BaseConfidence: 0.9,
		},
		{
			ID:     "SW-BIZ-002",
			Domain: "authentication",
			Keywords: []string{
				"auth", "login", "session", "credential", "password",
				"token", "permission", "role",
			},
			FunctionNames: []string{
				"authenticate", "login", "logout", "verifytoken",
				"checkpermission", "authorize",
			},
			Phrases: []string{
				`(?i)if\s*\(\s*!?\s*(?:user|session|token)`,
				`(?i)bearer\s`,
			},
			Severity:       gate.SeverityHigh,
			BaseConfidence: 0.85,
		},
		{
			ID:     "SW-BIZ-003",
			Domain: "financial",
			Keywords: []string{
				"payment", "invoice", "billing", "transaction", "balance",
				"currency", "refund", "ledger",
			},
			FunctionNames: []string{
				"processpayment", "charge", "refund", "transfer",
				"calculateinterest", "reconcile",
			},
			Phrases: []string{
				`(?i)amount\s*[*+-]`,
				`(?i)balance\s*[+-]=`,
			},
			Severity:       gate.SeverityHigh,
			BaseConfidence: 0.9,
		},
		{
			ID:     "SW-BIZ-004",
			Domain: "algorithmic",
			Keywords: []string{
				"algorithm", "optimize", "rank", "score", "weight",
				"heuristic", "model", "predict",
			},
			FunctionNames: []string{
				"rank", "score", "optimize", "predict", "classify",
				"recommend",
			},
			Phrases: []string{
				`(?i)for\s*\([^)]*\)\s*\{[^}]*weight`,
				`(?i)sort\s*\(\s*\(?[a-z]`,
			},
			Severity:       gate.SeverityMedium,
			BaseConfidence: 0.75,
		},
		{
			ID:     "SW-BIZ-005",
			Domain: "cryptographic",
			Keywords: []string{
				"encrypt", "decrypt", "cipher", "hash", "salt", "hmac",
				"digest", "nonce",
			},
			FunctionNames: []string{
				"encrypt", "decrypt", "hashpassword", "sign", "derivekey",
			},
			Phrases: []string{
				`(?i)createcipher|createhash|createhmac`,
				`(?i)crypto\.`,
			},
			Severity:       gate.SeverityHigh,
			BaseConfidence: 0.85,
		},
		{
			ID:     "SW-BIZ-006",
			Domain: "validation",
			Keywords: []string{
				"validate", "sanitize", "schema", "constraint", "verify",
				"check", "rule",
			},
			FunctionNames: []string{
				"validate", "isvalid", "sanitize", "checkinput", "assertvalid",
			},
			Phrases: []string{
				`(?i)throw\s+new\s+(?:validation|invalid)`,
				`(?i)\.test\s*\(`,
			},
			Severity:       gate.SeverityMedium,
			BaseConfidence: 0.7,
		},
	}
}
