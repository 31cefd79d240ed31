// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package risk scores the enriched context along four independent axes.
//
// # Description
//
// The analyzer evaluates security, business, technical, and compliance risk
// from the semantic context and the raw text. Each category produces a list
// of risk items and a 0-100 score; the overall assessment folds the four
// categories into one level, score, confidence, and sharing recommendation.
// All scoring formulas are fixed tables; same input, same result.
//
// # Thread Safety
//
// The Analyzer is immutable after construction and safe for concurrent use.
package risk

import (
	"github.com/seawall-ai/seawall/services/gate"
)

// Item is one concrete risk finding inside a category.
type Item struct {
	// Type is the finding kind (hardcoded_secret, proprietary_algorithm...).
	Type string `json:"type"`

	// Severity is the finding's severity.
	Severity gate.Severity `json:"severity"`

	// Likelihood estimates how likely the risk is to materialize.
	Likelihood gate.Likelihood `json:"likelihood"`

	// Description explains the finding in one sentence.
	Description string `json:"description"`

	// Location points at the finding (line or element name), if known.
	Location string `json:"location,omitempty"`

	// Impact states what happens if the risk materializes.
	Impact string `json:"impact"`
}

// CategoryResult is the assessment of one risk axis.
type CategoryResult struct {
	// Category is the axis this result covers.
	Category gate.RiskCategory `json:"category"`

	// Level is the aggregate level of the category.
	Level gate.RiskLevel `json:"level"`

	// Score is the 0-100 category score.
	Score int `json:"score"`

	// Items are the concrete findings, in detection order.
	Items []Item `json:"items"`

	// Summary is a one-line category summary.
	Summary string `json:"summary"`
}

// Overall folds the four categories into one assessment.
type Overall struct {
	// Level is the unit-level risk level.
	Level gate.RiskLevel `json:"level"`

	// Score is the 0-100 average of the category scores.
	Score int `json:"score"`

	// Confidence is the 0-100 confidence in the assessment.
	Confidence int `json:"confidence"`

	// Recommendation is the sharing guidance for the unit.
	Recommendation string `json:"recommendation"`

	// ShouldBlock is true when the unit must not be shared.
	ShouldBlock bool `json:"should_block"`

	// RequiresReview is true when a human should look before sharing.
	RequiresReview bool `json:"requires_review"`

	// RiskFactors carries the context's flat finding list forward.
	RiskFactors []string `json:"risk_factors"`
}

// Result is the full risk assessment of one source unit.
type Result struct {
	// Categories holds the four axis results in canonical order:
	// security, business, technical, compliance.
	Categories []CategoryResult `json:"categories"`

	// Overall is the folded assessment.
	Overall Overall `json:"overall"`
}

// Category returns the result for one axis, or an empty low result when the
// axis is missing.
func (r *Result) Category(c gate.RiskCategory) CategoryResult {
	for _, cr := range r.Categories {
		if cr.Category == c {
			return cr
		}
	}
	return CategoryResult{Category: c, Level: gate.RiskLow}
}
