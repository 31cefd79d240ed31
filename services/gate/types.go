// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package gate defines the shared types of the Seawall analysis pipeline.
//
// # Description
//
// The gate package holds the enumerations (severity, likelihood, risk level,
// risk category) and the SourceUnit input type shared by every pipeline
// stage. It carries no behavior beyond ordering and weighting of the enums,
// so downstream packages can depend on it without import cycles.
//
// # Thread Safety
//
// All types in this package are immutable value types, safe for concurrent
// use.
package gate

import (
	"errors"
	"strings"
)

// --- Input ---

// SourceUnit is one unit of source text submitted for analysis.
//
// Description:
//
//	SourceUnit is the immutable input to the pipeline: the raw text of a
//	single file, an optional file name used for context heuristics (test
//	file detection, framework filename conventions), and an optional list
//	of declared dependencies (package manifest entries).
type SourceUnit struct {
	// Text is the raw source text. Never mutated by the pipeline.
	Text string

	// FileName is the optional name of the file the text came from.
	FileName string

	// Dependencies are the declared dependency names, if known.
	Dependencies []string
}

// --- Errors ---

// ErrInvalidInput indicates a nil or empty boundary argument.
//
// The pipeline itself never fails on malformed source text (it degrades to
// fewer findings); this error only guards entry-point argument validation.
var ErrInvalidInput = errors.New("gate: invalid input")

// ErrContextCanceled indicates the caller's context was canceled before the
// pipeline started. Stages do not observe cancellation mid-scan.
var ErrContextCanceled = errors.New("gate: context canceled")

// --- Severity ---

// Severity classifies how serious a finding is.
type Severity string

const (
	// SeverityLow is informational or minor.
	SeverityLow Severity = "low"

	// SeverityMedium warrants attention but not blocking.
	SeverityMedium Severity = "medium"

	// SeverityHigh warrants review before sharing.
	SeverityHigh Severity = "high"

	// SeverityCritical blocks sharing outright.
	SeverityCritical Severity = "critical"
)

// Rank returns the ordering of the severity: low < medium < high < critical.
//
// Unknown severities rank below low so they never escalate a result.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Weight returns the scoring weight used by the risk analyzer.
//
// The table is fixed: low=1, medium=3, high=7, critical=10.
func (s Severity) Weight() float64 {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 3
	case SeverityHigh:
		return 7
	case SeverityCritical:
		return 10
	default:
		return 0
	}
}

// MaxSeverity returns the higher-ranked of a and b.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// --- Likelihood ---

// Likelihood estimates how likely a risk is to materialize.
type Likelihood string

const (
	// LikelihoodLow means the risk is unlikely to materialize.
	LikelihoodLow Likelihood = "low"

	// LikelihoodMedium means the risk may plausibly materialize.
	LikelihoodMedium Likelihood = "medium"

	// LikelihoodHigh means the risk is expected to materialize.
	LikelihoodHigh Likelihood = "high"
)

// Weight returns the scoring weight used by the risk analyzer.
//
// The table is fixed: low=0.3, medium=0.6, high=1.0.
func (l Likelihood) Weight() float64 {
	switch l {
	case LikelihoodLow:
		return 0.3
	case LikelihoodMedium:
		return 0.6
	case LikelihoodHigh:
		return 1.0
	default:
		return 0
	}
}

// --- Risk level ---

// RiskLevel is the aggregate level of a risk category or the whole unit.
//
// It uses the same ladder as Severity; the distinct type keeps aggregate
// levels from being confused with per-item severities.
type RiskLevel string

const (
	// RiskLow means no significant findings.
	RiskLow RiskLevel = "low"

	// RiskMedium means findings worth noting.
	RiskMedium RiskLevel = "medium"

	// RiskHigh means review is required before sharing.
	RiskHigh RiskLevel = "high"

	// RiskCritical means the unit should be blocked.
	RiskCritical RiskLevel = "critical"
)

// Rank returns the ordering of the level: low < medium < high < critical.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	default:
		return 0
	}
}

// MaxRiskLevel returns the higher-ranked of a and b.
func MaxRiskLevel(a, b RiskLevel) RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// LevelForSeverity maps an item severity to the equivalent aggregate level.
func LevelForSeverity(s Severity) RiskLevel {
	switch s {
	case SeverityCritical:
		return RiskCritical
	case SeverityHigh:
		return RiskHigh
	case SeverityMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// --- Risk category ---

// RiskCategory is one independent axis of the risk model.
type RiskCategory string

const (
	// CategorySecurity covers secrets, dangerous modules, dynamic execution.
	CategorySecurity RiskCategory = "security"

	// CategoryBusiness covers proprietary logic and IP exposure.
	CategoryBusiness RiskCategory = "business"

	// CategoryTechnical covers complexity and maintainability hazards.
	CategoryTechnical RiskCategory = "technical"

	// CategoryCompliance covers PII handling and regulated data.
	CategoryCompliance RiskCategory = "compliance"
)

// Categories lists all risk categories in canonical order.
func Categories() []RiskCategory {
	return []RiskCategory{
		CategorySecurity,
		CategoryBusiness,
		CategoryTechnical,
		CategoryCompliance,
	}
}

// --- File heuristics ---

// IsTestFile reports whether a file name indicates test, mock, or fixture
// code.
//
// Description:
//
//	Checks common test file naming conventions across languages. Matches
//	anywhere in the lowercased path so "src/__tests__/auth.js" and
//	"auth.spec.ts" both qualify. Used to dampen secret-match confidence.
//
// Inputs:
//
//	fileName - The file name or path to check. Empty returns false.
//
// Outputs:
//
//	bool - True if this appears to be a test or mock file.
func IsTestFile(fileName string) bool {
	if fileName == "" {
		return false
	}
	name := strings.ToLower(fileName)

	markers := []string{
		"test", "spec", "mock", "fixture", "__tests__", "testdata",
	}
	for _, m := range markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
