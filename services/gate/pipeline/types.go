// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package pipeline orchestrates the full analysis and the quick scan.
//
// # Description
//
// The comprehensive path sequences enrichment, risk analysis, and
// intelligence analysis, then derives cross-cutting metrics, an executive
// summary, and a consolidated recommendation list. The quick path applies a
// reduced subset of the same idiom checks for a fast allow/block signal;
// both paths share the dynamic-execution check so they never contradict on
// it.
//
// # Thread Safety
//
// An Analyzer is immutable after construction; any number of analyses may
// run concurrently.
package pipeline

import (
	"time"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/intel"
	"github.com/seawall-ai/seawall/services/gate/risk"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// Metadata describes one analysis run.
type Metadata struct {
	// Timestamp is when the analysis ran (UTC).
	Timestamp time.Time `json:"timestamp"`

	// AnalysisID uniquely identifies the run.
	AnalysisID string `json:"analysis_id"`

	// FileName is the analyzed file's name, if known.
	FileName string `json:"file_name,omitempty"`

	// CodeLength is the analyzed text's length in bytes.
	CodeLength int `json:"code_length"`

	// CatalogVersion is the rule-catalog version used.
	CatalogVersion string `json:"catalog_version"`
}

// Metrics are the cross-cutting roll-ups derived from all stages.
type Metrics struct {
	// Complexity is the unit-level cognitive-complexity roll-up.
	Complexity int `json:"complexity"`

	// SecurityScore is the security category's 0-100 score.
	SecurityScore int `json:"security_score"`

	// Maintainability is 100 minus the technical category's score,
	// floored at 0.
	Maintainability int `json:"maintainability"`

	// BusinessImpact is the business category's 0-100 score.
	BusinessImpact int `json:"business_impact"`
}

// Summary is the executive summary of one analysis.
type Summary struct {
	// TopFindings are the most notable findings, highest severity first.
	TopFindings []string `json:"top_findings"`

	// CriticalIssues are the critical findings, if any.
	CriticalIssues []string `json:"critical_issues"`

	// Recommendation is the one-line guidance keyed off the overall level.
	Recommendation string `json:"recommendation"`
}

// Recommendations is the deduplicated, priority-bucketed recommendation
// list.
type Recommendations struct {
	// Immediate actions must happen before the code is shared.
	Immediate []string `json:"immediate"`

	// ShortTerm should happen in the current iteration.
	ShortTerm []string `json:"short_term"`

	// LongTerm is backlog material.
	LongTerm []string `json:"long_term"`

	// Strategic concerns product or IP posture.
	Strategic []string `json:"strategic"`
}

// Result is the comprehensive analysis output.
type Result struct {
	// Semantic is the enriched context.
	Semantic *semantic.Context `json:"semantic_context"`

	// Risk is the four-axis risk assessment.
	Risk *risk.Result `json:"risk_analysis"`

	// Intelligence is the threat/behavior/intent/anomaly analysis.
	Intelligence *intel.Result `json:"intelligence_analysis"`

	// Metrics are the cross-cutting roll-ups.
	Metrics Metrics `json:"comprehensive_metrics"`

	// Summary is the executive summary.
	Summary Summary `json:"executive_summary"`

	// Recommendations is the consolidated recommendation list.
	Recommendations Recommendations `json:"consolidated_recommendations"`

	// Metadata describes the run.
	Metadata Metadata `json:"analysis_metadata"`
}

// QuickMetrics are the cheap size metrics of the quick scan.
type QuickMetrics struct {
	Lines      int `json:"lines"`
	Characters int `json:"characters"`
}

// QuickResult is the fast allow/block signal.
type QuickResult struct {
	// RiskLevel is the quick-scan level estimate.
	RiskLevel gate.RiskLevel `json:"risk_level"`

	// QuickRisks are the idioms the reduced checks found.
	QuickRisks []string `json:"quick_risks"`

	// QuickRecommendations are the matching one-line guidances.
	QuickRecommendations []string `json:"quick_recommendations"`

	// ShouldBlock is true when the unit must not be shared.
	ShouldBlock bool `json:"should_block"`

	// Metrics are the cheap size metrics.
	Metrics QuickMetrics `json:"metrics"`

	// ProcessingTime is the wall-clock duration of the scan.
	ProcessingTime time.Duration `json:"processing_time"`
}
