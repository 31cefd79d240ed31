// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package intel

import (
	"github.com/seawall-ai/seawall/services/gate/risk"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// Analyzer produces the intelligence sub-reports.
type Analyzer struct{}

// NewAnalyzer creates an intelligence analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze derives the four intelligence sub-reports.
//
// Description:
//
//	The threat scan reads the raw text; behavior, intent, and anomaly
//	derive from the enriched context and the risk result only. Every
//	sub-report degrades to empty rather than failing.
//
// Inputs:
//
//	text - The raw source text.
//	sem - The enriched context. Must not be nil.
//	rr - The risk assessment. Must not be nil.
//
// Outputs:
//
//	*Result - The intelligence analysis. Never nil.
func (a *Analyzer) Analyze(text string, sem *semantic.Context, rr *risk.Result) *Result {
	return &Result{
		Threat:   scanThreats(text),
		Behavior: profileBehavior(sem),
		Intent:   inferIntent(text, sem),
		Anomaly:  detectAnomalies(sem, rr),
	}
}
