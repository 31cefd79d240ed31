// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package risk

import (
	"golang.org/x/sync/errgroup"

	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// Analyzer scores an enriched context along the four risk axes.
type Analyzer struct{}

// NewAnalyzer creates a risk analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze produces the full risk assessment for one source unit.
//
// Description:
//
//	The four category evaluations are independent and run concurrently;
//	each reads the context and never mutates it. Results are assembled in
//	canonical category order regardless of completion order, then folded
//	into the overall assessment.
//
// Inputs:
//
//	text - The raw source text (dynamic-execution idioms are matched on
//	       the text, not on extracted elements).
//	sem - The enriched context. Must not be nil.
//
// Outputs:
//
//	*Result - The assessment. Never nil.
func (a *Analyzer) Analyze(text string, sem *semantic.Context) *Result {
	var security, business, technical, compliance CategoryResult

	var g errgroup.Group
	g.Go(func() error {
		security = securityRisks(text, sem)
		return nil
	})
	g.Go(func() error {
		business = businessRisks(sem)
		return nil
	})
	g.Go(func() error {
		technical = technicalRisks(sem)
		return nil
	})
	g.Go(func() error {
		compliance = complianceRisks(sem)
		return nil
	})
	_ = g.Wait()

	categories := []CategoryResult{security, business, technical, compliance}

	return &Result{
		Categories: categories,
		Overall:    overall(categories, sem.RiskFactors),
	}
}
