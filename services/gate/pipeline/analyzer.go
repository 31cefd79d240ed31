// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/intel"
	"github.com/seawall-ai/seawall/services/gate/patterns"
	"github.com/seawall-ai/seawall/services/gate/risk"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// Analyzer is the comprehensive-analysis entry point.
type Analyzer struct {
	enricher *semantic.Enricher
	risk     *risk.Analyzer
	intel    *intel.Analyzer
}

// New creates an Analyzer over the given catalog.
func New(catalog *patterns.Catalog) *Analyzer {
	return &Analyzer{
		enricher: semantic.New(catalog),
		risk:     risk.NewAnalyzer(),
		intel:    intel.NewAnalyzer(),
	}
}

// Analyze runs the full pipeline over one source unit.
//
// Description:
//
//	Sequences enrichment, risk analysis, and intelligence analysis, then
//	derives metrics, the executive summary, and the consolidated
//	recommendations. The stages themselves never fail; the only errors are
//	boundary validation (empty text) and a context already canceled before
//	the pipeline starts. Stages are not interrupted mid-scan; callers
//	needing a deadline should wrap the call and discard the result.
//
// Inputs:
//
//	ctx - Checked once at entry, not during stages.
//	unit - The source unit. Text must be non-empty.
//
// Outputs:
//
//	*Result - The comprehensive result, nil on error.
//	error - ErrInvalidInput or ErrContextCanceled.
func (a *Analyzer) Analyze(ctx context.Context, unit gate.SourceUnit) (*Result, error) {
	if unit.Text == "" {
		return nil, gate.ErrInvalidInput
	}
	if ctx.Err() != nil {
		return nil, gate.ErrContextCanceled
	}

	start := time.Now()
	ctx, span := startAnalyzeSpan(ctx, "comprehensive", unit.FileName)
	defer span.End()

	sem := a.enricher.Analyze(unit.Text, unit.FileName, unit.Dependencies)
	rr := a.risk.Analyze(unit.Text, sem)
	ir := a.intel.Analyze(unit.Text, sem, rr)

	res := &Result{
		Semantic:        sem,
		Risk:            rr,
		Intelligence:    ir,
		Metrics:         buildMetrics(sem, rr),
		Summary:         buildSummary(sem, rr, ir),
		Recommendations: consolidateRecommendations(rr, ir),
		Metadata: Metadata{
			Timestamp:      time.Now().UTC(),
			AnalysisID:     uuid.NewString(),
			FileName:       unit.FileName,
			CodeLength:     len(unit.Text),
			CatalogVersion: patterns.CatalogVersion,
		},
	}

	findings := 0
	for _, cr := range rr.Categories {
		findings += len(cr.Items)
	}
	setAnalyzeSpanResult(span, string(rr.Overall.Level), rr.Overall.ShouldBlock, findings)
	recordAnalyzeMetrics(ctx, "comprehensive", time.Since(start), findings, rr.Overall.ShouldBlock)

	return res, nil
}
