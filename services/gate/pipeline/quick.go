// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/risk"
)

// quickModuleMentions are dangerous-module names checked as raw mentions
// in the quick path.
var quickModuleMentions = []string{"child_process", "vm2", "shelljs"}

// QuickScan performs the reduced idiom checks for a fast allow/block
// signal.
//
// Description:
//
//	Runs the secret catalog, the shared dynamic-execution check, and a
//	dangerous-module mention scan without enrichment or category scoring.
//	The secret catalog and the dynamic-execution check are the same ones
//	the full pipeline uses, so quick and comprehensive verdicts agree on
//	those idioms: both block on dynamic execution and on any
//	critical-severity secret.
//
// Inputs:
//
//	ctx - Checked once at entry.
//	unit - The source unit. Text must be non-empty.
//
// Outputs:
//
//	*QuickResult - The fast signal, nil on error.
//	error - ErrInvalidInput or ErrContextCanceled.
func (a *Analyzer) QuickScan(ctx context.Context, unit gate.SourceUnit) (*QuickResult, error) {
	if unit.Text == "" {
		return nil, gate.ErrInvalidInput
	}
	if ctx.Err() != nil {
		return nil, gate.ErrContextCanceled
	}

	start := time.Now()
	ctx, span := startAnalyzeSpan(ctx, "quick", unit.FileName)
	defer span.End()

	var risks, recs []string
	level := gate.RiskLow
	block := false

	if secrets := a.enricher.ScanSecrets(unit.Text, unit.FileName); len(secrets) > 0 {
		for _, s := range secrets {
			risks = append(risks, "secret-like token: "+s.Type+" ("+s.Masked+")")
			level = gate.MaxRiskLevel(level, gate.LevelForSeverity(s.Severity))
			// A critical-severity secret blocks on the full path too, so the
			// fast verdict must not be softer.
			if s.Severity == gate.SeverityCritical {
				block = true
			}
		}
		recs = append(recs, "Remove hardcoded secrets before sharing.")
	}

	if risk.ContainsDynamicExecution(unit.Text) {
		risks = append(risks, "dynamic code execution idiom")
		recs = append(recs, "Eliminate dynamic code execution; it is a security blocker.")
		level = gate.RiskCritical
		block = true
	}

	for _, mod := range quickModuleMentions {
		if !strings.Contains(unit.Text, mod) {
			continue
		}
		if sev, ok := risk.DangerousModuleSeverity(mod); ok {
			risks = append(risks, "dangerous module mention: "+mod)
			level = gate.MaxRiskLevel(level, gate.LevelForSeverity(sev))
		}
	}
	if len(risks) > 0 && len(recs) == 0 {
		recs = append(recs, "Review the flagged idioms before sharing.")
	}

	res := &QuickResult{
		RiskLevel:            level,
		QuickRisks:           risks,
		QuickRecommendations: recs,
		ShouldBlock:          block,
		Metrics: QuickMetrics{
			Lines:      1 + strings.Count(unit.Text, "\n"),
			Characters: len(unit.Text),
		},
		ProcessingTime: time.Since(start),
	}

	setAnalyzeSpanResult(span, string(level), block, len(risks))
	recordAnalyzeMetrics(ctx, "quick", res.ProcessingTime, len(risks), block)

	return res, nil
}
