// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package pipeline

import (
	"fmt"
	"sort"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/intel"
	"github.com/seawall-ai/seawall/services/gate/risk"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// maxTopFindings caps the executive summary's finding list.
const maxTopFindings = 5

// buildSummary assembles the executive summary.
//
// Description:
//
//	Top findings are all risk items sorted by descending severity (stable,
//	so category order breaks ties), capped at five. Critical issues list
//	every critical item plus a critical threat level. The recommendation
//	line is keyed off the overall risk level.
func buildSummary(sem *semantic.Context, rr *risk.Result, ir *intel.Result) Summary {
	type finding struct {
		severity gate.Severity
		text     string
	}

	var findings []finding
	var critical []string
	for _, cr := range rr.Categories {
		for _, item := range cr.Items {
			findings = append(findings, finding{
				severity: item.Severity,
				text:     fmt.Sprintf("[%s] %s", cr.Category, item.Description),
			})
			if item.Severity == gate.SeverityCritical {
				critical = append(critical, item.Description)
			}
		}
	}
	if ir.Threat.Level == gate.RiskCritical {
		critical = append(critical, "multiple high-severity threat idioms detected")
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].severity.Rank() > findings[j].severity.Rank()
	})
	top := make([]string, 0, maxTopFindings)
	for _, f := range findings {
		if len(top) == maxTopFindings {
			break
		}
		top = append(top, f.text)
	}
	if len(top) == 0 && sem.PrimaryFramework != nil {
		top = append(top, fmt.Sprintf("no risks; %s code, coupling %s",
			sem.PrimaryFramework.Name, sem.Coupling))
	}

	return Summary{
		TopFindings:    top,
		CriticalIssues: critical,
		Recommendation: rr.Overall.Recommendation,
	}
}

// buildMetrics derives the cross-cutting roll-ups.
func buildMetrics(sem *semantic.Context, rr *risk.Result) Metrics {
	maintainability := 100 - rr.Category(gate.CategoryTechnical).Score
	if maintainability < 0 {
		maintainability = 0
	}
	return Metrics{
		Complexity:      sem.Complexity.Cognitive,
		SecurityScore:   rr.Category(gate.CategorySecurity).Score,
		Maintainability: maintainability,
		BusinessImpact:  rr.Category(gate.CategoryBusiness).Score,
	}
}
