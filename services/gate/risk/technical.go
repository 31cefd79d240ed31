// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package risk

import (
	"fmt"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// Technical thresholds. Fixed calibration values.
const (
	cognitiveMediumThreshold = 25
	cognitiveHighThreshold   = 40
	paramCountThreshold      = 5
	largeClassMemberCount    = 20
	lowCohesionMethodCount   = 15
	lowCohesionPropertyCount = 3
	debtMediumThreshold      = 20
	debtHighThreshold        = 50
)

// technicalRisks evaluates the maintainability axis.
//
// Description:
//
//	Flags functions over the cognitive-complexity thresholds and over the
//	parameter-count threshold, classes that are too large or low-cohesion,
//	and unit-level technical debt over its thresholds.
func technicalRisks(sem *semantic.Context) CategoryResult {
	var items []Item

	for _, f := range sem.Functions {
		if f.Cognitive > cognitiveMediumThreshold {
			sev := gate.SeverityMedium
			if f.Cognitive > cognitiveHighThreshold {
				sev = gate.SeverityHigh
			}
			items = append(items, Item{
				Type:        "high_complexity",
				Severity:    sev,
				Likelihood:  gate.LikelihoodHigh,
				Description: fmt.Sprintf("function %q has cognitive complexity %d", f.Name, f.Cognitive),
				Location:    f.Name,
				Impact:      "hard to review; changes here are error-prone",
			})
		}
		if len(f.Parameters) > paramCountThreshold {
			items = append(items, Item{
				Type:        "wide_parameter_list",
				Severity:    gate.SeverityLow,
				Likelihood:  gate.LikelihoodMedium,
				Description: fmt.Sprintf("function %q takes %d parameters", f.Name, len(f.Parameters)),
				Location:    f.Name,
				Impact:      "call sites are fragile and hard to reason about",
			})
		}
	}

	for _, c := range sem.Classes {
		members := len(c.Methods) + len(c.Properties)
		if members > largeClassMemberCount {
			items = append(items, Item{
				Type:        "large_class",
				Severity:    gate.SeverityMedium,
				Likelihood:  gate.LikelihoodMedium,
				Description: fmt.Sprintf("class %q has %d members", c.Name, members),
				Location:    c.Name,
				Impact:      "too many responsibilities in one type",
			})
		}
		if len(c.Methods) > lowCohesionMethodCount && len(c.Properties) < lowCohesionPropertyCount {
			items = append(items, Item{
				Type:        "low_cohesion",
				Severity:    gate.SeverityMedium,
				Likelihood:  gate.LikelihoodMedium,
				Description: fmt.Sprintf("class %q has %d methods over %d properties", c.Name, len(c.Methods), len(c.Properties)),
				Location:    c.Name,
				Impact:      "methods likely do not belong together",
			})
		}
	}

	if sem.Complexity.TechnicalDebt > debtMediumThreshold {
		sev := gate.SeverityMedium
		if sem.Complexity.TechnicalDebt > debtHighThreshold {
			sev = gate.SeverityHigh
		}
		items = append(items, Item{
			Type:        "technical_debt",
			Severity:    sev,
			Likelihood:  gate.LikelihoodMedium,
			Description: fmt.Sprintf("technical debt estimate %d", sem.Complexity.TechnicalDebt),
			Impact:      "accumulated shortcuts raise the cost of every change",
		})
	}

	return finishCategory(gate.CategoryTechnical, items)
}
