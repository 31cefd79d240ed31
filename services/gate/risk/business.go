// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package risk

import (
	"fmt"
	"strings"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// proprietaryComplexityThreshold is the cyclomatic complexity above which a
// sensitive business function counts as a proprietary algorithm at high
// severity.
const proprietaryComplexityThreshold = 15

var financialDomains = map[string]bool{
	"financial": true,
	"pricing":   true,
}

var validationNameTokens = []string{"validate", "verify", "check", "sanitize", "assert"}

// businessRisks evaluates the intellectual-property axis.
//
// Description:
//
//	Flags medium-or-higher business-logic matches, grades business-role
//	functions as proprietary algorithms (high above the complexity
//	threshold, medium below), flags financial functions without any
//	validation vocabulary in the body, and notes when a backend framework
//	co-occurs with business logic (server-side IP).
func businessRisks(sem *semantic.Context) CategoryResult {
	var items []Item

	for _, b := range sem.Business {
		if b.RiskLevel.Rank() < gate.RiskMedium.Rank() {
			continue
		}
		items = append(items, Item{
			Type:        "proprietary_logic",
			Severity:    b.Severity,
			Likelihood:  likelihoodForConfidence(b.Confidence),
			Description: fmt.Sprintf("%s logic detected (keywords: %s)", b.Domain, strings.Join(b.MatchedKeywords, ", ")),
			Impact:      "reveals proprietary business rules",
		})
	}

	for _, f := range sem.Functions {
		if f.Role != semantic.RoleBusiness {
			continue
		}
		sev := gate.SeverityMedium
		if f.Cyclomatic > proprietaryComplexityThreshold {
			sev = gate.SeverityHigh
		}
		items = append(items, Item{
			Type:        "proprietary_algorithm",
			Severity:    sev,
			Likelihood:  gate.LikelihoodMedium,
			Description: fmt.Sprintf("business function %q implements domain logic (cyclomatic %d)", f.Name, f.Cyclomatic),
			Location:    f.Name,
			Impact:      "algorithm details could be reconstructed from shared code",
		})

		if isFinancialFunction(f, sem) && !containsValidationVocabulary(f.Body) {
			items = append(items, Item{
				Type:        "unvalidated_financial_logic",
				Severity:    gate.SeverityMedium,
				Likelihood:  gate.LikelihoodMedium,
				Description: fmt.Sprintf("financial function %q shows no input validation", f.Name),
				Location:    f.Name,
				Impact:      "sharing exposes an unguarded money path",
			})
		}
	}

	if sem.PrimaryFramework != nil && sem.PrimaryFramework.Category == "backend" && len(sem.Business) > 0 {
		items = append(items, Item{
			Type:        "server_side_business_logic",
			Severity:    gate.SeverityMedium,
			Likelihood:  gate.LikelihoodMedium,
			Description: fmt.Sprintf("business logic in %s server code", sem.PrimaryFramework.Name),
			Impact:      "server-side rules are usually the proprietary core",
		})
	}

	return finishCategory(gate.CategoryBusiness, items)
}

// isFinancialFunction reports whether the function belongs to a financial
// or pricing domain match.
func isFinancialFunction(f semantic.Function, sem *semantic.Context) bool {
	lower := strings.ToLower(f.Name)
	for _, b := range sem.Business {
		if !financialDomains[b.Domain] {
			continue
		}
		for _, fn := range b.MatchedFunctions {
			if strings.Contains(lower, strings.ToLower(fn)) {
				return true
			}
		}
	}
	return false
}

func containsValidationVocabulary(body string) bool {
	lower := strings.ToLower(body)
	for _, tok := range validationNameTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
