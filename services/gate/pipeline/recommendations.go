// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package pipeline

import (
	"fmt"
	"strings"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/intel"
	"github.com/seawall-ai/seawall/services/gate/risk"
)

// consolidateRecommendations gathers recommendation lines from every stage,
// deduplicates them, and buckets them by priority.
//
// Description:
//
//	Priority is assigned by keyword sniffing on the recommendation text:
//	secret/security/credential goes immediate, refactor/complexity/debt
//	goes short-term, business/proprietary/intellectual goes strategic,
//	everything else long-term. First occurrence wins on duplicates.
func consolidateRecommendations(rr *risk.Result, ir *intel.Result) Recommendations {
	var lines []string

	lines = append(lines, rr.Overall.Recommendation)
	for _, cr := range rr.Categories {
		for _, item := range cr.Items {
			lines = append(lines, itemRecommendation(item))
		}
	}
	if ir.Threat.Level.Rank() >= gate.RiskHigh.Rank() {
		lines = append(lines, "Investigate detected threat idioms before any code sharing.")
	}
	for _, s := range ir.Intent.SuspicionIndicators {
		lines = append(lines, "Review suspicion indicator: "+s)
	}

	var rec Recommendations
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		switch classifyPriority(line) {
		case "immediate":
			rec.Immediate = append(rec.Immediate, line)
		case "short_term":
			rec.ShortTerm = append(rec.ShortTerm, line)
		case "strategic":
			rec.Strategic = append(rec.Strategic, line)
		default:
			rec.LongTerm = append(rec.LongTerm, line)
		}
	}
	return rec
}

// itemRecommendation turns a risk item into an actionable line.
func itemRecommendation(item risk.Item) string {
	switch item.Type {
	case "hardcoded_secret":
		return "Remove the hardcoded secret and load it from the environment."
	case "dynamic_code_execution":
		return "Eliminate dynamic code execution; it is a security blocker."
	case "dangerous_module":
		return "Audit the dangerous module import before sharing this code."
	case "sensitive_data_exposure":
		return "Review security-sensitive functions that reach external services or shared state."
	case "proprietary_algorithm", "proprietary_logic":
		return "Consider redacting proprietary business logic before sharing."
	case "server_side_business_logic":
		return "Treat server-side business rules as intellectual property."
	case "high_complexity":
		return "Refactor high-complexity functions to reduce review risk."
	case "wide_parameter_list":
		return "Refactor wide parameter lists into option structs."
	case "large_class", "low_cohesion":
		return "Refactor oversized classes; complexity hides risk."
	case "technical_debt":
		return "Schedule a refactor pass; technical debt is above threshold."
	case "pii_variable", "sensitive_data_logging":
		return "Scrub personal data handling before sharing; compliance exposure."
	case "regulated_financial_logic":
		return "Financial logic is regulated territory; review before sharing."
	case "secrets_near_storage":
		return "Verify credentials are not persisted by the storage paths."
	case "unvalidated_financial_logic":
		return "Add input validation to financial calculation paths."
	default:
		return fmt.Sprintf("Review %s finding: %s", item.Type, item.Description)
	}
}

// classifyPriority sniffs the recommendation text for its bucket.
func classifyPriority(line string) string {
	lower := strings.ToLower(line)
	switch {
	case containsAnyToken(lower, "secret", "security", "credential", "blocker"):
		return "immediate"
	case containsAnyToken(lower, "refactor", "complexity", "debt"):
		return "short_term"
	case containsAnyToken(lower, "business", "proprietary", "intellectual"):
		return "strategic"
	default:
		return "long_term"
	}
}

func containsAnyToken(s string, tokens ...string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
