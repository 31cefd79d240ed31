// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package risk

import (
	"fmt"
	"math"

	"github.com/seawall-ai/seawall/services/gate"
)

// categoryScore converts a category's items into a 0-100 score.
//
// Description:
//
//	Each item contributes severityWeight * likelihoodWeight (tables on the
//	gate enums). The score is ten times the mean contribution, rounded,
//	capped at 100. No items means score 0.
func categoryScore(items []Item) int {
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, it := range items {
		sum += it.Severity.Weight() * it.Likelihood.Weight()
	}
	score := int(math.Round(10 * sum / float64(len(items))))
	if score > 100 {
		score = 100
	}
	return score
}

// categoryLevel is the level of the highest-severity item, low when empty.
func categoryLevel(items []Item) gate.RiskLevel {
	level := gate.RiskLow
	for _, it := range items {
		level = gate.MaxRiskLevel(level, gate.LevelForSeverity(it.Severity))
	}
	return level
}

// finishCategory assembles the category result from its items.
func finishCategory(category gate.RiskCategory, items []Item) CategoryResult {
	return CategoryResult{
		Category: category,
		Level:    categoryLevel(items),
		Score:    categoryScore(items),
		Items:    items,
		Summary:  categorySummary(category, items),
	}
}

func categorySummary(category gate.RiskCategory, items []Item) string {
	if len(items) == 0 {
		return fmt.Sprintf("no %s risks detected", category)
	}
	return fmt.Sprintf("%d %s risk(s), highest level %s",
		len(items), category, categoryLevel(items))
}

// overall folds the four category results into the unit-level assessment.
//
// Description:
//
//	Level escalation ladder, first rule that fires wins:
//	  - any category critical, or any critical item: critical
//	  - any category high, or more than 3 high items: high
//	  - any category medium, or more than 10 total items: medium
//	  - otherwise: low
//
//	ShouldBlock fires on critical; RequiresReview on high or more than 2
//	high items. Confidence blends evidence volume (total items, saturating
//	at 10) with score magnitude; a zero average score pins it at 50.
func overall(categories []CategoryResult, riskFactors []string) Overall {
	totalItems := 0
	highItems := 0
	criticalItems := 0
	maxLevel := gate.RiskLow
	scoreSum := 0
	for _, cr := range categories {
		totalItems += len(cr.Items)
		scoreSum += cr.Score
		maxLevel = gate.MaxRiskLevel(maxLevel, cr.Level)
		for _, it := range cr.Items {
			switch it.Severity {
			case gate.SeverityHigh:
				highItems++
			case gate.SeverityCritical:
				criticalItems++
			}
		}
	}

	level := gate.RiskLow
	switch {
	case maxLevel == gate.RiskCritical || criticalItems > 0:
		level = gate.RiskCritical
	case maxLevel == gate.RiskHigh || highItems > 3:
		level = gate.RiskHigh
	case maxLevel == gate.RiskMedium || totalItems > 10:
		level = gate.RiskMedium
	}

	avgScore := 0.0
	if len(categories) > 0 {
		avgScore = float64(scoreSum) / float64(len(categories))
	}

	return Overall{
		Level:          level,
		Score:          int(math.Round(avgScore)),
		Confidence:     confidence(totalItems, avgScore),
		Recommendation: recommendation(level),
		ShouldBlock:    level == gate.RiskCritical || criticalItems > 0,
		RequiresReview: level == gate.RiskHigh || highItems > 2,
		RiskFactors:    riskFactors,
	}
}

// confidence blends evidence volume and score magnitude into 0-100.
func confidence(totalItems int, avgScore float64) int {
	if avgScore == 0 {
		return 50
	}
	volume := math.Min(float64(totalItems)/10, 1)
	magnitude := math.Min(avgScore/100, 1)
	return int(math.Round(100 * (0.4*volume + 0.6*magnitude)))
}

// recommendation maps the overall level to sharing guidance.
func recommendation(level gate.RiskLevel) string {
	switch level {
	case gate.RiskCritical:
		return "Block sharing: remove critical findings before this code leaves the machine."
	case gate.RiskHigh:
		return "Review required: sanitize the flagged findings before sharing."
	case gate.RiskMedium:
		return "Share with caution: check the flagged findings first."
	default:
		return "Safe to share: no significant risks detected."
	}
}
