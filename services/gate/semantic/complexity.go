// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package semantic

import (
	"regexp"
	"strings"
)

// decisionTokenRe matches the decision points counted by both complexity
// metrics: branching keywords, ternaries, and short-circuit operators.
var decisionTokenRe = regexp.MustCompile(
	`\b(?:if|while|for|switch|case|catch)\b|\?|&&|\|\|`)

// Debt formula constants. These are calibration values carried over from
// the scoring heuristic, not validated complexity research.
const (
	debtBaseline          = 50
	debtSecretPenalty     = 10
	debtWideParamsPenalty = 5
	wideParamThreshold    = 5
)

// cyclomaticComplexity returns 1 plus the number of decision tokens in
// the body.
func cyclomaticComplexity(body string) int {
	return 1 + len(decisionTokenRe.FindAllString(body, -1))
}

// cognitiveComplexity accumulates decision tokens weighted by nesting.
//
// Description:
//
//	Walks the body line by line with a running brace counter. Each
//	line's decision-token count is multiplied by (nesting+1) before the
//	braces on that line adjust the counter, so a condition inside two
//	blocks costs three times a top-level one.
//
//	The formula is an opaque heuristic preserved for score
//	compatibility; same input, same score is its only contract.
func cognitiveComplexity(body string) int {
	total := 0
	nesting := 0
	for _, line := range strings.Split(body, "\n") {
		points := len(decisionTokenRe.FindAllString(line, -1))
		total += points * (nesting + 1)

		nesting += strings.Count(line, "{") - strings.Count(line, "}")
		if nesting < 0 {
			nesting = 0
		}
	}
	return total
}

// aggregateComplexity rolls per-element results into the unit-level
// cognitive score and technical-debt estimate.
//
// Description:
//
//	The cognitive roll-up combines the summed per-function cognitive
//	scores with element counts, pattern-hit counts, and relationship
//	counts. Debt is the excess above a fixed baseline plus a penalty per
//	detected secret and per over-parameterized function.
func aggregateComplexity(ctx *Context) Complexity {
	sumCognitive := 0
	wideParams := 0
	for _, f := range ctx.Functions {
		sumCognitive += f.Cognitive
		if len(f.Parameters) > wideParamThreshold {
			wideParams++
		}
	}

	elements := len(ctx.Functions) + len(ctx.Variables) + len(ctx.Classes) +
		len(ctx.Dependencies) + len(ctx.Exports)
	patternHits := len(ctx.Secrets) + len(ctx.Business) + len(ctx.Frameworks)
	relationships := len(ctx.Dependencies) + len(ctx.Exports)
	for _, c := range ctx.Classes {
		if c.Extends != "" {
			relationships++
		}
	}

	cognitive := sumCognitive + elements + 2*patternHits + relationships

	debt := cognitive - debtBaseline
	if debt < 0 {
		debt = 0
	}
	debt += debtSecretPenalty * len(ctx.Secrets)
	debt += debtWideParamsPenalty * wideParams

	return Complexity{Cognitive: cognitive, TechnicalDebt: debt}
}
