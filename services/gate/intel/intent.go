// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package intel

import (
	"fmt"
	"regexp"

	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// Legitimacy penalty per hidden-functionality indicator.
const hiddenIndicatorPenalty = 0.1

// secretVariableSuspicionThreshold: more credential-shaped variables than
// this raises a suspicion indicator.
const secretVariableSuspicionThreshold = 2

// hiddenFunctionalityRe matches obfuscation markers that suggest the code
// hides what it does.
var hiddenFunctionalityRe = regexp.MustCompile(
	`(?i)fromCharCode|atob\s*\(|unescape\s*\(|\\x[0-9a-f]{2}\\x[0-9a-f]{2}`)

var dynamicExecSuspicionRe = regexp.MustCompile(
	`\beval\s*\(|new\s+Function\s*\(`)

// inferIntent estimates the unit's purpose and legitimacy.
//
// Description:
//
//	Primary purpose is the majority semantic role among functions.
//	Legitimacy averages the business-alignment ratio (business functions
//	over all) with the technical-alignment ratio (infrastructure and
//	utility functions over all), then subtracts a fixed penalty per
//	obfuscation marker. Suspicion indicators fire on dynamic-execution
//	idioms and on an excess of credential-shaped variables.
func inferIntent(text string, sem *semantic.Context) IntentReport {
	purpose := majorityRole(sem.Functions)

	legitimacy := 0.5
	if n := len(sem.Functions); n > 0 {
		business := 0
		technical := 0
		for _, f := range sem.Functions {
			switch f.Role {
			case semantic.RoleBusiness:
				business++
			case semantic.RoleInfrastructure, semantic.RoleUtility:
				technical++
			}
		}
		legitimacy = (float64(business)/float64(n) + float64(technical)/float64(n)) / 2
	}

	hidden := len(hiddenFunctionalityRe.FindAllString(text, -1))
	legitimacy -= hiddenIndicatorPenalty * float64(hidden)
	if legitimacy < 0 {
		legitimacy = 0
	}

	var suspicion []string
	if dynamicExecSuspicionRe.MatchString(text) {
		suspicion = append(suspicion, "dynamic code execution idiom present")
	}
	secretVars := 0
	for _, v := range sem.Variables {
		if v.IsPotentialSecret {
			secretVars++
		}
	}
	if secretVars > secretVariableSuspicionThreshold {
		suspicion = append(suspicion, fmt.Sprintf("%d credential-shaped variables", secretVars))
	}
	if hidden > 0 {
		suspicion = append(suspicion, fmt.Sprintf("%d obfuscation marker(s)", hidden))
	}

	return IntentReport{
		PrimaryPurpose:      purpose,
		Legitimacy:          legitimacy,
		SuspicionIndicators: suspicion,
	}
}

// majorityRole returns the most frequent role, unknown for no functions.
// Ties break toward the role encountered first in declaration order.
func majorityRole(fns []semantic.Function) semantic.Role {
	if len(fns) == 0 {
		return semantic.RoleUnknown
	}
	counts := make(map[semantic.Role]int)
	best := fns[0].Role
	for _, f := range fns {
		counts[f.Role]++
		if counts[f.Role] > counts[best] {
			best = f.Role
		}
	}
	return best
}
