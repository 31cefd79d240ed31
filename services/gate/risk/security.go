// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package risk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// dangerousModules are imports that grant process, network, or dynamic
// execution power worth flagging before code is shared.
var dangerousModules = map[string]gate.Severity{
	"child_process": gate.SeverityHigh,
	"vm":            gate.SeverityHigh,
	"vm2":           gate.SeverityHigh,
	"eval":          gate.SeverityHigh,
	"shelljs":       gate.SeverityMedium,
	"exec":          gate.SeverityMedium,
}

// dynamicExecRe matches dynamic code execution idioms. Any hit is treated
// as critical for the whole security category.
var dynamicExecRe = regexp.MustCompile(
	`\beval\s*\(|new\s+Function\s*\(|\bsetTimeout\s*\(\s*["']|\bsetInterval\s*\(\s*["']`)

// securityRisks evaluates the security axis.
//
// Description:
//
//	Converts every detected secret into an item (likelihood follows the
//	match confidence), flags dangerous module imports, flags sensitive
//	functions that also make external calls or mutate shared state, and
//	escalates the whole category to critical when a dynamic-execution
//	idiom appears in the text.
func securityRisks(text string, sem *semantic.Context) CategoryResult {
	var items []Item

	for _, s := range sem.Secrets {
		items = append(items, Item{
			Type:        "hardcoded_secret",
			Severity:    s.Severity,
			Likelihood:  likelihoodForConfidence(s.Confidence),
			Description: fmt.Sprintf("potential %s (%s)", s.Type, s.Masked),
			Location:    fmt.Sprintf("line %d", s.Line),
			Impact:      "credential exposure if this code leaves the machine",
		})
	}

	for _, d := range sem.Dependencies {
		sev, ok := dangerousModules[strings.ToLower(d.Module)]
		if !ok {
			continue
		}
		items = append(items, Item{
			Type:        "dangerous_module",
			Severity:    sev,
			Likelihood:  gate.LikelihoodMedium,
			Description: fmt.Sprintf("import of %q grants process or dynamic-execution power", d.Module),
			Location:    fmt.Sprintf("line %d", d.Line),
			Impact:      "reveals privileged capabilities of the codebase",
		})
	}

	for _, f := range sem.Functions {
		if !f.ContainsSensitiveLogic || (!f.MakesExternalCalls && !f.MutatesState) {
			continue
		}
		desc := fmt.Sprintf("function %q handles sensitive data and calls external services", f.Name)
		if !f.MakesExternalCalls {
			desc = fmt.Sprintf("function %q handles sensitive data and writes shared or DOM state", f.Name)
		}
		items = append(items, Item{
			Type:        "sensitive_data_exposure",
			Severity:    gate.SeverityHigh,
			Likelihood:  gate.LikelihoodMedium,
			Description: desc,
			Location:    f.Name,
			Impact:      "exposes how sensitive data leaves the system",
		})
	}

	if dynamicExecRe.MatchString(text) {
		items = append(items, Item{
			Type:        "dynamic_code_execution",
			Severity:    gate.SeverityCritical,
			Likelihood:  gate.LikelihoodHigh,
			Description: "dynamic code execution (eval or equivalent) present",
			Impact:      "arbitrary code execution surface; blocks sharing",
		})
	}

	return finishCategory(gate.CategorySecurity, items)
}

// ContainsDynamicExecution reports whether the text carries a
// dynamic-code-execution idiom. The quick scan path uses the same check so
// fast and full verdicts never contradict on this idiom.
func ContainsDynamicExecution(text string) bool {
	return dynamicExecRe.MatchString(text)
}

// DangerousModuleSeverity returns the severity of a denylisted module
// import, with ok false for modules not on the list.
func DangerousModuleSeverity(module string) (gate.Severity, bool) {
	sev, ok := dangerousModules[strings.ToLower(module)]
	return sev, ok
}

// likelihoodForConfidence buckets a match confidence into a likelihood.
func likelihoodForConfidence(conf float64) gate.Likelihood {
	switch {
	case conf > 0.7:
		return gate.LikelihoodHigh
	case conf > 0.4:
		return gate.LikelihoodMedium
	default:
		return gate.LikelihoodLow
	}
}
