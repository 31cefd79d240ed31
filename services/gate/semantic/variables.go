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

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/extract"
)

// enrichVariable derives read/write usage and a risk level for one
// variable by scanning all lines of the text.
//
// Description:
//
//	Counts word-boundary occurrences of the name, distinguishing
//	assignment contexts (name =, name +=, name++, ++name) from plain
//	reads. The declaration itself is excluded from both counts. The
//	access pattern follows from the two counts; risk escalates for
//	potential secrets, writable globals, and unused declarations.
func enrichVariable(v extract.Variable, lines []string) Variable {
	occurrenceRe, err := regexp.Compile(`\b` + regexp.QuoteMeta(v.Name) + `\b`)
	if err != nil {
		return Variable{Variable: v, Access: AccessUnused, Risk: gate.SeverityLow}
	}
	writeRe := regexp.MustCompile(
		`(?:\b` + regexp.QuoteMeta(v.Name) + `\s*(?:=[^=]|\+\+|--|[+\-*/%]=)|(?:\+\+|--)\s*` + regexp.QuoteMeta(v.Name) + `\b)`)
	declRe := regexp.MustCompile(
		`\b(?:const|let|var)\s+(?:[{\[][^}\]]*)?` + regexp.QuoteMeta(v.Name) + `\b`)

	reads, writes := 0, 0
	for i, line := range lines {
		occ := len(occurrenceRe.FindAllString(line, -1))
		if occ == 0 {
			continue
		}
		w := len(writeRe.FindAllString(line, -1))
		// The declaration line's own assignment is not a usage.
		if i+1 == v.Line || declRe.MatchString(line) {
			occ--
			if w > 0 {
				w--
			}
		}
		if w > occ {
			w = occ
		}
		writes += w
		reads += occ - w
	}

	access := classifyAccess(reads, writes)
	return Variable{
		Variable: v,
		Reads:    reads,
		Writes:   writes,
		Access:   access,
		Risk:     variableRisk(v, access),
	}
}

func classifyAccess(reads, writes int) AccessPattern {
	switch {
	case reads > 0 && writes > 0:
		return AccessReadWrite
	case reads > 0:
		return AccessReadOnly
	case writes > 0:
		return AccessWriteOnly
	default:
		return AccessUnused
	}
}

// variableRisk escalates for credential-shaped values, mutable globals,
// and unused declarations.
func variableRisk(v extract.Variable, access AccessPattern) gate.Severity {
	if v.IsPotentialSecret {
		return gate.SeverityHigh
	}
	if v.Scope == extract.ScopeGlobal && !v.IsConst {
		return gate.SeverityMedium
	}
	if access == AccessUnused {
		return gate.SeverityMedium
	}
	return gate.SeverityLow
}

// splitLines splits once per analysis so per-variable scans share the
// same slice.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
