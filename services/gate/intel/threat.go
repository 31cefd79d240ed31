// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package intel

import (
	"regexp"
	"strings"

	"github.com/seawall-ai/seawall/services/gate"
)

// threatIdiom is one signature in the built-in threat table.
type threatIdiom struct {
	name     string
	category string
	severity gate.Severity
	re       *regexp.Regexp
}

// threatIdioms is the static threat table: known attack-surface idioms
// first, malicious-pattern idioms second.
var threatIdioms = []threatIdiom{
	{
		name:     "sql_injection",
		category: "injection",
		severity: gate.SeverityHigh,
		re:       regexp.MustCompile(`(?i)(?:query|execute)\s*\(\s*["'][^"']*["']\s*\+|["']\s*\+\s*\w+\s*\+\s*["'][^"']*(?:SELECT|INSERT|UPDATE|DELETE)`),
	},
	{
		name:     "command_injection",
		category: "command_execution",
		severity: gate.SeverityHigh,
		re:       regexp.MustCompile(`(?i)(?:exec|execSync|spawn|system)\s*\(\s*(?:["'][^"']*["']\s*\+|\w+\s*[,)])`),
	},
	{
		name:     "dom_xss",
		category: "cross_site_scripting",
		severity: gate.SeverityMedium,
		re:       regexp.MustCompile(`(?i)\.innerHTML\s*=|document\.write\s*\(|dangerouslySetInnerHTML`),
	},
	{
		name:     "path_traversal",
		category: "path_traversal",
		severity: gate.SeverityMedium,
		re:       regexp.MustCompile(`\.\./\.\./|(?i)(?:readFile|createReadStream|sendFile)\s*\([^)]*\+`),
	},
	{
		name:     "string_obfuscation",
		category: "obfuscation",
		severity: gate.SeverityMedium,
		re:       regexp.MustCompile(`(?i)fromCharCode|atob\s*\(|\\x[0-9a-f]{2}\\x[0-9a-f]{2}|unescape\s*\(`),
	},
	{
		name:     "reverse_shell",
		category: "reverse_shell",
		severity: gate.SeverityHigh,
		re:       regexp.MustCompile(`(?i)\b(?:nc|netcat)\s+-|bash\s+-i|/dev/tcp/|\bsh\s+-i\b|socket.*connect.*(?:exec|spawn)`),
	},
	{
		name:     "data_exfiltration",
		category: "exfiltration",
		severity: gate.SeverityHigh,
		re:       regexp.MustCompile(`(?i)(?:fetch|post|send)\s*\([^)]*(?:document\.cookie|localStorage|process\.env)`),
	},
	{
		name:     "crypto_mining",
		category: "mining",
		severity: gate.SeverityHigh,
		re:       regexp.MustCompile(`(?i)coinhive|cryptonight|minero|stratum\+tcp|hashrate`),
	},
}

// highThreatEscalationCount: more high-severity hits than this escalates
// the level to critical.
const highThreatEscalationCount = 2

// scanThreats runs the threat table over the raw text.
func scanThreats(text string) ThreatReport {
	var hits []ThreatHit
	highCount := 0
	for _, idiom := range threatIdioms {
		loc := idiom.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		hits = append(hits, ThreatHit{
			Name:     idiom.name,
			Category: idiom.category,
			Severity: idiom.severity,
			Line:     1 + strings.Count(text[:loc[0]], "\n"),
		})
		if idiom.severity == gate.SeverityHigh {
			highCount++
		}
	}

	level := gate.RiskLow
	switch {
	case highCount > highThreatEscalationCount:
		level = gate.RiskCritical
	case len(hits) > 0:
		level = gate.RiskHigh
	}

	return ThreatReport{Level: level, Hits: hits}
}
