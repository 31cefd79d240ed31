// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import (
	"sort"
	"strings"

	"github.com/seawall-ai/seawall/services/gate"
)

// secretBaseConfidence is the stage default when a rule carries none.
const secretBaseConfidence = 0.7

// SecretMatcher scans text against the secret catalog.
//
// Thread Safety:
//
//	SecretMatcher is immutable after construction and safe for concurrent
//	use.
type SecretMatcher struct {
	rules []*SecretRule
}

// NewSecretMatcher creates a matcher over the given rules.
func NewSecretMatcher(rules []*SecretRule) *SecretMatcher {
	return &SecretMatcher{rules: rules}
}

// Scan finds secret matches in the text.
//
// Description:
//
//	For every raw regex hit: discard hits matching a false-positive hint
//	or carrying a suppression marker, then score confidence from the rule
//	base adjusted by local context, clamp to [0,1], and accept only
//	confidence above 0.3. The matched value is masked before it is
//	returned; raw secrets never leave this method.
//
//	Confidence adjustments, in order:
//	  - inside a comment line: -0.3
//	  - test/mock/spec file: -0.4
//	  - line mentions configuration/env/settings: +0.2
//	  - match or line carries a placeholder token: -0.5
//	  - rule severity high or above: +0.1
//
// Inputs:
//
//	text - The raw source text.
//	fileName - Optional file name for test-file dampening.
//
// Outputs:
//
//	[]SecretMatch - Accepted matches, sorted by line then rule ID.
func (m *SecretMatcher) Scan(text, fileName string) []SecretMatch {
	isTest := gate.IsTestFile(fileName)

	var out []SecretMatch
	for _, rule := range m.rules {
		if rule.compiled == nil {
			continue
		}
		for _, loc := range rule.compiled.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			line := lineAt(text, loc[0])

			if rule.suppressed(line) || hasAllowMarker(line) {
				continue
			}

			conf := m.confidence(rule, value, line, isTest)
			if conf <= acceptThreshold {
				continue
			}

			out = append(out, SecretMatch{
				RuleID:     rule.ID,
				Type:       rule.Type,
				Line:       lineOfOffset(text, loc[0]),
				Masked:     MaskSecret(value),
				Confidence: conf,
				Severity:   rule.Severity,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].RuleID < out[j].RuleID
	})
	return out
}

// confidence applies the fixed context adjustments to the rule base.
func (m *SecretMatcher) confidence(rule *SecretRule, value, line string, isTestFile bool) float64 {
	conf := rule.BaseConfidence
	if conf == 0 {
		conf = secretBaseConfidence
	}

	if isCommentLine(line) {
		conf -= 0.3
	}
	if isTestFile {
		conf -= 0.4
	}
	if mentionsConfiguration(line) {
		conf += 0.2
	}
	if hasPlaceholderToken(value) || hasPlaceholderToken(line) {
		conf -= 0.5
	}
	if rule.Severity.Rank() >= gate.SeverityHigh.Rank() {
		conf += 0.1
	}

	return clamp01(conf)
}

// suppressed reports whether a false-positive hint matches the hit's line.
func (r *SecretRule) suppressed(line string) bool {
	for _, hint := range r.compiledHints {
		if hint.MatchString(line) {
			return true
		}
	}
	return false
}

// MaskSecret masks a secret value for output.
//
// Description:
//
//	Values longer than 8 characters keep their first and last two
//	characters with asterisks in between, so the verbatim secret never
//	appears in any result. Shorter values become "****".
//
// Edge Cases:
//
//   - Empty value: returns "".
//   - 1-8 characters: returns "****".
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 8 {
		return "****"
	}
	maskLen := len(value) - 4
	return value[:2] + strings.Repeat("*", maskLen) + value[len(value)-2:]
}

// defaultSecretCatalog returns the built-in secret signatures.
func defaultSecretCatalog() []*SecretRule {
	return []*SecretRule{
		{
			ID:          "SW-SEC-001",
			Type:        "openai_api_key",
			Description: "OpenAI API key",
			Pattern:     `sk-(?:proj-)?[A-Za-z0-9_-]{32,64}`,
			Severity:    gate.SeverityHigh,
			FalsePositiveHints: []string{
				`(?i)example`,
				`(?i)your[_-]?key`,
			},
		},
		{
			ID:          "SW-SEC-002",
			Type:        "anthropic_api_key",
			Description: "Anthropic API key",
			Pattern:     `sk-ant-[A-Za-z0-9_-]{32,}`,
			Severity:    gate.SeverityHigh,
		},
		{
			ID:          "SW-SEC-003",
			Type:        "aws_access_key",
			Description: "AWS Access Key ID",
			Pattern:     `(?:A3T[A-Z0-9]|AKIA|AGPA|AIDA|AROA|AIPA|ANPA|ANVA|ASIA)[A-Z0-9]{16}`,
			Severity:    gate.SeverityCritical,
			FalsePositiveHints: []string{
				`(?i)example`,
			},
		},
		{
			ID:          "SW-SEC-004",
			Type:        "aws_secret_key",
			Description: "AWS Secret Access Key assignment",
			Pattern:     `(?i)(?:aws)?[_-]?secret[_-]?(?:access)?[_-]?key\s*[=:]\s*["'][A-Za-z0-9/+=]{40}["']`,
			Severity:    gate.SeverityCritical,
		},
		{
			ID:          "SW-SEC-005",
			Type:        "github_token",
			Description: "GitHub token",
			Pattern:     `(?:ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36,}`,
			Severity:    gate.SeverityCritical,
		},
		{
			ID:          "SW-SEC-006",
			Type:        "gcp_api_key",
			Description: "Google Cloud API key",
			Pattern:     `AIza[0-9A-Za-z_-]{35}`,
			Severity:    gate.SeverityCritical,
		},
		{
			ID:          "SW-SEC-007",
			Type:        "stripe_key",
			Description: "Stripe API key",
			Pattern:     `(?:sk|rk)_(?:live|test)_[0-9a-zA-Z]{24,}`,
			Severity:    gate.SeverityCritical,
			FalsePositiveHints: []string{
				`sk_test_`,
			},
		},
		{
			ID:          "SW-SEC-008",
			Type:        "slack_token",
			Description: "Slack token",
			Pattern:     `xox[baprs]-[0-9A-Za-z-]{10,}`,
			Severity:    gate.SeverityHigh,
		},
		{
			ID:          "SW-SEC-009",
			Type:        "private_key",
			Description: "PEM private key block",
			Pattern:     `-----BEGIN (?:RSA |DSA |EC |OPENSSH )?PRIVATE KEY-----`,
			Severity:    gate.SeverityCritical,
		},
		{
			ID:          "SW-SEC-010",
			Type:        "database_url",
			Description: "Connection string with embedded credentials",
			Pattern:     `(?i)(?:postgres(?:ql)?|mysql|mongodb(?:\+srv)?|redis|amqp)://[^:\s"']+:[^@\s"']+@[^\s"']+`,
			Severity:    gate.SeverityCritical,
		},
		{
			ID:          "SW-SEC-011",
			Type:        "jwt_token",
			Description: "Encoded JSON Web Token",
			Pattern:     `eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`,
			Severity:    gate.SeverityHigh,
		},
		{
			ID:          "SW-SEC-012",
			Type:        "password_assignment",
			Description: "Hardcoded password assignment",
			Pattern:     `(?i)(?:password|passwd|pwd)\s*[=:]\s*["'][^"']{8,}["']`,
			Severity:    gate.SeverityHigh,
			FalsePositiveHints: []string{
				`(?i)(?:password|passwd|pwd)\s*[=:]\s*["'](?:password|changeme|xxx+)["']`,
				`(?i)process\.env`,
				`(?i)os\.environ`,
			},
		},
		{
			ID:          "SW-SEC-013",
			Type:        "generic_api_key",
			Description: "Generic key/token assignment",
			Pattern:     `(?i)(?:api[_-]?key|apikey|auth[_-]?token|access[_-]?token|secret)\s*[=:]\s*["'][A-Za-z0-9_\-/+=]{16,}["']`,
			Severity:    gate.SeverityHigh,
			FalsePositiveHints: []string{
				`(?i)your[_-]?(?:api[_-]?key|token|secret)`,
				`(?i)xxx+`,
				`(?i)process\.env`,
			},
		},
		{
			ID:          "SW-SEC-014",
			Type:        "npm_token",
			Description: "npm access token",
			Pattern:     `npm_[A-Za-z0-9]{36}`,
			Severity:    gate.SeverityHigh,
		},
		{
			ID:          "SW-SEC-015",
			Type:        "sendgrid_key",
			Description: "SendGrid API key",
			Pattern:     `SG\.[A-Za-z0-9_-]{22}\.[A-Za-z0-9_-]{43}`,
			Severity:    gate.SeverityHigh,
		},
	}
}
