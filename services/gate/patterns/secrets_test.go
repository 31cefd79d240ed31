// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import (
	"strings"
	"testing"

	"github.com/seawall-ai/seawall/services/gate"
)

// buildKey assembles a plausible key at runtime so no real-looking
// credential sits in the test source.
func buildKey(prefix string, bodyLen int) string {
	return prefix + strings.Repeat("x", bodyLen)
}

func newSecretMatcher(t *testing.T) *SecretMatcher {
	t.Helper()
	return NewSecretMatcher(Default().Secrets)
}

func TestScanOpenAIKey(t *testing.T) {
	key := buildKey("sk-", 48)
	text := "const apiKey = \"" + key + "\";\n"

	matches := newSecretMatcher(t).Scan(text, "billing.js")

	var found *SecretMatch
	for i := range matches {
		if matches[i].Type == "openai_api_key" {
			found = &matches[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("no openai_api_key match in %+v", matches)
	}
	if found.Severity != gate.SeverityHigh {
		t.Errorf("severity = %q, want high", found.Severity)
	}
	if found.Line != 1 {
		t.Errorf("line = %d, want 1", found.Line)
	}
	if strings.Contains(found.Masked, key) {
		t.Error("masked output contains the raw key")
	}
	if !strings.HasPrefix(found.Masked, "sk") {
		t.Errorf("masked = %q, want sk prefix", found.Masked)
	}
	if found.Confidence <= acceptThreshold || found.Confidence > 1 {
		t.Errorf("confidence = %v", found.Confidence)
	}
}

func TestScanTestFileDampening(t *testing.T) {
	key := buildKey("sk-", 48)
	text := "const apiKey = \"" + key + "\";\n"
	m := newSecretMatcher(t)

	normal := m.Scan(text, "billing.js")
	damped := m.Scan(text, "billing.test.js")

	normalConf := confidenceFor(normal, "openai_api_key")
	dampedConf := confidenceFor(damped, "openai_api_key")
	if normalConf == 0 {
		t.Fatal("no baseline match")
	}
	if diff := normalConf - dampedConf; diff < 0.39 || diff > 0.41 {
		t.Errorf("test-file dampening = %v, want 0.4", diff)
	}
}

func TestScanCommentDampening(t *testing.T) {
	key := buildKey("sk-", 48)
	m := newSecretMatcher(t)

	normal := m.Scan("const k = \""+key+"\";\n", "app.js")
	comment := m.Scan("// const k = \""+key+"\";\n", "app.js")

	n := confidenceFor(normal, "openai_api_key")
	c := confidenceFor(comment, "openai_api_key")
	if n == 0 || c == 0 {
		t.Fatalf("missing matches: normal=%v comment=%v", n, c)
	}
	if diff := n - c; diff < 0.29 || diff > 0.31 {
		t.Errorf("comment dampening = %v, want 0.3", diff)
	}
}

func TestScanPlaceholderRejected(t *testing.T) {
	text := "const apiKey = \"sk-test" + strings.Repeat("a", 41) + "\";\n"

	matches := newSecretMatcher(t).Scan(text, "app.js")
	if confidenceFor(matches, "openai_api_key") != 0 {
		t.Errorf("placeholder-flavored key should be rejected: %+v", matches)
	}
}

func TestScanAllowMarkerSuppresses(t *testing.T) {
	key := buildKey("sk-", 48)
	text := "const k = \"" + key + "\"; // seawall:allow\n"

	matches := newSecretMatcher(t).Scan(text, "app.js")
	if len(matches) != 0 {
		t.Errorf("allow marker should suppress, got %+v", matches)
	}
}

func TestScanAWSAccessKey(t *testing.T) {
	key := "AKIA" + strings.Repeat("Z", 16)
	text := "aws.config.accessKeyId = '" + key + "';\n"

	matches := newSecretMatcher(t).Scan(text, "deploy.js")
	found := confidenceFor(matches, "aws_access_key")
	if found == 0 {
		t.Fatalf("no aws_access_key match: %+v", matches)
	}
}

func TestScanSortedByLine(t *testing.T) {
	key := buildKey("sk-", 48)
	gh := "ghp_" + strings.Repeat("a", 36)
	text := "const b = \"" + gh + "\";\n" +
		"const a = \"" + key + "\";\n"

	matches := newSecretMatcher(t).Scan(text, "app.js")
	last := 0
	for _, m := range matches {
		if m.Line < last {
			t.Errorf("matches not sorted by line: %+v", matches)
		}
		last = m.Line
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"short", "abc", "****"},
		{"exactly eight", "abcdefgh", "****"},
		{"long", "abcdefghij", "ab******ij"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskSecret(tt.value); got != tt.want {
				t.Errorf("MaskSecret(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// Masking invariant: no returned match ever carries a verbatim secret
// longer than eight characters.
func TestMaskingInvariant(t *testing.T) {
	values := []string{
		buildKey("sk-", 48),
		"ghp_" + strings.Repeat("b", 36),
		"AIza" + strings.Repeat("c", 35),
	}
	m := newSecretMatcher(t)
	for _, v := range values {
		text := "const x = \"" + v + "\";\n"
		for _, match := range m.Scan(text, "app.js") {
			if strings.Contains(match.Masked, v) {
				t.Errorf("masked %q leaks value", match.Masked)
			}
		}
	}
}

func confidenceFor(matches []SecretMatch, typ string) float64 {
	for _, m := range matches {
		if m.Type == typ {
			return m.Confidence
		}
	}
	return 0
}
