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
)

func TestDefaultCatalogCompiles(t *testing.T) {
	c := Default()

	if len(c.Secrets) == 0 || len(c.Business) == 0 || len(c.Frameworks) == 0 {
		t.Fatalf("catalog incomplete: %d/%d/%d",
			len(c.Secrets), len(c.Business), len(c.Frameworks))
	}
	for _, r := range c.Secrets {
		if r.compiled == nil {
			t.Errorf("secret rule %s not compiled", r.ID)
		}
	}
}

func TestWithOverlayAppendsRules(t *testing.T) {
	overlay := `
secrets:
  - id: ORG-SEC-001
    type: internal_token
    pattern: "itk_[A-Za-z0-9]{20}"
    severity: high
business:
  - id: ORG-BIZ-001
    domain: shipping
    keywords: [freight, carrier, manifest]
    severity: medium
`
	base := Default()
	c := WithOverlay([]byte(overlay))

	if len(c.Secrets) != len(base.Secrets)+1 {
		t.Errorf("secrets = %d, want %d", len(c.Secrets), len(base.Secrets)+1)
	}
	if len(c.Business) != len(base.Business)+1 {
		t.Errorf("business = %d, want %d", len(c.Business), len(base.Business)+1)
	}

	token := "itk_" + strings.Repeat("a", 20)
	matches := NewSecretMatcher(c.Secrets).Scan("const t = \""+token+"\";\n", "app.js")
	found := false
	for _, m := range matches {
		if m.Type == "internal_token" {
			found = true
		}
	}
	if !found {
		t.Errorf("overlay rule never matched: %+v", matches)
	}
}

func TestWithOverlayInvalidYAMLDegrades(t *testing.T) {
	base := Default()
	c := WithOverlay([]byte("secrets: [unterminated"))

	if len(c.Secrets) != len(base.Secrets) {
		t.Errorf("invalid overlay should leave defaults intact: %d vs %d",
			len(c.Secrets), len(base.Secrets))
	}
}

func TestWithOverlayRejectsInvalidEntries(t *testing.T) {
	overlay := `
secrets:
  - id: ORG-SEC-002
    type: missing_pattern
    severity: high
  - id: ""
    type: missing_id
    pattern: "x{10}"
    severity: low
`
	base := Default()
	c := WithOverlay([]byte(overlay))

	if len(c.Secrets) != len(base.Secrets) {
		t.Errorf("invalid entries should be dropped: %d vs %d",
			len(c.Secrets), len(base.Secrets))
	}
}

func TestWithOverlayDropsBadRegex(t *testing.T) {
	overlay := `
secrets:
  - id: ORG-SEC-003
    type: broken
    pattern: "([unclosed"
    severity: high
`
	base := Default()
	c := WithOverlay([]byte(overlay))

	// Appended during validation, dropped at compile time.
	if len(c.Secrets) != len(base.Secrets) {
		t.Errorf("uncompilable rule should be dropped: %d vs %d",
			len(c.Secrets), len(base.Secrets))
	}
}

func TestWithOverlayEmpty(t *testing.T) {
	base := Default()
	c := WithOverlay(nil)
	if len(c.Secrets) != len(base.Secrets) {
		t.Errorf("empty overlay should yield the defaults")
	}
}
