// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import "strings"

// AllowMarker suppresses a secret match on its line. The marker exists for
// deliberately committed non-secrets (documentation snippets, canned
// fixtures the caller vouches for).
const AllowMarker = "seawall:allow"

// placeholderTokens mark values that are clearly not live credentials.
var placeholderTokens = []string{
	"test", "fake", "dummy", "placeholder", "example", "sample",
	"changeme", "your_", "your-",
}

// configurationTokens mark lines that read values from configuration,
// which raises the odds the literal nearby is a real deployment secret.
var configurationTokens = []string{
	"config", "env", "settings", "environment",
}

// lineOfOffset returns the 1-based line number containing the offset.
func lineOfOffset(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n") + 1
}

// lineAt returns the full text of the line containing the offset.
func lineAt(text string, offset int) string {
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : offset+end]
}

// isCommentLine reports whether the line is a comment.
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "#")
}

// mentionsConfiguration reports whether the line references configuration,
// environment, or settings vocabulary.
func mentionsConfiguration(line string) bool {
	lower := strings.ToLower(line)
	for _, tok := range configurationTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// hasPlaceholderToken reports whether the text carries an explicit
// test/fake/dummy/placeholder token.
func hasPlaceholderToken(s string) bool {
	lower := strings.ToLower(s)
	for _, tok := range placeholderTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// hasAllowMarker reports whether the line carries the suppression marker.
func hasAllowMarker(line string) bool {
	return strings.Contains(line, AllowMarker)
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
