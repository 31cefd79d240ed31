// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package patterns holds the static rule catalogs and their matchers.
//
// # Description
//
// Three independent catalogs drive the pattern stage: secret signatures,
// business-logic domains, and framework signatures. Catalog data is
// load-time-only configuration, never mutated at runtime; matchers are pure
// functions over a catalog and the given text, so the three matchers may
// run concurrently with no shared mutable state.
//
// # Thread Safety
//
// A Catalog and its matchers are safe for concurrent use after
// construction. Regexes are compiled at construction, not lazily.
package patterns

import (
	"regexp"

	"github.com/seawall-ai/seawall/services/gate"
)

// CatalogVersion tracks the rule catalog version reported in analysis
// metadata.
const CatalogVersion = "2026.02"

// acceptThreshold is the minimum confidence for any match to be returned.
const acceptThreshold = 0.3

// --- Secrets ---

// SecretRule is one credential signature in the secret catalog.
//
// Rules are immutable after construction.
type SecretRule struct {
	// ID is the unique rule identifier (e.g. SW-SEC-001).
	ID string `yaml:"id" validate:"required"`

	// Type names the credential category (openai_api_key, aws_access_key...).
	Type string `yaml:"type" validate:"required"`

	// Description explains what the rule detects.
	Description string `yaml:"description"`

	// Pattern is the regex signature.
	Pattern string `yaml:"pattern" validate:"required"`

	// Severity is the rule's severity.
	Severity gate.Severity `yaml:"severity" validate:"oneof=low medium high critical"`

	// BaseConfidence seeds confidence scoring. Zero means the stage
	// default of 0.7.
	BaseConfidence float64 `yaml:"base_confidence" validate:"gte=0,lte=1"`

	// FalsePositiveHints are regexes that suppress a raw hit when they
	// match the surrounding context.
	FalsePositiveHints []string `yaml:"false_positive_hints"`

	compiled      *regexp.Regexp
	compiledHints []*regexp.Regexp
}

// SecretMatch is one accepted secret finding. The matched value is always
// masked; raw secrets never leave the matcher.
type SecretMatch struct {
	// RuleID is the catalog rule that fired.
	RuleID string `json:"rule_id"`

	// Type is the credential category.
	Type string `json:"type"`

	// Line is the 1-based line of the hit.
	Line int `json:"line"`

	// Masked is the matched value with its middle replaced.
	Masked string `json:"masked"`

	// Confidence is the context-adjusted confidence in [0,1].
	Confidence float64 `json:"confidence"`

	// Severity is the rule severity.
	Severity gate.Severity `json:"severity"`
}

// --- Business logic ---

// BusinessRule is one proprietary-logic domain in the business catalog.
type BusinessRule struct {
	// ID is the unique rule identifier.
	ID string `yaml:"id" validate:"required"`

	// Domain names the logic domain (pricing, authentication, ...).
	Domain string `yaml:"domain" validate:"required"`

	// Keywords are domain vocabulary tokens.
	Keywords []string `yaml:"keywords" validate:"min=1"`

	// FunctionNames are characteristic function-name tokens.
	FunctionNames []string `yaml:"function_names"`

	// Phrases are structural phrase signatures (regexes).
	Phrases []string `yaml:"phrases"`

	// Severity is the domain's severity when matched.
	Severity gate.Severity `yaml:"severity" validate:"oneof=low medium high critical"`

	// BaseConfidence multiplies the combined overlap score.
	BaseConfidence float64 `yaml:"base_confidence" validate:"gte=0,lte=1"`

	compiledPhrases []*regexp.Regexp
}

// BusinessMatch is one accepted business-logic finding.
type BusinessMatch struct {
	// RuleID is the catalog rule that fired.
	RuleID string `json:"rule_id"`

	// Domain is the matched logic domain.
	Domain string `json:"domain"`

	// Confidence is the combined overlap score in [0,1].
	Confidence float64 `json:"confidence"`

	// RiskLevel buckets the score: >0.7 high, >0.4 medium, else low.
	RiskLevel gate.RiskLevel `json:"risk_level"`

	// Severity is the rule severity.
	Severity gate.Severity `json:"severity"`

	// MatchedKeywords are the keywords found in the text.
	MatchedKeywords []string `json:"matched_keywords"`

	// MatchedFunctions are the function-name tokens found in the text.
	MatchedFunctions []string `json:"matched_functions"`
}

// --- Frameworks ---

// FrameworkRule is one framework signature in the framework catalog.
type FrameworkRule struct {
	// ID is the unique rule identifier.
	ID string `yaml:"id" validate:"required"`

	// Name is the framework name (react, express, ...).
	Name string `yaml:"name" validate:"required"`

	// Category is the framework family (frontend, backend, testing, mobile).
	Category string `yaml:"category"`

	// Imports are import specifiers that indicate the framework.
	Imports []string `yaml:"imports"`

	// Idioms are code idiom signatures (regexes).
	Idioms []string `yaml:"idioms"`

	// FilePatterns are filename convention fragments.
	FilePatterns []string `yaml:"file_patterns"`

	// Dependencies are package-manifest dependency names.
	Dependencies []string `yaml:"dependencies"`

	// BaseConfidence multiplies the weighted signal score.
	BaseConfidence float64 `yaml:"base_confidence" validate:"gte=0,lte=1"`

	compiledIdioms []*regexp.Regexp
}

// FrameworkMatch is one accepted framework detection, highest confidence
// first; the first entry is the primary framework.
type FrameworkMatch struct {
	// RuleID is the catalog rule that fired.
	RuleID string `json:"rule_id"`

	// Name is the detected framework.
	Name string `json:"name"`

	// Category is the framework family.
	Category string `json:"category"`

	// Confidence is the weighted signal score in [0,1].
	Confidence float64 `json:"confidence"`

	// Indicators lists the signals that contributed.
	Indicators []string `json:"indicators"`
}

// --- Catalog ---

// Catalog bundles the three rule sets. Treat as immutable configuration:
// build once at startup (Default or Default+overlay) and inject into the
// matchers.
type Catalog struct {
	Secrets    []*SecretRule
	Business   []*BusinessRule
	Frameworks []*FrameworkRule
}
