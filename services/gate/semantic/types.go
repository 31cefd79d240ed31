// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package semantic combines extracted elements and pattern matches into
// one contextual model.
//
// # Description
//
// The enricher runs the extractor and the three pattern matchers, then
// derives per-element attributes (semantic role, side effects, complexity,
// access patterns, coupling, design-pattern hints) and aggregates them
// into a single Context. Enrichment happens exactly once per pipeline run;
// downstream stages consume the Context and never re-read the raw text
// for structural facts.
//
// # Thread Safety
//
// The Enricher is immutable after construction and safe for concurrent
// use. A Context is owned by its caller and must not be shared while
// mutated.
package semantic

import (
	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/extract"
	"github.com/seawall-ai/seawall/services/gate/patterns"
)

// Role is the coarse purpose classification of a function.
type Role string

const (
	// RoleBusiness marks domain and revenue logic.
	RoleBusiness Role = "business"

	// RoleUI marks rendering and interaction handling.
	RoleUI Role = "ui"

	// RoleInfrastructure marks wiring, I/O, and lifecycle code.
	RoleInfrastructure Role = "infrastructure"

	// RoleUtility marks generic helpers.
	RoleUtility Role = "utility"

	// RoleUnknown is the fallback when no heuristic fires.
	RoleUnknown Role = "unknown"
)

// AccessPattern classifies how a variable is used after declaration.
type AccessPattern string

const (
	AccessReadOnly  AccessPattern = "read-only"
	AccessWriteOnly AccessPattern = "write-only"
	AccessReadWrite AccessPattern = "read-write"
	AccessUnused    AccessPattern = "unused"
)

// Coupling buckets an import count into a dependency-coupling estimate.
type Coupling string

const (
	CouplingLoose  Coupling = "loose"
	CouplingMedium Coupling = "medium"
	CouplingTight  Coupling = "tight"
)

// Function is an enriched function: the extracted base plus derived
// attributes. Enrichment is performed exactly once per pipeline run.
type Function struct {
	extract.Function

	// Role is the semantic role derived from name tokens.
	Role Role `json:"role"`

	// MakesExternalCalls is true when the body shows network idioms.
	MakesExternalCalls bool `json:"makes_external_calls"`

	// MutatesState is true when the body shows shared-state mutation.
	MutatesState bool `json:"mutates_state"`

	// Logs is true when the body writes to a logging sink.
	Logs bool `json:"logs"`

	// TouchesStorage is true when the body shows storage-access idioms.
	TouchesStorage bool `json:"touches_storage"`

	// Cyclomatic is 1 plus the count of decision tokens in the body.
	Cyclomatic int `json:"cyclomatic"`

	// Cognitive weights decision tokens by nesting depth, accumulated
	// per line. An opaque heuristic kept for score compatibility.
	Cognitive int `json:"cognitive"`
}

// Variable is an enriched variable.
type Variable struct {
	extract.Variable

	// Reads counts non-assignment occurrences after declaration.
	Reads int `json:"reads"`

	// Writes counts assignment-context occurrences after declaration.
	Writes int `json:"writes"`

	// Access classifies the read/write mix.
	Access AccessPattern `json:"access"`

	// Risk escalates for potential secrets, globals, and unused
	// declarations.
	Risk gate.Severity `json:"risk"`
}

// Dependency is an enriched import.
type Dependency struct {
	extract.Import

	// Purpose is the module-category estimate (ui, http, data, ...).
	Purpose string `json:"purpose"`
}

// Class is an enriched class.
type Class struct {
	extract.Class

	// PatternHints are design-pattern names suggested by method-name
	// sets (singleton, factory, observer, builder).
	PatternHints []string `json:"pattern_hints"`
}

// Complexity aggregates unit-level complexity and debt estimates.
//
// The formulas are opaque heuristics; their only contract is that the
// same input yields the same score.
type Complexity struct {
	// Cognitive is the unit-level cognitive-complexity roll-up.
	Cognitive int `json:"cognitive"`

	// TechnicalDebt is the excess above the fixed baseline plus secret
	// and over-parameterization penalties.
	TechnicalDebt int `json:"technical_debt"`
}

// Context is the single aggregate handed to every downstream stage.
type Context struct {
	// FileName is the analyzed file's name, if known.
	FileName string `json:"file_name"`

	Functions    []Function       `json:"functions"`
	Variables    []Variable       `json:"variables"`
	Dependencies []Dependency     `json:"dependencies"`
	Exports      []extract.Export `json:"exports"`
	Classes      []Class          `json:"classes"`

	// Coupling is the file-level dependency-coupling estimate.
	Coupling Coupling `json:"coupling"`

	// Secrets, Business, and Frameworks are the pattern matches
	// partitioned by domain.
	Secrets    []patterns.SecretMatch    `json:"secrets"`
	Business   []patterns.BusinessMatch  `json:"business"`
	Frameworks []patterns.FrameworkMatch `json:"frameworks"`

	// PrimaryFramework is the highest-confidence framework, if any.
	PrimaryFramework *patterns.FrameworkMatch `json:"primary_framework,omitempty"`

	// RiskFactors is the flat list of notable findings for downstream
	// summaries.
	RiskFactors []string `json:"risk_factors"`

	// Complexity is the aggregate complexity estimate.
	Complexity Complexity `json:"complexity"`
}
