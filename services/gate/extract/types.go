// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package extract pulls structural elements out of raw source text.
//
// # Description
//
// This package is a heuristic extractor, not a parser. It applies families
// of structural matchers per element kind (functions, variables, imports,
// exports, classes), merges their hits, filters invalid captures, and
// returns deterministic, line-sorted, deduplicated element lists. Malformed
// constructs are silently skipped: the extractor never fails, it only
// returns fewer elements.
//
// The confidence thresholds of the downstream pattern catalogs are
// calibrated against this extractor's false-positive rate. Upgrading it to
// a real parser would change the system's contract.
//
// # Thread Safety
//
// The Extractor is stateless after construction and safe for concurrent use.
package extract

// Scope classifies where an element is declared.
type Scope string

const (
	// ScopeGlobal means the element is declared at the top level.
	ScopeGlobal Scope = "global"

	// ScopeFunction means the element is declared inside a function body.
	ScopeFunction Scope = "function"

	// ScopeBlock means the element is declared inside a non-function block.
	ScopeBlock Scope = "block"
)

// Function is an extracted function-like construct.
type Function struct {
	// Name is the function identifier.
	Name string `json:"name"`

	// StartLine is the 1-based line of the signature.
	StartLine int `json:"start_line"`

	// EndLine is the 1-based line where the recovered body ends.
	EndLine int `json:"end_line"`

	// Parameters are the declared parameter names, in order.
	Parameters []string `json:"parameters"`

	// Body is the recovered body text (without the signature).
	Body string `json:"-"`

	// IsAsync is true for async functions.
	IsAsync bool `json:"is_async"`

	// IsArrow is true for arrow-function assignments.
	IsArrow bool `json:"is_arrow"`

	// IsExported is true when the declaration is exported.
	IsExported bool `json:"is_exported"`

	// ContainsSensitiveLogic is true when the name or body carries
	// security- or business-sensitive tokens.
	ContainsSensitiveLogic bool `json:"contains_sensitive_logic"`

	// Scope is where the function is declared.
	Scope Scope `json:"scope"`
}

// Variable is an extracted variable declaration.
type Variable struct {
	// Name is the variable identifier.
	Name string `json:"name"`

	// Line is the 1-based declaration line.
	Line int `json:"line"`

	// Kind is the declaration keyword: const, let, or var.
	Kind string `json:"kind"`

	// Value is the trimmed right-hand side of the declaration, if any.
	Value string `json:"-"`

	// IsConst is true for const declarations.
	IsConst bool `json:"is_const"`

	// IsPotentialSecret is true when the name suggests a credential and
	// the value is a non-trivial string literal.
	IsPotentialSecret bool `json:"is_potential_secret"`

	// Scope is where the variable is declared.
	Scope Scope `json:"scope"`
}

// Import is an extracted module import.
type Import struct {
	// Module is the imported module specifier.
	Module string `json:"module"`

	// Names are the imported binding names, if any.
	Names []string `json:"names"`

	// Line is the 1-based line of the import.
	Line int `json:"line"`

	// IsDynamic is true for import() expressions and require() calls
	// outside the top-level declaration form.
	IsDynamic bool `json:"is_dynamic"`
}

// Export is an extracted export declaration.
type Export struct {
	// Name is the exported identifier ("default" for default exports).
	Name string `json:"name"`

	// Line is the 1-based line of the export.
	Line int `json:"line"`

	// Kind is what is exported: function, class, variable, default, or list.
	Kind string `json:"kind"`
}

// Class is an extracted class declaration.
type Class struct {
	// Name is the class identifier.
	Name string `json:"name"`

	// StartLine is the 1-based line of the declaration.
	StartLine int `json:"start_line"`

	// EndLine is the 1-based line where the recovered body ends.
	EndLine int `json:"end_line"`

	// Extends is the name-token of the parent class, if any. Recovered by
	// token scanning, not by resolving a real hierarchy.
	Extends string `json:"extends,omitempty"`

	// Methods are the method names found in the recovered body.
	Methods []string `json:"methods"`

	// Properties are the property names found in the recovered body.
	Properties []string `json:"properties"`

	// IsExported is true when the declaration is exported.
	IsExported bool `json:"is_exported"`
}

// Result holds all elements extracted from one source unit.
//
// Each list is sorted ascending by start line and contains no two elements
// sharing the same dedup key, so downstream scoring is reproducible.
type Result struct {
	Functions []Function `json:"functions"`
	Variables []Variable `json:"variables"`
	Imports   []Import   `json:"imports"`
	Exports   []Export   `json:"exports"`
	Classes   []Class    `json:"classes"`
}
