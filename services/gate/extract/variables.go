// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package extract

import (
	"regexp"
	"strings"
)

var (
	// const name = value
	varDeclRe = regexp.MustCompile(
		`(?m)^[ \t]*(?:export\s+)?(const|let|var)\s+([A-Za-z_$][\w$]*)\s*(?:=\s*([^;\n]*))?`)

	// const { a, b } = obj  /  const [x, y] = arr
	varDestructureRe = regexp.MustCompile(
		`(?m)^[ \t]*(?:export\s+)?(const|let|var)\s+[{\[]([^}\]]*)[}\]]\s*=`)
)

// secretNameTokens mark identifiers that may hold credentials.
var secretNameTokens = []string{
	"key", "secret", "token", "password", "passwd", "pwd", "credential",
	"auth", "apikey", "api_key", "access",
}

// Variables extracts variable declarations from the text.
//
// Description:
//
//	Applies the plain-declaration and destructuring matcher families.
//	Declarations whose right-hand side is a function or arrow are left to
//	the function matcher family and skipped here. Names that suggest
//	credentials with non-trivial string-literal values are flagged as
//	potential secrets.
//
// Inputs:
//
//	text - The raw source text.
//
// Outputs:
//
//	[]Variable - Deduplicated, line-sorted variables.
func (e *Extractor) Variables(text string) []Variable {
	var vars []Variable

	for _, m := range varDeclRe.FindAllStringSubmatchIndex(text, -1) {
		kind := submatch(text, m, 1)
		name := submatch(text, m, 2)
		value := strings.TrimSpace(submatch(text, m, 3))
		if !validName(name) {
			continue
		}
		// Function-valued declarations belong to the function family.
		if strings.HasPrefix(value, "function") || strings.Contains(value, "=>") {
			continue
		}
		vars = append(vars, Variable{
			Name:              name,
			Line:              lineOfOffset(text, m[0]),
			Kind:              kind,
			Value:             value,
			IsConst:           kind == "const",
			IsPotentialSecret: isPotentialSecret(name, value),
			Scope:             scopeAt(text, m[0]),
		})
	}

	for _, m := range varDestructureRe.FindAllStringSubmatchIndex(text, -1) {
		kind := submatch(text, m, 1)
		names := submatch(text, m, 2)
		for _, raw := range strings.Split(names, ",") {
			name := strings.TrimSpace(raw)
			// Drop rename and default fragments.
			if i := strings.IndexAny(name, ":="); i >= 0 {
				name = strings.TrimSpace(name[:i])
			}
			name = strings.TrimPrefix(name, "...")
			if !validName(name) {
				continue
			}
			vars = append(vars, Variable{
				Name:    name,
				Line:    lineOfOffset(text, m[0]),
				Kind:    kind,
				IsConst: kind == "const",
				Scope:   scopeAt(text, m[0]),
			})
		}
	}

	return sortVariables(vars)
}

// isPotentialSecret reports whether a declaration looks like a hardcoded
// credential: a secret-flavored name assigned a string literal of
// meaningful length.
func isPotentialSecret(name, value string) bool {
	lower := strings.ToLower(name)
	flagged := false
	for _, tok := range secretNameTokens {
		if strings.Contains(lower, tok) {
			flagged = true
			break
		}
	}
	if !flagged {
		return false
	}
	v := strings.TrimSpace(value)
	if len(v) < 2 {
		return false
	}
	if v[0] != '"' && v[0] != '\'' && v[0] != '`' {
		return false
	}
	// Short literals are placeholders, not credentials.
	return len(v) > 10
}
