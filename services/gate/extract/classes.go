// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package extract

import (
	"regexp"
	"sort"
)

var (
	// class Name extends Base { ... }
	classDeclRe = regexp.MustCompile(
		`(?m)^[ \t]*(export\s+)?(?:default\s+)?class\s+([A-Za-z_$][\w$]*)(?:\s+extends\s+([A-Za-z_$][\w$.]*))?`)

	// method shapes inside a recovered class body
	classMethodRe = regexp.MustCompile(
		`(?m)^[ \t]*(?:static\s+)?(?:async\s+)?(?:get\s+|set\s+)?\*?\s*([A-Za-z_$][\w$]*)\s*\([^)]*\)\s*\{`)

	// property shapes: class fields and constructor assignments
	classFieldRe    = regexp.MustCompile(`(?m)^[ \t]*(?:static\s+)?(?:#)?([A-Za-z_$][\w$]*)\s*=[^=>]`)
	thisAssignRe    = regexp.MustCompile(`\bthis\.([A-Za-z_$][\w$]*)\s*=[^=]`)
	methodKeywordRe = regexp.MustCompile(`^(?:if|for|while|switch|catch|return)$`)
)

// Classes extracts class declarations from the text.
//
// Description:
//
//	Matches class declaration headers, recovers each body by brace
//	balancing, and scans the body for method and property shapes. The
//	inheritance edge is recovered by name-token scanning only; no real
//	hierarchy is resolved.
//
// Inputs:
//
//	text - The raw source text.
//
// Outputs:
//
//	[]Class - Deduplicated, line-sorted classes.
func (e *Extractor) Classes(text string) []Class {
	var classes []Class

	for _, m := range classDeclRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 2)
		if !validName(name) {
			continue
		}
		c := Class{
			Name:       name,
			StartLine:  lineOfOffset(text, m[0]),
			Extends:    submatch(text, m, 3),
			IsExported: submatch(text, m, 1) != "",
		}

		body, end, ok := recoverBlockBody(text, m[1])
		if ok {
			c.EndLine = lineOfOffset(text, end)
			c.Methods, c.Properties = classMembers(body)
		} else {
			c.EndLine = c.StartLine
		}
		classes = append(classes, c)
	}

	return sortClasses(classes)
}

// classMembers scans a class body for method and property names.
func classMembers(body string) (methods, properties []string) {
	seenM := map[string]bool{}
	for _, m := range classMethodRe.FindAllStringSubmatch(body, -1) {
		name := m[1]
		if len(name) < 2 || methodKeywordRe.MatchString(name) {
			continue
		}
		if !seenM[name] {
			seenM[name] = true
			methods = append(methods, name)
		}
	}

	seenP := map[string]bool{}
	addProp := func(name string) {
		if len(name) < 2 || seenM[name] || seenP[name] {
			return
		}
		seenP[name] = true
		properties = append(properties, name)
	}
	for _, m := range classFieldRe.FindAllStringSubmatchIndex(body, -1) {
		// Field shapes can also match local assignments inside methods;
		// only take hits at the first nesting level.
		if !classFieldAtTopLevel(body, m[0]) {
			continue
		}
		addProp(body[m[2]:m[3]])
	}
	for _, m := range thisAssignRe.FindAllStringSubmatch(body, -1) {
		addProp(m[1])
	}

	// Deterministic output independent of match interleaving.
	sort.Strings(methods)
	sort.Strings(properties)
	return methods, properties
}

// classFieldAtTopLevel reports whether the offset sits at the first brace
// depth of the body. Kept for field filtering when bodies carry nested
// functions.
func classFieldAtTopLevel(body string, offset int) bool {
	depth := 0
	var st stringState
	for i := 0; i < offset && i < len(body); i++ {
		c := body[i]
		if st.step(c) {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth == 0
}
