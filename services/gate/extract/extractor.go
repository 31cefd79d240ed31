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
	"strings"
)

// Extractor extracts structural elements from source text.
//
// Description:
//
//	Extractor applies independent matcher families per element kind and
//	merges the results. Construction compiles all patterns once; the
//	zero cost of a scan is proportional to the text size.
//
// Thread Safety:
//
//	Extractor is immutable after New and safe for concurrent use.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// All extracts every element kind from the text.
//
// Description:
//
//	Runs the function, variable, import, export, and class matcher
//	families, deduplicates each list by its composite key, and sorts by
//	start line. Malformed constructs are skipped silently; All never
//	fails on arbitrary input.
//
// Inputs:
//
//	text - The raw source text.
//
// Outputs:
//
//	Result - The extracted elements, deduplicated and line-sorted.
func (e *Extractor) All(text string) Result {
	return Result{
		Functions: e.Functions(text),
		Variables: e.Variables(text),
		Imports:   e.Imports(text),
		Exports:   e.Exports(text),
		Classes:   e.Classes(text),
	}
}

// --- Validity filters ---

// reservedWords are identifiers that structural matchers may capture but
// that never name a user element.
var reservedWords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "case": true, "default": true, "break": true,
	"continue": true, "return": true, "function": true, "class": true,
	"const": true, "let": true, "var": true, "new": true, "delete": true,
	"typeof": true, "instanceof": true, "in": true, "of": true,
	"try": true, "catch": true, "finally": true, "throw": true,
	"async": true, "await": true, "yield": true, "import": true,
	"export": true, "extends": true, "super": true, "this": true,
	"null": true, "undefined": true, "true": true, "false": true,
	"void": true, "with": true, "static": true, "get": true, "set": true,
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// validName rejects reserved words, single-character names, and malformed
// captures.
func validName(name string) bool {
	if len(name) < 2 {
		return false
	}
	if reservedWords[name] {
		return false
	}
	return identifierRe.MatchString(name)
}

// splitParams splits a raw parameter list into cleaned parameter names.
//
// Destructured and defaulted parameters are reduced to a representative
// token; unparseable entries are kept as a placeholder so the count stays
// honest.
func splitParams(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var params []string
	depth := 0
	start := 0
	flush := func(end int) {
		p := strings.TrimSpace(raw[start:end])
		if p == "" {
			return
		}
		// Strip default values and type annotations.
		if i := strings.IndexAny(p, "=:"); i >= 0 {
			p = strings.TrimSpace(p[:i])
		}
		p = strings.TrimPrefix(p, "...")
		// Reduce destructuring to a marker token.
		if strings.HasPrefix(p, "{") || strings.HasPrefix(p, "[") {
			p = "destructured"
		}
		params = append(params, p)
	}
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(raw))
	return params
}

// --- Dedup and ordering ---

// dedupKey is the composite identity of an extracted element. Overlapping
// matcher families may capture the same construct more than once; the key
// collapses those hits to one element.
type dedupKey struct {
	name  string
	line  int
	extra string
}

func sortFunctions(fns []Function) []Function {
	seen := make(map[dedupKey]bool, len(fns))
	out := fns[:0]
	for _, f := range fns {
		k := dedupKey{f.Name, f.StartLine, boolTag(f.IsArrow)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartLine != out[j].StartLine {
			return out[i].StartLine < out[j].StartLine
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortVariables(vars []Variable) []Variable {
	seen := make(map[dedupKey]bool, len(vars))
	out := vars[:0]
	for _, v := range vars {
		k := dedupKey{v.Name, v.Line, v.Kind}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortImports(imports []Import) []Import {
	seen := make(map[dedupKey]bool, len(imports))
	out := imports[:0]
	for _, im := range imports {
		k := dedupKey{im.Module, im.Line, boolTag(im.IsDynamic)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, im)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Module < out[j].Module
	})
	return out
}

func sortExports(exports []Export) []Export {
	seen := make(map[dedupKey]bool, len(exports))
	out := exports[:0]
	for _, ex := range exports {
		k := dedupKey{ex.Name, ex.Line, ex.Kind}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, ex)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortClasses(classes []Class) []Class {
	seen := make(map[dedupKey]bool, len(classes))
	out := classes[:0]
	for _, c := range classes {
		k := dedupKey{c.Name, c.StartLine, c.Extends}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartLine != out[j].StartLine {
			return out[i].StartLine < out[j].StartLine
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func boolTag(b bool) string {
	if b {
		return "t"
	}
	return "f"
}
