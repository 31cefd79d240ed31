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
	// import X from 'm' / import {a, b} from 'm' / import * as ns from 'm'
	importFromRe = regexp.MustCompile(
		`(?m)^[ \t]*import\s+(?:([A-Za-z_$][\w$]*)\s*,?\s*)?(?:\{([^}]*)\}\s*)?(?:\*\s+as\s+([A-Za-z_$][\w$]*)\s*)?from\s+['"]([^'"]+)['"]`)

	// import 'm'  (side-effect import)
	importBareRe = regexp.MustCompile(
		`(?m)^[ \t]*import\s+['"]([^'"]+)['"]`)

	// require('m')
	requireRe = regexp.MustCompile(
		`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)

	// import('m')  (dynamic import expression)
	dynamicImportRe = regexp.MustCompile(
		`\bimport\s*\(\s*['"]([^'"]+)['"]\s*\)`)

	// export function/class/const name
	exportDeclRe = regexp.MustCompile(
		`(?m)^[ \t]*export\s+(?:(async)\s+)?(function|class|const|let|var)\s+\*?\s*([A-Za-z_$][\w$]*)`)

	// export default <expr>
	exportDefaultRe = regexp.MustCompile(
		`(?m)^[ \t]*export\s+default\s+(?:(?:async\s+)?(?:function|class)\s*([A-Za-z_$][\w$]*)?)?`)

	// export { a, b as c }
	exportListRe = regexp.MustCompile(
		`(?m)^[ \t]*export\s*\{([^}]*)\}`)

	// module.exports = X / module.exports.name = X / exports.name = X
	moduleExportsRe = regexp.MustCompile(
		`(?m)^[ \t]*(?:module\.)?exports(?:\.([A-Za-z_$][\w$]*))?\s*=`)
)

// Imports extracts module imports from the text.
//
// Description:
//
//	Recognizes ES-module declaration imports, side-effect imports,
//	require() calls, and dynamic import() expressions. require() and
//	import() hits are marked dynamic.
//
// Inputs:
//
//	text - The raw source text.
//
// Outputs:
//
//	[]Import - Deduplicated, line-sorted imports.
func (e *Extractor) Imports(text string) []Import {
	var imports []Import

	for _, m := range importFromRe.FindAllStringSubmatchIndex(text, -1) {
		module := submatch(text, m, 4)
		if module == "" {
			continue
		}
		var names []string
		if def := submatch(text, m, 1); def != "" {
			names = append(names, def)
		}
		for _, raw := range strings.Split(submatch(text, m, 2), ",") {
			name := strings.TrimSpace(raw)
			// "a as b" binds b locally.
			if i := strings.Index(name, " as "); i >= 0 {
				name = strings.TrimSpace(name[i+4:])
			}
			if name != "" {
				names = append(names, name)
			}
		}
		if ns := submatch(text, m, 3); ns != "" {
			names = append(names, ns)
		}
		imports = append(imports, Import{
			Module: module,
			Names:  names,
			Line:   lineOfOffset(text, m[0]),
		})
	}

	for _, m := range importBareRe.FindAllStringSubmatchIndex(text, -1) {
		imports = append(imports, Import{
			Module: submatch(text, m, 1),
			Line:   lineOfOffset(text, m[0]),
		})
	}

	for _, m := range requireRe.FindAllStringSubmatchIndex(text, -1) {
		imports = append(imports, Import{
			Module:    submatch(text, m, 1),
			Line:      lineOfOffset(text, m[0]),
			IsDynamic: true,
		})
	}

	for _, m := range dynamicImportRe.FindAllStringSubmatchIndex(text, -1) {
		imports = append(imports, Import{
			Module:    submatch(text, m, 1),
			Line:      lineOfOffset(text, m[0]),
			IsDynamic: true,
		})
	}

	return sortImports(imports)
}

// Exports extracts export declarations from the text.
//
// Description:
//
//	Recognizes exported declarations, default exports, export lists, and
//	CommonJS module.exports assignments. Default exports are named
//	"default" unless the declaration carries an identifier.
//
// Inputs:
//
//	text - The raw source text.
//
// Outputs:
//
//	[]Export - Deduplicated, line-sorted exports.
func (e *Extractor) Exports(text string) []Export {
	var exports []Export

	for _, m := range exportDeclRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 3)
		if !validName(name) {
			continue
		}
		kind := submatch(text, m, 2)
		if kind == "let" || kind == "var" || kind == "const" {
			kind = "variable"
		}
		exports = append(exports, Export{
			Name: name,
			Line: lineOfOffset(text, m[0]),
			Kind: kind,
		})
	}

	for _, m := range exportDefaultRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 1)
		if name == "" {
			name = "default"
		}
		exports = append(exports, Export{
			Name: name,
			Line: lineOfOffset(text, m[0]),
			Kind: "default",
		})
	}

	for _, m := range exportListRe.FindAllStringSubmatchIndex(text, -1) {
		for _, raw := range strings.Split(submatch(text, m, 1), ",") {
			name := strings.TrimSpace(raw)
			if i := strings.Index(name, " as "); i >= 0 {
				name = strings.TrimSpace(name[i+4:])
			}
			if !validName(name) {
				continue
			}
			exports = append(exports, Export{
				Name: name,
				Line: lineOfOffset(text, m[0]),
				Kind: "list",
			})
		}
	}

	for _, m := range moduleExportsRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 1)
		kind := "variable"
		if name == "" {
			name = "default"
			kind = "default"
		}
		exports = append(exports, Export{
			Name: name,
			Line: lineOfOffset(text, m[0]),
			Kind: kind,
		})
	}

	return sortExports(exports)
}
