// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import (
	"sort"
	"strings"
)

// Signal weights for framework detection. Imports are the strongest
// signal, declared dependencies the weakest.
const (
	frameworkImportWeight = 0.4
	frameworkIdiomWeight  = 0.3
	frameworkFileWeight   = 0.2
	frameworkDepWeight    = 0.1
)

// FrameworkMatcher scans text against the framework catalog.
//
// Thread Safety:
//
//	FrameworkMatcher is immutable after construction and safe for
//	concurrent use.
type FrameworkMatcher struct {
	rules []*FrameworkRule
}

// NewFrameworkMatcher creates a matcher over the given rules.
func NewFrameworkMatcher(rules []*FrameworkRule) *FrameworkMatcher {
	return &FrameworkMatcher{rules: rules}
}

// Scan detects frameworks represented in the text.
//
// Description:
//
//	For every framework rule, combines four signal fractions with fixed
//	weights (imports 0.4, idioms 0.3, filename conventions 0.2, declared
//	dependencies 0.1), multiplies by the rule's base confidence, and
//	clamps to 1.0. Scores above 0.3 are accepted. Results are sorted by
//	descending confidence with the framework name as tiebreak; the first
//	entry is the primary framework.
//
// Inputs:
//
//	text - The raw source text.
//	fileName - Optional file name for convention matching.
//	deps - Optional declared dependency names.
//
// Outputs:
//
//	[]FrameworkMatch - Accepted matches, highest confidence first.
func (m *FrameworkMatcher) Scan(text, fileName string, deps []string) []FrameworkMatch {
	lowerName := strings.ToLower(fileName)
	depSet := make(map[string]bool, len(deps))
	for _, d := range deps {
		depSet[strings.ToLower(d)] = true
	}

	var out []FrameworkMatch
	for _, rule := range m.rules {
		var indicators []string

		importHits := 0
		for _, imp := range rule.Imports {
			if containsImport(text, imp) {
				importHits++
				indicators = append(indicators, "import:"+imp)
			}
		}
		idiomHits := 0
		for _, re := range rule.compiledIdioms {
			if re.MatchString(text) {
				idiomHits++
				indicators = append(indicators, "idiom:"+re.String())
			}
		}
		fileHits := 0
		for _, pat := range rule.FilePatterns {
			if lowerName != "" && strings.Contains(lowerName, strings.ToLower(pat)) {
				fileHits++
				indicators = append(indicators, "file:"+pat)
			}
		}
		depHits := 0
		for _, dep := range rule.Dependencies {
			if depSet[strings.ToLower(dep)] {
				depHits++
				indicators = append(indicators, "dependency:"+dep)
			}
		}

		score := frameworkImportWeight*fraction(importHits, len(rule.Imports)) +
			frameworkIdiomWeight*fraction(idiomHits, len(rule.Idioms)) +
			frameworkFileWeight*fraction(fileHits, len(rule.FilePatterns)) +
			frameworkDepWeight*fraction(depHits, len(rule.Dependencies))
		score *= rule.BaseConfidence
		score = clamp01(score)
		if score <= acceptThreshold {
			continue
		}

		out = append(out, FrameworkMatch{
			RuleID:     rule.ID,
			Name:       rule.Name,
			Category:   rule.Category,
			Confidence: score,
			Indicators: indicators,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// containsImport reports whether the text imports the given specifier via
// an ES import or a require call.
func containsImport(text, specifier string) bool {
	return strings.Contains(text, "'"+specifier+"'") ||
		strings.Contains(text, `"`+specifier+`"`)
}

// defaultFrameworkCatalog returns the built-in framework signatures.
func defaultFrameworkCatalog() []*FrameworkRule {
	return []*FrameworkRule{
		{
			ID:       "SW-FWK-001",
			Name:     "react",
			Category: "frontend",
			Imports:  []string{"react", "react-dom"},
			Idioms: []string{
				`\buseState\s*\(`,
				`\buseEffect\s*\(`,
				`<[A-Z][A-Za-z]*(?:\s|/?>)`,
			},
			FilePatterns:   []string{".jsx", ".tsx"},
			Dependencies:   []string{"react", "react-dom"},
			BaseConfidence: 0.95,
		},
		{
			ID:       "SW-FWK-002",
			Name:     "vue",
			Category: "frontend",
			Imports:  []string{"vue"},
			Idioms: []string{
				`\bdefineComponent\s*\(`,
				`\bref\s*\(\s*`,
				`export\s+default\s*\{\s*(?:name|data|methods)\s*:`,
			},
			FilePatterns:   []string{".vue"},
			Dependencies:   []string{"vue"},
			BaseConfidence: 0.9,
		},
		{
			ID:       "SW-FWK-003",
			Name:     "angular",
			Category: "frontend",
			Imports:  []string{"@angular/core", "@angular/common"},
			Idioms: []string{
				`@Component\s*\(`,
				`@Injectable\s*\(`,
				`@NgModule\s*\(`,
			},
			FilePatterns:   []string{".component.ts", ".service.ts", ".module.ts"},
			Dependencies:   []string{"@angular/core"},
			BaseConfidence: 0.95,
		},
		{
			ID:       "SW-FWK-004",
			Name:     "express",
			Category: "backend",
			Imports:  []string{"express"},
			Idioms: []string{
				`\bapp\.(?:get|post|put|delete|use)\s*\(`,
				`\bexpress\s*\(\s*\)`,
				`\bres\.(?:json|send|status)\s*\(`,
			},
			FilePatterns:   []string{"server", "routes", "app"},
			Dependencies:   []string{"express"},
			BaseConfidence: 0.9,
		},
		{
			ID:       "SW-FWK-005",
			Name:     "nestjs",
			Category: "backend",
			Imports:  []string{"@nestjs/common", "@nestjs/core"},
			Idioms: []string{
				`@Controller\s*\(`,
				`@Module\s*\(`,
				`@Get\s*\(|@Post\s*\(`,
			},
			FilePatterns:   []string{".controller.ts", ".module.ts", ".service.ts"},
			Dependencies:   []string{"@nestjs/core"},
			BaseConfidence: 0.9,
		},
		{
			ID:       "SW-FWK-006",
			Name:     "nextjs",
			Category: "fullstack",
			Imports:  []string{"next", "next/router", "next/link"},
			Idioms: []string{
				`\bgetServerSideProps\b`,
				`\bgetStaticProps\b`,
			},
			FilePatterns:   []string{"pages/", "app/"},
			Dependencies:   []string{"next"},
			BaseConfidence: 0.85,
		},
		{
			ID:       "SW-FWK-007",
			Name:     "jest",
			Category: "testing",
			Imports:  []string{"@jest/globals"},
			Idioms: []string{
				`\bdescribe\s*\(\s*['"]`,
				`\bit\s*\(\s*['"]|\btest\s*\(\s*['"]`,
				`\bexpect\s*\(`,
			},
			FilePatterns:   []string{".test.", ".spec."},
			Dependencies:   []string{"jest"},
			BaseConfidence: 0.85,
		},
		{
			ID:       "SW-FWK-008",
			Name:     "fastify",
			Category: "backend",
			Imports:  []string{"fastify"},
			Idioms: []string{
				`\bfastify\s*\(\s*`,
				`\breply\.(?:send|code)\s*\(`,
			},
			FilePatterns:   []string{"server", "plugins"},
			Dependencies:   []string{"fastify"},
			BaseConfidence: 0.85,
		},
	}
}
