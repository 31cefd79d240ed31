// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package semantic

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/extract"
	"github.com/seawall-ai/seawall/services/gate/patterns"
)

// Enricher builds a Context from raw text by running extraction and the
// three pattern matchers, then deriving per-element attributes.
//
// Thread Safety:
//
//	Immutable after construction; safe for concurrent use.
type Enricher struct {
	extractor  *extract.Extractor
	secrets    *patterns.SecretMatcher
	business   *patterns.BusinessMatcher
	frameworks *patterns.FrameworkMatcher
}

// New creates an Enricher over the given catalog.
func New(catalog *patterns.Catalog) *Enricher {
	return &Enricher{
		extractor:  extract.New(),
		secrets:    patterns.NewSecretMatcher(catalog.Secrets),
		business:   patterns.NewBusinessMatcher(catalog.Business),
		frameworks: patterns.NewFrameworkMatcher(catalog.Frameworks),
	}
}

// Analyze builds the full Context for one unit of source text.
//
// Description:
//
//	Runs the extractor and the three matchers concurrently (each is pure
//	over immutable catalogs), then enriches every extracted element,
//	assembles the risk-factor list, and computes the aggregate complexity.
//	Enrichment happens exactly once; downstream stages read the Context
//	and never re-derive structural facts from the raw text.
//
// Inputs:
//
//	text - The raw source text.
//	fileName - Optional file name; empty disables name-based heuristics.
//	deps - Optional declared dependency names.
//
// Outputs:
//
//	*Context - The enriched context. Never nil.
func (e *Enricher) Analyze(text, fileName string, deps []string) *Context {
	var (
		elements   extract.Result
		secrets    []patterns.SecretMatch
		business   []patterns.BusinessMatch
		frameworks []patterns.FrameworkMatch
	)

	var g errgroup.Group
	g.Go(func() error {
		elements = e.extractor.All(text)
		return nil
	})
	g.Go(func() error {
		secrets = e.secrets.Scan(text, fileName)
		return nil
	})
	g.Go(func() error {
		business = e.business.Scan(text)
		return nil
	})
	g.Go(func() error {
		frameworks = e.frameworks.Scan(text, fileName, deps)
		return nil
	})
	// The stages are pure and never return errors; Wait only joins them.
	_ = g.Wait()

	ctx := &Context{
		FileName:   fileName,
		Exports:    elements.Exports,
		Secrets:    secrets,
		Business:   business,
		Frameworks: frameworks,
	}

	lines := splitLines(text)
	for _, f := range elements.Functions {
		ctx.Functions = append(ctx.Functions, enrichFunction(f))
	}
	for _, v := range elements.Variables {
		ctx.Variables = append(ctx.Variables, enrichVariable(v, lines))
	}
	for _, c := range elements.Classes {
		ctx.Classes = append(ctx.Classes, enrichClass(c))
	}
	ctx.Dependencies, ctx.Coupling = enrichDependencies(elements.Imports)

	if len(frameworks) > 0 {
		primary := frameworks[0]
		ctx.PrimaryFramework = &primary
	}

	ctx.RiskFactors = riskFactors(ctx)
	ctx.Complexity = aggregateComplexity(ctx)
	return ctx
}

// ScanSecrets runs only the secret matcher. The quick-scan path uses it to
// share one catalog and one scoring implementation with the full pipeline.
func (e *Enricher) ScanSecrets(text, fileName string) []patterns.SecretMatch {
	return e.secrets.Scan(text, fileName)
}

// riskFactors flattens the notable findings into summary strings.
func riskFactors(ctx *Context) []string {
	var out []string

	for _, s := range ctx.Secrets {
		out = append(out, fmt.Sprintf("potential %s on line %d (%s)", s.Type, s.Line, s.Masked))
	}
	for _, b := range ctx.Business {
		if b.RiskLevel.Rank() >= gate.RiskMedium.Rank() {
			out = append(out, fmt.Sprintf("proprietary %s logic detected (confidence %.2f)", b.Domain, b.Confidence))
		}
	}
	for _, f := range ctx.Functions {
		if f.ContainsSensitiveLogic {
			out = append(out, fmt.Sprintf("sensitive function %q", f.Name))
		}
	}
	for _, v := range ctx.Variables {
		if v.IsPotentialSecret {
			out = append(out, fmt.Sprintf("credential-shaped variable %q on line %d", v.Name, v.Line))
		}
	}
	if ctx.Coupling == CouplingTight {
		out = append(out, fmt.Sprintf("tight coupling: %d dependencies", len(ctx.Dependencies)))
	}
	return out
}
