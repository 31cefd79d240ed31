// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package patterns

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the built-in catalog with all regexes compiled.
//
// Description:
//
//	Builds the three catalogs from the compiled-in rule tables. Call once
//	at startup and inject the result; the catalog is never mutated after
//	construction.
//
// Outputs:
//
//	*Catalog - The compiled catalog.
func Default() *Catalog {
	c := &Catalog{
		Secrets:    defaultSecretCatalog(),
		Business:   defaultBusinessCatalog(),
		Frameworks: defaultFrameworkCatalog(),
	}
	c.compile()
	return c
}

// Overlay is the YAML shape for catalog extensions. Overlay rules are
// appended to the defaults; they cannot remove or replace built-ins.
type Overlay struct {
	Secrets    []*SecretRule    `yaml:"secrets"`
	Business   []*BusinessRule  `yaml:"business"`
	Frameworks []*FrameworkRule `yaml:"frameworks"`
}

// WithOverlay returns a new catalog extending the defaults with rules
// parsed from YAML.
//
// Description:
//
//	Parses the overlay document, validates each entry (required ids and
//	patterns, confidence within [0,1]), and appends the valid entries to
//	a fresh default catalog. Invalid entries and uncompilable regexes are
//	skipped, never fatal: a bad overlay degrades to the defaults.
//
// Inputs:
//
//	data - The YAML overlay document. Empty or unparseable data yields
//	       the default catalog.
//
// Outputs:
//
//	*Catalog - The combined, compiled catalog.
func WithOverlay(data []byte) *Catalog {
	c := Default()
	if len(data) == 0 {
		return c
	}

	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return c
	}

	v := validator.New()
	for _, r := range overlay.Secrets {
		if r == nil || v.Struct(r) != nil {
			continue
		}
		c.Secrets = append(c.Secrets, r)
	}
	for _, r := range overlay.Business {
		if r == nil || v.Struct(r) != nil {
			continue
		}
		c.Business = append(c.Business, r)
	}
	for _, r := range overlay.Frameworks {
		if r == nil || v.Struct(r) != nil {
			continue
		}
		c.Frameworks = append(c.Frameworks, r)
	}

	c.compile()
	return c
}

// compile compiles every rule regex. Rules whose primary pattern does not
// compile are dropped; uncompilable hints and idioms are skipped
// individually.
func (c *Catalog) compile() {
	secrets := c.Secrets[:0]
	for _, r := range c.Secrets {
		if r.compiled == nil {
			compiled, err := regexp.Compile(r.Pattern)
			if err != nil {
				continue
			}
			r.compiled = compiled
			for _, hint := range r.FalsePositiveHints {
				if h, err := regexp.Compile(hint); err == nil {
					r.compiledHints = append(r.compiledHints, h)
				}
			}
		}
		secrets = append(secrets, r)
	}
	c.Secrets = secrets

	for _, r := range c.Business {
		if len(r.compiledPhrases) == 0 {
			for _, p := range r.Phrases {
				if re, err := regexp.Compile(p); err == nil {
					r.compiledPhrases = append(r.compiledPhrases, re)
				}
			}
		}
	}

	for _, r := range c.Frameworks {
		if len(r.compiledIdioms) == 0 {
			for _, idiom := range r.Idioms {
				if re, err := regexp.Compile(idiom); err == nil {
					r.compiledIdioms = append(r.compiledIdioms, re)
				}
			}
		}
	}
}
