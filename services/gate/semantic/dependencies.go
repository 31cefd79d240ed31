// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package semantic

import (
	"sort"
	"strings"

	"github.com/seawall-ai/seawall/services/gate/extract"
)

// modulePurposes maps module-name fragments to a purpose category. First
// hit wins; order matters for overlapping fragments.
var modulePurposes = []struct {
	purpose   string
	fragments []string
}{
	{"ui", []string{"react", "vue", "angular", "svelte", "dom", "component"}},
	{"http", []string{"axios", "fetch", "http", "request", "got", "superagent"}},
	{"data", []string{"sql", "mongo", "redis", "knex", "sequelize", "prisma", "typeorm", "db"}},
	{"security", []string{"crypto", "bcrypt", "jsonwebtoken", "jwt", "passport", "helmet"}},
	{"testing", []string{"jest", "mocha", "chai", "sinon", "vitest", "supertest"}},
	{"filesystem", []string{"fs", "path", "glob", "chokidar"}},
	{"utility", []string{"lodash", "ramda", "moment", "date-fns", "uuid", "underscore"}},
	{"build", []string{"webpack", "babel", "esbuild", "rollup", "vite"}},
}

// Coupling bucket thresholds over the file's import count.
const (
	couplingLooseMax  = 4
	couplingMediumMax = 10
)

// enrichDependencies classifies every import and computes the file-level
// coupling bucket.
func enrichDependencies(imports []extract.Import) ([]Dependency, Coupling) {
	deps := make([]Dependency, 0, len(imports))
	for _, im := range imports {
		deps = append(deps, Dependency{
			Import:  im,
			Purpose: modulePurpose(im.Module),
		})
	}

	var coupling Coupling
	switch {
	case len(imports) <= couplingLooseMax:
		coupling = CouplingLoose
	case len(imports) <= couplingMediumMax:
		coupling = CouplingMedium
	default:
		coupling = CouplingTight
	}
	return deps, coupling
}

// modulePurpose estimates what a module is for from its name.
func modulePurpose(module string) string {
	lower := strings.ToLower(module)
	// Relative imports are project-internal.
	if strings.HasPrefix(lower, ".") {
		return "internal"
	}
	for _, entry := range modulePurposes {
		for _, frag := range entry.fragments {
			if lower == frag || strings.Contains(lower, frag) {
				return entry.purpose
			}
		}
	}
	return "unknown"
}

// Design-pattern hint tables: characteristic member-name sets.
var patternHintTables = []struct {
	name    string
	markers []string
	minHits int
}{
	{"singleton", []string{"getinstance", "instance"}, 1},
	{"factory", []string{"create", "make", "build", "from"}, 2},
	{"observer", []string{"subscribe", "unsubscribe", "notify", "on", "emit", "addlistener"}, 2},
	{"builder", []string{"with", "set", "build"}, 2},
}

// enrichClass derives design-pattern hints from a class's member names.
func enrichClass(c extract.Class) Class {
	members := make([]string, 0, len(c.Methods)+len(c.Properties))
	for _, m := range c.Methods {
		members = append(members, strings.ToLower(m))
	}
	for _, p := range c.Properties {
		members = append(members, strings.ToLower(p))
	}

	var hints []string
	for _, table := range patternHintTables {
		hits := 0
		for _, marker := range table.markers {
			for _, member := range members {
				if strings.HasPrefix(member, marker) || member == marker {
					hits++
					break
				}
			}
		}
		if hits >= table.minHits {
			hints = append(hints, table.name)
		}
	}
	sort.Strings(hints)

	return Class{Class: c, PatternHints: hints}
}
