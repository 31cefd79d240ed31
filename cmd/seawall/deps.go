// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"os"
	"sort"
)

// packageManifest is the subset of a package.json the analyzer cares about.
type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// readDependencies loads declared dependency names from a package manifest.
//
// Description:
//
//	Reads a package.json-style file and returns the sorted union of
//	dependencies and devDependencies. A missing file or invalid JSON
//	degrades to an empty list, never an error: dependency names only
//	sharpen framework detection and their absence just lowers confidence.
func readDependencies(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil
	}

	seen := make(map[string]bool, len(manifest.Dependencies)+len(manifest.DevDependencies))
	var deps []string
	for name := range manifest.Dependencies {
		if !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}
	for name := range manifest.DevDependencies {
		if !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}
	sort.Strings(deps)
	return deps
}
