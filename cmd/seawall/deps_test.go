// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadDependencies(t *testing.T) {
	path := writeManifest(t, `{
  "name": "demo",
  "dependencies": {"react": "^18.0.0", "axios": "^1.6.0"},
  "devDependencies": {"jest": "^29.0.0", "react": "^18.0.0"}
}`)

	got := readDependencies(path)
	want := []string{"axios", "jest", "react"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readDependencies = %v, want %v", got, want)
	}
}

func TestReadDependenciesMissingFile(t *testing.T) {
	if got := readDependencies(filepath.Join(t.TempDir(), "nope.json")); got != nil {
		t.Errorf("missing file should yield nil, got %v", got)
	}
}

func TestReadDependenciesInvalidJSON(t *testing.T) {
	path := writeManifest(t, "{not json")
	if got := readDependencies(path); got != nil {
		t.Errorf("invalid JSON should yield nil, got %v", got)
	}
}

func TestReadDependenciesEmptyPath(t *testing.T) {
	if got := readDependencies(""); got != nil {
		t.Errorf("empty path should yield nil, got %v", got)
	}
}

func TestReadDependenciesNoDepSections(t *testing.T) {
	path := writeManifest(t, `{"name": "bare"}`)
	if got := readDependencies(path); len(got) != 0 {
		t.Errorf("manifest without dependency sections should yield none, got %v", got)
	}
}
