// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/patterns"
	"github.com/seawall-ai/seawall/services/gate/pipeline"
)

var (
	analyzeJSON     bool
	analyzeQuiet    bool
	analyzeDeps     string
	analyzeCatalog  string
	analyzeFileName string
	analyzeTimeout  int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the full safety analysis over one source file",
	Long: `Run the comprehensive analysis pipeline over one source file.

Reads the file argument, or stdin when the argument is "-" or omitted.
Dependency names from a package manifest sharpen framework detection;
invalid manifests are ignored.

Examples:
  seawall analyze src/billing.js
  seawall analyze --deps package.json src/billing.js
  cat snippet.js | seawall analyze --file-name snippet.js
  seawall analyze --json src/auth.ts
  seawall analyze --catalog rules.yaml src/auth.ts

Exit Codes:
  0 = Safe to share
  1 = Blocked or review required
  2 = Error (unreadable input, analysis failure)`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyzeCommand,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false,
		"Output as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeQuiet, "quiet", false,
		"Only exit code, no output")
	analyzeCmd.Flags().StringVar(&analyzeDeps, "deps", "",
		"Path to a package.json for dependency names")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "",
		"Path to a YAML catalog overlay extending the built-in rules")
	analyzeCmd.Flags().StringVar(&analyzeFileName, "file-name", "",
		"File name to use for heuristics when reading stdin")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 30,
		"Total timeout in seconds")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCommand(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(analyzeTimeout)*time.Second)
	defer cancel()

	unit, err := readSourceUnit(args, analyzeDeps, analyzeFileName)
	if err != nil {
		outputError("Failed to read input", err, analyzeJSON)
		os.Exit(ExitError)
	}

	analyzer := pipeline.New(loadCatalog(analyzeCatalog))
	result, err := analyzer.Analyze(ctx, unit)
	if err != nil {
		outputError("Analysis failed", err, analyzeJSON)
		os.Exit(ExitError)
	}

	logger.Info("analysis complete",
		"file", unit.FileName,
		"level", result.Risk.Overall.Level,
		"blocked", result.Risk.Overall.ShouldBlock,
	)

	if !analyzeQuiet {
		if analyzeJSON {
			outputJSON(result)
		} else {
			renderResult(result, stdoutIsTTY())
		}
	}

	if result.Risk.Overall.ShouldBlock || result.Risk.Overall.RequiresReview {
		os.Exit(ExitBlocked)
	}
	os.Exit(ExitSafe)
}

// readSourceUnit builds the analysis input from the file argument or stdin.
func readSourceUnit(args []string, depsPath, fileName string) (gate.SourceUnit, error) {
	unit := gate.SourceUnit{
		FileName:     fileName,
		Dependencies: readDependencies(depsPath),
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return unit, fmt.Errorf("read stdin: %w", err)
		}
		unit.Text = string(data)
		return unit, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return unit, fmt.Errorf("read %s: %w", args[0], err)
	}
	unit.Text = string(data)
	if unit.FileName == "" {
		unit.FileName = filepath.Base(args[0])
	}
	return unit, nil
}

// loadCatalog builds the rule catalog, applying an overlay file when given.
// An unreadable overlay degrades to the defaults.
func loadCatalog(path string) *patterns.Catalog {
	if path == "" {
		return patterns.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("catalog overlay unreadable, using defaults",
			"path", path, "error", err.Error())
		return patterns.Default()
	}
	return patterns.WithOverlay(data)
}

func outputError(msg string, err error, asJSON bool) {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(map[string]interface{}{
			"success": false,
			"error":   fmt.Sprintf("%s: %v", msg, err),
		})
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}

func outputJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
		os.Exit(ExitError)
	}
}
