// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seawall-ai/seawall/services/gate/pipeline"
)

var (
	quickJSON  bool
	quickQuiet bool
)

var quickCmd = &cobra.Command{
	Use:   "quick [file]",
	Short: "Fast allow/block scan without the full pipeline",
	Long: `Run the reduced idiom checks (secret-like tokens, dynamic code
execution, dangerous-module mentions) for a fast allow/block signal.

The quick scan shares its dynamic-execution check with the full pipeline,
so the two paths never give contradictory block verdicts on that idiom.

Exit Codes:
  0 = Nothing flagged
  1 = Blocked or risks flagged
  2 = Error`,
	Args: cobra.MaximumNArgs(1),
	Run:  runQuickCommand,
}

func init() {
	quickCmd.Flags().BoolVar(&quickJSON, "json", false,
		"Output as JSON")
	quickCmd.Flags().BoolVar(&quickQuiet, "quiet", false,
		"Only exit code, no output")

	rootCmd.AddCommand(quickCmd)
}

func runQuickCommand(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unit, err := readSourceUnit(args, "", "")
	if err != nil {
		outputError("Failed to read input", err, quickJSON)
		os.Exit(ExitError)
	}

	analyzer := pipeline.New(loadCatalog(""))
	result, err := analyzer.QuickScan(ctx, unit)
	if err != nil {
		outputError("Quick scan failed", err, quickJSON)
		os.Exit(ExitError)
	}

	if !quickQuiet {
		if quickJSON {
			outputJSON(result)
		} else {
			renderQuick(result, stdoutIsTTY())
		}
	}

	if result.ShouldBlock || len(result.QuickRisks) > 0 {
		os.Exit(ExitBlocked)
	}
	os.Exit(ExitSafe)
}
