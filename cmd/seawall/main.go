// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Seawall inspects source code before it is shared with an external AI
// assistant and reports whether it is safe to forward.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seawall-ai/seawall/pkg/logging"
)

// Exit codes shared by all commands.
const (
	// ExitSafe means the analysis found nothing requiring action.
	ExitSafe = 0

	// ExitBlocked means the analysis blocked sharing or requires review.
	ExitBlocked = 1

	// ExitError means the command itself failed.
	ExitError = 2
)

var (
	logLevel string
	logDir   string

	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seawall",
	Short: "Code-safety analysis before AI-assisted sharing",
	Long: `Seawall analyzes a source file and decides whether it is safe to
forward to an external AI assistant.

The pipeline extracts structural elements, matches secret, business-logic,
and framework catalogs, scores four risk axes (security, business,
technical, compliance), and derives threat/behavior/intent reports. All
analysis is local; no code leaves the machine.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"Write JSON logs to this directory in addition to stderr")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{
			Level:   logging.ParseLevel(logLevel),
			LogDir:  logDir,
			Service: "cli",
		})
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Close()
		}
	}
}
