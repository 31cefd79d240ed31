// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/pipeline"
)

// Level styles for terminal output. Color is disabled automatically when
// stdout is not a TTY.
var (
	styleCritical = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	styleMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleLow      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleHeading  = lipgloss.NewStyle().Bold(true)
	styleDim      = lipgloss.NewStyle().Faint(true)
)

func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderLevel colors a risk level for TTY output.
func renderLevel(level gate.RiskLevel, tty bool) string {
	s := strings.ToUpper(string(level))
	if !tty {
		return s
	}
	switch level {
	case gate.RiskCritical:
		return styleCritical.Render(s)
	case gate.RiskHigh:
		return styleHigh.Render(s)
	case gate.RiskMedium:
		return styleMedium.Render(s)
	default:
		return styleLow.Render(s)
	}
}

func heading(s string, tty bool) string {
	if !tty {
		return s
	}
	return styleHeading.Render(s)
}

func dim(s string, tty bool) string {
	if !tty {
		return s
	}
	return styleDim.Render(s)
}

// renderResult prints the comprehensive result as human-readable text.
func renderResult(res *pipeline.Result, tty bool) {
	fmt.Printf("%s %s\n", heading("Overall Risk:", tty), renderLevel(res.Risk.Overall.Level, tty))
	fmt.Printf("Score %d/100, confidence %d%%\n", res.Risk.Overall.Score, res.Risk.Overall.Confidence)
	if res.Risk.Overall.ShouldBlock {
		fmt.Println(renderLevel(gate.RiskCritical, tty) + " sharing blocked")
	} else if res.Risk.Overall.RequiresReview {
		fmt.Println(renderLevel(gate.RiskHigh, tty) + " review required")
	}
	fmt.Println()

	fmt.Println(heading("Categories:", tty))
	for _, cr := range res.Risk.Categories {
		fmt.Printf("  %-10s %s (%d) %s\n",
			cr.Category, renderLevel(cr.Level, tty), cr.Score, dim(cr.Summary, tty))
	}
	fmt.Println()

	if len(res.Summary.CriticalIssues) > 0 {
		fmt.Println(heading("Critical Issues:", tty))
		for _, c := range res.Summary.CriticalIssues {
			fmt.Printf("  !!! %s\n", c)
		}
		fmt.Println()
	}

	if len(res.Summary.TopFindings) > 0 {
		fmt.Println(heading("Top Findings:", tty))
		for _, f := range res.Summary.TopFindings {
			fmt.Printf("  - %s\n", f)
		}
		fmt.Println()
	}

	printBucket := func(name string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Println(heading(name+":", tty))
		for _, line := range lines {
			fmt.Printf("  - %s\n", line)
		}
	}
	printBucket("Immediate", res.Recommendations.Immediate)
	printBucket("Short-term", res.Recommendations.ShortTerm)
	printBucket("Long-term", res.Recommendations.LongTerm)
	printBucket("Strategic", res.Recommendations.Strategic)
	fmt.Println()

	fmt.Printf("%s\n", res.Risk.Overall.Recommendation)
	fmt.Println(dim(fmt.Sprintf("analysis %s, catalog %s, %d bytes",
		res.Metadata.AnalysisID, res.Metadata.CatalogVersion, res.Metadata.CodeLength), tty))
}

// renderQuick prints the quick-scan result as human-readable text.
func renderQuick(res *pipeline.QuickResult, tty bool) {
	fmt.Printf("%s %s\n", heading("Quick Risk:", tty), renderLevel(res.RiskLevel, tty))
	if res.ShouldBlock {
		fmt.Println(renderLevel(gate.RiskCritical, tty) + " sharing blocked")
	}
	for _, r := range res.QuickRisks {
		fmt.Printf("  - %s\n", r)
	}
	for _, r := range res.QuickRecommendations {
		fmt.Printf("  > %s\n", r)
	}
	fmt.Println(dim(fmt.Sprintf("%d lines, %d chars, %s",
		res.Metrics.Lines, res.Metrics.Characters, res.ProcessingTime), tty))
}
