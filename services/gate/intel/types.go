// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package intel derives threat, behavior, intent, and anomaly reports from
// the enriched context and the risk assessment.
//
// # Description
//
// The intelligence stage runs after risk analysis. The threat scan is the
// only sub-report that reads the raw text (known-threat and malicious
// idioms); behavior, intent, and anomaly derive solely from the semantic
// context and the risk result. Every sub-report degrades to an empty,
// low-confidence result rather than failing.
//
// # Thread Safety
//
// The Analyzer is immutable after construction and safe for concurrent use.
package intel

import (
	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// ThreatHit is one known-threat or malicious idiom found in the text.
type ThreatHit struct {
	// Name identifies the idiom (sql_injection, reverse_shell, ...).
	Name string `json:"name"`

	// Category groups the idiom (injection, command_execution,
	// cross_site_scripting, path_traversal, obfuscation, reverse_shell,
	// exfiltration, mining).
	Category string `json:"category"`

	// Severity tags the idiom low, medium, or high.
	Severity gate.Severity `json:"severity"`

	// Line is the 1-based line of the first occurrence.
	Line int `json:"line"`
}

// ThreatReport is the threat sub-report.
type ThreatReport struct {
	// Level is critical above 2 high-severity hits, high on any hit,
	// else low.
	Level gate.RiskLevel `json:"level"`

	// Hits are the idioms found, in catalog order.
	Hits []ThreatHit `json:"hits"`
}

// BehaviorFlag is one notable behavioral observation.
type BehaviorFlag struct {
	// Type names the observation (excessive_network_requests, ...).
	Type string `json:"type"`

	// Confidence is the fixed confidence of the observation.
	Confidence float64 `json:"confidence"`
}

// BehaviorReport is the behavior sub-report.
type BehaviorReport struct {
	// Groups maps each non-empty pattern group (access, communication,
	// data_processing, resource, time_based) to the function names in it.
	Groups map[string][]string `json:"groups"`

	// Flags are notable behavioral observations.
	Flags []BehaviorFlag `json:"flags"`

	// Score is 0.2 per non-empty group, capped at 1.0.
	Score float64 `json:"score"`
}

// IntentReport is the intent sub-report.
type IntentReport struct {
	// PrimaryPurpose is the majority semantic role among functions.
	PrimaryPurpose semantic.Role `json:"primary_purpose"`

	// Legitimacy estimates in [0,1] how aligned the code looks with a
	// legitimate purpose.
	Legitimacy float64 `json:"legitimacy"`

	// SuspicionIndicators are textual flags lowering trust.
	SuspicionIndicators []string `json:"suspicion_indicators"`
}

// Anomaly is one detected deviation. The default detectors return none;
// the type is the extension point for future rules.
type Anomaly struct {
	// Kind is the anomaly class: structural, behavioral, pattern, or
	// statistical.
	Kind string `json:"kind"`

	// Description explains the deviation.
	Description string `json:"description"`
}

// AnomalyReport is the anomaly sub-report.
type AnomalyReport struct {
	// Anomalies are the detected deviations across all detectors.
	Anomalies []Anomaly `json:"anomalies"`

	// Score is 0.1 per anomaly.
	Score float64 `json:"score"`

	// Confidence is 0.7 when any anomaly exists, else 0.3.
	Confidence float64 `json:"confidence"`
}

// Result is the full intelligence analysis of one source unit.
type Result struct {
	Threat   ThreatReport   `json:"threat"`
	Behavior BehaviorReport `json:"behavior"`
	Intent   IntentReport   `json:"intent"`
	Anomaly  AnomalyReport  `json:"anomaly"`
}
