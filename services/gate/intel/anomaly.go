// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package intel

import (
	"github.com/seawall-ai/seawall/services/gate/risk"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// anomalyDetector is the extension point for anomaly rules. The four
// built-in detectors return nothing yet; the scoring contract below must
// survive when rules are added.
type anomalyDetector func(sem *semantic.Context, rr *risk.Result) []Anomaly

var anomalyDetectors = []anomalyDetector{
	detectStructuralAnomalies,
	detectBehavioralAnomalies,
	detectPatternAnomalies,
	detectStatisticalAnomalies,
}

// Anomaly scoring contract.
const (
	anomalyScorePerHit        = 0.1
	anomalyConfidenceWithHits = 0.7
	anomalyConfidenceEmpty    = 0.3
)

// detectAnomalies runs all detectors and applies the scoring contract.
func detectAnomalies(sem *semantic.Context, rr *risk.Result) AnomalyReport {
	var anomalies []Anomaly
	for _, detect := range anomalyDetectors {
		anomalies = append(anomalies, detect(sem, rr)...)
	}

	confidence := anomalyConfidenceEmpty
	if len(anomalies) > 0 {
		confidence = anomalyConfidenceWithHits
	}
	return AnomalyReport{
		Anomalies:  anomalies,
		Score:      anomalyScorePerHit * float64(len(anomalies)),
		Confidence: confidence,
	}
}

func detectStructuralAnomalies(*semantic.Context, *risk.Result) []Anomaly { return nil }

func detectBehavioralAnomalies(*semantic.Context, *risk.Result) []Anomaly { return nil }

func detectPatternAnomalies(*semantic.Context, *risk.Result) []Anomaly { return nil }

func detectStatisticalAnomalies(*semantic.Context, *risk.Result) []Anomaly { return nil }
