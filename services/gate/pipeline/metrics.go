// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package pipeline

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for analysis operations.
var (
	tracer = otel.Tracer("seawall.pipeline")
	meter  = otel.Meter("seawall.pipeline")
)

// Metrics for analysis operations.
var (
	analyzeLatency metric.Float64Histogram
	analyzeTotal   metric.Int64Counter
	blockedTotal   metric.Int64Counter
	findingsFound  metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		analyzeLatency, err = meter.Float64Histogram(
			"gate_analyze_duration_seconds",
			metric.WithDescription("Duration of analysis operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		analyzeTotal, err = meter.Int64Counter(
			"gate_analyze_total",
			metric.WithDescription("Total number of analysis operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		blockedTotal, err = meter.Int64Counter(
			"gate_blocked_total",
			metric.WithDescription("Total analyses that produced a block verdict"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		findingsFound, err = meter.Int64Histogram(
			"gate_findings",
			metric.WithDescription("Number of risk findings per analysis"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startAnalyzeSpan creates a span for one analysis.
func startAnalyzeSpan(ctx context.Context, mode, fileName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Analyzer.Analyze",
		trace.WithAttributes(
			attribute.String("gate.mode", mode),
			attribute.String("gate.file_name", fileName),
		),
	)
}

// setAnalyzeSpanResult sets the result attributes on an analysis span.
func setAnalyzeSpanResult(span trace.Span, level string, blocked bool, findings int) {
	span.SetAttributes(
		attribute.String("gate.level", level),
		attribute.Bool("gate.blocked", blocked),
		attribute.Int("gate.findings", findings),
	)
}

// recordAnalyzeMetrics records metrics for one analysis.
func recordAnalyzeMetrics(ctx context.Context, mode string, duration time.Duration, findings int, blocked bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
	)

	analyzeLatency.Record(ctx, duration.Seconds(), attrs)
	analyzeTotal.Add(ctx, 1, attrs)
	findingsFound.Record(ctx, int64(findings), attrs)
	if blocked {
		blockedTotal.Add(ctx, 1, attrs)
	}
}
