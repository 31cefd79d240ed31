// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package intel

import (
	"math"
	"strings"

	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// Behavior pattern groups and their function-name vocabulary.
var behaviorGroups = []struct {
	name   string
	tokens []string
}{
	{"access", []string{"read", "get", "load", "fetch", "open", "find", "query"}},
	{"communication", []string{"send", "post", "request", "emit", "publish", "connect", "fetch"}},
	{"data_processing", []string{"parse", "transform", "convert", "map", "filter", "reduce", "process", "calculate"}},
	{"resource", []string{"alloc", "create", "spawn", "fork", "write", "save", "delete", "close"}},
	{"time_based", []string{"settimeout", "setinterval", "schedule", "cron", "delay", "debounce", "throttle"}},
}

// excessiveNetworkThreshold: more network-flavored functions than this
// raises the excessive_network_requests flag.
const excessiveNetworkThreshold = 5

// excessiveNetworkConfidence is the fixed confidence of that flag.
const excessiveNetworkConfidence = 0.7

// behaviorScorePerGroup is the score contribution of each non-empty group.
const behaviorScorePerGroup = 0.2

// profileBehavior buckets the detected functions into pattern groups and
// scores the behavioral surface.
func profileBehavior(sem *semantic.Context) BehaviorReport {
	groups := make(map[string][]string)
	for _, f := range sem.Functions {
		lower := strings.ToLower(f.Name)
		for _, g := range behaviorGroups {
			for _, tok := range g.tokens {
				if strings.Contains(lower, tok) {
					groups[g.name] = append(groups[g.name], f.Name)
					break
				}
			}
		}
	}

	var flags []BehaviorFlag
	networkFns := 0
	for _, f := range sem.Functions {
		if f.MakesExternalCalls {
			networkFns++
		}
	}
	if networkFns > excessiveNetworkThreshold {
		flags = append(flags, BehaviorFlag{
			Type:       "excessive_network_requests",
			Confidence: excessiveNetworkConfidence,
		})
	}

	score := math.Min(behaviorScorePerGroup*float64(len(groups)), 1.0)
	return BehaviorReport{Groups: groups, Flags: flags, Score: score}
}
