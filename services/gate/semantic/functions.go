// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package semantic

import (
	"strings"

	"github.com/seawall-ai/seawall/services/gate/extract"
)

// Role name-token tables. First table that hits wins, in the order
// business, ui, infrastructure, utility.
var (
	businessRoleTokens = []string{
		"calculate", "price", "pricing", "order", "payment", "billing",
		"invoice", "discount", "tax", "checkout", "subscription", "quote",
		"process", "approve",
	}
	uiRoleTokens = []string{
		"render", "display", "show", "hide", "draw", "toggle", "click",
		"hover", "scroll", "animate", "component", "view", "modal",
	}
	infraRoleTokens = []string{
		"connect", "init", "setup", "configure", "migrate", "deploy",
		"fetch", "request", "load", "save", "sync", "listen", "start",
		"stop", "register",
	}
	utilityRoleTokens = []string{
		"format", "parse", "convert", "normalize", "merge", "clone",
		"debounce", "throttle", "memoize", "helper", "util",
	}
)

// Side-effect idiom tables scanned over function bodies.
var (
	externalCallTokens = []string{
		"fetch(", "axios", "http.", "https.", "xmlhttprequest",
		"$.ajax", ".get(\"http", ".get('http", "websocket", "sendbeacon",
		"grpc", "apiclient",
	}
	stateMutationTokens = []string{
		"this.", "window.", "document.", "global.", "localstorage",
		"sessionstorage", ".push(", ".splice(", ".pop(", ".shift(",
		"delete ",
	}
	loggingTokens = []string{
		"console.log", "console.error", "console.warn", "console.info",
		"logger.", "log.info", "log.error", "log.debug",
	}
	storageTokens = []string{
		"localstorage", "sessionstorage", "indexeddb", "writefile",
		"readfile", "db.", "database", "collection.", "repository.",
		".save(", ".insert(", ".query(",
	}
)

// enrichFunction derives all per-function attributes from the extracted
// base. Called exactly once per function per pipeline run.
func enrichFunction(f extract.Function) Function {
	body := strings.ToLower(f.Body)
	return Function{
		Function:           f,
		Role:               classifyRole(f.Name),
		MakesExternalCalls: containsAny(body, externalCallTokens),
		MutatesState:       containsAny(body, stateMutationTokens),
		Logs:               containsAny(body, loggingTokens),
		TouchesStorage:     containsAny(body, storageTokens),
		Cyclomatic:         cyclomaticComplexity(f.Body),
		Cognitive:          cognitiveComplexity(f.Body),
	}
}

// classifyRole maps a function name to its semantic role by token
// scanning.
func classifyRole(name string) Role {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, businessRoleTokens):
		return RoleBusiness
	case containsAny(lower, uiRoleTokens):
		return RoleUI
	case containsAny(lower, infraRoleTokens):
		return RoleInfrastructure
	case containsAny(lower, utilityRoleTokens):
		return RoleUtility
	default:
		return RoleUnknown
	}
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
