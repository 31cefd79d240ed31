// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package risk

import (
	"fmt"
	"strings"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/extract"
	"github.com/seawall-ai/seawall/services/gate/semantic"
)

// piiNameTokens are variable-name fragments suggesting personal data.
var piiNameTokens = []string{
	"ssn", "socialsecurity", "email", "phone", "address", "birthdate",
	"dateofbirth", "dob", "passport", "license", "creditcard", "cardnumber",
	"nationalid", "taxid", "firstname", "lastname", "fullname",
}

// complianceRisks evaluates the regulated-data axis.
//
// Description:
//
//	Flags PII-named variables (high when global), sensitive functions that
//	also log, any financial-domain match (regulated territory escalates
//	the whole category to high), and storage access co-occurring with
//	detected secrets.
func complianceRisks(sem *semantic.Context) CategoryResult {
	var items []Item

	for _, v := range sem.Variables {
		if !isPIIName(v.Name) {
			continue
		}
		sev := gate.SeverityMedium
		if v.Scope == extract.ScopeGlobal {
			sev = gate.SeverityHigh
		}
		items = append(items, Item{
			Type:        "pii_variable",
			Severity:    sev,
			Likelihood:  gate.LikelihoodMedium,
			Description: fmt.Sprintf("variable %q appears to hold personal data", v.Name),
			Location:    fmt.Sprintf("line %d", v.Line),
			Impact:      "personal data handling falls under privacy regulation",
		})
	}

	for _, f := range sem.Functions {
		if f.ContainsSensitiveLogic && f.Logs {
			items = append(items, Item{
				Type:        "sensitive_data_logging",
				Severity:    gate.SeverityHigh,
				Likelihood:  gate.LikelihoodMedium,
				Description: fmt.Sprintf("function %q logs while handling sensitive data", f.Name),
				Location:    f.Name,
				Impact:      "sensitive values may end up in log sinks",
			})
		}
	}

	for _, b := range sem.Business {
		if b.Domain != "financial" {
			continue
		}
		items = append(items, Item{
			Type:        "regulated_financial_logic",
			Severity:    gate.SeverityHigh,
			Likelihood:  gate.LikelihoodMedium,
			Description: "financial-domain logic present",
			Impact:      "payment and ledger code falls under financial regulation",
		})
		break
	}

	if len(sem.Secrets) > 0 {
		for _, f := range sem.Functions {
			if f.TouchesStorage {
				items = append(items, Item{
					Type:        "secrets_near_storage",
					Severity:    gate.SeverityMedium,
					Likelihood:  gate.LikelihoodMedium,
					Description: fmt.Sprintf("storage access in %q alongside detected secrets", f.Name),
					Location:    f.Name,
					Impact:      "credentials may be persisted unencrypted",
				})
				break
			}
		}
	}

	return finishCategory(gate.CategoryCompliance, items)
}

func isPIIName(name string) bool {
	lower := strings.ToLower(name)
	for _, tok := range piiNameTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
