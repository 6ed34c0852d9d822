package export

import (
	"fmt"

	"payroll-recon/core/engine"
)

// RenderImpact turns a structured flag impact into the narrative text shown
// to reviewers. The engine keeps impacts as data so exports and other
// consumers can reformat them; this is the one place the wording lives.
func RenderImpact(i engine.Impact) string {
	switch i.Kind {
	case engine.ImpactUnderstatedExpense:
		return fmt.Sprintf("Understated expense by $%s", i.Amount.StringFixed(2))
	case engine.ImpactRetroPay:
		return fmt.Sprintf("Potential retroactive pay adjustments (%d employees)", i.Count)
	case engine.ImpactPeriodAllocation:
		return fmt.Sprintf("May indicate prior period corrections (%d employees)", i.Count)
	case engine.ImpactUnknownAccounts:
		return fmt.Sprintf("%d postings under unrecognized account codes", i.Count)
	default:
		return ""
	}
}
