package engine

import "github.com/shopspring/decimal"

// check is one reconciliation routine. Checks only read the input tables and
// return their own findings; they never see each other's output.
type check func(payroll []PayrollRecord, gl []GLPosting) ([]Variance, []Flag)

// checks run in a fixed order. The order only affects report readability;
// every check is independent.
var checks = []check{
	checkTotals,
	checkPensions,
	checkBenefitAccruals,
	checkRetroAdjustments,
	checkCostCenters,
}

// Engine reconciles one payroll register against one set of GL postings.
// It holds nothing but its two input tables, so Reconcile is idempotent and
// instances are cheap enough to construct per request. An Engine must not be
// shared across concurrent reconciliations; build one per run.
type Engine struct {
	payroll []PayrollRecord
	gl      []GLPosting
}

// New creates an engine over the given tables. No validation happens here;
// the tables are taken as delivered by the upstream collaborator.
func New(payroll []PayrollRecord, gl []GLPosting) *Engine {
	return &Engine{payroll: payroll, gl: gl}
}

// Reconcile runs every check in order and aggregates the findings into a
// report. Empty input tables are valid: all sums are zero and only
// one-sided amounts produce variances.
func (e *Engine) Reconcile() *Report {
	variances := make([]Variance, 0)
	flags := make([]Flag, 0)

	for _, run := range checks {
		v, f := run(e.payroll, e.gl)
		variances = append(variances, v...)
		flags = append(flags, f...)
	}

	// Chart-of-accounts validation: postings under unrecognized codes never
	// contribute to any sum above, so make that omission explicit instead of
	// letting it pass silently.
	if unknown := countUnknownAccounts(e.gl); unknown > 0 {
		flags = append(flags, Flag{
			Category: "Data Quality",
			Issue:    "GL postings reference account codes outside the chart-of-accounts contract",
			Impact:   Impact{Kind: ImpactUnknownAccounts, Count: unknown},
			Action:   "Verify the chart-of-accounts mapping for the unrecognized postings",
		})
	}

	return &Report{
		Summary:   summarize(variances, flags),
		Variances: variances,
		Flags:     flags,
	}
}

func countUnknownAccounts(postings []GLPosting) int {
	n := 0
	for _, p := range postings {
		if !p.Account.Known() {
			n++
		}
	}
	return n
}

func summarize(variances []Variance, flags []Flag) Summary {
	totalAmount := decimal.Zero
	high := 0
	for _, v := range variances {
		totalAmount = totalAmount.Add(v.Variance.Abs())
		if v.Severity == SeverityHigh {
			high++
		}
	}

	status := StatusPassed
	if len(variances) > 0 {
		status = StatusFailed
	}

	return Summary{
		TotalVariances:      len(variances),
		HighSeverityCount:   high,
		TotalVarianceAmount: totalAmount.Round(2),
		TotalFlags:          len(flags),
		Status:              status,
	}
}
