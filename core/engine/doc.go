// Package engine reconciles a payroll register against general-ledger
// postings for a single pay period.
//
// The engine consumes two normalized tables (payroll records, GL postings)
// and produces a report of monetary variances, advisory flags, and a
// pass/fail summary for month-end close validation.
//
// # Checks
//
// Reconciliation is an ordered sequence of independent checks:
//
//  1. Totals: gross pay, net pay, and total deductions against their GL
//     counterparts (salary expense, payroll cash, liability accounts).
//  2. Pensions: employee deductions vs pension payable; employer
//     contributions vs employer pension expense (shortfall also flagged).
//  3. Benefit accruals: employer benefits vs benefits expense; any
//     discrepancy emits both a flag and a High variance.
//  4. Retro adjustments: payroll-side scan for unusually high bonus or
//     overtime values. Advisory flags only.
//  5. Cost-center balancing: gross pay per cost center vs salary expense
//     debits for the same cost center.
//
// Each check is a pure function over the two tables returning its own
// findings; the engine concatenates them in check order, so checks can be
// tested in isolation and the report ordering is deterministic.
//
// # Amounts and tolerance
//
// All monetary amounts are decimal (shopspring/decimal). A comparison only
// produces a variance when the absolute difference strictly exceeds 0.01,
// the rounding-noise threshold for two-decimal currency. Reported amounts
// are rounded to 2 decimals.
//
// # Concurrency
//
// An Engine holds only its input tables and Reconcile builds all state
// locally, so a single instance may be reconciled repeatedly with identical
// results. For server use, construct one Engine per request.
package engine
