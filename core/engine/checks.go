package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// tolerance absorbs two-decimal rounding noise. A difference of exactly
	// 0.01 is within tolerance; the comparison is strictly greater-than.
	tolerance = decimal.RequireFromString("0.01")

	// grossSeverityThreshold splits gross-pay variances between Medium and
	// High, again strictly greater-than.
	grossSeverityThreshold = decimal.RequireFromString("100")

	retroBonusThreshold    = decimal.RequireFromString("1000")
	retroOvertimeThreshold = decimal.RequireFromString("400")
)

func outsideTolerance(diff decimal.Decimal) bool {
	return diff.Abs().GreaterThan(tolerance)
}

// newVariance builds a report-ready variance record with all amounts rounded
// to 2 decimals. The signed difference is payroll minus GL.
func newVariance(typ string, payrollAmount, glAmount decimal.Decimal, severity Severity) Variance {
	return Variance{
		Type:          typ,
		PayrollAmount: payrollAmount.Round(2),
		GLAmount:      glAmount.Round(2),
		Variance:      payrollAmount.Sub(glAmount).Round(2),
		Severity:      severity,
	}
}

func sumPayroll(rows []PayrollRecord, field func(PayrollRecord) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(field(r))
	}
	return total
}

func sumDebit(postings []GLPosting, account Account) decimal.Decimal {
	total := decimal.Zero
	for _, p := range postings {
		if p.Account == account {
			total = total.Add(p.Debit)
		}
	}
	return total
}

func sumCredit(postings []GLPosting, accounts ...Account) decimal.Decimal {
	total := decimal.Zero
	for _, p := range postings {
		for _, a := range accounts {
			if p.Account == a {
				total = total.Add(p.Credit)
				break
			}
		}
	}
	return total
}

// checkTotals compares the three period-level totals: gross pay against the
// salary expense debits, net pay against the payroll cash credits, and total
// deductions against the combined liability credits.
func checkTotals(payroll []PayrollRecord, gl []GLPosting) ([]Variance, []Flag) {
	var variances []Variance

	totalGross := sumPayroll(payroll, func(r PayrollRecord) decimal.Decimal { return r.GrossPay })
	totalNet := sumPayroll(payroll, func(r PayrollRecord) decimal.Decimal { return r.NetPay })
	totalDeductions := sumPayroll(payroll, func(r PayrollRecord) decimal.Decimal { return r.TotalDeductions })

	glSalary := sumDebit(gl, AccountSalaryExpense)
	glCash := sumCredit(gl, AccountPayrollCash)
	glLiabilities := sumCredit(gl, AccountPensionPayable, AccountHealthInsurancePayable, AccountTaxPayable)

	if diff := totalGross.Sub(glSalary); outsideTolerance(diff) {
		severity := SeverityMedium
		if diff.Abs().GreaterThan(grossSeverityThreshold) {
			severity = SeverityHigh
		}
		variances = append(variances, newVariance("Gross Pay Variance", totalGross, glSalary, severity))
	}

	if diff := totalNet.Sub(glCash); outsideTolerance(diff) {
		variances = append(variances, newVariance("Net Pay Variance", totalNet, glCash, SeverityHigh))
	}

	if diff := totalDeductions.Sub(glLiabilities); outsideTolerance(diff) {
		variances = append(variances, newVariance("Total Deductions Variance", totalDeductions, glLiabilities, SeverityMedium))
	}

	return variances, nil
}

// checkPensions validates the employee pension deduction against the pension
// payable credits, and the employer contribution against the employer pension
// expense debits. An employer-side shortfall additionally raises a flag: that
// expense must be accrued before close.
func checkPensions(payroll []PayrollRecord, gl []GLPosting) ([]Variance, []Flag) {
	var (
		variances []Variance
		flags     []Flag
	)

	employeePension := sumPayroll(payroll, func(r PayrollRecord) decimal.Decimal { return r.PensionDeduction })
	glPayable := sumCredit(gl, AccountPensionPayable)
	if diff := employeePension.Sub(glPayable); outsideTolerance(diff) {
		variances = append(variances, newVariance("Pension Deduction Variance", employeePension, glPayable, SeverityHigh))
	}

	employerPension := sumPayroll(payroll, func(r PayrollRecord) decimal.Decimal { return r.EmployerPension })
	glExpense := sumDebit(gl, AccountEmployerPensionExpense)
	if diff := employerPension.Sub(glExpense); outsideTolerance(diff) {
		variances = append(variances, newVariance("Employer Pension Contribution Variance", employerPension, glExpense, SeverityHigh))
		flags = append(flags, Flag{
			Category: "Pension",
			Issue:    "Employer pension contribution not fully accrued in GL",
			Impact:   Impact{Kind: ImpactUnderstatedExpense, Amount: diff.Abs().Round(2)},
			Action:   "Post accrual adjustment before month-end close",
		})
	}

	return variances, flags
}

// checkBenefitAccruals compares employer benefits in the register against the
// benefits expense debits. Benefit accruals are the posting most commonly
// omitted outright, so any discrepancy is treated as an audit-worthy
// understatement: the check always emits the flag and the variance together.
func checkBenefitAccruals(payroll []PayrollRecord, gl []GLPosting) ([]Variance, []Flag) {
	employerBenefits := sumPayroll(payroll, func(r PayrollRecord) decimal.Decimal { return r.EmployerBenefits })
	glExpense := sumDebit(gl, AccountEmployerBenefitsExpense)

	diff := employerBenefits.Sub(glExpense)
	if !outsideTolerance(diff) {
		return nil, nil
	}

	flags := []Flag{{
		Category: "Benefits Accrual",
		Issue:    "Missing or incomplete employer benefit accruals",
		Impact:   Impact{Kind: ImpactUnderstatedExpense, Amount: diff.Abs().Round(2)},
		Action:   "Review and post missing benefit accrual entries",
	}}
	variances := []Variance{
		newVariance("Employer Benefits Variance", employerBenefits, glExpense, SeverityHigh),
	}
	return variances, flags
}

// checkRetroAdjustments is a payroll-side anomaly scan, not a comparison
// against GL. Unusually large bonus or overtime values often turn out to be
// retroactive pay for a prior period; each non-empty group yields one
// advisory flag and no variances.
func checkRetroAdjustments(payroll []PayrollRecord, _ []GLPosting) ([]Variance, []Flag) {
	var highBonus, highOvertime int
	for _, r := range payroll {
		if r.Bonus.GreaterThan(retroBonusThreshold) {
			highBonus++
		}
		if r.Overtime.GreaterThan(retroOvertimeThreshold) {
			highOvertime++
		}
	}

	var flags []Flag
	if highBonus > 0 {
		flags = append(flags, Flag{
			Category: "Retro Adjustment",
			Issue:    "Employees with high bonuses (>$1,000)",
			Impact:   Impact{Kind: ImpactRetroPay, Count: highBonus},
			Action:   "Verify if bonuses relate to prior periods and adjust accruals",
		})
	}
	if highOvertime > 0 {
		flags = append(flags, Flag{
			Category: "Retro Adjustment",
			Issue:    "Employees with high overtime (>$400)",
			Impact:   Impact{Kind: ImpactPeriodAllocation, Count: highOvertime},
			Action:   "Review for proper period allocation",
		})
	}
	return nil, flags
}

// checkCostCenters balances gross pay per cost center against the salary
// expense debits tagged with the same cost center. Cost centers are taken
// from the payroll register in first-appearance order; a cost center present
// only in GL is not examined.
func checkCostCenters(payroll []PayrollRecord, gl []GLPosting) ([]Variance, []Flag) {
	var (
		order []string
		seen  = make(map[string]struct{})
	)
	for _, r := range payroll {
		if _, ok := seen[r.CostCenter]; !ok {
			seen[r.CostCenter] = struct{}{}
			order = append(order, r.CostCenter)
		}
	}

	var variances []Variance
	for _, cc := range order {
		payrollGross := decimal.Zero
		for _, r := range payroll {
			if r.CostCenter == cc {
				payrollGross = payrollGross.Add(r.GrossPay)
			}
		}

		glExpense := decimal.Zero
		for _, p := range gl {
			if p.CostCenter == cc && p.Account == AccountSalaryExpense {
				glExpense = glExpense.Add(p.Debit)
			}
		}

		if diff := payrollGross.Sub(glExpense); outsideTolerance(diff) {
			typ := fmt.Sprintf("Cost Center %s Variance", cc)
			variances = append(variances, newVariance(typ, payrollGross, glExpense, SeverityMedium))
		}
	}
	return variances, nil
}
