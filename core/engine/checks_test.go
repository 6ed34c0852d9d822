package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTotals_ToleranceBoundary(t *testing.T) {
	tests := []struct {
		name         string
		payrollGross string
		glDebit      string
		wantVariance bool
	}{
		{"difference of exactly 0.01 is tolerated", "100.01", "100.00", false},
		{"difference just above 0.01 is reported", "100.0100001", "100.00", true},
		{"equal amounts are tolerated", "100.00", "100.00", false},
		{"negative difference of 0.01 is tolerated", "100.00", "100.01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payroll := []PayrollRecord{{EmployeeID: "EMP00001", GrossPay: d(tt.payrollGross)}}
			gl := []GLPosting{{Account: AccountSalaryExpense, Debit: d(tt.glDebit)}}

			variances, flags := checkTotals(payroll, gl)
			assert.Empty(t, flags)
			if tt.wantVariance {
				assert.Len(t, variances, 1)
			} else {
				assert.Empty(t, variances)
			}
		})
	}
}

func TestCheckTotals_GrossSeverityBoundary(t *testing.T) {
	tests := []struct {
		name         string
		payrollGross string
		glDebit      string
		want         Severity
	}{
		{"difference of exactly 100.00 is Medium", "1100.00", "1000.00", SeverityMedium},
		{"difference of 100.01 is High", "1100.01", "1000.00", SeverityHigh},
		{"small difference is Medium", "1000.50", "1000.00", SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payroll := []PayrollRecord{{EmployeeID: "EMP00001", GrossPay: d(tt.payrollGross)}}
			gl := []GLPosting{{Account: AccountSalaryExpense, Debit: d(tt.glDebit)}}

			variances, _ := checkTotals(payroll, gl)
			require.Len(t, variances, 1)
			assert.Equal(t, "Gross Pay Variance", variances[0].Type)
			assert.Equal(t, tt.want, variances[0].Severity)
		})
	}
}

func TestCheckTotals_NetAndDeductionSeverities(t *testing.T) {
	payroll := []PayrollRecord{{
		EmployeeID:      "EMP00001",
		NetPay:          d("900"),
		TotalDeductions: d("100"),
	}}
	// 1010 and the liability accounts are short by large amounts; net pay is
	// always High, deductions always Medium regardless of magnitude.
	variances, _ := checkTotals(payroll, nil)
	require.Len(t, variances, 2)

	assert.Equal(t, "Net Pay Variance", variances[0].Type)
	assert.Equal(t, SeverityHigh, variances[0].Severity)
	assert.Equal(t, "Total Deductions Variance", variances[1].Type)
	assert.Equal(t, SeverityMedium, variances[1].Severity)
}

func TestCheckPensions_EmployeeSideNeverFlags(t *testing.T) {
	payroll := []PayrollRecord{{EmployeeID: "EMP00001", PensionDeduction: d("250")}}
	gl := []GLPosting{{Account: AccountPensionPayable, Credit: d("200")}}

	variances, flags := checkPensions(payroll, gl)
	require.Len(t, variances, 1)
	assert.Equal(t, "Pension Deduction Variance", variances[0].Type)
	assert.Equal(t, SeverityHigh, variances[0].Severity)
	assert.Empty(t, flags, "employee-side pension variances are not flagged")
}

func TestCheckPensions_EmployerShortfallFlags(t *testing.T) {
	payroll := []PayrollRecord{{EmployeeID: "EMP00001", EmployerPension: d("300")}}
	gl := []GLPosting{{Account: AccountEmployerPensionExpense, Debit: d("285")}}

	variances, flags := checkPensions(payroll, gl)
	require.Len(t, variances, 1)
	assert.Equal(t, "Employer Pension Contribution Variance", variances[0].Type)

	require.Len(t, flags, 1)
	assert.Equal(t, "Pension", flags[0].Category)
	assert.Equal(t, ImpactUnderstatedExpense, flags[0].Impact.Kind)
	assert.True(t, flags[0].Impact.Amount.Equal(d("15.00")))
}

func TestCheckBenefitAccruals_PairedFindings(t *testing.T) {
	payroll := []PayrollRecord{{EmployeeID: "EMP00001", EmployerBenefits: d("160")}}

	variances, flags := checkBenefitAccruals(payroll, nil)
	require.Len(t, variances, 1)
	require.Len(t, flags, 1)

	// Within tolerance: neither finding appears.
	gl := []GLPosting{{Account: AccountEmployerBenefitsExpense, Debit: d("160")}}
	variances, flags = checkBenefitAccruals(payroll, gl)
	assert.Empty(t, variances)
	assert.Empty(t, flags)
}

func TestCheckRetroAdjustments_Thresholds(t *testing.T) {
	payroll := []PayrollRecord{
		{EmployeeID: "EMP00001", Bonus: d("1000.01")},
		{EmployeeID: "EMP00002", Bonus: d("1000")},
		{EmployeeID: "EMP00003", Overtime: d("400.01")},
		{EmployeeID: "EMP00004", Overtime: d("400")},
	}

	variances, flags := checkRetroAdjustments(payroll, nil)
	assert.Empty(t, variances, "retro scan is advisory only")
	require.Len(t, flags, 2)

	assert.Contains(t, flags[0].Issue, "bonus")
	assert.Equal(t, 1, flags[0].Impact.Count)
	assert.Contains(t, flags[1].Issue, "overtime")
	assert.Equal(t, 1, flags[1].Impact.Count)
}

func TestCheckCostCenters_OrderAndScope(t *testing.T) {
	payroll := []PayrollRecord{
		{EmployeeID: "EMP00001", CostCenter: "CC1002", GrossPay: d("5000")},
		{EmployeeID: "EMP00002", CostCenter: "CC1001", GrossPay: d("4000")},
		{EmployeeID: "EMP00003", CostCenter: "CC1002", GrossPay: d("1000")},
	}
	gl := []GLPosting{
		{Account: AccountSalaryExpense, CostCenter: "CC1002", Debit: d("5900")},
		{Account: AccountSalaryExpense, CostCenter: "CC1001", Debit: d("3950")},
		// Only salary expense participates in cost-center balancing.
		{Account: AccountEmployerPensionExpense, CostCenter: "CC1001", Debit: d("50")},
	}

	variances, flags := checkCostCenters(payroll, gl)
	assert.Empty(t, flags)
	require.Len(t, variances, 2)

	// First-appearance order from the register, not lexicographic.
	assert.Equal(t, "Cost Center CC1002 Variance", variances[0].Type)
	assert.True(t, variances[0].Variance.Equal(d("100.00")))
	assert.Equal(t, "Cost Center CC1001 Variance", variances[1].Type)
	assert.True(t, variances[1].Variance.Equal(d("50.00")))
	for _, v := range variances {
		assert.Equal(t, SeverityMedium, v.Severity)
	}
}
