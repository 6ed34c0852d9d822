package engine

import "github.com/shopspring/decimal"

// Severity classifies how serious a variance is for close review.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Status is the overall outcome of a reconciliation run.
type Status string

const (
	StatusPassed Status = "PASSED"
	StatusFailed Status = "FAILED"
)

// PayrollRecord is one payroll register row: one employee for one pay period.
// The register is treated as ground truth from the upstream payroll system;
// the engine never re-derives or enforces its internal arithmetic
// (gross = base + overtime + bonus, net = gross - deductions).
type PayrollRecord struct {
	EmployeeID       string          `csv:"Employee_ID" json:"employee_id"`
	EmployeeName     string          `csv:"Employee_Name" json:"employee_name"`
	Department       string          `csv:"Department" json:"department"`
	CostCenter       string          `csv:"Cost_Center" json:"cost_center"`
	BaseSalary       decimal.Decimal `csv:"Base_Salary" json:"base_salary"`
	Overtime         decimal.Decimal `csv:"Overtime" json:"overtime"`
	Bonus            decimal.Decimal `csv:"Bonus" json:"bonus"`
	GrossPay         decimal.Decimal `csv:"Gross_Pay" json:"gross_pay"`
	PensionDeduction decimal.Decimal `csv:"Pension_Deduction" json:"pension_deduction"`
	HealthInsurance  decimal.Decimal `csv:"Health_Insurance" json:"health_insurance"`
	TaxDeduction     decimal.Decimal `csv:"Tax_Deduction" json:"tax_deduction"`
	TotalDeductions  decimal.Decimal `csv:"Total_Deductions" json:"total_deductions"`
	NetPay           decimal.Decimal `csv:"Net_Pay" json:"net_pay"`
	EmployerPension  decimal.Decimal `csv:"Employer_Pension_Contribution" json:"employer_pension_contribution"`
	EmployerBenefits decimal.Decimal `csv:"Employer_Benefits" json:"employer_benefits"`
	Period           string          `csv:"Period" json:"period"`
}

// GLPosting is one general-ledger entry. By convention of the source system
// exactly one of Debit/Credit is non-zero per row; this is not enforced here.
type GLPosting struct {
	Account            Account         `csv:"GL_Account" json:"gl_account"`
	AccountDescription string          `csv:"Account_Description" json:"account_description"`
	CostCenter         string          `csv:"Cost_Center" json:"cost_center"`
	Debit              decimal.Decimal `csv:"Debit" json:"debit"`
	Credit             decimal.Decimal `csv:"Credit" json:"credit"`
	PostingDate        string          `csv:"Posting_Date" json:"posting_date"`
}

// Variance records a monetary discrepancy between the payroll register and
// the GL for the same economic event. Amounts are rounded to 2 decimals;
// Variance is signed (payroll minus GL).
type Variance struct {
	Type          string          `json:"type"`
	PayrollAmount decimal.Decimal `json:"payroll_amount"`
	GLAmount      decimal.Decimal `json:"gl_amount"`
	Variance      decimal.Decimal `json:"variance"`
	Severity      Severity        `json:"severity"`
}

// ImpactKind identifies what a flag's impact means, so downstream consumers
// can localize or reformat the narrative without re-parsing strings.
type ImpactKind string

const (
	// ImpactUnderstatedExpense means GL expense is lower than the register
	// by Amount.
	ImpactUnderstatedExpense ImpactKind = "understated_expense"
	// ImpactRetroPay means Count employees show pay patterns consistent
	// with retroactive adjustments.
	ImpactRetroPay ImpactKind = "retro_pay"
	// ImpactPeriodAllocation means Count employees may carry prior-period
	// corrections booked into the current period.
	ImpactPeriodAllocation ImpactKind = "period_allocation"
	// ImpactUnknownAccounts means Count GL postings reference account codes
	// outside the chart-of-accounts contract.
	ImpactUnknownAccounts ImpactKind = "unknown_accounts"
)

// Impact is the structured magnitude behind a flag. Amount and Count are
// populated depending on Kind; rendering to text happens at the
// presentation boundary, not here.
type Impact struct {
	Kind   ImpactKind      `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count,omitempty"`
}

// Flag is an advisory finding for human review. Unlike a Variance it is not
// necessarily backed by a monetary mismatch and never affects the
// reconciliation status.
type Flag struct {
	Category string `json:"category"`
	Issue    string `json:"issue"`
	Impact   Impact `json:"impact"`
	Action   string `json:"action"`
}

// Summary holds the aggregate statistics for one reconciliation run.
type Summary struct {
	TotalVariances      int             `json:"total_variances"`
	HighSeverityCount   int             `json:"high_severity_count"`
	TotalVarianceAmount decimal.Decimal `json:"total_variance_amount"`
	TotalFlags          int             `json:"total_flags"`
	Status              Status          `json:"reconciliation_status"`
}

// Report is the immutable output of a reconciliation run. Variances and
// Flags appear in check execution order.
type Report struct {
	Summary   Summary    `json:"summary"`
	Variances []Variance `json:"variances"`
	Flags     []Flag     `json:"flags"`
}
