package engine

// Account is a GL account code from the chart-of-accounts contract with the
// GL source system.
type Account string

const (
	// AccountSalaryExpense (6100) carries gross pay as a debit.
	AccountSalaryExpense Account = "6100"
	// AccountPensionPayable (2110) carries employee pension deductions as a credit.
	AccountPensionPayable Account = "2110"
	// AccountHealthInsurancePayable (2120) carries health insurance deductions as a credit.
	AccountHealthInsurancePayable Account = "2120"
	// AccountTaxPayable (2130) carries tax deductions as a credit.
	AccountTaxPayable Account = "2130"
	// AccountEmployerPensionExpense (6120) carries employer pension contributions as a debit.
	AccountEmployerPensionExpense Account = "6120"
	// AccountEmployerBenefitsExpense (6130) carries employer benefit accruals as a debit.
	AccountEmployerBenefitsExpense Account = "6130"
	// AccountPayrollCash (1010) carries net pay settlement as a credit.
	AccountPayrollCash Account = "1010"
)

// Side indicates which column of a posting an account is expected to use.
type Side string

const (
	SideDebit  Side = "Debit"
	SideCredit Side = "Credit"
)

// AccountRole describes the semantic meaning of a known account code.
type AccountRole struct {
	Description string
	Side        Side
}

// chartOfAccounts maps every account code the engine understands to its role.
// Postings under any other code are not silently summed to zero; they are
// surfaced as a data-quality flag when the reconciliation runs.
var chartOfAccounts = map[Account]AccountRole{
	AccountSalaryExpense:           {Description: "Salary Expense", Side: SideDebit},
	AccountPensionPayable:          {Description: "Pension Payable", Side: SideCredit},
	AccountHealthInsurancePayable:  {Description: "Health Insurance Payable", Side: SideCredit},
	AccountTaxPayable:              {Description: "Tax Payable", Side: SideCredit},
	AccountEmployerPensionExpense:  {Description: "Employer Pension Expense", Side: SideDebit},
	AccountEmployerBenefitsExpense: {Description: "Employer Benefits Expense", Side: SideDebit},
	AccountPayrollCash:             {Description: "Cash - Payroll Account", Side: SideCredit},
}

// Role returns the role of a known account code.
func (a Account) Role() (AccountRole, bool) {
	role, ok := chartOfAccounts[a]
	return role, ok
}

// Known reports whether the account code is part of the chart-of-accounts
// contract.
func (a Account) Known() bool {
	_, ok := chartOfAccounts[a]
	return ok
}
