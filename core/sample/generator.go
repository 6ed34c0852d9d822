package sample

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"payroll-recon/core/engine"
)

var (
	departments = []string{"HR", "Finance", "IT", "Operations", "Sales"}
	costCenters = []string{"CC1001", "CC1002", "CC1003", "CC1004", "CC1005"}

	bonusChoices  = []int64{0, 500, 1000, 1500}
	healthChoices = []int64{200, 250, 300}

	pensionRate         = decimal.RequireFromString("0.05")
	taxRate             = decimal.RequireFromString("0.15")
	employerPensionRate = decimal.RequireFromString("0.06")
	benefitsRate        = decimal.RequireFromString("0.8")
)

// Config controls dataset generation. The same config always produces the
// same dataset.
type Config struct {
	// Employees is the number of payroll rows to generate.
	Employees int
	// Seed drives all randomness.
	Seed int64
	// Period is the pay period label, e.g. "2024-01".
	Period string
	// IntroduceVariances injects the discrepancies the reconciliation is
	// meant to catch: occasional salary-expense drift, employer-pension
	// shortfalls, and a 30% chance per cost center that the benefit accrual
	// is omitted entirely. When false the generated pair reconciles clean.
	IntroduceVariances bool
}

// Generate builds a synthetic payroll register and the GL postings an
// accounting system would book for it.
func Generate(cfg Config) ([]engine.PayrollRecord, []engine.GLPosting) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	payroll := generatePayroll(rng, cfg)
	gl := generatePostings(rng, cfg, payroll)
	return payroll, gl
}

func generatePayroll(rng *rand.Rand, cfg Config) []engine.PayrollRecord {
	records := make([]engine.PayrollRecord, 0, cfg.Employees)
	for i := 1; i <= cfg.Employees; i++ {
		base := uniformAmount(rng, 3000, 10000)
		overtime := uniformAmount(rng, 0, 500)
		bonus := decimal.NewFromInt(bonusChoices[rng.Intn(len(bonusChoices))])
		health := decimal.NewFromInt(healthChoices[rng.Intn(len(healthChoices))])

		gross := base.Add(overtime).Add(bonus)
		pension := gross.Mul(pensionRate).Round(2)
		tax := gross.Mul(taxRate).Round(2)
		deductions := pension.Add(health).Add(tax)

		records = append(records, engine.PayrollRecord{
			EmployeeID:       fmt.Sprintf("EMP%05d", i),
			EmployeeName:     fmt.Sprintf("Employee %d", i),
			Department:       departments[rng.Intn(len(departments))],
			CostCenter:       costCenters[rng.Intn(len(costCenters))],
			BaseSalary:       base,
			Overtime:         overtime,
			Bonus:            bonus,
			GrossPay:         gross,
			PensionDeduction: pension,
			HealthInsurance:  health,
			TaxDeduction:     tax,
			TotalDeductions:  deductions,
			NetPay:           gross.Sub(deductions),
			EmployerPension:  gross.Mul(employerPensionRate).Round(2),
			EmployerBenefits: health.Mul(benefitsRate),
			Period:           cfg.Period,
		})
	}
	return records
}

// ccTotals aggregates one cost center's payroll amounts.
type ccTotals struct {
	gross, pension, health, tax, net, employerPension, benefits decimal.Decimal
}

func generatePostings(rng *rand.Rand, cfg Config, payroll []engine.PayrollRecord) []engine.GLPosting {
	totals := make(map[string]*ccTotals)
	for _, r := range payroll {
		t, ok := totals[r.CostCenter]
		if !ok {
			t = &ccTotals{}
			totals[r.CostCenter] = t
		}
		t.gross = t.gross.Add(r.GrossPay)
		t.pension = t.pension.Add(r.PensionDeduction)
		t.health = t.health.Add(r.HealthInsurance)
		t.tax = t.tax.Add(r.TaxDeduction)
		t.net = t.net.Add(r.NetPay)
		t.employerPension = t.employerPension.Add(r.EmployerPension)
		t.benefits = t.benefits.Add(r.EmployerBenefits)
	}

	accrualDate := cfg.Period + "-28"
	paymentDate := cfg.Period + "-30"

	var gl []engine.GLPosting
	// Fixed cost-center order keeps output deterministic for a given seed.
	for _, cc := range costCenters {
		t, ok := totals[cc]
		if !ok {
			continue
		}

		gross := t.gross
		if cfg.IntroduceVariances && rng.Float64() < 0.2 {
			gross = drift(rng, gross, 0.98, 1.02)
		}
		employerPension := t.employerPension
		if cfg.IntroduceVariances && rng.Float64() < 0.15 {
			employerPension = drift(rng, employerPension, 0.95, 1.0)
		}

		gl = append(gl,
			posting(engine.AccountSalaryExpense, cc, gross, decimal.Zero, accrualDate),
			posting(engine.AccountPensionPayable, cc, decimal.Zero, t.pension, accrualDate),
			posting(engine.AccountEmployerPensionExpense, cc, employerPension, decimal.Zero, accrualDate),
			posting(engine.AccountHealthInsurancePayable, cc, decimal.Zero, t.health, accrualDate),
			posting(engine.AccountTaxPayable, cc, decimal.Zero, t.tax, accrualDate),
			posting(engine.AccountPayrollCash, cc, decimal.Zero, t.net, paymentDate),
		)

		// Benefit accruals are the entry real systems forget: omit ~30% of
		// them when variances are requested.
		if !cfg.IntroduceVariances || rng.Float64() < 0.7 {
			gl = append(gl, posting(engine.AccountEmployerBenefitsExpense, cc, t.benefits, decimal.Zero, accrualDate))
		}
	}
	return gl
}

func posting(account engine.Account, cc string, debit, credit decimal.Decimal, date string) engine.GLPosting {
	role, _ := account.Role()
	return engine.GLPosting{
		Account:            account,
		AccountDescription: role.Description,
		CostCenter:         cc,
		Debit:              debit.Round(2),
		Credit:             credit.Round(2),
		PostingDate:        date,
	}
}

func uniformAmount(rng *rand.Rand, lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + rng.Float64()*(hi-lo)).Round(2)
}

func drift(rng *rand.Rand, amount decimal.Decimal, lo, hi float64) decimal.Decimal {
	factor := decimal.NewFromFloat(lo + rng.Float64()*(hi-lo))
	return amount.Mul(factor).Round(2)
}
