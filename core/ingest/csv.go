package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"payroll-recon/core/engine"
)

// Table names used in schema and type errors.
const (
	TablePayroll = "payroll_register"
	TableGL      = "gl_postings"
)

var payrollColumns = []string{
	"Employee_ID", "Employee_Name", "Department", "Cost_Center",
	"Base_Salary", "Overtime", "Bonus", "Gross_Pay",
	"Pension_Deduction", "Health_Insurance", "Tax_Deduction",
	"Total_Deductions", "Net_Pay", "Employer_Pension_Contribution",
	"Employer_Benefits", "Period",
}

var glColumns = []string{
	"GL_Account", "Account_Description", "Cost_Center",
	"Debit", "Credit", "Posting_Date",
}

// ReadPayrollRegister parses a payroll register CSV into typed records.
// Column order is free; a missing required column yields a *SchemaError and
// non-numeric currency data yields a *TypeError. A header-only file is valid
// and returns no rows.
func ReadPayrollRegister(r io.Reader) ([]engine.PayrollRecord, error) {
	rows, col, err := readTable(r, TablePayroll, payrollColumns)
	if err != nil {
		return nil, err
	}

	records := make([]engine.PayrollRecord, 0, len(rows))
	for i, rec := range rows {
		row := i + 2 // header is line 1
		amounts, err := parseAmounts(TablePayroll, row, rec, col,
			"Base_Salary", "Overtime", "Bonus", "Gross_Pay",
			"Pension_Deduction", "Health_Insurance", "Tax_Deduction",
			"Total_Deductions", "Net_Pay", "Employer_Pension_Contribution",
			"Employer_Benefits")
		if err != nil {
			return nil, err
		}

		records = append(records, engine.PayrollRecord{
			EmployeeID:       rec[col["Employee_ID"]],
			EmployeeName:     rec[col["Employee_Name"]],
			Department:       rec[col["Department"]],
			CostCenter:       rec[col["Cost_Center"]],
			BaseSalary:       amounts["Base_Salary"],
			Overtime:         amounts["Overtime"],
			Bonus:            amounts["Bonus"],
			GrossPay:         amounts["Gross_Pay"],
			PensionDeduction: amounts["Pension_Deduction"],
			HealthInsurance:  amounts["Health_Insurance"],
			TaxDeduction:     amounts["Tax_Deduction"],
			TotalDeductions:  amounts["Total_Deductions"],
			NetPay:           amounts["Net_Pay"],
			EmployerPension:  amounts["Employer_Pension_Contribution"],
			EmployerBenefits: amounts["Employer_Benefits"],
			Period:           rec[col["Period"]],
		})
	}
	return records, nil
}

// ReadGLPostings parses a GL postings CSV into typed postings with the same
// error contract as ReadPayrollRegister.
func ReadGLPostings(r io.Reader) ([]engine.GLPosting, error) {
	rows, col, err := readTable(r, TableGL, glColumns)
	if err != nil {
		return nil, err
	}

	postings := make([]engine.GLPosting, 0, len(rows))
	for i, rec := range rows {
		row := i + 2
		amounts, err := parseAmounts(TableGL, row, rec, col, "Debit", "Credit")
		if err != nil {
			return nil, err
		}

		postings = append(postings, engine.GLPosting{
			Account:            engine.Account(strings.TrimSpace(rec[col["GL_Account"]])),
			AccountDescription: rec[col["Account_Description"]],
			CostCenter:         rec[col["Cost_Center"]],
			Debit:              amounts["Debit"],
			Credit:             amounts["Credit"],
			PostingDate:        rec[col["Posting_Date"]],
		})
	}
	return postings, nil
}

// ReadPayrollRegisterFile is ReadPayrollRegister over a file path.
func ReadPayrollRegisterFile(path string) ([]engine.PayrollRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payroll register %s: %w", path, err)
	}
	defer f.Close()
	return ReadPayrollRegister(f)
}

// ReadGLPostingsFile is ReadGLPostings over a file path.
func ReadGLPostingsFile(path string) ([]engine.GLPosting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gl postings %s: %w", path, err)
	}
	defer f.Close()
	return ReadGLPostings(f)
}

// readTable reads all CSV rows and validates the header against the required
// column set, returning the rows plus a column-name index.
func readTable(r io.Reader, table string, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, &SchemaError{Table: table, Column: required[0]}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: read header: %w", table, err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, nil, &SchemaError{Table: table, Column: name}
		}
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s: read row: %w", table, err)
		}
		rows = append(rows, rec)
	}
	return rows, col, nil
}

// parseAmounts parses the named currency columns of one row. Empty cells are
// treated as zero; anything else must parse as a decimal amount.
func parseAmounts(table string, row int, rec []string, col map[string]int, columns ...string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(columns))
	for _, name := range columns {
		raw := strings.TrimSpace(rec[col[name]])
		if raw == "" {
			out[name] = decimal.Zero
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, &TypeError{Table: table, Column: name, Row: row, Value: raw}
		}
		out[name] = v
	}
	return out, nil
}
