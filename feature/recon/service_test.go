package recon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"payroll-recon/core/engine"
)

func TestServiceReconcileEmptyInputs(t *testing.T) {
	svc := NewService(zap.NewNop())

	report := svc.Reconcile(nil, nil)

	require.NotNil(t, report)
	assert.Equal(t, engine.StatusPassed, report.Summary.Status)
	assert.Empty(t, report.Variances)
}

func TestServiceReconcileDetectsVariance(t *testing.T) {
	svc := NewService(zap.NewNop())

	payroll := []engine.PayrollRecord{{
		EmployeeID: "EMP0001",
		CostCenter: "CC100",
		GrossPay:   decimal.RequireFromString("5000"),
	}}

	// No GL postings at all: every payroll total is unmatched.
	report := svc.Reconcile(payroll, nil)

	require.NotNil(t, report)
	assert.Equal(t, engine.StatusFailed, report.Summary.Status)
	assert.NotEmpty(t, report.Variances)
}
