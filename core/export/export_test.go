package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-recon/core/engine"
)

func TestRenderImpact(t *testing.T) {
	tests := []struct {
		name   string
		impact engine.Impact
		want   string
	}{
		{
			name:   "understated expense",
			impact: engine.Impact{Kind: engine.ImpactUnderstatedExpense, Amount: decimal.RequireFromString("800")},
			want:   "Understated expense by $800.00",
		},
		{
			name:   "retro pay",
			impact: engine.Impact{Kind: engine.ImpactRetroPay, Count: 3},
			want:   "Potential retroactive pay adjustments (3 employees)",
		},
		{
			name:   "period allocation",
			impact: engine.Impact{Kind: engine.ImpactPeriodAllocation, Count: 1},
			want:   "May indicate prior period corrections (1 employees)",
		},
		{
			name:   "unknown accounts",
			impact: engine.Impact{Kind: engine.ImpactUnknownAccounts, Count: 2},
			want:   "2 postings under unrecognized account codes",
		},
		{
			name:   "unknown kind renders empty",
			impact: engine.Impact{Kind: engine.ImpactKind("other")},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderImpact(tt.impact))
		})
	}
}

func TestWriteVariancesCSV(t *testing.T) {
	variances := []engine.Variance{
		{
			Type:          "Gross Pay Variance",
			PayrollAmount: decimal.RequireFromString("50000"),
			GLAmount:      decimal.RequireFromString("49000"),
			Variance:      decimal.RequireFromString("1000"),
			Severity:      engine.SeverityHigh,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteVariancesCSV(&buf, variances))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Type,Payroll_Amount,GL_Amount,Variance,Severity", lines[0])
	assert.Equal(t, "Gross Pay Variance,50000.00,49000.00,1000.00,High", lines[1])
}

func TestWriteFlagsCSV(t *testing.T) {
	flags := []engine.Flag{
		{
			Category: "Benefits Accrual",
			Issue:    "Missing or incomplete employer benefit accruals",
			Impact:   engine.Impact{Kind: engine.ImpactUnderstatedExpense, Amount: decimal.RequireFromString("800")},
			Action:   "Review and post missing benefit accrual entries",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFlagsCSV(&buf, flags))

	out := buf.String()
	assert.Contains(t, out, "Category,Issue,Impact,Action")
	assert.Contains(t, out, "Understated expense by $800.00")
}

func TestWriteVariancesCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVariancesCSV(&buf, nil))
	assert.Equal(t, "Type,Payroll_Amount,GL_Amount,Variance,Severity", strings.TrimSpace(buf.String()))
}
