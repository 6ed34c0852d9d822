package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"payroll-recon/core/engine"
)

// varianceRow is the flat CSV shape of a variance record.
type varianceRow struct {
	Type          string `csv:"Type"`
	PayrollAmount string `csv:"Payroll_Amount"`
	GLAmount      string `csv:"GL_Amount"`
	Variance      string `csv:"Variance"`
	Severity      string `csv:"Severity"`
}

// flagRow is the flat CSV shape of a flag, with the impact rendered to text.
type flagRow struct {
	Category string `csv:"Category"`
	Issue    string `csv:"Issue"`
	Impact   string `csv:"Impact"`
	Action   string `csv:"Action"`
}

// WriteVariancesCSV writes the variance list in insertion order.
func WriteVariancesCSV(w io.Writer, variances []engine.Variance) error {
	rows := make([]varianceRow, 0, len(variances))
	for _, v := range variances {
		rows = append(rows, varianceRow{
			Type:          v.Type,
			PayrollAmount: v.PayrollAmount.StringFixed(2),
			GLAmount:      v.GLAmount.StringFixed(2),
			Variance:      v.Variance.StringFixed(2),
			Severity:      string(v.Severity),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write variances csv: %w", err)
	}
	return nil
}

// WriteFlagsCSV writes the flag list in insertion order.
func WriteFlagsCSV(w io.Writer, flags []engine.Flag) error {
	rows := make([]flagRow, 0, len(flags))
	for _, f := range flags {
		rows = append(rows, flagRow{
			Category: f.Category,
			Issue:    f.Issue,
			Impact:   RenderImpact(f.Impact),
			Action:   f.Action,
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write flags csv: %w", err)
	}
	return nil
}
