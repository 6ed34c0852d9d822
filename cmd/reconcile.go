package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"payroll-recon/core/config"
	"payroll-recon/core/engine"
	"payroll-recon/core/export"
	"payroll-recon/core/ingest"
	"payroll-recon/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	payrollPath     string
	glPath          string
	reconOutput     string
	reconFormat     string
	includeFlagsCSV bool
)

// reconcileCmd runs one reconciliation over CSV files.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a payroll register against GL postings",
	Long: `Reconcile a payroll register CSV against general ledger postings for
month-end close.

The report lists every variance with its severity, the review flags raised
by the checks, and a summary with the overall PASSED/FAILED status.

Examples:
  # JSON report to stdout
  reconcile --payroll payroll.csv --gl gl.csv

  # JSON report to a file
  reconcile --payroll payroll.csv --gl gl.csv --output report.json

  # Variance list as CSV
  reconcile --payroll payroll.csv --gl gl.csv --format csv

  # Variances plus flags as CSV
  reconcile --payroll payroll.csv --gl gl.csv --format csv --flags`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&payrollPath, "payroll", "", "Payroll register CSV file (required)")
	reconcileCmd.Flags().StringVar(&glPath, "gl", "", "GL postings CSV file (required)")
	reconcileCmd.Flags().StringVar(&reconOutput, "output", "", "Write the report to this file instead of stdout")
	reconcileCmd.Flags().StringVar(&reconFormat, "format", "json", "Report format: json or csv")
	reconcileCmd.Flags().BoolVar(&includeFlagsCSV, "flags", false, "With --format csv, also write the flag list after the variances")
	_ = reconcileCmd.MarkFlagRequired("payroll")
	_ = reconcileCmd.MarkFlagRequired("gl")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if reconFormat != "json" && reconFormat != "csv" {
		return fmt.Errorf("unknown format %q (want json or csv)", reconFormat)
	}

	payroll, err := ingest.ReadPayrollRegisterFile(payrollPath)
	if err != nil {
		return err
	}
	gl, err := ingest.ReadGLPostingsFile(glPath)
	if err != nil {
		return err
	}

	report := engine.New(payroll, gl).Reconcile()

	l.Info("Reconciliation completed",
		zap.Int("payroll_rows", len(payroll)),
		zap.Int("gl_rows", len(gl)),
		zap.Int("variances", report.Summary.TotalVariances),
		zap.Int("high_severity", report.Summary.HighSeverityCount),
		zap.Int("flags", report.Summary.TotalFlags),
		zap.String("status", string(report.Summary.Status)),
	)

	out := io.Writer(os.Stdout)
	if reconOutput != "" {
		f, err := os.Create(reconOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeReport(out, report, reconFormat); err != nil {
		return err
	}
	if reconOutput != "" {
		l.Info("Report written", zap.String("path", reconOutput), zap.String("format", reconFormat))
	}
	return nil
}

func writeReport(w io.Writer, report *engine.Report, format string) error {
	if format == "csv" {
		if err := export.WriteVariancesCSV(w, report.Variances); err != nil {
			return fmt.Errorf("write variances: %w", err)
		}
		if includeFlagsCSV {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			if err := export.WriteFlagsCSV(w, report.Flags); err != nil {
				return fmt.Errorf("write flags: %w", err)
			}
		}
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
