package recon

import (
	"go.uber.org/zap"

	"payroll-recon/core/engine"
)

// Service runs reconciliations for the HTTP surface.
type Service struct {
	logger *zap.Logger
}

// NewService creates the reconciliation service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Reconcile reconciles one payroll register against one set of GL postings.
// A fresh engine is constructed per call, so concurrent requests never share
// state.
func (s *Service) Reconcile(payroll []engine.PayrollRecord, gl []engine.GLPosting) *engine.Report {
	report := engine.New(payroll, gl).Reconcile()

	s.logger.Info("Reconciliation completed",
		zap.Int("payroll_rows", len(payroll)),
		zap.Int("gl_rows", len(gl)),
		zap.Int("variances", report.Summary.TotalVariances),
		zap.Int("flags", report.Summary.TotalFlags),
		zap.String("status", string(report.Summary.Status)),
	)
	return report
}
