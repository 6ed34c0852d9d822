package recon

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"payroll-recon/core/engine"
	"payroll-recon/core/export"
	"payroll-recon/core/ingest"
	"payroll-recon/core/logger"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recon")
	group.Post("/reconcile", h.HandleReconcile)
}

// reportResponse is the JSON shape returned to clients: the report plus the
// rendered impact text for each flag, so downstream consumers get both the
// structured magnitude and the narrative.
type reportResponse struct {
	Summary   engine.Summary    `json:"summary"`
	Variances []engine.Variance `json:"variances"`
	Flags     []flagResponse    `json:"flags"`
}

type flagResponse struct {
	engine.Flag
	ImpactText string `json:"impact_text"`
}

// HandleReconcile accepts a payroll register and GL postings as multipart
// CSV parts named "payroll" and "gl" and returns the reconciliation report.
// With ?format=csv the variance list (or ?sheet=flags, the flag list) is
// streamed as CSV instead.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	payroll, err := payrollPart(c)
	if err != nil {
		return inputError(c, l, err)
	}
	gl, err := glPart(c)
	if err != nil {
		return inputError(c, l, err)
	}

	report := h.service.Reconcile(payroll, gl)

	if c.Query("format") == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv")
		if c.Query("sheet") == "flags" {
			return export.WriteFlagsCSV(c.Response().BodyWriter(), report.Flags)
		}
		return export.WriteVariancesCSV(c.Response().BodyWriter(), report.Variances)
	}

	resp := reportResponse{
		Summary:   report.Summary,
		Variances: report.Variances,
		Flags:     make([]flagResponse, 0, len(report.Flags)),
	}
	for _, f := range report.Flags {
		resp.Flags = append(resp.Flags, flagResponse{Flag: f, ImpactText: export.RenderImpact(f.Impact)})
	}
	return c.JSON(resp)
}

func payrollPart(c *fiber.Ctx) ([]engine.PayrollRecord, error) {
	f, err := openPart(c, "payroll")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.ReadPayrollRegister(f)
}

func glPart(c *fiber.Ctx) ([]engine.GLPosting, error) {
	f, err := openPart(c, "gl")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.ReadGLPostings(f)
}

func openPart(c *fiber.Ctx, name string) (multipart.File, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, &missingPartError{part: name}
	}
	return fh.Open()
}

type missingPartError struct {
	part string
}

func (e *missingPartError) Error() string {
	return "missing multipart file " + e.part
}

// inputError maps ingestion failures to HTTP responses: bad uploads are 400,
// schema and type problems inside an upload are 422 with the offending
// table and column named.
func inputError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var (
		missingErr *missingPartError
		schemaErr  *ingest.SchemaError
		typeErr    *ingest.TypeError
	)

	switch {
	case errors.As(err, &missingErr):
		l.Warn("Upload missing file part", zap.String("part", missingErr.part))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": missingErr.Error()})
	case errors.As(err, &schemaErr):
		l.Warn("Schema error in upload", zap.String("table", schemaErr.Table), zap.String("column", schemaErr.Column))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  schemaErr.Error(),
			"table":  schemaErr.Table,
			"column": schemaErr.Column,
		})
	case errors.As(err, &typeErr):
		l.Warn("Type error in upload",
			zap.String("table", typeErr.Table),
			zap.String("column", typeErr.Column),
			zap.Int("row", typeErr.Row),
		)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  typeErr.Error(),
			"table":  typeErr.Table,
			"column": typeErr.Column,
			"row":    typeErr.Row,
		})
	default:
		l.Error("Failed to read upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}
