package bugreport

import (
	"studio-admin/internal/common/api"
	"studio-admin/internal/config"

	"github.com/gofiber/fiber/v2"
)

type BugReportController struct {
	Service BugReportService
	config  *config.Config
}

func NewBugReportController(service BugReportService, config *config.Config) *BugReportController {
	return &BugReportController{
		Service: service,
		config:  config,
	}
}

type ResolveRequest struct {
	ReportID          string `json:"reportId,omitempty"`
	ResolutionMessage string `json:"resolutionMessage"`
}

// ListReports godoc
// @Summary      List bug reports
// @Description  All reports, newest first
// @Tags         bug-reports
// @Produce      json
// @Success      200  {array} BugReport
// @Failure      503  {string} string "Store unavailable"
// @Router       /api/bug-reports [get]
func (ctrl *BugReportController) ListReports(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	reports, err := ctrl.Service.ListReports(ctx)
	if err != nil {
		return api.Error(c, err)
	}
	return c.JSON(reports)
}

// GetReport godoc
// @Summary      Get bug report by ID
// @Tags         bug-reports
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200  {object} BugReport
// @Failure      404  {string} string "Report not found"
// @Router       /api/bug-reports/{id} [get]
func (ctrl *BugReportController) GetReport(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	report, err := ctrl.Service.GetReport(ctx, c.Params("id"))
	if err != nil {
		return api.Error(c, err)
	}
	return c.JSON(report)
}

// CreateReport godoc
// @Summary      Submit bug report
// @Tags         bug-reports
// @Accept       json
// @Produce      json
// @Param        input body ReportInput true "Report"
// @Success      201  {object} BugReport
// @Failure      400  {string} string "Validation failed"
// @Router       /api/bug-reports [post]
func (ctrl *BugReportController) CreateReport(c *fiber.Ctx) error {
	var req ReportInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	report, err := ctrl.Service.CreateReport(ctx, req)
	if err != nil {
		return api.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// ResolveReport godoc
// @Summary      Resolve bug report
// @Description  Closes an open report with a resolution message. The id comes from the path or from reportId.
// @Tags         bug-reports
// @Accept       json
// @Produce      json
// @Param        id path string false "Report ID"
// @Param        input body ResolveRequest true "Resolution"
// @Success      200  {object} BugReport
// @Failure      400  {string} string "Resolution message is required"
// @Failure      404  {string} string "Report not found"
// @Failure      409  {string} string "Report already resolved"
// @Router       /api/bug-reports/{id}/resolve [put]
func (ctrl *BugReportController) ResolveReport(c *fiber.Ctx) error {
	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id := c.Params("id", req.ReportID)
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "reportId is required",
		})
	}

	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	report, err := ctrl.Service.ResolveReport(ctx, id, req.ResolutionMessage)
	if err != nil {
		return api.Error(c, err)
	}
	return c.JSON(report)
}
