package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hr-helper/internal/services"
)

const (
	reportFilename  = "laporan_diterima.xlsx"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportHandler struct {
	session *services.Session
}

func NewReportHandler(session *services.Session) *ReportHandler {
	return &ReportHandler{session: session}
}

// HandleReport handles GET /report
func (h *ReportHandler) HandleReport(c *fiber.Ctx) error {
	report, err := h.session.Report()
	if err != nil {
		return err
	}
	if report == nil {
		return fiber.NewError(fiber.StatusNotFound, "No accepted candidates yet")
	}

	c.Attachment(reportFilename)
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(report)
}
