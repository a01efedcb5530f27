package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/hr-helper/internal/services"
)

// Register mounts the review API under /api/v1 and metrics under /metrics.
func Register(app *fiber.App, session *services.Session, maxFileSize int64, gatherer prometheus.Gatherer) {
	uploadHandler := NewUploadHandler(session, maxFileSize)
	rubricHandler := NewRubricHandler(session)
	candidateHandler := NewCandidateHandler(session)
	reportHandler := NewReportHandler(session)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/rubric", rubricHandler.HandleGetRubric)
	api.Put("/rubric", rubricHandler.HandleUpdateRubric)
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Get("/candidates", candidateHandler.HandleList)
	api.Get("/candidates/:id", candidateHandler.HandleGet)
	api.Patch("/candidates/:id/status", candidateHandler.HandleUpdateStatus)
	api.Delete("/candidates/:id", candidateHandler.HandleDelete)
	api.Get("/report", reportHandler.HandleReport)

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}
