package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"alfredoptarigan/hr-helper/internal/config"
	"alfredoptarigan/hr-helper/internal/handlers"
	"alfredoptarigan/hr-helper/internal/logger"
	"alfredoptarigan/hr-helper/internal/metrics"
	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/repositories"
	"alfredoptarigan/hr-helper/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}
	defer zl.Sync()

	// Session store lives only as long as the process
	db, err := config.InitDatabase(cfg)
	if err != nil {
		zl.Fatal("failed to initialize session store", zap.Error(err))
	}
	candidateRepo := repositories.NewCandidateRepository(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	form := models.DefaultRubricForm()
	var rubricWatcher func(*services.Session)
	if cfg.Rubric.File != "" {
		v := config.NewRubricViper(cfg.Rubric.File)
		form, err = config.LoadRubric(v)
		if err != nil {
			zl.Fatal("failed to load rubric", zap.String("file", cfg.Rubric.File), zap.Error(err))
		}
		rubricWatcher = func(session *services.Session) {
			config.WatchRubric(v,
				func(updated models.RubricForm) {
					if err := session.UpdateRubric(updated); err != nil {
						zl.Error("failed to apply rubric", zap.Error(err))
						return
					}
					zl.Info("rubric reloaded", zap.String("job_title", updated.JobTitle))
				},
				func(err error) {
					zl.Warn("rubric change rejected", zap.Error(err))
				},
			)
		}
	}

	// Initialize services
	pdfParser := services.NewPDFParserService()
	builder := services.NewCandidateBuilder(pdfParser)
	runner := services.NewBatchRunner(builder, cfg.Worker.Concurrency, zl, m)

	session, err := services.NewSession(candidateRepo, runner, services.NewReportService(), form, zl, m)
	if err != nil {
		zl.Fatal("failed to start review session", zap.Error(err))
	}
	if rubricWatcher != nil {
		rubricWatcher(session)
	}
	zl.Info("review session ready", zap.String("job_title", form.JobTitle))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HR Helper CV Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.Register(app, session, cfg.Storage.MaxFileSize, reg)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "HR Helper CV Screening API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/rubric",
				"PUT /api/v1/rubric",
				"POST /api/v1/upload",
				"GET /api/v1/candidates",
				"GET /api/v1/candidates/:id",
				"PATCH /api/v1/candidates/:id/status",
				"DELETE /api/v1/candidates/:id",
				"GET /api/v1/report",
				"GET /metrics",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zl.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Server.Port
	zl.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}
