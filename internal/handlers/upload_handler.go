package handlers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/services"
)

type UploadHandler struct {
	session     *services.Session
	maxFileSize int64
}

func NewUploadHandler(session *services.Session, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		session:     session,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /upload. Every file in the "cv" field becomes a
// document; optional "id" fields, matched by position, let the caller reuse
// IDs so re-sent files are not processed twice.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to parse multipart form")
	}

	cvFiles := form.File["cv"]
	if len(cvFiles) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No CV uploaded. Please upload one or more PDF files in the 'cv' field.")
	}
	ids := form.Value["id"]

	docs := make([]models.Document, 0, len(cvFiles))
	for i, file := range cvFiles {
		if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: invalid file extension %q", file.Filename, ext))
		}
		if file.Size > h.maxFileSize {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: file too large. Max size: %d bytes", file.Filename, h.maxFileSize))
		}

		src, err := file.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to open uploaded file %s", file.Filename))
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to read uploaded file %s", file.Filename))
		}

		id := uuid.NewString()
		if i < len(ids) && strings.TrimSpace(ids[i]) != "" {
			id = strings.TrimSpace(ids[i])
		}

		docs = append(docs, models.Document{
			ID:      id,
			Name:    file.Filename,
			Content: content,
		})
	}

	summaries, err := h.session.Ingest(docs)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    fmt.Sprintf("%d CV processed", len(summaries)),
		"candidates": summaries,
	})
}
