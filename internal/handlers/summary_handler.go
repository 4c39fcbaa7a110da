package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sachinggsingh/resume-ai/internal/models"
	"sachinggsingh/resume-ai/internal/repositories"
	"sachinggsingh/resume-ai/internal/services"
)

type SummaryHandler struct {
	docRepo  repositories.DocumentRepository
	analyzer services.AnalyzerService
}

func NewSummaryHandler(docRepo repositories.DocumentRepository, analyzer services.AnalyzerService) *SummaryHandler {
	return &SummaryHandler{
		docRepo:  docRepo,
		analyzer: analyzer,
	}
}

// HandleSummary handles POST /summary
func (h *SummaryHandler) HandleSummary(c *fiber.Ctx) error {
	var req models.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.JobTitle) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title is required",
		})
	}

	documentURL, err := resolveDocumentURL(h.docRepo, strings.TrimSpace(req.DocumentURL))
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.analyzer.Analyze(c.UserContext(), documentURL, req.JobTitle, req.Page)
	if err != nil {
		log.Printf("❌ Error generating summary: %v\n", err)
		return respondError(c, err)
	}

	return c.JSON(result)
}
