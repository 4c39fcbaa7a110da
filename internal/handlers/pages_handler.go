package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sachinggsingh/resume-ai/internal/models"
	"sachinggsingh/resume-ai/internal/repositories"
	"sachinggsingh/resume-ai/internal/services"
)

const noPagesMessage = "No resume images found. Please upload a PDF first."

type PagesHandler struct {
	docRepo  repositories.DocumentRepository
	resolver services.RenderingResolver
}

func NewPagesHandler(docRepo repositories.DocumentRepository, resolver services.RenderingResolver) *PagesHandler {
	return &PagesHandler{
		docRepo:  docRepo,
		resolver: resolver,
	}
}

// HandlePages handles GET /pages?document_url=...
// An empty sequence is a normal answer, not an error.
func (h *PagesHandler) HandlePages(c *fiber.Ctx) error {
	documentURL, err := resolveDocumentURL(h.docRepo, c.Query("document_url"))
	if err != nil {
		if statusFor(err) == fiber.StatusBadRequest {
			return c.JSON(models.PagesResponse{Pages: []string{}, Message: noPagesMessage})
		}
		return respondError(c, err)
	}

	pages := h.resolver.ResolvePages(c.UserContext(), documentURL)

	resp := models.PagesResponse{
		DocumentURL: documentURL,
		Pages:       pages,
		Count:       len(pages),
	}
	if len(pages) == 0 {
		resp.Message = noPagesMessage
	}

	return c.JSON(resp)
}
