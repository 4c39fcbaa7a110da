package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sachinggsingh/resume-ai/internal/models"
	"sachinggsingh/resume-ai/internal/repositories"
	"sachinggsingh/resume-ai/internal/services"
)

type DocumentHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewDocumentHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *DocumentHandler {
	return &DocumentHandler{
		docRepo:        docRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /documents/upload
func (h *DocumentHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return respondError(c, err)
	}

	pageCount, err := h.pdfParser.PageCount(filePath)
	if err != nil {
		h.removeUpload(filename)
		return respondError(c, err)
	}

	doc := models.Document{
		ID:               uuid.New(),
		URL:              h.storageService.PublicURL(filename),
		Filename:         filename,
		OriginalFileName: file.Filename,
		PageCount:        pageCount,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		log.Printf("❌ Failed to save document record: %v\n", err)
		h.removeUpload(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Upload failed",
		})
	}

	log.Printf("📥 Stored %s (%d page(s)) as %s\n", file.Filename, pageCount, doc.URL)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "PDF uploaded successfully",
		"document": toDocumentResponse(&doc),
	})
}

// HandleRegister handles POST /documents for references stored elsewhere.
func (h *DocumentHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	req.URL = strings.TrimSpace(req.URL)
	if !strings.HasPrefix(req.URL, "http") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "url must be an http(s) document reference",
		})
	}

	doc := models.Document{
		ID:        uuid.New(),
		URL:       req.URL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save document reference",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"document": toDocumentResponse(&doc),
	})
}

// HandleLatest handles GET /documents/latest
func (h *DocumentHandler) HandleLatest(c *fiber.Ctx) error {
	doc, err := h.docRepo.FindLatest()
	if err != nil {
		if statusFor(err) == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No uploads found",
			})
		}
		log.Printf("❌ Error fetching latest upload: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch upload",
		})
	}

	return c.JSON(models.LatestDocumentResponse{
		Success:     true,
		DocumentURL: doc.URL,
	})
}

// HandleGet handles GET /documents/:id
func (h *DocumentHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	doc, err := h.docRepo.FindByID(id)
	if err != nil {
		if statusFor(err) == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Document not found",
			})
		}
		log.Printf("❌ Error fetching document %s: %v\n", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch document",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"document": toDocumentResponse(doc),
	})
}

func (h *DocumentHandler) removeUpload(filename string) {
	if err := h.storageService.DeleteFile(filename); err != nil {
		log.Printf("⚠️  Failed to remove rejected upload %s: %v\n", filename, err)
	}
}

func toDocumentResponse(doc *models.Document) models.DocumentResponse {
	return models.DocumentResponse{
		ID:           doc.ID.String(),
		URL:          doc.URL,
		OriginalName: doc.OriginalFileName,
		PageCount:    doc.PageCount,
	}
}
