package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sachinggsingh/resume-ai/internal/repositories"
	"sachinggsingh/resume-ai/internal/services"
)

// statusFor maps pipeline failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrDocumentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrAssetUnavailable), errors.Is(err, services.ErrModelInvocation):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// resolveDocumentURL returns explicit when given, otherwise the latest stored
// reference. The result is passed down explicitly; services never look it up.
func resolveDocumentURL(docRepo repositories.DocumentRepository, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	doc, err := docRepo.FindLatest()
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return "", fmt.Errorf("%w: no document uploaded, upload a document first", services.ErrInvalidInput)
		}
		return "", err
	}

	return doc.URL, nil
}
