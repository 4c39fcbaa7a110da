package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(
	app *fiber.App,
	documentHandler *DocumentHandler,
	pagesHandler *PagesHandler,
	summaryHandler *SummaryHandler,
	chatHandler *ChatHandler,
) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/documents", documentHandler.HandleRegister)
	api.Post("/documents/upload", documentHandler.HandleUpload)
	api.Get("/documents/latest", documentHandler.HandleLatest)
	api.Get("/documents/:id", documentHandler.HandleGet)
	api.Get("/pages", pagesHandler.HandlePages)
	api.Post("/summary", summaryHandler.HandleSummary)
	api.Post("/chat", chatHandler.HandleChat)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume AI API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/documents",
				"POST /api/v1/documents/upload",
				"GET /api/v1/documents/latest",
				"GET /api/v1/documents/:id",
				"GET /api/v1/pages",
				"POST /api/v1/summary",
				"POST /api/v1/chat",
			},
		})
	})
}
