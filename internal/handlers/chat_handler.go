package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sachinggsingh/resume-ai/internal/models"
	"sachinggsingh/resume-ai/internal/services"
)

type ChatHandler struct {
	chat services.ChatService
}

func NewChatHandler(chat services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// HandleChat handles POST /chat. Model failures still produce a 200 with the
// canned assistant reply.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Messages == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Messages array is required",
		})
	}

	turn := h.chat.Reply(c.UserContext(), req.Messages)

	return c.JSON(models.ChatResponse{
		Message: turn.Content,
		Role:    turn.Role,
	})
}
