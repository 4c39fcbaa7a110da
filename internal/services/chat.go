package services

import (
	"context"
	"log"
	"strings"

	"sachinggsingh/resume-ai/internal/models"
)

// CannedReply is returned whenever the model cannot answer.
const CannedReply = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment."

// ContextRetriever supplies optional reference material for a chat prompt.
type ContextRetriever interface {
	RetrieveGuides(ctx context.Context, query string) (string, error)
}

type ChatService interface {
	Reply(ctx context.Context, history []models.ConversationTurn) models.ConversationTurn
}

type chatService struct {
	geminiService GeminiService
	retriever     ContextRetriever
	promptBuilder *PromptBuilder
}

// NewChatService builds the relay. retriever may be nil.
func NewChatService(geminiService GeminiService, retriever ContextRetriever) ChatService {
	return &chatService{
		geminiService: geminiService,
		retriever:     retriever,
		promptBuilder: NewPromptBuilder(),
	}
}

// Reply implements ChatService. It keeps no state between calls and always
// returns exactly one assistant turn.
func (s *chatService) Reply(ctx context.Context, history []models.ConversationTurn) models.ConversationTurn {
	prompt := s.promptBuilder.BuildChatPrompt(history, s.guideContext(ctx, history))

	text, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Chatbot generation failed: %v\n", err)
		return models.ConversationTurn{Role: models.RoleAssistant, Content: CannedReply}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Println("⚠️  Chatbot returned an empty reply")
		return models.ConversationTurn{Role: models.RoleAssistant, Content: CannedReply}
	}

	return models.ConversationTurn{Role: models.RoleAssistant, Content: text}
}

func (s *chatService) guideContext(ctx context.Context, history []models.ConversationTurn) string {
	if s.retriever == nil {
		return ""
	}

	query := s.promptBuilder.BuildRetrievalQuery(history)
	if query == "" {
		return ""
	}

	guides, err := s.retriever.RetrieveGuides(ctx, query)
	if err != nil {
		log.Printf("⚠️  Warning: Failed to retrieve guide context: %v\n", err)
		return ""
	}
	return guides
}
