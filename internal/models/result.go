package models

type RegisterDocumentRequest struct {
	URL string `json:"url"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	OriginalName string `json:"original_name,omitempty"`
	PageCount    int    `json:"page_count"`
}

type LatestDocumentResponse struct {
	Success     bool   `json:"success"`
	DocumentURL string `json:"document_url"`
}

type PagesResponse struct {
	DocumentURL string   `json:"document_url"`
	Pages       []string `json:"pages"`
	Count       int      `json:"count"`
	Message     string   `json:"message,omitempty"`
}

type SummaryRequest struct {
	DocumentURL string `json:"document_url"`
	JobTitle    string `json:"job_title"`
	Page        int    `json:"page"`
}

type ChatRequest struct {
	Messages []ConversationTurn `json:"messages"`
}

type ChatResponse struct {
	Message string           `json:"message"`
	Role    ConversationRole `json:"role"`
}
