package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sachinggsingh/resume-ai/internal/models"
	"sachinggsingh/resume-ai/internal/repositories"
	"sachinggsingh/resume-ai/internal/services"
)

type fakeDocumentRepo struct {
	docs      []models.Document
	createErr error
	findErr   error
}

func (f *fakeDocumentRepo) Create(document *models.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.docs = append(f.docs, *document)
	return nil
}

func (f *fakeDocumentRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			return &f.docs[i], nil
		}
	}
	return nil, repositories.ErrDocumentNotFound
}

func (f *fakeDocumentRepo) FindLatest() (*models.Document, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if len(f.docs) == 0 {
		return nil, repositories.ErrDocumentNotFound
	}
	return &f.docs[len(f.docs)-1], nil
}

type fakeAnalyzer struct {
	result *models.AnalysisResult
	err    error
	url    string
	role   string
	page   int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, documentURL, targetRole string, page int) (*models.AnalysisResult, error) {
	f.url, f.role, f.page = documentURL, targetRole, page
	return f.result, f.err
}

type fakeChat struct {
	history []models.ConversationTurn
}

func (f *fakeChat) Reply(ctx context.Context, history []models.ConversationTurn) models.ConversationTurn {
	f.history = history
	return models.ConversationTurn{Role: models.RoleAssistant, Content: "Use action verbs."}
}

type fakeResolver struct {
	pages []string
	url   string
}

func (f *fakeResolver) PageURL(documentURL string, page int) string {
	return documentURL
}

func (f *fakeResolver) ResolvePages(ctx context.Context, documentURL string) []string {
	f.url = documentURL
	return f.pages
}

type fakePDFParser struct {
	pages int
}

func (f *fakePDFParser) PageCount(filePath string) (int, error) {
	if f.pages == 0 {
		return 0, services.ErrInvalidInput
	}
	return f.pages, nil
}

func (f *fakePDFParser) ExtractGuideText(filePath string) (*services.GuideContent, error) {
	return nil, errors.New("not implemented")
}

// failingDeleteStorage keeps files on disk but refuses to remove them.
type failingDeleteStorage struct {
	services.StorageService
	deleted []string
}

func (f *failingDeleteStorage) DeleteFile(filename string) error {
	f.deleted = append(f.deleted, filename)
	return errors.New("permission denied")
}
