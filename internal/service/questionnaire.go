package service

import (
	"context"

	"github.com/duetmatch/duet/api/internal/catalog"
	"github.com/duetmatch/duet/api/internal/model"
)

// QuestionnaireService exposes the static question catalog. The catalog is
// compiled-in data, so these methods never touch the store; the context
// parameter keeps the signatures consistent with the other services.
type QuestionnaireService struct{}

// NewQuestionnaireService creates a new questionnaire service
func NewQuestionnaireService() *QuestionnaireService {
	return &QuestionnaireService{}
}

// GetAllQuestions returns the full question catalog.
func (s *QuestionnaireService) GetAllQuestions(ctx context.Context) []*model.Question {
	return catalog.Questions()
}

// GetQuestionsByCategory returns catalog questions in a category.
func (s *QuestionnaireService) GetQuestionsByCategory(ctx context.Context, category string) ([]*model.Question, error) {
	if !model.IsValidQuestionCategory(category) {
		return nil, ErrInvalidCategory
	}
	return catalog.ByCategory(category), nil
}

// GetQuestion returns a single catalog question by ID.
func (s *QuestionnaireService) GetQuestion(ctx context.Context, id string) (*model.Question, error) {
	q := catalog.ByID(id)
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}
