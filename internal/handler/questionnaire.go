package handler

import (
	"net/http"

	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/service"
)

// QuestionnaireHandler handles questionnaire endpoints
type QuestionnaireHandler struct {
	questionnaireService *service.QuestionnaireService
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(questionnaireService *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		questionnaireService: questionnaireService,
	}
}

// ListQuestions handles GET /v1/questions - list questions, optionally by category
func (h *QuestionnaireHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var questions []*model.Question
	var err error

	if category != "" {
		questions, err = h.questionnaireService.GetQuestionsByCategory(r.Context(), category)
		if err != nil {
			WriteError(w, MapServiceErrorWithContext(err, "list questions"))
			return
		}
	} else {
		questions = h.questionnaireService.GetAllQuestions(r.Context())
	}

	WriteCollection(w, http.StatusOK, questions, len(questions), map[string]string{
		"self":       "/v1/questions",
		"categories": "/v1/questions/categories",
	})
}

// GetCategories handles GET /v1/questions/categories - list question categories
func (h *QuestionnaireHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := model.GetQuestionCategories()
	WriteCollection(w, http.StatusOK, categories, len(categories), map[string]string{
		"self": "/v1/questions/categories",
	})
}

// GetQuestion handles GET /v1/questions/{questionId} - get a specific question
func (h *QuestionnaireHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionId")
	if questionID == "" {
		WriteError(w, model.NewBadRequestError("question ID required"))
		return
	}

	question, err := h.questionnaireService.GetQuestion(r.Context(), questionID)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get question"))
		return
	}

	WriteData(w, http.StatusOK, question, map[string]string{
		"self": "/v1/questions/" + questionID,
	})
}
