package tests

/*
FEATURE: Questionnaire Catalog
DOMAIN: Questionnaire

ACCEPTANCE CRITERIA:
===================

AC-QUEST-001: List Questions
  GIVEN the built-in catalog
  WHEN listing questions
  THEN all questions are returned with id, text, and category

AC-QUEST-002: Filter By Category
  GIVEN a valid category
  WHEN listing questions with ?category=
  THEN only questions in that category are returned

AC-QUEST-003: Invalid Category
  GIVEN an unknown category
  WHEN listing questions with ?category=
  THEN a validation error is returned

AC-QUEST-004: Get Question
  GIVEN an existing question ID
  WHEN fetching the question
  THEN the question is returned
  AND unknown IDs yield 404

AC-QUEST-005: List Categories
  GIVEN the category set
  WHEN listing categories
  THEN each has an id and a label
*/

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duetmatch/duet/api/internal/catalog"
	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/testing/helpers"
)

func TestQuestionnaire_ListQuestions(t *testing.T) {
	// AC-QUEST-001: List Questions
	app := helpers.NewTestApp(t)

	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/questions").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	questions := helpers.GetCollectionFromResponse(t, resp)
	require.Len(t, questions, len(catalog.Questions()))

	for _, q := range questions {
		assert.NotEmpty(t, q["id"])
		assert.NotEmpty(t, q["text"])
		assert.NotEmpty(t, q["category"])
	}
}

func TestQuestionnaire_FilterByCategory(t *testing.T) {
	// AC-QUEST-002: Filter By Category
	app := helpers.NewTestApp(t)

	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/questions?category="+model.QuestionCategorySocial).Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	questions := helpers.GetCollectionFromResponse(t, resp)
	require.NotEmpty(t, questions)

	for _, q := range questions {
		assert.Equal(t, model.QuestionCategorySocial, q["category"])
	}
}

func TestQuestionnaire_InvalidCategory(t *testing.T) {
	// AC-QUEST-003: Invalid Category
	app := helpers.NewTestApp(t)

	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/questions?category=astrology").Build())

	helpers.AssertValidationError(t, resp, "category")
}

func TestQuestionnaire_GetQuestion(t *testing.T) {
	// AC-QUEST-004: Get Question
	app := helpers.NewTestApp(t)

	want := catalog.Questions()[0]
	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/questions/"+want.ID).Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	data := helpers.GetDataFromResponse(t, resp)
	assert.Equal(t, want.ID, data["id"])
	assert.Equal(t, want.Text, data["text"])
}

func TestQuestionnaire_GetQuestion_NotFound(t *testing.T) {
	// AC-QUEST-004: Get Question (unknown ID)
	app := helpers.NewTestApp(t)

	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/questions/q9999").Build())

	helpers.AssertProblemDetails(t, resp, http.StatusNotFound, model.ErrCodeNotFound)
}

func TestQuestionnaire_ListCategories(t *testing.T) {
	// AC-QUEST-005: List Categories
	app := helpers.NewTestApp(t)

	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/questions/categories").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	categories := helpers.GetCollectionFromResponse(t, resp)
	require.Len(t, categories, len(model.QuestionCategories))

	for _, c := range categories {
		assert.NotEmpty(t, c["id"])
		assert.NotEmpty(t, c["label"])
	}
}
