package tests

/*
FEATURE: Compatibility Scoring
DOMAIN: Matching

ACCEPTANCE CRITERIA:
===================

AC-COMPAT-001: Identical Profiles
  GIVEN two profiles with identical answers
  WHEN computing compatibility
  THEN every trait similarity is 100
  AND the overall score is 100

AC-COMPAT-002: Symmetry
  GIVEN profiles A and B
  WHEN computing A/B and B/A
  THEN the overall scores are equal

AC-COMPAT-003: Trait Classification
  GIVEN a trait similarity at or above 80
  THEN the trait is listed as matched
  GIVEN a trait similarity below 50
  THEN the trait is listed as a difference

AC-COMPAT-004: Narrative
  GIVEN any pair of profiles
  WHEN computing compatibility
  THEN strengths, challenges, and suggestions are never empty
  AND personality type and love language descriptions are present

AC-COMPAT-005: Missing Profile
  GIVEN an unknown profile ID
  WHEN computing compatibility
  THEN a 404 is returned
*/

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/testing/fixtures"
	"github.com/duetmatch/duet/api/internal/testing/helpers"
)

func compatibilityBetween(t *testing.T, app *helpers.TestApp, idA, idB string) model.CompatibilityResult {
	t.Helper()

	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/compatibility/"+idA+"/"+idB).Build())
	helpers.AssertStatus(t, resp, http.StatusOK)

	var envelope struct {
		Data model.CompatibilityResult `json:"data"`
	}
	helpers.DecodeResponse(t, resp, &envelope)
	return envelope.Data
}

func TestCompatibility_IdenticalProfiles(t *testing.T) {
	// AC-COMPAT-001: Identical Profiles
	app := helpers.NewTestApp(t)
	f := fixtures.New(app.Repo)

	a := f.CreateProfile(t)
	b := f.CreateProfile(t)

	result := compatibilityBetween(t, app, a.ID, b.ID)

	assert.Equal(t, 100, result.OverallScore)
	for key, score := range result.TraitScores {
		assert.Equal(t, 100, score, "trait %s", key)
	}
	assert.Len(t, result.MatchedTraits, len(model.TraitKeys))
	assert.Empty(t, result.Differences)
}

func TestCompatibility_Symmetry(t *testing.T) {
	// AC-COMPAT-002: Symmetry
	app := helpers.NewTestApp(t)
	f := fixtures.New(app.Repo)

	a := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
		o.Answers = fixtures.WithTrait(fixtures.NeutralAnswers(), model.TraitAdventurousness, 5)
	})
	b := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
		o.Answers = fixtures.WithTrait(fixtures.NeutralAnswers(), model.TraitAdventurousness, 1)
	})

	ab := compatibilityBetween(t, app, a.ID, b.ID)
	ba := compatibilityBetween(t, app, b.ID, a.ID)

	assert.Equal(t, ab.OverallScore, ba.OverallScore)
	assert.Equal(t, ab.TraitScores, ba.TraitScores)
}

func TestCompatibility_TraitClassification(t *testing.T) {
	// AC-COMPAT-003: Trait Classification
	app := helpers.NewTestApp(t)
	f := fixtures.New(app.Repo)

	a := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
		o.Answers = fixtures.WithTrait(fixtures.NeutralAnswers(), model.TraitExtraversion, 5)
	})
	b := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
		o.Answers = fixtures.WithTrait(fixtures.NeutralAnswers(), model.TraitExtraversion, 1)
	})

	result := compatibilityBetween(t, app, a.ID, b.ID)

	// Opposed extraversion answers put similarity well below the
	// difference threshold; untouched traits stay identical.
	assert.Less(t, result.TraitScores[model.TraitExtraversion], model.DifferenceThreshold)
	assert.Contains(t, result.Differences, model.TraitLabel(model.TraitExtraversion))
	assert.NotContains(t, result.MatchedTraits, model.TraitLabel(model.TraitExtraversion))
	assert.Contains(t, result.MatchedTraits, model.TraitLabel(model.TraitHumor))
}

func TestCompatibility_NarrativeNeverEmpty(t *testing.T) {
	// AC-COMPAT-004: Narrative
	app := helpers.NewTestApp(t)
	f := fixtures.New(app.Repo)

	a := f.CreateProfile(t)
	b := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
		o.Answers = fixtures.WithTrait(fixtures.NeutralAnswers(), model.TraitTrust, 1)
	})

	result := compatibilityBetween(t, app, a.ID, b.ID)

	require.NotEmpty(t, result.Strengths)
	require.NotEmpty(t, result.Challenges)
	require.NotEmpty(t, result.Suggestions)
	assert.NotEmpty(t, result.PersonalityTypeMatch)
	assert.NotEmpty(t, result.LoveLanguageMatch)
}

func TestCompatibility_LoveLanguageDescribed(t *testing.T) {
	// AC-COMPAT-004: Narrative (love language)
	app := helpers.NewTestApp(t)
	f := fixtures.New(app.Repo)

	a := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
		o.Answers = fixtures.WithLoveLanguage(fixtures.NeutralAnswers(), model.LoveLanguagePhysicalTouch)
	})
	b := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
		o.Answers = fixtures.WithLoveLanguage(fixtures.NeutralAnswers(), model.LoveLanguagePhysicalTouch)
	})

	result := compatibilityBetween(t, app, a.ID, b.ID)

	assert.Contains(t, result.LoveLanguageMatch, model.LoveLanguageLabel(model.LoveLanguagePhysicalTouch))
}

func TestCompatibility_MissingProfile(t *testing.T) {
	// AC-COMPAT-005: Missing Profile
	app := helpers.NewTestApp(t)
	f := fixtures.New(app.Repo)

	a := f.CreateProfile(t)

	resp := app.Do(helpers.NewRequest(t, http.MethodGet, "/v1/compatibility/"+a.ID+"/no-such-id").Build())

	helpers.AssertProblemDetails(t, resp, http.StatusNotFound, model.ErrCodeNotFound)
}
