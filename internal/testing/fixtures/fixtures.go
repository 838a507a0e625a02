package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/duetmatch/duet/api/internal/catalog"
	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/service"
)

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ============================================================================
// Answer Fixtures
// ============================================================================

// NeutralAnswers returns a complete answer set with every catalog question
// answered 3, which aggregates to a score of 50 for every trait.
func NeutralAnswers() map[string]int {
	answers := make(map[string]int)
	for _, q := range catalog.Questions() {
		answers[q.ID] = model.NeutralAnswerValue
	}
	return answers
}

// WithTrait sets every question feeding the given trait so that the trait
// aggregates toward value. Positive-weight questions get value directly;
// negative-weight questions get the inverted answer.
func WithTrait(answers map[string]int, trait string, value int) map[string]int {
	for _, q := range catalog.Questions() {
		if !q.IsTrait() || q.Trait != trait {
			continue
		}
		if q.Weight > 0 {
			answers[q.ID] = value
		} else {
			answers[q.ID] = model.MaxAnswerValue + model.MinAnswerValue - value
		}
	}
	return answers
}

// WithLoveLanguage raises the raw sum of the given love language's questions
// so it is derived as the dominant language.
func WithLoveLanguage(answers map[string]int, language string) map[string]int {
	for _, src := range catalog.LoveLanguageSources() {
		value := model.MinAnswerValue
		if src.Language == language {
			value = model.MaxAnswerValue
		}
		for _, id := range src.QuestionIDs {
			answers[id] = value
		}
	}
	return answers
}

// MandatoryAnswers returns only the mandatory questions answered neutrally,
// the minimum answer set accepted at profile creation.
func MandatoryAnswers() map[string]int {
	answers := make(map[string]int)
	for _, q := range catalog.Questions() {
		if q.Mandatory {
			answers[q.ID] = model.NeutralAnswerValue
		}
	}
	return answers
}

// ============================================================================
// Profile Fixtures
// ============================================================================

// ProfileOpts customizes profile creation
type ProfileOpts struct {
	Name     string
	Age      int
	Gender   string
	Location string
	Bio      string
	Answers  map[string]int
}

// CreateProfileRequest builds a valid profile creation request with optional
// customizations.
func CreateProfileRequest(t *testing.T, opts ...func(*ProfileOpts)) *model.CreateProfileRequest {
	t.Helper()

	o := &ProfileOpts{
		Name:    fmt.Sprintf("user_%s", randomID()),
		Age:     30,
		Gender:  model.GenderFemale,
		Answers: NeutralAnswers(),
	}
	for _, fn := range opts {
		fn(o)
	}

	return &model.CreateProfileRequest{
		Name:     o.Name,
		Age:      o.Age,
		Gender:   o.Gender,
		Location: o.Location,
		Bio:      o.Bio,
		Answers:  o.Answers,
	}
}

// ProfileRepository is the subset of repository behavior fixtures need.
type ProfileRepository interface {
	Save(ctx context.Context, profile *model.PersonalityProfile) error
}

// Factory creates stored test profiles
type Factory struct {
	repo ProfileRepository
}

// New creates a new fixture factory
func New(repo ProfileRepository) *Factory {
	return &Factory{repo: repo}
}

// CreateProfile builds a profile with derived traits and type classification
// and saves it through the repository.
func (f *Factory) CreateProfile(t *testing.T, opts ...func(*ProfileOpts)) *model.PersonalityProfile {
	t.Helper()

	req := CreateProfileRequest(t, opts...)
	traits := service.AggregateTraits(req.Answers, catalog.Questions())
	now := time.Now().UTC()

	profile := &model.PersonalityProfile{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Location:  req.Location,
		Bio:       req.Bio,
		Answers:   req.Answers,
		Traits:    traits,
		MBTIType:  service.ClassifyMBTI(traits),
		CreatedOn: now,
		UpdatedOn: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := f.repo.Save(ctx, profile); err != nil {
		t.Fatalf("fixtures: failed to save profile: %v", err)
	}
	return profile
}
