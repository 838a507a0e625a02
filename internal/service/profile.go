package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duetmatch/duet/api/internal/catalog"
	"github.com/duetmatch/duet/api/internal/model"
)

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	Save(ctx context.Context, profile *model.PersonalityProfile) error
	GetAll(ctx context.Context) ([]*model.PersonalityProfile, error)
	GetByID(ctx context.Context, id string) (*model.PersonalityProfile, error)
	GetByGender(ctx context.Context, gender string) ([]*model.PersonalityProfile, error)
	DeleteByID(ctx context.Context, id string) error
}

// ProfileService handles profile lifecycle: creation from a completed
// questionnaire, listing, and deletion. Derived fields (traits, MBTI type)
// are computed here and only here; they are never accepted from callers.
type ProfileService struct {
	repo ProfileRepository
}

// ProfileServiceConfig holds configuration for the profile service
type ProfileServiceConfig struct {
	ProfileRepo ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(cfg ProfileServiceConfig) *ProfileService {
	return &ProfileService{
		repo: cfg.ProfileRepo,
	}
}

// Create validates the request, derives traits and MBTI type from the
// submitted answers, and persists the new profile.
func (s *ProfileService) Create(ctx context.Context, req *model.CreateProfileRequest) (*model.PersonalityProfile, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	questions := catalog.Questions()
	if missing := MissingMandatory(req.Answers, questions); len(missing) > 0 {
		return nil, ErrMandatoryUnanswered
	}

	answers := copyAnswers(req.Answers)
	traits := AggregateTraits(answers, questions)
	now := time.Now().UTC()

	profile := &model.PersonalityProfile{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Location:  req.Location,
		Bio:       req.Bio,
		Answers:   answers,
		Traits:    traits,
		MBTIType:  ClassifyMBTI(traits),
		CreatedOn: now,
		UpdatedOn: now,
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateAnswers re-derives a profile from a new answer set and replaces the
// stored record. Profiles are recompute-and-replace, never mutated field by
// field.
func (s *ProfileService) UpdateAnswers(ctx context.Context, id string, req *model.UpdateAnswersRequest) (*model.PersonalityProfile, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	questions := catalog.Questions()
	if missing := MissingMandatory(req.Answers, questions); len(missing) > 0 {
		return nil, ErrMandatoryUnanswered
	}

	answers := copyAnswers(req.Answers)
	traits := AggregateTraits(answers, questions)

	updated := &model.PersonalityProfile{
		ID:        existing.ID,
		Name:      existing.Name,
		Age:       existing.Age,
		Gender:    existing.Gender,
		Location:  existing.Location,
		Bio:       existing.Bio,
		Answers:   answers,
		Traits:    traits,
		MBTIType:  ClassifyMBTI(traits),
		CreatedOn: existing.CreatedOn,
		UpdatedOn: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Get returns a stored profile by ID.
func (s *ProfileService) Get(ctx context.Context, id string) (*model.PersonalityProfile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// List returns all stored profiles.
func (s *ProfileService) List(ctx context.Context) ([]*model.PersonalityProfile, error) {
	return s.repo.GetAll(ctx)
}

// ListByGender returns stored profiles matching gender.
func (s *ProfileService) ListByGender(ctx context.Context, gender string) ([]*model.PersonalityProfile, error) {
	if !model.IsValidGender(gender) {
		return nil, ErrInvalidGender
	}
	return s.repo.GetByGender(ctx, gender)
}

// Delete removes a profile. Deleting an unknown ID is a no-op.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func copyAnswers(answers map[string]int) map[string]int {
	out := make(map[string]int, len(answers))
	for id, value := range answers {
		out[id] = value
	}
	return out
}
