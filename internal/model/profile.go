package model

import (
	"fmt"
	"time"
)

// Gender options
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// IsValidGender reports whether g is a recognized gender value.
func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// Profile constraints
const (
	MinProfileAge     = 18
	MaxProfileAge     = 100
	MaxNameLength     = 100
	MaxLocationLength = 100
	MaxBioLength      = 500
)

// PersonalityProfile is a persisted questionnaire profile.
//
// Traits and MBTIType are derived from Answers at creation time and are
// never hand-edited; if answers change, the derived fields are recomputed
// and the whole record replaced. JSON keys match the stored wire format and
// must round-trip without loss.
type PersonalityProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty"`

	// Answers maps question ID to a Likert value in [1,5]. Retained so the
	// profile can be recomputed if the answers change.
	Answers map[string]int `json:"answers"`

	// Derived fields.
	Traits   PersonalityTraits `json:"traits"`
	MBTIType string            `json:"mbtiType"`

	CreatedOn time.Time `json:"createdOn"`
	UpdatedOn time.Time `json:"updatedOn"`
}

// CreateProfileRequest represents a request to create a profile from a
// completed questionnaire.
type CreateProfileRequest struct {
	Name     string         `json:"name"`
	Age      int            `json:"age"`
	Gender   string         `json:"gender"`
	Location string         `json:"location,omitempty"`
	Bio      string         `json:"bio,omitempty"`
	Answers  map[string]int `json:"answers"`
}

// Validate checks identity fields and answer value ranges. Mandatory
// question completeness is checked separately against the catalog.
func (r *CreateProfileRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: fmt.Sprintf("name exceeds %d characters", MaxNameLength)})
	}
	if r.Age < MinProfileAge || r.Age > MaxProfileAge {
		errs = append(errs, FieldError{Field: "age", Message: fmt.Sprintf("age must be between %d and %d", MinProfileAge, MaxProfileAge)})
	}
	if !IsValidGender(r.Gender) {
		errs = append(errs, FieldError{Field: "gender", Message: "gender must be 'male' or 'female'"})
	}
	if len(r.Location) > MaxLocationLength {
		errs = append(errs, FieldError{Field: "location", Message: fmt.Sprintf("location exceeds %d characters", MaxLocationLength)})
	}
	if len(r.Bio) > MaxBioLength {
		errs = append(errs, FieldError{Field: "bio", Message: fmt.Sprintf("bio exceeds %d characters", MaxBioLength)})
	}
	errs = append(errs, validateAnswers(r.Answers)...)

	return errs
}

// UpdateAnswersRequest represents a request to re-derive a profile from a
// new answer set. The stored record is replaced, not mutated in place.
type UpdateAnswersRequest struct {
	Answers map[string]int `json:"answers"`
}

// Validate checks answer value ranges.
func (r *UpdateAnswersRequest) Validate() []FieldError {
	return validateAnswers(r.Answers)
}

func validateAnswers(answers map[string]int) []FieldError {
	var errs []FieldError
	for id, value := range answers {
		if value < MinAnswerValue || value > MaxAnswerValue {
			errs = append(errs, FieldError{
				Field:   "answers." + id,
				Message: fmt.Sprintf("answer must be between %d and %d", MinAnswerValue, MaxAnswerValue),
			})
		}
	}
	return errs
}
