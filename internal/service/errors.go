package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Profile Errors =====
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrInvalidGender       = errors.New("gender must be 'male' or 'female'")
	ErrMandatoryUnanswered = errors.New("mandatory questions unanswered")
)

// ===== Questionnaire Errors =====
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidCategory  = errors.New("unknown question category")
)
