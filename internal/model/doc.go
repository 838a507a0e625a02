// Package model defines domain entities and data structures for the Duet API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Question: A catalog entry, tagged by kind (trait, mbti, enneagram,
//     love_language) so specialized questions can never leak into generic
//     trait aggregation
//   - PersonalityTraits: The dense 0-100 trait record derived from answers
//   - PersonalityProfile: A persisted profile with its answers and derived
//     traits and MBTI type
//   - CompatibilityResult: The ephemeral pairwise comparison of two profiles
//
// # JSON Serialization
//
// Stored profiles and compatibility results use the original wire-format
// keys (camelCase trait keys, mbtiType, loveLanguage) and must round-trip
// through serialize/deserialize without loss.
//
// # Validation Constants
//
// The package defines validation constants:
//
//	const (
//	    MinProfileAge  = 18
//	    MaxProfileAge  = 100
//	    MinAnswerValue = 1
//	    MaxAnswerValue = 5
//	)
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
