// Package service implements the business logic layer for the Duet API.
//
// The service package contains the scoring core (trait aggregation, MBTI
// classification, pairwise compatibility) and the profile lifecycle built
// on top of it. Services are the primary abstraction between HTTP handlers
// and data access.
//
// # Scoring Core
//
// The core is a set of pure functions:
//
//   - AggregateTraits: sparse answer map -> dense 0-100 trait record
//   - ClassifyMBTI: trait record -> 4-letter type code
//   - ComputeCompatibility: two profiles -> CompatibilityResult
//
// These are deterministic, perform no I/O, and assume pre-validated input;
// range and shape validation happens at the boundary (request Validate
// methods and the profile service), never inside the core.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with
//     repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors for predictable handling
//   - Context is passed through for cancellation
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific store implementations
//   - Clear contracts for data access requirements
//
// # Example Usage
//
//	service := NewProfileService(ProfileServiceConfig{
//	    Repo: profileRepository,
//	})
//	profile, err := service.Create(ctx, &model.CreateProfileRequest{
//	    Name:    "Ada",
//	    Age:     30,
//	    Gender:  model.GenderFemale,
//	    Answers: answers,
//	})
package service
