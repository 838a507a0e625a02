// Package handler provides HTTP request handlers for the Duet API.
//
// Each handler struct encapsulates the dependencies needed to serve requests
// for one feature area: the questionnaire catalog, personality profiles, and
// pairwise compatibility scoring.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details responses
//     via MapServiceError
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources with an item count
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	handler := NewProfileHandler(profileService)
//	mux.HandleFunc("POST /v1/profiles", handler.Create)
//	mux.HandleFunc("GET /v1/profiles/{profileId}", handler.Get)
package handler
