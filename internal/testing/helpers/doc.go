// Package helpers provides common test utilities for acceptance testing.
//
// NewTestApp wires the full HTTP stack over an isolated in-memory store,
// mirroring production routing and middleware. The package also includes
// HTTP request builders, response envelope decoders, and RFC 9457
// Problem Details assertion helpers.
package helpers
