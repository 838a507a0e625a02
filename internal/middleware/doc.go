// Package middleware provides HTTP middleware for the Duet API.
//
// The middleware package contains reusable components for request
// identification, structured request logging, panic recovery, CORS,
// response compression, and rate limiting.
//
// # Available Middleware
//
//   - RequestID: Assigns a unique X-Request-ID to each request
//   - Logger: Structured request logging via log/slog
//   - Recovery: Panic recovery returning an RFC 9457 500 response
//   - CORS: Cross-origin request handling with an origin allowlist
//   - RateLimit: Token bucket rate limiting per remote address
//   - Compress: gzip response compression
//
// # Composition
//
// Middleware compose with Chain, applied in order:
//
//	wrapped := middleware.Chain(
//	    mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
