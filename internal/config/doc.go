// Package config provides application configuration for the Duet API.
//
// Configuration is read from environment variables with sensible defaults
// for local development. Load never fails on missing variables; Validate
// reports every invalid or missing required value at once via errors.Join.
//
// # Environment Variables
//
// Server:
//
//   - SERVER_PORT (default "8080")
//   - SERVER_ENV (development|production|test, default "development")
//   - SERVER_READ_TIMEOUT / SERVER_WRITE_TIMEOUT (Go durations, default 15s)
//   - CORS_ALLOWED_ORIGINS (comma-separated, default "http://localhost:3000")
//
// Profile store:
//
//   - STORE_BACKEND (surrealdb|memory, default "surrealdb")
//   - DB_HOST, DB_PORT, DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//
// Rate limiting:
//
//   - RATE_LIMIT_RATE (default 100)
//   - RATE_LIMIT_WINDOW (default 1m)
//   - RATE_LIMIT_BURST (default 20)
package config
