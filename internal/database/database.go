package database

import (
	"context"
	"errors"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested key does not exist.
	ErrNotFound = errors.New("key not found")

	// ErrConnection indicates a failure to connect to or communicate with the store.
	ErrConnection = errors.New("store connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Store defines the key-value persistence contract the repositories build
// on. Writes are atomic per call: a Put either replaces the whole value for
// a key or fails, never partially. Implementations assume a single
// consumer; there is no cross-writer coordination.
type Store interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing key is
	// a no-op, not an error.
	Delete(ctx context.Context, key string) error
}

// Config holds store configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
