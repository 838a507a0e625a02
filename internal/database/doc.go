// Package database provides the persistence abstraction layer for Duet.
//
// This package defines the Store interface, a small key-value contract that
// the repository layer builds on. Repositories serialize whole collections
// as JSON blobs and write them under a single key, so the store only needs
// get/put/delete semantics.
//
// # Backends
//
// Two implementations are provided:
//   - SurrealStore: production backend over SurrealDB, storing blobs in a
//     single kv table via parameterized SurrealQL
//   - MemoryStore: in-memory backend for tests and local development
//
// # Consistency Model
//
// Writes are atomic per call: a Put replaces the entire value for a key or
// fails outright, never partially. The store is assumed single-consumer;
// there is no coordination between concurrent writers.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Key does not exist
//   - ErrConnection: Store connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing key
//	}
//
// # Usage Example
//
//	store := database.NewSurrealStore(cfg)
//	store.Connect(ctx)
//	defer store.Close()
//
//	value, err := store.Get(ctx, "profiles")
package database
