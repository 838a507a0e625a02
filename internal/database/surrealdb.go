package database

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// kvTable is the single table backing the key-value contract. Values are
// stored base64-encoded so arbitrary JSON blobs survive the round trip
// untouched.
const kvTable = "kv"

// SurrealStore implements the Store interface on SurrealDB.
type SurrealStore struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealStore creates a new SurrealDB-backed store.
func NewSurrealStore(cfg Config) *SurrealStore {
	return &SurrealStore{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB
func (s *SurrealStore) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Sign in as root user
	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	// Use namespace and database
	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the store connection
func (s *SurrealStore) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the store connection
func (s *SurrealStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	_, err := s.db.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *SurrealStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.queryOne(ctx,
		`SELECT value FROM type::thing($table, $key)`,
		map[string]interface{}{"table": kvTable, "key": key},
	)
	if err != nil {
		return nil, err
	}

	record, ok := result.(map[string]interface{})
	if !ok {
		return nil, ErrNotFound
	}
	encoded, ok := record["value"].(string)
	if !ok {
		return nil, ErrNotFound
	}

	value, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt value for key %q: %v", ErrQuery, key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *SurrealStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.query(ctx,
		`UPSERT type::thing($table, $key) SET value = $value, updated_on = time::now()`,
		map[string]interface{}{
			"table": kvTable,
			"key":   key,
			"value": base64.StdEncoding.EncodeToString(value),
		},
	)
	return err
}

// Delete removes the value stored under key. Missing keys are a no-op.
func (s *SurrealStore) Delete(ctx context.Context, key string) error {
	_, err := s.query(ctx,
		`DELETE type::thing($table, $key)`,
		map[string]interface{}{"table": kvTable, "key": key},
	)
	return err
}

// query executes a query and returns the per-statement results.
func (s *SurrealStore) query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	output := make([]interface{}, 0, len(*results))
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		output = append(output, r.Result)
	}

	return output, nil
}

// queryOne executes a query and returns the first record of the first
// statement, or ErrNotFound.
func (s *SurrealStore) queryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := s.query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	if records, ok := results[0].([]interface{}); ok {
		if len(records) == 0 {
			return nil, ErrNotFound
		}
		return records[0], nil
	}
	// Result is not an array, return as-is (e.g., scalar values)
	return results[0], nil
}
