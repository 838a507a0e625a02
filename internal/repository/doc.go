// Package repository implements the data access layer for the Duet API.
//
// The repository package adapts the key-value Store to collection-shaped
// access. Each repository owns one store key and serializes its whole
// collection as JSON on every mutating call; given the expected collection
// sizes (tens of profiles) this keeps writes trivially atomic.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.Store
//   - Methods implement specific data operations (Save, GetAll, GetByID,
//     GetByGender, DeleteByID)
//   - A missing store key reads as an empty collection
//   - Store errors propagate to the caller unmodified
//
// # Example Usage
//
//	repo := NewProfileRepository(store)
//	profiles, err := repo.GetAll(ctx)
package repository
