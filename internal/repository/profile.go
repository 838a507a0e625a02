package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/duetmatch/duet/api/internal/database"
	"github.com/duetmatch/duet/api/internal/model"
)

// profilesKey is the store key holding the serialized profile collection.
const profilesKey = "profiles"

// ProfileRepository persists personality profiles against a key-value
// store. The whole collection is serialized on every mutating call; the
// expected collection size is tens of profiles, not millions.
type ProfileRepository struct {
	store database.Store
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(store database.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Save inserts or replaces a profile. An existing profile with the same ID
// is replaced in place, preserving collection order; otherwise the profile
// is appended.
func (r *ProfileRepository) Save(ctx context.Context, profile *model.PersonalityProfile) error {
	profiles, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range profiles {
		if existing.ID == profile.ID {
			profiles[i] = profile
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, profile)
	}

	return r.persist(ctx, profiles)
}

// GetAll returns every stored profile in collection order.
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*model.PersonalityProfile, error) {
	return r.load(ctx)
}

// GetByID returns the profile with the given ID, or nil when absent.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.PersonalityProfile, error) {
	profiles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// GetByGender returns the profiles matching gender, in collection order.
func (r *ProfileRepository) GetByGender(ctx context.Context, gender string) ([]*model.PersonalityProfile, error) {
	profiles, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.PersonalityProfile, 0)
	for _, p := range profiles {
		if p.Gender == gender {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// DeleteByID removes the profile with the given ID. Deleting an unknown ID
// is a no-op, not an error; the collection is only rewritten when an entry
// was actually removed.
func (r *ProfileRepository) DeleteByID(ctx context.Context, id string) error {
	profiles, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, p := range profiles {
		if p.ID == id {
			profiles = append(profiles[:i], profiles[i+1:]...)
			return r.persist(ctx, profiles)
		}
	}
	return nil
}

// load reads and deserializes the collection. A missing key is an empty
// collection; any other store error propagates unmodified.
func (r *ProfileRepository) load(ctx context.Context) ([]*model.PersonalityProfile, error) {
	data, err := r.store.Get(ctx, profilesKey)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return []*model.PersonalityProfile{}, nil
		}
		return nil, err
	}

	var profiles []*model.PersonalityProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decode stored profiles: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) persist(ctx context.Context, profiles []*model.PersonalityProfile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	return r.store.Put(ctx, profilesKey, data)
}
