package redisstore

import (
	"context"
	"fmt"

	"github.com/as1coder/portfolioBuilder/internal/domain"
)

// GetProfile returns the profile hash, or (nil, nil) when it does not exist.
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	h, err := s.client.HGetAll(ctx, userKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if len(h) == 0 {
		return nil, nil
	}

	var p domain.Profile
	if err := decodeHash(h, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", userID, err)
	}
	p.ID = userID
	return &p, nil
}

// UpsertProfile writes the included fields with HSET, which creates the hash
// when missing and leaves every other field untouched.
func (s *Store) UpsertProfile(ctx context.Context, userID string, fields domain.ProfileFields) error {
	data := fields.Map()
	if len(data) == 0 {
		return nil
	}
	encoded, err := encodeFields(data)
	if err != nil {
		return err
	}
	if err := s.client.HSet(ctx, userKey(userID), encoded).Err(); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
