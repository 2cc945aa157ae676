package database

import (
	"context"

	"github.com/as1coder/portfolioBuilder/internal/domain"
)

const (
	selectProfileQuery = "SELECT * FROM type::thing($tb, $id)"
	upsertProfileQuery = "UPSERT type::thing($tb, $id) MERGE $data"
)

// GetProfile returns the profile stored under userID, or (nil, nil).
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, NewDBError(ErrInvalidID, "user id cannot be empty")
	}

	var rec *profileRecord
	err := withClient(ctx, s.conn, func(c Client[profileRecord]) error {
		var err error
		rec, err = c.QueryOne(ctx, selectProfileQuery, map[string]any{"tb": TableUsers, "id": userID})
		return err
	})
	if err != nil {
		logFailure(ctx, "get_profile", err, "user_id", userID)
		return nil, WrapError(err, "get profile")
	}
	if rec == nil {
		return nil, nil
	}
	return rec.toDomain(), nil
}

// UpsertProfile merges the included fields into users:{userID}. MERGE only
// touches the keys present in $data.
func (s *Store) UpsertProfile(ctx context.Context, userID string, fields domain.ProfileFields) error {
	if userID == "" {
		return NewDBError(ErrInvalidID, "user id cannot be empty")
	}
	data := fields.Map()
	if len(data) == 0 {
		return nil
	}

	params := map[string]any{"tb": TableUsers, "id": userID, "data": surrealData(data)}
	err := withClient(ctx, s.conn, func(c Client[profileRecord]) error {
		return c.Execute(ctx, upsertProfileQuery, params)
	})
	if err != nil {
		logFailure(ctx, "upsert_profile", err, "user_id", userID)
		return WrapError(err, "upsert profile")
	}
	return nil
}
