package firestore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	gfs "cloud.google.com/go/firestore"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"google.golang.org/api/iterator"
)

// GetProfile returns users/{userID}, or (nil, nil) when it does not exist.
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	snap, err := s.users().Doc(userID).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	return doc.toDomain(snap.Ref.ID), nil
}

// UpsertProfile merges the included fields into users/{userID}.
func (s *Store) UpsertProfile(ctx context.Context, userID string, fields domain.ProfileFields) error {
	data := fields.Map()
	if len(data) == 0 {
		return nil
	}
	if _, err := s.users().Doc(userID).Set(ctx, data, gfs.MergeAll); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// ListProjects queries by owner. Ordering by createdAt in the query would
// need a composite index, so documents are ordered here instead.
func (s *Store) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	iter := s.projects().Where(domain.FieldUserID, "==", userID).Documents(ctx)
	defer iter.Stop()

	projects := []domain.Project{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", snap.Ref.ID, err)
		}
		p.ID = snap.Ref.ID
		projects = append(projects, p)
	}

	slices.SortStableFunc(projects, func(a, b domain.Project) int {
		return cmp.Compare(unixNano(a.CreatedAt), unixNano(b.CreatedAt))
	})
	return projects, nil
}

func unixNano(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixNano()
}

// CreateProject adds a document with a generated id.
func (s *Store) CreateProject(ctx context.Context, p domain.Project) (string, error) {
	if p.UserID == "" {
		return "", fmt.Errorf("%w: project owner cannot be empty", domain.ErrInvalidInput)
	}
	data := domain.DraftOf(p).Fields()
	data[domain.FieldUserID] = p.UserID
	if p.CreatedAt != nil {
		data[domain.FieldCreatedAt] = p.CreatedAt.UTC()
	} else {
		data[domain.FieldCreatedAt] = gfs.ServerTimestamp
	}
	if p.UpdatedAt != nil {
		data[domain.FieldUpdatedAt] = p.UpdatedAt.UTC()
	}

	ref, _, err := s.projects().Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return ref.ID, nil
}

// GetProject returns projects/{id}.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	snap, err := s.projects().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, "get project "+id)
	}
	var p domain.Project
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", id, err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

// UpdateProject sets the given top-level fields. Update fails with NotFound
// when the document does not exist.
func (s *Store) UpdateProject(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]gfs.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, gfs.Update{Path: k, Value: v})
	}
	_, err := s.projects().Doc(id).Update(ctx, updates)
	return mapError(err, "update project "+id)
}

// DeleteProject deletes projects/{id}, failing with NotFound when absent.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	_, err := s.projects().Doc(id).Delete(ctx, gfs.Exists)
	return mapError(err, "delete project "+id)
}
