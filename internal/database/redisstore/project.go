package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ListProjects reads the owner's index and fetches every project in one
// pipeline. Ids whose hash has vanished are skipped.
func (s *Store) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	ids, err := s.client.LRange(ctx, userProjectsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	projects := make([]domain.Project, 0, len(ids))
	if len(ids) == 0 {
		return projects, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, projectKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	for i, cmd := range cmds {
		h := cmd.Val()
		if len(h) == 0 {
			continue
		}
		var p domain.Project
		if err := decodeHash(h, &p); err != nil {
			return nil, fmt.Errorf("failed to decode project %s: %w", ids[i], err)
		}
		p.ID = ids[i]
		projects = append(projects, p)
	}
	return projects, nil
}

// CreateProject stores the hash and appends the id to the owner's index in
// one MULTI/EXEC.
func (s *Store) CreateProject(ctx context.Context, p domain.Project) (string, error) {
	if p.UserID == "" {
		return "", fmt.Errorf("%w: project owner cannot be empty", domain.ErrInvalidInput)
	}
	id := uuid.NewString()

	data := domain.DraftOf(p).Fields()
	data[domain.FieldUserID] = p.UserID
	created := time.Now().UTC()
	if p.CreatedAt != nil {
		created = p.CreatedAt.UTC()
	}
	data[domain.FieldCreatedAt] = created
	if p.UpdatedAt != nil {
		data[domain.FieldUpdatedAt] = p.UpdatedAt.UTC()
	}

	encoded, err := encodeFields(data)
	if err != nil {
		return "", err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, projectKey(id), encoded)
		pipe.RPush(ctx, userProjectsKey(p.UserID), id)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

// GetProject returns a single project.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	h, err := s.client.HGetAll(ctx, projectKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if len(h) == 0 {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	var p domain.Project
	if err := decodeHash(h, &p); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}

// UpdateProject merges fields into an existing hash. The existence check and
// the write run under WATCH so a concurrent delete cannot resurrect it.
func (s *Store) UpdateProject(ctx context.Context, id string, fields map[string]any) error {
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	key := projectKey(id)

	err = s.watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, encoded)
			return nil
		})
		return err
	}, key)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return err
}

// DeleteProject removes the hash and its entry in the owner's index.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	key := projectKey(id)

	err := s.watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, domain.FieldUserID).Result()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		if err != nil {
			return err
		}
		owner := decodeString(raw)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.LRem(ctx, userProjectsKey(owner), 0, id)
			return nil
		})
		return err
	}, key)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return err
}
