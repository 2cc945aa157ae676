package database

import (
	"context"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
)

const (
	listProjectsQuery  = "SELECT * FROM type::table($tb) WHERE userId = $userId ORDER BY createdAt ASC"
	selectProjectQuery = "SELECT * FROM type::thing($tb, $id)"
	updateProjectQuery = "UPDATE type::thing($tb, $id) MERGE $data RETURN AFTER"
	deleteProjectQuery = "DELETE type::thing($tb, $id) RETURN BEFORE"
)

// ListProjects returns the owner's projects, oldest first.
func (s *Store) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	var recs []projectRecord
	err := withClient(ctx, s.conn, func(c Client[projectRecord]) error {
		var err error
		recs, err = c.Query(ctx, listProjectsQuery, map[string]any{"tb": TableProjects, "userId": userID})
		return err
	})
	if err != nil {
		logFailure(ctx, "list_projects", err, "user_id", userID)
		return nil, WrapError(err, "list projects")
	}

	projects := make([]domain.Project, 0, len(recs))
	for i := range recs {
		projects = append(projects, recs[i].toDomain())
	}
	return projects, nil
}

// CreateProject stores p and returns the generated record key.
func (s *Store) CreateProject(ctx context.Context, p domain.Project) (string, error) {
	if p.UserID == "" {
		return "", NewDBError(ErrInvalidInput, "project owner cannot be empty")
	}

	data := domain.DraftOf(p).Fields()
	data[domain.FieldUserID] = p.UserID
	if p.CreatedAt != nil {
		data[domain.FieldCreatedAt] = *p.CreatedAt
	} else {
		data[domain.FieldCreatedAt] = time.Now()
	}
	if p.UpdatedAt != nil {
		data[domain.FieldUpdatedAt] = *p.UpdatedAt
	}

	var rec *projectRecord
	err := withClient(ctx, s.conn, func(c Client[projectRecord]) error {
		var err error
		rec, err = c.Create(ctx, TableProjects, surrealData(data))
		return err
	})
	if err != nil {
		logFailure(ctx, "create_project", err, "user_id", p.UserID)
		return "", WrapError(err, "create project")
	}
	return recordKey(rec.ID), nil
}

// GetProject returns projects:{id}.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if id == "" {
		return nil, NewDBError(ErrInvalidID, "project id cannot be empty")
	}

	var rec *projectRecord
	err := withClient(ctx, s.conn, func(c Client[projectRecord]) error {
		var err error
		rec, err = c.QueryOne(ctx, selectProjectQuery, map[string]any{"tb": TableProjects, "id": id})
		return err
	})
	if err != nil {
		return nil, WrapError(err, "get project")
	}
	if rec == nil {
		return nil, notFound(NewDBError(ErrNotFound, "project "+id))
	}
	p := rec.toDomain()
	return &p, nil
}

// UpdateProject merges fields into projects:{id}. UPDATE never creates, so an
// empty result means the record does not exist.
func (s *Store) UpdateProject(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return NewDBError(ErrInvalidID, "project id cannot be empty")
	}

	var rec *projectRecord
	params := map[string]any{"tb": TableProjects, "id": id, "data": surrealData(fields)}
	err := withClient(ctx, s.conn, func(c Client[projectRecord]) error {
		var err error
		rec, err = c.QueryOne(ctx, updateProjectQuery, params)
		return err
	})
	if err != nil {
		logFailure(ctx, "update_project", err, "project_id", id)
		return WrapError(err, "update project")
	}
	if rec == nil {
		return notFound(NewDBError(ErrNotFound, "project "+id))
	}
	return nil
}

// DeleteProject removes projects:{id}.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return NewDBError(ErrInvalidID, "project id cannot be empty")
	}

	var rec *projectRecord
	err := withClient(ctx, s.conn, func(c Client[projectRecord]) error {
		var err error
		rec, err = c.QueryOne(ctx, deleteProjectQuery, map[string]any{"tb": TableProjects, "id": id})
		return err
	})
	if err != nil {
		logFailure(ctx, "delete_project", err, "project_id", id)
		return WrapError(err, "delete project")
	}
	if rec == nil {
		return notFound(NewDBError(ErrNotFound, "project "+id))
	}
	return nil
}
