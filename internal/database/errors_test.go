package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBError(t *testing.T) {
	t.Run("message carries query and params", func(t *testing.T) {
		err := NewDBError(ErrNotFound, "get profile").
			WithQuery("SELECT * FROM users").
			WithParams(map[string]any{"id": "u1"})

		assert.Contains(t, err.Error(), "get profile")
		assert.Contains(t, err.Error(), "Query: SELECT * FROM users")
		assert.Contains(t, err.Error(), "Params: map[id:u1]")
		assert.Contains(t, err.Error(), ErrNotFound.Error())
	})

	t.Run("is matches sentinels through the chain", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NewDBError(ErrNotFound, "inner"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrQueryFailed)
	})

	t.Run("query failures keep the driver error", func(t *testing.T) {
		driver := errors.New("there was a problem with the database")
		err := NewDBError(fmt.Errorf("%w: %w", ErrQueryFailed, driver), "query")
		assert.ErrorIs(t, err, ErrQueryFailed)
		assert.ErrorIs(t, err, driver)
	})
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ignored"))

	base := NewDBError(ErrInvalidID, "parse id").WithQuery("SELECT 1")
	wrapped := WrapError(base, "get project")
	assert.Same(t, base, wrapped)
	assert.Contains(t, wrapped.Error(), "get project: parse id")
	assert.Contains(t, wrapped.Error(), "Query: SELECT 1")

	plain := WrapError(errors.New("boom"), "list projects")
	assert.Equal(t, "list projects: boom", plain.Error())
}
