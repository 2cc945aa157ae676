package firestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, "op"))

	err := mapError(status.Error(codes.NotFound, "no document"), "delete project p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "delete project p1")

	err = mapError(status.Error(codes.PermissionDenied, "missing permissions"), "update project p1")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, codes.PermissionDenied, status.Code(errors.Unwrap(err)))
}

func TestTaglineOf(t *testing.T) {
	assert.Equal(t, domain.Tagline("a, b"), taglineOf("a, b"))
	assert.Equal(t, domain.Tagline("a, b"), taglineOf([]any{"a", "b"}))
	assert.Equal(t, domain.Tagline(""), taglineOf(nil))
}

func TestClassifyToolkitError(t *testing.T) {
	cases := []struct {
		msg  string
		want domain.IdentityCode
	}{
		{"INVALID_LOGIN_CREDENTIALS", domain.CodeInvalidCredential},
		{"EMAIL_NOT_FOUND", domain.CodeInvalidCredential},
		{"INVALID_PASSWORD", domain.CodeInvalidCredential},
		{"INVALID_EMAIL", domain.CodeInvalidEmail},
		{"WEAK_PASSWORD : Password should be at least 6 characters", domain.CodeWeakPassword},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", domain.CodeUnknown},
	}
	for _, tc := range cases {
		err := classifyToolkitError(&googleapi.Error{Code: 400, Message: tc.msg})
		assert.Equal(t, tc.want, domain.IdentityCodeOf(err), tc.msg)
	}

	plain := classifyToolkitError(errors.New("dial tcp: timeout"))
	assert.Equal(t, domain.CodeUnknown, domain.IdentityCodeOf(plain))
	assert.Contains(t, plain.Error(), "verify password")
}

func TestStore_Emulator(t *testing.T) {
	cfg := testutils.RequireFirestore(t)
	ctx := context.Background()

	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	store, err := Open(ctx, app)
	require.NoError(t, err)
	defer store.Close()

	userID := uuid.NewString()

	p, err := store.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, store.UpsertProfile(ctx, userID, domain.ProfileFields{Name: domain.Ref("Ada")}))
	require.NoError(t, store.UpsertProfile(ctx, userID, domain.ProfileFields{Bio: domain.Ref("Writes Go")}))
	p, err = store.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "Writes Go", p.Bio)

	created := time.Now().UTC()
	id, err := store.CreateProject(ctx, domain.Project{Title: "T", Description: "D", LiveLink: "https://x", UserID: userID, CreatedAt: &created})
	require.NoError(t, err)

	list, err := store.ListProjects(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, userID, list[0].UserID)

	assert.ErrorIs(t, store.DeleteProject(ctx, "missing-"+id), domain.ErrNotFound)
	assert.ErrorIs(t, store.UpdateProject(ctx, "missing-"+id, map[string]any{"title": "x"}), domain.ErrNotFound)
	require.NoError(t, store.DeleteProject(ctx, id))
}
