package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/database/redisstore"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type fixture struct {
	store *redisstore.Store
	fs    afero.Fs
}

// setup points the CLI at a miniredis store and an in-memory filesystem.
func setup(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)

	cfg := config.FromEnv()
	cfg.StoreDriver = config.DriverRedis
	cfg.RedisAddr = mr.Addr()
	cfg.AppBaseURL = "https://folio.test"

	prevFs, prevLoad := appFs, loadConfig
	appFs = afero.NewMemMapFs()
	loadConfig = func() config.Provider { return cfg }
	t.Cleanup(func() { appFs, loadConfig = prevFs, prevLoad })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := redisstore.NewStore(client)
	t.Cleanup(func() { _ = store.Close() })
	return &fixture{store: store, fs: appFs}
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.store.UpsertProfile(ctx, "u1", domain.ProfileFields{
		Name:      domain.Ref("Ada Lovelace"),
		Email:     domain.Ref("ada@example.com"),
		Tagline:   domain.Ref("Engineer, Writer"),
		Template:  domain.Ref("professional"),
		Onboarded: domain.Ref(true),
	}))
	_, err := f.store.CreateProject(ctx, domain.Project{
		Title:       "Analytical Engine",
		Description: "Notes on the engine",
		UserID:      "u1",
	})
	require.NoError(t, err)
}

// run executes the root command with fresh flag values.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	exportFormat, exportOut, exportDark = "json", "", false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Folio CLI v"+version+"\n", out)
}

func TestTemplates(t *testing.T) {
	out, err := run(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "minimal (default)")
	assert.Contains(t, out, "Corporate and formal style")
	assert.Contains(t, out, "creative")
}

func TestEvents(t *testing.T) {
	out, err := run(t, "events")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "identity.signed_up"))
	assert.True(t, strings.HasPrefix(lines[2], "portfolio.onboarded"))
	assert.True(t, strings.HasPrefix(lines[3], "profile.updated"))
}

func TestExport(t *testing.T) {
	t.Run("json to stdout", func(t *testing.T) {
		f := setup(t)
		f.seed(t)

		out, err := run(t, "export", "u1")
		require.NoError(t, err)
		assert.Contains(t, out, `"userId": "u1"`)
		assert.Contains(t, out, `"template": "professional"`)
		assert.Contains(t, out, "Analytical Engine")
	})

	t.Run("yaml to file", func(t *testing.T) {
		f := setup(t)
		f.seed(t)

		out, err := run(t, "export", "u1", "--format", "yaml", "--out", "exports/u1.yaml")
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := afero.ReadFile(f.fs, "exports/u1.yaml")
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Equal(t, "u1", doc["userId"])
		assert.Equal(t, []any{"Engineer", "Writer"}, doc["headlines"])
	})

	t.Run("html", func(t *testing.T) {
		f := setup(t)
		f.seed(t)

		out, err := run(t, "export", "u1", "-f", "html")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		assert.Contains(t, out, "Ada Lovelace")
		assert.Contains(t, out, "Analytical Engine")
	})

	t.Run("missing portfolio", func(t *testing.T) {
		setup(t)
		_, err := run(t, "export", "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown format", func(t *testing.T) {
		f := setup(t)
		f.seed(t)
		_, err := run(t, "export", "u1", "--format", "xml")
		assert.ErrorContains(t, err, `unknown format "xml"`)
	})
}

func TestAvatar(t *testing.T) {
	t.Run("stores the image", func(t *testing.T) {
		f := setup(t)
		f.seed(t)
		require.NoError(t, afero.WriteFile(f.fs, "me.png", pngHeader, 0o644))

		out, err := run(t, "avatar", "u1", "me.png")
		require.NoError(t, err)
		assert.Contains(t, out, "Profile image updated for u1")

		p, err := f.store.GetProfile(context.Background(), "u1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(p.PhotoURL, "data:image/png;base64,"))
	})

	t.Run("rejects non-images", func(t *testing.T) {
		f := setup(t)
		f.seed(t)
		require.NoError(t, afero.WriteFile(f.fs, "notes.txt", []byte("just some text"), 0o644))

		_, err := run(t, "avatar", "u1", "notes.txt")
		assert.EqualError(t, err, "Please select an image file")

		p, err := f.store.GetProfile(context.Background(), "u1")
		require.NoError(t, err)
		assert.Empty(t, p.PhotoURL)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, afero.WriteFile(f.fs, "me.png", pngHeader, 0o644))

		_, err := run(t, "avatar", "ghost", "me.png")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		p, err := f.store.GetProfile(context.Background(), "ghost")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("missing file", func(t *testing.T) {
		setup(t)
		_, err := run(t, "avatar", "u1", "nope.png")
		assert.ErrorContains(t, err, "stat nope.png")
	})
}
