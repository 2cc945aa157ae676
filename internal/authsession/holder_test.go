package authsession

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeProfiles serves canned profiles. A gate for a user id blocks that
// fetch until the channel is closed.
type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	gates    map[string]chan struct{}
	started  chan string
	err      error
}

func (f *fakeProfiles) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	f.mu.Lock()
	gate := f.gates[userID]
	p := f.profiles[userID]
	err := f.err
	f.mu.Unlock()

	if f.started != nil {
		f.started <- userID
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func TestSetIdentity(t *testing.T) {
	ctx := context.Background()
	profiles := &fakeProfiles{profiles: map[string]*domain.Profile{
		"onboarded": {ID: "onboarded", Name: "Ada", Onboarded: true},
		"pending":   {ID: "pending", Name: "Bob"},
	}}

	t.Run("existing onboarded profile", func(t *testing.T) {
		h := New(profiles)
		s := h.SetIdentity(ctx, &domain.Identity{ID: "onboarded", Email: "ada@example.com"})
		require.True(t, s.SignedIn())
		assert.False(t, s.Loading)
		assert.True(t, s.Onboarded)
		require.NotNil(t, s.Profile)
		assert.Equal(t, "Ada", s.Profile.Name)
	})

	t.Run("profile without flag", func(t *testing.T) {
		s := New(profiles).SetIdentity(ctx, &domain.Identity{ID: "pending"})
		assert.False(t, s.Onboarded)
		require.NotNil(t, s.Profile)
	})

	t.Run("no profile yet", func(t *testing.T) {
		s := New(profiles).SetIdentity(ctx, &domain.Identity{ID: "new"})
		assert.True(t, s.SignedIn())
		assert.False(t, s.Onboarded)
		assert.Nil(t, s.Profile)
	})

	t.Run("nil identity clears", func(t *testing.T) {
		h := New(profiles)
		h.SetIdentity(ctx, &domain.Identity{ID: "onboarded"})
		s := h.SetIdentity(ctx, nil)
		assert.False(t, s.SignedIn())
		assert.False(t, s.Onboarded)
		assert.Nil(t, s.Profile)
	})
}

func TestSetIdentity_FetchFailureStillExposesIdentity(t *testing.T) {
	h := New(&fakeProfiles{err: errors.New("permission denied")})
	s := h.SetIdentity(context.Background(), &domain.Identity{ID: "u1"})
	require.True(t, s.SignedIn())
	assert.Equal(t, "u1", s.Identity.ID)
	assert.Nil(t, s.Profile)
	assert.False(t, s.Onboarded)
	assert.False(t, s.Loading)
}

func TestSetIdentity_StaleFetchIsDiscarded(t *testing.T) {
	slow := make(chan struct{})
	profiles := &fakeProfiles{
		profiles: map[string]*domain.Profile{
			"first":  {ID: "first", Name: "First", Onboarded: true},
			"second": {ID: "second", Name: "Second"},
		},
		gates:   map[string]chan struct{}{"first": slow},
		started: make(chan string, 2),
	}
	h := New(profiles)

	var wg sync.WaitGroup
	wg.Add(1)
	var stale State
	go func() {
		defer wg.Done()
		stale = h.SetIdentity(context.Background(), &domain.Identity{ID: "first"})
	}()
	require.Equal(t, "first", <-profiles.started)

	latest := h.SetIdentity(context.Background(), &domain.Identity{ID: "second"})
	<-profiles.started
	close(slow)
	wg.Wait()

	assert.Equal(t, "second", latest.Identity.ID)
	assert.Equal(t, "second", stale.Identity.ID, "stale call must report the newer state")

	s := h.State()
	require.NotNil(t, s.Profile)
	assert.Equal(t, "Second", s.Profile.Name)
	assert.False(t, s.Onboarded)
}

func TestClear_InvalidatesInFlightFetch(t *testing.T) {
	gate := make(chan struct{})
	profiles := &fakeProfiles{
		profiles: map[string]*domain.Profile{"u1": {ID: "u1", Onboarded: true}},
		gates:    map[string]chan struct{}{"u1": gate},
		started:  make(chan string, 1),
	}
	h := New(profiles)
	h.SetTheme(ThemeDark)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.SetIdentity(context.Background(), &domain.Identity{ID: "u1"})
	}()
	<-profiles.started

	h.Clear()
	close(gate)
	<-done

	s := h.State()
	assert.False(t, s.SignedIn())
	assert.Nil(t, s.Profile)
	assert.False(t, s.Onboarded)
	assert.Equal(t, ThemeDark, s.Theme, "theme survives sign-out")
}

func TestState_IsACopy(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*domain.Profile{"u1": {ID: "u1", Skills: []string{"Go"}}}}
	h := New(profiles)
	s := h.SetIdentity(context.Background(), &domain.Identity{ID: "u1"})

	s.Identity.ID = "mutated"
	s.Profile.Skills[0] = "mutated"

	again := h.State()
	assert.Equal(t, "u1", again.Identity.ID)
	assert.Equal(t, []string{"Go"}, again.Profile.Skills)
}

func TestRefresh(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*domain.Profile{"u1": {ID: "u1"}}}
	h := New(profiles)
	h.SetIdentity(context.Background(), &domain.Identity{ID: "u1"})

	profiles.mu.Lock()
	profiles.profiles["u1"] = &domain.Profile{ID: "u1", Onboarded: true}
	profiles.mu.Unlock()

	assert.True(t, h.Refresh(context.Background()).Onboarded)
}

func TestNilHolder(t *testing.T) {
	var h *Holder
	s := h.State()
	assert.False(t, s.SignedIn())
	assert.Equal(t, ThemeLight, s.Theme)
}

func TestParseTheme(t *testing.T) {
	th, ok := ParseTheme("dark")
	assert.True(t, ok)
	assert.True(t, th.Dark())

	th, ok = ParseTheme("light")
	assert.True(t, ok)
	assert.False(t, th.Dark())

	th, ok = ParseTheme("darkMode")
	assert.False(t, ok)
	assert.Equal(t, ThemeLight, th)
}

func TestAttachAndFromContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, FromContext(c))

	h := New(&fakeProfiles{})
	Attach(c, h)
	assert.Same(t, h, FromContext(c))
}
