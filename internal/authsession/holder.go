// Package authsession holds the signed-in identity for one request together
// with its profile snapshot and the device theme.
package authsession

import (
	"context"
	"log/slog"
	"sync"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/labstack/echo/v4"
)

// Theme is the device colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "dark" and "light". Anything else is ok=false.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	default:
		return ThemeLight, false
	}
}

// Dark reports whether the dark scheme is selected.
func (t Theme) Dark() bool { return t == ThemeDark }

// State is a snapshot of the holder.
type State struct {
	Identity  *domain.Identity
	Loading   bool
	Onboarded bool
	Profile   *domain.Profile
	Theme     Theme
}

// SignedIn reports whether an identity is present.
func (s State) SignedIn() bool { return s.Identity != nil }

// Holder tracks the current identity. Every profile fetch carries a
// generation number; results from an older generation are dropped so a slow
// fetch can never overwrite newer state.
type Holder struct {
	profiles domain.ProfileReader

	mu    sync.Mutex
	gen   uint64
	state State
}

// New creates an empty holder.
func New(profiles domain.ProfileReader) *Holder {
	return &Holder{profiles: profiles, state: State{Theme: ThemeLight}}
}

// SetIdentity replaces the identity and loads its profile. A nil identity
// clears the holder.
func (h *Holder) SetIdentity(ctx context.Context, identity *domain.Identity) State {
	h.mu.Lock()
	h.gen++
	gen := h.gen
	if identity == nil {
		h.reset()
		s := h.snapshot()
		h.mu.Unlock()
		return s
	}
	id := *identity
	h.state.Identity = &id
	h.state.Profile = nil
	h.state.Onboarded = false
	h.state.Loading = true
	h.mu.Unlock()

	profile, err := h.profiles.GetProfile(ctx, id.ID)

	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.gen {
		slog.DebugContext(ctx, "Discarding stale profile fetch", "user_id", id.ID, "generation", gen, "latest", h.gen)
		return h.snapshot()
	}
	h.state.Loading = false
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch profile for identity", "user_id", id.ID, "error", err)
		return h.snapshot()
	}
	if profile != nil {
		h.state.Profile = profile
		h.state.Onboarded = profile.Onboarded
	}
	return h.snapshot()
}

// Refresh reloads the profile of the current identity.
func (h *Holder) Refresh(ctx context.Context) State {
	h.mu.Lock()
	identity := h.state.Identity
	h.mu.Unlock()
	return h.SetIdentity(ctx, identity)
}

// Clear forgets the identity. Fetches still in flight are invalidated.
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gen++
	h.reset()
}

// SetTheme records the device theme.
func (h *Holder) SetTheme(t Theme) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Theme = t
}

// State returns a copy of the current state. A nil holder is signed out.
func (h *Holder) State() State {
	if h == nil {
		return State{Theme: ThemeLight}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot()
}

func (h *Holder) reset() {
	h.state = State{Theme: h.state.Theme}
}

// snapshot copies the state so callers cannot mutate the holder. Caller holds mu.
func (h *Holder) snapshot() State {
	s := h.state
	if s.Identity != nil {
		id := *s.Identity
		s.Identity = &id
	}
	if s.Profile != nil {
		p := *s.Profile
		p.Skills = append([]string(nil), p.Skills...)
		s.Profile = &p
	}
	return s
}

const contextKey = "authsession"

// Attach stores h on the echo context.
func Attach(c echo.Context, h *Holder) {
	c.Set(contextKey, h)
}

// FromContext returns the holder attached to c, or nil.
func FromContext(c echo.Context) *Holder {
	h, _ := c.Get(contextKey).(*Holder)
	return h
}
