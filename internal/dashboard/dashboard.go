// Package dashboard implements the signed-in user's editing operations: the
// profile form, the profile image, project CRUD and template selection.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/events"
	"github.com/as1coder/portfolioBuilder/internal/imageenc"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
	"github.com/as1coder/portfolioBuilder/internal/templateregistry"
	"golang.org/x/sync/errgroup"
)

// Repository is the store surface the dashboard needs.
type Repository interface {
	domain.ProfileRepository
	domain.ProjectRepository
}

// State is what the dashboard page shows.
type State struct {
	Profile  *domain.Profile
	Projects []domain.Project
}

// Controller runs dashboard operations against the store. Every mutation is
// followed by a refetch so callers always render what the store holds.
type Controller struct {
	store     Repository
	encoder   *imageenc.Encoder
	publisher pubsub.Publisher
	baseURL   string
	now       func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher publishes profile.updated and portfolio.onboarded events.
func WithPublisher(p pubsub.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithEncoder replaces the default image encoder.
func WithEncoder(e *imageenc.Encoder) Option {
	return func(c *Controller) { c.encoder = e }
}

// WithBaseURL sets the public site address used in onboarding events.
func WithBaseURL(u string) Option {
	return func(c *Controller) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New returns a Controller backed by store.
func New(store Repository, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		encoder: imageenc.New(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the profile and the user's projects concurrently.
func (c *Controller) Load(ctx context.Context, userID string) (*State, error) {
	var state State
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.store.GetProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		state.Profile = p
		return nil
	})
	g.Go(func() error {
		projects, err := c.store.ListProjects(gctx, userID)
		if err != nil {
			return fmt.Errorf("load projects: %w", err)
		}
		state.Projects = projects
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &state, nil
}

// ProfileForm is the dashboard profile form. Skills arrive comma-separated.
type ProfileForm struct {
	Name      string `form:"name" json:"name" validate:"max=100"`
	Tagline   string `form:"tagline" json:"tagline" validate:"max=300"`
	Bio       string `form:"bio" json:"bio" validate:"max=5000"`
	Skills    string `form:"skills" json:"skills" validate:"max=1000"`
	Email     string `form:"email" json:"email" validate:"omitempty,email"`
	GitHub    string `form:"github" json:"github" validate:"omitempty,httpurl"`
	LinkedIn  string `form:"linkedin" json:"linkedin" validate:"omitempty,httpurl"`
	Twitter   string `form:"twitter" json:"twitter" validate:"omitempty,httpurl"`
	Instagram string `form:"instagram" json:"instagram" validate:"omitempty,httpurl"`
}

// FormOf pre-fills the form from a stored profile.
func FormOf(p *domain.Profile) ProfileForm {
	if p == nil {
		return ProfileForm{}
	}
	return ProfileForm{
		Name:      p.Name,
		Tagline:   string(p.Tagline),
		Bio:       p.Bio,
		Skills:    strings.Join(p.Skills, ", "),
		Email:     p.Email,
		GitHub:    p.GitHub,
		LinkedIn:  p.LinkedIn,
		Twitter:   p.Twitter,
		Instagram: p.Instagram,
	}
}

func (f *ProfileForm) normalize() {
	for _, s := range []*string{&f.Name, &f.Tagline, &f.Bio, &f.Email, &f.GitHub, &f.LinkedIn, &f.Twitter, &f.Instagram} {
		*s = strings.TrimSpace(*s)
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
}

// UpdateProfile merge-writes the whole form and returns the refetched profile.
func (c *Controller) UpdateProfile(ctx context.Context, userID string, form ProfileForm) (*domain.Profile, error) {
	form.normalize()
	if err := domain.Validator().Struct(form); err != nil {
		return nil, invalid(err)
	}

	now := c.now()
	fields := domain.ProfileFields{
		Name:      &form.Name,
		Tagline:   &form.Tagline,
		Bio:       &form.Bio,
		Skills:    domain.ParseSkills(form.Skills),
		Email:     &form.Email,
		GitHub:    &form.GitHub,
		LinkedIn:  &form.LinkedIn,
		Twitter:   &form.Twitter,
		Instagram: &form.Instagram,
		UpdatedAt: &now,
	}
	if err := c.store.UpsertProfile(ctx, userID, fields); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	c.profileUpdated(ctx, userID, fields)
	return c.store.GetProfile(ctx, userID)
}

// UpdateImage encodes src and stores it as the profile photo. Rejected files
// leave the profile untouched.
func (c *Controller) UpdateImage(ctx context.Context, userID string, src imageenc.Source) (*domain.Profile, error) {
	var fields domain.ProfileFields
	err := c.encoder.Encode(ctx, src, func(ctx context.Context, dataURL string) error {
		now := c.now()
		fields = domain.ProfileFields{PhotoURL: &dataURL, UpdatedAt: &now}
		return c.store.UpsertProfile(ctx, userID, fields)
	})
	if err != nil {
		if errors.Is(err, imageenc.ErrTooLarge) || errors.Is(err, imageenc.ErrNotImage) {
			return nil, err
		}
		return nil, fmt.Errorf("update image: %w", err)
	}
	c.profileUpdated(ctx, userID, fields)
	return c.store.GetProfile(ctx, userID)
}

// AddProject creates a project owned by userID and returns the refetched list.
func (c *Controller) AddProject(ctx context.Context, userID string, draft domain.ProjectDraft) ([]domain.Project, error) {
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, invalid(err)
	}

	now := c.now()
	_, err := c.store.CreateProject(ctx, domain.Project{
		Title:        draft.Title,
		Description:  draft.Description,
		Technologies: draft.Technologies,
		LiveLink:     draft.LiveLink,
		GithubLink:   draft.GithubLink,
		UserID:       userID,
		CreatedAt:    &now,
	})
	if err != nil {
		return nil, fmt.Errorf("add project: %w", err)
	}
	return c.store.ListProjects(ctx, userID)
}

// Project returns one of userID's projects, for the edit form.
func (c *Controller) Project(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	p, err := c.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	// Projects of other owners are reported as missing.
	if p.UserID != userID {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return p, nil
}

// EditProject replaces the five editable fields of a project.
func (c *Controller) EditProject(ctx context.Context, userID, projectID string, draft domain.ProjectDraft) ([]domain.Project, error) {
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, invalid(err)
	}
	if _, err := c.Project(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("edit project: %w", err)
	}

	fields := draft.Fields()
	fields[domain.FieldUpdatedAt] = c.now().UTC()
	if err := c.store.UpdateProject(ctx, projectID, fields); err != nil {
		return nil, fmt.Errorf("edit project: %w", err)
	}
	return c.store.ListProjects(ctx, userID)
}

// DeleteProject removes a project immediately. A missing id yields the
// unchanged list together with an error wrapping domain.ErrNotFound.
func (c *Controller) DeleteProject(ctx context.Context, userID, projectID string) ([]domain.Project, error) {
	var opErr error
	if _, err := c.Project(ctx, userID, projectID); err != nil {
		opErr = fmt.Errorf("delete project: %w", err)
	} else if err := c.store.DeleteProject(ctx, projectID); err != nil {
		opErr = fmt.Errorf("delete project: %w", err)
	}

	projects, err := c.store.ListProjects(ctx, userID)
	if err != nil {
		return nil, errors.Join(opErr, fmt.Errorf("list projects: %w", err))
	}
	return projects, opErr
}

// SelectTemplate completes onboarding: it records the template, marks the
// profile onboarded and fills username and email from the identity.
func (c *Controller) SelectTemplate(ctx context.Context, identity domain.Identity, templateID string) (*domain.Profile, error) {
	if !templateregistry.Known(templateID) {
		return nil, invalid(fmt.Errorf("unknown template %q", templateID))
	}

	existing, err := c.store.GetProfile(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("select template: %w", err)
	}

	now := c.now()
	username := domain.DeriveUsername(identity.DisplayName, identity.Email)
	fields := domain.ProfileFields{
		Template:  &templateID,
		Onboarded: domain.Ref(true),
		Username:  &username,
		Email:     &identity.Email,
		UpdatedAt: &now,
	}
	if existing == nil || existing.CreatedAt == nil {
		fields.CreatedAt = &now
	}
	if err := c.store.UpsertProfile(ctx, identity.ID, fields); err != nil {
		return nil, fmt.Errorf("select template: %w", err)
	}

	c.publish(ctx, func() error {
		return pubsub.Publish(ctx, c.publisher, events.PortfolioOnboarded, identity.ID, events.Onboarded{
			Template:     templateID,
			Username:     username,
			Email:        identity.Email,
			PortfolioURL: c.baseURL + "/" + identity.ID,
		})
	})
	return c.store.GetProfile(ctx, identity.ID)
}

func (c *Controller) profileUpdated(ctx context.Context, userID string, fields domain.ProfileFields) {
	keys := make([]string, 0)
	for k := range fields.Map() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	c.publish(ctx, func() error {
		return pubsub.Publish(ctx, c.publisher, events.ProfileWasUpdated, userID, events.ProfileUpdated{Fields: keys})
	})
}

// publish sends an event when a publisher is configured. Events are
// notifications only, so a failure is logged and the operation still succeeds.
func (c *Controller) publish(ctx context.Context, send func() error) {
	if c.publisher == nil {
		return
	}
	if err := send(); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "event", "event_publish_failure", "error", err)
	}
}
