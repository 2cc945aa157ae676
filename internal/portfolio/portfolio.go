// Package portfolio renders public portfolio pages. Lookups are
// unauthenticated and uncached: every view re-reads the store.
package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/templateregistry"
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/portfolio"
	"maragu.dev/gomponents"
)

// Reader is the read-only store surface used for public pages.
type Reader interface {
	domain.ProfileReader
	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)
}

// Portfolio is a user's public data, as served by the JSON API.
type Portfolio struct {
	UserID    string           `json:"userId"`
	Template  string           `json:"template"`
	Headlines []string         `json:"headlines"`
	Profile   domain.Profile   `json:"profile"`
	Projects  []domain.Project `json:"projects"`
}

// Service resolves user ids to portfolios.
type Service struct {
	store   Reader
	baseURL string
	now     func() time.Time
}

// NewService returns a Service. baseURL is the public site address.
func NewService(store Reader, baseURL string) *Service {
	return &Service{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Get fetches the profile and then its projects. A missing profile yields an
// error wrapping domain.ErrNotFound and no project query is made.
func (s *Service) Get(ctx context.Context, userID string) (*Portfolio, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("portfolio: empty user id: %w", domain.ErrNotFound)
	}
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load portfolio profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("portfolio %s: %w", userID, domain.ErrNotFound)
	}

	projects, err := s.store.ListProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load portfolio projects: %w", err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	return &Portfolio{
		UserID:    userID,
		Template:  templateregistry.Parse(profile.Template).ID(),
		Headlines: profile.Headlines(),
		Profile:   *profile,
		Projects:  projects,
	}, nil
}

// Page builds the template input for p.
func (s *Service) Page(p *Portfolio, dark bool) dto.Page {
	return dto.Page{
		UserID:    p.UserID,
		Profile:   p.Profile,
		Projects:  p.Projects,
		Headlines: p.Headlines,
		Dark:      dark,
		BaseURL:   s.baseURL,
		Year:      s.now().Year(),
	}
}

// Render loads the portfolio and dispatches to its template.
func (s *Service) Render(ctx context.Context, userID string, dark bool) (gomponents.Node, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return templateregistry.Render(templateregistry.Parse(p.Template), s.Page(p, dark)), nil
}
