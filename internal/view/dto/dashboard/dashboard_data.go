// Package dashboard holds the view model for the dashboard page.
package dashboard

import (
	"github.com/as1coder/portfolioBuilder/internal/dashboard"
	"github.com/as1coder/portfolioBuilder/internal/domain"
)

// Dashboard sections selectable with ?section=.
const (
	SectionProjects = "projects"
	SectionProfile  = "profile"
)

// ParseSection returns a known section, defaulting to projects.
func ParseSection(s string) string {
	if s == SectionProfile {
		return SectionProfile
	}
	return SectionProjects
}

// Data is everything the dashboard page renders.
type Data struct {
	Profile      domain.Profile
	Projects     []domain.Project
	Form         dashboard.ProfileForm
	Section      string
	Editing      *domain.Project
	PortfolioURL string
	TemplateName string
}
