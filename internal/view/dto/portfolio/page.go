// Package portfolio holds the view model shared by the public portfolio
// templates.
package portfolio

import "github.com/as1coder/portfolioBuilder/internal/domain"

// Page is everything a portfolio template needs to render a full page.
type Page struct {
	UserID    string
	Profile   domain.Profile
	Projects  []domain.Project
	Headlines []string
	// Dark selects the dark colour scheme.
	Dark    bool
	BaseURL string
	Year    int
}

// URL is the public address of the portfolio.
func (p Page) URL() string {
	return p.BaseURL + "/" + p.UserID
}

// Path is the site-relative address of the portfolio.
func (p Page) Path() string {
	return "/" + p.UserID
}
