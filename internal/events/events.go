// Package events declares the application events published on the bus.
package events

import "github.com/as1coder/portfolioBuilder/internal/pubsub"

// SignedUp is published after a new identity and its profile stub exist.
type SignedUp struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ProfileUpdated is published after a profile merge-write succeeds.
type ProfileUpdated struct {
	Fields []string `json:"fields"`
}

// Onboarded is published when a user picks a template for the first time or
// switches to another one.
type Onboarded struct {
	Template     string `json:"template"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PortfolioURL string `json:"portfolioUrl"`
}

var (
	IdentitySignedUp   = pubsub.NewEvent[SignedUp]("identity.signed_up", "A new account was created")
	ProfileWasUpdated  = pubsub.NewEvent[ProfileUpdated]("profile.updated", "Profile fields were saved from the dashboard")
	PortfolioOnboarded = pubsub.NewEvent[Onboarded]("portfolio.onboarded", "A template was selected and the portfolio is live")
)
