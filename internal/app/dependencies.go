package app

import (
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/modules/welcome"
	"github.com/as1coder/portfolioBuilder/internal/portfolio"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Store       domain.Store
	Bus         pubsub.Bus
	EmailSender domain.EmailSender
	Portfolios  *portfolio.Service
}

// welcomeDeps creates the dependency struct for the welcome module.
func welcomeDeps(deps Dependencies) welcome.Dependencies {
	return welcome.Dependencies{
		Subscriber:  deps.Bus,
		EmailSender: deps.EmailSender,
	}
}
