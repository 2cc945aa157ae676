package app

import (
	"github.com/as1coder/portfolioBuilder/internal/module"
	"github.com/as1coder/portfolioBuilder/internal/modules/publicapi"
	"github.com/as1coder/portfolioBuilder/internal/modules/welcome"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		welcome.New(welcomeDeps(deps)),
		publicapi.New(deps.Portfolios),
	}
}
