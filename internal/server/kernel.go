package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/as1coder/portfolioBuilder/internal/module"
	"github.com/as1coder/portfolioBuilder/internal/registry"
)

// InitModules registers every module, then boots them with the /api group.
// A module that fails to register or boot aborts startup.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	if reg == nil {
		reg = s.Registry
	}

	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
		slog.InfoContext(ctx, "Module registered", "event", "module_registered", "module", m.Name())
	}

	api := s.E.Group("/api")
	for _, m := range modules {
		if err := m.Boot(ctx, api, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
		slog.InfoContext(ctx, "Module booted", "event", "module_booted", "module", m.Name())
	}
	return nil
}
