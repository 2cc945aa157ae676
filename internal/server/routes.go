package server

import (
	"github.com/as1coder/portfolioBuilder/internal/handlers"
	"github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/as1coder/portfolioBuilder/web"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	// Create instances of all application handlers.
	homeHandler := handlers.NewHomeHandler()
	healthHandler := handlers.NewHealthHandler(s.Store)
	themeHandler := handlers.NewThemeHandler()
	authHandler := handlers.NewAuthHandler(s.Identity, s.Store, s.Bus)
	onboardingHandler := handlers.NewOnboardingHandler(s.Dashboard)
	dashboardHandler := handlers.NewDashboardHandler(s.Dashboard, s.Cfg.GetAppBaseURL())
	portfolioHandler := handlers.NewPortfolioHandler(s.Portfolios)
	rateLimiter := middleware.RateLimiter(s.Cfg.GetAuthRateLimit())

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	// Register routes.
	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", healthHandler.HealthGet)
	s.E.POST("/theme", themeHandler.ThemePost)

	guest := s.E.Group("", middleware.RedirectIfAuthenticated)
	guest.GET("/signup", authHandler.SignupGet)
	guest.POST("/signup", authHandler.SignupPost, rateLimiter)
	guest.GET("/login", authHandler.LoginGet)
	guest.POST("/login", authHandler.LoginPost, rateLimiter)

	s.E.POST("/logout", authHandler.Logout)
	s.E.GET("/logout", authHandler.Logout)

	s.E.GET("/select-template", onboardingHandler.SelectTemplateGet, middleware.RequireAuth)
	s.E.POST("/select-template", onboardingHandler.SelectTemplatePost, middleware.RequireAuth)

	dash := s.E.Group("/dashboard", middleware.RequireAuth, middleware.RequireOnboarded)
	dash.GET("", dashboardHandler.DashboardGet)
	dash.POST("/profile", dashboardHandler.UpdateProfilePost)
	dash.POST("/profile/image", dashboardHandler.UpdateImagePost)
	dash.POST("/projects", dashboardHandler.AddProjectPost)
	dash.POST("/projects/:id", dashboardHandler.EditProjectPost)
	dash.POST("/projects/:id/delete", dashboardHandler.DeleteProjectPost)

	// Public portfolios live at the root; fixed paths above take precedence.
	s.E.GET("/:userid", portfolioHandler.PortfolioGet)
}
