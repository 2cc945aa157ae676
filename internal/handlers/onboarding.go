package handlers

import (
	"errors"
	"net/http"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/dashboard"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/as1coder/portfolioBuilder/internal/templateregistry"
	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/as1coder/portfolioBuilder/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// OnboardingHandler serves the template picker.
type OnboardingHandler struct {
	controller *dashboard.Controller
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(controller *dashboard.Controller) *OnboardingHandler {
	return &OnboardingHandler{controller: controller}
}

// SelectTemplateGet lists the templates, marking the current choice.
func (h *OnboardingHandler) SelectTemplateGet(c echo.Context) error {
	state := authsession.FromContext(c).State()
	current := ""
	if state.Profile != nil {
		current = state.Profile.Template
	}
	options := make([]templateregistry.Info, 0, len(templateregistry.All()))
	for _, t := range templateregistry.All() {
		options = append(options, t.Info())
	}
	return renderPage(c, http.StatusOK, "Choose a template", pages.SelectTemplate(options, current))
}

// SelectTemplatePost stores the chosen template and completes onboarding.
func (h *OnboardingHandler) SelectTemplatePost(c echo.Context) error {
	ctx := c.Request().Context()
	holder := authsession.FromContext(c)
	state := holder.State()

	_, err := h.controller.SelectTemplate(ctx, *state.Identity, c.FormValue("template"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			view.SetFlashError(c, MsgInvalidTemplate)
		} else {
			middleware.FromContext(ctx).Error("Failed to select template", "error", err)
			view.SetFlashError(c, "Error selecting template: "+domain.Flatten(err))
		}
		return c.Redirect(http.StatusSeeOther, "/select-template")
	}

	holder.Refresh(ctx)
	view.SetFlashSuccess(c, "Template selected! Welcome to your dashboard.")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}
