package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/dashboard"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/imageenc"
	"github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/as1coder/portfolioBuilder/internal/templateregistry"
	"github.com/as1coder/portfolioBuilder/internal/view"
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/dashboard"
	"github.com/as1coder/portfolioBuilder/web/src/templates/pages"
	"github.com/as1coder/portfolioBuilder/web/src/templates/partials"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// DashboardHandler handles requests for the user dashboard.
type DashboardHandler struct {
	controller *dashboard.Controller
	baseURL    string
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(controller *dashboard.Controller, baseURL string) *DashboardHandler {
	return &DashboardHandler{controller: controller, baseURL: strings.TrimRight(baseURL, "/")}
}

// userID returns the signed-in user. RequireAuth guarantees one.
func userID(c echo.Context) string {
	return authsession.FromContext(c).State().Identity.ID
}

// DashboardGet shows the dashboard. ?section picks the tab and ?edit opens the
// edit modal for one project.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	ctx := c.Request().Context()
	uid := userID(c)

	state, err := h.controller.Load(ctx, uid)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load dashboard", "error", err)
		return renderPage(c, http.StatusInternalServerError, "Error", pages.ErrorPage(http.StatusInternalServerError, domain.Flatten(err)))
	}

	var profile domain.Profile
	if state.Profile != nil {
		profile = *state.Profile
	}
	data := dto.Data{
		Profile:      profile,
		Projects:     state.Projects,
		Form:         dashboard.FormOf(state.Profile),
		Section:      dto.ParseSection(c.QueryParam("section")),
		PortfolioURL: h.baseURL + "/" + uid,
		TemplateName: templateregistry.Parse(profile.Template).Info().Name,
	}

	if id := c.QueryParam("edit"); id != "" {
		p, err := h.controller.Project(ctx, uid, id)
		if err != nil {
			view.SetFlashError(c, "Project not found")
		} else {
			data.Editing = p
			data.Section = dto.SectionProjects
		}
	}

	return renderPage(c, http.StatusOK, "Dashboard", pages.Dashboard(data))
}

// UpdateProfilePost saves the profile form.
func (h *DashboardHandler) UpdateProfilePost(c echo.Context) error {
	ctx := c.Request().Context()
	var form dashboard.ProfileForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if _, err := h.controller.UpdateProfile(ctx, userID(c), form); err != nil {
		h.fail(c, "Error updating profile", err)
	} else {
		authsession.FromContext(c).Refresh(ctx)
		view.SetFlashSuccess(c, "Profile updated successfully!")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard?section="+dto.SectionProfile)
}

// UpdateImagePost stores the uploaded profile image.
func (h *DashboardHandler) UpdateImagePost(c echo.Context) error {
	ctx := c.Request().Context()
	target := "/dashboard?section=" + dto.SectionProfile

	fh, err := c.FormFile("image")
	if err != nil {
		view.SetFlashError(c, MsgSelectImage)
		return c.Redirect(http.StatusSeeOther, target)
	}

	if _, err := h.controller.UpdateImage(ctx, userID(c), imageenc.FromMultipart(fh)); err != nil {
		if msg := imageenc.Message(err); msg != "" {
			view.SetFlashError(c, msg)
		} else {
			h.fail(c, "Error updating profile image", err)
		}
	} else {
		view.SetFlashSuccess(c, "Profile image updated successfully!")
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// AddProjectPost creates a project.
func (h *DashboardHandler) AddProjectPost(c echo.Context) error {
	var draft domain.ProjectDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if _, err := h.controller.AddProject(c.Request().Context(), userID(c), draft); err != nil {
		h.fail(c, "Error adding project", err)
	} else {
		view.SetFlashSuccess(c, "Project added successfully!")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// EditProjectPost saves the edit modal.
func (h *DashboardHandler) EditProjectPost(c echo.Context) error {
	id := c.Param("id")
	var draft domain.ProjectDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if _, err := h.controller.EditProject(c.Request().Context(), userID(c), id, draft); err != nil {
		h.fail(c, "Error updating project", err)
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Redirect(http.StatusSeeOther, "/dashboard?edit="+id)
		}
	} else {
		view.SetFlashSuccess(c, "Project updated successfully!")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DeleteProjectPost removes a project without confirmation. htmx requests get
// the refreshed list and an out-of-band flash; others are redirected. When the
// list cannot be refetched only the flash is sent.
func (h *DashboardHandler) DeleteProjectPost(c echo.Context) error {
	ctx := c.Request().Context()
	projects, err := h.controller.DeleteProject(ctx, userID(c), c.Param("id"))

	var success, errs []string
	if err != nil {
		msg := h.message("Error deleting project", err)
		errs = append(errs, msg)
		middleware.FromContext(ctx).Warn("Project delete failed", "project_id", c.Param("id"), "error", err)
	} else {
		success = append(success, "Project deleted successfully!")
	}

	if !isHTMX(c) {
		for _, m := range success {
			view.SetFlashSuccess(c, m)
		}
		for _, m := range errs {
			view.SetFlashError(c, m)
		}
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	flash := view.Node(ctx, partials.FlashOOB(success, errs))
	if projects == nil && err != nil {
		// The list could not be refetched; keep the one on screen.
		c.Response().Header().Set("HX-Reswap", "none")
		return c.Render(http.StatusOK, "", flash)
	}
	return c.Render(http.StatusOK, "", cmp.Group{pages.ProjectList(projects), flash})
}

// fail flashes an operation error.
func (h *DashboardHandler) fail(c echo.Context, prefix string, err error) {
	if !errors.Is(err, domain.ErrInvalidInput) {
		middleware.FromContext(c.Request().Context()).Error(prefix, "error", err)
	}
	view.SetFlashError(c, h.message(prefix, err))
}

func (h *DashboardHandler) message(prefix string, err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return inputMessage(err)
	case errors.Is(err, domain.ErrNotFound):
		return "Project not found"
	default:
		return prefix + ": " + domain.Flatten(err)
	}
}
