package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/events"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func onboarded(t *testing.T) (*testApp, *client, string) {
	t.Helper()
	app := newTestApp(t)
	c := app.client(t)
	uid := c.signUp("Ada", "ada@example.com")
	c.onboard("professional")
	return app, c, uid
}

func TestSelectTemplate(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)
	uid := c.signUp("Ada", "ada@example.com")

	page := c.get("/select-template")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Professional")

	rec := c.get("/dashboard")
	assert.Equal(t, "/select-template", rec.Header().Get(echo.HeaderLocation))

	c.onboard("professional")

	p, err := app.store.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "professional", p.Template)
	assert.True(t, p.Onboarded)
	assert.Equal(t, "Ada", p.Username)
	assert.Contains(t, app.pub.topics(), events.PortfolioOnboarded.Name())

	rec = c.get("/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testBaseURL+"/"+uid)
}

func TestSelectTemplate_Unknown(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)
	uid := c.signUp("Ada", "ada@example.com")

	rec := c.post("/select-template", url.Values{"template": {"retro"}})
	assert.Equal(t, "/select-template", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, c.get("/select-template").Body.String(), MsgInvalidTemplate)

	p, err := app.store.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.False(t, p.Onboarded)
}

func TestDashboard_UpdateProfile(t *testing.T) {
	app, c, uid := onboarded(t)

	rec := c.post("/dashboard/profile", url.Values{
		"name":    {"Ada Lovelace"},
		"tagline": {"Engineer, Writer"},
		"skills":  {"Go, SQL"},
		"github":  {"https://github.com/ada"},
	})
	assert.Equal(t, "/dashboard?section=profile", rec.Header().Get(echo.HeaderLocation))

	p, err := app.store.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)

	page := c.get("/dashboard?section=profile").Body.String()
	assert.Contains(t, page, "Profile updated successfully!")
	assert.Contains(t, page, `value="Ada Lovelace"`)
}

func TestDashboard_UpdateProfileInvalidLink(t *testing.T) {
	app, c, uid := onboarded(t)

	c.post("/dashboard/profile", url.Values{"name": {"Changed"}, "github": {"not a url"}})
	assert.Contains(t, c.get("/dashboard?section=profile").Body.String(), MsgInvalidLink)

	p, err := app.store.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
}

func TestDashboard_UpdateImage(t *testing.T) {
	app, c, uid := onboarded(t)

	rec := c.upload("/dashboard/profile/image", "image", "me.png", pngHeader)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, c.get("/dashboard?section=profile").Body.String(), "Profile image updated successfully!")

	p, err := app.store.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.PhotoURL, "data:image/png;base64,"))

	c.upload("/dashboard/profile/image", "image", "notes.txt", []byte("plain text"))
	assert.Contains(t, c.get("/dashboard?section=profile").Body.String(), "Please select an image file")

	c.post("/dashboard/profile/image", url.Values{})
	assert.Contains(t, c.get("/dashboard?section=profile").Body.String(), MsgSelectImage)
}

func TestDashboard_ProjectLifecycle(t *testing.T) {
	app, c, uid := onboarded(t)
	ctx := context.Background()

	rec := c.post("/dashboard/projects", url.Values{"title": {"Engine"}, "description": {"Analytical"}, "technologies": {"Brass, Steam"}})
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	page := c.get("/dashboard").Body.String()
	assert.Contains(t, page, "Project added successfully!")
	assert.Contains(t, page, "Engine")

	projects, err := app.store.ListProjects(ctx, uid)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	id := projects[0].ID

	edit := c.get("/dashboard?edit=" + id)
	assert.Contains(t, edit.Body.String(), `action="/dashboard/projects/`+id+`"`)

	c.post("/dashboard/projects/"+id, url.Values{"title": {"Difference Engine"}, "description": {"Analytical"}})
	assert.Contains(t, c.get("/dashboard").Body.String(), "Project updated successfully!")
	got, err := app.store.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Difference Engine", got.Title)

	rec = c.post("/dashboard/projects/"+id+"/delete", nil)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, c.get("/dashboard").Body.String(), "Project deleted successfully!")
	projects, err = app.store.ListProjects(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestDashboard_AddProjectRequiresFields(t *testing.T) {
	app, c, uid := onboarded(t)

	c.post("/dashboard/projects", url.Values{"title": {"Only a title"}})
	assert.Contains(t, c.get("/dashboard").Body.String(), MsgProjectRequired)

	projects, err := app.store.ListProjects(context.Background(), uid)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestDashboard_DeleteWithHTMX(t *testing.T) {
	app, c, uid := onboarded(t)
	id, err := app.store.CreateProject(context.Background(), domain.Project{Title: "Engine", Description: "Analytical", UserID: uid})
	require.NoError(t, err)

	req := func(path string) *http.Request {
		r, _ := http.NewRequest(http.MethodPost, path, nil)
		r.Header.Set("HX-Request", "true")
		return r
	}

	rec := c.do(req("/dashboard/projects/" + id + "/delete"))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="project-list"`)
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.Contains(t, body, "Project deleted successfully!")
	assert.NotContains(t, body, "Engine")

	rec = c.do(req("/dashboard/projects/" + id + "/delete"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project not found")
}

func TestDashboard_DeleteWithHTMXKeepsListWhenRefetchFails(t *testing.T) {
	app, c, uid := onboarded(t)
	keep, err := app.store.CreateProject(context.Background(), domain.Project{Title: "Keeper", Description: "Stays", UserID: uid})
	require.NoError(t, err)
	gone, err := app.store.CreateProject(context.Background(), domain.Project{Title: "Engine", Description: "Analytical", UserID: uid})
	require.NoError(t, err)

	app.flaky.failList.Store(true)
	r, _ := http.NewRequest(http.MethodPost, "/dashboard/projects/"+gone+"/delete", nil)
	r.Header.Set("HX-Request", "true")
	rec := c.do(r)
	app.flaky.failList.Store(false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
	body := rec.Body.String()
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.Contains(t, body, "Error deleting project")
	assert.NotContains(t, body, `id="project-list"`)
	assert.NotContains(t, body, "No projects yet")

	projects, err := app.store.ListProjects(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, keep, projects[0].ID)
}

func TestDashboard_OtherOwnersProject(t *testing.T) {
	app, c, _ := onboarded(t)
	id, err := app.store.CreateProject(context.Background(), domain.Project{Title: "Secret", Description: "Not yours", UserID: "someone-else"})
	require.NoError(t, err)

	c.post("/dashboard/projects/"+id, url.Values{"title": {"Mine now"}, "description": {"x"}})
	assert.Contains(t, c.get("/dashboard").Body.String(), "Project not found")

	c.post("/dashboard/projects/"+id+"/delete", nil)
	got, err := app.store.GetProject(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Secret", got.Title)
}
