package layouts

import (
	"bytes"
	"context"
	"testing"

	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Folio", CalculateTitle(""))
	assert.Equal(t, "Login - Folio", CalculateTitle("Login"))
}

func renderBase(t *testing.T, p Props) string {
	t.Helper()
	var buf bytes.Buffer
	content := view.Component(g.P(cmp.Text("page body")))
	require.NoError(t, Base(p, content).Render(context.Background(), &buf))
	return buf.String()
}

func TestBase(t *testing.T) {
	html := renderBase(t, Props{Title: "Dashboard", SignedIn: true, Path: "/dashboard", Success: []string{"Saved"}})
	assert.Contains(t, html, "<title>Dashboard - Folio</title>")
	assert.Contains(t, html, "<p>page body</p>")
	assert.Contains(t, html, "Saved")
	assert.Contains(t, html, `action="/logout"`)
	assert.Contains(t, html, `name="redirect" value="/dashboard"`)
	assert.NotContains(t, html, `href="/signup"`)
}

func TestBase_GuestAndDark(t *testing.T) {
	html := renderBase(t, Props{Dark: true})
	assert.Contains(t, html, `<html lang="en" class="dark"`)
	assert.Contains(t, html, `href="/signup"`)
	assert.Contains(t, html, `value="light"`)
	assert.Contains(t, html, `name="redirect" value="/"`)
	assert.NotContains(t, html, "toast-")
}
