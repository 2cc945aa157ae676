package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func templText(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), g.P(cmp.Text("node")))
	require.NoError(t, err)
	assert.Equal(t, "<p>node</p>", string(out))

	out, err = r.RenderComponent(context.Background(), templText("templ"))
	require.NoError(t, err)
	assert.Equal(t, "templ", string(out))

	_, err = r.RenderComponent(context.Background(), 42)
	assert.ErrorContains(t, err, "unsupported component type int")
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	r := NewUniversalRenderer()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.RenderPage(c, http.StatusNotFound, g.H1(cmp.Text("missing"))))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<h1>missing</h1>", rec.Body.String())
}

func TestRenderPage_FailureWritesNothing(t *testing.T) {
	e := echo.New()
	r := NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.Error(t, r.RenderPage(c, http.StatusOK, "not a component"))
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}

func TestEchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.Render(http.StatusOK, "", templText("<b>ok</b>")))
	assert.Equal(t, "<b>ok</b>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}
