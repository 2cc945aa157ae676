package partials

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestFlash_Empty(t *testing.T) {
	html := renderString(t, Flash(nil, nil))
	assert.Contains(t, html, `id="flash"`)
	assert.NotContains(t, html, "toast")
	assert.NotContains(t, html, "hx-swap-oob")
}

func TestFlash_Messages(t *testing.T) {
	html := renderString(t, Flash([]string{"Project added successfully!"}, []string{"Error <b>"}))
	assert.Contains(t, html, "toast-success")
	assert.Contains(t, html, "Project added successfully!")
	assert.Contains(t, html, "toast-error")
	assert.Contains(t, html, "Error &lt;b&gt;")
	assert.NotContains(t, html, "<b>")
}

func TestFlashOOB(t *testing.T) {
	html := renderString(t, FlashOOB([]string{"Project deleted successfully!"}, nil))
	assert.Contains(t, html, `hx-swap-oob="true"`)
	assert.Contains(t, html, "Project deleted successfully!")
}
