// Package layouts holds the page shell shared by the application pages.
package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/as1coder/portfolioBuilder/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

const appName = "Folio"

// Props configures the shell around a page.
type Props struct {
	Title    string
	Dark     bool
	SignedIn bool
	// Path is where the theme toggle returns to.
	Path    string
	Success []string
	Errors  []string
}

// CalculateTitle builds the document title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}

// Base wraps content in the application shell.
func Base(p Props, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(p,
			view.Node(ctx, partials.Flash(p.Success, p.Errors)),
			g.Main(g.Class("container mx-auto px-4 py-8"), view.Node(ctx, content)),
		).Render(w)
	})
}

func document(p Props, body ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			cmp.If(p.Dark, g.Class("dark")),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(p.Title))),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			),
			g.Body(
				g.Class("min-h-screen bg-gray-50 text-gray-900 dark:bg-gray-900 dark:text-gray-100"),
				hx.Boost("true"),
				header(p),
				cmp.Group(body),
			),
		),
	)
}

func header(p Props) cmp.Node {
	return g.Header(
		g.Class("border-b bg-white dark:bg-gray-800"),
		g.Nav(
			g.Class("container mx-auto flex items-center justify-between px-4 py-3"),
			g.A(g.Href("/"), g.Class("text-xl font-bold"), cmp.Text(appName)),
			g.Div(
				g.Class("flex items-center gap-4"),
				themeToggle(p),
				cmp.If(p.SignedIn, cmp.Group{
					g.A(g.Href("/dashboard"), cmp.Text("Dashboard")),
					g.Form(g.Method("post"), g.Action("/logout"),
						g.Button(g.Type("submit"), g.Class("text-red-600"), cmp.Text("Logout")),
					),
				}),
				cmp.If(!p.SignedIn, cmp.Group{
					g.A(g.Href("/login"), cmp.Text("Login")),
					g.A(g.Href("/signup"), g.Class("rounded bg-indigo-600 px-3 py-1 text-white"), cmp.Text("Sign up")),
				}),
			),
		),
	)
}

func themeToggle(p Props) cmp.Node {
	next, label := "dark", "Dark mode"
	if p.Dark {
		next, label = "light", "Light mode"
	}
	redirect := p.Path
	if redirect == "" {
		redirect = "/"
	}
	return g.Form(
		g.Method("post"),
		g.Action("/theme"),
		g.Input(g.Type("hidden"), g.Name("theme"), g.Value(next)),
		g.Input(g.Type("hidden"), g.Name("redirect"), g.Value(redirect)),
		g.Button(g.Type("submit"), g.Aria("label", label), cmp.Text(label)),
	)
}
