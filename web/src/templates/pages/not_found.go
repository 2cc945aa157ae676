package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// PortfolioNotFound is shown when a public portfolio id has no profile.
const PortfolioNotFound = "Portfolio not found"

// NotFound renders the 404 page.
func NotFound(message string) cmp.Node {
	return ErrorPage(404, message)
}

// ErrorPage renders a status page with a way back home.
func ErrorPage(status int, message string) cmp.Node {
	return g.Section(
		g.ID("error"),
		g.Class("mx-auto max-w-md py-16 text-center"),
		g.P(g.Class("text-6xl font-extrabold text-indigo-600"), cmp.Text(strconv.Itoa(status))),
		g.H1(g.Class("my-4 text-2xl font-bold"), cmp.Text(message)),
		g.A(g.Href("/"), g.Class(buttonClass), cmp.Text("Back to home")),
	)
}
