// Package pages holds the application pages rendered inside layouts.Base.
package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the landing page. home is where a signed-in visitor continues to.
func Home(signedIn bool, home string) cmp.Node {
	cta := g.A(g.Href("/signup"), g.Class(buttonClass), cmp.Text("Get Started"))
	if signedIn {
		cta = g.A(g.Href(home), g.Class(buttonClass), cmp.Text("Go to Dashboard"))
	}
	return g.Section(
		g.ID("landing"),
		g.Class("mx-auto max-w-3xl py-16 text-center"),
		g.H1(g.Class("mb-4 text-5xl font-extrabold"), cmp.Text("Build your developer portfolio in minutes")),
		g.P(g.Class("mb-8 text-lg text-gray-600 dark:text-gray-300"),
			cmp.Text("Pick a template, add your projects and share one link. No code required."),
		),
		cta,
		g.Div(
			g.Class("mt-12 grid gap-6 md:grid-cols-3"),
			feature("Choose a template", "Minimal, Professional or Creative. Switch whenever you like."),
			feature("Showcase projects", "Describe what you built, the stack you used and where to see it live."),
			feature("Share your link", "Your portfolio is public at its own address as soon as you pick a template."),
		),
	)
}

func feature(title, body string) cmp.Node {
	return g.Div(
		g.Class("rounded-xl bg-white p-6 shadow dark:bg-gray-800"),
		g.H3(g.Class("mb-2 font-bold"), cmp.Text(title)),
		g.P(g.Class("text-sm text-gray-600 dark:text-gray-300"), cmp.Text(body)),
	)
}
