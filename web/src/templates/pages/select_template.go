package pages

import (
	"github.com/as1coder/portfolioBuilder/internal/templateregistry"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// SelectTemplate renders one card per template. Each card is its own form so a
// single click completes onboarding.
func SelectTemplate(options []templateregistry.Info, current string) cmp.Node {
	return g.Section(
		g.ID("select-template"),
		g.H1(g.Class("mb-2 text-3xl font-bold"), cmp.Text("Choose your template")),
		g.P(g.Class("mb-8 text-gray-600 dark:text-gray-300"), cmp.Text("You can change it later from the dashboard.")),
		g.Div(
			g.Class("grid gap-6 md:grid-cols-3"),
			cmp.Map(options, func(info templateregistry.Info) cmp.Node {
				return templateCard(info, info.ID == current)
			}),
		),
	)
}

func templateCard(info templateregistry.Info, selected bool) cmp.Node {
	return g.Form(
		g.Method("post"), g.Action("/select-template"),
		g.Class(cardClass),
		g.Input(g.Type("hidden"), g.Name("template"), g.Value(info.ID)),
		g.Div(g.Class("mb-4 h-32 rounded-lg bg-gradient-to-br "+info.Gradient)),
		g.H2(g.Class("mb-1 text-xl font-bold"), cmp.Text(info.Name)),
		g.P(g.Class("mb-4 text-sm text-gray-600 dark:text-gray-300"), cmp.Text(info.Description)),
		cmp.If(selected, g.P(g.Class("mb-2 text-sm font-semibold text-green-600"), cmp.Text("Current template"))),
		submit("Use "+info.Name),
	)
}
