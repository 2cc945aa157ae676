package portfolio

import (
	"strings"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/portfolio"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ProfessionalTagline stands in for an empty tagline on the professional template.
const ProfessionalTagline = "Frontend Developer | Building modern web apps"

// Professional is the corporate template.
func Professional(page dto.Page) cmp.Node {
	p := page.Profile
	tagline := strings.TrimSpace(string(p.Tagline))
	if tagline == "" {
		tagline = ProfessionalTagline
	}

	scheme := "bg-slate-50 text-slate-900"
	card := "bg-white border-slate-200"
	if page.Dark {
		scheme = "bg-slate-900 text-slate-100"
		card = "bg-slate-800 border-slate-700"
	}

	return document(page,
		g.Div(
			g.Class("min-h-screen font-sans "+scheme),
			g.Nav(
				g.Class("sticky top-0 z-50 px-6 py-4 flex justify-between items-center shadow-sm "+card),
				g.A(g.Href("#hero"), g.Class("text-xl font-semibold text-blue-700"), cmp.Text(p.DisplayName())),
				g.Ul(
					g.Class("hidden md:flex gap-8 items-center text-sm font-medium"),
					navLinks("hover:text-blue-600"),
					g.Li(themeToggle(page, "px-3 py-1 border rounded text-xs")),
				),
				mobileMenu(page, "absolute top-16 left-0 w-full shadow "+card),
			),

			g.Section(
				g.ID("hero"),
				g.Class("px-6 py-24 flex flex-col md:flex-row items-center justify-center gap-12 max-w-5xl mx-auto"),
				avatar(page, "w-40 h-40 rounded-lg object-cover shadow-lg"),
				g.Div(
					g.H1(g.Class("text-4xl sm:text-5xl font-bold mb-4"), cmp.Text(p.DisplayName())),
					g.P(g.Class("text-lg text-blue-700 mb-6"), cmp.Text(tagline)),
					g.A(g.Href("#contact"), g.Class("inline-block px-6 py-3 bg-blue-700 text-white rounded shadow hover:bg-blue-800"), cmp.Text("Get in touch")),
				),
			),

			g.Section(
				g.ID("about"),
				g.Class("px-6 py-16 max-w-4xl mx-auto"),
				g.H2(g.Class("text-3xl sm:text-4xl font-bold mb-6"), cmp.Text("About Me")),
				g.P(g.Class("leading-relaxed"), cmp.Text(p.Bio)),
			),

			g.Section(
				g.ID("skills"),
				g.Class("px-6 py-16 max-w-4xl mx-auto"),
				g.H2(g.Class("text-3xl sm:text-4xl font-bold mb-6"), cmp.Text("Skills")),
				g.Div(g.Class("flex flex-wrap gap-3"), skillList(p.Skills, "px-3 py-1 rounded bg-blue-100 text-blue-800 text-sm")),
			),

			g.Section(
				g.ID("projects"),
				g.Class("px-6 py-16 max-w-5xl mx-auto"),
				g.H2(g.Class("text-3xl sm:text-4xl font-bold text-center mb-12"), cmp.Text("Projects")),
				g.Div(
					g.Class("grid md:grid-cols-2 gap-8"),
					cmp.Map(page.Projects, func(pr domain.Project) cmp.Node {
						return professionalProject(pr, card)
					}),
				),
			),

			g.Section(
				g.ID("contact"),
				g.Class("px-6 py-16 text-center"),
				g.H2(g.Class("text-3xl sm:text-4xl font-bold mb-6"), cmp.Text("Contact Me")),
				g.P(g.Class("mb-6 max-w-lg mx-auto text-sm sm:text-base"), cmp.Text("Open to new opportunities and collaborations.")),
				g.Div(g.Class("flex flex-wrap justify-center gap-4"), contactLinks(page, "px-5 py-2 border border-blue-700 rounded text-blue-700 hover:bg-blue-700 hover:text-white")),
			),

			footer(page, "py-6 text-center text-sm border-t"),
		),
	)
}

func professionalProject(p domain.Project, card string) cmp.Node {
	return g.Article(
		g.Class("p-6 rounded-lg border shadow-sm "+card),
		g.H3(g.Class("text-xl sm:text-2xl font-semibold mb-2"), cmp.Text(p.Title)),
		g.P(g.Class("mb-4 text-sm sm:text-base"), cmp.Text(p.Description)),
		g.Div(g.Class("flex flex-wrap gap-2 mb-4"), skillList(p.TechList(), "text-xs px-2 py-1 rounded bg-slate-200 text-slate-800")),
		g.Div(g.Class("flex gap-4 text-sm font-medium"), projectLinks(p, "text-blue-700 hover:underline")),
	)
}
