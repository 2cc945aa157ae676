package portfolio

import (
	"github.com/as1coder/portfolioBuilder/internal/domain"
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/portfolio"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Minimal is the clean, monochrome template. It is also the fallback for
// unknown template ids.
func Minimal(page dto.Page) cmp.Node {
	p := page.Profile
	scheme := "bg-white text-black"
	if page.Dark {
		scheme = "bg-black text-white"
	}

	return document(page,
		g.Div(
			g.Class("min-h-screen transition-colors duration-500 "+scheme),
			g.Nav(
				g.Class("fixed w-full top-0 left-0 px-6 py-4 flex justify-between items-center backdrop-blur-sm z-50 border-b border-gray-200 dark:border-gray-800"),
				g.A(g.Href("#hero"), g.Class("font-bold text-lg"), cmp.Text(p.DisplayName())),
				g.Ul(
					g.Class("hidden md:flex gap-6 items-center text-sm"),
					navLinks("hover:text-blue-500"),
					g.Li(themeToggle(page, "text-sm")),
				),
				mobileMenu(page, "absolute top-14 left-0 w-full border-t border-gray-200"),
			),

			g.Section(
				g.ID("hero"),
				g.Class("min-h-screen flex flex-col justify-center items-center text-center px-6"),
				avatar(page, "w-28 h-28 rounded-full mb-4 object-cover"),
				g.H1(g.Class("text-3xl font-bold mb-2"), cmp.Text(p.DisplayName())),
				g.P(g.Class("text-sm mb-6"), cmp.Text(string(p.Tagline))),
				g.Div(
					g.Class("flex gap-4"),
					g.A(g.Href("#projects"), g.Class("px-4 py-2 text-sm border rounded hover:bg-blue-500 hover:text-white"), cmp.Text("Projects")),
					g.A(g.Href("#contact"), g.Class("px-4 py-2 text-sm border rounded hover:bg-blue-500 hover:text-white"), cmp.Text("Contact")),
				),
			),

			g.Section(
				g.ID("about"),
				g.Class("py-20 px-6 text-center"),
				g.H2(g.Class("text-2xl font-bold mb-6"), cmp.Text("About Me")),
				g.P(g.Class("max-w-2xl mx-auto text-sm mb-8"), cmp.Text(p.Bio)),
			),

			g.Section(
				g.ID("skills"),
				g.Class("pb-20 px-6 flex flex-wrap justify-center gap-3"),
				skillList(p.Skills, "px-4 py-2 border rounded text-xs"),
			),

			g.Section(
				g.ID("projects"),
				g.Class("py-20 px-6"),
				g.H2(g.Class("text-2xl font-bold text-center mb-8"), cmp.Text("Projects")),
				g.Div(
					g.Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6"),
					cmp.Map(page.Projects, minimalProject),
				),
			),

			g.Section(
				g.ID("contact"),
				g.Class("py-20 px-6 text-center"),
				g.H2(g.Class("text-2xl font-bold mb-6"), cmp.Text("Contact Me")),
				g.Div(
					g.Class("flex flex-wrap justify-center gap-4"),
					contactLinks(page, "text-sm border px-4 py-2 rounded hover:bg-blue-500 hover:text-white"),
				),
			),

			footer(page, "py-6 text-center text-xs border-t border-gray-200 dark:border-gray-800"),
		),
	)
}

func minimalProject(p domain.Project) cmp.Node {
	return g.Div(
		g.Class("border rounded-lg overflow-hidden hover:shadow transition p-4"),
		g.H3(g.Class("font-semibold mb-2"), cmp.Text(p.Title)),
		g.P(g.Class("text-xs mb-3"), cmp.Text(p.Description)),
		g.Div(g.Class("flex gap-2"), projectLinks(p, "text-xs border px-3 py-1 rounded hover:bg-blue-500 hover:text-white")),
	)
}
