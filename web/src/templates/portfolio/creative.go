package portfolio

import (
	"github.com/as1coder/portfolioBuilder/internal/domain"
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/portfolio"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Placeholders the creative template shows for missing content.
const (
	CreativeBio   = "I'm a passionate developer with expertise in modern web technologies. I love creating digital experiences that are both beautiful and functional."
	CreativeEmail = "hello@example.com"
)

// CreativeSkills stand in for an empty skill list.
var CreativeSkills = []string{"React", "JavaScript", "TypeScript", "Node.js", "CSS"}

// Creative is the colourful template with rotating headlines.
func Creative(page dto.Page) cmp.Node {
	p := page.Profile
	if p.Bio == "" {
		p.Bio = CreativeBio
	}
	if len(p.Skills) == 0 {
		p.Skills = CreativeSkills
	}
	if p.Email == "" {
		p.Email = CreativeEmail
	}
	page.Profile = p

	scheme := "bg-gradient-to-br from-purple-50 via-pink-50 to-blue-50 text-gray-900"
	if page.Dark {
		scheme = "bg-gradient-to-br from-gray-950 via-purple-950 to-gray-900 text-white"
	}

	return document(page,
		g.Div(
			g.Class("min-h-screen "+scheme),
			g.Nav(
				g.Class("fixed w-full top-0 z-50 px-6 py-4 flex justify-between items-center backdrop-blur-lg"),
				g.A(g.Href("#hero"), g.Class("text-2xl font-black bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent"), cmp.Text(p.DisplayName())),
				g.Ul(
					g.Class("hidden md:flex gap-8 items-center font-semibold"),
					navLinks("hover:text-purple-500"),
					g.Li(themeToggle(page, "px-4 py-2 rounded-full border-2 border-purple-500 text-sm")),
				),
				mobileMenu(page, "absolute top-16 left-0 w-full backdrop-blur-lg"),
			),

			g.Section(
				g.ID("hero"),
				g.Class("min-h-screen flex flex-col items-center justify-center text-center px-6"),
				avatar(page, "w-36 h-36 rounded-full object-cover mb-8 ring-4 ring-purple-500"),
				g.H1(g.Class("text-5xl sm:text-7xl font-black mb-6"), cmp.Text(p.DisplayName())),
				g.Ul(
					g.Class("headlines text-2xl sm:text-3xl font-bold text-purple-600 h-10 overflow-hidden"),
					cmp.Map(page.Headlines, func(h string) cmp.Node {
						return g.Li(g.Class("headline"), cmp.Text(h))
					}),
				),
			),

			g.Section(
				g.ID("about"),
				g.Class("px-6 py-20 max-w-6xl mx-auto"),
				g.H2(
					g.Class("text-4xl sm:text-6xl font-black mb-6 text-center"),
					cmp.Text("About "),
					g.Span(g.Class("bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent"), cmp.Text("Me")),
				),
				g.Div(
					g.Class("rounded-3xl p-8 sm:p-12 border shadow-2xl"),
					g.P(g.Class("text-lg sm:text-xl leading-relaxed"), cmp.Text(p.Bio)),
				),
			),

			g.Section(
				g.ID("skills"),
				g.Class("px-6 py-20 max-w-6xl mx-auto"),
				g.H3(g.Class("text-2xl sm:text-3xl font-bold mb-8 text-center"), cmp.Text("Skills & Technologies")),
				g.Div(
					g.Class("grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-5 gap-4"),
					skillList(p.Skills, "p-4 rounded-2xl text-center font-semibold bg-gradient-to-r from-blue-500 to-purple-500 text-white"),
				),
			),

			g.Section(
				g.ID("projects"),
				g.Class("px-6 py-20 max-w-6xl mx-auto"),
				g.H2(g.Class("text-4xl sm:text-6xl font-black mb-12 text-center"), cmp.Text("Projects")),
				g.Div(g.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), cmp.Map(page.Projects, creativeProject)),
			),

			g.Section(
				g.ID("contact"),
				g.Class("px-6 py-20 text-center"),
				g.H2(g.Class("text-4xl sm:text-6xl font-black mb-6"), cmp.Text("Let's Connect")),
				g.P(g.Class("text-lg mb-12 max-w-2xl mx-auto"), cmp.Text("Have a project in mind or just want to say hi? My inbox is always open.")),
				g.Div(g.Class("flex flex-wrap justify-center gap-4"), contactLinks(page, "px-8 py-4 rounded-full font-semibold border-2 border-purple-500 hover:bg-purple-500 hover:text-white")),
			),

			footer(page, "py-8 text-center border-t"),
		),
	)
}

func creativeProject(p domain.Project) cmp.Node {
	return g.Article(
		g.Class("rounded-3xl p-6 border shadow-xl hover:-translate-y-2 transition"),
		g.H3(g.Class("text-2xl font-bold mb-3"), cmp.Text(p.Title)),
		g.P(g.Class("mb-4"), cmp.Text(p.Description)),
		g.Div(g.Class("flex flex-wrap gap-2 mb-4"), skillList(p.TechList(), "text-xs px-3 py-1 rounded-full bg-purple-100 text-purple-700")),
		g.Div(g.Class("flex gap-3"), projectLinks(p, "px-4 py-2 rounded-full text-sm bg-gradient-to-r from-blue-600 to-purple-600 text-white")),
	)
}
