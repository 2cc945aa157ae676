// Package portfolio renders the public portfolio templates.
package portfolio

import (
	"strconv"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/portfolio"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

var (
	navSections = []string{"about", "skills", "projects", "contact"}
	titleCaser  = cases.Title(language.English)
)

// document wraps a template body in the shared HTML shell.
func document(page dto.Page, body ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			cmp.If(page.Dark, g.Class("dark")),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(page.Profile.DisplayName()+" | Portfolio")),
				g.Meta(g.Name("description"), g.Content(page.Profile.Bio)),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/portfolio.css")),
			),
			g.Body(append([]cmp.Node{hx.Boost("true")}, body...)...),
		),
	)
}

// navLinks renders the in-page section anchors.
func navLinks(itemClass string) cmp.Node {
	return cmp.Map(navSections, func(id string) cmp.Node {
		return g.Li(g.A(g.Class(itemClass), g.Href("#"+id), cmp.Text(titleCaser.String(id))))
	})
}

// themeToggle posts the opposite scheme to /theme and comes back here.
func themeToggle(page dto.Page, buttonClass string) cmp.Node {
	next, label := "dark", "Dark mode"
	if page.Dark {
		next, label = "light", "Light mode"
	}
	return g.Form(
		g.Method("post"),
		g.Action("/theme"),
		g.Input(g.Type("hidden"), g.Name("theme"), g.Value(next)),
		g.Input(g.Type("hidden"), g.Name("redirect"), g.Value(page.Path())),
		g.Button(g.Type("submit"), g.Class(buttonClass), g.Aria("label", label), cmp.Text(label)),
	)
}

// mobileMenu is a disclosure widget, so the open state needs no script.
func mobileMenu(page dto.Page, panelClass string) cmp.Node {
	return g.Details(
		g.Class("mobile-menu md:hidden"),
		g.Summary(g.Class("cursor-pointer p-2"), cmp.Text("Menu")),
		g.Div(
			g.Class(panelClass),
			g.Ul(g.Class("flex flex-col items-center gap-6 py-6 text-sm"), navLinks("hover:text-blue-500")),
			themeToggle(page, "text-sm underline"),
		),
	)
}

func avatar(page dto.Page, class string) cmp.Node {
	if page.Profile.PhotoURL == "" {
		return nil
	}
	return g.Img(g.Src(page.Profile.PhotoURL), g.Alt(page.Profile.DisplayName()), g.Class(class))
}

func skillList(skills []string, itemClass string) cmp.Node {
	return cmp.Map(skills, func(s string) cmp.Node {
		return g.Span(g.Class(itemClass), cmp.Text(s))
	})
}

func externalLink(href, class, label string) cmp.Node {
	return g.A(g.Href(href), g.Target("_blank"), g.Rel("noopener noreferrer"), g.Class(class), cmp.Text(label))
}

// contactLinks renders the mail link followed by every configured social link.
func contactLinks(page dto.Page, class string) cmp.Node {
	links := []cmp.Node{
		g.A(g.Href("mailto:"+page.Profile.Email), g.Class(class), cmp.Text("Email")),
	}
	for _, l := range page.Profile.SocialLinks() {
		links = append(links, externalLink(l.URL, class, l.Label))
	}
	return cmp.Group(links)
}

func projectLinks(p domain.Project, class string) cmp.Node {
	return cmp.Group{
		cmp.If(p.LiveLink != "", externalLink(p.LiveLink, class, "Live")),
		cmp.If(p.GithubLink != "", externalLink(p.GithubLink, class, "Code")),
	}
}

func footer(page dto.Page, class string) cmp.Node {
	return g.Footer(
		g.Class(class),
		cmp.Text("© "+strconv.Itoa(page.Year)+" "+page.Profile.DisplayName()),
	)
}
