package pages

import (
	"github.com/as1coder/portfolioBuilder/internal/domain"
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/dashboard"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ProjectListID is the htmx swap target for project list updates.
const ProjectListID = "project-list"

// Dashboard renders the signed-in user's editor.
func Dashboard(data dto.Data) cmp.Node {
	return g.Div(
		g.ID("dashboard"),
		g.Class("grid gap-8 lg:grid-cols-4"),
		sidebar(data),
		g.Div(
			g.Class("lg:col-span-3"),
			sectionTabs(data.Section),
			cmp.If(data.Section == dto.SectionProjects, projectsSection(data)),
			cmp.If(data.Section == dto.SectionProfile, profileSection(data)),
		),
		cmp.If(data.Editing != nil, editModal(data.Editing)),
	)
}

func sidebar(data dto.Data) cmp.Node {
	p := data.Profile
	return g.Aside(
		g.ID("profile-summary"),
		g.Class(cardClass),
		cmp.If(p.PhotoURL != "", g.Img(g.Src(p.PhotoURL), g.Alt(p.DisplayName()), g.Class("mx-auto mb-4 h-24 w-24 rounded-full object-cover"))),
		g.H2(g.Class("text-center text-xl font-bold"), cmp.Text(p.DisplayName())),
		g.P(g.Class("mb-4 text-center text-sm text-gray-500"), cmp.Text(p.Headlines()[0])),
		g.P(g.Class("text-sm"), cmp.Text("Template: "), g.Strong(cmp.Text(data.TemplateName))),
		g.P(g.Class("mb-4 text-sm"), cmp.Textf("%d projects", len(data.Projects))),
		g.A(g.Href(data.PortfolioURL), g.Target("_blank"), g.Rel("noopener"), g.Class(buttonClass+" w-full text-center"), cmp.Text("View portfolio")),
		g.A(g.Href("/select-template"), g.Class("mt-2 block text-center text-sm text-indigo-600"), cmp.Text("Change template")),
	)
}

func sectionTabs(current string) cmp.Node {
	tab := func(section, label string) cmp.Node {
		class := "rounded-lg px-4 py-2"
		if section == current {
			class += " bg-indigo-600 text-white"
		}
		return g.A(g.Href("/dashboard?section="+section), g.Class(class), cmp.Text(label))
	}
	return g.Nav(g.Class("mb-6 flex gap-2"),
		tab(dto.SectionProjects, "Projects"),
		tab(dto.SectionProfile, "Profile"),
	)
}

func projectsSection(data dto.Data) cmp.Node {
	return g.Section(
		g.ID("projects"),
		g.Div(g.Class(cardClass+" mb-6"),
			g.H2(g.Class("mb-4 text-xl font-bold"), cmp.Text("Add project")),
			projectForm("/dashboard/projects", domain.ProjectDraft{}, "Add project"),
		),
		ProjectList(data.Projects),
	)
}

// ProjectList renders the project cards. It is also the htmx response to a
// delete.
func ProjectList(projects []domain.Project) cmp.Node {
	return g.Div(
		g.ID(ProjectListID),
		g.Class("grid gap-4 md:grid-cols-2"),
		cmp.If(len(projects) == 0, g.P(g.Class("text-gray-500"), cmp.Text("No projects yet. Add your first one above."))),
		cmp.Map(projects, projectCard),
	)
}

func projectCard(p domain.Project) cmp.Node {
	return g.Article(
		g.ID("project-"+p.ID),
		g.Class(cardClass),
		g.H3(g.Class("mb-2 text-lg font-bold"), cmp.Text(p.Title)),
		g.P(g.Class("mb-2 text-sm"), cmp.Text(p.Description)),
		g.Ul(g.Class("mb-4 flex flex-wrap gap-2"),
			cmp.Map(p.TechList(), func(t string) cmp.Node {
				return g.Li(g.Class("rounded bg-gray-100 px-2 py-1 text-xs dark:bg-gray-700"), cmp.Text(t))
			}),
		),
		g.Div(g.Class("flex gap-4 text-sm"),
			g.A(g.Href("/dashboard?edit="+p.ID), g.Class("text-indigo-600"), cmp.Text("Edit")),
			g.Button(
				g.Type("button"),
				g.Class("text-red-600"),
				hx.Post("/dashboard/projects/"+p.ID+"/delete"),
				hx.Target("#"+ProjectListID),
				hx.Swap("outerHTML"),
				cmp.Text("Delete"),
			),
		),
	)
}

func projectForm(action string, d domain.ProjectDraft, label string) cmp.Node {
	return g.Form(
		g.Method("post"), g.Action(action),
		field("Title", "title", "text", d.Title, g.Required()),
		textArea("Description", "description", d.Description, g.Required()),
		field("Technologies (comma separated)", "technologies", "text", d.Technologies),
		field("Live link", "liveLink", "url", d.LiveLink),
		field("GitHub link", "githubLink", "url", d.GithubLink),
		submit(label),
	)
}

func editModal(p *domain.Project) cmp.Node {
	return g.Div(
		g.ID("edit-modal"),
		g.Role("dialog"),
		g.Aria("modal", "true"),
		g.Class("fixed inset-0 z-40 flex items-center justify-center bg-black/50"),
		g.Div(g.Class("w-full max-w-lg "+cardClass),
			g.Div(g.Class("mb-4 flex items-center justify-between"),
				g.H2(g.Class("text-xl font-bold"), cmp.Text("Edit project")),
				g.A(g.Href("/dashboard"), g.Aria("label", "Close"), cmp.Text("×")),
			),
			projectForm("/dashboard/projects/"+p.ID, domain.DraftOf(*p), "Save changes"),
		),
	)
}

func profileSection(data dto.Data) cmp.Node {
	f := data.Form
	return g.Section(
		g.ID("profile"),
		g.Class("space-y-6"),
		g.Div(g.Class(cardClass),
			g.H2(g.Class("mb-4 text-xl font-bold"), cmp.Text("Profile image")),
			g.Form(
				g.Method("post"), g.Action("/dashboard/profile/image"), g.EncType("multipart/form-data"),
				g.Input(g.Type("file"), g.Name("image"), g.Accept("image/*"), g.Required(), g.Class("mb-4 block")),
				g.P(g.Class("mb-4 text-xs text-gray-500"), cmp.Text("PNG, JPG or GIF under 2MB.")),
				submit("Upload image"),
			),
		),
		g.Div(g.Class(cardClass),
			g.H2(g.Class("mb-4 text-xl font-bold"), cmp.Text("Profile details")),
			g.Form(
				g.Method("post"), g.Action("/dashboard/profile"),
				field("Name", "name", "text", f.Name),
				field("Tagline (comma separated headlines)", "tagline", "text", f.Tagline),
				textArea("Bio", "bio", f.Bio),
				field("Skills (comma separated)", "skills", "text", f.Skills),
				field("Contact email", "email", "email", f.Email),
				field("GitHub", "github", "url", f.GitHub),
				field("LinkedIn", "linkedin", "url", f.LinkedIn),
				field("Twitter", "twitter", "url", f.Twitter),
				field("Instagram", "instagram", "url", f.Instagram),
				submit("Save profile"),
			),
		),
	)
}
