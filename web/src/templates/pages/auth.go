package pages

import (
	"github.com/as1coder/portfolioBuilder/internal/view/dto/auth"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Login renders the sign-in form.
func Login(data auth.LoginData) cmp.Node {
	return authCard("Welcome back",
		g.Form(
			g.Method("post"), g.Action("/login"),
			field("Email", "email", "email", data.Email, g.Required(), g.AutoComplete("email")),
			field("Password", "password", "password", "", g.Required(), g.AutoComplete("current-password")),
			submit("Login"),
		),
		g.P(g.Class("mt-4 text-sm"), cmp.Text("No account yet? "), g.A(g.Href("/signup"), g.Class("text-indigo-600"), cmp.Text("Sign up"))),
	)
}

// Signup renders the account creation form.
func Signup(data auth.SignupData) cmp.Node {
	return authCard("Create your account",
		g.Form(
			g.Method("post"), g.Action("/signup"),
			field("Name", "name", "text", data.Name, g.Required(), g.AutoComplete("name")),
			field("Email", "email", "email", data.Email, g.Required(), g.AutoComplete("email")),
			field("Password", "password", "password", "", g.Required(), g.MinLength("6"), g.AutoComplete("new-password")),
			field("Confirm password", "password_confirm", "password", "", g.Required(), g.AutoComplete("new-password")),
			submit("Sign up"),
		),
		g.P(g.Class("mt-4 text-sm"), cmp.Text("Already have an account? "), g.A(g.Href("/login"), g.Class("text-indigo-600"), cmp.Text("Login"))),
	)
}

func authCard(title string, children ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("mx-auto max-w-md "+cardClass),
		g.H1(g.Class("mb-6 text-2xl font-bold"), cmp.Text(title)),
		cmp.Group(children),
	)
}
