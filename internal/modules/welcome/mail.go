package welcome

import (
	"bytes"
	"strings"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/events"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const (
	welcomeSubject = "Welcome to Folio"
	liveSubject    = "Your portfolio is live"
)

var titleCaser = cases.Title(language.English)

// greetingName title-cases the name, falling back to the email's local part.
func greetingName(name, email string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		n = domain.DeriveUsername("", email)
	}
	return titleCaser.String(n)
}

func welcomeEmail(e events.SignedUp) (domain.Email, error) {
	body := mailBody(
		g.H1(cmp.Textf("Hi %s,", greetingName(e.Name, e.Email))),
		g.P(cmp.Text("Thanks for signing up. Pick a template to publish your portfolio.")),
	)
	return compose(e.Email, welcomeSubject, body)
}

func liveEmail(e events.Onboarded) (domain.Email, error) {
	body := mailBody(
		g.H1(cmp.Textf("Hi %s,", greetingName(e.Username, e.Email))),
		g.P(cmp.Textf("Your portfolio now uses the %s template.", titleCaser.String(e.Template))),
		g.P(g.A(g.Href(e.PortfolioURL), cmp.Text(e.PortfolioURL))),
	)
	return compose(e.Email, liveSubject, body)
}

func mailBody(children ...cmp.Node) cmp.Node {
	return g.Doctype(g.HTML(g.Body(
		g.Div(append([]cmp.Node{g.Style("font-family:sans-serif;max-width:560px;margin:0 auto")}, children...)...),
	)))
}

func compose(to, subject string, body cmp.Node) (domain.Email, error) {
	var buf bytes.Buffer
	if err := body.Render(&buf); err != nil {
		return domain.Email{}, err
	}
	return domain.Email{To: to, Subject: subject, HTML: buf.String()}, nil
}
