// Package templateregistry is the closed catalogue of portfolio templates.
// Lookups never fail: anything that is not a known id renders as Minimal.
package templateregistry

import (
	dto "github.com/as1coder/portfolioBuilder/internal/view/dto/portfolio"
	"github.com/as1coder/portfolioBuilder/web/src/templates/portfolio"
	"maragu.dev/gomponents"
)

// Template identifies one of the fixed portfolio designs.
type Template int

const (
	Minimal Template = iota
	Professional
	Creative
)

// Default is used for unset or unknown ids.
const Default = Minimal

// Info describes a template for the selection page.
type Info struct {
	ID          string
	Name        string
	Description string
	// Gradient holds the preview card's background classes.
	Gradient string
}

var catalogue = [...]Info{
	Minimal: {
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Clean and simple design",
		Gradient:    "from-gray-100 to-gray-300",
	},
	Professional: {
		ID:          "professional",
		Name:        "Professional",
		Description: "Corporate and formal style",
		Gradient:    "from-blue-100 to-blue-300",
	},
	Creative: {
		ID:          "creative",
		Name:        "Creative",
		Description: "Colorful and modern design",
		Gradient:    "from-purple-100 to-pink-300",
	},
}

// All returns every template in display order.
func All() []Template {
	return []Template{Minimal, Professional, Creative}
}

// Parse resolves a stored id. Unknown ids, including "", yield Default.
func Parse(id string) Template {
	for _, t := range All() {
		if catalogue[t].ID == id {
			return t
		}
	}
	return Default
}

// Known reports whether id names a template exactly.
func Known(id string) bool {
	for _, t := range All() {
		if catalogue[t].ID == id {
			return true
		}
	}
	return false
}

// Info returns the catalogue entry. Out-of-range values describe Default.
func (t Template) Info() Info {
	if t < Minimal || t > Creative {
		return catalogue[Default]
	}
	return catalogue[t]
}

// ID is the identifier stored on profiles.
func (t Template) ID() string {
	return t.Info().ID
}

func (t Template) String() string {
	return t.ID()
}

// Render dispatches to the template's renderer.
func Render(t Template, page dto.Page) gomponents.Node {
	switch t {
	case Professional:
		return portfolio.Professional(page)
	case Creative:
		return portfolio.Creative(page)
	case Minimal:
		return portfolio.Minimal(page)
	default:
		return portfolio.Minimal(page)
	}
}
