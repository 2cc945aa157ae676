package firestore

import (
	"strings"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
)

// profileDoc mirrors domain.Profile with a loosely typed tagline, which older
// documents store as a list.
type profileDoc struct {
	Name      string     `firestore:"name"`
	Username  string     `firestore:"username"`
	Email     string     `firestore:"email"`
	Bio       string     `firestore:"bio"`
	Tagline   any        `firestore:"tagline"`
	Skills    []string   `firestore:"skills"`
	PhotoURL  string     `firestore:"photoURL"`
	GitHub    string     `firestore:"github"`
	LinkedIn  string     `firestore:"linkedin"`
	Twitter   string     `firestore:"twitter"`
	Instagram string     `firestore:"instagram"`
	Template  string     `firestore:"template"`
	Onboarded bool       `firestore:"onboarded"`
	CreatedAt *time.Time `firestore:"createdAt"`
	UpdatedAt *time.Time `firestore:"updatedAt"`
}

func (d *profileDoc) toDomain(id string) *domain.Profile {
	return &domain.Profile{
		ID:        id,
		Name:      d.Name,
		Username:  d.Username,
		Email:     d.Email,
		Bio:       d.Bio,
		Tagline:   taglineOf(d.Tagline),
		Skills:    d.Skills,
		PhotoURL:  d.PhotoURL,
		GitHub:    d.GitHub,
		LinkedIn:  d.LinkedIn,
		Twitter:   d.Twitter,
		Instagram: d.Instagram,
		Template:  d.Template,
		Onboarded: d.Onboarded,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func taglineOf(v any) domain.Tagline {
	switch t := v.(type) {
	case string:
		return domain.Tagline(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		return domain.Tagline(strings.Join(parts, ", "))
	default:
		return ""
	}
}
