package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// profileRecord is a row of the users table.
type profileRecord struct {
	ID        *surrealmodels.RecordID       `json:"id,omitempty"`
	Name      string                        `json:"name,omitempty"`
	Username  string                        `json:"username,omitempty"`
	Email     string                        `json:"email,omitempty"`
	Bio       string                        `json:"bio,omitempty"`
	Tagline   any                           `json:"tagline,omitempty"`
	Skills    []string                      `json:"skills,omitempty"`
	PhotoURL  string                        `json:"photoURL,omitempty"`
	GitHub    string                        `json:"github,omitempty"`
	LinkedIn  string                        `json:"linkedin,omitempty"`
	Twitter   string                        `json:"twitter,omitempty"`
	Instagram string                        `json:"instagram,omitempty"`
	Template  string                        `json:"template,omitempty"`
	Onboarded bool                          `json:"onboarded"`
	CreatedAt *surrealmodels.CustomDateTime `json:"createdAt,omitempty"`
	UpdatedAt *surrealmodels.CustomDateTime `json:"updatedAt,omitempty"`
}

func (r *profileRecord) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:        recordKey(r.ID),
		Name:      r.Name,
		Username:  r.Username,
		Email:     r.Email,
		Bio:       r.Bio,
		Tagline:   taglineOf(r.Tagline),
		Skills:    r.Skills,
		PhotoURL:  r.PhotoURL,
		GitHub:    r.GitHub,
		LinkedIn:  r.LinkedIn,
		Twitter:   r.Twitter,
		Instagram: r.Instagram,
		Template:  r.Template,
		Onboarded: r.Onboarded,
		CreatedAt: timeOf(r.CreatedAt),
		UpdatedAt: timeOf(r.UpdatedAt),
	}
}

// projectRecord is a row of the projects table.
type projectRecord struct {
	ID           *surrealmodels.RecordID       `json:"id,omitempty"`
	Title        string                        `json:"title"`
	Description  string                        `json:"description"`
	Technologies string                        `json:"technologies"`
	LiveLink     string                        `json:"liveLink"`
	GithubLink   string                        `json:"githubLink"`
	UserID       string                        `json:"userId"`
	CreatedAt    *surrealmodels.CustomDateTime `json:"createdAt,omitempty"`
	UpdatedAt    *surrealmodels.CustomDateTime `json:"updatedAt,omitempty"`
}

func (r *projectRecord) toDomain() domain.Project {
	return domain.Project{
		ID:           recordKey(r.ID),
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		LiveLink:     r.LiveLink,
		GithubLink:   r.GithubLink,
		UserID:       r.UserID,
		CreatedAt:    timeOf(r.CreatedAt),
		UpdatedAt:    timeOf(r.UpdatedAt),
	}
}

// accountRecord is what SELECT * FROM $auth yields for a signed-in account.
type accountRecord struct {
	ID    *surrealmodels.RecordID `json:"id,omitempty"`
	Email string                  `json:"email"`
	Name  string                  `json:"name,omitempty"`
}

// recordKey returns the id part of a record id, "abc" for users:abc.
func recordKey(id *surrealmodels.RecordID) string {
	if id == nil || id.ID == nil {
		return ""
	}
	return fmt.Sprint(id.ID)
}

func timeOf(dt *surrealmodels.CustomDateTime) *time.Time {
	if dt == nil || dt.Time.IsZero() {
		return nil
	}
	t := dt.Time.UTC()
	return &t
}

// taglineOf accepts the string form and the older list form.
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
	case []string:
		return domain.Tagline(strings.Join(t, ", "))
	default:
		return ""
	}
}

// surrealData converts time values to SurrealDB datetimes so they sort and
// compare as datetimes instead of strings.
func surrealData(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case time.Time:
			out[k] = surrealmodels.CustomDateTime{Time: t.UTC()}
		case *time.Time:
			if t != nil {
				out[k] = surrealmodels.CustomDateTime{Time: t.UTC()}
			}
		default:
			out[k] = v
		}
	}
	return out
}
