package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultHeadline is shown when a profile has no usable tagline.
const DefaultHeadline = "Frontend Developer"

// Stored keys of a profile document in the users collection.
const (
	FieldName      = "name"
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldBio       = "bio"
	FieldTagline   = "tagline"
	FieldSkills    = "skills"
	FieldPhotoURL  = "photoURL"
	FieldGitHub    = "github"
	FieldLinkedIn  = "linkedin"
	FieldTwitter   = "twitter"
	FieldInstagram = "instagram"
	FieldTemplate  = "template"
	FieldOnboarded = "onboarded"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Tagline holds one or more comma-separated headlines.
type Tagline string

// UnmarshalJSON accepts either a string or a list of strings. Older documents
// stored the headlines as a list.
func (t *Tagline) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Tagline(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("tagline must be a string or a list of strings: %w", err)
	}
	*t = Tagline(strings.Join(list, ", "))
	return nil
}

// Headlines splits the tagline on commas, trims each entry and drops empties.
// An empty result yields the single default headline.
func (t Tagline) Headlines() []string {
	var out []string
	for _, part := range strings.Split(string(t), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{DefaultHeadline}
	}
	return out
}

// Profile is the persisted per-user portfolio content, keyed by identity id.
type Profile struct {
	ID        string     `json:"-" firestore:"-"`
	Name      string     `json:"name,omitempty" firestore:"name,omitempty"`
	Username  string     `json:"username,omitempty" firestore:"username,omitempty"`
	Email     string     `json:"email,omitempty" firestore:"email,omitempty"`
	Bio       string     `json:"bio,omitempty" firestore:"bio,omitempty"`
	Tagline   Tagline    `json:"tagline,omitempty" firestore:"tagline,omitempty"`
	Skills    []string   `json:"skills,omitempty" firestore:"skills,omitempty"`
	PhotoURL  string     `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	GitHub    string     `json:"github,omitempty" firestore:"github,omitempty"`
	LinkedIn  string     `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	Twitter   string     `json:"twitter,omitempty" firestore:"twitter,omitempty"`
	Instagram string     `json:"instagram,omitempty" firestore:"instagram,omitempty"`
	Template  string     `json:"template,omitempty" firestore:"template,omitempty"`
	Onboarded bool       `json:"onboarded" firestore:"onboarded"`
	CreatedAt *time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// Headlines returns the rotating headlines derived from the tagline.
func (p *Profile) Headlines() []string {
	return p.Tagline.Headlines()
}

// DisplayName picks the best available name for headings.
func (p *Profile) DisplayName() string {
	switch {
	case p.Name != "":
		return p.Name
	case p.Username != "":
		return p.Username
	default:
		return DeriveUsername("", p.Email)
	}
}

// SocialLink is a labelled external profile URL.
type SocialLink struct {
	Key   string
	Label string
	URL   string
}

// SocialLinks returns the configured links in a fixed order, skipping blanks.
func (p *Profile) SocialLinks() []SocialLink {
	all := []SocialLink{
		{Key: FieldGitHub, Label: "GitHub", URL: p.GitHub},
		{Key: FieldLinkedIn, Label: "LinkedIn", URL: p.LinkedIn},
		{Key: FieldTwitter, Label: "Twitter", URL: p.Twitter},
		{Key: FieldInstagram, Label: "Instagram", URL: p.Instagram},
	}
	links := make([]SocialLink, 0, len(all))
	for _, l := range all {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

// Apply merges the included fields into the profile.
func (p *Profile) Apply(f ProfileFields) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&p.Name, f.Name)
	setString(&p.Username, f.Username)
	setString(&p.Email, f.Email)
	setString(&p.Bio, f.Bio)
	if f.Tagline != nil {
		p.Tagline = Tagline(*f.Tagline)
	}
	if f.Skills != nil {
		p.Skills = append([]string{}, f.Skills...)
	}
	setString(&p.PhotoURL, f.PhotoURL)
	setString(&p.GitHub, f.GitHub)
	setString(&p.LinkedIn, f.LinkedIn)
	setString(&p.Twitter, f.Twitter)
	setString(&p.Instagram, f.Instagram)
	setString(&p.Template, f.Template)
	if f.Onboarded != nil {
		p.Onboarded = *f.Onboarded
	}
	if f.CreatedAt != nil {
		t := *f.CreatedAt
		p.CreatedAt = &t
	}
	if f.UpdatedAt != nil {
		t := *f.UpdatedAt
		p.UpdatedAt = &t
	}
}

// ProfileFields is a partial profile write. Nil fields are not included in the
// write and are left untouched in the store. A non-nil empty Skills slice
// clears the list.
type ProfileFields struct {
	Name      *string
	Username  *string
	Email     *string
	Bio       *string
	Tagline   *string
	Skills    []string
	PhotoURL  *string
	GitHub    *string
	LinkedIn  *string
	Twitter   *string
	Instagram *string
	Template  *string
	Onboarded *bool
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// Map returns the included fields keyed by their stored names.
func (f ProfileFields) Map() map[string]any {
	m := make(map[string]any)
	putString := func(key string, v *string) {
		if v != nil {
			m[key] = *v
		}
	}
	putString(FieldName, f.Name)
	putString(FieldUsername, f.Username)
	putString(FieldEmail, f.Email)
	putString(FieldBio, f.Bio)
	putString(FieldTagline, f.Tagline)
	if f.Skills != nil {
		m[FieldSkills] = append([]string{}, f.Skills...)
	}
	putString(FieldPhotoURL, f.PhotoURL)
	putString(FieldGitHub, f.GitHub)
	putString(FieldLinkedIn, f.LinkedIn)
	putString(FieldTwitter, f.Twitter)
	putString(FieldInstagram, f.Instagram)
	putString(FieldTemplate, f.Template)
	if f.Onboarded != nil {
		m[FieldOnboarded] = *f.Onboarded
	}
	if f.CreatedAt != nil {
		m[FieldCreatedAt] = f.CreatedAt.UTC()
	}
	if f.UpdatedAt != nil {
		m[FieldUpdatedAt] = f.UpdatedAt.UTC()
	}
	return m
}

// IsEmpty reports whether the write would include no fields.
func (f ProfileFields) IsEmpty() bool {
	return len(f.Map()) == 0
}

// ParseSkills splits a comma-separated skills input, trimming each entry and
// dropping empty ones. The result is never nil.
func ParseSkills(input string) []string {
	skills := []string{}
	for _, s := range strings.Split(input, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// DeriveUsername prefers the identity's display name and otherwise uses the
// local part of the email address.
func DeriveUsername(displayName, email string) string {
	if name := strings.TrimSpace(displayName); name != "" {
		return name
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Ref returns a pointer to v. Handy for building ProfileFields literals.
func Ref[T any](v T) *T {
	return &v
}

// ProfileReader is the read half of ProfileRepository.
type ProfileReader interface {
	// GetProfile returns (nil, nil) when no profile exists for userID.
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

// ProfileRepository defines the contract for profile storage.
type ProfileRepository interface {
	ProfileReader
	// UpsertProfile merges the included fields into the profile document,
	// creating it when missing. Fields not included are never overwritten.
	UpsertProfile(ctx context.Context, userID string, fields ProfileFields) error
}
