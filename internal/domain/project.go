package domain

import (
	"context"
	"strings"
	"time"
)

// Logical collections shared by every store backend.
const (
	CollectionUsers    = "users"
	CollectionProjects = "projects"
)

// Stored keys of a project document in the projects collection.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldTechnologies = "technologies"
	FieldLiveLink     = "liveLink"
	FieldGithubLink   = "githubLink"
	FieldUserID       = "userId"
)

// Project is a single portfolio entry owned by a profile.
type Project struct {
	ID           string     `json:"id" firestore:"-"`
	Title        string     `json:"title" firestore:"title"`
	Description  string     `json:"description" firestore:"description"`
	Technologies string     `json:"technologies" firestore:"technologies"`
	LiveLink     string     `json:"liveLink" firestore:"liveLink"`
	GithubLink   string     `json:"githubLink" firestore:"githubLink"`
	UserID       string     `json:"userId" firestore:"userId"`
	CreatedAt    *time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// TechList splits the free-text technologies field for display.
func (p *Project) TechList() []string {
	var out []string
	for _, t := range strings.Split(p.Technologies, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ProjectDraft carries the five user-editable project fields.
type ProjectDraft struct {
	Title        string `form:"title" json:"title" validate:"required,max=200"`
	Description  string `form:"description" json:"description" validate:"required,max=5000"`
	Technologies string `form:"technologies" json:"technologies" validate:"max=500"`
	LiveLink     string `form:"liveLink" json:"liveLink" validate:"omitempty,httpurl"`
	GithubLink   string `form:"githubLink" json:"githubLink" validate:"omitempty,httpurl"`
}

// Normalize trims surrounding whitespace from every field.
func (d *ProjectDraft) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Technologies = strings.TrimSpace(d.Technologies)
	d.LiveLink = strings.TrimSpace(d.LiveLink)
	d.GithubLink = strings.TrimSpace(d.GithubLink)
}

// Validate runs the struct tags against the draft.
func (d *ProjectDraft) Validate() error {
	return validatorInstance.Struct(d)
}

// Fields returns the editable fields keyed by their stored names.
func (d ProjectDraft) Fields() map[string]any {
	return map[string]any{
		FieldTitle:        d.Title,
		FieldDescription:  d.Description,
		FieldTechnologies: d.Technologies,
		FieldLiveLink:     d.LiveLink,
		FieldGithubLink:   d.GithubLink,
	}
}

// DraftOf returns the editable fields of an existing project.
func DraftOf(p Project) ProjectDraft {
	return ProjectDraft{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		LiveLink:     p.LiveLink,
		GithubLink:   p.GithubLink,
	}
}

// ProjectRepository defines the contract for project storage. Projects are
// only ever listed by owner.
type ProjectRepository interface {
	// ListProjects returns the owner's projects in store order.
	ListProjects(ctx context.Context, userID string) ([]Project, error)
	// CreateProject stores a new project and returns its generated id.
	CreateProject(ctx context.Context, project Project) (string, error)
	// UpdateProject merges fields into an existing project. ErrNotFound when absent.
	UpdateProject(ctx context.Context, id string, fields map[string]any) error
	// DeleteProject removes a project. ErrNotFound when absent.
	DeleteProject(ctx context.Context, id string) error
	// GetProject returns a single project. ErrNotFound when absent.
	GetProject(ctx context.Context, id string) (*Project, error)
}

// Store is the full document-store façade used by the application.
type Store interface {
	ProfileRepository
	ProjectRepository
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
