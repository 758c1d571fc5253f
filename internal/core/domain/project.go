package domain

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project belongs to exactly one user; UserID never changes after creation.
type Project struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Status      ProjectStatus
}

type CreateProjectInput struct {
	UserID      string
	Name        string
	Description string
	Status      ProjectStatus
}

// UpdateProjectInput is a partial update; nil fields are left untouched.
// There is deliberately no UserID field: ownership is immutable.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
}
