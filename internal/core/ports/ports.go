package ports

import (
	"context"

	"projectmanager/internal/core/domain"
)

// RemoteClient is the REST transport consumed by the stores. Paths are
// relative to the configured base URL, with query-string filters already
// appended by the caller. Implementations normalize transport and HTTP
// failures into a single generic error; callers never see raw shapes.
type RemoteClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}

// KeyValue is the persisted session state, the local-storage analog.
// Set writes all pairs together so a resumed session is either complete
// or absent.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(pairs map[string]string) error
	Remove(keys ...string) error
}

type UserRepository interface {
	FindByEmailAndPassword(ctx context.Context, email, password string) ([]domain.UserAccount, error)
	FindByID(ctx context.Context, id string) (domain.UserAccount, error)
	Create(ctx context.Context, account domain.UserAccount) (domain.UserAccount, error)
}

type ProjectRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (domain.Project, error)
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	Update(ctx context.Context, id string, input domain.UpdateProjectInput) (domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	FindByID(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}
