// Package coordinator keeps the entity stores' parent scoping in sync
// with ambient identity and navigation state. The cascades are explicit
// event subscriptions, not hidden recomputation: an identity change maps
// to a load or clear action through a visible transition function.
package coordinator

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"projectmanager/internal/app/store"
	"projectmanager/internal/core/domain"
)

type action int

const (
	actionNone action = iota
	actionLoad
	actionClear
)

// transition maps an old/new parent key pair to the store action it
// requires. Same key twice is a no-op, which makes re-entrant triggering
// idempotent; a changed non-empty key reloads wholesale (last load wins).
func transition(oldKey, newKey string) action {
	switch {
	case oldKey == newKey:
		return actionNone
	case newKey == "":
		return actionClear
	default:
		return actionLoad
	}
}

// ProjectSync loads the project store when a user logs in and clears it
// when the session ends.
type ProjectSync struct {
	session  *store.SessionStore
	projects *store.ProjectStore

	mu         sync.Mutex
	lastUserID string
}

func NewProjectSync(session *store.SessionStore, projects *store.ProjectStore) *ProjectSync {
	return &ProjectSync{session: session, projects: projects}
}

// Start subscribes to identity changes and applies the current identity
// immediately, so a session restored from disk populates the store too.
func (s *ProjectSync) Start(ctx context.Context) {
	s.session.SubscribeIdentity(func(user *domain.User) {
		s.apply(ctx, userID(user))
	})
	s.apply(ctx, userID(s.session.CurrentUser()))
}

func (s *ProjectSync) apply(ctx context.Context, id string) {
	s.mu.Lock()
	act := transition(s.lastUserID, id)
	s.lastUserID = id
	s.mu.Unlock()

	switch act {
	case actionLoad:
		zap.L().Debug("identity changed, loading projects", zap.String("user_id", id))
		s.projects.Load(ctx, id)
	case actionClear:
		zap.L().Debug("identity cleared, clearing projects")
		s.projects.Clear()
	}
}

// TaskSync loads the task store for the selected project (the route
// parameter analog) and clears it when the selection or the session
// goes away.
type TaskSync struct {
	session *store.SessionStore
	tasks   *store.TaskStore

	mu     sync.Mutex
	active string
}

func NewTaskSync(session *store.SessionStore, tasks *store.TaskStore) *TaskSync {
	return &TaskSync{session: session, tasks: tasks}
}

// Start subscribes to identity changes: the end of a session deselects
// the active project and clears the task store.
func (s *TaskSync) Start(ctx context.Context) {
	s.session.SubscribeIdentity(func(user *domain.User) {
		if user == nil {
			s.SetActiveProject(ctx, "")
		}
	})
}

// SetActiveProject changes the selection. Selecting the same project
// twice is a no-op; selecting another project replaces the cached tasks
// wholesale; an empty id clears them.
func (s *TaskSync) SetActiveProject(ctx context.Context, projectID string) {
	s.mu.Lock()
	act := transition(s.active, projectID)
	s.active = projectID
	s.mu.Unlock()

	switch act {
	case actionLoad:
		zap.L().Debug("active project changed, loading tasks", zap.String("project_id", projectID))
		s.tasks.Load(ctx, projectID)
	case actionClear:
		zap.L().Debug("active project cleared, clearing tasks")
		s.tasks.Clear()
	}
}

// ActiveProject returns the currently selected project id, or "".
func (s *TaskSync) ActiveProject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func userID(user *domain.User) string {
	if user == nil {
		return ""
	}
	return user.ID
}
