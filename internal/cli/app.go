// Package cli is the presentation glue over the state layer: thin cobra
// commands that drive the stores and coordinators and print the results.
package cli

import (
	"context"
	"errors"

	"projectmanager/internal/adapter/api"
	"projectmanager/internal/adapter/storage"
	"projectmanager/internal/app/coordinator"
	"projectmanager/internal/app/store"
	"projectmanager/internal/config"
	"projectmanager/internal/core/domain"
	"projectmanager/pkg/apierrors"
)

type App struct {
	Config      *config.Config
	Session     *store.SessionStore
	Projects    *store.ProjectStore
	Tasks       *store.TaskStore
	ProjectSync *coordinator.ProjectSync
	TaskSync    *coordinator.TaskSync
}

func NewApp(cfg *config.Config) *App {
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, cfg.Language)
	vault := storage.OpenFileStore(cfg.SessionFile)

	session := store.NewSessionStore(client, vault, cfg.JWTSecret)
	projects := store.NewProjectStore(client)
	tasks := store.NewTaskStore(client)

	return &App{
		Config:      cfg,
		Session:     session,
		Projects:    projects,
		Tasks:       tasks,
		ProjectSync: coordinator.NewProjectSync(session, projects),
		TaskSync:    coordinator.NewTaskSync(session, tasks),
	}
}

// Start validates the resumed session and wires the coordinators, which
// also loads the current user's projects when a session was restored.
func (a *App) Start(ctx context.Context) {
	a.Session.CheckAuth()
	a.ProjectSync.Start(ctx)
	a.TaskSync.Start(ctx)
}

// requireUser is the guard commands use in place of a route guard.
func (a *App) requireUser() (*domain.User, error) {
	user := a.Session.CurrentUser()
	if user == nil {
		return nil, errors.New(apierrors.GetTransErrorMsg(apierrors.MsgNotLoggedIn, a.Config.Language))
	}
	return user, nil
}
