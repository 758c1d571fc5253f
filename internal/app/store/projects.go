package store

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/adapter/api/mapper"
	"projectmanager/internal/core/domain"
	"projectmanager/internal/core/ports"
)

// ProjectStore caches the current user's projects and reconciles the
// cache against the backend on every write. Read failures degrade to an
// empty collection plus a log line; write failures are returned to the
// caller so the initiating action can be reported as failed.
type ProjectStore struct {
	client ports.RemoteClient
	cache  *cache[domain.Project]
}

func NewProjectStore(client ports.RemoteClient) *ProjectStore {
	return &ProjectStore{
		client: client,
		cache: newCache(
			func(p domain.Project) string { return p.ID },
			func(p domain.Project) (string, string) { return p.Name, p.Description },
			func(p domain.Project) string { return string(p.Status) },
		),
	}
}

// Load replaces the whole collection with the user's projects. On
// failure the cache is reset to empty so no stale data survives.
func (s *ProjectStore) Load(ctx context.Context, userID string) []domain.Project {
	ticket := s.cache.beginLoad()

	query := url.Values{}
	query.Set("userId", userID)

	var items []dto.ProjectItem
	if err := s.client.Get(ctx, "projects?"+query.Encode(), &items); err != nil {
		zap.L().Error("failed to load projects", zap.String("user_id", userID), zap.Error(err))
		s.cache.applyLoad(ticket, nil)
		return nil
	}

	projects := mapper.ToProjects(items)
	s.cache.applyLoad(ticket, projects)
	return projects
}

// GetByID fetches a single project without touching the cache.
func (s *ProjectStore) GetByID(ctx context.Context, projectID string) (domain.Project, bool) {
	var item dto.ProjectItem
	if err := s.client.Get(ctx, "projects/"+projectID, &item); err != nil {
		zap.L().Error("failed to get project", zap.String("project_id", projectID), zap.Error(err))
		return domain.Project{}, false
	}
	return mapper.ToProject(item), true
}

func (s *ProjectStore) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	var item dto.ProjectItem
	if err := s.client.Post(ctx, "projects", mapper.ToCreateProjectRequest(input), &item); err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		return domain.Project{}, err
	}

	project := mapper.ToProject(item)
	s.cache.append(project)
	return project, nil
}

func (s *ProjectStore) Update(ctx context.Context, projectID string, input domain.UpdateProjectInput) (domain.Project, error) {
	var item dto.ProjectItem
	if err := s.client.Patch(ctx, "projects/"+projectID, mapper.ToUpdateProjectRequest(input), &item); err != nil {
		zap.L().Error("failed to update project", zap.String("project_id", projectID), zap.Error(err))
		return domain.Project{}, err
	}

	project := mapper.ToProject(item)
	s.cache.replace(project)
	return project, nil
}

func (s *ProjectStore) Delete(ctx context.Context, projectID string) error {
	if err := s.client.Delete(ctx, "projects/"+projectID); err != nil {
		zap.L().Error("failed to delete project", zap.String("project_id", projectID), zap.Error(err))
		return err
	}

	s.cache.remove(projectID)
	return nil
}

// Clear empties the cache; used when the session ends.
func (s *ProjectStore) Clear() {
	s.cache.clear()
}

// Projects returns a copy of the full cached collection.
func (s *ProjectStore) Projects() []domain.Project {
	return s.cache.snapshot()
}

// Filtered returns the derived view for the current filter state.
func (s *ProjectStore) Filtered() []domain.Project {
	return s.cache.filtered()
}

func (s *ProjectStore) SetFilterText(text string) {
	s.cache.setFilterText(text)
}

// SetStatusFilter accepts a project status or StatusAll.
func (s *ProjectStore) SetStatusFilter(status string) {
	s.cache.setStatusFilter(status)
}

// Subscribe registers an observer of the cached collection.
func (s *ProjectStore) Subscribe(fn func([]domain.Project)) {
	s.cache.subscribe(fn)
}
