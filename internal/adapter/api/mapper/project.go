package mapper

import (
	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/core/domain"
)

// ToProject is total: an unrecognized status on the wire is defaulted to
// active rather than trusted, so the cache never holds an invalid value.
func ToProject(item dto.ProjectItem) domain.Project {
	status := domain.ProjectStatus(item.Status)
	if !status.Valid() {
		status = domain.ProjectStatusActive
	}

	return domain.Project{
		ID:          item.ID,
		UserID:      item.UserID,
		Name:        item.Name,
		Description: item.Description,
		Status:      status,
	}
}

func ToProjects(items []dto.ProjectItem) []domain.Project {
	projects := make([]domain.Project, 0, len(items))
	for _, item := range items {
		projects = append(projects, ToProject(item))
	}
	return projects
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	return dto.ProjectItem{
		ID:          project.ID,
		UserID:      project.UserID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
	}
}

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToCreateProjectRequest(input domain.CreateProjectInput) dto.CreateProjectRequest {
	status := input.Status
	if !status.Valid() {
		status = domain.ProjectStatusActive
	}

	return dto.CreateProjectRequest{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Status:      string(status),
	}
}

func ToUpdateProjectRequest(input domain.UpdateProjectInput) dto.UpdateProjectRequest {
	req := dto.UpdateProjectRequest{
		Name:        input.Name,
		Description: input.Description,
	}

	if input.Status != nil {
		value := string(*input.Status)
		req.Status = &value
	}

	return req
}
