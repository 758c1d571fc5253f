package mapper

import (
	"time"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/core/domain"
)

const dueDateLayout = "2006-01-02"

// ToTask is total: an unrecognized status defaults to todo and an
// unparseable due date is dropped, so malformed wire data never reaches
// the cache.
func ToTask(item dto.TaskItem) domain.Task {
	status := domain.TaskStatus(item.Status)
	if !status.Valid() {
		status = domain.TaskStatusTodo
	}

	return domain.Task{
		ID:          item.ID,
		ProjectID:   item.ProjectID,
		Title:       item.Title,
		Description: item.Description,
		Status:      status,
		DueDate:     parseDueDate(item.DueDate),
	}
}

func ToTasks(items []dto.TaskItem) []domain.Task {
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, ToTask(item))
	}
	return tasks
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dueDateLayout)
		item.DueDate = &value
	}

	return item
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToCreateTaskRequest(input domain.CreateTaskInput) dto.CreateTaskRequest {
	status := input.Status
	if !status.Valid() {
		status = domain.TaskStatusTodo
	}

	req := dto.CreateTaskRequest{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      string(status),
	}

	if input.DueDate != nil {
		value := input.DueDate.Format(dueDateLayout)
		req.DueDate = &value
	}

	return req
}

// ToUpdateTaskRequest builds the partial-update payload as a map so a
// cleared due date can travel as an explicit null, which a pointer
// field under omitempty cannot express.
func ToUpdateTaskRequest(input domain.UpdateTaskInput) map[string]any {
	payload := map[string]any{}

	if input.Title != nil {
		payload["title"] = *input.Title
	}
	if input.Description != nil {
		payload["description"] = *input.Description
	}
	if input.Status != nil {
		payload["status"] = string(*input.Status)
	}
	if input.DueDateSet || input.DueDate != nil {
		if input.DueDate == nil {
			payload["dueDate"] = nil
		} else {
			payload["dueDate"] = input.DueDate.Format(dueDateLayout)
		}
	}

	return payload
}

func parseDueDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}

	if parsed, err := time.Parse(dueDateLayout, *value); err == nil {
		return &parsed
	}

	// Older records may carry a full timestamp.
	if parsed, err := time.Parse(time.RFC3339, *value); err == nil {
		return &parsed
	}

	return nil
}
