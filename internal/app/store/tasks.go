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

// TaskStore caches the tasks of one project at a time. Loading another
// project's tasks replaces the whole cache; it is never a union.
type TaskStore struct {
	client ports.RemoteClient
	cache  *cache[domain.Task]
}

func NewTaskStore(client ports.RemoteClient) *TaskStore {
	return &TaskStore{
		client: client,
		cache: newCache(
			func(t domain.Task) string { return t.ID },
			func(t domain.Task) (string, string) { return t.Title, t.Description },
			func(t domain.Task) string { return string(t.Status) },
		),
	}
}

func (s *TaskStore) Load(ctx context.Context, projectID string) []domain.Task {
	ticket := s.cache.beginLoad()

	query := url.Values{}
	query.Set("projectId", projectID)

	var items []dto.TaskItem
	if err := s.client.Get(ctx, "tasks?"+query.Encode(), &items); err != nil {
		zap.L().Error("failed to load tasks", zap.String("project_id", projectID), zap.Error(err))
		s.cache.applyLoad(ticket, nil)
		return nil
	}

	tasks := mapper.ToTasks(items)
	s.cache.applyLoad(ticket, tasks)
	return tasks
}

func (s *TaskStore) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	var item dto.TaskItem
	if err := s.client.Post(ctx, "tasks", mapper.ToCreateTaskRequest(input), &item); err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		return domain.Task{}, err
	}

	task := mapper.ToTask(item)
	s.cache.append(task)
	return task, nil
}

// Update patches the task and swaps it into the cache in place. When the
// backend's response omits projectId, the previous cached value is
// re-attached: a merge must never null out the scoping key.
func (s *TaskStore) Update(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	prior, hadPrior := s.cache.find(taskID)

	var item dto.TaskItem
	if err := s.client.Patch(ctx, "tasks/"+taskID, mapper.ToUpdateTaskRequest(input), &item); err != nil {
		zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
		return domain.Task{}, err
	}

	task := mapper.ToTask(item)
	if task.ProjectID == "" && hadPrior {
		task.ProjectID = prior.ProjectID
	}

	s.cache.replace(task)
	return task, nil
}

func (s *TaskStore) Delete(ctx context.Context, taskID string) error {
	if err := s.client.Delete(ctx, "tasks/"+taskID); err != nil {
		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		return err
	}

	s.cache.remove(taskID)
	return nil
}

// Clear empties the cache; used when no project is selected.
func (s *TaskStore) Clear() {
	s.cache.clear()
}

func (s *TaskStore) Tasks() []domain.Task {
	return s.cache.snapshot()
}

func (s *TaskStore) Filtered() []domain.Task {
	return s.cache.filtered()
}

func (s *TaskStore) SetFilterText(text string) {
	s.cache.setFilterText(text)
}

// SetStatusFilter accepts a task status or StatusAll.
func (s *TaskStore) SetStatusFilter(status string) {
	s.cache.setStatusFilter(status)
}

func (s *TaskStore) Subscribe(fn func([]domain.Task)) {
	s.cache.subscribe(fn)
}
