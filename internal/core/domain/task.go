package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task is scoped to exactly one project; ProjectID is immutable after
// creation and must survive partial updates even when the backend omits
// it in a PATCH response.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
}

type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
}

// UpdateTaskInput is a partial update. DueDateSet distinguishes "leave
// the due date alone" from "clear it": DueDateSet with a nil DueDate
// removes the date. No ProjectID field exists; scoping is immutable.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	DueDate     *time.Time
	DueDateSet  bool
}
