package dto

type TaskItem struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate,omitempty"`
}

type CreateTaskRequest struct {
	ProjectID   string  `json:"projectId" binding:"required"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=65535"`
	Status      string  `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *string `json:"dueDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=65535"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *string `json:"dueDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
