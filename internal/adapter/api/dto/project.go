package dto

type ProjectItem struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type CreateProjectRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=65535"`
	Status      string `json:"status" binding:"omitempty,oneof=active on_hold completed"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=65535"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active on_hold completed"`
}
