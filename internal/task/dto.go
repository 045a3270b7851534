// AngelaMos | 2026
// dto.go

package task

type CreateTaskRequest struct {
	Name           string `json:"name"           validate:"required,min=1,max=200"`
	ProjectID      string `json:"projectId"      validate:"required"`
	CopilotID      string `json:"copilotId"      validate:"required"`
	Status         string `json:"status"         validate:"required,oneof=pending in_progress completed"`
	DueDate        string `json:"dueDate"        validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours int    `json:"estimatedHours" validate:"gte=0"`
}

type UpdateTaskRequest struct {
	Name           *string `json:"name,omitempty"           validate:"omitempty,min=1,max=200"`
	ProjectID      *string `json:"projectId,omitempty"`
	CopilotID      *string `json:"copilotId,omitempty"`
	Status         *string `json:"status,omitempty"         validate:"omitempty,oneof=pending in_progress completed"`
	DueDate        *string `json:"dueDate,omitempty"        validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *int    `json:"estimatedHours,omitempty" validate:"omitempty,gte=0"`
}
