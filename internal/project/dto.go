// AngelaMos | 2026
// dto.go

package project

type CreateProjectRequest struct {
	Name             string  `json:"name"             validate:"required,min=1,max=200"`
	ClientID         string  `json:"clientId"         validate:"required"`
	CopilotID        string  `json:"copilotId"        validate:"required"`
	Status           string  `json:"status"           validate:"required,oneof=planned in_progress completed"`
	StartDate        string  `json:"startDate"        validate:"omitempty,datetime=2006-01-02"`
	EstimatedEndDate string  `json:"estimatedEndDate" validate:"omitempty,datetime=2006-01-02"`
	TotalPrice       float64 `json:"totalPrice"       validate:"gte=0"`
	EstimatedHours   int     `json:"estimatedHours"   validate:"gte=0"`
	OriginType       string  `json:"originType"       validate:"required,oneof=jump custom"`
	JumpID           string  `json:"jumpId"           validate:"omitempty"`
}

type UpdateProjectRequest struct {
	Name             *string  `json:"name,omitempty"             validate:"omitempty,min=1,max=200"`
	ClientID         *string  `json:"clientId,omitempty"`
	CopilotID        *string  `json:"copilotId,omitempty"`
	Status           *string  `json:"status,omitempty"           validate:"omitempty,oneof=planned in_progress completed"`
	StartDate        *string  `json:"startDate,omitempty"        validate:"omitempty,datetime=2006-01-02"`
	EstimatedEndDate *string  `json:"estimatedEndDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalPrice       *float64 `json:"totalPrice,omitempty"       validate:"omitempty,gte=0"`
	EstimatedHours   *int     `json:"estimatedHours,omitempty"   validate:"omitempty,gte=0"`
	OriginType       *string  `json:"originType,omitempty"       validate:"omitempty,oneof=jump custom"`
	JumpID           *string  `json:"jumpId,omitempty"`
}
