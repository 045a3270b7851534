// AngelaMos | 2026
// dto.go

package jump

type CreateJumpRequest struct {
	Name               string   `json:"name"               validate:"required,min=1,max=200"`
	Description        string   `json:"description"        validate:"max=2000"`
	Category           string   `json:"category"           validate:"max=100"`
	Type               string   `json:"type"               validate:"max=100"`
	Modules            []string `json:"modules"            validate:"dive,min=1"`
	BasePrice          float64  `json:"basePrice"          validate:"gte=0"`
	CustomizationHours int      `json:"customizationHours" validate:"gte=0"`
	Visibility         string   `json:"visibility"         validate:"required,oneof=admin copilot client all"`
	Status             string   `json:"status"             validate:"required,oneof=active inactive"`
	SuggestedCopilots  []string `json:"suggestedCopilots"`
}

type UpdateJumpRequest struct {
	Name               *string   `json:"name,omitempty"               validate:"omitempty,min=1,max=200"`
	Description        *string   `json:"description,omitempty"        validate:"omitempty,max=2000"`
	Category           *string   `json:"category,omitempty"           validate:"omitempty,max=100"`
	Type               *string   `json:"type,omitempty"               validate:"omitempty,max=100"`
	Modules            []string  `json:"modules,omitempty"            validate:"omitempty,dive,min=1"`
	BasePrice          *float64  `json:"basePrice,omitempty"          validate:"omitempty,gte=0"`
	CustomizationHours *int      `json:"customizationHours,omitempty" validate:"omitempty,gte=0"`
	Visibility         *string   `json:"visibility,omitempty"         validate:"omitempty,oneof=admin copilot client all"`
	Status             *string   `json:"status,omitempty"             validate:"omitempty,oneof=active inactive"`
	SuggestedCopilots  []string  `json:"suggestedCopilots,omitempty"`
}
