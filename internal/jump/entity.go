// AngelaMos | 2026
// entity.go

package jump

import (
	"github.com/angelamos/copilothub/internal/store"
)

// Jump is a preconfigured solution template in the catalog. Projects may be
// derived from one, in which case the jump cannot be deleted while any
// project still references it.
type Jump struct {
	store.Meta
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Type               string   `json:"type"`
	Modules            []string `json:"modules"`
	BasePrice          float64  `json:"basePrice"`
	CustomizationHours int      `json:"customizationHours"`
	Visibility         string   `json:"visibility"`
	Status             string   `json:"status"`
	SuggestedCopilots  []string `json:"suggestedCopilots"`
}

const (
	VisibilityAdmin   = "admin"
	VisibilityCopilot = "copilot"
	VisibilityClient  = "client"
	VisibilityAll     = "all"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// VisibleTo reports whether the jump may be listed for the given role.
// Admins see the whole catalog.
func (j *Jump) VisibleTo(role string) bool {
	if role == "admin" {
		return true
	}
	return j.Visibility == VisibilityAll || j.Visibility == role
}
