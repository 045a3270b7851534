// AngelaMos | 2026
// entity.go

package project

import (
	"github.com/angelamos/copilothub/internal/store"
)

type Project struct {
	store.Meta
	Name             string  `json:"name"`
	ClientID         string  `json:"clientId"`
	CopilotID        string  `json:"copilotId"`
	Status           string  `json:"status"`
	StartDate        string  `json:"startDate,omitempty"`
	EstimatedEndDate string  `json:"estimatedEndDate,omitempty"`
	TotalPrice       float64 `json:"totalPrice"`
	EstimatedHours   int     `json:"estimatedHours"`
	OriginType       string  `json:"originType"`
	JumpID           string  `json:"jumpId,omitempty"`
}

const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const (
	OriginJump   = "jump"
	OriginCustom = "custom"
)

func (p *Project) FromJump() bool {
	return p.OriginType == OriginJump
}
