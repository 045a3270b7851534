// AngelaMos | 2026
// entity.go

package task

import (
	"github.com/angelamos/copilothub/internal/store"
)

type Task struct {
	store.Meta
	Name           string `json:"name"`
	ProjectID      string `json:"projectId"`
	CopilotID      string `json:"copilotId"`
	Status         string `json:"status"`
	DueDate        string `json:"dueDate,omitempty"`
	EstimatedHours int    `json:"estimatedHours"`
}

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)
