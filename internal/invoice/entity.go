// AngelaMos | 2026
// entity.go

package invoice

import (
	"github.com/angelamos/copilothub/internal/store"
)

type Invoice struct {
	store.Meta
	ClientID      string  `json:"clientId"`
	ProjectID     string  `json:"projectId"`
	Concept       string  `json:"concept"`
	Amount        float64 `json:"amount"`
	IssueDate     string  `json:"issueDate"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
}

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)
