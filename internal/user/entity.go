// AngelaMos | 2026
// entity.go

package user

import (
	"github.com/angelamos/copilothub/internal/store"
)

// User is the shared base; role-specific data lives in the tagged profile
// variants so a client record cannot carry copilot fields and vice versa.
type User struct {
	store.Meta
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"passwordHash"`
	Role         string          `json:"role"`
	Phone        string          `json:"phone,omitempty"`
	APIKey       string          `json:"apiKey,omitempty"`
	Copilot      *CopilotProfile `json:"copilot,omitempty"`
	Client       *ClientProfile  `json:"client,omitempty"`
}

type CopilotProfile struct {
	Bio               string   `json:"bio,omitempty"`
	Specialties       []string `json:"specialties,omitempty"`
	Portfolio         string   `json:"portfolio,omitempty"`
	Rating            float64  `json:"rating,omitempty"`
	ProjectsCompleted int      `json:"projectsCompleted,omitempty"`
}

type ClientProfile struct {
	Company string `json:"company,omitempty"`
	Sector  string `json:"sector,omitempty"`
}

const (
	RoleAdmin   = "admin"
	RoleCopilot = "copilot"
	RoleClient  = "client"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCopilot || role == RoleClient
}
