// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Role     string `json:"role"     validate:"required,oneof=admin copilot client"`
	Phone    string `json:"phone"    validate:"omitempty,max=32"`
}

type UpdateUserRequest struct {
	Name    *string         `json:"name,omitempty"    validate:"omitempty,min=1,max=100"`
	Phone   *string         `json:"phone,omitempty"   validate:"omitempty,max=32"`
	APIKey  *string         `json:"apiKey,omitempty"  validate:"omitempty,max=255"`
	Copilot *CopilotProfile `json:"copilot,omitempty"`
	Client  *ClientProfile  `json:"client,omitempty"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Phone     string          `json:"phone,omitempty"`
	Copilot   *CopilotProfile `json:"copilot,omitempty"`
	Client    *ClientProfile  `json:"client,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Phone:     u.Phone,
		Copilot:   u.Copilot,
		Client:    u.Client,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
