// AngelaMos | 2026
// dto.go

package message

type CreateMessageRequest struct {
	SenderID   string `json:"senderId"   validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content"    validate:"required,min=1,max=5000"`
	Type       string `json:"type"       validate:"required,oneof=text file system"`
	ProjectID  string `json:"projectId"  validate:"omitempty"`
}
