// AngelaMos | 2026
// entity.go

package message

import (
	"github.com/angelamos/copilothub/internal/store"
)

type Message struct {
	store.Meta
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Type       string `json:"type"`
	ProjectID  string `json:"projectId,omitempty"`
	Read       bool   `json:"read"`
}

const (
	TypeText   = "text"
	TypeFile   = "file"
	TypeSystem = "system"
)

// Between reports whether the message was exchanged between the two users,
// in either direction.
func (m *Message) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) ||
		(m.SenderID == b && m.ReceiverID == a)
}
