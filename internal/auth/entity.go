// AngelaMos | 2026
// entity.go

package auth

import (
	"time"

	"github.com/angelamos/copilothub/internal/store"
)

// RefreshToken lives in the refresh_tokens collection. Only the hash of the
// opaque token is stored; the raw value is returned to the client once.
type RefreshToken struct {
	store.Meta
	UserID       string     `json:"userId"`
	TokenHash    string     `json:"tokenHash"`
	FamilyID     string     `json:"familyId"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	IsUsed       bool       `json:"isUsed"`
	UsedAt       *time.Time `json:"usedAt,omitempty"`
	RevokedAt    *time.Time `json:"revokedAt,omitempty"`
	ReplacedByID *string    `json:"replacedById,omitempty"`
	UserAgent    string     `json:"userAgent,omitempty"`
	IPAddress    string     `json:"ipAddress,omitempty"`
}

func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

func (t *RefreshToken) IsValid() bool {
	return !t.IsExpired() && !t.IsRevoked() && !t.IsUsed
}

func (t *RefreshToken) MarkAsUsed(replacedByID string) {
	now := time.Now()
	t.IsUsed = true
	t.UsedAt = &now
	t.ReplacedByID = &replacedByID
}

func (t *RefreshToken) Revoke() {
	now := time.Now()
	t.RevokedAt = &now
}
