// AngelaMos | 2026
// session.go

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/angelamos/copilothub/internal/auth"
	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/user"
)

// Snapshot is the persisted "current session user": a trimmed copy of the
// signed-in user. The key holds null while logged out.
type Snapshot struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	SignedIn time.Time `json:"signedIn"`
}

// Manager owns the single session key. The user service notifies it after
// mutations so the snapshot never goes stale, and deletion of the signed-in
// user signs the session out.
type Manager struct {
	kv  store.KV
	key string
	mu  sync.Mutex

	now func() time.Time
}

func NewManager(kv store.KV, namespace string) *Manager {
	return &Manager{
		kv:  kv,
		key: namespace + ":session",
		now: time.Now,
	}
}

var (
	_ user.SessionNotifier = (*Manager)(nil)
	_ auth.SessionRecorder = (*Manager)(nil)
)

// Current returns the signed-in snapshot, or nil when logged out.
func (m *Manager) Current(ctx context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.load(ctx)
}

func (m *Manager) load(ctx context.Context) (*Snapshot, error) {
	raw, err := m.kv.Get(ctx, m.key)
	if err != nil {
		return nil, fmt.Errorf("load session: %w: %w", core.ErrPersistence, err)
	}

	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w: %w", core.ErrPersistence, err)
	}

	return &s, nil
}

func (m *Manager) persist(ctx context.Context, s *Snapshot) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w: %w", core.ErrPersistence, err)
	}

	if err := m.kv.Set(ctx, m.key, raw); err != nil {
		return fmt.Errorf("persist session: %w: %w", core.ErrPersistence, err)
	}

	return nil
}

// SignedIn stores the user as the current session.
func (m *Manager) SignedIn(
	ctx context.Context,
	userID, name, email, role string,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.persist(ctx, &Snapshot{
		UserID:   userID,
		Name:     name,
		Email:    email,
		Role:     role,
		SignedIn: m.now().UTC(),
	})
}

// SignOut clears the session back to null.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.persist(ctx, nil)
}

// UserUpdated refreshes the snapshot when the mutated user is the one
// signed in; other users' updates are ignored.
func (m *Manager) UserUpdated(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.load(ctx)
	if err != nil {
		return err
	}
	if current == nil || current.UserID != u.ID {
		return nil
	}

	current.Name = u.Name
	current.Email = u.Email
	current.Role = u.Role
	return m.persist(ctx, current)
}

// UserDeleted signs the session out when the deleted user was signed in.
func (m *Manager) UserDeleted(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.load(ctx)
	if err != nil {
		return err
	}
	if current == nil || current.UserID != id {
		return nil
	}

	return m.persist(ctx, nil)
}
