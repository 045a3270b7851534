// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelamos/copilothub/internal/auth"
	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/project"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/task"
)

// Projects and tasks hold user references; user deletion is refused while any
// remain.
const referencePolicy = store.RejectOnReference

// SessionNotifier is told about user mutations so the current-session pointer
// can be refreshed or cleared. The store itself never touches session state.
type SessionNotifier interface {
	UserUpdated(ctx context.Context, u *User) error
	UserDeleted(ctx context.Context, id string) error
}

type AuditLog interface {
	Record(ctx context.Context, userID, action, description string) error
}

type Service struct {
	users    *store.Collection[User, *User]
	projects *store.Collection[project.Project, *project.Project]
	tasks    *store.Collection[task.Task, *task.Task]
	session  SessionNotifier
	audit    AuditLog
}

func NewService(
	users *store.Collection[User, *User],
	projects *store.Collection[project.Project, *project.Project],
	tasks *store.Collection[task.Task, *task.Task],
	session SessionNotifier,
	audit AuditLog,
) *Service {
	return &Service{
		users:    users,
		projects: projects,
		tasks:    tasks,
		session:  session,
		audit:    audit,
	}
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.users.List(ctx)
}

func (s *Service) ByRole(ctx context.Context, role string) ([]User, error) {
	if !ValidRole(role) {
		return nil, fmt.Errorf("list by role: invalid role %q: %w", role, core.ErrInvalidInput)
	}

	return s.users.Filter(ctx, func(u User) bool {
		return u.Role == role
	})
}

// AdminCreate registers a user on behalf of an administrator.
func (s *Service) AdminCreate(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.create(ctx, NewUser{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         req.Role,
		Phone:        req.Phone,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, u.ID, "user_created", "user "+u.Email+" created")
	return u, nil
}

type NewUser struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Phone        string
}

func (s *Service) create(ctx context.Context, n NewUser) (*User, error) {
	if !ValidRole(n.Role) {
		return nil, fmt.Errorf("create user: invalid role %q: %w", n.Role, core.ErrValidation)
	}

	email := strings.ToLower(n.Email)

	taken, err := s.users.Any(ctx, func(u User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("create user: email %s already registered: %w", email, core.ErrDuplicateKey)
	}

	u := User{
		Email:        email,
		PasswordHash: n.PasswordHash,
		Name:         n.Name,
		Role:         n.Role,
		Phone:        n.Phone,
	}

	switch n.Role {
	case RoleCopilot:
		u.Copilot = &CopilotProfile{}
	case RoleClient:
		u.Client = &ClientProfile{}
	}

	return s.users.Create(ctx, u)
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.APIKey != nil {
		u.APIKey = *req.APIKey
	}
	if req.Copilot != nil && u.Role == RoleCopilot {
		u.Copilot = req.Copilot
	}
	if req.Client != nil && u.Role == RoleClient {
		u.Client = req.Client
	}

	updated, err := s.users.Update(ctx, *u)
	if err != nil {
		return nil, err
	}

	if s.session != nil {
		if err := s.session.UserUpdated(ctx, updated); err != nil {
			return nil, fmt.Errorf("refresh session: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser refuses deletion while any project or task references the user.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}

	inProject, err := s.projects.Any(ctx, func(p project.Project) bool {
		return p.ClientID == id || p.CopilotID == id
	})
	if err != nil {
		return err
	}
	if inProject {
		return fmt.Errorf("delete user %s: still referenced by a project: %w", id, core.ErrConflict)
	}

	inTask, err := s.tasks.Any(ctx, func(t task.Task) bool {
		return t.CopilotID == id
	})
	if err != nil {
		return err
	}
	if inTask {
		return fmt.Errorf("delete user %s: still referenced by a task: %w", id, core.ErrConflict)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	if s.session != nil {
		if err := s.session.UserDeleted(ctx, id); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}

	s.recordActivity(ctx, id, "user_deleted", "user deleted")
	return nil
}

// CanDeleteUser gates admin deletion: self-deletion is always allowed,
// deleting other admins is not.
func (s *Service) CanDeleteUser(
	ctx context.Context,
	requesterID, targetID string,
) error {
	if requesterID == targetID {
		return nil
	}

	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}

	if !requester.IsAdmin() {
		return fmt.Errorf("delete user: %w", core.ErrForbidden)
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.IsAdmin() {
		return fmt.Errorf("cannot delete admin users: %w", core.ErrForbidden)
	}

	return nil
}

func (s *Service) recordActivity(ctx context.Context, userID, action, description string) {
	if s.audit == nil {
		return
	}
	//nolint:errcheck // audit trail is best-effort
	_ = s.audit.Record(ctx, userID, action, description)
}

// RoleOf resolves a user ID to its role for cross-entity validation.
func (s *Service) RoleOf(ctx context.Context, id string) (string, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.users.Any(ctx, func(u User) bool {
		return u.ID == id
	})
}

// ---- auth.UserProvider ----

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	lowered := strings.ToLower(email)

	matches, err := s.users.Filter(ctx, func(u User) bool {
		return strings.EqualFold(u.Email, lowered)
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}

	return toUserInfo(&matches[0]), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*auth.UserInfo, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(u), nil
}

func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, name, role string,
) (*auth.UserInfo, error) {
	u, err := s.create(ctx, NewUser{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	return toUserInfo(u), nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

var _ auth.UserProvider = (*Service)(nil)
