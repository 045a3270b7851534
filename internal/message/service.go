// AngelaMos | 2026
// service.go

package message

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type ProjectDirectory interface {
	Participants(
		ctx context.Context,
		projectID string,
	) (clientID, copilotID string, err error)
}

type Service struct {
	messages *store.Collection[Message, *Message]
	users    UserDirectory
	projects ProjectDirectory
}

func NewService(
	messages *store.Collection[Message, *Message],
	users UserDirectory,
	projects ProjectDirectory,
) *Service {
	return &Service{
		messages: messages,
		users:    users,
		projects: projects,
	}
}

func (s *Service) GetMessage(ctx context.Context, id string) (*Message, error) {
	return s.messages.GetByID(ctx, id)
}

func (s *Service) ListMessages(ctx context.Context) ([]Message, error) {
	return s.messages.List(ctx)
}

func (s *Service) ByProject(ctx context.Context, projectID string) ([]Message, error) {
	return s.messages.Filter(ctx, func(m Message) bool {
		return m.ProjectID == projectID
	})
}

// ConversationBetween returns the messages exchanged between two users, in
// either direction, sorted ascending by creation time. Ties break on ID so
// repeated calls return the same order.
func (s *Service) ConversationBetween(
	ctx context.Context,
	userA, userB string,
) ([]Message, error) {
	msgs, err := s.messages.Filter(ctx, func(m Message) bool {
		return m.Between(userA, userB)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		if !msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
		}
		return msgs[i].ID < msgs[j].ID
	})

	return msgs, nil
}

func (s *Service) CreateMessage(
	ctx context.Context,
	req CreateMessageRequest,
) (*Message, error) {
	m := Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Type:       req.Type,
		ProjectID:  req.ProjectID,
	}

	if err := s.validateReferences(ctx, &m); err != nil {
		return nil, err
	}

	return s.messages.Create(ctx, m)
}

// MarkRead flags a message as read by its receiver.
func (s *Service) MarkRead(ctx context.Context, id string) (*Message, error) {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Read = true
	return s.messages.Update(ctx, *m)
}

func (s *Service) DeleteMessage(ctx context.Context, id string) error {
	if _, err := s.messages.GetByID(ctx, id); err != nil {
		return err
	}

	return s.messages.Delete(ctx, id)
}

// validateReferences requires both endpoints to be existing users and, for
// project-scoped messages, both to be participants of that project.
func (s *Service) validateReferences(ctx context.Context, m *Message) error {
	for _, id := range []string{m.SenderID, m.ReceiverID} {
		exists, err := s.users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("message endpoint %q does not resolve to a user: %w", id, core.ErrValidation)
		}
	}

	if m.ProjectID == "" {
		return nil
	}

	clientID, copilotID, err := s.projects.Participants(ctx, m.ProjectID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("projectId %q does not resolve to a project: %w", m.ProjectID, core.ErrValidation)
		}
		return err
	}

	for _, id := range []string{m.SenderID, m.ReceiverID} {
		if id != clientID && id != copilotID {
			return fmt.Errorf(
				"user %q is not a participant of project %q: %w",
				id, m.ProjectID, core.ErrValidation,
			)
		}
	}

	return nil
}
