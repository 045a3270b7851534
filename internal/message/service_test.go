// AngelaMos | 2026
// service_test.go

package message

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

type stubUsers struct {
	ids map[string]bool
}

func (s stubUsers) Exists(_ context.Context, id string) (bool, error) {
	return s.ids[id], nil
}

type stubProjects struct {
	participants map[string][2]string
}

func (s stubProjects) Participants(
	_ context.Context,
	projectID string,
) (string, string, error) {
	p, ok := s.participants[projectID]
	if !ok {
		return "", "", fmt.Errorf("project %q: %w", projectID, core.ErrNotFound)
	}
	return p[0], p[1], nil
}

type fixture struct {
	svc      *Service
	messages *store.Collection[Message, *Message]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	messages := store.NewCollection[Message](store.NewMemoryKV(), "test", store.CollectionMessages)

	users := stubUsers{ids: map[string]bool{
		"client-1":  true,
		"copilot-1": true,
		"admin-1":   true,
	}}
	projects := stubProjects{participants: map[string][2]string{
		"project-1": {"client-1", "copilot-1"},
	}}

	return &fixture{
		svc:      NewService(messages, users, projects),
		messages: messages,
	}
}

func (f *fixture) send(t *testing.T, sender, receiver, content string) *Message {
	t.Helper()

	m, err := f.svc.CreateMessage(context.Background(), CreateMessageRequest{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		Type:       TypeText,
	})
	require.NoError(t, err)
	return m
}

func TestCreateMessage(t *testing.T) {
	f := newFixture(t)

	m := f.send(t, "client-1", "copilot-1", "hello")
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.Read)
}

func TestCreateMessageRejectsUnknownEndpoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, req := range []CreateMessageRequest{
		{SenderID: "ghost", ReceiverID: "copilot-1", Content: "hi", Type: TypeText},
		{SenderID: "client-1", ReceiverID: "ghost", Content: "hi", Type: TypeText},
	} {
		_, err := f.svc.CreateMessage(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrValidation)
	}

	count, err := f.messages.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateMessageRequiresProjectParticipants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// admin-1 exists but is not a participant of project-1
	_, err := f.svc.CreateMessage(ctx, CreateMessageRequest{
		SenderID:   "admin-1",
		ReceiverID: "copilot-1",
		Content:    "status?",
		Type:       TypeText,
		ProjectID:  "project-1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = f.svc.CreateMessage(ctx, CreateMessageRequest{
		SenderID:   "client-1",
		ReceiverID: "copilot-1",
		Content:    "status?",
		Type:       TypeText,
		ProjectID:  "ghost-project",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValidation)

	count, err := f.messages.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// both endpoints are participants
	m, err := f.svc.CreateMessage(ctx, CreateMessageRequest{
		SenderID:   "copilot-1",
		ReceiverID: "client-1",
		Content:    "shipped",
		Type:       TypeText,
		ProjectID:  "project-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "project-1", m.ProjectID)
}

func TestConversationBetween(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.send(t, "client-1", "copilot-1", "ping")
	second := f.send(t, "copilot-1", "client-1", "pong")
	f.send(t, "client-1", "admin-1", "unrelated")

	conv, err := f.svc.ConversationBetween(ctx, "client-1", "copilot-1")
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, first.ID, conv[0].ID)
	assert.Equal(t, second.ID, conv[1].ID)

	// direction of the arguments does not matter
	reversed, err := f.svc.ConversationBetween(ctx, "copilot-1", "client-1")
	require.NoError(t, err)
	assert.Equal(t, conv, reversed)

	// repeated calls return the same order
	again, err := f.svc.ConversationBetween(ctx, "client-1", "copilot-1")
	require.NoError(t, err)
	assert.Equal(t, conv, again)
}

func TestMarkRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := f.send(t, "client-1", "copilot-1", "read me")

	updated, err := f.svc.MarkRead(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)

	got, err := f.svc.GetMessage(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	_, err = f.svc.MarkRead(ctx, "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := f.send(t, "client-1", "copilot-1", "temporary")

	require.NoError(t, f.svc.DeleteMessage(ctx, m.ID))

	_, err := f.svc.GetMessage(ctx, m.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = f.svc.DeleteMessage(ctx, m.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
