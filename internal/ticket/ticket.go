// AngelaMos | 2026
// ticket.go

package ticket

import (
	"context"

	"github.com/angelamos/copilothub/internal/store"
)

// Ticket is a support request raised by any user.
type Ticket struct {
	store.Meta
	UserID      string `json:"userId"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

type CreateTicketRequest struct {
	UserID      string `json:"userId"      validate:"required"`
	Subject     string `json:"subject"     validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high"`
}

type UpdateTicketRequest struct {
	Subject     *string `json:"subject,omitempty"     validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Status      *string `json:"status,omitempty"      validate:"omitempty,oneof=open in_progress closed"`
	Priority    *string `json:"priority,omitempty"    validate:"omitempty,oneof=low medium high"`
}

type Service struct {
	tickets *store.Collection[Ticket, *Ticket]
}

func NewService(tickets *store.Collection[Ticket, *Ticket]) *Service {
	return &Service{tickets: tickets}
}

func (s *Service) GetTicket(ctx context.Context, id string) (*Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *Service) ListTickets(ctx context.Context) ([]Ticket, error) {
	return s.tickets.List(ctx)
}

func (s *Service) ByUser(ctx context.Context, userID string) ([]Ticket, error) {
	return s.tickets.Filter(ctx, func(t Ticket) bool {
		return t.UserID == userID
	})
}

func (s *Service) CreateTicket(ctx context.Context, req CreateTicketRequest) (*Ticket, error) {
	return s.tickets.Create(ctx, Ticket{
		UserID:      req.UserID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      StatusOpen,
		Priority:    req.Priority,
	})
}

func (s *Service) UpdateTicket(
	ctx context.Context,
	id string,
	req UpdateTicketRequest,
) (*Ticket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Subject != nil {
		t.Subject = *req.Subject
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}

	return s.tickets.Update(ctx, *t)
}

func (s *Service) DeleteTicket(ctx context.Context, id string) error {
	if _, err := s.tickets.GetByID(ctx, id); err != nil {
		return err
	}

	return s.tickets.Delete(ctx, id)
}
