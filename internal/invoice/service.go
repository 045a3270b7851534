// AngelaMos | 2026
// service.go

package invoice

import (
	"context"

	"github.com/angelamos/copilothub/internal/store"
)

type Service struct {
	invoices *store.Collection[Invoice, *Invoice]
}

func NewService(invoices *store.Collection[Invoice, *Invoice]) *Service {
	return &Service{invoices: invoices}
}

func (s *Service) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *Service) ListInvoices(ctx context.Context) ([]Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *Service) ByClient(ctx context.Context, clientID string) ([]Invoice, error) {
	return s.invoices.Filter(ctx, func(i Invoice) bool {
		return i.ClientID == clientID
	})
}

func (s *Service) ByProject(ctx context.Context, projectID string) ([]Invoice, error) {
	return s.invoices.Filter(ctx, func(i Invoice) bool {
		return i.ProjectID == projectID
	})
}

func (s *Service) CreateInvoice(
	ctx context.Context,
	req CreateInvoiceRequest,
) (*Invoice, error) {
	return s.invoices.Create(ctx, Invoice{
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		Concept:       req.Concept,
		Amount:        req.Amount,
		IssueDate:     req.IssueDate,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
	})
}

func (s *Service) UpdateInvoice(
	ctx context.Context,
	id string,
	req UpdateInvoiceRequest,
) (*Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Concept != nil {
		inv.Concept = *req.Concept
	}
	if req.Amount != nil {
		inv.Amount = *req.Amount
	}
	if req.IssueDate != nil {
		inv.IssueDate = *req.IssueDate
	}
	if req.Status != nil {
		inv.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		inv.PaymentMethod = *req.PaymentMethod
	}

	return s.invoices.Update(ctx, *inv)
}

func (s *Service) DeleteInvoice(ctx context.Context, id string) error {
	if _, err := s.invoices.GetByID(ctx, id); err != nil {
		return err
	}

	return s.invoices.Delete(ctx, id)
}
