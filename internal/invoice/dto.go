// AngelaMos | 2026
// dto.go

package invoice

type CreateInvoiceRequest struct {
	ClientID      string  `json:"clientId"      validate:"required"`
	ProjectID     string  `json:"projectId"     validate:"required"`
	Concept       string  `json:"concept"       validate:"required,min=1,max=500"`
	Amount        float64 `json:"amount"        validate:"gte=0"`
	IssueDate     string  `json:"issueDate"     validate:"required,datetime=2006-01-02"`
	Status        string  `json:"status"        validate:"required,oneof=pending paid overdue"`
	PaymentMethod string  `json:"paymentMethod" validate:"max=100"`
}

type UpdateInvoiceRequest struct {
	Concept       *string  `json:"concept,omitempty"       validate:"omitempty,min=1,max=500"`
	Amount        *float64 `json:"amount,omitempty"        validate:"omitempty,gte=0"`
	IssueDate     *string  `json:"issueDate,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	Status        *string  `json:"status,omitempty"        validate:"omitempty,oneof=pending paid overdue"`
	PaymentMethod *string  `json:"paymentMethod,omitempty" validate:"omitempty,max=100"`
}
