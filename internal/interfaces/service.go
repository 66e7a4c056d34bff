package interfaces

import (
	"context"

	"github.com/invoicesystem/invoicesystem/internal/api/dto"
	"github.com/invoicesystem/invoicesystem/internal/types"
)

// CustomerService defines the interface for customer operations
type CustomerService interface {
	GetCustomer(ctx context.Context, id int) (*dto.CustomerResponse, error)
	GetCustomers(ctx context.Context) (*dto.ListCustomersResponse, error)
}

// InvoiceService defines the interface for invoice operations
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error)

	// Item mutations address items by position. Out-of-range indices leave
	// the invoice unchanged and still return it.
	AddInvoiceItem(ctx context.Context, id string, req dto.CreateInvoiceItemRequest) (*dto.InvoiceResponse, error)
	UpdateInvoiceItem(ctx context.Context, id string, index int, req dto.UpdateInvoiceItemRequest) (*dto.InvoiceResponse, error)
	RemoveInvoiceItem(ctx context.Context, id string, index int) (*dto.InvoiceResponse, error)

	CalculateInvoice(ctx context.Context, req dto.CalculateInvoiceRequest) (*dto.InvoiceCalculationResponse, error)
	ValidateLineItem(ctx context.Context, req dto.ValidateLineItemRequest) (*dto.LineItemValidationResponse, error)

	GetInvoicePDF(ctx context.Context, id string) ([]byte, error)
}
