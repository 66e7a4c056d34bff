package service

import (
	"context"
	"fmt"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/api/dto"
	"github.com/invoicesystem/invoicesystem/internal/domain/customer"
	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	domainPdf "github.com/invoicesystem/invoicesystem/internal/domain/pdf"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/invoicesystem/invoicesystem/internal/interfaces"
	"github.com/invoicesystem/invoicesystem/internal/sentry"
	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InvoiceService = interfaces.InvoiceService

type invoiceService struct {
	ServiceParams
	customers *customerService
	now       func() time.Time
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		customers:     &customerService{ServiceParams: params},
		now:           time.Now,
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv := req.ToInvoice()
	if req.Currency == "" && s.Config.Invoice.DefaultCurrency != "" {
		inv.Currency = s.Config.Invoice.DefaultCurrency
	}

	if errs := inv.Validate(); len(errs) > 0 {
		return nil, invalidInvoiceError(errs)
	}

	cust, err := s.resolveCustomer(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	if inv.ID == "" {
		inv.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)
	}
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM)
		}
	}

	now := s.now().UTC()
	if inv.CreatedAt == nil {
		inv.CreatedAt = &now
	}
	inv.UpdatedAt = &now

	span, spanCtx := s.Sentry.StartRepositorySpan(ctx, "invoice.create", map[string]interface{}{"invoice_id": inv.ID})
	err = s.InvoiceRepo.Create(spanCtx, inv, s.numberPrefix())
	sentry.FinishSpan(span, err)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created invoice",
		"invoice_id", inv.ID,
		"number", inv.Number,
		"customer_id", inv.CustomerID,
		"items", len(inv.Items),
		"total", inv.CalculateTotal().String(),
	)

	return dto.NewInvoiceResponse(inv, cust), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.getInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv, s.lookupCustomer(ctx, inv.CustomerID)), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = &types.InvoiceFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	query := filter.NormalizedQuery()
	summaries := make([]*dto.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		name, ok := names[inv.CustomerID]
		if !ok {
			if cust := s.lookupCustomer(ctx, inv.CustomerID); cust != nil {
				name = cust.Name
			}
			names[inv.CustomerID] = name
		}

		summary := dto.NewInvoiceSummary(inv, name)
		if summary.Matches(query) {
			summaries = append(summaries, summary)
		}
	}

	resp := types.NewPageResponse(summaries, filter.GetPage(), filter.GetPageSize(s.defaultPageSize()))
	return &resp, nil
}

func (s *invoiceService) AddInvoiceItem(ctx context.Context, id string, req dto.CreateInvoiceItemRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, "add_item", func(inv *invoice.Invoice) {
		inv.AddItem(req.ToInvoiceItem())
	})
}

func (s *invoiceService) UpdateInvoiceItem(ctx context.Context, id string, index int, req dto.UpdateInvoiceItemRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, "update_item", func(inv *invoice.Invoice) {
		inv.UpdateItem(index, req.ToPatch())
	})
}

func (s *invoiceService) RemoveInvoiceItem(ctx context.Context, id string, index int) (*dto.InvoiceResponse, error) {
	return s.mutate(ctx, id, "remove_item", func(inv *invoice.Invoice) {
		inv.RemoveItem(index)
	})
}

func (s *invoiceService) CalculateInvoice(ctx context.Context, req dto.CalculateInvoiceRequest) (*dto.InvoiceCalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv := invoice.New(&req.DTO)
	if req.Currency == "" && s.Config.Invoice.DefaultCurrency != "" {
		inv.Currency = s.Config.Invoice.DefaultCurrency
	}

	return dto.NewInvoiceCalculationResponse(inv), nil
}

func (s *invoiceService) ValidateLineItem(ctx context.Context, req dto.ValidateLineItemRequest) (*dto.LineItemValidationResponse, error) {
	return dto.NewLineItemValidationResponse(req.ToItem()), nil
}

func (s *invoiceService) GetInvoicePDF(ctx context.Context, id string) ([]byte, error) {
	inv, err := s.getInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	data := s.toPdfData(inv, s.lookupCustomer(ctx, inv.CustomerID))

	span, spanCtx := s.Sentry.StartRenderSpan(ctx, "invoice.pdf", map[string]interface{}{"invoice_id": id})
	out, err := s.PDFGenerator.RenderInvoicePdf(spanCtx, data)
	sentry.FinishSpan(span, err)
	if err != nil {
		s.Logger.Errorw("failed to render invoice pdf", "invoice_id", id, "error", err)
		return nil, err
	}

	return out, nil
}

// mutate applies fn to the stored invoice as one repository step, so
// concurrent edits of the same invoice are never lost. fn leaves the invoice
// untouched for out-of-range indices; it is stored regardless.
func (s *invoiceService) mutate(ctx context.Context, id, op string, fn func(inv *invoice.Invoice)) (*dto.InvoiceResponse, error) {
	var before int

	span, spanCtx := s.Sentry.StartRepositorySpan(ctx, "invoice.mutate", map[string]interface{}{"invoice_id": id, "op": op})
	inv, err := s.InvoiceRepo.Mutate(spanCtx, id, func(inv *invoice.Invoice) error {
		before = len(inv.Items)
		fn(inv)
		return nil
	})
	sentry.FinishSpan(span, err)
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("mutated invoice items",
		"invoice_id", id,
		"op", op,
		"items_before", before,
		"items_after", len(inv.Items),
	)

	return dto.NewInvoiceResponse(inv, s.lookupCustomer(ctx, inv.CustomerID)), nil
}

func (s *invoiceService) getInvoice(ctx context.Context, id string) (*invoice.Invoice, error) {
	span, spanCtx := s.Sentry.StartRepositorySpan(ctx, "invoice.get", map[string]interface{}{"invoice_id": id})
	inv, err := s.InvoiceRepo.Get(spanCtx, id)
	sentry.FinishSpan(span, err)
	return inv, err
}

// resolveCustomer requires ref to name a known customer
func (s *invoiceService) resolveCustomer(ctx context.Context, ref string) (*customer.Customer, error) {
	id, ok := customer.ParseID(ref)
	if !ok {
		return nil, invalidInvoiceError([]string{fmt.Sprintf("Customer %q is not a valid customer id.", ref)})
	}

	cust, err := s.customers.getCustomer(ctx, id)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, invalidInvoiceError([]string{fmt.Sprintf("Customer %d does not exist.", id)})
		}
		return nil, err
	}
	return cust, nil
}

// lookupCustomer is the lenient variant used for display; it returns nil for
// unknown customers
func (s *invoiceService) lookupCustomer(ctx context.Context, ref string) *customer.Customer {
	id, ok := customer.ParseID(ref)
	if !ok {
		return nil
	}
	cust, err := s.customers.getCustomer(ctx, id)
	if err != nil {
		return nil
	}
	return cust
}

func (s *invoiceService) toPdfData(inv *invoice.Invoice, cust *customer.Customer) *domainPdf.InvoiceData {
	data := &domainPdf.InvoiceData{
		ID:            inv.ID,
		InvoiceNumber: inv.Number,
		InvoiceStatus: inv.Status.String(),
		Currency:      inv.Currency,
		Notes:         inv.Notes,
		Subtotal:      inv.CalculateSubtotal().StringFixed(2),
		TaxTotal:      inv.CalculateTaxTotal().StringFixed(2),
		Total:         inv.CalculateTotal().StringFixed(2),
		LineItems: lo.Map(inv.Items, func(item invoice.InvoiceItem, _ int) domainPdf.LineItemData {
			return domainPdf.LineItemData{
				Description: item.Description,
				Quantity:    item.Quantity.String(),
				UnitPrice:   item.UnitPrice.StringFixed(2),
				Discount:    item.Discount.StringFixed(2),
				TaxRate:     item.TaxRate.Mul(decimal.NewFromInt(100)).String() + "%",
				Total:       item.Total().StringFixed(2),
			}
		}),
	}
	if inv.IssueDate != nil {
		data.IssuingDate = domainPdf.CustomTime{Time: *inv.IssueDate}
	}
	if inv.DueDate != nil {
		data.DueDate = domainPdf.CustomTime{Time: *inv.DueDate}
	}

	data.Recipient = &domainPdf.RecipientInfo{Name: fmt.Sprintf("Customer %s", inv.CustomerID)}
	if cust != nil {
		data.Recipient = &domainPdf.RecipientInfo{
			Name:    cust.Name,
			Email:   cust.Email,
			Address: cust.BillingAddress,
		}
	}

	return data
}

func (s *invoiceService) numberPrefix() string {
	if s.Config.Invoice.NumberPrefix == "" {
		return invoice.DefaultNumberPrefix
	}
	return s.Config.Invoice.NumberPrefix
}

func (s *invoiceService) defaultPageSize() int {
	if s.Config.Invoice.DefaultPageSize < 1 {
		return 10
	}
	return s.Config.Invoice.DefaultPageSize
}

func invalidInvoiceError(errs []string) error {
	return ierr.NewError("invoice validation failed").
		WithHint("Invoice is invalid").
		WithReportableDetails(map[string]any{
			"errors": errs,
		}).
		Mark(ierr.ErrValidation)
}
