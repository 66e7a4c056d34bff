package dto

import (
	"strings"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/domain/customer"
	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/invoicesystem/invoicesystem/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest is an invoice transfer object submitted for storage
type CreateInvoiceRequest struct {
	invoice.DTO
}

func (r *CreateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToInvoice builds the domain invoice. Defaults for currency and status are
// applied by the domain; ids are assigned by the service.
func (r *CreateInvoiceRequest) ToInvoice() *invoice.Invoice {
	return invoice.New(&r.DTO)
}

// CalculateInvoiceRequest previews the totals of an invoice without storing it
type CalculateInvoiceRequest struct {
	invoice.DTO
}

func (r *CalculateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreateInvoiceItemRequest appends an item to a stored invoice
type CreateInvoiceItemRequest struct {
	invoice.ItemDTO
}

func (r *CreateInvoiceItemRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToInvoiceItem assigns a fresh id unless the client supplied one
func (r *CreateInvoiceItemRequest) ToInvoiceItem() invoice.InvoiceItem {
	item := r.ToItem()
	if item.ID == "" {
		item.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM)
	}
	return item
}

// UpdateInvoiceItemRequest is a partial item update; absent fields keep their value
type UpdateInvoiceItemRequest struct {
	Description *string          `json:"description,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

func (r *UpdateInvoiceItemRequest) Validate() error {
	if r.Description == nil && r.Quantity == nil && r.UnitPrice == nil && r.TaxRate == nil && r.Discount == nil {
		return ierr.NewError("empty item update").
			WithHint("At least one item field must be provided").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *UpdateInvoiceItemRequest) ToPatch() invoice.ItemPatch {
	return invoice.ItemPatch{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TaxRate:     r.TaxRate,
		Discount:    r.Discount,
	}
}

// ValidateLineItemRequest runs the standalone line-item validator
type ValidateLineItemRequest struct {
	invoice.ItemDTO
}

// LineItemResponse is an item with its derived amounts. LineTotal is the
// unrounded amount the invoice totals are summed from.
type LineItemResponse struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Total       decimal.Decimal `json:"total"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

func NewLineItemResponse(item invoice.InvoiceItem) LineItemResponse {
	return LineItemResponse{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		TaxRate:     item.TaxRate,
		Discount:    item.Discount,
		Subtotal:    item.Subtotal(),
		TaxAmount:   item.TaxAmount(),
		Total:       item.Total(),
		LineTotal:   item.LineTotal(),
	}
}

func newLineItemResponses(items []invoice.InvoiceItem) []LineItemResponse {
	return lo.Map(items, func(item invoice.InvoiceItem, _ int) LineItemResponse {
		return NewLineItemResponse(item)
	})
}

// InvoiceResponse is a stored invoice with computed lines, totals and the
// current validation result
type InvoiceResponse struct {
	ID               string              `json:"id"`
	Number           string              `json:"number"`
	CustomerID       string              `json:"customerId"`
	Customer         *CustomerResponse   `json:"customer,omitempty"`
	IssueDate        *time.Time          `json:"issueDate,omitempty"`
	DueDate          *time.Time          `json:"dueDate,omitempty"`
	Items            []LineItemResponse  `json:"items"`
	Currency         string              `json:"currency"`
	Notes            string              `json:"notes,omitempty"`
	Status           types.InvoiceStatus `json:"status"`
	IsOverdue        bool                `json:"isOverdue"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	TaxTotal         decimal.Decimal     `json:"taxTotal"`
	Total            decimal.Decimal     `json:"total"`
	ValidationErrors []string            `json:"validationErrors"`
	CreatedAt        *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time          `json:"updatedAt,omitempty"`
}

// NewInvoiceResponse renders inv; cust may be nil when the customer is unknown
func NewInvoiceResponse(inv *invoice.Invoice, cust *customer.Customer) *InvoiceResponse {
	return &InvoiceResponse{
		ID:               inv.ID,
		Number:           inv.Number,
		CustomerID:       inv.CustomerID,
		Customer:         NewCustomerResponse(cust),
		IssueDate:        inv.IssueDate,
		DueDate:          inv.DueDate,
		Items:            newLineItemResponses(inv.Items),
		Currency:         inv.Currency,
		Notes:            inv.Notes,
		Status:           inv.Status,
		IsOverdue:        inv.IsOverdue(nil),
		Subtotal:         inv.CalculateSubtotal(),
		TaxTotal:         inv.CalculateTaxTotal(),
		Total:            inv.CalculateTotal(),
		ValidationErrors: inv.Validate(),
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

// InvoiceSummary is one row of the invoice list
type InvoiceSummary struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	IssueDate    *time.Time          `json:"date,omitempty"`
	DueDate      *time.Time          `json:"dueDate,omitempty"`
	CustomerName string              `json:"customerName"`
	Total        decimal.Decimal     `json:"total"`
	Status       types.InvoiceStatus `json:"status"`
}

func NewInvoiceSummary(inv *invoice.Invoice, customerName string) *InvoiceSummary {
	return &InvoiceSummary{
		ID:           inv.ID,
		Number:       inv.Number,
		IssueDate:    inv.IssueDate,
		DueDate:      inv.DueDate,
		CustomerName: customerName,
		Total:        inv.CalculateTotal(),
		Status:       inv.Status,
	}
}

// Matches reports whether the summary contains query, which must already be
// trimmed and lowercased
func (s *InvoiceSummary) Matches(query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.Join([]string{s.Number, s.CustomerName, s.Status.String(), s.ID}, " ")
	return strings.Contains(strings.ToLower(haystack), query)
}

// ListInvoicesResponse is one page of invoice summaries
type ListInvoicesResponse = types.PageResponse[*InvoiceSummary]

// InvoiceCalculationResponse is the stateless preview of an invoice
type InvoiceCalculationResponse struct {
	Items    []LineItemResponse `json:"items"`
	Currency string             `json:"currency"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	TaxTotal decimal.Decimal    `json:"taxTotal"`
	Total    decimal.Decimal    `json:"total"`
	Valid    bool               `json:"valid"`
	Errors   []string           `json:"errors"`
}

func NewInvoiceCalculationResponse(inv *invoice.Invoice) *InvoiceCalculationResponse {
	errs := inv.Validate()
	return &InvoiceCalculationResponse{
		Items:    newLineItemResponses(inv.Items),
		Currency: inv.Currency,
		Subtotal: inv.CalculateSubtotal(),
		TaxTotal: inv.CalculateTaxTotal(),
		Total:    inv.CalculateTotal(),
		Valid:    len(errs) == 0,
		Errors:   errs,
	}
}

// LineItemValidationResponse is the result of the line-item validator
type LineItemValidationResponse struct {
	Valid  bool             `json:"valid"`
	Errors []string         `json:"errors"`
	Item   LineItemResponse `json:"item"`
}

func NewLineItemValidationResponse(item invoice.InvoiceItem) *LineItemValidationResponse {
	errs := item.Validate()
	return &LineItemValidationResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
		Item:   NewLineItemResponse(item),
	}
}
