package invoice

import (
	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DTO is the wire shape of an invoice. Dates are ISO-8601 strings.
type DTO struct {
	ID         string              `json:"id,omitempty"`
	Number     string              `json:"number,omitempty"`
	CustomerID string              `json:"customerId,omitempty"`
	IssueDate  string              `json:"issueDate,omitempty" validate:"omitempty,iso8601"`
	DueDate    string              `json:"dueDate,omitempty" validate:"omitempty,iso8601"`
	Items      []ItemDTO           `json:"items" validate:"dive"`
	Currency   string              `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes      string              `json:"notes,omitempty"`
	Status     types.InvoiceStatus `json:"status,omitempty" validate:"omitempty,invoice_status"`
	CreatedAt  string              `json:"createdAt,omitempty" validate:"omitempty,iso8601"`
	UpdatedAt  string              `json:"updatedAt,omitempty" validate:"omitempty,iso8601"`
}

// ItemDTO is the wire shape of an invoice item. Tax rate and discount are optional.
type ItemDTO struct {
	ID          string           `json:"id,omitempty"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

// ToItem converts to the domain item, defaulting tax rate and discount to zero
func (d ItemDTO) ToItem() InvoiceItem {
	return InvoiceItem{
		ID:          d.ID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		TaxRate:     lo.FromPtrOr(d.TaxRate, decimal.Zero),
		Discount:    lo.FromPtrOr(d.Discount, decimal.Zero),
	}
}

// ItemToDTO converts a domain item to its wire shape
func ItemToDTO(item InvoiceItem) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		TaxRate:     lo.ToPtr(item.TaxRate),
		Discount:    lo.ToPtr(item.Discount),
	}
}

// ToDTO serializes the invoice for persistence or transmission
func (inv *Invoice) ToDTO() *DTO {
	return &DTO{
		ID:         inv.ID,
		Number:     inv.Number,
		CustomerID: inv.CustomerID,
		IssueDate:  types.FormatTimestamp(inv.IssueDate),
		DueDate:    types.FormatTimestamp(inv.DueDate),
		Items:      lo.Map(inv.Items, func(item InvoiceItem, _ int) ItemDTO { return ItemToDTO(item) }),
		Currency:   inv.Currency,
		Notes:      inv.Notes,
		Status:     inv.Status,
		CreatedAt:  types.FormatTimestamp(inv.CreatedAt),
		UpdatedAt:  types.FormatTimestamp(inv.UpdatedAt),
	}
}
