package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceItem is one billable row on an invoice. TaxRate is a fraction of the
// net amount (0.2 = 20%) and Discount an absolute amount off the line.
type InvoiceItem struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Discount    decimal.Decimal `json:"discount"`
}

// ItemPatch carries the fields of a partial item update; nil means unchanged
type ItemPatch struct {
	ID          *string          `json:"id,omitempty"`
	Description *string          `json:"description,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

// Gross is quantity times unit price as entered, before any clamping or discount
func (i InvoiceItem) Gross() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// NetAmount is quantity × unit price − discount with every operand and the
// result floored at zero. It is unrounded.
func (i InvoiceItem) NetAmount() decimal.Decimal {
	qty := nonNegative(i.Quantity)
	unit := nonNegative(i.UnitPrice)
	discount := nonNegative(i.Discount)
	return nonNegative(qty.Mul(unit).Sub(discount))
}

// Subtotal is the net amount rounded to cents
func (i InvoiceItem) Subtotal() decimal.Decimal {
	return RoundToCents(i.NetAmount())
}

// TaxAmount applies the tax rate to the rounded subtotal and rounds again
func (i InvoiceItem) TaxAmount() decimal.Decimal {
	return RoundToCents(i.Subtotal().Mul(i.TaxRate))
}

// Total is the rounded subtotal plus the rounded tax amount
func (i InvoiceItem) Total() decimal.Decimal {
	return RoundToCents(i.Subtotal().Add(i.TaxAmount()))
}

// LineTotal is the unrounded line amount the invoice aggregates are built from
func (i InvoiceItem) LineTotal() decimal.Decimal {
	net := i.NetAmount()
	return nonNegative(net.Add(net.Mul(i.TaxRate)))
}

// Validate checks a single line item on its own. It returns every problem
// found; an empty slice means the item is valid.
func (i InvoiceItem) Validate() []string {
	errs := make([]string, 0)

	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, "Description is required.")
	}
	if !i.Quantity.IsPositive() {
		errs = append(errs, "Quantity must be greater than 0.")
	}
	if i.UnitPrice.IsNegative() {
		errs = append(errs, "Unit price must be 0 or greater.")
	}
	if i.TaxRate.IsNegative() {
		errs = append(errs, "Tax rate must be 0 or greater.")
	}
	if i.Discount.IsNegative() {
		errs = append(errs, "Discount must be 0 or greater.")
	}
	if i.Discount.GreaterThan(i.Gross()) {
		errs = append(errs, "Discount cannot exceed line subtotal before discount.")
	}

	return errs
}

// Apply merges p onto the item. Tax rate and discount keep their existing
// values when the patch leaves them out.
func (i InvoiceItem) Apply(p ItemPatch) InvoiceItem {
	merged := i
	if p.ID != nil {
		merged.ID = *p.ID
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Quantity != nil {
		merged.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		merged.UnitPrice = *p.UnitPrice
	}
	if p.TaxRate != nil {
		merged.TaxRate = *p.TaxRate
	}
	if p.Discount != nil {
		merged.Discount = *p.Discount
	}
	return merged
}
