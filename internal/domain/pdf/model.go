package pdf

import (
	"encoding/json"
	"time"
)

// InvoiceData represents the data model for invoice PDF generation.
// Amounts are preformatted to two decimals.
type InvoiceData struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	InvoiceStatus string     `json:"invoice_status"`
	Currency      string     `json:"currency"`
	IssuingDate   CustomTime `json:"issuing_date"`
	DueDate       CustomTime `json:"due_date"`
	Notes         string     `json:"notes"`

	Recipient *RecipientInfo `json:"recipient"`

	LineItems []LineItemData `json:"line_items"`

	Subtotal string `json:"subtotal"`
	TaxTotal string `json:"tax_total"`
	Total    string `json:"total"`
}

// RecipientInfo contains customer information for the invoice recipient
type RecipientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// LineItemData represents an invoice line item for PDF generation
type LineItemData struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Discount    string `json:"discount"`
	TaxRate     string `json:"tax_rate"`
	Total       string `json:"total"`
}

// CustomTime renders as a date; the zero value renders as an empty string
type CustomTime struct {
	time.Time
}

// String formats the date as YYYY-MM-DD
func (ct CustomTime) String() string {
	if ct.IsZero() {
		return ""
	}
	return ct.Format("2006-01-02")
}

func (ct CustomTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ct.String())
}
