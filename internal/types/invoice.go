package types

import (
	"strings"

	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusSent      InvoiceStatus = "Sent"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusOverdue   InvoiceStatus = "Overdue"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"

	// InvoiceStatusPending is how list views label a sent invoice
	InvoiceStatusPending InvoiceStatus = "Pending"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// Normalize maps the Pending alias onto Sent
func (s InvoiceStatus) Normalize() InvoiceStatus {
	if s == InvoiceStatusPending {
		return InvoiceStatusSent
	}
	return s
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceFilter selects one page of invoice summaries
type InvoiceFilter struct {
	Query    string `json:"q,omitempty" form:"q"`
	Page     int    `json:"page,omitempty" form:"page" validate:"omitempty,min=1"`
	PageSize int    `json:"page_size,omitempty" form:"page_size" validate:"omitempty,min=1,max=1000"`
}

// NormalizedQuery is the trimmed, lowercased search text
func (f *InvoiceFilter) NormalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(f.Query))
}

// GetPage returns the requested page, defaulting to the first
func (f *InvoiceFilter) GetPage() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

// GetPageSize returns the requested page size or fallback when unset
func (f *InvoiceFilter) GetPageSize(fallback int) int {
	if f.PageSize < 1 {
		return fallback
	}
	return f.PageSize
}

func (f *InvoiceFilter) Validate() error {
	if f.Page < 0 || f.PageSize < 0 {
		return ierr.NewError("invalid pagination").
			WithHint("page and page_size must be positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}
