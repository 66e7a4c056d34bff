package invoice

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultCurrency applies when a transfer object carries none
const DefaultCurrency = "USD"

// DefaultNumberPrefix is prepended to the sequence in generated invoice numbers
const DefaultNumberPrefix = "INV-"

// FormatNumber renders a sequence value as an invoice number, e.g. INV-007
func FormatNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// CompareNumbers orders invoice numbers by prefix, then by the value of their
// trailing digits, so INV-999 sorts before INV-1000
func CompareNumbers(a, b string) int {
	pa, da := splitNumber(a)
	pb, db := splitNumber(b)
	if c := strings.Compare(pa, pb); c != 0 {
		return c
	}

	da, db = strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
	if len(da) != len(db) {
		return cmp.Compare(len(da), len(db))
	}
	if c := strings.Compare(da, db); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// splitNumber separates the trailing run of digits from the rest
func splitNumber(number string) (prefix, digits string) {
	i := len(number)
	for i > 0 && number[i-1] >= '0' && number[i-1] <= '9' {
		i--
	}
	return number[:i], number[i:]
}

// Invoice owns an ordered list of items. Order matters: display and the
// index-based mutations depend on it. An Invoice is not safe for concurrent
// mutation.
type Invoice struct {
	ID         string              `json:"id,omitempty"`
	Number     string              `json:"number,omitempty"`
	CustomerID string              `json:"customerId,omitempty"`
	IssueDate  *time.Time          `json:"issueDate,omitempty"`
	DueDate    *time.Time          `json:"dueDate,omitempty"`
	Items      []InvoiceItem       `json:"items"`
	Currency   string              `json:"currency"`
	Notes      string              `json:"notes,omitempty"`
	Status     types.InvoiceStatus `json:"status"`
	CreatedAt  *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time          `json:"updatedAt,omitempty"`

	now func() time.Time
}

// New builds an invoice from an optional transfer object, applying defaults
// for currency, status and item tax rate / discount.
func New(dto *DTO) *Invoice {
	inv := &Invoice{
		Items:    []InvoiceItem{},
		Currency: DefaultCurrency,
		Status:   types.InvoiceStatusDraft,
		now:      time.Now,
	}
	if dto == nil {
		return inv
	}

	inv.ID = dto.ID
	inv.Number = dto.Number
	inv.CustomerID = dto.CustomerID
	inv.IssueDate = types.ParseTimestampPtr(dto.IssueDate)
	inv.DueDate = types.ParseTimestampPtr(dto.DueDate)
	inv.Notes = dto.Notes
	inv.CreatedAt = types.ParseTimestampPtr(dto.CreatedAt)
	inv.UpdatedAt = types.ParseTimestampPtr(dto.UpdatedAt)
	if dto.Currency != "" {
		inv.Currency = dto.Currency
	}
	if dto.Status != "" {
		inv.Status = dto.Status.Normalize()
	}
	for _, item := range dto.Items {
		inv.Items = append(inv.Items, item.ToItem())
	}

	return inv
}

// AddItem appends item to the end of the invoice
func (inv *Invoice) AddItem(item InvoiceItem) {
	inv.Items = append(inv.Items, item)
	inv.touch()
}

// RemoveItem drops the item at index. Out-of-range indices are ignored.
func (inv *Invoice) RemoveItem(index int) {
	if index < 0 || index >= len(inv.Items) {
		return
	}
	inv.Items = slices.Delete(inv.Items, index, index+1)
	inv.touch()
}

// UpdateItem merges patch onto the item at index. Out-of-range indices are ignored.
func (inv *Invoice) UpdateItem(index int, patch ItemPatch) {
	if index < 0 || index >= len(inv.Items) {
		return
	}
	inv.Items[index] = inv.Items[index].Apply(patch)
	inv.touch()
}

// CalculateSubtotal sums the unrounded net amount of every line and rounds once
func (inv *Invoice) CalculateSubtotal() decimal.Decimal {
	return RoundToCents(inv.subtotal())
}

// CalculateTaxTotal sums the unrounded tax of every line and rounds once
func (inv *Invoice) CalculateTaxTotal() decimal.Decimal {
	return RoundToCents(inv.taxTotal())
}

// CalculateTotal is subtotal plus tax, both unrounded, rounded once. It can
// differ by a cent from the sum of the per-line totals.
func (inv *Invoice) CalculateTotal() decimal.Decimal {
	return RoundToCents(inv.subtotal().Add(inv.taxTotal()))
}

func (inv *Invoice) subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.NetAmount())
	}
	return sum
}

func (inv *Invoice) taxTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.NetAmount().Mul(item.TaxRate))
	}
	return sum
}

// IsOverdue reports whether the due date has passed on an unpaid invoice.
// ref defaults to now. Cancelled invoices are not excluded.
func (inv *Invoice) IsOverdue(ref *time.Time) bool {
	if inv.DueDate == nil {
		return false
	}
	at := inv.clock()
	if ref != nil {
		at = *ref
	}
	return inv.Status != types.InvoiceStatusPaid && inv.DueDate.Before(at)
}

// Validate returns every problem with the invoice; an empty slice means valid.
// Items are reported 1-indexed.
func (inv *Invoice) Validate() []string {
	errs := make([]string, 0)

	if inv.CustomerID == "" {
		errs = append(errs, "Customer is required.")
	}
	if inv.IssueDate == nil {
		errs = append(errs, "Issue date is required.")
	}
	if len(inv.Items) == 0 {
		errs = append(errs, "At least one invoice item is required.")
	}
	for i, item := range inv.Items {
		if item.Description == "" {
			errs = append(errs, fmt.Sprintf("Item %d: description is required.", i+1))
		}
		if !item.Quantity.IsPositive() {
			errs = append(errs, fmt.Sprintf("Item %d: quantity must be greater than zero.", i+1))
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, fmt.Sprintf("Item %d: unit price cannot be negative.", i+1))
		}
	}

	return errs
}

// IsValid is shorthand for an empty Validate result
func (inv *Invoice) IsValid() bool {
	return len(inv.Validate()) == 0
}

// Clone returns a deep copy sharing no slices or time pointers with inv
func (inv *Invoice) Clone() *Invoice {
	if inv == nil {
		return nil
	}
	c := *inv
	c.Items = slices.Clone(inv.Items)
	if c.Items == nil {
		c.Items = []InvoiceItem{}
	}
	c.IssueDate = cloneTime(inv.IssueDate)
	c.DueDate = cloneTime(inv.DueDate)
	c.CreatedAt = cloneTime(inv.CreatedAt)
	c.UpdatedAt = cloneTime(inv.UpdatedAt)
	return &c
}

func (inv *Invoice) touch() {
	now := inv.clock()
	inv.UpdatedAt = &now
}

func (inv *Invoice) clock() time.Time {
	if inv.now == nil {
		return time.Now()
	}
	return inv.now()
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
