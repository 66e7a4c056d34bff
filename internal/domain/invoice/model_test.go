package invoice

import (
	"testing"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleInvoice() *Invoice {
	issued := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	inv := New(nil)
	inv.ID = "inv_01"
	inv.Number = "INV-001"
	inv.CustomerID = "1"
	inv.IssueDate = &issued
	inv.DueDate = &due
	inv.CreatedAt = &created
	inv.UpdatedAt = &created
	inv.Items = []InvoiceItem{
		{Description: "Design", Quantity: d("10"), UnitPrice: d("100"), TaxRate: d("0.2")},
		{Description: "Hosting", Quantity: d("1"), UnitPrice: d("50"), Discount: d("5")},
	}
	inv.now = fixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return inv
}

func TestNewAppliesDefaults(t *testing.T) {
	inv := New(nil)
	assert.Equal(t, DefaultCurrency, inv.Currency)
	assert.Equal(t, types.InvoiceStatusDraft, inv.Status)
	assert.NotNil(t, inv.Items)
	assert.Empty(t, inv.Items)

	inv = New(&DTO{
		Currency: "EUR",
		Status:   types.InvoiceStatusPending,
		Items:    []ItemDTO{{Description: "x", Quantity: d("1"), UnitPrice: d("2")}},
	})
	assert.Equal(t, "EUR", inv.Currency)
	assert.Equal(t, types.InvoiceStatusSent, inv.Status)
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].TaxRate.IsZero())
	assert.True(t, inv.Items[0].Discount.IsZero())
}

func TestNewDropsUnparseableDates(t *testing.T) {
	inv := New(&DTO{IssueDate: "yesterday", DueDate: "2024-02-30"})
	assert.Nil(t, inv.IssueDate)
	assert.Nil(t, inv.DueDate)
}

func TestInvoiceAggregates(t *testing.T) {
	inv := sampleInvoice()

	assertAmount(t, "1045.00", inv.CalculateSubtotal())
	assertAmount(t, "200.00", inv.CalculateTaxTotal())
	assertAmount(t, "1245.00", inv.CalculateTotal())
}

func TestInvoiceAggregatesRoundOnce(t *testing.T) {
	inv := New(nil)
	for i := 0; i < 3; i++ {
		inv.Items = append(inv.Items, InvoiceItem{Description: "Unit", Quantity: d("1"), UnitPrice: d("1"), TaxRate: d("0.125")})
	}

	lineSum := d("0")
	for _, item := range inv.Items {
		lineSum = lineSum.Add(item.Total())
	}

	// each line rounds 0.125 up to 0.13; the invoice rounds 0.375 once
	assertAmount(t, "3.39", lineSum)
	assertAmount(t, "0.38", inv.CalculateTaxTotal())
	assertAmount(t, "3.38", inv.CalculateTotal())
}

func TestInvoiceAggregatesEmpty(t *testing.T) {
	inv := New(nil)
	assertAmount(t, "0", inv.CalculateSubtotal())
	assertAmount(t, "0", inv.CalculateTaxTotal())
	assertAmount(t, "0", inv.CalculateTotal())
}

func TestInvoiceMutations(t *testing.T) {
	t.Run("add appends and touches", func(t *testing.T) {
		inv := sampleInvoice()
		inv.AddItem(InvoiceItem{Description: "Support", Quantity: d("2"), UnitPrice: d("25")})

		require.Len(t, inv.Items, 3)
		assert.Equal(t, "Support", inv.Items[2].Description)
		assert.True(t, inv.UpdatedAt.Equal(inv.now()))
	})

	t.Run("remove keeps order", func(t *testing.T) {
		inv := sampleInvoice()
		inv.RemoveItem(0)

		require.Len(t, inv.Items, 1)
		assert.Equal(t, "Hosting", inv.Items[0].Description)
		assert.True(t, inv.UpdatedAt.Equal(inv.now()))
	})

	t.Run("update merges the patch", func(t *testing.T) {
		inv := sampleInvoice()
		price := d("120")
		inv.UpdateItem(0, ItemPatch{UnitPrice: &price})

		item := inv.Items[0]
		assert.Equal(t, "Design", item.Description)
		assertAmount(t, "10", item.Quantity)
		assertAmount(t, "120", item.UnitPrice)
		assertAmount(t, "0.2", item.TaxRate)
		assert.True(t, inv.UpdatedAt.Equal(inv.now()))
	})

	for _, index := range []int{-1, 2, 99} {
		t.Run("out of range is a no-op", func(t *testing.T) {
			inv := sampleInvoice()
			before := *inv.UpdatedAt
			desc := "changed"

			inv.RemoveItem(index)
			inv.UpdateItem(index, ItemPatch{Description: &desc})

			require.Len(t, inv.Items, 2)
			assert.Equal(t, "Design", inv.Items[0].Description)
			assert.Equal(t, "Hosting", inv.Items[1].Description)
			assert.True(t, inv.UpdatedAt.Equal(before))
		})
	}
}

func TestInvoiceIsOverdue(t *testing.T) {
	beforeDue := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	afterDue := time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status types.InvoiceStatus
		noDue  bool
		ref    *time.Time
		want   bool
	}{
		{name: "sent past due", status: types.InvoiceStatusSent, ref: &afterDue, want: true},
		{name: "sent before due", status: types.InvoiceStatusSent, ref: &beforeDue, want: false},
		{name: "paid past due", status: types.InvoiceStatusPaid, ref: &afterDue, want: false},
		{name: "cancelled past due", status: types.InvoiceStatusCancelled, ref: &afterDue, want: true},
		{name: "draft past due", status: types.InvoiceStatusDraft, ref: &afterDue, want: true},
		{name: "no due date", status: types.InvoiceStatusSent, noDue: true, ref: &afterDue, want: false},
		{name: "defaults to clock", status: types.InvoiceStatusSent, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := sampleInvoice()
			inv.Status = tt.status
			if tt.noDue {
				inv.DueDate = nil
			}
			assert.Equal(t, tt.want, inv.IsOverdue(tt.ref))
		})
	}
}

func TestInvoiceValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		inv := sampleInvoice()
		assert.Empty(t, inv.Validate())
		assert.True(t, inv.IsValid())
	})

	t.Run("empty invoice", func(t *testing.T) {
		inv := New(nil)
		assert.Equal(t, []string{
			"Customer is required.",
			"Issue date is required.",
			"At least one invoice item is required.",
		}, inv.Validate())
		assert.False(t, inv.IsValid())
	})

	t.Run("items are reported one-indexed", func(t *testing.T) {
		inv := sampleInvoice()
		inv.Items = append(inv.Items, InvoiceItem{Quantity: d("0"), UnitPrice: d("-1")})

		assert.Equal(t, []string{
			"Item 3: description is required.",
			"Item 3: quantity must be greater than zero.",
			"Item 3: unit price cannot be negative.",
		}, inv.Validate())
	})
}

func TestInvoiceClone(t *testing.T) {
	inv := sampleInvoice()
	c := inv.Clone()

	c.Items[0].Description = "changed"
	*c.DueDate = c.DueDate.AddDate(0, 1, 0)
	c.AddItem(InvoiceItem{Description: "extra"})

	assert.Equal(t, "Design", inv.Items[0].Description)
	assert.Len(t, inv.Items, 2)
	assert.Equal(t, time.February, inv.DueDate.Month())
	assert.Nil(t, (*Invoice)(nil).Clone())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-001", FormatNumber(DefaultNumberPrefix, 1))
	assert.Equal(t, "INV-042", FormatNumber(DefaultNumberPrefix, 42))
	assert.Equal(t, "INV-1234", FormatNumber(DefaultNumberPrefix, 1234))
	assert.Equal(t, "B-007", FormatNumber("B-", 7))
}

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "INV-101", b: "INV-1000", want: -1},
		{a: "INV-999", b: "INV-1000", want: -1},
		{a: "INV-002", b: "INV-002", want: 0},
		{a: "INV-010", b: "INV-002", want: 1},
		{a: "A-5", b: "B-1", want: -1},
		{a: "INV-01", b: "INV-001", want: 1},
		{a: "", b: "INV-001", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareNumbers(tt.a, tt.b))
			assert.Equal(t, -tt.want, CompareNumbers(tt.b, tt.a))
		})
	}
}
