package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore[string, int]()

	value := func(v int) func() (int, error) {
		return func() (int, error) { return v, nil }
	}
	require.NoError(t, s.CreateFunc(ctx, "a", value(1)))
	require.NoError(t, s.CreateFunc(ctx, "b", value(2)))

	err := s.CreateFunc(ctx, "a", value(3))
	require.Error(t, err)
	assert.True(t, ierr.IsAlreadyExists(err))

	v, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = s.Get(ctx, "missing")
	assert.True(t, ierr.IsNotFound(err))

	_, err = s.Mutate(ctx, "missing", func(v int) (int, error) { return v, nil })
	assert.True(t, ierr.IsNotFound(err))
	v, err = s.Mutate(ctx, "a", func(v int) (int, error) { return v * 10, nil })
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	got := s.List(ctx, func(_ context.Context, v int) bool { return v > 5 }, nil)
	assert.Equal(t, []int{10}, got)

	got = s.List(ctx, nil, func(i, j int) bool { return i < j })
	assert.Equal(t, []int{2, 10}, got)

	built := false
	err = s.CreateFunc(ctx, "b", func() (int, error) {
		built = true
		return 0, nil
	})
	assert.True(t, ierr.IsAlreadyExists(err))
	assert.False(t, built)
	require.NoError(t, s.CreateFunc(ctx, "c", value(3)))
	assert.Equal(t, 3, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
}

func TestCustomerStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewCustomerStore(SampleCustomers(now)...)

	customers, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Acme Corp", customers[0].Name)
	assert.Equal(t, "Globex Inc", customers[1].Name)

	c, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "accounts@globex.com", c.Email)

	// returned records are copies
	c.Name = "changed"
	again, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Globex Inc", again.Name)

	_, err = s.Get(ctx, 99)
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.Equal(t, "Customer 99 was not found", ierr.DisplayMessage(err))
}

func newTestInvoice(id, number string) *invoice.Invoice {
	inv := invoice.New(nil)
	inv.ID = id
	inv.Number = number
	inv.AddItem(invoice.InvoiceItem{Description: "a", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)})
	return inv
}

func TestInvoiceStore(t *testing.T) {
	ctx := context.Background()
	s := NewInvoiceStore()

	inv := newTestInvoice("inv_1", "INV-002")
	require.NoError(t, s.Create(ctx, inv, invoice.DefaultNumberPrefix))
	assert.True(t, ierr.IsAlreadyExists(s.Create(ctx, inv, invoice.DefaultNumberPrefix)))
	assert.True(t, ierr.IsValidation(s.Create(ctx, invoice.New(nil), invoice.DefaultNumberPrefix)))

	// mutating the caller's copy does not leak into the store
	inv.Items[0].Description = "mutated"
	stored, err := s.Get(ctx, "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "a", stored.Items[0].Description)

	require.NoError(t, s.Create(ctx, newTestInvoice("inv_2", "INV-001"), invoice.DefaultNumberPrefix))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "INV-001", list[0].Number)
	assert.Equal(t, "INV-002", list[1].Number)

	_, err = s.Get(ctx, "inv_missing")
	assert.True(t, ierr.IsNotFound(err))
}

func TestInvoiceStoreMutate(t *testing.T) {
	ctx := context.Background()
	s := NewInvoiceStore()
	require.NoError(t, s.Create(ctx, newTestInvoice("inv_1", "INV-001"), invoice.DefaultNumberPrefix))

	updated, err := s.Mutate(ctx, "inv_1", func(inv *invoice.Invoice) error {
		inv.Notes = "updated"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Notes)

	// the returned copy is detached from the store
	updated.Notes = "changed"
	stored, err := s.Get(ctx, "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "updated", stored.Notes)

	// a failing fn stores nothing
	_, err = s.Mutate(ctx, "inv_1", func(inv *invoice.Invoice) error {
		inv.Notes = "discarded"
		return ierr.NewError("boom").Mark(ierr.ErrInvalidOperation)
	})
	assert.True(t, ierr.IsInvalidOperation(err))
	stored, err = s.Get(ctx, "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "updated", stored.Notes)

	_, err = s.Mutate(ctx, "inv_missing", func(*invoice.Invoice) error { return nil })
	assert.True(t, ierr.IsNotFound(err))
	assert.Equal(t, "Invoice inv_missing was not found", ierr.DisplayMessage(err))
}

func TestInvoiceStoreConcurrentMutate(t *testing.T) {
	ctx := context.Background()
	s := NewInvoiceStore()
	require.NoError(t, s.Create(ctx, newTestInvoice("inv_1", "INV-001"), invoice.DefaultNumberPrefix))

	const writers = 200
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.Mutate(ctx, "inv_1", func(inv *invoice.Invoice) error {
				inv.AddItem(invoice.InvoiceItem{Description: "b", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	close(start)
	wg.Wait()

	stored, err := s.Get(ctx, "inv_1")
	require.NoError(t, err)
	assert.Len(t, stored.Items, writers+1)
}

func TestInvoiceStoreNumbering(t *testing.T) {
	ctx := context.Background()
	s := NewInvoiceStore()

	first := newTestInvoice("inv_1", "")
	require.NoError(t, s.Create(ctx, first, invoice.DefaultNumberPrefix))
	assert.Equal(t, "INV-001", first.Number)

	// a client supplied number is kept and does not advance the sequence
	require.NoError(t, s.Create(ctx, newTestInvoice("inv_2", "CUSTOM-9"), invoice.DefaultNumberPrefix))

	// a duplicate id does not consume a number
	assert.True(t, ierr.IsAlreadyExists(s.Create(ctx, newTestInvoice("inv_1", ""), invoice.DefaultNumberPrefix)))

	third := newTestInvoice("inv_3", "")
	require.NoError(t, s.Create(ctx, third, invoice.DefaultNumberPrefix))
	assert.Equal(t, "INV-002", third.Number)
}

func TestInvoiceStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewInvoiceStore()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	for _, tc := range []struct {
		id, number string
		createdAt  time.Time
	}{
		{id: "inv_a", number: "INV-1000", createdAt: created},
		{id: "inv_b", number: "INV-101", createdAt: created},
		{id: "inv_c", number: "INV-999", createdAt: created},
		{id: "inv_d", number: "INV-002", createdAt: later},
	} {
		inv := newTestInvoice(tc.id, tc.number)
		inv.CreatedAt = &tc.createdAt
		require.NoError(t, s.Create(ctx, inv, invoice.DefaultNumberPrefix))
	}

	list, err := s.List(ctx)
	require.NoError(t, err)

	numbers := make([]string, 0, len(list))
	for _, inv := range list {
		numbers = append(numbers, inv.Number)
	}
	assert.Equal(t, []string{"INV-101", "INV-999", "INV-1000", "INV-002"}, numbers)
}

func TestSeedSampleInvoices(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s := NewInvoiceStore()

	require.NoError(t, SeedSampleInvoices(ctx, s, invoice.DefaultNumberPrefix, now))
	// a second run leaves the populated store alone
	require.NoError(t, SeedSampleInvoices(ctx, s, invoice.DefaultNumberPrefix, now))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "INV-001", list[0].Number)
	assert.Equal(t, "1", list[0].CustomerID)
	assert.Equal(t, types.InvoiceStatusSent, list[0].Status)
	assert.True(t, decimal.RequireFromString("1250.5").Equal(list[0].CalculateTotal()))
	assert.Empty(t, list[0].Validate())

	assert.Equal(t, "INV-002", list[1].Number)
	assert.Equal(t, types.InvoiceStatusDraft, list[1].Status)
	assert.True(t, decimal.NewFromInt(3200).Equal(list[1].CalculateTotal()))

	next := newTestInvoice("inv_next", "")
	require.NoError(t, s.Create(ctx, next, invoice.DefaultNumberPrefix))
	assert.Equal(t, "INV-003", next.Number)
}
