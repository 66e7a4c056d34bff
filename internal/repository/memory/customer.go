package memory

import (
	"context"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/domain/customer"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
)

// CustomerStore implements customer.Repository
type CustomerStore struct {
	*Store[int, *customer.Customer]
}

// NewCustomerStore creates a customer store holding customers
func NewCustomerStore(customers ...*customer.Customer) *CustomerStore {
	s := &CustomerStore{Store: NewStore[int, *customer.Customer]()}
	for _, c := range customers {
		s.items[c.ID] = copyCustomer(c)
	}
	return s
}

// SampleCustomers are the records a fresh deployment starts with
func SampleCustomers(now time.Time) []*customer.Customer {
	return []*customer.Customer{
		{
			ID:             1,
			Name:           "Acme Corp",
			BillingAddress: "123 Main St",
			Email:          "billing@acme.com",
			IsActive:       true,
			Created:        now,
		},
		{
			ID:             2,
			Name:           "Globex Inc",
			BillingAddress: "456 Oak Ave",
			Email:          "accounts@globex.com",
			IsActive:       true,
			Created:        now,
		},
	}
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (s *CustomerStore) List(ctx context.Context) ([]*customer.Customer, error) {
	items := s.Store.List(ctx, nil, func(i, j *customer.Customer) bool {
		return i.ID < j.ID
	})

	result := make([]*customer.Customer, len(items))
	for i, c := range items {
		result[i] = copyCustomer(c)
	}
	return result, nil
}

func (s *CustomerStore) Get(ctx context.Context, id int) (*customer.Customer, error) {
	c, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Customer %d was not found", id).
			WithReportableDetails(map[string]any{"customer_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyCustomer(c), nil
}
