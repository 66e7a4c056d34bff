package dto

import (
	"github.com/invoicesystem/invoicesystem/internal/domain/customer"
	"github.com/invoicesystem/invoicesystem/internal/types"
)

type CustomerResponse struct {
	*customer.Customer
}

// ListCustomersResponse represents the response for listing customers
type ListCustomersResponse = types.ListResponse[*CustomerResponse]

func NewCustomerResponse(c *customer.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{Customer: c}
}
