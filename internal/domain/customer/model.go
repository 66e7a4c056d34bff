package customer

import (
	"strconv"
	"time"
)

// Customer represents a billable customer
type Customer struct {
	// ID is the numeric identifier for the customer
	ID int `json:"id"`

	// Name is the display name printed on invoices
	Name string `json:"name"`

	// BillingAddress is the single-line postal address invoices are sent to
	BillingAddress string `json:"billingAddress"`

	// Email is the billing contact address
	Email string `json:"email"`

	// IsActive reports whether the customer can still be invoiced
	IsActive bool `json:"isActive"`

	// Created is when the customer record was created
	Created time.Time `json:"created"`
}

// Key is the customer id in the string form invoices reference it by
func (c *Customer) Key() string {
	return strconv.Itoa(c.ID)
}

// ParseID reads an invoice customer reference as a customer id
func ParseID(ref string) (int, bool) {
	id, err := strconv.Atoi(ref)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
