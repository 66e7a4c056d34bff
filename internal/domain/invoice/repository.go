package invoice

import (
	"context"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create stores a new invoice. An invoice without a number gets
	// numberPrefix plus the next sequence value, starting at 1; the sequence
	// is not consumed when the invoice cannot be stored.
	Create(ctx context.Context, invoice *Invoice, numberPrefix string) error

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// Mutate loads the invoice, applies fn and stores the result atomically
	// with respect to other writers of the same invoice
	Mutate(ctx context.Context, id string, fn func(invoice *Invoice) error) (*Invoice, error)

	// List returns every invoice ordered by creation time, then number
	List(ctx context.Context) ([]*Invoice, error)
}
