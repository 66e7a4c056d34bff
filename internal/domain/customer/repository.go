package customer

import (
	"context"
)

// Repository defines the interface for customer data access
type Repository interface {
	// List returns every customer ordered by id
	List(ctx context.Context) ([]*Customer, error)

	// Get retrieves a customer by id
	Get(ctx context.Context, id int) (*Customer, error)
}
