package memory

import (
	"context"
	"sync"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStore implements invoice.Repository. Invoices are cloned on the
// way in and out so callers never share item slices with the store.
type InvoiceStore struct {
	*Store[string, *invoice.Invoice]

	seqMu sync.Mutex
	seq   int64
}

// NewInvoiceStore creates an empty invoice store
func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{Store: NewStore[string, *invoice.Invoice]()}
}

// Create stores inv under its id and, when it has no number, gives it one
// from the sequence. The sequence only advances for invoices that are
// actually stored.
func (s *InvoiceStore) Create(ctx context.Context, inv *invoice.Invoice, numberPrefix string) error {
	if inv == nil || inv.ID == "" {
		return ierr.NewError("invoice id is required").
			WithHint("Invoice must have an id before it is stored").
			Mark(ierr.ErrValidation)
	}

	err := s.Store.CreateFunc(ctx, inv.ID, func() (*invoice.Invoice, error) {
		if inv.Number == "" {
			inv.Number = invoice.FormatNumber(numberPrefix, s.nextSequence())
		}
		return inv.Clone(), nil
	})
	if err != nil {
		if ierr.IsAlreadyExists(err) {
			return ierr.WithError(err).
				WithHintf("Invoice %s already exists", inv.ID).
				Mark(ierr.ErrAlreadyExists)
		}
		return err
	}
	return nil
}

func (s *InvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Invoice %s was not found", id).
			WithReportableDetails(map[string]any{"invoice_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return inv.Clone(), nil
}

// Mutate applies fn to the stored invoice and stores the result as one step.
// fn works on a copy; when it fails the stored invoice is left as it was.
func (s *InvoiceStore) Mutate(ctx context.Context, id string, fn func(inv *invoice.Invoice) error) (*invoice.Invoice, error) {
	updated, err := s.Store.Mutate(ctx, id, func(stored *invoice.Invoice) (*invoice.Invoice, error) {
		inv := stored.Clone()
		if err := fn(inv); err != nil {
			return nil, err
		}
		return inv, nil
	})
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHintf("Invoice %s was not found", id).
				WithReportableDetails(map[string]any{"invoice_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, err
	}
	return updated.Clone(), nil
}

// List orders invoices by creation time, then by number with the numeric
// suffix compared as a number, then by id.
func (s *InvoiceStore) List(ctx context.Context) ([]*invoice.Invoice, error) {
	items := s.Store.List(ctx, nil, func(i, j *invoice.Invoice) bool {
		ci, cj := createdAt(i), createdAt(j)
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		if c := invoice.CompareNumbers(i.Number, j.Number); c != 0 {
			return c < 0
		}
		return i.ID < j.ID
	})

	return lo.Map(items, func(inv *invoice.Invoice, _ int) *invoice.Invoice {
		return inv.Clone()
	}), nil
}

// nextSequence is only called with the store's write lock held
func (s *InvoiceStore) nextSequence() int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	s.seq++
	return s.seq
}

func createdAt(inv *invoice.Invoice) time.Time {
	if inv.CreatedAt == nil {
		return time.Time{}
	}
	return *inv.CreatedAt
}
