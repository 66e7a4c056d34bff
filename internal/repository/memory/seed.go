package memory

import (
	"context"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/shopspring/decimal"
)

// SeedSampleInvoices stores two demo invoices when repo is empty. Numbers are
// left to the repository so later invoices continue after them.
func SeedSampleInvoices(ctx context.Context, repo invoice.Repository, prefix string, now time.Time) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	samples := []struct {
		customerID string
		status     types.InvoiceStatus
		dueIn      time.Duration
		items      []invoice.InvoiceItem
	}{
		{
			customerID: "1",
			status:     types.InvoiceStatusSent,
			dueIn:      7 * 24 * time.Hour,
			items: []invoice.InvoiceItem{
				{Description: "Consulting", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.RequireFromString("0.2")},
				{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("50.5")},
			},
		},
		{
			customerID: "2",
			status:     types.InvoiceStatusDraft,
			dueIn:      14 * 24 * time.Hour,
			items: []invoice.InvoiceItem{
				{Description: "Implementation", Quantity: decimal.NewFromInt(32), UnitPrice: decimal.NewFromInt(100)},
			},
		},
	}

	for _, sample := range samples {
		issued := now
		due := now.Add(sample.dueIn)
		inv := invoice.New(nil)
		inv.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)
		inv.CustomerID = sample.customerID
		inv.Status = sample.status
		inv.IssueDate = &issued
		inv.DueDate = &due
		inv.CreatedAt = &issued
		inv.UpdatedAt = &issued
		for _, item := range sample.items {
			item.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM)
			inv.Items = append(inv.Items, item)
		}

		if err := repo.Create(ctx, inv, prefix); err != nil {
			return err
		}
	}

	return nil
}
