package repository

import (
	"context"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/domain/customer"
	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/invoicesystem/invoicesystem/internal/repository/memory"
)

func NewCustomerRepository(logger *logger.Logger) customer.Repository {
	customers := memory.SampleCustomers(time.Now().UTC())
	logger.Debugw("loaded customer directory", "customers", len(customers))
	return memory.NewCustomerStore(customers...)
}

func NewInvoiceRepository(cfg *config.Configuration, logger *logger.Logger) (invoice.Repository, error) {
	store := memory.NewInvoiceStore()
	if !cfg.Invoice.SeedSampleData {
		return store, nil
	}

	if err := memory.SeedSampleInvoices(context.Background(), store, cfg.Invoice.NumberPrefix, time.Now().UTC()); err != nil {
		return nil, err
	}
	logger.Infow("seeded sample invoices", "invoices", store.Count())
	return store, nil
}
