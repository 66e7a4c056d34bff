package repository

import (
	"context"
	"testing"

	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceRepositorySeeds(t *testing.T) {
	cfg := config.GetDefaultConfig()

	repo, err := NewInvoiceRepository(cfg, logger.NewNopLogger())
	require.NoError(t, err)

	invoices, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-001", invoices[0].Number)
	assert.Equal(t, "INV-002", invoices[1].Number)
}

func TestNewInvoiceRepositoryWithoutSeed(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Invoice.SeedSampleData = false

	repo, err := NewInvoiceRepository(cfg, logger.NewNopLogger())
	require.NoError(t, err)

	invoices, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestNewCustomerRepository(t *testing.T) {
	repo := NewCustomerRepository(logger.NewNopLogger())

	customers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Acme Corp", customers[0].Name)
}
