package service

import (
	"github.com/invoicesystem/invoicesystem/internal/cache"
	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/domain/customer"
	"github.com/invoicesystem/invoicesystem/internal/domain/invoice"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/invoicesystem/invoicesystem/internal/pdf"
	"github.com/invoicesystem/invoicesystem/internal/sentry"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger       *logger.Logger
	Config       *config.Configuration
	Cache        cache.Cache
	Sentry       *sentry.Service
	PDFGenerator pdf.Generator

	// Repositories
	CustomerRepo customer.Repository
	InvoiceRepo  invoice.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	sentry *sentry.Service,
	pdfGenerator pdf.Generator,
	customerRepo customer.Repository,
	invoiceRepo invoice.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		Cache:        cache,
		Sentry:       sentry,
		PDFGenerator: pdfGenerator,
		CustomerRepo: customerRepo,
		InvoiceRepo:  invoiceRepo,
	}
}
