package testutil

import (
	"context"

	domain "github.com/invoicesystem/invoicesystem/internal/domain/pdf"
	"github.com/invoicesystem/invoicesystem/internal/pdf"
	"github.com/stretchr/testify/mock"
)

var _ pdf.Generator = (*MockPDFGenerator)(nil)

type MockPDFGenerator struct {
	mock.Mock
}

// RenderInvoicePdf implements pdf.Generator.
func (m *MockPDFGenerator) RenderInvoicePdf(ctx context.Context, data *domain.InvoiceData) ([]byte, error) {
	args := m.Called(ctx, data)
	if b, ok := args.Get(0).([]byte); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func NewMockPDFGenerator() *MockPDFGenerator {
	return &MockPDFGenerator{}
}
