package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/domain/pdf"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoicePdf(t *testing.T) {
	gen := NewGenerator(config.GetDefaultConfig())

	data := &pdf.InvoiceData{
		ID:            "inv_123",
		InvoiceNumber: "INV-001",
		InvoiceStatus: "Sent",
		Currency:      "USD",
		IssuingDate:   pdf.CustomTime{Time: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		Notes:         "Thank you for your business",
		Recipient:     &pdf.RecipientInfo{Name: "Acme Corp", Address: "123 Main St", Email: "billing@acme.com"},
		LineItems: []pdf.LineItemData{
			{Description: "Consulting", Quantity: "3", UnitPrice: "10.00", Discount: "5.00", TaxRate: "20%", Total: "30.00"},
		},
		Subtotal: "25.00",
		TaxTotal: "5.00",
		Total:    "30.00",
	}

	out, err := gen.RenderInvoicePdf(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderInvoicePdf_NilData(t *testing.T) {
	gen := NewGenerator(config.GetDefaultConfig())

	out, err := gen.RenderInvoicePdf(context.Background(), nil)
	assert.Nil(t, out)
	assert.True(t, ierr.IsValidation(err))
}

func TestCustomTime(t *testing.T) {
	assert.Equal(t, "", pdf.CustomTime{}.String())

	ct := pdf.CustomTime{Time: time.Date(2024, 2, 15, 13, 0, 0, 0, time.UTC)}
	raw, err := ct.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-15"`, string(raw))
}
