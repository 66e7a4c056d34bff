package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/domain/pdf"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/jung-kurt/gofpdf"
)

// Generator defines the interface for PDF generation operations
type Generator interface {
	RenderInvoicePdf(ctx context.Context, data *pdf.InvoiceData) ([]byte, error)
}

// Config controls page layout
type Config struct {
	PageSize string
	Font     string
}

type service struct {
	config Config
}

// NewGenerator creates a new PDF service
func NewGenerator(cfg *config.Configuration) Generator {
	return &service{
		config: Config{
			PageSize: "A4",
			Font:     "Arial",
		},
	}
}

// column widths in mm
var lineColumns = []struct {
	title string
	width float64
	align string
}{
	{"Description", 70, "L"},
	{"Qty", 20, "R"},
	{"Unit price", 25, "R"},
	{"Discount", 25, "R"},
	{"Tax", 15, "R"},
	{"Total", 25, "R"},
}

// RenderInvoicePdf lays out a single invoice and returns the document bytes
func (s *service) RenderInvoicePdf(ctx context.Context, data *pdf.InvoiceData) ([]byte, error) {
	if data == nil {
		return nil, ierr.NewError("invoice data is nil").
			WithHint("Invoice data is required to render a PDF").
			Mark(ierr.ErrValidation)
	}

	doc := gofpdf.New("P", "mm", s.config.PageSize, "")
	doc.SetTitle(fmt.Sprintf("Invoice %s", data.InvoiceNumber), true)
	doc.AddPage()

	s.header(doc, data)
	s.recipient(doc, data)
	s.lines(doc, data)
	s.totals(doc, data)

	if data.Notes != "" {
		doc.Ln(8)
		doc.SetFont(s.config.Font, "I", 10)
		doc.MultiCell(0, 5, data.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to render invoice pdf").
			Mark(ierr.ErrSystem)
	}

	return buf.Bytes(), nil
}

func (s *service) header(doc *gofpdf.Fpdf, data *pdf.InvoiceData) {
	doc.SetFont(s.config.Font, "B", 18)
	doc.CellFormat(0, 10, fmt.Sprintf("Invoice %s", data.InvoiceNumber), "", 1, "L", false, 0, "")

	doc.SetFont(s.config.Font, "", 10)
	doc.CellFormat(0, 6, "Status: "+data.InvoiceStatus, "", 1, "L", false, 0, "")
	if d := data.IssuingDate.String(); d != "" {
		doc.CellFormat(0, 6, "Issue date: "+d, "", 1, "L", false, 0, "")
	}
	if d := data.DueDate.String(); d != "" {
		doc.CellFormat(0, 6, "Due date: "+d, "", 1, "L", false, 0, "")
	}
	doc.Ln(4)
}

func (s *service) recipient(doc *gofpdf.Fpdf, data *pdf.InvoiceData) {
	if data.Recipient == nil {
		return
	}

	doc.SetFont(s.config.Font, "B", 11)
	doc.CellFormat(0, 6, "Bill to", "", 1, "L", false, 0, "")
	doc.SetFont(s.config.Font, "", 10)
	for _, line := range []string{data.Recipient.Name, data.Recipient.Address, data.Recipient.Email} {
		if line != "" {
			doc.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
	}
	doc.Ln(6)
}

func (s *service) lines(doc *gofpdf.Fpdf, data *pdf.InvoiceData) {
	doc.SetFont(s.config.Font, "B", 10)
	doc.SetFillColor(235, 235, 235)
	for _, col := range lineColumns {
		doc.CellFormat(col.width, 7, col.title, "1", 0, col.align, true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont(s.config.Font, "", 10)
	for _, item := range data.LineItems {
		values := []string{item.Description, item.Quantity, item.UnitPrice, item.Discount, item.TaxRate, item.Total}
		for i, col := range lineColumns {
			doc.CellFormat(col.width, 7, values[i], "1", 0, col.align, false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(4)
}

func (s *service) totals(doc *gofpdf.Fpdf, data *pdf.InvoiceData) {
	rows := []struct {
		label string
		value string
		style string
	}{
		{"Subtotal", data.Subtotal, ""},
		{"Tax", data.TaxTotal, ""},
		{"Total", data.Total, "B"},
	}

	for _, row := range rows {
		doc.SetFont(s.config.Font, row.style, 10)
		doc.CellFormat(155, 6, row.label, "", 0, "R", false, 0, "")
		doc.CellFormat(25, 6, fmt.Sprintf("%s %s", row.value, data.Currency), "", 1, "R", false, 0, "")
	}
}
