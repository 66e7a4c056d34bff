package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/invoicesystem/invoicesystem/internal/api/dto"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/invoicesystem/invoicesystem/internal/service"
	"github.com/invoicesystem/invoicesystem/internal/types"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewInvoiceHandler(invoiceService service.InvoiceService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// CreateInvoice godoc
// @Summary Create a new invoice
// @Description Create an invoice from a transfer object. Missing ids and numbers are generated.
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoice godoc
// @Summary Get an invoice
// @Description Get an invoice with computed lines and totals
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// ListInvoices godoc
// @Summary List invoices
// @Description Filter invoices by number, customer name, status or id and return one page of summaries
// @Tags Invoices
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page, starting at 1"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var filter types.InvoiceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid filter parameters").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddInvoiceItem godoc
// @Summary Add an invoice item
// @Description Append an item to the end of the invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param item body dto.CreateInvoiceItemRequest true "Item"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /invoices/{id}/items [post]
func (h *InvoiceHandler) AddInvoiceItem(c *gin.Context) {
	var req dto.CreateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	invoice, err := h.invoiceService.AddInvoiceItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceItem godoc
// @Summary Update an invoice item
// @Description Merge the given fields onto the item at index. Out-of-range indices leave the invoice unchanged.
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param index path int true "Zero-based item index"
// @Param item body dto.UpdateInvoiceItemRequest true "Fields to change"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /invoices/{id}/items/{index} [patch]
func (h *InvoiceHandler) UpdateInvoiceItem(c *gin.Context) {
	index, err := itemIndex(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceItem(c.Request.Context(), c.Param("id"), index, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// RemoveInvoiceItem godoc
// @Summary Remove an invoice item
// @Description Remove the item at index. Out-of-range indices leave the invoice unchanged.
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Param index path int true "Zero-based item index"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /invoices/{id}/items/{index} [delete]
func (h *InvoiceHandler) RemoveInvoiceItem(c *gin.Context) {
	index, err := itemIndex(c)
	if err != nil {
		c.Error(err)
		return
	}

	invoice, err := h.invoiceService.RemoveInvoiceItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// CalculateInvoice godoc
// @Summary Preview invoice totals
// @Description Compute per-line and invoice totals plus validation errors without storing anything
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CalculateInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceCalculationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /invoices/calculate [post]
func (h *InvoiceHandler) CalculateInvoice(c *gin.Context) {
	var req dto.CalculateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.CalculateInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateLineItem godoc
// @Summary Validate a line item
// @Description Run the line-item validator and return its errors with the derived amounts
// @Tags Invoices
// @Accept json
// @Produce json
// @Param item body dto.ValidateLineItemRequest true "Line item"
// @Success 200 {object} dto.LineItemValidationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /invoices/validate-line-item [post]
func (h *InvoiceHandler) ValidateLineItem(c *gin.Context) {
	var req dto.ValidateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.ValidateLineItem(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInvoicePDF godoc
// @Summary Download invoice PDF
// @Description Render the invoice as a PDF document
// @Tags Invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) GetInvoicePDF(c *gin.Context) {
	id := c.Param("id")

	pdf, err := h.invoiceService.GetInvoicePDF(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func itemIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Item index must be an integer").
			WithReportableDetails(map[string]any{"index": c.Param("index")}).
			Mark(ierr.ErrValidation)
	}
	return index, nil
}
