package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/invoicesystem/invoicesystem/internal/service"
)

type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

func NewCustomerHandler(
	service service.CustomerService,
	log *logger.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// @Summary List customers
// @Description List every customer
// @Tags Customers
// @Produce json
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /customer [get]
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	resp, err := h.service.GetCustomers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a customer
// @Description Get a customer by numeric id
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /customer/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Customer id must be a number").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
