package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/invoicesystem/invoicesystem/internal/api/v1"
	"github.com/invoicesystem/invoicesystem/internal/cache"
	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/invoicesystem/invoicesystem/internal/pdf"
	"github.com/invoicesystem/invoicesystem/internal/repository"
	"github.com/invoicesystem/invoicesystem/internal/sentry"
	"github.com/invoicesystem/invoicesystem/internal/service"
	"github.com/invoicesystem/invoicesystem/internal/validator"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	validator.NewValidator()
}

func (s *RouterSuite) SetupTest() {
	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()
	sentrySvc := sentry.NewSentryService(cfg, log)

	invoiceRepo, err := repository.NewInvoiceRepository(cfg, log)
	s.Require().NoError(err)

	params := service.NewServiceParams(
		log,
		cfg,
		cache.NewInMemoryCache(cfg, log),
		sentrySvc,
		pdf.NewGenerator(cfg),
		repository.NewCustomerRepository(log),
		invoiceRepo,
	)

	s.router = NewRouter(Handlers{
		Health:   v1.NewHealthHandler(log),
		Customer: v1.NewCustomerHandler(service.NewCustomerService(params), log),
		Invoice:  v1.NewInvoiceHandler(service.NewInvoiceService(params), log),
	}, cfg, log, sentrySvc)
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type invoiceBody struct {
	ID               string   `json:"id"`
	Number           string   `json:"number"`
	Total            string   `json:"total"`
	Status           string   `json:"status"`
	ValidationErrors []string `json:"validationErrors"`
	Items            []struct {
		Description string `json:"description"`
		Total       string `json:"total"`
	} `json:"items"`
	Customer *struct {
		Name string `json:"name"`
	} `json:"customer"`
}

func (s *RouterSuite) TestHealth() {
	w := s.do(http.MethodGet, "/v1/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestCustomers() {
	w := s.do(http.MethodGet, "/v1/customer", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Acme Corp")
	s.Contains(w.Body.String(), "Globex Inc")

	w = s.do(http.MethodGet, "/v1/customer/2", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "accounts@globex.com")

	w = s.do(http.MethodGet, "/v1/customer/99", nil)
	s.Equal(http.StatusNotFound, w.Code)
	body := decode[errorBody](s.T(), w)
	s.False(body.Success)
	s.Equal("Customer 99 was not found", body.Error.Message)

	w = s.do(http.MethodGet, "/v1/customer/abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestListInvoices() {
	w := s.do(http.MethodGet, "/v1/invoices", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"total":2`)
	s.Contains(w.Body.String(), "INV-001")

	w = s.do(http.MethodGet, "/v1/invoices?q=globex", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"total":1`)
	s.Contains(w.Body.String(), "INV-002")
	s.NotContains(w.Body.String(), "INV-001")

	w = s.do(http.MethodGet, "/v1/invoices?page_size=0&page=-1", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/v1/invoices?page=abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestCreateAndMutateInvoice() {
	w := s.do(http.MethodPost, "/v1/invoices", map[string]any{
		"customerId": "1",
		"issueDate":  "2024-01-15",
		"dueDate":    "2024-02-15",
		"items": []map[string]any{
			{"description": "Design", "quantity": "3", "unitPrice": "10", "discount": "5", "taxRate": "0.2"},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	created := decode[invoiceBody](s.T(), w)
	s.Equal("INV-003", created.Number)
	s.Equal("30", created.Total)
	s.Require().NotNil(created.Customer)
	s.Equal("Acme Corp", created.Customer.Name)
	s.Empty(created.ValidationErrors)

	w = s.do(http.MethodPost, "/v1/invoices/"+created.ID+"/items", map[string]any{
		"description": "Hosting", "quantity": "1", "unitPrice": "20",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Len(decode[invoiceBody](s.T(), w).Items, 2)

	w = s.do(http.MethodPatch, "/v1/invoices/"+created.ID+"/items/1", map[string]any{"quantity": "2"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	updated := decode[invoiceBody](s.T(), w)
	s.Equal("40", updated.Items[1].Total)
	s.Equal("70", updated.Total)

	w = s.do(http.MethodDelete, "/v1/invoices/"+created.ID+"/items/0", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	removed := decode[invoiceBody](s.T(), w)
	s.Require().Len(removed.Items, 1)
	s.Equal("Hosting", removed.Items[0].Description)

	// out-of-range indices leave the invoice as is
	w = s.do(http.MethodDelete, "/v1/invoices/"+created.ID+"/items/5", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Len(decode[invoiceBody](s.T(), w).Items, 1)

	w = s.do(http.MethodDelete, "/v1/invoices/"+created.ID+"/items/first", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/v1/invoices/"+created.ID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("40", decode[invoiceBody](s.T(), w).Total)
}

func (s *RouterSuite) TestCreateInvoiceRejected() {
	tests := []struct {
		name   string
		body   any
		detail string
	}{
		{
			name:   "malformed json",
			body:   `{"customerId":`,
			detail: "",
		},
		{
			name:   "missing fields",
			body:   map[string]any{"items": []any{}},
			detail: "Customer is required.",
		},
		{
			name: "unknown customer",
			body: map[string]any{
				"customerId": "42",
				"issueDate":  "2024-01-15",
				"items":      []map[string]any{{"description": "x", "quantity": "1", "unitPrice": "1"}},
			},
			detail: "Customer 42 does not exist.",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/v1/invoices", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)

			body := decode[errorBody](s.T(), w)
			s.False(body.Success)
			if tt.detail != "" {
				s.Contains(body.Error.Details["errors"], tt.detail)
			}
		})
	}
}

func (s *RouterSuite) TestGetInvoiceNotFound() {
	w := s.do(http.MethodGet, "/v1/invoices/inv_missing", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPatch, "/v1/invoices/inv_missing/items/0", map[string]any{"quantity": "2"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestCalculateInvoice() {
	w := s.do(http.MethodPost, "/v1/invoices/calculate", map[string]any{
		"items": []map[string]any{
			{"description": "Unit", "quantity": "1", "unitPrice": "1", "taxRate": "0.125"},
			{"description": "Unit", "quantity": "1", "unitPrice": "1", "taxRate": "0.125"},
			{"description": "Unit", "quantity": "1", "unitPrice": "1", "taxRate": "0.125"},
		},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Total  string   `json:"total"`
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("3.38", body.Total)
	s.False(body.Valid)
	s.Contains(body.Errors, "Customer is required.")
}

func (s *RouterSuite) TestValidateLineItem() {
	w := s.do(http.MethodPost, "/v1/invoices/validate-line-item", map[string]any{
		"description": "Widget", "quantity": "2", "unitPrice": "5", "discount": "15",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Discount cannot exceed line subtotal before discount.")
	s.Contains(w.Body.String(), `"valid":false`)
}

func (s *RouterSuite) TestInvoicePDF() {
	w := s.do(http.MethodGet, "/v1/invoices", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	s.Require().NotEmpty(page.Items)
	id := page.Items[0].ID

	w = s.do(http.MethodGet, "/v1/invoices/"+id+"/pdf", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("application/pdf", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "invoice-"+id+".pdf")
	s.True(strings.HasPrefix(w.Body.String(), "%PDF"))
}
