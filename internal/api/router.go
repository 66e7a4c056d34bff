package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/invoicesystem/invoicesystem/internal/api/v1"
	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/invoicesystem/invoicesystem/internal/rest/middleware"
	"github.com/invoicesystem/invoicesystem/internal/sentry"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Customer *v1.CustomerHandler
	Invoice  *v1.InvoiceHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, sentrySvc *sentry.Service) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
	)
	router.Use(middleware.SentryMiddleware(cfg)...)
	router.Use(middleware.ErrorHandler(logger, sentrySvc))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/health", handlers.Health.Health)

	customers := router.Group("/customer")
	{
		customers.GET("", handlers.Customer.GetCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.POST("/calculate", handlers.Invoice.CalculateInvoice)
		invoices.POST("/validate-line-item", handlers.Invoice.ValidateLineItem)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.GET("/:id/pdf", handlers.Invoice.GetInvoicePDF)
		invoices.POST("/:id/items", handlers.Invoice.AddInvoiceItem)
		invoices.PATCH("/:id/items/:index", handlers.Invoice.UpdateInvoiceItem)
		invoices.DELETE("/:id/items/:index", handlers.Invoice.RemoveInvoiceItem)
	}
}
