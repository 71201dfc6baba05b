package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/canal-admin-api/internal/application/billing"
	"github.com/jhoicas/canal-admin-api/internal/application/exchange"
	"github.com/jhoicas/canal-admin-api/internal/application/inventory"
	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC    *inventory.AssetUseCase
	MovementUC *inventory.MovementUseCase
	InvoiceUC  *billing.InvoiceUseCase
	PDFUC      *billing.PDFUseCase
	CustomerUC *billing.CustomerUseCase
	ExchangeUC *exchange.ExchangeUseCase
	MailUC     *notification.MailUseCase
	SummaryUC  *report.SummaryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario
	assets := api.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC, deps.MovementUC)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Post("/:id/movements", assetHandler.ApplyMovement)

	// Facturación
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/items", invoiceHandler.AddItem)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/:id/send", invoiceHandler.Send)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Canjes
	exchanges := api.Group("/exchanges")
	exchangeHandler := NewExchangeHandler(deps.ExchangeUC)
	exchanges.Post("/", exchangeHandler.Create)
	exchanges.Get("/", exchangeHandler.List)

	// Correo
	mailHandler := NewMailHandler(deps.MailUC)
	api.Post("/mail", mailHandler.Send)

	// Reportes
	reportHandler := NewReportHandler(deps.SummaryUC)
	api.Get("/reports/summary", reportHandler.GetSummary)
}
