package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/analytics"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/auth"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	ProjectUC   *usecase.ProjectUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	SampleUC    *usecase.SampleDataUseCase
	DashboardUC *analytics.DashboardUseCase
	RFMUC       *analytics.RFMUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id/details", clientHandler.Details)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)

	// Invoices. /ar-aging va antes de /:id para que Fiber no lo capture como parámetro.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DashboardUC)
	invoices.Get("/ar-aging", invoiceHandler.ARAging)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Put("/:id/mark-paid", invoiceHandler.MarkPaid)
	invoices.Get("/:id/pdf", invoiceHandler.GeneratePDF)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.RFMUC)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
	dashboard.Get("/client-profitability", dashboardHandler.ClientProfitability)
	dashboard.Get("/revenue-by-month", dashboardHandler.RevenueByMonth)
	dashboard.Get("/rfm", dashboardHandler.RFM)

	// Datos de ejemplo
	dataHandler := NewDataHandler(deps.SampleUC)
	protected.Post("/data/generate-sample", dataHandler.GenerateSample)
}
