package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/analytics"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/auth"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/usecase"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/repository"
	apphttp "github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/interfaces/http"
)

// Repos en memoria mínimos: suficientes para verificar que las rutas del
// contrato del frontend existen y llegan a su handler.
type routerUserRepo struct{}

func (r *routerUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *routerUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (r *routerUserRepo) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }

type routerClientRepo struct{}

func (r *routerClientRepo) Create(context.Context, *entity.Client) error { return nil }
func (r *routerClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return &entity.Client{ID: id, UserID: testUserID, Name: "Alpha", Tier: entity.TierSMB}, nil
}
func (r *routerClientRepo) ListByUser(context.Context, string) ([]*entity.Client, error) {
	return nil, nil
}
func (r *routerClientRepo) Update(context.Context, *entity.Client) error { return nil }
func (r *routerClientRepo) Delete(context.Context, string) error         { return nil }
func (r *routerClientRepo) DeleteByUser(context.Context, string) error   { return nil }

type routerProjectRepo struct{}

func (r *routerProjectRepo) Create(context.Context, *entity.Project) error { return nil }
func (r *routerProjectRepo) GetByID(context.Context, string) (*entity.Project, error) {
	return nil, nil
}
func (r *routerProjectRepo) ListByUser(context.Context, string) ([]*entity.Project, error) {
	return nil, nil
}
func (r *routerProjectRepo) ListByClient(context.Context, string) ([]*entity.Project, error) {
	return nil, nil
}
func (r *routerProjectRepo) Update(context.Context, *entity.Project) error { return nil }
func (r *routerProjectRepo) Delete(context.Context, string) error          { return nil }
func (r *routerProjectRepo) DeleteByClient(context.Context, string) error  { return nil }
func (r *routerProjectRepo) DeleteByUser(context.Context, string) error    { return nil }

type routerInvoiceRepo struct{}

func (r *routerInvoiceRepo) Create(context.Context, *entity.Invoice) error { return nil }
func (r *routerInvoiceRepo) GetByID(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}
func (r *routerInvoiceRepo) ListByUser(context.Context, string) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *routerInvoiceRepo) ListByClient(context.Context, string) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *routerInvoiceRepo) Update(context.Context, *entity.Invoice) error { return nil }
func (r *routerInvoiceRepo) Delete(context.Context, string) error          { return nil }
func (r *routerInvoiceRepo) DeleteByClient(context.Context, string) error  { return nil }
func (r *routerInvoiceRepo) DeleteByUser(context.Context, string) error    { return nil }

// routerTxRunner ejecuta el callback directamente con los repos en memoria.
type routerTxRunner struct{}

func (r *routerTxRunner) Run(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(&routerClientRepo{}, &routerProjectRepo{}, &routerInvoiceRepo{})
}

func buildRouterApp() *fiber.App {
	clientRepo := &routerClientRepo{}
	projectRepo := &routerProjectRepo{}
	invoiceRepo := &routerInvoiceRepo{}
	tx := &routerTxRunner{}
	settings := finance.DefaultSettings()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(&routerUserRepo{}, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		ClientUC:    usecase.NewClientUseCase(clientRepo, projectRepo, invoiceRepo, tx, settings),
		ProjectUC:   usecase.NewProjectUseCase(projectRepo, clientRepo),
		InvoiceUC:   usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, projectRepo, nil, settings),
		SampleUC:    usecase.NewSampleDataUseCase(tx),
		DashboardUC: analytics.NewDashboardUseCase(clientRepo, projectRepo, invoiceRepo, settings, nil),
		RFMUC:       analytics.NewRFMUseCase(clientRepo, invoiceRepo, nil),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func routerRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El contrato del frontend usa POST /api/data/generate-sample.
func TestRouter_GenerateSampleRoute(t *testing.T) {
	app := buildRouterApp()
	resp := routerRequest(t, app, http.MethodPost, "/api/data/generate-sample")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El detalle de cliente se sirve en GET /api/clients/:id/details.
func TestRouter_ClientDetailsRoute(t *testing.T) {
	app := buildRouterApp()
	resp := routerRequest(t, app, http.MethodGet, "/api/clients/c1/details")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Las rutas de dashboard del contrato responden 200 con token válido.
func TestRouter_DashboardRoutes(t *testing.T) {
	app := buildRouterApp()
	paths := []string{
		"/api/dashboard/kpis",
		"/api/dashboard/client-profitability",
		"/api/dashboard/revenue-by-month",
		"/api/dashboard/rfm",
		"/api/invoices/ar-aging",
	}
	for _, p := range paths {
		resp := routerRequest(t, app, http.MethodGet, p)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		resp.Body.Close()
	}
}
