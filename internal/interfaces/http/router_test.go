package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockswift-api/internal/application/auth"
	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/application/inventory"
	"github.com/jhoicas/stockswift-api/internal/application/orders"
	"github.com/jhoicas/stockswift-api/internal/application/reporting"
	"github.com/jhoicas/stockswift-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stockswift-api/internal/interfaces/http"
)

// newAPITestApp monta la API completa sobre un ledger en memoria, junto con
// tokens ya emitidos para un staff y un client de "ACME Corp".
func newAPITestApp(t *testing.T) (app *fiber.App, staffToken, clientToken string) {
	t.Helper()

	ledger := memory.NewLedger()
	runner := memory.NewTxRunner(ledger)
	itemRepo := memory.NewInventoryRepository(ledger)
	orderRepo := memory.NewOrderRepository(ledger)
	shipmentRepo := memory.NewShipmentRepository(ledger)
	userRepo := memory.NewUserRepository(ledger)

	inventoryUC := inventory.NewUseCase(runner, itemRepo, 0)
	ordersUC := orders.NewUseCase(runner, orderRepo, shipmentRepo, itemRepo)
	reportingUC := reporting.NewUseCase(itemRepo, orderRepo, shipmentRepo, 0)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app = fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC: inventoryUC,
		OrdersUC:    ordersUC,
		ReportingUC: reportingUC,
		AuthUC:      authUC,
		Metrics:     apphttp.NewMetricsCollector(),
		JWTSecret:   testJWTSecret,
	})

	register := func(body string) {
		resp := do(t, app, http.MethodPost, "/api/auth/register", body, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	login := func(body string) string {
		resp := do(t, app, http.MethodPost, "/api/auth/login", body, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()
		var out dto.LoginResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out.Token
	}

	register(`{"email":"ops@test.dev","password":"secreto","role":"staff"}`)
	register(`{"email":"acme@test.dev","password":"secreto","company":"ACME Corp"}`)
	staffToken = login(`{"email":"ops@test.dev","password":"secreto"}`)
	clientToken = login(`{"email":"acme@test.dev","password":"secreto"}`)
	return app, staffToken, clientToken
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAPI_FlujoCompletoDeOrden(t *testing.T) {
	app, staffToken, clientToken := newAPITestApp(t)

	// Staff carga el catálogo
	resp := do(t, app, http.MethodPost, "/api/inventory",
		`{"sku":"LAP-001","name":"Laptop","category":"Electronics","quantity":25,"unit_cost":"899.99"}`,
		staffToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// El client crea una orden; la empresa sale de su token
	resp = do(t, app, http.MethodPost, "/api/orders",
		`{"customer_name":"J. Rivera","product":"LAP-001","quantity":3}`,
		clientToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "ACME Corp", order.Company)
	assert.Equal(t, "Pending", order.Status)

	// Costo contra el catálogo
	resp = do(t, app, http.MethodGet, "/api/orders/"+order.ID+"/cost", "", clientToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cost := decode[dto.OrderCostResponse](t, resp)
	assert.Equal(t, "2699.97", cost.Cost.String())

	// Solo staff puede transicionar
	resp = do(t, app, http.MethodPatch, "/api/orders/"+order.ID+"/status", `{"status":"Shipped"}`, clientToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPatch, "/api/orders/"+order.ID+"/status", `{"status":"Shipped"}`, staffToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	transition := decode[dto.TransitionResponse](t, resp)
	require.NotNil(t, transition.Shipment)
	assert.True(t, strings.HasPrefix(transition.Shipment.AirwayBill, "AWB-"))

	// Retroceder rechaza con 409
	resp = do(t, app, http.MethodPatch, "/api/orders/"+order.ID+"/status", `{"status":"Pending"}`, staffToken)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// La guía aérea en texto plano incluye el número de guía
	resp = do(t, app, http.MethodGet, "/api/orders/"+order.ID+"/airway-bill", "", clientToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), transition.Shipment.AirwayBill)

	// El resumen refleja la orden despachada hoy
	resp = do(t, app, http.MethodGet, "/api/reports/summary", "", staffToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.SummaryReport](t, resp)
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 1, summary.ShippedToday)
	assert.Equal(t, "LAP-001", summary.TopSellingProduct)
}

func TestAPI_InventarioSoloStaff(t *testing.T) {
	app, staffToken, clientToken := newAPITestApp(t)

	// Mutaciones de inventario bloqueadas para client
	resp := do(t, app, http.MethodPost, "/api/inventory",
		`{"sku":"X","name":"X","quantity":1,"unit_cost":"1.00"}`, clientToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// La lectura sí está disponible para ambos roles
	resp = do(t, app, http.MethodGet, "/api/inventory", "", clientToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// SKU duplicado → 409
	body := `{"sku":"X","name":"X","quantity":1,"unit_cost":"1.00"}`
	resp = do(t, app, http.MethodPost, "/api/inventory", body, staffToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = do(t, app, http.MethodPost, "/api/inventory", body, staffToken)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_ImportacionCSV(t *testing.T) {
	app, staffToken, _ := newAPITestApp(t)

	csv := "sku,name,category,quantity,unitCost\n" +
		"SKU-1,Laptop,Electronics,10,899.99\n" +
		"SKU-2,Mouse,Accessories,abc,24.99\n"
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/import", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("Authorization", "Bearer "+staffToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	report := decode[dto.ImportReport](t, resp)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 3, report.Skipped[0].Line)
}

func TestAPI_AlcanceDeOrdenesPorEmpresa(t *testing.T) {
	app, staffToken, clientToken := newAPITestApp(t)

	// Staff crea una orden de otra empresa
	resp := do(t, app, http.MethodPost, "/api/orders",
		`{"company":"Globex","customer_name":"M. Chen","product":"Monitor","quantity":2}`, staffToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	other := decode[dto.OrderResponse](t, resp)

	// El client de ACME no la ve en el listado ni puede abrirla
	resp = do(t, app, http.MethodGet, "/api/orders", "", clientToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.OrderResponse](t, resp)
	assert.Empty(t, list)

	resp = do(t, app, http.MethodGet, "/api/orders/"+other.ID, "", clientToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_MetricsExpuesto(t *testing.T) {
	app, staffToken, _ := newAPITestApp(t)

	// Generar algo de tráfico
	resp := do(t, app, http.MethodGet, "/api/inventory", "", staffToken)
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "http_requests_total")
}
