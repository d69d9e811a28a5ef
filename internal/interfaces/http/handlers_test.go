package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/memory"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/metrics"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/pdf"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/system"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/xmlexport"
	apphttp "github.com/OnKodr-dev/inventory-app/internal/interfaces/http"
)

// newTestApp arma la API completa sobre el almacén en memoria, igual que cmd/api.
func newTestApp(t *testing.T, secret string) *fiber.App {
	t.Helper()
	return newTestAppWithLog(t, secret, zerolog.Nop())
}

func newTestAppWithLog(t *testing.T, secret string, log zerolog.Logger) *fiber.App {
	t.Helper()
	ctx := context.Background()
	m := metrics.New()
	snaps := snapshot.NewPersister(memory.NewSnapshotStore(), zerolog.Nop(), time.Second, m)
	ids := system.UUIDGenerator{}
	clock := system.Clock{}

	ledger := inventory.NewLedgerService(snaps, ids, clock, zerolog.Nop(), m)
	catalog := inventory.NewCatalogService(ledger, snaps, ids, inventory.CatalogConfig{}, zerolog.Nop(), m)
	ledger.Load(ctx)
	catalog.Load(ctx)
	stock := inventory.NewStockService(catalog, ledger, "", 0)
	m.RegisterStockGauges(func() entity.StockCounts {
		_, counts := stock.Levels(invrules.FilterAll)
		return counts
	})

	app := apphttp.NewApp("inventory-test", zerolog.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		Catalog:          catalog,
		Ledger:           ledger,
		Stock:            stock,
		RegisterMovement: inventory.NewRegisterMovementUseCase(catalog, ledger, stock),
		Replenishment:    inventory.NewReplenishmentUseCase(catalog, stock),
		Reports:          inventory.NewReportService(stock, clock),
		PDFReport:        pdf.NewStockReportGenerator("Inventario"),
		XMLReport:        xmlexport.NewStockReportEncoder(),
		Metrics:          m.Handler(),
		ServiceName:      "inventory-test",
		Log:              log,
		JWTSecret:        secret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func callJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	resp, raw := call(t, app, method, path, fiber.MIMEApplicationJSON, body)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	status, body := callJSON(t, newTestApp(t, ""), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestItems_ListAndFilter(t *testing.T) {
	app := newTestApp(t, "")

	status, body := callJSON(t, app, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ALL", body["filter"])
	assert.Len(t, body["items"], 3)
	counts := body["counts"].(map[string]any)
	assert.EqualValues(t, 3, counts["all"])
	assert.EqualValues(t, 2, counts["low"])
	assert.EqualValues(t, 0, counts["out"])

	status, body = callJSON(t, app, http.MethodGet, "/api/items?filter=low", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["items"], 2)

	status, body = callJSON(t, app, http.MethodGet, "/api/items?filter=broken", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", body["code"])
}

func TestItems_CreateValidation(t *testing.T) {
	app := newTestApp(t, "")

	status, body := callJSON(t, app, http.MethodPost, "/api/items", `{"name":"  ","sku":"X-1"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "EMPTY_FIELD", body["code"])

	status, body = callJSON(t, app, http.MethodPost, "/api/items", `{"name":"Otro cable","sku":"hdmi-2m"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE_SKU", body["code"])

	status, body = callJSON(t, app, http.MethodPost, "/api/items", `{"name":" Mouse ","sku":"MS-1","minStock":"abc"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Mouse", body["name"])
	assert.Equal(t, "ks", body["unit"])
	assert.Equal(t, "0", body["minStock"])
	assert.NotEmpty(t, body["id"])
}

func TestItems_GetUpdateDelete(t *testing.T) {
	app := newTestApp(t, "")

	status, body := callJSON(t, app, http.MethodGet, "/api/items/i2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "3", body["stock"])
	assert.Equal(t, true, body["isLow"])

	status, _ = callJSON(t, app, http.MethodGet, "/api/items/nope", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = callJSON(t, app, http.MethodPatch, "/api/items/i2", `{"name":"Cargador 65W","minStock":2}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cargador 65W", body["name"])
	assert.Equal(t, "USBC-65W", body["sku"])
	assert.Equal(t, "2", body["minStock"])

	status, body = callJSON(t, app, http.MethodPatch, "/api/items/i2", `{"sku":"cat6-5m"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE_SKU", body["code"])

	status, _ = callJSON(t, app, http.MethodPatch, "/api/items/nope", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = callJSON(t, app, http.MethodDelete, "/api/items/i1", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ITEM_HAS_MOVEMENTS", body["code"])

	_, created := callJSON(t, app, http.MethodPost, "/api/items", `{"name":"Hub","sku":"HUB-4"}`)
	id := created["id"].(string)
	resp, _ := call(t, app, http.MethodDelete, "/api/items/"+id, "", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	status, _ = callJSON(t, app, http.MethodDelete, "/api/items/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestItems_ReplaceAndReset(t *testing.T) {
	app := newTestApp(t, "")

	status, body := callJSON(t, app, http.MethodPut, "/api/items", `{"items":[{"id":"a","name":"A","sku":"A-1"},{"name":"","sku":"B"}]}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["count"])

	status, body = callJSON(t, app, http.MethodPut, "/api/items", `{"nope":true}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", body["code"])

	xmlBody := `<items><item id="x1" sku="X-1" unit="m"><name>Cable</name><minStock>4</minStock></item></items>`
	resp, raw := call(t, app, http.MethodPut, "/api/items", fiber.MIMEApplicationXML, xmlBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	status, body = callJSON(t, app, http.MethodGet, "/api/items/x1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cable", body["name"])
	assert.Equal(t, "m", body["unit"])

	status, body = callJSON(t, app, http.MethodPost, "/api/items/reset", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["count"])
}

func TestMovements_RegisterAndStock(t *testing.T) {
	app := newTestApp(t, "")

	status, body := callJSON(t, app, http.MethodPost, "/api/movements", `{"itemId":"i2","type":"out","qty":"2","note":"Sala 3"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "OUT", body["type"])
	assert.Equal(t, "2", body["qty"])

	status, body = callJSON(t, app, http.MethodGet, "/api/stock", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "allow_negative", body["policy"])
	assert.Equal(t, "1", body["stock"].(map[string]any)["i2"])

	status, body = callJSON(t, app, http.MethodGet, "/api/movements?limit=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "modified", body["state"])
	assert.EqualValues(t, 2, body["total"])
	first := body["movements"].([]any)[0].(map[string]any)
	assert.Equal(t, "Sala 3", first["note"])
	assert.Equal(t, "USB-C Charger 65W", first["itemName"])
}

func TestMovements_Rejections(t *testing.T) {
	app := newTestApp(t, "")

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"stock insuficiente", `{"itemId":"i2","type":"OUT","qty":100}`, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"qty no numérico", `{"itemId":"i2","type":"IN","qty":"mucho"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"qty infinito", `{"itemId":"i2","type":"IN","qty":1e400}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"qty exponente enorme", `{"itemId":"i2","type":"IN","qty":"1e50000000"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"qty cero", `{"itemId":"i2","type":"IN","qty":0}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"tipo desconocido", `{"itemId":"i2","type":"MOVE","qty":1}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"artículo inexistente", `{"itemId":"zz","type":"IN","qty":1}`, http.StatusNotFound, "NOT_FOUND"},
		{"sin artículo", `{"type":"IN","qty":1}`, http.StatusBadRequest, "EMPTY_FIELD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := callJSON(t, app, http.MethodPost, "/api/movements", tc.body)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body["code"])
		})
	}

	_, body := callJSON(t, app, http.MethodGet, "/api/movements", "")
	assert.Equal(t, "seeded", body["state"])
	assert.EqualValues(t, 6, body["total"])
}

func TestMovements_ReplaceAndReset(t *testing.T) {
	app := newTestApp(t, "")

	status, body := callJSON(t, app, http.MethodPut, "/api/movements", `{"foo":1}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["applied"])
	assert.EqualValues(t, 6, body["count"])

	status, body = callJSON(t, app, http.MethodPut, "/api/movements",
		`[{"id":"x","itemId":"i1","type":"IN","qty":"5","createdAt":"2026-01-01T00:00:00Z"}]`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["applied"])
	assert.EqualValues(t, 1, body["count"])

	_, body = callJSON(t, app, http.MethodGet, "/api/stock", "")
	assert.Equal(t, "5", body["stock"].(map[string]any)["i1"])

	status, body = callJSON(t, app, http.MethodPost, "/api/movements/reset", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 6, body["count"])
}

func TestDashboardAndReplenishment(t *testing.T) {
	app := newTestApp(t, "")

	status, body := callJSON(t, app, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, status)
	low := body["lowStock"].([]any)
	require.Len(t, low, 2)
	assert.Equal(t, "i2", low[0].(map[string]any)["id"])
	assert.Empty(t, body["outOfStock"])
	assert.Len(t, body["recent"], 6)

	status, body = callJSON(t, app, http.MethodGet, "/api/replenishment", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["total"])
	first := body["replenishments"].([]any)[0].(map[string]any)
	assert.Equal(t, "i2", first["itemId"])
	assert.Equal(t, "4.5", first["suggestedQty"])
	assert.EqualValues(t, 1, first["priority"])
}

func TestReports(t *testing.T) {
	app := newTestApp(t, "")

	resp, raw := call(t, app, http.MethodGet, "/api/reports/stock.xml", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "xml")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xml")
	assert.Contains(t, string(raw), "<stockReport")
	assert.Contains(t, string(raw), `sku="HDMI-2M"`)

	resp, raw = call(t, app, http.MethodGet, "/api/reports/stock.pdf", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestRouter_AuthAndMetrics(t *testing.T) {
	app := newTestApp(t, testJWTSecret)

	status, body := callJSON(t, app, http.MethodGet, "/api/items", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", bearer(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// /health y /metrics quedan fuera del grupo protegido.
	resp, raw := call(t, app, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "go_goroutines")
	assert.Contains(t, string(raw), "inventory_items")
}

func TestUnknownRoute_UsesErrorHandler(t *testing.T) {
	status, body := callJSON(t, newTestApp(t, ""), http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestRouter_AuditaMutacionesConDispositivo(t *testing.T) {
	var buf bytes.Buffer
	app := newTestAppWithLog(t, testJWTSecret, zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Hub","sku":"HUB-4"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set("Authorization", bearer(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", bearer(t))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "solo se auditan las mutaciones")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, testDevice, entry["device"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
}
