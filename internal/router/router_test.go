package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"catalog/internal/config"
	"catalog/internal/dto"
	"catalog/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "router-test-secret"

var allPermissions = map[string][]string{
	"Supplier": {"Add", "Edit", "Remove"},
	"Product":  {"Add", "Edit", "Remove"},
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type testEnv struct {
	engine *gin.Engine
	token  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "catalog.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{Env: "test", JWTSecret: testSecret}
	return &testEnv{engine: New(cfg, db), token: signToken(t, allPermissions)}
}

func signToken(t *testing.T, permissions map[string][]string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1", "username": "tester", "permissions": permissions,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type violations struct {
	Violations []string `json:"violations"`
}

func acmeBody() map[string]any {
	return map[string]any{
		"name":     "Acme",
		"document": "12345678900",
		"kind":     2,
		"address": map[string]any{
			"street": "Main St", "number": "100", "postal_code": "01001000",
			"district": "Centro", "city": "Sao Paulo", "state": "SP",
		},
	}
}

func (e *testEnv) createSupplier(t *testing.T) dto.SupplierResponse {
	t.Helper()
	w := e.do(t, http.MethodPost, "/v1/suppliers", acmeBody(), e.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.SupplierResponse](t, w)
}

func (e *testEnv) createProduct(t *testing.T, supplierID, name, value string) dto.ProductResponse {
	t.Helper()
	w := e.do(t, http.MethodPost, "/v1/products", map[string]any{
		"supplier_id": supplierID, "name": name, "description": name + " description", "value": value,
	}, e.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.ProductResponse](t, w)
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWrites_RequireToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/suppliers", acmeBody(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	readOnly := signToken(t, map[string][]string{"Product": {"Add"}})
	w = env.do(t, http.MethodPost, "/v1/suppliers", acmeBody(), readOnly)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReads_AreAnonymous(t *testing.T) {
	env := setupTestEnv(t)
	env.createSupplier(t)

	w := env.do(t, http.MethodGet, "/v1/suppliers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.SupplierListResponse](t, w)
	assert.Equal(t, 1, list.Total)
}

func TestCreateSupplier(t *testing.T) {
	env := setupTestEnv(t)
	created := env.createSupplier(t)

	assert.Equal(t, "company", created.KindName)
	assert.True(t, created.Active)
	require.NotNil(t, created.Address)

	w := env.do(t, http.MethodGet, "/v1/suppliers/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.SupplierResponse](t, w)
	require.NotNil(t, got.Address)
	assert.Equal(t, created.Address.ID, got.Address.ID)
	assert.Empty(t, got.Products)
}

func TestCreateSupplier_DuplicateDocument(t *testing.T) {
	env := setupTestEnv(t)
	env.createSupplier(t)

	w := env.do(t, http.MethodPost, "/v1/suppliers", acmeBody(), env.token)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, decode[violations](t, w).Violations, 1)
}

func TestCreateSupplier_Violations(t *testing.T) {
	env := setupTestEnv(t)
	body := acmeBody()
	body["name"] = ""

	w := env.do(t, http.MethodPost, "/v1/suppliers", body, env.token)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode[violations](t, w).Violations, "The field Name is required.")

	list := decode[dto.SupplierListResponse](t, env.do(t, http.MethodGet, "/v1/suppliers", nil, ""))
	assert.Zero(t, list.Total)
}

func TestCreateSupplier_MalformedJSON(t *testing.T) {
	env := setupTestEnv(t)
	req, _ := http.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.token)
	w := httptest.NewRecorder()

	env.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSupplier_KeepsAddressIdentity(t *testing.T) {
	env := setupTestEnv(t)
	created := env.createSupplier(t)
	body := acmeBody()
	body["name"] = "Acme Ltda"
	body["address"].(map[string]any)["street"] = "Second St"

	w := env.do(t, http.MethodPut, "/v1/suppliers/"+created.ID, body, env.token)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[dto.SupplierResponse](t, env.do(t, http.MethodGet, "/v1/suppliers/"+created.ID, nil, ""))
	assert.Equal(t, "Acme Ltda", got.Name)
	require.NotNil(t, got.Address)
	assert.Equal(t, created.Address.ID, got.Address.ID)
	assert.Equal(t, "Second St", got.Address.Street)
}

func TestUpdateAddress(t *testing.T) {
	env := setupTestEnv(t)
	created := env.createSupplier(t)

	w := env.do(t, http.MethodPut, "/v1/suppliers/"+created.ID+"/address", map[string]any{
		"street": "Third St", "number": "3", "postal_code": "02002000",
		"district": "Norte", "city": "Campinas", "state": "SP",
	}, env.token)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[dto.SupplierResponse](t, env.do(t, http.MethodGet, "/v1/suppliers/"+created.ID, nil, ""))
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, created.Address.ID, got.Address.ID)
	assert.Equal(t, "Campinas", got.Address.City)
}

func TestSupplierNotFound(t *testing.T) {
	env := setupTestEnv(t)
	missing := "6f1c1d1e-8b1a-4c53-9a7e-2f4e0a1b2c3d"

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/v1/suppliers/"+missing, nil, "").Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPut, "/v1/suppliers/"+missing, acmeBody(), env.token).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/v1/suppliers/"+missing, nil, env.token).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/v1/suppliers/not-a-uuid", nil, "").Code)
}

func TestProducts(t *testing.T) {
	env := setupTestEnv(t)
	s := env.createSupplier(t)
	p := env.createProduct(t, s.ID, "Widget", "10.00")

	w := env.do(t, http.MethodGet, "/v1/products/"+p.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.ProductResponse](t, w)
	assert.Equal(t, "Acme", got.SupplierName)
	assert.True(t, got.Value.Equal(decimal.RequireFromString("10.00")))

	w = env.do(t, http.MethodPut, "/v1/products/"+p.ID, map[string]any{
		"supplier_id": s.ID, "name": "Widget XL", "description": "bigger", "value": "12.50",
	}, env.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	list := decode[dto.ProductListResponse](t, env.do(t, http.MethodGet, "/v1/products", nil, ""))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Widget XL", list.Data[0].Name)
	assert.Equal(t, "Acme", list.Data[0].SupplierName)
}

func TestCreateProduct_Rejected(t *testing.T) {
	env := setupTestEnv(t)
	s := env.createSupplier(t)

	w := env.do(t, http.MethodPost, "/v1/products", map[string]any{
		"supplier_id": s.ID, "name": "Widget", "description": "w", "value": "-1",
	}, env.token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The value must not be negative."}, decode[violations](t, w).Violations)

	w = env.do(t, http.MethodPost, "/v1/products", map[string]any{
		"supplier_id": "nope", "name": "Widget", "description": "w", "value": "1",
	}, env.token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "SupplierID")
}

func TestDeleteProduct(t *testing.T) {
	env := setupTestEnv(t)
	s := env.createSupplier(t)
	p := env.createProduct(t, s.ID, "Widget", "10.00")

	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/v1/products/"+p.ID, nil, env.token).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/v1/products/"+p.ID, nil, env.token).Code)
}

func TestSupplierLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	s := env.createSupplier(t)
	widget := env.createProduct(t, s.ID, "Widget", "10.00")
	gadget := env.createProduct(t, s.ID, "Gadget", "25.50")

	full := decode[dto.SupplierResponse](t, env.do(t, http.MethodGet, "/v1/suppliers/"+s.ID+"/full", nil, ""))
	assert.Len(t, full.Products, 2)
	require.NotNil(t, full.Address)

	w := env.do(t, http.MethodDelete, "/v1/suppliers/"+s.ID, nil, env.token)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, decode[violations](t, w).Violations, 1)

	bySupplier := decode[dto.ProductListResponse](t, env.do(t, http.MethodGet, "/v1/suppliers/"+s.ID+"/products", nil, ""))
	assert.Equal(t, 2, bySupplier.Total)

	for _, id := range []string{widget.ID, gadget.ID} {
		require.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/v1/products/"+id, nil, env.token).Code)
	}
	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/v1/suppliers/"+s.ID, nil, env.token).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/v1/suppliers/"+s.ID, nil, "").Code)
}
