package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kubra-market/internal/data/repository"
	"kubra-market/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp() *App {
	repo := repository.NewMemoryRepository()
	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 168,
		},
	}
	return Wiring(repo, config, zap.NewNop())
}

func doJSON(t *testing.T, app *App, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/me", "/api/products", "/api/orders", "/api/shop", "/api/rental", "/api/sales/daily"} {
		rec := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestRegisterAndUseToken(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "merchant1",
		"email":    "m1@example.com",
		"password": "secret123",
		"name":     "Merchant One",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	envelope := decodeEnvelope(t, rec)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password")

	// Token opens the protected surface.
	rec = doJSON(t, app, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Garbage token does not.
	rec = doJSON(t, app, http.MethodGet, "/api/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductFlowOverHTTP(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "merchant1",
		"email":    "m1@example.com",
		"password": "secret123",
		"name":     "Merchant One",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	token := decodeEnvelope(t, rec)["data"].(map[string]any)["token"].(string)

	rec = doJSON(t, app, http.MethodPost, "/api/products", token, map[string]any{
		"name":  "Rice 5kg",
		"price": "68000",
		"stock": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodGet, "/api/products/low-stock?threshold=5", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	products, ok := envelope["data"].([]any)
	require.True(t, ok)
	assert.Len(t, products, 1)

	// Bad payloads map to 400.
	rec = doJSON(t, app, http.MethodPost, "/api/products", token, map[string]any{
		"name":  "Bad",
		"price": "-1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
