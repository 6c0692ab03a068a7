package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedEcho(t *testing.T, token string) http.Handler {
	t.Helper()
	return RequireStaff(token)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "staff", identity.Role)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireStaffWithValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/faqs", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()

	protectedEcho(t, "secret-token").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireStaffRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/faqs", nil)
	rec := httptest.NewRecorder()

	protectedEcho(t, "secret-token").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaffRejectsWrongToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/faqs", nil)
	req.Header.Set("Authorization", "Bearer adivinado")
	rec := httptest.NewRecorder()

	protectedEcho(t, "secret-token").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Un token vacío en la configuración cierra el CMS entero: nunca debe
// interpretarse como "sin autenticación".
func TestRequireStaffEmptyConfigRejectsEverything(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/faqs", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	protectedEcho(t, "").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func optionalEcho(token string, sawIdentity *bool) http.Handler {
	return OptionalStaff(token)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, *sawIdentity = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
}

func TestOptionalStaffInjectsIdentityWithValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()

	var sawIdentity bool
	optionalEcho("secret-token", &sawIdentity).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawIdentity)
}

// Sin cabecera, o con un token malo, la petición sigue adelante como
// anónima: las lecturas públicas nunca devuelven 401.
func TestOptionalStaffPassesThroughAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	rec := httptest.NewRecorder()

	var sawIdentity bool
	optionalEcho("secret-token", &sawIdentity).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawIdentity)
}

func TestOptionalStaffIgnoresWrongToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	req.Header.Set("Authorization", "Bearer adivinado")
	rec := httptest.NewRecorder()

	var sawIdentity bool
	optionalEcho("secret-token", &sawIdentity).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawIdentity)
}

func TestOptionalStaffEmptyConfigStaysAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	var sawIdentity bool
	optionalEcho("", &sawIdentity).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawIdentity)
}

func TestIdentityFromAnonymousContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/faqs", nil)

	_, ok := IdentityFrom(req.Context())

	assert.False(t, ok)
}
