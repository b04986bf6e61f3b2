package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avdeyev/go-journal-keeper/internal/logger"
	"github.com/avdeyev/go-journal-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{
		AuthService: &mockAuthService{},
	}, logger.Nop())
	return h.Init()
}

func TestInit_ReturnsRouter(t *testing.T) {
	require.NotNil(t, newTestRouter(t))
}

// TestInit_PublicRoutesRegistered sends requests that fail before touching
// the service layer, proving each public route is wired.
func TestInit_PublicRoutesRegistered(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/healthcheck", "", http.StatusOK},
		// malformed JSON is rejected before the service is called
		{http.MethodPost, "/auth/register", "{", http.StatusBadRequest},
		{http.MethodPost, "/auth/login", "{", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestInit_ProtectedRoutesRequireAuth verifies the auth middleware guards the
// journal group: without a token every route answers 401, never 404.
func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/journals/"},
		{http.MethodGet, "/journals/"},
		{http.MethodGet, "/journals/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestInit_UnsupportedMethodHidden verifies the MethodNotAllowed override:
// a registered path hit with the wrong method answers 404, not 405.
func TestInit_UnsupportedMethodHidden(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/healthcheck", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestInit_TraceIDHeaderSet verifies every response carries an X-Trace-ID.
func TestInit_TraceIDHeaderSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// TestInit_EchoesInboundTraceID verifies a caller-supplied trace id is reused.
func TestInit_EchoesInboundTraceID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(traceIDHeader, "caller-trace-42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "caller-trace-42", rec.Header().Get(traceIDHeader))
}
