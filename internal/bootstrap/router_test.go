package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batuhansemiz/portfolio-backend/internal/auth"
	"github.com/batuhansemiz/portfolio-backend/internal/session"
)

type rejectAllVerifier struct{}

func (rejectAllVerifier) Verify(context.Context, string) (*auth.Identity, error) {
	return nil, auth.ErrInvalidToken
}

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return BuildRouter(RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     "test",
		Origins:     []string{"https://example.com"},
		Store:       nil, // exercises the unavailable-store path
		Verifier:    rejectAllVerifier{},
		Sessions:    session.NewManager(session.NewMemoryStore(), time.Hour, "secret"),
	})
}

func TestRootRedirectsToAdminLogin(t *testing.T) {
	r := buildTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestProjectsWithoutStore(t *testing.T) {
	r := buildTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error: database connection unavailable", w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
	// httptest defaults Host to example.com, which would make this Origin
	// same-origin and bypass the CORS middleware entirely.
	req.Host = "api.internal.test"
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))

	// disallowed origin gets no CORS headers
	req = httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthRoute(t *testing.T) {
	r := buildTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}
