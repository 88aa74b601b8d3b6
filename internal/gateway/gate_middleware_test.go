package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-dashboard/internal/auth"
	"hr-dashboard/internal/gateway"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func gateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gateway.SessionGate())

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/", ok)
	router.GET("/login", ok)
	router.GET("/employees/:id", ok)
	router.GET("/static/app.js", ok)
	router.GET("/favicon.ico", ok)
	router.POST("/api/ui/login", ok)

	return router
}

func requestWithSession(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "token"})
	return req
}

func TestSessionGate_ProtectedPathWithoutSessionRedirectsToLogin(t *testing.T) {
	router := gateRouter()

	for _, target := range []string{"/", "/employees/3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}
}

func TestSessionGate_ProtectedPathWithSessionPasses(t *testing.T) {
	router := gateRouter()
	w := httptest.NewRecorder()

	router.ServeHTTP(w, requestWithSession(http.MethodGet, "/employees/3"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGate_LoginWithSessionRedirectsHome(t *testing.T) {
	router := gateRouter()
	w := httptest.NewRecorder()

	router.ServeHTTP(w, requestWithSession(http.MethodGet, "/login"))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestSessionGate_LoginWithoutSessionPasses(t *testing.T) {
	router := gateRouter()
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGate_AssetAndAPIPathsBypassGate(t *testing.T) {
	router := gateRouter()

	for _, tc := range []struct {
		method string
		target string
	}{
		{http.MethodGet, "/static/app.js"},
		{http.MethodGet, "/favicon.ico"},
		{http.MethodPost, "/api/ui/login"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))

		assert.Equal(t, http.StatusOK, w.Code, tc.target)
	}
}
