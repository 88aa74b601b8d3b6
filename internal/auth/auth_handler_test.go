package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-dashboard/internal/auth"
	autherrors "hr-dashboard/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	LoginFn   func(ctx context.Context, username, password string) (auth.LoginData, error)
	RefreshFn func(ctx context.Context, refreshToken string) (auth.LoginData, error)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (auth.LoginData, error) {
	return f.LoginFn(ctx, username, password)
}
func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.LoginData, error) {
	return f.RefreshFn(ctx, refreshToken)
}

func postJSON(r *gin.Engine, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success sets both cookies", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (auth.LoginData, error) {
				assert.Equal(t, "admin", username)
				assert.Equal(t, "password", password)
				return auth.LoginData{
					User:         auth.LoginUser{ID: 1, Username: "admin"},
					AccessToken:  "at-1",
					RefreshToken: "rt-1",
				}, nil
			},
		}

		r := gin.New()
		r.POST("/auth/login", auth.NewHandler(svc).Login)

		w := postJSON(r, "/auth/login", `{"username":"admin","password":"password","loginType":"admin"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Success bool           `json:"success"`
			Message string         `json:"message"`
			Data    auth.LoginData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, "Login successful", env.Message)
		assert.Equal(t, "at-1", env.Data.AccessToken)

		cookies := map[string]*http.Cookie{}
		for _, cookie := range w.Result().Cookies() {
			cookies[cookie.Name] = cookie
		}
		require.Contains(t, cookies, auth.SessionCookieName)
		require.Contains(t, cookies, auth.RefreshCookieName)
		assert.Equal(t, "at-1", cookies[auth.SessionCookieName].Value)
		assert.True(t, cookies[auth.SessionCookieName].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[auth.SessionCookieName].SameSite)
		assert.Equal(t, 7*24*60*60, cookies[auth.SessionCookieName].MaxAge)
		assert.Equal(t, 30*24*60*60, cookies[auth.RefreshCookieName].MaxAge)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (auth.LoginData, error) {
				return auth.LoginData{}, autherrors.ErrInvalidCredentials
			},
		}

		r := gin.New()
		r.POST("/auth/login", auth.NewHandler(svc).Login)

		w := postJSON(r, "/auth/login", `{"username":"admin","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "Try admin/password")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("missing body fields", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (auth.LoginData, error) {
				t.Fatal("service should not be called")
				return auth.LoginData{}, nil
			},
		}

		r := gin.New()
		r.POST("/auth/login", auth.NewHandler(svc).Login)

		w := postJSON(r, "/auth/login", `{"username":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("token from cookie when body empty", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshFn: func(ctx context.Context, refreshToken string) (auth.LoginData, error) {
				assert.Equal(t, "rt-cookie", refreshToken)
				return auth.LoginData{AccessToken: "at-2", RefreshToken: "rt-2"}, nil
			},
		}

		r := gin.New()
		r.POST("/auth/refresh", auth.NewHandler(svc).Refresh)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: auth.RefreshCookieName, Value: "rt-cookie"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "at-2")
	})

	t.Run("no token anywhere", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshFn: func(ctx context.Context, refreshToken string) (auth.LoginData, error) {
				t.Fatal("service should not be called")
				return auth.LoginData{}, nil
			},
		}

		r := gin.New()
		r.POST("/auth/refresh", auth.NewHandler(svc).Refresh)

		w := postJSON(r, "/auth/refresh", `{}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/auth/logout", auth.NewHandler(&fakeAuthService{}).Logout)

	w := postJSON(r, "/auth/logout", ``)

	assert.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		assert.Less(t, cookie.MaxAge, 0, cookie.Name)
	}
}
