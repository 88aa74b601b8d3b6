package auth

import (
	"net/http"
	"os"

	"hr-dashboard/internal/shared/apperror"
	"hr-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "session_token"
	RefreshCookieName = "refresh_token"

	sessionCookieMaxAge = 60 * 60 * 24 * 7  // 7 hari
	refreshCookieMaxAge = 60 * 60 * 24 * 30 // 30 hari
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	data, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("login failed",
			zap.String("username", req.Username),
			zap.Int("status", httpErr.Status),
		)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	setSessionCookies(c, data.AccessToken, data.RefreshToken)

	h.logger.Info("login success", zap.Int64("user_id", data.User.ID))
	response.Success(c, http.StatusOK, "Login successful", data)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		if cookie, err := c.Cookie(RefreshCookieName); err == nil {
			refreshToken = cookie
		}
	}
	if refreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "Refresh token is required")
		return
	}

	data, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	setSessionCookies(c, data.AccessToken, data.RefreshToken)
	response.Success(c, http.StatusOK, "Token refreshed", data)
}

func (h *Handler) Logout(c *gin.Context) {
	clearSessionCookies(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	if refreshToken != "" {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     RefreshCookieName,
			Value:    refreshToken,
			Path:     "/",
			MaxAge:   refreshCookieMaxAge,
			HttpOnly: true,
			Secure:   isProd,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func clearSessionCookies(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"

	for _, name := range []string{SessionCookieName, RefreshCookieName} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   isProd,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
