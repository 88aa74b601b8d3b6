package gateway

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"hr-dashboard/internal/auth"
	"hr-dashboard/internal/client"
	"hr-dashboard/internal/shared/listquery"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionCookieMaxAge = 7 * 24 * 60 * 60
	refreshCookieMaxAge = 30 * 24 * 60 * 60
)

// EmployeeAPI adalah potongan client yang dipakai gateway; interface di
// sisi consumer supaya handler bisa dites dengan fake.
type EmployeeAPI interface {
	ListEmployees(ctx context.Context, creds client.Credentials, q listquery.Query) (client.ListResult, error)
	GetEmployee(ctx context.Context, creds client.Credentials, id int64) (*client.Employee, error)
	CreateEmployee(ctx context.Context, creds client.Credentials, payload client.CreateEmployeePayload) (*client.Employee, error)
	Login(ctx context.Context, username, password string) (client.LoginData, error)
}

type Handler struct {
	api      EmployeeAPI
	sessions *client.SessionHolder
	search   *SearchCoordinator
	logger   *zap.Logger
}

func NewHandler(api EmployeeAPI, sessions *client.SessionHolder, search *SearchCoordinator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("gateway_handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gateway_handler")
	}
	return &Handler{api: api, sessions: sessions, search: search, logger: l}
}

type loginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login menukar kredensial dengan token backend, menyimpan sesi, dan
// memasang cookie sesi untuk route gating.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	data, err := h.api.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if msg, ok := client.IsFetchFailed(err); ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	h.sessions.Set(client.Credentials{
		AccessToken: data.AccessToken,
		UserID:      data.User.ID,
	})
	setGatewayCookies(c, data.AccessToken, data.RefreshToken)

	c.JSON(http.StatusOK, gin.H{"success": true, "user": data.User})
}

func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Clear()
	clearGatewayCookies(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListPage mengembalikan view state lengkap halaman list. Parameter
// query mentah dinormalisasi dulu, jadi URL yang diutak-atik manual
// tetap menghasilkan fetch yang valid.
func (h *Handler) ListPage(c *gin.Context) {
	creds := h.sessions.Current()

	q := listquery.Normalize(listquery.FromGin(c))

	result, err := h.api.ListEmployees(c.Request.Context(), creds, q)
	if err != nil {
		h.renderListError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewListViewState(result, q.SortBy, q.SortOrder, q.Search))
}

func (h *Handler) renderListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, client.ErrStaleResponse):
		// Sudah ada fetch yang lebih baru; tidak ada yang perlu di-render.
		c.Status(http.StatusNoContent)
	default:
		msg, ok := client.IsFetchFailed(err)
		if !ok {
			h.logger.Error("list fetch failed", zap.Error(err))
			msg = "Failed to fetch employees"
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	}
}

// DetailPage tidak membedakan id rusak, record hilang, atau backend
// tumbang: semuanya menjadi not-found state.
func (h *Handler) DetailPage(c *gin.Context) {
	creds := h.sessions.Current()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, DetailViewState{Found: false})
		return
	}

	emp, _ := h.api.GetEmployee(c.Request.Context(), creds, id)
	if emp == nil {
		c.JSON(http.StatusNotFound, DetailViewState{Found: false})
		return
	}

	c.JSON(http.StatusOK, DetailViewState{Found: true, Employee: emp})
}

type createForm struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Address       string `json:"address"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	Status        string `json:"status"`
	DepartmentID  string `json:"departmentId"`
	PhotoURL      string `json:"photoUrl"`
	IDPhotoURL    string `json:"idPhotoUrl"`
	PersonalPhone string `json:"personalPhone"`
	WorkPhone     string `json:"workPhone"`
	PersonalEmail string `json:"personalEmail"`
	WorkEmail     string `json:"workEmail"`
}

func (f createForm) toDraft() client.CreateEmployeeDraft {
	return client.CreateEmployeeDraft{
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Address:       f.Address,
		DOB:           f.DOB,
		Gender:        f.Gender,
		MaritalStatus: f.MaritalStatus,
		Status:        f.Status,
		DepartmentID:  f.DepartmentID,
		PhotoURL:      f.PhotoURL,
		IDPhotoURL:    f.IDPhotoURL,
		PersonalPhone: f.PersonalPhone,
		WorkPhone:     f.WorkPhone,
		PersonalEmail: f.PersonalEmail,
		WorkEmail:     f.WorkEmail,
	}
}

// CreateEmployee menjalankan flow submit form: cek sesi dulu, lalu
// validasi semua field sekaligus, normalisasi, baru kirim ke backend.
func (h *Handler) CreateEmployee(c *gin.Context) {
	creds := h.sessions.Current()
	if err := client.ValidateActingUser(creds.UserID); err != nil {
		c.JSON(http.StatusUnauthorized, CreateViewState{Error: "User not found. Please login again."})
		return
	}

	var form createForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, CreateViewState{Error: "Invalid request body"})
		return
	}

	draft := form.toDraft()
	if violations := client.ValidateDraft(draft); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, CreateViewState{FieldErrors: violations})
		return
	}

	payload := client.NormalizeDraft(draft, creds.UserID)

	emp, err := h.api.CreateEmployee(c.Request.Context(), creds, payload)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, CreateViewState{Error: "Unauthorized"})
			return
		}
		msg, ok := client.IsFetchFailed(err)
		if !ok {
			h.logger.Error("create employee failed", zap.Error(err))
			msg = "Failed to create employee"
		}
		c.JSON(http.StatusBadGateway, CreateViewState{Error: msg})
		return
	}

	c.JSON(http.StatusCreated, CreateViewState{Created: true, Employee: emp})
}

type searchForm struct {
	Term string `json:"term"`
}

// SubmitSearch menerima keystroke; fetch baru berjalan setelah term
// stabil selama satu debounce window.
func (h *Handler) SubmitSearch(c *gin.Context) {
	var form searchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.search.Submit(form.Term)
	c.Status(http.StatusAccepted)
}

func (h *Handler) SearchResults(c *gin.Context) {
	state, ok := h.search.Latest()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, state)
}

// LoginPage hanya dilewati gate kalau belum ada sesi.
func (h *Handler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func setGatewayCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	if refreshToken != "" {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     auth.RefreshCookieName,
			Value:    refreshToken,
			Path:     "/",
			MaxAge:   refreshCookieMaxAge,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func clearGatewayCookies(c *gin.Context) {
	for _, name := range []string{auth.SessionCookieName, auth.RefreshCookieName} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
