package employee

import (
	"net/http"
	"strconv"

	"hr-dashboard/internal/shared/apperror"
	"hr-dashboard/internal/shared/listquery"
	"hr-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// List memakai normalizer: query param rusak tidak pernah memblokir list view.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	q := listquery.Normalize(listquery.FromGin(c))

	h.logger.Debug("http list employees",
		zap.Int("page", q.Page),
		zap.Int("limit", q.Limit),
		zap.String("sort_by", q.SortBy),
		zap.String("sort_order", q.SortOrder),
	)

	result, err := h.service.List(ctx, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, result.Records, result.Total, result.Page, result.Limit)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusNotFound, "Employee not found")
		return
	}

	h.logger.Debug("http get employee by id", zap.Int64("employee_id", id))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		fieldErrors := apperror.MapValidationErrors(err)
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, response.Envelope{
				Success: false,
				Message: "Validation failed",
				Data:    gin.H{"fieldErrors": fieldErrors},
			})
			return
		}
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Employee created", resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusNotFound, "Employee not found")
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Validation failed")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee updated", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusNotFound, "Employee not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deleted", gin.H{"deleted": true})
}
