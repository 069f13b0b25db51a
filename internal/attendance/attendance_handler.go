package attendance

import (
	"net/http"
	"strconv"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
	"github.com/tech1210/empthics-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Punch(c *gin.Context) {
	orgID := c.GetString("org_id")
	employeeID := c.GetString("employee_id")

	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Punch(c.Request.Context(), orgID, employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	orgID := c.GetString("org_id")
	employeeID := c.GetString("employee_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter := SummaryFilter{
		FromDate: c.Query("from_date"),
		ToDate:   c.Query("to_date"),
		Status:   c.Query("status"),
		Page:     page,
		Limit:    limit,
	}

	resp, err := h.service.Summary(c.Request.Context(), orgID, employeeID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.Total, resp.Page, resp.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetAll(c *gin.Context) {
	orgID := c.GetString("org_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter := OrgFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
		FromDate:   c.Query("from_date"),
		ToDate:     c.Query("to_date"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	rows, total, err := h.service.GetAll(c.Request.Context(), orgID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, filter.Page, filter.Limit)
	response.Success(c, http.StatusOK, rows, &meta)
}
