package serviceorder

import (
	"net/http"
	"strings"

	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("serviceorder.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("serviceorder.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("service order request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create service order")
	var req SaveServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create service order validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), req, "")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update service order", zap.String("order_id", id))
	var req SaveServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update service order validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), req, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http get all service orders")

	resp, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Optional filters used by the order board.
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		filtered := make([]ServiceOrder, 0, len(resp))
		for _, o := range resp {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		resp = filtered
	}
	if priority := strings.TrimSpace(c.Query("priority")); priority != "" {
		filtered := make([]ServiceOrder, 0, len(resp))
		for _, o := range resp {
			if o.Priority == priority {
				filtered = append(filtered, o)
			}
		}
		resp = filtered
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http get service order by id", zap.String("order_id", id))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
