package equipment

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
	l := zap.L().Named("equipment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("equipment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("equipment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create equipment")
	var req SaveEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create equipment validation failed", zap.Error(err))
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
	h.logger.Debug("http update equipment", zap.String("equipment_id", id))
	var req SaveEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update equipment validation failed", zap.Error(err))
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
	h.logger.Debug("http get all equipment")

	resp, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Optional filters used by the inventory screen.
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		filtered := make([]Equipment, 0, len(resp))
		for _, eq := range resp {
			if eq.Status == status {
				filtered = append(filtered, eq)
			}
		}
		resp = filtered
	}
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		filtered := make([]Equipment, 0, len(resp))
		for _, eq := range resp {
			if eq.Type == typ {
				filtered = append(filtered, eq)
			}
		}
		resp = filtered
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http get equipment by id", zap.String("equipment_id", id))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
