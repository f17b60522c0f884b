package backup

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Import payloads are whole-collection documents; cap them well above
// any realistic dataset.
const maxImportBytes = 8 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("backup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("backup request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Export streams the backup document as a downloadable file, named the
// same way the frontend names its export.
func (h *Handler) Export(c *gin.Context) {
	h.logger.Debug("http export backup")

	doc, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("erp-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) Import(c *gin.Context) {
	h.logger.Debug("http import backup")

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeImportError, "Failed to read import payload", nil)
		return
	}

	summary, err := h.service.Import(c.Request.Context(), raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler) Reset(c *gin.Context) {
	h.logger.Debug("http reset demo data")

	if err := h.service.Reset(c.Request.Context()); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Demo data restored"}, nil)
}
