package branding

import (
	"net/http"

	"doctrack/internal/shared/apperror"
	"doctrack/internal/shared/contextutil"
	"doctrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("branding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branding.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Get(ctx)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Update(ctx, req)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
