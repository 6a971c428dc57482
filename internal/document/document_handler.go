package document

import (
	"net/http"
	"time"

	"doctrack/internal/middleware"
	"doctrack/internal/shared/apperror"
	"doctrack/internal/shared/contextutil"
	"doctrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyResultTTL = 24 * time.Hour

type Handler struct {
	svc    Service
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("document.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.handler")
	}
	return &Handler{svc: service, rdb: rdb, logger: l}
}

func (h *Handler) Submit(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.WriteError(c, apperror.ErrUnauthorized)
		return
	}

	var req SubmitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Submit(ctx, userID, req)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	if h.rdb != nil {
		middleware.StoreIdempotentResult(c, h.rdb, res, idempotencyResultTTL)
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetMine(ctx, userID)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetAssigned(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetAssigned(ctx, userID)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")
	id := c.Param("id")

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetByID(ctx, userID, role, id)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.UpdateStatus(ctx, userID, id, req)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) AddFile(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	var req AddFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.AddFile(ctx, userID, id, req)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}
