package user

import (
	"net/http"

	"pulsefit/internal/api"
	"pulsefit/internal/auth"
	"pulsefit/internal/logger"
	"pulsefit/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Sync the authenticated identity
// @Description  Idempotent upsert of the local user row keyed by the identity provider's subject id.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.OKResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/users/sync [post]
func (h *Handler) Sync(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if _, err := h.service.Sync(c.Request.Context(), ident); err != nil {
		logger.Error("failed to sync user", "subject", ident.Subject, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to sync user"})
		return
	}

	metrics.RecordUserSync()
	c.JSON(http.StatusOK, api.OKResponse{OK: true})
}
