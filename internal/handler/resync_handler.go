package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Demma22/REMI-APP-sub000/internal/service/resync"
)

type ResyncRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ResyncHandler struct {
	resyncService *resync.Service
}

func NewResyncHandler(resyncService *resync.Service) *ResyncHandler {
	return &ResyncHandler{resyncService: resyncService}
}

// HandleResync fetches the user's record from the student store and replans
// both reminder categories from it.
func (h *ResyncHandler) HandleResync(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.resyncService.Resync(ctx, req.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "resync failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "resync_error", "failed to resync reminders from store")
		return
	}

	c.JSON(http.StatusOK, result)
}
