package handlers

import (
	"net/http"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/internal/services"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

type SheetUpdateHandler struct {
	service services.BroadcastServiceInterface
}

func NewSheetUpdateHandler(service services.BroadcastServiceInterface) *SheetUpdateHandler {
	return &SheetUpdateHandler{service: service}
}

// HandleSheetUpdate triggers a full fetch-and-send run. The request body is
// ignored; the webhook is only a trigger. Per-record failures are reported in
// the aggregate body while the outer status stays 200.
func (h *SheetUpdateHandler) HandleSheetUpdate(c *gin.Context) {
	result, err := h.service.Broadcast(c.Request.Context())
	if err != nil {
		if apperrors.Is(err, apperrors.ErrMissingConfig) {
			respondError(c, http.StatusInternalServerError, "Server configuration error.", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve data from Google Sheets.", err)
		return
	}

	c.JSON(http.StatusOK, models.BroadcastResponse{
		Status:                  "processing_complete",
		Message:                 "Sheet data fetched and processing initiated.",
		RecordsProcessed:        result.Processed,
		RecordsSentSuccessfully: result.Sent,
		RecordsFailed:           result.Failed,
	})
}
