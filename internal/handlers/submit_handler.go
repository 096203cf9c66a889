package handlers

import (
	"net/http"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/internal/services"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

type SubmitHandler struct {
	service services.SubmitServiceInterface
}

func NewSubmitHandler(service services.SubmitServiceInterface) *SubmitHandler {
	return &SubmitHandler{service: service}
}

// HandleSubmitData accepts a raw record, appends it to the configured sheet
// and returns the built payload with the append status attached.
func (h *SubmitHandler) HandleSubmitData(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || len(body) == 0 {
		respondError(c, http.StatusBadRequest, "Invalid JSON received or missing body.", err)
		return
	}

	result, err := h.service.SubmitRecord(c.Request.Context(), models.RecordFromJSON(body))
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrMissingConfig):
			respondError(c, http.StatusInternalServerError, "Server configuration missing SHEET_ID.", err)
		case apperrors.Is(err, apperrors.ErrMissingRequiredFields):
			respondError(c, http.StatusBadRequest, "Failed to construct WhatsApp payload (missing mobile/app ID).", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
