package handlers

import (
	"net/http"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/internal/services"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	service services.WebhookServiceInterface
}

func NewWebhookHandler(service services.WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// HandleRowUpdate processes a single sheet row delivered by webhook and
// relays the messaging provider's status code as this endpoint's own response
// status. Validation failures are 400, configuration and transport failures 500.
func (h *WebhookHandler) HandleRowUpdate(c *gin.Context) {
	var req models.RowUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Missing required data.", ParseValidationErrors(err), err)
		return
	}

	outcome, err := h.service.ProcessRowUpdate(c.Request.Context(), &req)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrMissingRequiredFields):
			respondError(c, http.StatusBadRequest, "Missing required data.", err)
		case apperrors.Is(err, apperrors.ErrMissingConfig):
			respondError(c, http.StatusInternalServerError, "Server configuration error.", err)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to send WhatsApp message.", err)
		}
		return
	}

	if outcome.Success {
		c.JSON(outcome.StatusCode, gin.H{"status": "sent", "provider_status": outcome.StatusCode})
		return
	}

	attachError(c, apperrors.InternalError("provider rejected message"))
	c.JSON(outcome.StatusCode, gin.H{"status": "failed", "provider_status": outcome.StatusCode})
}
