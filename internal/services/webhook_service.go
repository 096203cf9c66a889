package services

import (
	"context"

	"github.com/RohanBhoge/whatsapp-api/config"
	"github.com/RohanBhoge/whatsapp-api/internal/models"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/RohanBhoge/whatsapp-api/pkg/logger"
	"github.com/RohanBhoge/whatsapp-api/pkg/whatsapp"
	"go.uber.org/zap"
)

// WebhookService sends one template message per inbound row-change webhook.
// The provider's status code is handed back to the caller unchanged.
type WebhookService struct {
	sender MessageSender
	config *config.Config
}

func NewWebhookService(sender MessageSender, cfg *config.Config) WebhookServiceInterface {
	return &WebhookService{
		sender: sender,
		config: cfg,
	}
}

func (s *WebhookService) ProcessRowUpdate(ctx context.Context, req *models.RowUpdateRequest) (*whatsapp.Outcome, error) {
	// Fail closed before any network I/O when the Cloud API is unconfigured
	if s.config.Provider.WhatsAppAccessToken == "" || s.config.Provider.WhatsAppPhoneNumberID == "" {
		return nil, apperrors.MissingConfigError("WHATSAPP_ACCESS_TOKEN/WHATSAPP_PHONE_NUMBER_ID")
	}

	record := models.RecordFromJSON(req.NewRowData)

	applicant, err := record.Applicant()
	if err != nil {
		logger.Warn("Rejecting row update with missing required fields",
			zap.Any("row_index", req.RowIndex))
		return nil, err
	}

	logger.Info("Processing row update",
		zap.Any("row_index", req.RowIndex),
		zap.String("application_id", applicant.ApplicationID))

	payload := whatsapp.NewTemplateMessage(applicant, applicant.Name)

	endpoint := whatsapp.MessagesEndpoint(s.config.Provider.WhatsAppPhoneNumberID)
	outcome, err := s.sender.Send(ctx, endpoint, s.config.Provider.WhatsAppAccessToken, payload)
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
