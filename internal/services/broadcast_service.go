package services

import (
	"context"

	"github.com/RohanBhoge/whatsapp-api/config"
	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/internal/repository"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/RohanBhoge/whatsapp-api/pkg/logger"
	"github.com/RohanBhoge/whatsapp-api/pkg/metrics"
	"github.com/RohanBhoge/whatsapp-api/pkg/whatsapp"
	"go.uber.org/zap"
)

// BroadcastService fetches every row of the sheet and sends one document
// message per valid record, sequentially. One record's failure never aborts
// the remaining records.
type BroadcastService struct {
	records repository.RecordSourceInterface
	sender  MessageSender
	config  *config.Config
}

func NewBroadcastService(records repository.RecordSourceInterface, sender MessageSender, cfg *config.Config) BroadcastServiceInterface {
	return &BroadcastService{
		records: records,
		sender:  sender,
		config:  cfg,
	}
}

func (s *BroadcastService) Broadcast(ctx context.Context) (*models.BroadcastResult, error) {
	// Fail closed before any network I/O when the aggregator is unconfigured
	if s.config.Provider.ClientAPIEndpoint == "" || s.config.Provider.ClientAPIKey == "" {
		return nil, apperrors.MissingConfigError("CLIENT_API_ENDPOINT/CLIENT_API_KEY")
	}

	records, err := s.records.FetchAll(ctx)
	if err != nil {
		metrics.BroadcastRuns.WithLabelValues("error").Inc()
		return nil, err
	}

	result := &models.BroadcastResult{Processed: len(records)}

	for i, record := range records {
		applicant, err := record.Applicant()
		if err != nil {
			logger.Warn("Skipping record with missing required fields",
				zap.Int("row", i+1))
			result.Failed++
			metrics.BroadcastRecords.WithLabelValues("rejected").Inc()
			continue
		}

		payload := whatsapp.NewDocumentMessage(applicant)

		outcome, err := s.sender.Send(ctx, s.config.Provider.ClientAPIEndpoint, s.config.Provider.ClientAPIKey, payload)
		if err != nil {
			logger.Error("Failed to send message",
				zap.Error(err),
				zap.String("application_id", applicant.ApplicationID))
			result.Failed++
			metrics.BroadcastRecords.WithLabelValues("failed").Inc()
			continue
		}

		if outcome.Success {
			logger.Info("Message sent",
				zap.String("application_id", applicant.ApplicationID),
				zap.Int("status_code", outcome.StatusCode))
			result.Sent++
			metrics.BroadcastRecords.WithLabelValues("sent").Inc()
		} else {
			logger.Warn("Provider rejected message",
				zap.String("application_id", applicant.ApplicationID),
				zap.Int("status_code", outcome.StatusCode),
				zap.String("response", outcome.Body))
			result.Failed++
			metrics.BroadcastRecords.WithLabelValues("failed").Inc()
		}
	}

	metrics.BroadcastRuns.WithLabelValues("success").Inc()
	logger.Info("Broadcast complete",
		zap.Int("processed", result.Processed),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed))

	return result, nil
}
