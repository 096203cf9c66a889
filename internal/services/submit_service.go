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

// SubmitResult is the built payload plus the sheet append status, returned
// verbatim to the caller.
type SubmitResult struct {
	whatsapp.DocumentMessage
	SheetWriteStatus string `json:"sheet_write_status"`
}

// SubmitService appends a submitted record to the configured sheet and builds
// its document message. The append happens before the record is validated, so
// a rejected record may already be persisted as a row.
type SubmitService struct {
	records repository.RecordSourceInterface
	config  *config.Config
}

func NewSubmitService(records repository.RecordSourceInterface, cfg *config.Config) SubmitServiceInterface {
	return &SubmitService{
		records: records,
		config:  cfg,
	}
}

func (s *SubmitService) SubmitRecord(ctx context.Context, record models.Record) (*SubmitResult, error) {
	if s.config.Sheets.SpreadsheetID == "" {
		return nil, apperrors.MissingConfigError("SHEET_ID")
	}

	writeStatus := "success"
	if err := s.records.Append(ctx, record); err != nil {
		// A failed append is reported in the response body, not as an error
		logger.Error("Sheet write failed for submitted record", zap.Error(err))
		writeStatus = "failure"
	}
	metrics.SheetSubmissions.WithLabelValues(writeStatus).Inc()

	applicant, err := record.Applicant()
	if err != nil {
		return nil, err
	}

	payload := whatsapp.NewDocumentMessage(applicant)

	return &SubmitResult{
		DocumentMessage:  *payload,
		SheetWriteStatus: writeStatus,
	}, nil
}
