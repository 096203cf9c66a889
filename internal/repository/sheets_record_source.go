package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RohanBhoge/whatsapp-api/config"
	"github.com/RohanBhoge/whatsapp-api/internal/models"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/RohanBhoge/whatsapp-api/pkg/logger"
	"github.com/RohanBhoge/whatsapp-api/pkg/metrics"
	"go.uber.org/zap"
)

// SheetsRecordSource reads and appends rows of the configured Google Sheet.
// All fetch failures (missing credentials, unresolved spreadsheet, API errors)
// collapse into ErrSheetUnavailable; the detail is logged, not surfaced.
type SheetsRecordSource struct {
	client SheetsAPI
	cfg    config.SheetsConfig
}

// NewSheetsRecordSource creates a record source. client may be nil when
// GOOGLE_CREDENTIALS is not configured; every operation then reports the
// sheet as unavailable instead of failing process startup.
func NewSheetsRecordSource(client SheetsAPI, cfg config.SheetsConfig) *SheetsRecordSource {
	return &SheetsRecordSource{
		client: client,
		cfg:    cfg,
	}
}

func (s *SheetsRecordSource) FetchAll(ctx context.Context) ([]models.Record, error) {
	start := time.Now()
	operation := "fetchAll"

	if s.client == nil {
		s.recordMetrics(operation, "error", start)
		logger.Error("Cannot fetch records: GOOGLE_CREDENTIALS not configured")
		return nil, apperrors.SheetUnavailableError(errors.New("sheets client not initialized"))
	}

	spreadsheetID, err := s.resolveSpreadsheetID(ctx)
	if err != nil {
		s.recordMetrics(operation, "error", start)
		logger.Error("Failed to resolve spreadsheet",
			zap.Error(err),
			zap.String("sheet_name", s.cfg.SpreadsheetName))
		return nil, apperrors.SheetUnavailableError(err)
	}

	records, err := s.client.FetchRecords(ctx, spreadsheetID, s.cfg.WorksheetName)
	if err != nil {
		s.recordMetrics(operation, "error", start)
		logger.Error("Failed to fetch records from sheet",
			zap.Error(err),
			zap.String("spreadsheet_id", spreadsheetID),
			zap.String("worksheet", s.cfg.WorksheetName))
		return nil, apperrors.SheetUnavailableError(err)
	}

	s.recordMetrics(operation, "success", start)
	logger.Info("Fetched records from sheet",
		zap.String("worksheet", s.cfg.WorksheetName),
		zap.Int("count", len(records)))

	return records, nil
}

func (s *SheetsRecordSource) Append(ctx context.Context, record models.Record) error {
	start := time.Now()
	operation := "append"

	if s.client == nil {
		s.recordMetrics(operation, "error", start)
		return apperrors.SheetUnavailableError(errors.New("sheets client not initialized"))
	}
	if s.cfg.SpreadsheetID == "" {
		s.recordMetrics(operation, "error", start)
		return apperrors.MissingConfigError("SHEET_ID")
	}

	if err := s.client.AppendRecord(ctx, s.cfg.SpreadsheetID, s.cfg.WorksheetName, record); err != nil {
		s.recordMetrics(operation, "error", start)
		logger.Error("Failed to append row to sheet",
			zap.Error(err),
			zap.String("spreadsheet_id", s.cfg.SpreadsheetID),
			zap.String("worksheet", s.cfg.WorksheetName))
		return apperrors.SheetUnavailableError(err)
	}

	s.recordMetrics(operation, "success", start)
	logger.Info("Appended row to sheet",
		zap.String("spreadsheet_id", s.cfg.SpreadsheetID),
		zap.String("worksheet", s.cfg.WorksheetName))

	return nil
}

// resolveSpreadsheetID prefers the configured ID and falls back to a Drive
// lookup by name, the way gspread's open-by-title works.
func (s *SheetsRecordSource) resolveSpreadsheetID(ctx context.Context) (string, error) {
	if s.cfg.SpreadsheetID != "" {
		return s.cfg.SpreadsheetID, nil
	}
	if s.cfg.SpreadsheetName == "" {
		return "", apperrors.MissingConfigError("SHEET_ID or SHEET_NAME")
	}
	return s.client.FindByName(ctx, s.cfg.SpreadsheetName)
}

func (s *SheetsRecordSource) recordMetrics(operation, status string, start time.Time) {
	duration := metrics.MeasureDuration(start)
	metrics.SheetsRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.SheetsRequestTotal.WithLabelValues(operation, status).Inc()
}
