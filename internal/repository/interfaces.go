package repository

import (
	"context"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
)

// RecordSourceInterface provides access to the spreadsheet-backed record store.
type RecordSourceInterface interface {
	// FetchAll retrieves every data row of the configured worksheet. A
	// reachable but empty worksheet returns an empty slice, not an error.
	FetchAll(ctx context.Context) ([]models.Record, error)

	// Append writes one record as a new row, ordered by the sheet's header row.
	Append(ctx context.Context, record models.Record) error
}

// SheetsAPI is the subset of the Google Sheets client used by the record source.
type SheetsAPI interface {
	FindByName(ctx context.Context, name string) (string, error)
	FetchRecords(ctx context.Context, spreadsheetID, worksheet string) ([]models.Record, error)
	AppendRecord(ctx context.Context, spreadsheetID, worksheet string, record models.Record) error
}
