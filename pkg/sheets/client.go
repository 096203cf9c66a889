package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
)

// Client wraps the Google Sheets and Drive services. Credentials are handed
// to the API client in memory; no key material ever touches disk.
type Client struct {
	sheets *sheetsapi.Service
	drive  *drive.Service
}

// NewClient creates a Sheets client from raw service-account key JSON.
func NewClient(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	if len(credentialsJSON) == 0 {
		return nil, apperrors.MissingConfigError("GOOGLE_CREDENTIALS")
	}

	sheetsService, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}

	driveService, err := drive.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(drive.DriveMetadataReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive client: %w", err)
	}

	return &Client{
		sheets: sheetsService,
		drive:  driveService,
	}, nil
}

// FindByName resolves a spreadsheet ID from its human-readable name via the
// Drive API.
func (c *Client) FindByName(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`),
	)

	list, err := c.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("spreadsheet lookup failed: %w", err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found", name)
	}

	return list.Files[0].Id, nil
}

// FetchRecords reads the whole worksheet and returns one Record per data row,
// keyed by the header row. A worksheet with no data rows yields an empty
// slice, not an error.
func (c *Client) FetchRecords(ctx context.Context, spreadsheetID, worksheet string) ([]models.Record, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, quoteRange(worksheet)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("worksheet read failed: %w", err)
	}

	return rowsToRecords(resp.Values), nil
}

// HeaderRow returns the first row of the worksheet.
func (c *Client) HeaderRow(ctx context.Context, spreadsheetID, worksheet string) ([]string, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, quoteRange(worksheet)+"!1:1").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("header read failed: %w", err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("worksheet %q has no header row", worksheet)
	}

	headers := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		headers[i] = cellString(cell)
	}
	return headers, nil
}

// AppendRecord appends one row to the worksheet, ordering values by the
// sheet's existing header row. Headers absent from the record default to "".
func (c *Client) AppendRecord(ctx context.Context, spreadsheetID, worksheet string, record models.Record) error {
	headers, err := c.HeaderRow(ctx, spreadsheetID, worksheet)
	if err != nil {
		return err
	}

	row := make([]interface{}, len(headers))
	for i, header := range headers {
		row[i] = record.Get(header)
	}

	rq := sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}

	if _, err := c.sheets.Spreadsheets.Values.Append(spreadsheetID, quoteRange(worksheet), &rq).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("row append failed: %w", err)
	}

	return nil
}

// quoteRange quotes a worksheet name for use in an A1 range so names with
// spaces resolve correctly.
func quoteRange(worksheet string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'"
}

// rowsToRecords maps raw cell values into Records using the first row as the
// key set. Rows shorter than the header are padded with empty strings.
func rowsToRecords(rows [][]interface{}) []models.Record {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = cellString(cell)
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(models.Record, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = cellString(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
