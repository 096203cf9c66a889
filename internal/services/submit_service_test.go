package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
)

func TestSubmitRequiresSheetID(t *testing.T) {
	records := new(mockRecordSource)

	cfg := fullConfig()
	cfg.Sheets.SpreadsheetID = ""

	_, err := NewSubmitService(records, cfg).SubmitRecord(context.Background(), validRecord("A100"))

	assert.ErrorIs(t, err, apperrors.ErrMissingConfig)
	records.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitBuildsPayloadAndAppends(t *testing.T) {
	record := validRecord("A100")

	records := new(mockRecordSource)
	records.On("Append", mock.Anything, record).Return(nil)

	result, err := NewSubmitService(records, fullConfig()).SubmitRecord(context.Background(), record)
	require.NoError(t, err)

	assert.Equal(t, "success", result.SheetWriteStatus)
	assert.Equal(t, "919270334724", result.IntegratedNumber)

	tac := result.Payload.Template.ToAndComponents
	require.Len(t, tac, 1)
	assert.Equal(t, []string{"919876543210"}, tac[0].To)
	assert.Equal(t, "https://mahainformatics.com/files/andheri/A100.pdf", tac[0].Components.Header.Value)
	records.AssertExpectations(t)
}

func TestSubmitReportsAppendFailureInBody(t *testing.T) {
	records := new(mockRecordSource)
	records.On("Append", mock.Anything, mock.Anything).
		Return(apperrors.SheetUnavailableError(errors.New("googleapi: 500")))

	result, err := NewSubmitService(records, fullConfig()).SubmitRecord(context.Background(), validRecord("A100"))

	// The write failure is carried in the response, not raised as an error
	require.NoError(t, err)
	assert.Equal(t, "failure", result.SheetWriteStatus)
	assert.Equal(t, "919270334724", result.IntegratedNumber)
}

func TestSubmitRejectsInvalidRecordAfterAppend(t *testing.T) {
	invalid := models.Record{models.FieldApplicantName: "no phone or id"}

	records := new(mockRecordSource)
	records.On("Append", mock.Anything, invalid).Return(nil)

	_, err := NewSubmitService(records, fullConfig()).SubmitRecord(context.Background(), invalid)

	// The append happens before validation, so the row is persisted even
	// though the payload cannot be built
	assert.ErrorIs(t, err, apperrors.ErrMissingRequiredFields)
	records.AssertNumberOfCalls(t, "Append", 1)
}
