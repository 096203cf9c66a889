package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
)

func TestRowsToRecords(t *testing.T) {
	rows := [][]interface{}{
		{"Mobile No", "Application ID", "Applicant Name"},
		{"9876543210", "A100", "Asha"},
		{"9876543211", "A101"}, // short row, padded
	}

	records := rowsToRecords(rows)
	require.Len(t, records, 2)

	assert.Equal(t, models.Record{
		"Mobile No":      "9876543210",
		"Application ID": "A100",
		"Applicant Name": "Asha",
	}, records[0])

	assert.Equal(t, models.Record{
		"Mobile No":      "9876543211",
		"Application ID": "A101",
		"Applicant Name": "",
	}, records[1])
}

func TestRowsToRecordsSkipsEmptyHeaders(t *testing.T) {
	rows := [][]interface{}{
		{"Mobile No", "", "Application ID"},
		{"9876543210", "stray", "A100"},
	}

	records := rowsToRecords(rows)
	require.Len(t, records, 1)

	_, hasEmpty := records[0][""]
	assert.False(t, hasEmpty)
	assert.Equal(t, "A100", records[0]["Application ID"])
}

func TestRowsToRecordsEmptyInput(t *testing.T) {
	assert.Nil(t, rowsToRecords(nil))
	assert.Empty(t, rowsToRecords([][]interface{}{{"Mobile No"}}), "header-only sheet has no records")
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "text", cellString("text"))
	assert.Equal(t, "12.5", cellString(12.5))
	assert.Equal(t, "true", cellString(true))
}

func TestQuoteRange(t *testing.T) {
	assert.Equal(t, "'Data'", quoteRange("Data"))
	assert.Equal(t, "'Form Responses 1'", quoteRange("Form Responses 1"))
	assert.Equal(t, "'O''Brien'", quoteRange("O'Brien"))
}
