package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/RohanBhoge/whatsapp-api/config"
	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/pkg/logger"
	"github.com/RohanBhoge/whatsapp-api/pkg/whatsapp"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Level: "error", Environment: "development"}); err != nil {
		panic(err)
	}
	m.Run()
}

type mockRecordSource struct {
	mock.Mock
}

func (m *mockRecordSource) FetchAll(ctx context.Context) ([]models.Record, error) {
	args := m.Called(ctx)
	if records := args.Get(0); records != nil {
		return records.([]models.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordSource) Append(ctx context.Context, record models.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type mockMessageSender struct {
	mock.Mock
}

func (m *mockMessageSender) Send(ctx context.Context, endpoint, token string, payload any) (*whatsapp.Outcome, error) {
	args := m.Called(ctx, endpoint, token, payload)
	if outcome := args.Get(0); outcome != nil {
		return outcome.(*whatsapp.Outcome), args.Error(1)
	}
	return nil, args.Error(1)
}

func fullConfig() *config.Config {
	return &config.Config{
		Sheets: config.SheetsConfig{
			SpreadsheetID: "sheet-id-1",
			WorksheetName: "Data",
		},
		Provider: config.ProviderConfig{
			ClientAPIEndpoint:     "https://api.aggregator.example/send",
			ClientAPIKey:          "client-key",
			WhatsAppAccessToken:   "wa-token",
			WhatsAppPhoneNumberID: "12345",
		},
	}
}
