package services

import (
	"context"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/pkg/whatsapp"
)

// BroadcastServiceInterface defines the bulk fetch-and-send operation.
type BroadcastServiceInterface interface {
	Broadcast(ctx context.Context) (*models.BroadcastResult, error)
}

// WebhookServiceInterface processes a single row delivered by a sheet webhook.
type WebhookServiceInterface interface {
	ProcessRowUpdate(ctx context.Context, req *models.RowUpdateRequest) (*whatsapp.Outcome, error)
}

// SubmitServiceInterface persists a submitted record to the sheet and builds
// its outbound payload.
type SubmitServiceInterface interface {
	SubmitRecord(ctx context.Context, record models.Record) (*SubmitResult, error)
}

// MessageSender abstracts the dispatch client for testing.
type MessageSender interface {
	Send(ctx context.Context, endpoint, token string, payload any) (*whatsapp.Outcome, error)
}
