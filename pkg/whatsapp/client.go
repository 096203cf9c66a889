package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/RohanBhoge/whatsapp-api/pkg/httpclient"
	"github.com/RohanBhoge/whatsapp-api/pkg/logger"
	"github.com/RohanBhoge/whatsapp-api/pkg/metrics"
	"go.uber.org/zap"
)

const graphBaseURL = "https://graph.facebook.com/v17.0"

// maxDiagnosticBody caps how much of a provider response is retained for
// logging. The body is never parsed for business meaning.
const maxDiagnosticBody = 64 << 10

// MessagesEndpoint returns the Meta Cloud API send endpoint for a business
// phone number ID.
func MessagesEndpoint(phoneNumberID string) string {
	return fmt.Sprintf("%s/%s/messages", graphBaseURL, phoneNumberID)
}

// Outcome is the classification of one dispatch attempt.
type Outcome struct {
	StatusCode int
	Success    bool
	Body       string
}

// Client dispatches payloads to a messaging provider endpoint.
type Client struct {
	http httpclient.Client
}

// NewClient creates a dispatch client on top of the shared HTTP client.
func NewClient(hc httpclient.Client) *Client {
	return &Client{http: hc}
}

// Send POSTs one JSON payload with bearer-token authorization and classifies
// the response: 200/201/202 is a success, any other status a failure. A
// transport error returns a non-nil error; callers fold it into the same
// failure bucket as a bad status. Fails closed without any network call when
// the endpoint or token is unset.
func (c *Client) Send(ctx context.Context, endpoint, token string, payload any) (*Outcome, error) {
	if endpoint == "" || token == "" {
		return nil, apperrors.MissingConfigError("messaging endpoint/token")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	template := templateLabel(payload)
	start := time.Now()

	resp, err := c.http.Do(req)
	duration := metrics.MeasureDuration(start)
	metrics.DispatchDuration.WithLabelValues(template).Observe(duration)

	if err != nil {
		metrics.MessagesDispatched.WithLabelValues(template, "error").Inc()
		logger.LogAPICall("whatsapp", "send", "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to call messaging provider: %w", err)
	}
	defer resp.Body.Close()

	diagnostic, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnosticBody)) //nolint:errcheck // diagnostics only

	outcome := &Outcome{
		StatusCode: resp.StatusCode,
		Success:    IsSuccessStatus(resp.StatusCode),
		Body:       string(diagnostic),
	}

	status := "failure"
	if outcome.Success {
		status = "success"
	}
	metrics.MessagesDispatched.WithLabelValues(template, status).Inc()
	logger.LogAPICall("whatsapp", "send", status, duration,
		zap.Int("status_code", resp.StatusCode),
		zap.String("template", template))

	return outcome, nil
}

// IsSuccessStatus reports whether a provider status code counts as a
// successful delivery hand-off.
func IsSuccessStatus(code int) bool {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return true
	}
	return false
}

func templateLabel(payload any) string {
	switch payload.(type) {
	case *DocumentMessage, DocumentMessage:
		return documentTemplateName
	case *TemplateMessage, TemplateMessage:
		return linkTemplateName
	}
	return "unknown"
}
