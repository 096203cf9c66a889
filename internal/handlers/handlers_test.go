package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/internal/services"
	"github.com/RohanBhoge/whatsapp-api/pkg/logger"
	"github.com/RohanBhoge/whatsapp-api/pkg/whatsapp"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Level: "error", Environment: "development"}); err != nil {
		panic(err)
	}
	m.Run()
}

type mockBroadcastService struct {
	mock.Mock
}

func (m *mockBroadcastService) Broadcast(ctx context.Context) (*models.BroadcastResult, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.(*models.BroadcastResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockWebhookService struct {
	mock.Mock
}

func (m *mockWebhookService) ProcessRowUpdate(ctx context.Context, req *models.RowUpdateRequest) (*whatsapp.Outcome, error) {
	args := m.Called(ctx, req)
	if outcome := args.Get(0); outcome != nil {
		return outcome.(*whatsapp.Outcome), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSubmitService struct {
	mock.Mock
}

func (m *mockSubmitService) SubmitRecord(ctx context.Context, record models.Record) (*services.SubmitResult, error) {
	args := m.Called(ctx, record)
	if result := args.Get(0); result != nil {
		return result.(*services.SubmitResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRouter(register func(*gin.Engine)) *gin.Engine {
	router := gin.New()
	register(router)
	return router
}
