package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RohanBhoge/whatsapp-api/internal/models"
	"github.com/RohanBhoge/whatsapp-api/internal/services"
	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
	"github.com/RohanBhoge/whatsapp-api/pkg/whatsapp"
)

func submitRouter(service *mockSubmitService) *gin.Engine {
	return newRouter(func(r *gin.Engine) {
		r.POST("/submit-data", NewSubmitHandler(service).HandleSubmitData)
	})
}

func TestHandleSubmitData(t *testing.T) {
	applicant := models.Applicant{
		Phone:           "9876543210",
		ApplicationID:   "A100",
		Name:            "Asha",
		CertificateType: "Birth",
	}

	var captured models.Record
	service := new(mockSubmitService)
	service.On("SubmitRecord", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(models.Record)
		}).
		Return(&services.SubmitResult{
			DocumentMessage:  *whatsapp.NewDocumentMessage(applicant),
			SheetWriteStatus: "success",
		}, nil)

	w := performRequest(submitRouter(service), http.MethodPost, "/submit-data",
		`{"Mobile No": 9876543210, "Application ID": "A100", "Applicant Name": "Asha"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sheet_write_status":"success"`)
	assert.Contains(t, w.Body.String(), `"integrated_number":"919270334724"`)

	// Numeric cells coerce to plain digit strings before reaching the service
	assert.Equal(t, "9876543210", captured.Get(models.FieldMobileNo))
}

func TestHandleSubmitDataAppendFailureStillSucceeds(t *testing.T) {
	service := new(mockSubmitService)
	service.On("SubmitRecord", mock.Anything, mock.Anything).
		Return(&services.SubmitResult{SheetWriteStatus: "failure"}, nil)

	w := performRequest(submitRouter(service), http.MethodPost, "/submit-data",
		`{"Mobile No": "9876543210", "Application ID": "A100"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sheet_write_status":"failure"`)
}

func TestHandleSubmitDataRejectsBadBody(t *testing.T) {
	service := new(mockSubmitService)
	router := submitRouter(service)

	for _, body := range []string{``, `{not json`, `{}`} {
		w := performRequest(router, http.MethodPost, "/submit-data", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "Invalid JSON received or missing body.")
	}

	service.AssertNotCalled(t, "SubmitRecord", mock.Anything, mock.Anything)
}

func TestHandleSubmitDataMissingSheetID(t *testing.T) {
	service := new(mockSubmitService)
	service.On("SubmitRecord", mock.Anything, mock.Anything).
		Return(nil, apperrors.MissingConfigError("SHEET_ID"))

	w := performRequest(submitRouter(service), http.MethodPost, "/submit-data",
		`{"Mobile No": "9876543210", "Application ID": "A100"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status": "error", "message": "Server configuration missing SHEET_ID."}`, w.Body.String())
}

func TestHandleSubmitDataMissingRecordFields(t *testing.T) {
	service := new(mockSubmitService)
	service.On("SubmitRecord", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrMissingRequiredFields)

	w := performRequest(submitRouter(service), http.MethodPost, "/submit-data",
		`{"Applicant Name": "Asha"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status": "error", "message": "Failed to construct WhatsApp payload (missing mobile/app ID)."}`, w.Body.String())
}
