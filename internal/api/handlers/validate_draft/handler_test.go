package validate_draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts"
	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	report *models.ValidationReport
	err    error
}

func (f fakeService) Validate(context.Context, uuid.UUID, int64) (*models.ValidationReport, error) {
	return f.report, f.err
}

func serve(svc fakeService, draftID uuid.UUID, withUser bool) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/drafts/{draftId}/validation", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/drafts/"+draftID.String()+"/validation", nil)
	if withUser {
		req = req.WithContext(middleware.WithUserID(req.Context(), 3))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_InvalidSelectionIsOK(t *testing.T) {
	draftID := uuid.New()
	report := &models.ValidationReport{
		DraftID: draftID,
		Valid:   false,
		Errors: []engine.ValidationError{
			{ItemID: "clipping", ItemName: "Clipping", Message: domain.MsgSelectComplexity},
		},
	}

	rec := serve(fakeService{report: report}, draftID, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Valid   bool                     `json:"valid"`
		Errors  []map[string]interface{} `json:"errors"`
		Preview *json.RawMessage         `json:"preview"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Valid)
	assert.Len(t, body.Errors, 1)
	assert.Nil(t, body.Preview)
}

func TestHandler_Handle_ValidWithPreview(t *testing.T) {
	draftID := uuid.New()
	report := &models.ValidationReport{
		DraftID: draftID,
		Valid:   true,
		Preview: &domain.OrderPayload{Items: []domain.OrderLine{{ItemID: "retouch", Name: "Retouch"}}},
	}

	rec := serve(fakeService{report: report}, draftID, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Valid   bool                `json:"valid"`
		Errors  []interface{}       `json:"errors"`
		Preview domain.OrderPayload `json:"preview"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Valid)
	assert.NotNil(t, body.Errors)
	assert.Empty(t, body.Errors)
	require.Len(t, body.Preview.Items, 1)
	assert.Equal(t, "retouch", body.Preview.Items[0].ItemID)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		withUser   bool
		err        error
		wantStatus int
	}{
		{name: "no user", wantStatus: http.StatusUnauthorized},
		{name: "not found", withUser: true, err: drafts.ErrDraftNotFound, wantStatus: http.StatusNotFound},
		{name: "forbidden", withUser: true, err: drafts.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", withUser: true, err: drafts.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(fakeService{err: tt.err}, uuid.New(), tt.withUser)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
