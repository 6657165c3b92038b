package undo_operation

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
	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts"
	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	view *models.DraftView
	err  error
}

func (f fakeService) Undo(context.Context, uuid.UUID, int64) (*models.DraftView, error) {
	return f.view, f.err
}

func serve(t *testing.T, svc fakeService, path string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/drafts/{draftId}/undo", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	if withUser {
		req = req.WithContext(middleware.WithUserID(req.Context(), 7))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Undone(t *testing.T) {
	draftID := uuid.New()
	svc := fakeService{view: &models.DraftView{DraftID: draftID, Revision: 2}}

	rec := serve(t, svc, "/drafts/"+draftID.String()+"/undo", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		DraftID  uuid.UUID `json:"draftId"`
		Revision int       `json:"revision"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, draftID, body.DraftID)
	assert.Equal(t, 2, body.Revision)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		withUser   bool
		err        error
		wantStatus int
	}{
		{name: "invalid id", path: "/drafts/not-a-uuid/undo", withUser: true, wantStatus: http.StatusBadRequest},
		{name: "no user", path: "/drafts/" + uuid.NewString() + "/undo", wantStatus: http.StatusUnauthorized},
		{name: "not found", path: "/drafts/" + uuid.NewString() + "/undo", withUser: true, err: drafts.ErrDraftNotFound, wantStatus: http.StatusNotFound},
		{name: "forbidden", path: "/drafts/" + uuid.NewString() + "/undo", withUser: true, err: drafts.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "nothing to undo", path: "/drafts/" + uuid.NewString() + "/undo", withUser: true, err: drafts.ErrNothingToUndo, wantStatus: http.StatusConflict},
		{name: "submitting", path: "/drafts/" + uuid.NewString() + "/undo", withUser: true, err: drafts.ErrDraftSubmitting, wantStatus: http.StatusConflict},
		{name: "internal", path: "/drafts/" + uuid.NewString() + "/undo", withUser: true, err: drafts.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, fakeService{err: tt.err}, tt.path, tt.withUser)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
