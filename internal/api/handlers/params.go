package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// DraftID извлекает {draftId} из пути
func DraftID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["draftId"])
}
