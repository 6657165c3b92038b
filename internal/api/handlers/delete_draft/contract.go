package delete_draft

import (
	"context"

	"github.com/google/uuid"
)

type DraftService interface {
	Delete(ctx context.Context, draftID uuid.UUID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
