package undo_operation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts/models"
)

type DraftService interface {
	Undo(ctx context.Context, draftID uuid.UUID, userID int64) (*models.DraftView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
