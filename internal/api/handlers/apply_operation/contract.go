package apply_operation

import (
	"context"

	applyOperation "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/apply_operation"
)

type ApplyOperationUseCase interface {
	Execute(ctx context.Context, req *applyOperation.Request) (*applyOperation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
