package submit_draft

import (
	"context"

	submitOrder "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/submit_order"
)

type SubmitOrderUseCase interface {
	Execute(ctx context.Context, req *submitOrder.Request) (*submitOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
