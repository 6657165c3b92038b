package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

type CatalogSource interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
