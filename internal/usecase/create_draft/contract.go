package create_draft

import (
	"context"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// CatalogSource источник каталога услуг (CatalogService или локальный файл)
type CatalogSource interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.Draft) (*domain.Draft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
