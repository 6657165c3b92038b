package catalogservice

import "github.com/m04kA/SMC-OrderIntakeService/internal/domain"

// ServicesResponse ответ CatalogService на GET /api/v1/services
type ServicesResponse struct {
	Services []domain.CatalogItem `json:"services"`
}

// catalogFile формат локального YAML каталога
type catalogFile struct {
	Services []domain.CatalogItem `yaml:"services"`
}
