package get_catalog

import "github.com/m04kA/SMC-OrderIntakeService/internal/domain"

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services []domain.CatalogItem `json:"services"`
}

// FromDomain конвертирует каталог в HTTP ответ
func FromDomain(catalog *domain.Catalog) *CatalogResponse {
	services := catalog.Items
	if services == nil {
		services = []domain.CatalogItem{}
	}
	return &CatalogResponse{Services: services}
}
