package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
)

const (
	msgCatalogUnavailable = "каталог услуг временно недоступен"
)

type Handler struct {
	catalog CatalogSource
	logger  Logger
}

func NewHandler(catalog CatalogSource, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.GetCatalog(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to get catalog: %v", err)
		handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)
		return
	}

	h.logger.Info("GET /catalog - Catalog returned: services=%d", len(catalog.Items))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(catalog))
}
