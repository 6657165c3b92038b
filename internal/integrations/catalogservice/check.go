package catalogservice

import (
	"fmt"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// CheckCatalog проверяет правила составления каталога:
// уникальные id и названия услуг (disables ссылается на названия),
// прямые радио только без под-опций, услуга не блокирует саму себя
func CheckCatalog(catalog *domain.Catalog) error {
	if len(catalog.Items) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(catalog.Items))
	names := make(map[string]struct{}, len(catalog.Items))
	for _, item := range catalog.Items {
		if item.ID == "" {
			return fmt.Errorf("%w: service %q has no id", ErrInvalidCatalog, item.Name)
		}
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.Name == "" {
			return fmt.Errorf("%w: service %q has no name", ErrInvalidCatalog, item.ID)
		}
		if _, ok := names[item.Name]; ok {
			return fmt.Errorf("%w: duplicate service name %q", ErrInvalidCatalog, item.Name)
		}
		names[item.Name] = struct{}{}

		if len(item.DirectRadios) > 0 && len(item.SubOptions) > 0 {
			return fmt.Errorf("%w: service %q has both sub-options and direct radios", ErrInvalidCatalog, item.ID)
		}
	}

	for _, item := range catalog.Items {
		for _, name := range item.Disables {
			if blocked, ok := catalog.ItemByName(name); ok && blocked.ID == item.ID {
				return fmt.Errorf("%w: service %q disables itself", ErrInvalidCatalog, item.ID)
			}
		}
	}

	return nil
}
