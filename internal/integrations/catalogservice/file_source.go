package catalogservice

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// FileSource читает каталог из локального YAML файла.
// Используется для локального запуска без CatalogService.
type FileSource struct {
	path string
	log  Logger
}

// NewFileSource создает источник каталога из файла
func NewFileSource(path string, log Logger) *FileSource {
	return &FileSource{path: path, log: log}
}

// GetCatalog читает файл заново при каждом вызове
func (s *FileSource) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInternal, s.path, err)
	}

	catalog, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}

	s.log.Info("Loaded catalog with %d services from %s", len(catalog.Items), s.path)
	return catalog, nil
}

// ParseYAML разбирает YAML документ с ключом services
func ParseYAML(data []byte) (*domain.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse yaml: %v", ErrInvalidCatalog, err)
	}

	catalog := domain.NewCatalog(file.Services)
	if err := CheckCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
