package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"swebatch/internal/domain/entities"
	"swebatch/internal/domain/services"
)

// CatalogRepository implements repositories.InstanceCatalog over a directory
// of per-family YAML files (<catalogDir>/<family>.yml). It also implements
// services.IncludePaths: a family file may carry an include_path override,
// otherwise lookup falls through to the static table.
type CatalogRepository struct {
	catalogDir string
	parser     *CatalogParser
	fallback   services.IncludePaths
}

// NewCatalogRepository creates a new YAML-based instance catalog
func NewCatalogRepository(catalogDir string, fallback services.IncludePaths) *CatalogRepository {
	return &CatalogRepository{
		catalogDir: catalogDir,
		parser:     NewCatalogParser(),
		fallback:   fallback,
	}
}

// GetInstance retrieves a benchmark instance by its id
func (r *CatalogRepository) GetInstance(_ context.Context, id string) (*entities.Instance, error) {
	family, err := services.RepoFamily(id)
	if err != nil {
		return nil, err
	}

	cat, err := r.loadFamily(family)
	if err != nil {
		return nil, err
	}

	for _, inst := range cat.Instances {
		if inst.ID == id {
			return inst, nil
		}
	}

	return nil, fmt.Errorf("instance not found in catalog: %s", id)
}

// ListInstances returns all instances across every family file in the catalog
func (r *CatalogRepository) ListInstances(_ context.Context) ([]*entities.Instance, error) {
	entries, err := os.ReadDir(r.catalogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	instances := make([]*entities.Instance, 0)
	for _, entry := range entries {
		// Skip non-YAML files
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}

		filePath := filepath.Join(r.catalogDir, entry.Name())
		cat, err := r.parser.ParseFile(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Fprintf(os.Stderr, "Warning: failed to parse %s: %v\n", entry.Name(), err)
			continue
		}

		instances = append(instances, cat.Instances...)
	}

	return instances, nil
}

// Lookup implements services.IncludePaths with catalog-file overrides
func (r *CatalogRepository) Lookup(family string) (string, error) {
	cat, err := r.loadFamily(family)
	if err == nil && cat.IncludePath != "" {
		return cat.IncludePath, nil
	}
	return r.fallback.Lookup(family)
}

func (r *CatalogRepository) loadFamily(family string) (*FamilyCatalog, error) {
	filePath := filepath.Join(r.catalogDir, family+".yml")

	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog entry not found for repository family: %s", family)
	}

	return r.parser.ParseFile(filePath)
}
