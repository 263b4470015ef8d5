// Package yaml provides YAML-based catalog parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"
	"sort"

	"swebatch/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlCatalogFile represents the raw YAML structure of one family file
type yamlCatalogFile struct {
	Repo        string                  `yaml:"repo"`
	IncludePath string                  `yaml:"include_path"`
	Instances   map[string]yamlInstance `yaml:"instances"`
}

type yamlInstance struct {
	BaseCommit string `yaml:"base_commit"`
}

// FamilyCatalog is the parsed catalog for one repository family
type FamilyCatalog struct {
	Repo        string
	IncludePath string // optional override of the static include-path table
	Instances   []*entities.Instance
}

// CatalogParser parses YAML catalog files
type CatalogParser struct{}

// NewCatalogParser creates a new YAML parser
func NewCatalogParser() *CatalogParser {
	return &CatalogParser{}
}

// ParseFile parses a YAML catalog file for one repository family
func (p *CatalogParser) ParseFile(filePath string) (*FamilyCatalog, error) {
	//nolint:gosec // G304: filePath is a catalog file path from the repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a FamilyCatalog
func (p *CatalogParser) Parse(data []byte) (*FamilyCatalog, error) {
	var yamlCat yamlCatalogFile
	if err := yaml.Unmarshal(data, &yamlCat); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if yamlCat.Repo == "" {
		return nil, fmt.Errorf("catalog file must name its repo")
	}

	cat := &FamilyCatalog{
		Repo:        yamlCat.Repo,
		IncludePath: yamlCat.IncludePath,
	}

	for id, inst := range yamlCat.Instances {
		if inst.BaseCommit == "" {
			return nil, fmt.Errorf("instance %s has no base_commit", id)
		}
		cat.Instances = append(cat.Instances, &entities.Instance{
			ID:         id,
			Repo:       yamlCat.Repo,
			BaseCommit: inst.BaseCommit,
		})
	}

	// YAML maps are unordered; keep listings stable
	sort.Slice(cat.Instances, func(i, j int) bool {
		return cat.Instances[i].ID < cat.Instances[j].ID
	})

	return cat, nil
}
