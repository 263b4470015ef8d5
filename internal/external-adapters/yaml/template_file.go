package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCommandTemplates reads extra command templates from a YAML file mapping
// short names to template strings, for registration on top of the built-ins.
func LoadCommandTemplates(filePath string) (map[string]string, error) {
	//nolint:gosec // G304: filePath is a template file path given on the command line
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	templates := make(map[string]string)
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return templates, nil
}
