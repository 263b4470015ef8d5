package services

import "fmt"

// IncludePaths resolves a repository family to the relative path within that
// repository that the analysis command should scan.
type IncludePaths interface {
	// Lookup returns the include path for a family. A family without an
	// entry is a hard lookup failure, never a soft default.
	Lookup(family string) (string, error)
}

// StaticIncludePaths is a fixed family -> include path table
type StaticIncludePaths map[string]string

// Lookup implements IncludePaths
func (s StaticIncludePaths) Lookup(family string) (string, error) {
	path, ok := s[family]
	if !ok {
		return "", fmt.Errorf("no include path for repository family %q", family)
	}
	return path, nil
}

// DefaultIncludePaths returns the include-path table for the repository
// families shipped with the benchmark.
func DefaultIncludePaths() StaticIncludePaths {
	return StaticIncludePaths{
		"flask":        "src",
		"matplotlib":   "lib/matplotlib",
		"pytest":       "src",
		"astropy":      "astropy",
		"scikit-learn": "sklearn",
		"seaborn":      "seaborn",
		"sympy":        "sympy",
		"django":       "django",
		"pylint":       "pylint",
		"requests":     "src",
		"sphinx":       "sphinx",
		"xarray":       "xarray",
	}
}
