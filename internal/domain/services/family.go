// Package services implements the pure resolution and rendering rules of
// batch planning: repository-family derivation, include-path lookup, command
// template resolution and strict placeholder expansion.
package services

import (
	"fmt"
	"strings"
)

// RepoFamily derives the repository family name from an instance id.
//
// Benchmark ids follow the `<namespace>__<repo>-<task number>` convention,
// e.g. "pallets__flask-4045" belongs to family "flask" and
// "scikit-learn__scikit-learn-10297" to "scikit-learn". The family is the
// part after the "__" separator with the trailing task number stripped.
func RepoFamily(instanceID string) (string, error) {
	_, rest, found := strings.Cut(instanceID, "__")
	if !found || rest == "" {
		return "", fmt.Errorf("malformed instance id %q: missing __ separator", instanceID)
	}

	cut := strings.LastIndex(rest, "-")
	if cut <= 0 || cut == len(rest)-1 {
		return "", fmt.Errorf("malformed instance id %q: missing task number suffix", instanceID)
	}

	for _, c := range rest[cut+1:] {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("malformed instance id %q: task number suffix is not numeric", instanceID)
		}
	}

	return rest[:cut], nil
}
