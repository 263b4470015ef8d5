// Package gateways implements the filesystem-facing adapters of batch
// compilation: locating clone sources and writing script artifacts.
package gateways

import (
	"path/filepath"

	"swebatch/internal/domain/services"
)

// RepoLocator maps an instance id to the local clone-source checkout for its
// repository family. Pure path computation; whether the checkout actually
// exists is the generated script's problem at execution time.
type RepoLocator struct {
	root string
}

// NewRepoLocator creates a locator rooted at the given repositories directory
func NewRepoLocator(root string) *RepoLocator {
	return &RepoLocator{root: root}
}

// RepoPath returns the clone-source path for an instance id
func (l *RepoLocator) RepoPath(instanceID string) (string, error) {
	family, err := services.RepoFamily(instanceID)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.root, family), nil
}
