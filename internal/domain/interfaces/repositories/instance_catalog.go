// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"swebatch/internal/domain/entities"
)

// InstanceCatalog defines the interface for looking up benchmark instances
type InstanceCatalog interface {
	// GetInstance retrieves a benchmark instance by its id
	GetInstance(ctx context.Context, id string) (*entities.Instance, error)

	// ListInstances returns all instances known to the catalog
	ListInstances(ctx context.Context) ([]*entities.Instance, error)
}
