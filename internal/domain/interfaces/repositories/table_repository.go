// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/xercesdist/internal/domain/entities"
)

// TableRepository supplies the distribution table a resolver is built from
type TableRepository interface {
	// LoadTable returns a validated, immutable distribution table
	LoadTable(ctx context.Context) (*entities.DistributionTable, error)

	// Source describes where the table came from (file path or "builtin")
	Source() string
}
