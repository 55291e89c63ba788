package ports

import (
	"context"

	"github.com/dabron/scythe/internal/domain"
)

// CatalogStore provides the setup tables for a feature configuration.
type CatalogStore interface {
	Catalog(ctx context.Context, f domain.Features) (domain.Catalog, error)
}
