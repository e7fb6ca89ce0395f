package catalog

import "context"

// CatalogRepository defines the persistence contract for the catalog.
// The whole table is loaded and saved wholesale; there is no incremental
// update path.
type CatalogRepository interface {
	// Load reads the persisted catalog. A missing or empty persistence
	// target yields an empty Catalog, not an error.
	Load(ctx context.Context) (Catalog, error)

	// Save overwrites the persisted catalog with the given one.
	Save(ctx context.Context, c Catalog) error
}
