// Package csvstore persists the SKU catalog as a flat delimited-text table
// with the canonical header row Item,SKU,L_mm,W_mm,H_mm,Weight_kg.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/cargoplan/backend/internal/domain/shared"
)

// Store is a file-backed catalog.CatalogRepository. Every save rewrites
// the whole table; there is no incremental diff.
type Store struct {
	path string
}

// NewStore creates a Store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted catalog. A missing or empty file degrades to
// an empty catalog so a fresh deployment starts without errors.
func (s *Store) Load(_ context.Context) (catalog.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return catalog.Catalog{}, nil
	}
	if err != nil {
		return nil, shared.NewDomainError("PERSISTENCE", fmt.Sprintf("failed to read catalog file: %v", err))
	}
	if len(data) == 0 {
		return catalog.Catalog{}, nil
	}

	records, err := ParseRecords(data)
	if err != nil {
		return nil, err
	}
	return catalog.Catalog(records), nil
}

// Save overwrites the catalog file. The table is written to a temp file
// in the same directory and renamed into place, so a failed write cannot
// leave a truncated catalog behind.
func (s *Store) Save(_ context.Context, c catalog.Catalog) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return shared.NewDomainError("PERSISTENCE", fmt.Sprintf("failed to create temp catalog file: %v", err))
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	writeErr := w.Write(catalog.Columns)
	if writeErr == nil {
		for _, r := range c {
			row := []string{
				r.Item,
				r.SKU,
				r.LengthMM.String(),
				r.WidthMM.String(),
				r.HeightMM.String(),
				r.WeightKG.String(),
			}
			if writeErr = w.Write(row); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmpName)
		return shared.NewDomainError("PERSISTENCE", fmt.Sprintf("failed to write catalog file: %v", writeErr))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return shared.NewDomainError("PERSISTENCE", fmt.Sprintf("failed to replace catalog file: %v", err))
	}
	return nil
}
