package catalog

import (
	"context"
	"sync"

	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// SkuService handles catalog editing operations. Every mutation loads the
// persisted table, applies the change and saves the result wholesale, so
// the in-memory view never diverges from the store. A mutex serializes
// mutations; the store has no conflict detection of its own.
type SkuService struct {
	repo catalog.CatalogRepository
	mu   sync.Mutex
}

// NewSkuService creates a new SkuService
func NewSkuService(repo catalog.CatalogRepository) *SkuService {
	return &SkuService{repo: repo}
}

// UpsertSkuRequest carries the full field set of a record; updates are
// whole-record replacements, never partial.
type UpsertSkuRequest struct {
	Item     string
	SKU      string
	LengthMM decimal.Decimal
	WidthMM  decimal.Decimal
	HeightMM decimal.Decimal
	WeightKG decimal.Decimal
}

// List returns the current catalog records.
func (s *SkuService) List(ctx context.Context) (catalog.Catalog, error) {
	return s.repo.Load(ctx)
}

// Upsert validates the record, replaces any existing record with the same
// SKU and persists the catalog. On a persistence failure the stored
// catalog is untouched and the error is returned.
func (s *SkuService) Upsert(ctx context.Context, req UpsertSkuRequest) (catalog.SkuRecord, error) {
	record, err := catalog.NewSkuRecord(req.Item, req.SKU, req.LengthMM, req.WidthMM, req.HeightMM, req.WeightKG)
	if err != nil {
		return catalog.SkuRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		return catalog.SkuRecord{}, err
	}
	if err := s.repo.Save(ctx, current.Upsert(record)); err != nil {
		return catalog.SkuRecord{}, err
	}
	return record, nil
}

// Delete removes the record with the given SKU and persists the catalog.
// Deleting an absent SKU is a no-op, not an error.
func (s *SkuService) Delete(ctx context.Context, sku string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, current.Remove(sku))
}

// Merge combines incoming records into the catalog with last-wins
// deduplication by SKU, persists the result and reports how many incoming
// rows were new versus replacements.
func (s *SkuService) Merge(ctx context.Context, incoming []catalog.SkuRecord) (MergeSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		return MergeSummary{}, err
	}

	merged := current.MergeLastWins(incoming)
	if err := s.repo.Save(ctx, merged); err != nil {
		return MergeSummary{}, err
	}

	summary := MergeSummary{TotalRows: len(incoming)}
	seen := make(map[string]bool, len(incoming))
	for _, r := range incoming {
		if seen[r.SKU] {
			continue
		}
		seen[r.SKU] = true
		if _, exists := current.FindBySKU(r.SKU); exists {
			summary.Replaced++
		} else {
			summary.Added++
		}
	}
	return summary, nil
}

// MergeSummary reports the outcome of a bulk merge.
type MergeSummary struct {
	TotalRows int `json:"total_rows"`
	Added     int `json:"added"`
	Replaced  int `json:"replaced"`
}
