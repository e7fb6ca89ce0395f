package importapp

import (
	"bytes"
	"context"
	"encoding/csv"

	catalogapp "github.com/cargoplan/backend/internal/application/catalog"
	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/cargoplan/backend/internal/infrastructure/persistence/csvstore"
)

// BulkMergeService combines an uploaded CSV table with the existing
// catalog. A parse failure surfaces as a single error and leaves the
// catalog untouched.
type BulkMergeService struct {
	skuService *catalogapp.SkuService
}

// NewBulkMergeService creates a new BulkMergeService
func NewBulkMergeService(skuService *catalogapp.SkuService) *BulkMergeService {
	return &BulkMergeService{skuService: skuService}
}

// Merge parses the uploaded table and merges it into the catalog with
// last-wins deduplication by SKU. Nothing is applied unless every row
// parses.
func (s *BulkMergeService) Merge(ctx context.Context, data []byte) (catalogapp.MergeSummary, error) {
	records, err := csvstore.ParseRecords(data)
	if err != nil {
		return catalogapp.MergeSummary{}, err
	}
	return s.skuService.Merge(ctx, records)
}

// Template returns a header-only CSV in the canonical catalog schema for
// operators to fill in and upload.
func (s *BulkMergeService) Template() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(catalog.Columns)
	w.Flush()
	return buf.Bytes()
}
