package importapp

import (
	"context"
	"testing"

	catalogapp "github.com/cargoplan/backend/internal/application/catalog"
	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory catalog.CatalogRepository for service tests.
type memoryRepo struct {
	catalog catalog.Catalog
	saveErr error
}

func (m *memoryRepo) Load(context.Context) (catalog.Catalog, error) {
	return m.catalog, nil
}

func (m *memoryRepo) Save(_ context.Context, c catalog.Catalog) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.catalog = c
	return nil
}

func seedRecord(t *testing.T, item, sku string, weight string) catalog.SkuRecord {
	t.Helper()
	wt, err := decimal.NewFromString(weight)
	require.NoError(t, err)
	side := decimal.NewFromInt(100)
	r, err := catalog.NewSkuRecord(item, sku, side, side, side, wt)
	require.NoError(t, err)
	return r
}

func TestBulkMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("incoming rows override existing by SKU", func(t *testing.T) {
		repo := &memoryRepo{catalog: catalog.Catalog{seedRecord(t, "Item A", "A", "1.0")}}
		svc := NewBulkMergeService(catalogapp.NewSkuService(repo))

		upload := []byte("Item,SKU,L_mm,W_mm,H_mm,Weight_kg\n" +
			"Item A v2,A,100,100,100,2.0\n" +
			"Item B,B,200,200,200,5\n")

		summary, err := svc.Merge(ctx, upload)
		require.NoError(t, err)
		assert.Equal(t, catalogapp.MergeSummary{TotalRows: 2, Added: 1, Replaced: 1}, summary)

		a, ok := repo.catalog.FindBySKU("A")
		require.True(t, ok)
		assert.True(t, a.WeightKG.Equal(decimal.NewFromInt(2)))
		assert.Len(t, repo.catalog, 2)
	})

	t.Run("duplicate SKUs inside the upload resolve to the later row", func(t *testing.T) {
		repo := &memoryRepo{}
		svc := NewBulkMergeService(catalogapp.NewSkuService(repo))

		upload := []byte("Item,SKU,L_mm,W_mm,H_mm,Weight_kg\n" +
			"First,X,100,100,100,1\n" +
			"Second,X,100,100,100,2\n")

		_, err := svc.Merge(ctx, upload)
		require.NoError(t, err)

		require.Len(t, repo.catalog, 1)
		assert.Equal(t, "Second", repo.catalog[0].Item)
	})

	t.Run("malformed upload leaves the catalog untouched", func(t *testing.T) {
		existing := catalog.Catalog{seedRecord(t, "Item A", "A", "1.0")}
		repo := &memoryRepo{catalog: existing}
		svc := NewBulkMergeService(catalogapp.NewSkuService(repo))

		_, err := svc.Merge(ctx, []byte("Item,SKU,L_mm,W_mm,H_mm,Weight_kg\nBad,B,xx,1,1,1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a number")
		assert.Len(t, repo.catalog, 1)
	})

	t.Run("empty upload is a parse error", func(t *testing.T) {
		svc := NewBulkMergeService(catalogapp.NewSkuService(&memoryRepo{}))
		_, err := svc.Merge(ctx, nil)
		require.Error(t, err)
	})
}

func TestTemplate(t *testing.T) {
	svc := NewBulkMergeService(nil)
	assert.Equal(t, "Item,SKU,L_mm,W_mm,H_mm,Weight_kg\n", string(svc.Template()))
}
