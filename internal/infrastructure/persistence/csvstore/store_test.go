package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(t *testing.T, item, sku string, l, w, h int64, weight string) catalog.SkuRecord {
	t.Helper()
	wt, err := decimal.NewFromString(weight)
	require.NoError(t, err)
	r, err := catalog.NewSkuRecord(item, sku,
		decimal.NewFromInt(l), decimal.NewFromInt(w), decimal.NewFromInt(h), wt)
	require.NoError(t, err)
	return r
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "sku_database.csv"))

	c, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sku_database.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	c, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestLoadHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sku_database.csv")
	require.NoError(t, os.WriteFile(path, []byte("Item,SKU,L_mm,W_mm,H_mm,Weight_kg\n"), 0o644))

	c, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sku_database.csv")
	store := NewStore(path)
	ctx := context.Background()

	original := catalog.Catalog{
		testRecord(t, "Arch LED Mirror", "MBR-ARCH-LED", 1200, 600, 120, "18.5"),
		testRecord(t, "Round Mirror, 800mm", "MBR-RND-800", 800, 800, 90, "9"),
	}

	require.NoError(t, store.Save(ctx, original))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for i, r := range loaded {
		assert.Equal(t, original[i].SKU, r.SKU)
		assert.Equal(t, original[i].Item, r.Item)
		assert.True(t, original[i].LengthMM.Equal(r.LengthMM))
		assert.True(t, original[i].WeightKG.Equal(r.WeightKG))
	}
}

func TestSaveEmptyCatalogKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sku_database.csv")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, catalog.Catalog{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Item,SKU,L_mm,W_mm,H_mm,Weight_kg\n", string(data))

	c, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestSaveOverwritesPriorContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sku_database.csv")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, catalog.Catalog{testRecord(t, "A", "A", 1, 1, 1, "1")}))
	require.NoError(t, store.Save(ctx, catalog.Catalog{testRecord(t, "B", "B", 2, 2, 2, "2")}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "B", loaded[0].SKU)
}

func TestSaveUnwritableTarget(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing-dir", "sku_database.csv"))

	err := store.Save(context.Background(), catalog.Catalog{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file")
}

func TestParseRecords(t *testing.T) {
	t.Run("rejects non-numeric dimension", func(t *testing.T) {
		_, err := ParseRecords([]byte("Item,SKU,L_mm,W_mm,H_mm,Weight_kg\nMirror,A,abc,1,1,1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'abc' is not a number")
	})

	t.Run("rejects missing columns", func(t *testing.T) {
		_, err := ParseRecords([]byte("Item,SKU\nMirror,A\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required columns")
	})

	t.Run("rejects blank SKU", func(t *testing.T) {
		_, err := ParseRecords([]byte("Item,SKU,L_mm,W_mm,H_mm,Weight_kg\nMirror,,1,1,1,1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU")
	})

	t.Run("empty numeric cells become zero", func(t *testing.T) {
		records, err := ParseRecords([]byte("Item,SKU,L_mm,W_mm,H_mm,Weight_kg\nMirror,A,,,,\n"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].WeightKG.IsZero())
	})
}
