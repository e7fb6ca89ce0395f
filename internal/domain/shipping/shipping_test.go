package shipping

import (
	"testing"

	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeRecord(t *testing.T, sku string, sideMM int64, weightKG string) catalog.SkuRecord {
	t.Helper()
	wt, err := decimal.NewFromString(weightKG)
	require.NoError(t, err)
	side := decimal.NewFromInt(sideMM)
	r, err := catalog.NewSkuRecord("Cube "+sku, sku, side, side, side, wt)
	require.NoError(t, err)
	return r
}

func TestNewShipmentLine(t *testing.T) {
	t.Run("one cubic meter cube times three", func(t *testing.T) {
		line, err := NewShipmentLine(cubeRecord(t, "CUBE", 1000, "12.5"), 3)
		require.NoError(t, err)

		assert.True(t, line.UnitVolumeM3.Equal(decimal.NewFromInt(1)))
		assert.True(t, line.TotalVolumeM3.Equal(decimal.NewFromInt(3)))
		assert.True(t, line.TotalWeightKG.Equal(decimal.NewFromFloat(37.5)))
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, err := NewShipmentLine(cubeRecord(t, "CUBE", 1000, "1"), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive integer")
	})

	t.Run("rounding is display-level only", func(t *testing.T) {
		// 333mm cube: 0.036926037 m3 exact
		line, err := NewShipmentLine(cubeRecord(t, "ODD", 333, "0.333"), 1)
		require.NoError(t, err)

		rounded := line.Rounded()
		assert.Equal(t, "0.0369", rounded.UnitVolumeM3.String())
		assert.Equal(t, "0.33", rounded.TotalWeightKG.String())
		// the original line keeps the exact value
		assert.Equal(t, "0.036926037", line.UnitVolumeM3.String())
	})
}

func TestUtilization(t *testing.T) {
	t.Run("full container is exactly 100 percent", func(t *testing.T) {
		percent, remaining := Utilization(decimal.NewFromFloat(28.0), decimal.NewFromFloat(28.0))
		assert.True(t, percent.Equal(decimal.NewFromInt(100)))
		assert.True(t, remaining.IsZero())
	})

	t.Run("overflow leaves remaining negative", func(t *testing.T) {
		_, remaining := Utilization(decimal.NewFromFloat(30.0), decimal.NewFromFloat(28.0))
		assert.True(t, remaining.IsNegative())
		assert.Equal(t, "-2", remaining.String())
	})

	t.Run("half load", func(t *testing.T) {
		percent, remaining := Utilization(decimal.NewFromFloat(29.0), decimal.NewFromFloat(58.0))
		assert.True(t, percent.Equal(decimal.NewFromInt(50)))
		assert.True(t, remaining.Equal(decimal.NewFromInt(29)))
	})
}

func TestStandardContainers(t *testing.T) {
	containers := StandardContainers()
	require.Len(t, containers, 3)
	assert.Equal(t, "20ft", containers[0].Name)
	assert.True(t, containers[0].CapacityM3.Equal(decimal.NewFromInt(28)))
	assert.Equal(t, "40ft", containers[1].Name)
	assert.True(t, containers[1].CapacityM3.Equal(decimal.NewFromInt(58)))
	assert.Equal(t, "40ft HC", containers[2].Name)
	assert.True(t, containers[2].CapacityM3.Equal(decimal.NewFromInt(65)))
}
