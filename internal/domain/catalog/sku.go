package catalog

import (
	"strings"

	"github.com/cargoplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// cubicMillimetersPerCubicMeter converts mm3 volumes into m3 (CBM).
var cubicMillimetersPerCubicMeter = decimal.NewFromInt(1_000_000_000)

// SkuRecord represents one stock-keeping unit in the catalog.
// The SKU code is the unique key; records are replaced wholesale on update.
type SkuRecord struct {
	Item     string          `json:"item"`
	SKU      string          `json:"sku"`
	LengthMM decimal.Decimal `json:"l_mm"`
	WidthMM  decimal.Decimal `json:"w_mm"`
	HeightMM decimal.Decimal `json:"h_mm"`
	WeightKG decimal.Decimal `json:"weight_kg"`
}

// NewSkuRecord creates a validated SkuRecord
func NewSkuRecord(item, sku string, lengthMM, widthMM, heightMM, weightKG decimal.Decimal) (SkuRecord, error) {
	if strings.TrimSpace(sku) == "" {
		return SkuRecord{}, shared.NewDomainError("INVALID_INPUT", "SKU code is required")
	}
	for _, d := range []decimal.Decimal{lengthMM, widthMM, heightMM, weightKG} {
		if d.IsNegative() {
			return SkuRecord{}, shared.NewDomainError("INVALID_INPUT", "Dimensions and weight must be non-negative")
		}
	}

	return SkuRecord{
		Item:     item,
		SKU:      sku,
		LengthMM: lengthMM,
		WidthMM:  widthMM,
		HeightMM: heightMM,
		WeightKG: weightKG,
	}, nil
}

// UnitVolumeM3 returns the volume of a single unit in cubic meters,
// computed from the millimeter dimensions.
func (r SkuRecord) UnitVolumeM3() decimal.Decimal {
	return r.LengthMM.Mul(r.WidthMM).Mul(r.HeightMM).Div(cubicMillimetersPerCubicMeter)
}
