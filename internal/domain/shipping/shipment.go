package shipping

import (
	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/cargoplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ShipmentLine is one selected SKU with its volumetric measures. Lines
// are derived per calculation request and never persisted.
type ShipmentLine struct {
	SKU           string          `json:"sku"`
	Item          string          `json:"item"`
	Quantity      int             `json:"quantity"`
	UnitVolumeM3  decimal.Decimal `json:"unit_cbm"`
	TotalVolumeM3 decimal.Decimal `json:"total_cbm"`
	TotalWeightKG decimal.Decimal `json:"total_weight_kg"`
}

// NewShipmentLine derives a line from a catalog record. Values are exact;
// use Rounded for display. Quantity must be at least 1.
func NewShipmentLine(record catalog.SkuRecord, quantity int) (ShipmentLine, error) {
	if quantity < 1 {
		return ShipmentLine{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be a positive integer")
	}

	qty := decimal.NewFromInt(int64(quantity))
	unitVolume := record.UnitVolumeM3()

	return ShipmentLine{
		SKU:           record.SKU,
		Item:          record.Item,
		Quantity:      quantity,
		UnitVolumeM3:  unitVolume,
		TotalVolumeM3: unitVolume.Mul(qty),
		TotalWeightKG: record.WeightKG.Mul(qty),
	}, nil
}

// Rounded returns the line with display rounding applied: volumes to four
// decimal places, weight to two. The exact line feeds aggregate math so
// rounding error does not compound across lines.
func (l ShipmentLine) Rounded() ShipmentLine {
	l.UnitVolumeM3 = l.UnitVolumeM3.Round(4)
	l.TotalVolumeM3 = l.TotalVolumeM3.Round(4)
	l.TotalWeightKG = l.TotalWeightKG.Round(2)
	return l
}
