package shipping

import (
	"fmt"

	"github.com/cargoplan/backend/internal/domain/shipping"
	"github.com/xuri/excelize/v2"
)

// PurchaseOrderSheet is the single sheet name of the exported workbook.
const PurchaseOrderSheet = "Purchase_Order"

var purchaseOrderHeader = []interface{}{
	"SKU", "Item", "Quantity", "Unit CBM", "Total CBM", "Total Weight (kg)",
}

// ExportService renders computed shipment lines into a purchase order
// workbook.
type ExportService struct{}

// NewExportService creates a new ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// PurchaseOrderXLSX renders the lines into a single-sheet workbook with a
// header row and one row per line, no formulas. Zero lines still produce
// a valid workbook.
func (s *ExportService) PurchaseOrderXLSX(lines []shipping.ShipmentLine) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", PurchaseOrderSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(PurchaseOrderSheet, "A1", &purchaseOrderHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, line := range lines {
		rounded := line.Rounded()
		row := []interface{}{
			rounded.SKU,
			rounded.Item,
			rounded.Quantity,
			rounded.UnitVolumeM3.InexactFloat64(),
			rounded.TotalVolumeM3.InexactFloat64(),
			rounded.TotalWeightKG.InexactFloat64(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(PurchaseOrderSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
