package shipping

import (
	"context"
	"fmt"

	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/cargoplan/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// Selection is one (SKU, quantity) pair chosen for a shipment.
type Selection struct {
	SKU      string
	Quantity int
}

// ContainerUtilization reports the load of one container type.
type ContainerUtilization struct {
	Name        string          `json:"name"`
	CapacityM3  decimal.Decimal `json:"capacity_m3"`
	Percent     decimal.Decimal `json:"percent"`
	RemainingM3 decimal.Decimal `json:"remaining_m3"`
	Overflow    bool            `json:"overflow"`
}

// ComputeResult is the outcome of a shipment computation. Line and total
// values carry display rounding; utilization is derived from the
// unrounded aggregate before its own rounding.
type ComputeResult struct {
	Lines         []shipping.ShipmentLine `json:"lines"`
	TotalVolumeM3 decimal.Decimal         `json:"total_cbm"`
	Containers    []ContainerUtilization  `json:"containers"`
	Warnings      []string                `json:"warnings,omitempty"`
}

// ShipmentService computes volumetric load for selected SKUs against the
// standard container capacities.
type ShipmentService struct {
	repo catalog.CatalogRepository
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(repo catalog.CatalogRepository) *ShipmentService {
	return &ShipmentService{repo: repo}
}

// Compute derives one line per selected SKU. A selection whose SKU is no
// longer in the catalog is excluded with a warning instead of failing the
// whole computation; a non-positive quantity is a hard validation error.
func (s *ShipmentService) Compute(ctx context.Context, selections []Selection) (ComputeResult, error) {
	cat, err := s.repo.Load(ctx)
	if err != nil {
		return ComputeResult{}, err
	}

	result := ComputeResult{Lines: make([]shipping.ShipmentLine, 0, len(selections))}
	total := decimal.Zero

	for _, sel := range selections {
		record, found := cat.FindBySKU(sel.SKU)
		if !found {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("SKU '%s' not found in catalog, excluded from shipment", sel.SKU))
			continue
		}

		line, err := shipping.NewShipmentLine(record, sel.Quantity)
		if err != nil {
			return ComputeResult{}, err
		}

		// aggregate from the exact line before display rounding
		total = total.Add(line.TotalVolumeM3)
		result.Lines = append(result.Lines, line.Rounded())
	}

	result.Containers = utilizations(total)
	result.TotalVolumeM3 = total.Round(4)
	return result, nil
}

func utilizations(totalVolume decimal.Decimal) []ContainerUtilization {
	containers := shipping.StandardContainers()
	out := make([]ContainerUtilization, 0, len(containers))
	for _, c := range containers {
		percent, remaining := shipping.Utilization(totalVolume, c.CapacityM3)
		out = append(out, ContainerUtilization{
			Name:        c.Name,
			CapacityM3:  c.CapacityM3,
			Percent:     percent.Round(1),
			RemainingM3: remaining.Round(2),
			Overflow:    remaining.IsNegative(),
		})
	}
	return out
}
