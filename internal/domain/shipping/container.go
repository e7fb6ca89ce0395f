package shipping

import "github.com/shopspring/decimal"

// ContainerType is a named shipping container with a fixed volumetric
// capacity in cubic meters.
type ContainerType struct {
	Name       string          `json:"name"`
	CapacityM3 decimal.Decimal `json:"capacity_m3"`
}

// StandardContainers returns the fixed reference set of container types
// used for utilization reporting.
func StandardContainers() []ContainerType {
	return []ContainerType{
		{Name: "20ft", CapacityM3: decimal.NewFromFloat(28.0)},
		{Name: "40ft", CapacityM3: decimal.NewFromFloat(58.0)},
		{Name: "40ft HC", CapacityM3: decimal.NewFromFloat(65.0)},
	}
}

// Utilization computes the load percentage of a container and the
// remaining capacity. Remaining may be negative when the load exceeds
// capacity; callers use the sign as the overflow signal, so it is never
// clamped to zero.
func Utilization(totalVolumeM3, capacityM3 decimal.Decimal) (percent, remaining decimal.Decimal) {
	percent = totalVolumeM3.Div(capacityM3).Mul(decimal.NewFromInt(100))
	remaining = capacityM3.Sub(totalVolumeM3)
	return percent, remaining
}
