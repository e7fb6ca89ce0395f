package handler

import (
	"net/http"

	shippingapp "github.com/cargoplan/backend/internal/application/shipping"
	"github.com/cargoplan/backend/internal/domain/shipping"
	"github.com/gin-gonic/gin"
)

// PurchaseOrderFileName is the download name of the exported workbook.
const PurchaseOrderFileName = "purchase_order.xlsx"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ShipmentHandler handles shipment computation and purchase order export
type ShipmentHandler struct {
	BaseHandler
	shipmentService *shippingapp.ShipmentService
	exportService   *shippingapp.ExportService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(shipmentService *shippingapp.ShipmentService, exportService *shippingapp.ExportService) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentService: shipmentService,
		exportService:   exportService,
	}
}

// SelectionRequest is one selected SKU with its quantity
type SelectionRequest struct {
	SKU      string `json:"sku" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// ComputeShipmentRequest carries the SKU selection for a computation
type ComputeShipmentRequest struct {
	Selections []SelectionRequest `json:"selections" binding:"required,min=1,dive"`
}

// ShipmentLineResponse is one computed line with display rounding applied
type ShipmentLineResponse struct {
	SKU           string  `json:"sku"`
	Item          string  `json:"item"`
	Quantity      int     `json:"quantity"`
	UnitCBM       float64 `json:"unit_cbm"`
	TotalCBM      float64 `json:"total_cbm"`
	TotalWeightKG float64 `json:"total_weight_kg"`
}

// ContainerUtilizationResponse reports the load of one container type
type ContainerUtilizationResponse struct {
	Name        string  `json:"name"`
	CapacityM3  float64 `json:"capacity_m3"`
	Percent     float64 `json:"percent"`
	RemainingM3 float64 `json:"remaining_m3"`
	Overflow    bool    `json:"overflow"`
}

// ComputeShipmentResponse is the full computation result
type ComputeShipmentResponse struct {
	Lines      []ShipmentLineResponse         `json:"lines"`
	TotalCBM   float64                        `json:"total_cbm"`
	Containers []ContainerUtilizationResponse `json:"containers"`
	Warnings   []string                       `json:"warnings,omitempty"`
}

func toComputeResponse(result shippingapp.ComputeResult) ComputeShipmentResponse {
	out := ComputeShipmentResponse{
		Lines:      make([]ShipmentLineResponse, 0, len(result.Lines)),
		TotalCBM:   result.TotalVolumeM3.InexactFloat64(),
		Containers: make([]ContainerUtilizationResponse, 0, len(result.Containers)),
		Warnings:   result.Warnings,
	}
	for _, line := range result.Lines {
		out.Lines = append(out.Lines, toLineResponse(line))
	}
	for _, cu := range result.Containers {
		out.Containers = append(out.Containers, ContainerUtilizationResponse{
			Name:        cu.Name,
			CapacityM3:  cu.CapacityM3.InexactFloat64(),
			Percent:     cu.Percent.InexactFloat64(),
			RemainingM3: cu.RemainingM3.InexactFloat64(),
			Overflow:    cu.Overflow,
		})
	}
	return out
}

func toLineResponse(line shipping.ShipmentLine) ShipmentLineResponse {
	return ShipmentLineResponse{
		SKU:           line.SKU,
		Item:          line.Item,
		Quantity:      line.Quantity,
		UnitCBM:       line.UnitVolumeM3.InexactFloat64(),
		TotalCBM:      line.TotalVolumeM3.InexactFloat64(),
		TotalWeightKG: line.TotalWeightKG.InexactFloat64(),
	}
}

func (h *ShipmentHandler) bindAndCompute(c *gin.Context) (shippingapp.ComputeResult, bool) {
	var req ComputeShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return shippingapp.ComputeResult{}, false
	}

	selections := make([]shippingapp.Selection, 0, len(req.Selections))
	for _, s := range req.Selections {
		selections = append(selections, shippingapp.Selection{SKU: s.SKU, Quantity: s.Quantity})
	}

	result, err := h.shipmentService.Compute(c.Request.Context(), selections)
	if err != nil {
		h.DomainError(c, err)
		return shippingapp.ComputeResult{}, false
	}
	return result, true
}

// Compute derives shipment lines and container utilization for a selection
func (h *ShipmentHandler) Compute(c *gin.Context) {
	result, ok := h.bindAndCompute(c)
	if !ok {
		return
	}
	h.Success(c, toComputeResponse(result))
}

// PurchaseOrder computes the shipment and streams it as an xlsx workbook
func (h *ShipmentHandler) PurchaseOrder(c *gin.Context) {
	result, ok := h.bindAndCompute(c)
	if !ok {
		return
	}

	data, err := h.exportService.PurchaseOrderXLSX(result.Lines)
	if err != nil {
		h.InternalError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+PurchaseOrderFileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
