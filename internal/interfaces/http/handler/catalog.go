package handler

import (
	catalogapp "github.com/cargoplan/backend/internal/application/catalog"
	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles SKU catalog API endpoints
type CatalogHandler struct {
	BaseHandler
	skuService *catalogapp.SkuService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(skuService *catalogapp.SkuService) *CatalogHandler {
	return &CatalogHandler{skuService: skuService}
}

// UpsertSkuRequest represents a request to add or fully replace a SKU record
type UpsertSkuRequest struct {
	Item     string  `json:"item" binding:"max=200"`
	SKU      string  `json:"sku" binding:"required,skucode,max=50"`
	LengthMM float64 `json:"l_mm" binding:"min=0"`
	WidthMM  float64 `json:"w_mm" binding:"min=0"`
	HeightMM float64 `json:"h_mm" binding:"min=0"`
	WeightKG float64 `json:"weight_kg" binding:"min=0"`
}

// SkuResponse represents a catalog record in API responses
type SkuResponse struct {
	Item     string  `json:"item"`
	SKU      string  `json:"sku"`
	LengthMM float64 `json:"l_mm"`
	WidthMM  float64 `json:"w_mm"`
	HeightMM float64 `json:"h_mm"`
	WeightKG float64 `json:"weight_kg"`
}

func toSkuResponse(r catalog.SkuRecord) SkuResponse {
	return SkuResponse{
		Item:     r.Item,
		SKU:      r.SKU,
		LengthMM: r.LengthMM.InexactFloat64(),
		WidthMM:  r.WidthMM.InexactFloat64(),
		HeightMM: r.HeightMM.InexactFloat64(),
		WeightKG: r.WeightKG.InexactFloat64(),
	}
}

// List returns all catalog records
func (h *CatalogHandler) List(c *gin.Context) {
	records, err := h.skuService.List(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}

	out := make([]SkuResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toSkuResponse(r))
	}
	h.Success(c, out)
}

// Upsert adds a record or replaces the record with the same SKU code
func (h *CatalogHandler) Upsert(c *gin.Context) {
	var req UpsertSkuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.skuService.Upsert(c.Request.Context(), catalogapp.UpsertSkuRequest{
		Item:     req.Item,
		SKU:      req.SKU,
		LengthMM: decimal.NewFromFloat(req.LengthMM),
		WidthMM:  decimal.NewFromFloat(req.WidthMM),
		HeightMM: decimal.NewFromFloat(req.HeightMM),
		WeightKG: decimal.NewFromFloat(req.WeightKG),
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, toSkuResponse(record))
}

// Delete removes the record with the given SKU code. An absent code is
// still a 204: delete is a no-op for missing keys.
func (h *CatalogHandler) Delete(c *gin.Context) {
	sku := c.Param("sku")
	if err := h.skuService.Delete(c.Request.Context(), sku); err != nil {
		h.DomainError(c, err)
		return
	}
	h.NoContent(c)
}
