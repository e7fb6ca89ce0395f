package handler

import (
	"io"
	"net/http"

	importapp "github.com/cargoplan/backend/internal/application/import"
	"github.com/cargoplan/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TemplateFileName is the download name of the fill-in CSV template.
const TemplateFileName = "sku_template.csv"

// BulkImportHandler handles bulk catalog upload and template download
type BulkImportHandler struct {
	BaseHandler
	mergeService *importapp.BulkMergeService
}

// NewBulkImportHandler creates a new BulkImportHandler
func NewBulkImportHandler(mergeService *importapp.BulkMergeService) *BulkImportHandler {
	return &BulkImportHandler{mergeService: mergeService}
}

// Template serves the header-only CSV for operators to fill in
func (h *BulkImportHandler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+TemplateFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", h.mergeService.Template())
}

// Merge accepts a multipart CSV upload and merges it into the catalog
func (h *BulkImportHandler) Merge(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file is required in the 'file' form field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Uploaded file could not be opened")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Uploaded file could not be read")
		return
	}

	summary, err := h.mergeService.Merge(c.Request.Context(), data)
	if err != nil {
		logger.GetGinLogger(c).Warn("Bulk merge rejected",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		h.DomainError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("Bulk merge applied",
		zap.String("filename", fileHeader.Filename),
		zap.Int("total_rows", summary.TotalRows),
		zap.Int("added", summary.Added),
		zap.Int("replaced", summary.Replaced),
	)
	h.Success(c, summary)
}
