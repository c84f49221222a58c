package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmoros/lavanderia-pos/internal/application/service"
	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/request"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/response"
	"github.com/dmoros/lavanderia-pos/pkg/render"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler normalizes legacy payloads and renders receipts.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	exportService  *service.ExportService
	renderer       *render.Renderer
	defaultProfile render.Profile
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(
	receiptService *service.ReceiptService,
	exportService *service.ExportService,
	renderer *render.Renderer,
	defaultProfile render.Profile,
) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		exportService:  exportService,
		renderer:       renderer,
		defaultProfile: defaultProfile,
	}
}

// Normalize turns a raw legacy payload into the canonical receipt
func (h *ReceiptHandler) Normalize(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		response.BadRequest(c, "Request body must be a receipt payload")
		return
	}

	receipt, err := h.receiptService.NormalizeRaw(raw)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, "Receipt normalized", receipt)
}

// RenderScreen returns the structured view model for the in-app card
func (h *ReceiptHandler) RenderScreen(c *gin.Context) {
	var req request.RenderReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	receipt, err := h.receiptService.NormalizeRaw(req.Payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, "Receipt rendered", h.renderer.Screen(receipt))
}

// RenderPrintable returns the printable HTML for the requested profile
func (h *ReceiptHandler) RenderPrintable(c *gin.Context) {
	var req request.RenderReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	receipt, err := h.receiptService.NormalizeRaw(req.Payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	profile, err := profileFrom(req.WidthMm, req.Thermal, h.defaultProfile)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, "Receipt rendered", gin.H{
		"profile": profile,
		"html":    h.renderer.Printable(receipt, profile),
	})
}

// DailyReport streams the day's receipts as an xlsx download
func (h *ReceiptHandler) DailyReport(c *gin.Context) {
	var req request.DailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	receipts := make([]entity.UnifiedReceipt, 0, len(req.Receipts))
	for i, raw := range req.Receipts {
		receipt, err := h.receiptService.NormalizeRaw(raw)
		if err != nil {
			response.BadRequest(c, fmt.Sprintf("Receipt %d could not be normalized: %s", i, err.Error()))
			return
		}
		receipts = append(receipts, *receipt)
	}

	file, err := h.exportService.DailyReport(receipts)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("ventas-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
