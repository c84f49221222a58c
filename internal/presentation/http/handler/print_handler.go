package handler

import (
	"errors"

	"github.com/dmoros/lavanderia-pos/internal/application/service"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/request"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/response"
	"github.com/dmoros/lavanderia-pos/pkg/printsurface"
	"github.com/gin-gonic/gin"
)

// PrintHandler handles print-related HTTP requests.
type PrintHandler struct {
	printService   *service.PrintService
	receiptService *service.ReceiptService
}

// NewPrintHandler creates a new print handler.
func NewPrintHandler(printService *service.PrintService, receiptService *service.ReceiptService) *PrintHandler {
	return &PrintHandler{
		printService:   printService,
		receiptService: receiptService,
	}
}

// Status returns the current print surface configuration
func (h *PrintHandler) Status(c *gin.Context) {
	response.OK(c, "Print status retrieved", h.printService.Status())
}

// Print normalizes the payload, renders it and sends it to the surface
func (h *PrintHandler) Print(c *gin.Context) {
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

	profile, err := profileFrom(req.WidthMm, req.Thermal, h.printService.DefaultProfile())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	html, err := h.printService.PrintReceipt(receipt, profile)
	if err != nil {
		// A failed trigger still produced the document; hand it back so the
		// register can offer a download instead of losing the receipt.
		if errors.Is(err, printsurface.ErrPrintTrigger) {
			response.ErrorWithData(c, 502,
				"Receipt was generated but the print trigger failed. Try printing again.",
				gin.H{"html": html, "receipt": receipt})
			return
		}
		respondServiceError(c, err)
		return
	}

	response.OK(c, "Receipt printed", gin.H{
		"receipt": receipt,
		"profile": profile,
	})
}
