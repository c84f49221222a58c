package handler

import (
	"github.com/dmoros/lavanderia-pos/internal/application/service"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/request"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler handles register cart HTTP requests.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Create opens a new register session
func (h *CartHandler) Create(c *gin.Context) {
	cart := h.cartService.CreateCart()
	response.Created(c, "Cart created", cart)
}

// Get returns the cart with its lines
func (h *CartHandler) Get(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cart ID format")
		return
	}

	cart, err := h.cartService.GetCart(cartID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, "Cart retrieved", cart)
}

// AddLine prices and appends one product addition
func (h *CartHandler) AddLine(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cart ID format")
		return
	}

	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	line, err := h.cartService.AddLine(cartID, service.AddLineInput{
		ProductID:  req.ProductID,
		Name:       req.Name,
		BasePrice:  req.BasePrice,
		Selections: toSelections(req.Selections),
		Pieces:     toPieces(req.Pieces),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, "Line added", line)
}

// RemoveLine removes one line by id
func (h *CartHandler) RemoveLine(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cart ID format")
		return
	}
	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		response.BadRequest(c, "Invalid line ID format")
		return
	}

	if err := h.cartService.RemoveLine(cartID, lineID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, "Line removed", nil)
}

// Totals returns subtotal, tax and total for the cart
func (h *CartHandler) Totals(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cart ID format")
		return
	}

	totals, err := h.cartService.Totals(cartID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, "Totals computed", totals)
}

// Settle validates the payment against the cart total
func (h *CartHandler) Settle(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cart ID format")
		return
	}

	var req request.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	payment, err := h.cartService.SettlePayment(cartID, enum.ParsePaymentMethod(req.Method), req.AmountTendered)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, "Payment settled", payment)
}
