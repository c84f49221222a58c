package request

import "github.com/shopspring/decimal"

// ChoiceRequest is one selected choice inside an option group
type ChoiceRequest struct {
	ID        int             `json:"id"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity" binding:"min=0"`
}

// SelectedGroupRequest is the selection made in one option group
type SelectedGroupRequest struct {
	OptionID string          `json:"option_id" binding:"required"`
	Name     string          `json:"name"`
	Kind     string          `json:"kind" binding:"required,oneof=single multi"`
	Choices  []ChoiceRequest `json:"choices" binding:"dive"`
}

// PiecesRequest is the optional garment breakdown for piecework products
type PiecesRequest struct {
	Pantalones int `json:"pantalones" binding:"min=0"`
	Prendas    int `json:"prendas" binding:"min=0"`
	Otros      int `json:"otros" binding:"min=0"`
}

// AddLineRequest adds one product to the cart
type AddLineRequest struct {
	ProductID  string                 `json:"product_id" binding:"required"`
	Name       string                 `json:"name" binding:"required"`
	BasePrice  decimal.Decimal        `json:"base_price"`
	Selections []SelectedGroupRequest `json:"selections" binding:"dive"`
	Pieces     *PiecesRequest         `json:"pieces,omitempty"`
}

// SettlePaymentRequest settles the cart's payment
type SettlePaymentRequest struct {
	Method         string          `json:"method" binding:"required"`
	AmountTendered decimal.Decimal `json:"amount_tendered"`
}
