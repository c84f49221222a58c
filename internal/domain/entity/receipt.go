package entity

import (
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Company holds the issuing business identity printed on every receipt.
// It comes from static configuration, never from payloads.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
}

// Totals are the aggregated amounts of a cart or receipt.
// Invariant: Total = Subtotal + Tax.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// PaymentInfo records how a transaction was settled. For cash,
// Change = AmountTendered - Total; for card/transfer both are pinned to the
// total and change is zero.
type PaymentInfo struct {
	Method         enum.PaymentMethod `json:"method"`
	AmountTendered decimal.Decimal    `json:"amount_tendered"`
	Change         decimal.Decimal    `json:"change"`
}

// ChoiceSummary is a flattened option choice ready for display
type ChoiceSummary struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OptionSummary is one option group on a receipt line, already flattened
// from whichever payload shape it arrived in
type OptionSummary struct {
	Name    string          `json:"name"`
	Choices []ChoiceSummary `json:"choices"`
}

// UnifiedLine is one product row on the canonical receipt
type UnifiedLine struct {
	Name      string           `json:"name"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
	Options   []OptionSummary  `json:"options,omitempty"`
	Pieces    *PiecesBreakdown `json:"pieces,omitempty"`
}

// UnifiedReceipt is the canonical, format-agnostic transaction record.
// It is built once per completed transaction by the receipt service and is
// immutable afterwards; every rendering target consumes the same value.
type UnifiedReceipt struct {
	ID       string           `json:"id"`
	Kind     enum.ReceiptKind `json:"kind"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Client   string           `json:"client,omitempty"`
	User     string           `json:"user,omitempty"`
	Company  Company          `json:"company"`
	Products []UnifiedLine    `json:"products"`
	Totals   Totals           `json:"totals"`
	Payment  PaymentInfo      `json:"payment"`
}
