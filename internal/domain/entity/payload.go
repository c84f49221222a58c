package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// The backend and the legacy app hand over completed transactions in three
// different shapes. They are parsed once into a tagged Source and dispatched
// on the tag from then on, instead of duck-typing fields at every call site.

// SourceKind tags which payload variant matched during parsing
type SourceKind int

const (
	SourceTicket SourceKind = 0 // server-confirmed sale
	SourceCart   SourceKind = 1 // pre-checkout cart snapshot
	SourceIncome SourceKind = 2 // raw ledger row, no product breakdown
)

func (k SourceKind) String() string {
	names := [...]string{"ticket", "cart", "income"}
	if int(k) < 0 || int(k) >= len(names) {
		return "ticket"
	}
	return names[k]
}

// Source is the tagged union of the three payload variants.
// Exactly one of the pointers is non-nil, matching Kind.
type Source struct {
	Kind   SourceKind
	Ticket *TicketPayload
	Cart   *CartPayload
	Income *IncomePayload
}

// --- Ticket (server-confirmed sale) ---

type TicketPayload struct {
	ID            string          `json:"id,omitempty"`
	PaymentDate   string          `json:"paymentDate"`
	Client        TicketClient    `json:"client"`
	User          TicketUser      `json:"user"`
	Products      []TicketProduct `json:"products"`
	Totals        *PayloadTotals  `json:"totals,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
}

type TicketClient struct {
	Name      string `json:"name"`
	Cellphone string `json:"cellphone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type TicketUser struct {
	Name string `json:"name"`
}

// TicketProduct keeps Options raw because tickets arrive with two encodings:
// a flat list of {optionName, choiceName} pairs, or nested
// {name, choices:[{name, price}]} groups. The receipt service sniffs which
// one is present exactly once, at normalization time.
type TicketProduct struct {
	Name      string          `json:"name"`
	Quantity  *int            `json:"quantity,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Options   json.RawMessage `json:"options,omitempty"`
	Pieces    string          `json:"pieces,omitempty"`
}

// TicketOptionFlat is the legacy pair encoding
type TicketOptionFlat struct {
	OptionName string `json:"optionName"`
	ChoiceName string `json:"choiceName"`
}

// TicketOptionNested is the group encoding
type TicketOptionNested struct {
	Name    string         `json:"name"`
	Choices []TicketChoice `json:"choices"`
}

type TicketChoice struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PayloadTotals mirrors the backend's totals block ("iva" is the tax field)
type PayloadTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
}

// --- Cart (pre-checkout, in the app) ---

type CartPayload struct {
	ID            string         `json:"id,omitempty"`
	PaymentDate   string         `json:"paymentDate"`
	Client        string         `json:"client,omitempty"`
	User          string         `json:"user,omitempty"`
	Products      []CartProduct  `json:"products"`
	Totals        *PayloadTotals `json:"totals,omitempty"`
	PaymentMethod string         `json:"paymentMethod"`
}

// CartProduct's SelectedOptions maps option ids to display labels; values
// may be a single string or an array of strings, so they stay raw until the
// receipt service wraps them into synthetic option groups.
type CartProduct struct {
	Name            string                     `json:"name"`
	Price           decimal.Decimal            `json:"price"`
	Quantity        *int                       `json:"quantity,omitempty"`
	SelectedOptions map[string]json.RawMessage `json:"selectedOptions,omitempty"`
	Pieces          string                     `json:"pieces,omitempty"`
}

// --- Income (raw ledger row) ---

// IncomePayload has no product breakdown at all; it still yields a valid,
// degraded receipt with an empty product list.
type IncomePayload struct {
	IncomeID      string          `json:"incomeId"`
	Concept       string          `json:"concept,omitempty"`
	Client        string          `json:"client,omitempty"`
	User          string          `json:"user,omitempty"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentDate   string          `json:"paymentDate"`
}
