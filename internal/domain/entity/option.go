package entity

import (
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Choice is one selectable value inside an option group (a wash cycle, an
// add-on, a delivery slot). Quantity 0 means available but not counted.
type Choice struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// SelectedGroup carries the choices picked from one option group together
// with the group's kind, which decides how quantities are counted.
type SelectedGroup struct {
	OptionID string          `json:"option_id"`
	Name     string          `json:"name"`
	Kind     enum.OptionKind `json:"kind"`
	Choices  []Choice        `json:"choices"`
}
