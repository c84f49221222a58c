package service

import (
	"fmt"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// PricingService derives a cart line's effective quantity and prices from
// its base price plus selected option surcharges. It is stateless.
type PricingService struct{}

// NewPricingService creates a new pricing service
func NewPricingService() *PricingService {
	return &PricingService{}
}

// PricedLine is the result of pricing one cart line
type PricedLine struct {
	UnitPrice     decimal.Decimal
	Quantity      int
	ExtendedPrice decimal.Decimal
}

// EffectiveQuantity sums the quantities of every selected multi-group
// choice. Single groups always count as one unit, whatever quantity their
// choice carries. A zero sum (no multi choices, or all-zero quantities)
// falls back to one: a line always represents at least one unit.
func (s *PricingService) EffectiveQuantity(selections map[string]entity.SelectedGroup) int {
	qty := 0
	for _, group := range selections {
		if group.Kind != enum.OptionMulti {
			continue
		}
		for _, choice := range group.Choices {
			qty += choice.Quantity
		}
	}
	if qty == 0 {
		return 1
	}
	return qty
}

// PriceLine computes unit and extended price for a line.
// Unit price adds every selected choice's price exactly once; a choice's own
// quantity never multiplies into the unit price, it only shows up through
// the effective quantity. Negative prices fail with ErrInvalidPrice.
func (s *PricingService) PriceLine(basePrice decimal.Decimal, selections map[string]entity.SelectedGroup) (PricedLine, error) {
	if basePrice.IsNegative() {
		return PricedLine{}, fmt.Errorf("base price %s: %w", basePrice.String(), ErrInvalidPrice)
	}

	unit := basePrice
	for _, group := range selections {
		for _, choice := range group.Choices {
			if choice.UnitPrice.IsNegative() {
				return PricedLine{}, fmt.Errorf("choice %q price %s: %w", choice.Name, choice.UnitPrice.String(), ErrInvalidPrice)
			}
			unit = unit.Add(choice.UnitPrice)
		}
	}

	qty := s.EffectiveQuantity(selections)
	return PricedLine{
		UnitPrice:     unit,
		Quantity:      qty,
		ExtendedPrice: unit.Mul(decimal.NewFromInt(int64(qty))),
	}, nil
}
